package apimodels

type Response struct {
	Success bool        `json:"success"`           //request outcome
	Message string      `json:"message,omitempty"` //error or status message
	Data    interface{} `json:"data,omitempty"`    //response payload
}

type ListResponse struct {
	Response
	RowCount int64 `json:"row_count,omitempty"` //total records matching the filter
}

func NewError(message string) Response {
	return Response{
		Success: false,
		Message: message,
	}
}

func NewResponse(data interface{}) Response {
	return Response{
		Success: true,
		Data:    data,
	}
}

func NewMessageResponse(message string) Response {
	return Response{
		Success: true,
		Message: message,
	}
}

func NewListResponse(data interface{}, rowCount int64) ListResponse {
	return ListResponse{
		Response: Response{
			Success: true,
			Data:    data,
		},
		RowCount: rowCount,
	}
}

// Sort is the caller-specified ordering for list operations. Lists are never
// reordered implicitly by the persistence layer.
type Sort struct {
	CreatedAtDesc bool `json:"created_at_desc"` // false = oldest first
}
