package models

import "errors"

// Request-path errors. Handlers return these sentinels (possibly wrapped);
// controllers map them to HTTP statuses in one place.
var (
	ErrValidation           = errors.New("invalid request data")
	ErrNotFound             = errors.New("record not found")
	ErrDuplicateApplication = errors.New("you have already applied for this job")
	ErrUnauthenticated      = errors.New("user is not authenticated")
	ErrUnauthorized         = errors.New("operation is not permitted")
	ErrMissingResume        = errors.New("please upload your resume")
	ErrUpstreamService      = errors.New("upstream service failure")
)
