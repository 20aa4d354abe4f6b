package apiv1

import (
	"github.com/gofiber/fiber/v2"
	filestorage "talent-park-backend/lib/file-storage"
)

// formResume extracts the optional "resume" multipart file from the request.
// A request without the file yields (nil, nil, nil). The returned close
// function releases the opened file and must be deferred when non-nil.
func formResume(ctx *fiber.Ctx) (*filestorage.ResumeUpload, func(), error) {
	fileHeader, err := ctx.FormFile("resume")
	if err != nil {
		// fiber returns an error both for non-multipart bodies and for a
		// missing part, treat either as "no resume attached"
		return nil, nil, nil
	}
	file, err := fileHeader.Open()
	if err != nil {
		return nil, nil, err
	}
	upload := &filestorage.ResumeUpload{
		FileName: fileHeader.Filename,
		Reader:   file,
		Size:     fileHeader.Size,
	}
	return upload, func() { _ = file.Close() }, nil
}
