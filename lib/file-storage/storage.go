package filestorage

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"talent-park-backend/config"
	"talent-park-backend/models"
	dbmodels "talent-park-backend/models/db"
)

// ResumeUpload is a freshly attached resume file on its way to object storage.
type ResumeUpload struct {
	FileName string
	Reader   io.Reader
	Size     int64
}

// Provider keeps resume files in object storage. Records only ever hold the
// returned reference, never the file itself.
type Provider interface {
	UploadResume(ctx context.Context, userID, fileName string, fileReader io.Reader, fileSize int64) (dbmodels.Resume, error)
	DeleteResume(ctx context.Context, storageID string) error
}

func NewInstance(s3client *minio.Client) Provider {
	return &impl{
		s3client: s3client,
	}
}

type impl struct {
	s3client *minio.Client
}

func (i impl) UploadResume(ctx context.Context, userID, fileName string, fileReader io.Reader, fileSize int64) (dbmodels.Resume, error) {
	if i.s3client == nil {
		return dbmodels.Resume{}, errors.Wrap(models.ErrUpstreamService, "object storage is not configured")
	}
	bucketName := config.Conf.S3.BucketName
	storageID := fmt.Sprintf("resumes/%s/%s%s", userID, uuid.NewString(), path.Ext(fileName))
	_, err := i.s3client.PutObject(ctx, bucketName, storageID, fileReader, fileSize,
		minio.PutObjectOptions{ContentType: "application/octet-stream"})
	if err != nil {
		log.WithError(err).
			WithField("user_id", userID).
			Error("failed to upload resume to object storage")
		return dbmodels.Resume{}, errors.Wrap(models.ErrUpstreamService, "resume upload failed")
	}
	return dbmodels.Resume{
		StorageID: storageID,
		URL:       fmt.Sprintf("%s/%s/%s", config.Conf.S3.PublicURL, bucketName, storageID),
	}, nil
}

func (i impl) DeleteResume(ctx context.Context, storageID string) error {
	if storageID == "" {
		return nil
	}
	if i.s3client == nil {
		return errors.Wrap(models.ErrUpstreamService, "object storage is not configured")
	}
	err := i.s3client.RemoveObject(ctx, config.Conf.S3.BucketName, storageID, minio.RemoveObjectOptions{})
	if err != nil {
		log.WithError(err).
			WithField("storage_id", storageID).
			Error("failed to remove resume from object storage")
		return errors.Wrap(models.ErrUpstreamService, "resume removal failed")
	}
	return nil
}
