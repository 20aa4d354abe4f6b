package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"
	filestorage "talent-park-backend/lib/file-storage"
	s3client "talent-park-backend/s3"
)

// InitS3 builds the resume storage. A missing or unreachable S3 endpoint is
// not fatal, uploads fail with an upstream error until it comes back.
func InitS3() filestorage.Provider {
	client, err := s3client.NewClient()
	if err != nil {
		log.WithError(err).Error("failed to init S3 client")
		return filestorage.NewInstance(nil)
	}
	if err := s3client.EnsureBucket(context.Background(), client); err != nil {
		log.WithError(err).Error("failed to ensure S3 bucket")
	}
	log.Info("S3 client initialized")
	return filestorage.NewInstance(client)
}
