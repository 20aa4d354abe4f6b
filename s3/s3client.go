package s3client

import (
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"talent-park-backend/config"
)

func NewClient() (*minio.Client, error) {
	minioClient, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.Conf.S3.AccessKeyID, config.Conf.S3.SecretAccessKey, ""),
		Secure: *config.Conf.S3.UseSSL,
	})
	if err != nil {
		return nil, err
	}
	return minioClient, nil
}

func EnsureBucket(ctx context.Context, client *minio.Client) error {
	bucketName := config.Conf.S3.BucketName
	location := "us-east-1"
	exists, err := client.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: location})
}
