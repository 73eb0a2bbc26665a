package facades

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/developerom1/Red-Global-Assignment/internal/logger"
)

// S3API is the subset of the S3 client used by the facade.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// BlobStorageFacade implements the blob-storage sink over an S3-compatible
// backend (AWS S3 or MinIO). It accepts a named byte stream and returns the
// stored object key.
type BlobStorageFacade struct {
	client S3API
	bucket string
}

// NewBlobStorageFacade creates a facade for the given bucket.
func NewBlobStorageFacade(client S3API, bucket string) *BlobStorageFacade {
	return &BlobStorageFacade{client: client, bucket: bucket}
}

// NewS3Client builds an S3 client for an S3-compatible endpoint using static
// credentials. An empty endpoint falls back to AWS defaults.
func NewS3Client(ctx context.Context, region, endpoint, accessKey, secretKey string) (*s3.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")),
	)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
	return client, nil
}

// storageKey builds a date-partitioned object key for an upload.
func storageKey(name string) string {
	d := time.Now()
	return fmt.Sprintf("uploads/%d/%02d/%02d/%s-%s", d.Year(), d.Month(), d.Day(), uuid.New(), name)
}

// Upload streams the body to the bucket and returns the stored object key.
func (f *BlobStorageFacade) Upload(ctx context.Context, name string, body io.Reader) (string, error) {
	key := storageKey(name)

	_, err := f.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(key),
		Body:   body,
	})
	if err != nil {
		logger.Log.Errorw("failed to upload object", "bucket", f.bucket, "key", key, "error", err)
		return "", err
	}

	logger.Log.Infow("object uploaded", "bucket", f.bucket, "key", key)
	return key, nil
}
