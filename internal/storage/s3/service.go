package s3

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/clipfeed/backend/internal/config"
	"github.com/clipfeed/backend/internal/storage"
)

// Service implements the storage.Service interface on top of S3
type Service struct {
	uploader *s3manager.Uploader
	bucket   string
	logger   storage.Logger
}

// NewService creates a new S3 storage service
func NewService(cfg *config.S3Config, logger storage.Logger) (*Service, error) {
	awsConfig := &aws.Config{
		Region:           aws.String(cfg.Region),
		Credentials:      credentials.NewStaticCredentials(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		S3ForcePathStyle: aws.Bool(cfg.ForcePathStyle),
	}
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %v", err)
	}

	return &Service{
		uploader: s3manager.NewUploader(sess),
		bucket:   cfg.Bucket,
		logger:   logger,
	}, nil
}

// UploadStream uploads a stream to S3 and returns the object's public URL
func (s *Service) UploadStream(ctx context.Context, reader io.Reader, key, contentType string) (string, error) {
	input := &s3manager.UploadInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   reader,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	result, err := s.uploader.UploadWithContext(ctx, input)
	if err != nil {
		return "", fmt.Errorf("failed to upload object to S3: %v", err)
	}

	s.logger.LogInfo("Object uploaded to S3", map[string]interface{}{
		"bucket": s.bucket,
		"key":    key,
	})
	return result.Location, nil
}
