package storage

import (
	"context"
	"io"
)

// Service defines the object storage operations used by the upload handler
type Service interface {
	UploadStream(ctx context.Context, reader io.Reader, key, contentType string) (string, error)
}

// Logger defines the logging interface used by storage implementations
type Logger interface {
	LogInfo(msg string, fields map[string]interface{})
	LogError(err error, msg string) error
}
