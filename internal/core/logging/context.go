package logging

import "context"

type contextKey string

const (
	uploadIDKey contextKey = "upload_id"
	fileNameKey contextKey = "file_name"
)

// WithUploadID adds an upload session ID to the context.
func WithUploadID(ctx context.Context, uploadID string) context.Context {
	return context.WithValue(ctx, uploadIDKey, uploadID)
}

// WithFileName adds the name of the file being uploaded to the context.
func WithFileName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, fileNameKey, name)
}

// GetUploadID retrieves the upload session ID from the context.
// Returns empty string if not present.
func GetUploadID(ctx context.Context) string {
	if id, ok := ctx.Value(uploadIDKey).(string); ok {
		return id
	}
	return ""
}

// GetFileName retrieves the file name from the context.
// Returns empty string if not present.
func GetFileName(ctx context.Context) string {
	if name, ok := ctx.Value(fileNameKey).(string); ok {
		return name
	}
	return ""
}
