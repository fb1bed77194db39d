package interfaces

import (
	"context"
	"io"
)

// IUploadStore persists uploaded files and returns the public path they are
// served from.
type IUploadStore interface {
	Save(ctx context.Context, originalName string, content io.Reader) (string, error)
}
