package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/kuntarvishnuprasad41/sparelab-epc/internal/usecase/interfaces"
)

// PublicPrefix is the URL path uploads are served from.
const PublicPrefix = "/uploads"

var unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// LocalUploadStore writes uploads to a directory on disk as
// "<unix millis>-<sanitized name>".
type LocalUploadStore struct {
	dir string
	now func() time.Time
}

var _ interfaces.IUploadStore = (*LocalUploadStore)(nil)

// NewLocalUploadStore creates dir if needed.
func NewLocalUploadStore(dir string) (*LocalUploadStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir %s: %w", dir, err)
	}
	return &LocalUploadStore{dir: dir, now: time.Now}, nil
}

func (s *LocalUploadStore) Dir() string {
	return s.dir
}

func (s *LocalUploadStore) Save(ctx context.Context, originalName string, content io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%d-%s", s.now().UnixMilli(), SanitizeFileName(originalName))
	f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create upload %s: %w", name, err)
	}
	if _, err := io.Copy(f, content); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("write upload %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close upload %s: %w", name, err)
	}
	return PublicPrefix + "/" + name, nil
}

// SanitizeFileName replaces every character outside [a-zA-Z0-9._-] with "-".
// Path separators are replaced too, so the result never leaves the directory.
func SanitizeFileName(name string) string {
	return unsafeFileChars.ReplaceAllString(name, "-")
}
