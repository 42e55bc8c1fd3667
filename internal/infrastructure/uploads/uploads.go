package uploads

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/enviconnect/enviconnect/internal/domain/contract"
)

// DiskImageStore writes uploaded images under a static uploads
// directory. Filenames are timestamp-prefixed to avoid collisions
// between uploads sharing an original name.
type DiskImageStore struct {
	dir string
	now func() time.Time
}

var _ contract.IImageStore = (*DiskImageStore)(nil)

// NewDiskImageStore creates the uploads directory if needed.
func NewDiskImageStore(dir string) (*DiskImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}
	return &DiskImageStore{dir: dir, now: time.Now}, nil
}

// sanitizeName strips any path components from the client-supplied
// filename.
func sanitizeName(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, string(os.PathSeparator), "_")
	if name == "." || name == ".." || name == "" {
		name = "image"
	}
	return name
}

// SaveImage writes one image and returns its storage path.
func (s *DiskImageStore) SaveImage(ctx context.Context, originalName string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%d-%s", s.now().UnixMilli(), sanitizeName(originalName))
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write image file: %w", err)
	}

	return path, nil
}
