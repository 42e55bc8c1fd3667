package contract

import (
	"context"
	"io"
)

// IImageStore persists uploaded project images and reports the storage
// path each one was written to. Paths are returned in the order the
// images were received.
type IImageStore interface {
	// SaveImage writes one image and returns its storage path. The
	// filename is prefixed to avoid collisions between uploads that
	// share an original name.
	SaveImage(ctx context.Context, originalName string, r io.Reader) (string, error)
}
