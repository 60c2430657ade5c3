package ports

import (
	"context"
	"io"
)

// FileStorage keeps uploaded files. Save returns the location the file
// can be read back from and the number of bytes written.
type FileStorage interface {
	Save(ctx context.Context, key string, r io.Reader) (path string, size int64, err error)
	Remove(ctx context.Context, path string) error
}
