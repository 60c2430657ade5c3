// Package filestore keeps uploaded documents on the local filesystem below a
// single root directory.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var ErrKeyOutsideRoot = errors.New("filestore: key escapes the upload directory")

type LocalStorage struct {
	root    string
	maxSize int64
}

// NewLocalStorage creates root if needed. maxSize <= 0 disables the limit.
func NewLocalStorage(root string, maxSize int64) (*LocalStorage, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	if err = os.MkdirAll(abs, 0o750); err != nil {
		return nil, fmt.Errorf("filestore: create %s: %w", abs, err)
	}
	return &LocalStorage{root: abs, maxSize: maxSize}, nil
}

// Save streams r to root/key. A partially written file is removed on error.
func (s *LocalStorage) Save(ctx context.Context, key string, r io.Reader) (string, int64, error) {
	target, err := s.resolve(key)
	if err != nil {
		return "", 0, err
	}
	if err = ctx.Err(); err != nil {
		return "", 0, err
	}
	if err = os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
		return "", 0, fmt.Errorf("filestore: %w", err)
	}

	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if err != nil {
		return "", 0, fmt.Errorf("filestore: %w", err)
	}

	src := r
	if s.maxSize > 0 {
		src = io.LimitReader(r, s.maxSize+1)
	}
	n, err := io.Copy(f, src)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err == nil && s.maxSize > 0 && n > s.maxSize {
		err = fmt.Errorf("filestore: file exceeds %d bytes", s.maxSize)
	}
	if err == nil && n == 0 {
		err = errors.New("filestore: empty file")
	}
	if err != nil {
		_ = os.Remove(target)
		return "", 0, err
	}

	return target, n, nil
}

// Remove deletes a file previously returned by Save. Missing files are not
// an error.
func (s *LocalStorage) Remove(_ context.Context, path string) error {
	rel, err := filepath.Rel(s.root, path)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return ErrKeyOutsideRoot
	}
	if err = os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("filestore: %w", err)
	}
	return nil
}

func (s *LocalStorage) resolve(key string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(key))
	if key == "" || filepath.IsAbs(cleaned) || cleaned == "." || strings.HasPrefix(cleaned, "..") {
		return "", ErrKeyOutsideRoot
	}
	return filepath.Join(s.root, cleaned), nil
}
