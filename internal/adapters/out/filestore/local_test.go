package filestore_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"visadesk/internal/adapters/out/filestore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_SaveAndRemove(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	store, err := filestore.NewLocalStorage(root, 1024)
	require.NoError(t, err)

	path, size, err := store.Save(ctx, "app-1/doc-1-passport.pdf", strings.NewReader("%PDF-1.7"))

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "app-1", "doc-1-passport.pdf"), path)
	assert.Equal(t, int64(8), size)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7", string(content))

	require.NoError(t, store.Remove(ctx, path))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
	require.NoError(t, store.Remove(ctx, path), "removing twice is fine")
}

func TestLocalStorage_RejectsEscapingKeys(t *testing.T) {
	store, err := filestore.NewLocalStorage(t.TempDir(), 0)
	require.NoError(t, err)

	for _, key := range []string{"", "../etc/passwd", "/etc/passwd", "a/../../b"} {
		_, _, err = store.Save(context.Background(), key, strings.NewReader("x"))
		assert.ErrorIs(t, err, filestore.ErrKeyOutsideRoot, key)
	}
	assert.ErrorIs(t, store.Remove(context.Background(), "/etc/passwd"), filestore.ErrKeyOutsideRoot)
}

func TestLocalStorage_TooLargeLeavesNothingBehind(t *testing.T) {
	root := t.TempDir()
	store, err := filestore.NewLocalStorage(root, 4)
	require.NoError(t, err)

	_, _, err = store.Save(context.Background(), "a/big.bin", strings.NewReader("12345"))

	require.ErrorContains(t, err, "exceeds")
	_, statErr := os.Stat(filepath.Join(root, "a", "big.bin"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestLocalStorage_EmptyFile(t *testing.T) {
	store, err := filestore.NewLocalStorage(t.TempDir(), 0)
	require.NoError(t, err)

	_, _, err = store.Save(context.Background(), "a/empty.txt", strings.NewReader(""))

	require.ErrorContains(t, err, "empty")
}
