// Package testsuite runs the common behaviour checks every blob store
// backend must pass.
package testsuite

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tracd.io/tracd/pkg/storage"
)

// RunTests exercises the Blobs contract against a backend.
func RunTests(t *testing.T, store storage.Blobs) {
	t.Run("CommitMakesVisible", func(t *testing.T) { testCommitMakesVisible(t, store) })
	t.Run("CancelLeavesNoArtifact", func(t *testing.T) { testCancelLeavesNoArtifact(t, store) })
	t.Run("StatAndDelete", func(t *testing.T) { testStatAndDelete(t, store) })
	t.Run("ListPrefix", func(t *testing.T) { testListPrefix(t, store) })
	t.Run("DeletePrefix", func(t *testing.T) { testDeletePrefix(t, store) })
	t.Run("InvalidPaths", func(t *testing.T) { testInvalidPaths(t, store) })
}

func write(t *testing.T, store storage.Blobs, path string, data []byte) {
	ctx := context.Background()
	writer, err := store.Create(ctx, path, int64(len(data)))
	require.NoError(t, err)
	_, err = writer.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Commit(ctx))
}

func testCommitMakesVisible(t *testing.T, store storage.Blobs) {
	ctx := context.Background()
	path := "suite/commit/one"

	// nothing visible before commit
	writer, err := store.Create(ctx, path, -1)
	require.NoError(t, err)
	_, err = writer.Write([]byte("hello"))
	require.NoError(t, err)

	exists, err := storage.Exists(ctx, store, path)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, writer.Commit(ctx))

	reader, err := store.Open(ctx, path)
	require.NoError(t, err)
	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)

	// size must be answerable while the reader is still open
	size, err := reader.Size()
	require.NoError(t, err)
	assert.Equal(t, int64(5), size)
	require.NoError(t, reader.Close())
}

func testCancelLeavesNoArtifact(t *testing.T, store storage.Blobs) {
	ctx := context.Background()
	path := "suite/cancel/one"

	writer, err := store.Create(ctx, path, -1)
	require.NoError(t, err)
	_, err = writer.Write([]byte("partial"))
	require.NoError(t, err)
	require.NoError(t, writer.Cancel(ctx))

	exists, err := storage.Exists(ctx, store, path)
	require.NoError(t, err)
	assert.False(t, exists)

	// a later attempt at the same path starts clean
	write(t, store, path, []byte("second attempt"))
	info, err := store.Stat(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, int64(len("second attempt")), info.Size)
}

func testStatAndDelete(t *testing.T, store storage.Blobs) {
	ctx := context.Background()
	path := "suite/stat/one"

	_, err := store.Stat(ctx, path)
	require.Error(t, err)
	assert.True(t, storage.ErrNotFound.Has(err))

	write(t, store, path, []byte{1, 2, 3})
	info, err := store.Stat(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, int64(3), info.Size)

	require.NoError(t, store.Delete(ctx, path))
	_, err = store.Stat(ctx, path)
	assert.True(t, storage.ErrNotFound.Has(err))

	// deleting again is fine
	require.NoError(t, store.Delete(ctx, path))
}

func testListPrefix(t *testing.T, store storage.Blobs) {
	ctx := context.Background()

	write(t, store, "suite/list/a/1", []byte("a1"))
	write(t, store, "suite/list/a/2", []byte("a2"))
	write(t, store, "suite/list/b/1", []byte("b1"))

	paths, err := store.List(ctx, "suite/list/a")
	require.NoError(t, err)
	assert.Equal(t, []string{"suite/list/a/1", "suite/list/a/2"}, paths)
}

func testDeletePrefix(t *testing.T, store storage.Blobs) {
	ctx := context.Background()

	write(t, store, "suite/drop/a/1", []byte("a1"))
	write(t, store, "suite/drop/a/2", []byte("a2"))
	write(t, store, "suite/keep/b/1", []byte("b1"))

	require.NoError(t, store.DeletePrefix(ctx, "suite/drop"))

	paths, err := store.List(ctx, "suite/drop")
	require.NoError(t, err)
	assert.Empty(t, paths)

	exists, err := storage.Exists(ctx, store, "suite/keep/b/1")
	require.NoError(t, err)
	assert.True(t, exists)
}

func testInvalidPaths(t *testing.T, store storage.Blobs) {
	ctx := context.Background()
	for _, path := range []string{"", "/abs", "trailing/", "a//b", "a/../b", "a/./b"} {
		_, err := store.Create(ctx, path, -1)
		assert.Error(t, err, "path %q", path)
		_, err = store.Open(ctx, path)
		assert.Error(t, err, "path %q", path)
	}
}
