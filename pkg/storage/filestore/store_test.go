package filestore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"tracd.io/tracd/pkg/storage/filestore"
	"tracd.io/tracd/pkg/storage/testsuite"
	"tracd.io/tracd/private/testcontext"
)

func TestStore(t *testing.T) {
	ctx := testcontext.New(t)

	store, err := filestore.New(ctx.Dir("store"))
	require.NoError(t, err)
	testsuite.RunTests(t, store)
}

func TestCancelRemovesTempFile(t *testing.T) {
	ctx := testcontext.New(t)

	root := ctx.Dir("store")
	store, err := filestore.New(root)
	require.NoError(t, err)

	writer, err := store.Create(ctx, "data/x", -1)
	require.NoError(t, err)
	_, err = writer.Write([]byte("abandon me"))
	require.NoError(t, err)
	require.NoError(t, writer.Cancel(ctx))

	entries, err := os.ReadDir(filepath.Join(root, ".tmp"))
	require.NoError(t, err)
	require.Empty(t, entries, "cancelled write left a temp file")
}
