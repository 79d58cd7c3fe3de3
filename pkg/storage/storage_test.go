package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tracd.io/tracd/pkg/storage"
	"tracd.io/tracd/pkg/storage/teststore"
)

func TestValidatePath(t *testing.T) {
	good := []string{
		"data/table/0b0e0f57-0000-4000-8000-000000000001/snap-0/delta-0-xabcdef",
		"file/xyz/version-1",
		"single",
	}
	for _, path := range good {
		assert.NoError(t, storage.ValidatePath(path), "path %q", path)
	}

	bad := []string{"", "/lead", "trail/", "a//b", "a/./b", "a/../b", "a/b\\c", "a\x00b"}
	for _, path := range bad {
		assert.Error(t, storage.ValidatePath(path), "path %q", path)
	}
}

func TestManager(t *testing.T) {
	primary := teststore.New()
	archive := teststore.New()

	_, err := storage.NewManager(map[string]storage.Blobs{}, "PRIMARY")
	assert.Error(t, err)

	_, err = storage.NewManager(map[string]storage.Blobs{"PRIMARY": primary}, "MISSING")
	assert.Error(t, err)

	manager, err := storage.NewManager(map[string]storage.Blobs{
		"PRIMARY": primary,
		"ARCHIVE": archive,
	}, "PRIMARY")
	require.NoError(t, err)

	assert.Equal(t, "PRIMARY", manager.DefaultKey())
	assert.Equal(t, []string{"ARCHIVE", "PRIMARY"}, manager.Keys())

	store, err := manager.ForKey("ARCHIVE")
	require.NoError(t, err)
	assert.Same(t, archive, store)

	_, err = manager.ForKey("NOPE")
	assert.Error(t, err)
}
