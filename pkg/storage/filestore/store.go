// Package filestore implements the blob store on a local filesystem.
// Writes land in a temp directory and move into place on Commit, so a
// partially written blob is never visible at its final path.
package filestore

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/zeebo/errs"

	"tracd.io/tracd/pkg/storage"
)

// Error is the default filestore error class.
var Error = errs.Class("filestore")

var _ storage.Blobs = (*Store)(nil)

// Store implements a blob store on a local directory.
type Store struct {
	root string
	temp string
}

// New creates a blob store rooted at path, creating it if needed.
func New(path string) (*Store, error) {
	root, err := filepath.Abs(path)
	if err != nil {
		return nil, Error.Wrap(err)
	}
	temp := filepath.Join(root, ".tmp")
	if err := os.MkdirAll(temp, 0o755); err != nil {
		return nil, Error.Wrap(err)
	}
	return &Store{root: root, temp: temp}, nil
}

func (store *Store) resolve(path string) (string, error) {
	if err := storage.ValidatePath(path); err != nil {
		return "", err
	}
	return filepath.Join(store.root, filepath.FromSlash(path)), nil
}

// Create starts a write-once blob at path.
func (store *Store) Create(ctx context.Context, path string, size int64) (storage.BlobWriter, error) {
	target, err := store.resolve(path)
	if err != nil {
		return nil, err
	}
	file, err := os.CreateTemp(store.temp, "blob-*.partial")
	if err != nil {
		return nil, Error.Wrap(err)
	}
	return &blobWriter{file: file, target: target}, nil
}

// Open opens a reader for the blob at path.
func (store *Store) Open(ctx context.Context, path string) (storage.BlobReader, error) {
	target, err := store.resolve(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(target)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, storage.ErrNotFound.New("%s", path)
		}
		return nil, Error.Wrap(err)
	}
	return &blobReader{file}, nil
}

// Stat returns blob metadata.
func (store *Store) Stat(ctx context.Context, path string) (storage.BlobInfo, error) {
	target, err := store.resolve(path)
	if err != nil {
		return storage.BlobInfo{}, err
	}
	stat, err := os.Stat(target)
	if err != nil {
		if os.IsNotExist(err) {
			return storage.BlobInfo{}, storage.ErrNotFound.New("%s", path)
		}
		return storage.BlobInfo{}, Error.Wrap(err)
	}
	if stat.IsDir() {
		return storage.BlobInfo{}, storage.ErrNotFound.New("%s is a prefix", path)
	}
	return storage.BlobInfo{Path: path, Size: stat.Size(), ModTime: stat.ModTime()}, nil
}

// Delete removes the blob at path. Absent paths are not an error.
func (store *Store) Delete(ctx context.Context, path string) error {
	target, err := store.resolve(path)
	if err != nil {
		return err
	}
	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return Error.Wrap(err)
	}
	return nil
}

// List returns the blob paths under prefix in lexical order.
func (store *Store) List(ctx context.Context, prefix string) (paths []string, err error) {
	target, err := store.resolve(prefix)
	if err != nil {
		return nil, err
	}
	err = filepath.WalkDir(target, func(walked string, entry fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if entry.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(store.root, walked)
		if err != nil {
			return err
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, Error.Wrap(err)
	}
	sort.Strings(paths)
	return paths, nil
}

// CreatePrefix provisions a directory for the prefix.
func (store *Store) CreatePrefix(ctx context.Context, prefix string) error {
	target, err := store.resolve(prefix)
	if err != nil {
		return err
	}
	return Error.Wrap(os.MkdirAll(target, 0o755))
}

// DeletePrefix removes the prefix directory and everything under it.
func (store *Store) DeletePrefix(ctx context.Context, prefix string) error {
	target, err := store.resolve(prefix)
	if err != nil {
		return err
	}
	// refuse to remove the store root itself
	if !strings.HasPrefix(target, store.root+string(filepath.Separator)) {
		return storage.ErrInvalidPath.New("%s", prefix)
	}
	return Error.Wrap(os.RemoveAll(target))
}
