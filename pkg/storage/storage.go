// Package storage is the object store abstraction for dataset and file
// bytes. Writers are write-once: a blob becomes visible on Commit and a
// cancelled or failed write leaves no artifact behind, so the next attempt
// at the same path starts clean.
package storage

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/zeebo/errs"
)

// Error is the default storage error class.
var Error = errs.Class("storage")

// ErrNotFound is returned when a path does not exist in the store.
var ErrNotFound = errs.Class("storage path not found")

// ErrInvalidPath is returned for malformed storage paths.
var ErrInvalidPath = errs.Class("invalid storage path")

// BlobInfo describes a stored blob.
type BlobInfo struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// BlobReader is a seekable byte stream over one stored blob.
type BlobReader interface {
	io.Reader
	io.ReaderAt
	io.Seeker
	io.Closer
	// Size returns the size of the blob.
	Size() (int64, error)
}

// BlobWriter accepts bytes for one blob. Exactly one of Commit or Cancel
// must be called; Commit makes the blob visible, Cancel discards it.
type BlobWriter interface {
	io.Writer
	// Commit ensures that the blob is readable by others.
	Commit(ctx context.Context) error
	// Cancel discards the blob.
	Cancel(ctx context.Context) error
	// Size returns how much has been written so far.
	Size() (int64, error)
}

// Blobs is a blob storage backend. Paths are slash separated tokens
// relative to the store root, such as the data item tokens of the metadata
// layer.
type Blobs interface {
	// Create starts a write-once blob at path. size is a hint, -1 when
	// unknown.
	Create(ctx context.Context, path string, size int64) (BlobWriter, error)
	// Open opens a reader for the blob at path.
	Open(ctx context.Context, path string) (BlobReader, error)
	// Stat returns blob metadata, ErrNotFound when absent.
	Stat(ctx context.Context, path string) (BlobInfo, error)
	// Delete removes the blob at path. Deleting an absent path is not an
	// error.
	Delete(ctx context.Context, path string) error
	// List returns the paths under prefix in lexical order.
	List(ctx context.Context, prefix string) ([]string, error)
	// CreatePrefix provisions a prefix (directory) in backends that need it.
	CreatePrefix(ctx context.Context, prefix string) error
	// DeletePrefix removes a prefix and everything under it.
	DeletePrefix(ctx context.Context, prefix string) error
}

// ValidatePath rejects absolute paths, empty segments and traversal.
func ValidatePath(path string) error {
	if path == "" {
		return ErrInvalidPath.New("empty path")
	}
	if strings.HasPrefix(path, "/") || strings.HasSuffix(path, "/") {
		return ErrInvalidPath.New("path %q must not start or end with a separator", path)
	}
	for _, segment := range strings.Split(path, "/") {
		switch segment {
		case "", ".", "..":
			return ErrInvalidPath.New("path %q has an invalid segment", path)
		}
		if strings.ContainsAny(segment, "\\\x00") {
			return ErrInvalidPath.New("path %q has an invalid segment", path)
		}
	}
	return nil
}

// Exists reports whether a path is present, folding Stat's not-found into
// a boolean.
func Exists(ctx context.Context, blobs Blobs, path string) (bool, error) {
	_, err := blobs.Stat(ctx, path)
	if err != nil {
		if ErrNotFound.Has(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
