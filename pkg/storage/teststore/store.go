// Package teststore implements an in-memory blob store for tests.
package teststore

import (
	"bytes"
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"tracd.io/tracd/pkg/storage"
)

var _ storage.Blobs = (*Store)(nil)

// Store is an in-memory blob store. It counts calls and can be forced to
// fail, which the pipeline and data service tests use to exercise abort
// paths.
type Store struct {
	mu       sync.Mutex
	blobs    map[string][]byte
	modTimes map[string]time.Time
	prefixes map[string]bool

	forcedError error

	CallCount struct {
		Create, Open, Stat, Delete, List, CreatePrefix, DeletePrefix int
	}
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		blobs:    map[string][]byte{},
		modTimes: map[string]time.Time{},
		prefixes: map[string]bool{},
	}
}

// ForceError makes every subsequent call fail with err until reset to nil.
func (store *Store) ForceError(err error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.forcedError = err
}

func (store *Store) fail() error {
	return store.forcedError
}

// Create starts a write-once blob at path.
func (store *Store) Create(ctx context.Context, path string, size int64) (storage.BlobWriter, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.CallCount.Create++
	if err := store.fail(); err != nil {
		return nil, err
	}
	if err := storage.ValidatePath(path); err != nil {
		return nil, err
	}
	return &blobWriter{store: store, path: path}, nil
}

// Open opens a reader for the blob at path.
func (store *Store) Open(ctx context.Context, path string) (storage.BlobReader, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.CallCount.Open++
	if err := store.fail(); err != nil {
		return nil, err
	}
	data, ok := store.blobs[path]
	if !ok {
		return nil, storage.ErrNotFound.New("%s", path)
	}
	return &blobReader{Reader: bytes.NewReader(data)}, nil
}

// Stat returns blob metadata.
func (store *Store) Stat(ctx context.Context, path string) (storage.BlobInfo, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.CallCount.Stat++
	if err := store.fail(); err != nil {
		return storage.BlobInfo{}, err
	}
	data, ok := store.blobs[path]
	if !ok {
		return storage.BlobInfo{}, storage.ErrNotFound.New("%s", path)
	}
	return storage.BlobInfo{Path: path, Size: int64(len(data)), ModTime: store.modTimes[path]}, nil
}

// Delete removes the blob at path.
func (store *Store) Delete(ctx context.Context, path string) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.CallCount.Delete++
	if err := store.fail(); err != nil {
		return err
	}
	delete(store.blobs, path)
	delete(store.modTimes, path)
	return nil
}

// List returns the paths under prefix in lexical order.
func (store *Store) List(ctx context.Context, prefix string) ([]string, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.CallCount.List++
	if err := store.fail(); err != nil {
		return nil, err
	}
	var paths []string
	for path := range store.blobs {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			paths = append(paths, path)
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// CreatePrefix records the prefix as provisioned.
func (store *Store) CreatePrefix(ctx context.Context, prefix string) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.CallCount.CreatePrefix++
	if err := store.fail(); err != nil {
		return err
	}
	store.prefixes[prefix] = true
	return nil
}

// DeletePrefix removes the prefix and every blob under it.
func (store *Store) DeletePrefix(ctx context.Context, prefix string) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.CallCount.DeletePrefix++
	if err := store.fail(); err != nil {
		return err
	}
	delete(store.prefixes, prefix)
	for path := range store.blobs {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			delete(store.blobs, path)
			delete(store.modTimes, path)
		}
	}
	return nil
}

// HasPrefix reports whether CreatePrefix was called for prefix.
func (store *Store) HasPrefix(prefix string) bool {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.prefixes[prefix]
}

// blobReader serves bytes from the snapshot taken at Open time.
type blobReader struct {
	*bytes.Reader
}

func (blob *blobReader) Close() error { return nil }

func (blob *blobReader) Size() (int64, error) { return blob.Reader.Size(), nil }

// blobWriter buffers writes and publishes them on Commit.
type blobWriter struct {
	store *Store
	path  string
	buf   bytes.Buffer
	done  bool
}

func (blob *blobWriter) Write(p []byte) (int, error) {
	blob.store.mu.Lock()
	err := blob.store.fail()
	blob.store.mu.Unlock()
	if err != nil {
		return 0, err
	}
	return blob.buf.Write(p)
}

func (blob *blobWriter) Commit(ctx context.Context) error {
	blob.store.mu.Lock()
	defer blob.store.mu.Unlock()
	if blob.done {
		return storage.Error.New("blob writer already closed")
	}
	blob.done = true
	if err := blob.store.fail(); err != nil {
		return err
	}
	blob.store.blobs[blob.path] = append([]byte(nil), blob.buf.Bytes()...)
	blob.store.modTimes[blob.path] = time.Now()
	return nil
}

func (blob *blobWriter) Cancel(ctx context.Context) error {
	blob.store.mu.Lock()
	defer blob.store.mu.Unlock()
	blob.done = true
	blob.buf.Reset()
	return nil
}

func (blob *blobWriter) Size() (int64, error) { return int64(blob.buf.Len()), nil }
