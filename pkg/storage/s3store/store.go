// Package s3store implements the blob store on S3 compatible object
// storage via the minio client. Uploads stream through a pipe and only
// become visible once the upload completes, cancelling tears the upload
// down and removes any partial object.
package s3store

import (
	"context"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/zeebo/errs"

	"tracd.io/tracd/pkg/storage"
)

// Error is the default s3store error class.
var Error = errs.Class("s3store")

var _ storage.Blobs = (*Store)(nil)

// Config holds the connection settings for one S3 backend.
type Config struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	UseTLS    bool
}

// Store implements a blob store on one S3 bucket.
type Store struct {
	client *minio.Client
	bucket string
}

// New connects to the configured S3 endpoint.
func New(config Config) (*Store, error) {
	client, err := minio.New(config.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.AccessKey, config.SecretKey, ""),
		Secure: config.UseTLS,
		Region: config.Region,
	})
	if err != nil {
		return nil, Error.Wrap(err)
	}
	return &Store{client: client, bucket: config.Bucket}, nil
}

// Create starts a streaming upload to path.
func (store *Store) Create(ctx context.Context, path string, size int64) (storage.BlobWriter, error) {
	if err := storage.ValidatePath(path); err != nil {
		return nil, err
	}

	pr, pw := io.Pipe()
	uploadCtx, cancel := context.WithCancel(ctx)

	writer := &blobWriter{
		store:  store,
		path:   path,
		pw:     pw,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(writer.done)
		_, err := store.client.PutObject(uploadCtx, store.bucket, path, pr, size,
			minio.PutObjectOptions{})
		writer.uploadErr = err
		// unblock a writer stuck in Write if the upload died first
		_ = pr.CloseWithError(err)
	}()

	return writer, nil
}

// Open opens a reader for the object at path. The first byte is fetched
// eagerly so that a missing object surfaces here, not at first read.
func (store *Store) Open(ctx context.Context, path string) (storage.BlobReader, error) {
	if err := storage.ValidatePath(path); err != nil {
		return nil, err
	}
	object, err := store.client.GetObject(ctx, store.bucket, path, minio.GetObjectOptions{})
	if err != nil {
		return nil, Error.Wrap(err)
	}
	stat, err := object.Stat()
	if err != nil {
		_ = object.Close()
		if isNoSuchKey(err) {
			return nil, storage.ErrNotFound.New("%s", path)
		}
		return nil, Error.Wrap(err)
	}
	return &blobReader{Object: object, size: stat.Size}, nil
}

// Stat returns object metadata.
func (store *Store) Stat(ctx context.Context, path string) (storage.BlobInfo, error) {
	if err := storage.ValidatePath(path); err != nil {
		return storage.BlobInfo{}, err
	}
	stat, err := store.client.StatObject(ctx, store.bucket, path, minio.StatObjectOptions{})
	if err != nil {
		if isNoSuchKey(err) {
			return storage.BlobInfo{}, storage.ErrNotFound.New("%s", path)
		}
		return storage.BlobInfo{}, Error.Wrap(err)
	}
	return storage.BlobInfo{Path: path, Size: stat.Size, ModTime: stat.LastModified}, nil
}

// Delete removes the object at path.
func (store *Store) Delete(ctx context.Context, path string) error {
	if err := storage.ValidatePath(path); err != nil {
		return err
	}
	err := store.client.RemoveObject(ctx, store.bucket, path, minio.RemoveObjectOptions{})
	if err != nil && !isNoSuchKey(err) {
		return Error.Wrap(err)
	}
	return nil
}

// List returns the object paths under prefix in lexical order.
func (store *Store) List(ctx context.Context, prefix string) ([]string, error) {
	if err := storage.ValidatePath(prefix); err != nil {
		return nil, err
	}
	var paths []string
	for object := range store.client.ListObjects(ctx, store.bucket, minio.ListObjectsOptions{
		Prefix:    prefix + "/",
		Recursive: true,
	}) {
		if object.Err != nil {
			return nil, Error.Wrap(object.Err)
		}
		paths = append(paths, object.Key)
	}
	return paths, nil
}

// CreatePrefix is a no-op, S3 prefixes exist implicitly.
func (store *Store) CreatePrefix(ctx context.Context, prefix string) error {
	return storage.ValidatePath(prefix)
}

// DeletePrefix removes every object under prefix.
func (store *Store) DeletePrefix(ctx context.Context, prefix string) error {
	paths, err := store.List(ctx, prefix)
	if err != nil {
		return err
	}
	for _, path := range paths {
		if err := store.Delete(ctx, path); err != nil {
			return err
		}
	}
	return nil
}

func isNoSuchKey(err error) bool {
	resp := minio.ToErrorResponse(err)
	return resp.Code == "NoSuchKey" || strings.Contains(err.Error(), "key does not exist")
}
