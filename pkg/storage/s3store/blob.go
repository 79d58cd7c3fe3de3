package s3store

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/zeebo/errs"

	"tracd.io/tracd/pkg/storage"
)

// blobReader wraps a minio object stream, which already supports seeking
// via ranged requests.
type blobReader struct {
	*minio.Object
	size int64
}

func (blob *blobReader) Size() (int64, error) { return blob.size, nil }

var _ storage.BlobReader = (*blobReader)(nil)

// blobWriter feeds a streaming upload through a pipe. Commit finishes the
// upload and waits for the result, Cancel aborts it and removes whatever
// partial object may have been created.
type blobWriter struct {
	store  *Store
	path   string
	pw     *io.PipeWriter
	cancel context.CancelFunc
	done   chan struct{}

	uploadErr error
	written   int64
	closed    bool
}

func (blob *blobWriter) Write(p []byte) (int, error) {
	n, err := blob.pw.Write(p)
	blob.written += int64(n)
	return n, err
}

func (blob *blobWriter) Commit(ctx context.Context) error {
	if blob.closed {
		return Error.New("blob writer already closed")
	}
	blob.closed = true

	if err := blob.pw.Close(); err != nil {
		blob.cancel()
		return Error.Wrap(err)
	}
	select {
	case <-blob.done:
	case <-ctx.Done():
		blob.cancel()
		<-blob.done
		return Error.Wrap(ctx.Err())
	}
	if blob.uploadErr != nil {
		return Error.Wrap(blob.uploadErr)
	}
	return nil
}

func (blob *blobWriter) Cancel(ctx context.Context) error {
	if blob.closed {
		return nil
	}
	blob.closed = true

	abort := errs.New("upload cancelled")
	_ = blob.pw.CloseWithError(abort)
	blob.cancel()
	<-blob.done

	// multipart uploads may have committed parts already, remove the key
	err := blob.store.client.RemoveObject(ctx, blob.store.bucket, blob.path,
		minio.RemoveObjectOptions{})
	if err != nil && !isNoSuchKey(err) {
		return Error.Wrap(err)
	}
	return nil
}

func (blob *blobWriter) Size() (int64, error) { return blob.written, nil }

var _ storage.BlobWriter = (*blobWriter)(nil)
