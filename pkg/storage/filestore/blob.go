package filestore

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/zeebo/errs"

	"tracd.io/tracd/pkg/storage"
)

// blobReader reads a committed blob from disk.
type blobReader struct {
	*os.File
}

func (blob *blobReader) Size() (int64, error) {
	stat, err := blob.Stat()
	if err != nil {
		return 0, Error.Wrap(err)
	}
	return stat.Size(), nil
}

// blobWriter writes into a temp file and renames it into place on Commit.
type blobWriter struct {
	file   *os.File
	target string
	done   bool
}

func (blob *blobWriter) Write(p []byte) (int, error) {
	return blob.file.Write(p)
}

// Commit fsyncs the temp file and moves it to the target location.
func (blob *blobWriter) Commit(ctx context.Context) error {
	if blob.done {
		return Error.New("blob writer already closed")
	}
	blob.done = true

	err := errs.Combine(blob.file.Sync(), blob.file.Close())
	if err != nil {
		return Error.Wrap(errs.Combine(err, os.Remove(blob.file.Name())))
	}
	if err := os.MkdirAll(filepath.Dir(blob.target), 0o755); err != nil {
		return Error.Wrap(errs.Combine(err, os.Remove(blob.file.Name())))
	}
	if err := os.Rename(blob.file.Name(), blob.target); err != nil {
		return Error.Wrap(errs.Combine(err, os.Remove(blob.file.Name())))
	}
	return nil
}

// Cancel discards the temp file, leaving no artifact at the target path.
func (blob *blobWriter) Cancel(ctx context.Context) error {
	if blob.done {
		return nil
	}
	blob.done = true
	return Error.Wrap(errs.Combine(blob.file.Close(), os.Remove(blob.file.Name())))
}

// Size returns how much has been written so far.
func (blob *blobWriter) Size() (int64, error) {
	pos, err := blob.file.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, Error.Wrap(err)
	}
	return pos, nil
}

var _ storage.BlobWriter = (*blobWriter)(nil)
var _ storage.BlobReader = (*blobReader)(nil)
