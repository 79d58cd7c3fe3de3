package codec

import (
	"bytes"
	"io"

	"github.com/apache/arrow/go/v12/arrow"
	"github.com/apache/arrow/go/v12/arrow/ipc"
	"github.com/apache/arrow/go/v12/arrow/memory"
)

func init() {
	Register(arrowStreamCodec{})
	Register(arrowFileCodec{})
}

// arrowStreamCodec is the Arrow IPC streaming format. The schema travels
// in the stream itself, a schema hint is only checked for drift.
type arrowStreamCodec struct{}

func (arrowStreamCodec) Format() string        { return "ARROW_STREAM" }
func (arrowStreamCodec) MimeType() string      { return "application/vnd.apache.arrow.stream" }
func (arrowStreamCodec) FileExtension() string { return "arrows" }

func (arrowStreamCodec) NewDecoder(r io.Reader, schema *arrow.Schema, alloc memory.Allocator) (BatchReader, error) {
	reader, err := ipc.NewReader(r, ipc.WithAllocator(alloc))
	if err != nil {
		return nil, ErrDataLoss.New("invalid arrow stream: %v", err)
	}
	if err := CheckSchemaMatch(schema, reader.Schema()); err != nil {
		reader.Release()
		return nil, err
	}
	return conform(&arrowStreamDecoder{reader: reader}, schema), nil
}

func (arrowStreamCodec) NewEncoder(w io.Writer, schema *arrow.Schema, alloc memory.Allocator) (BatchWriter, error) {
	if schema == nil {
		return nil, Error.New("arrow encoding requires a schema")
	}
	writer := ipc.NewWriter(w, ipc.WithSchema(schema), ipc.WithAllocator(alloc))
	return &arrowWriter{writer: writer}, nil
}

type arrowStreamDecoder struct {
	reader *ipc.Reader
}

func (d *arrowStreamDecoder) Schema() *arrow.Schema { return d.reader.Schema() }

func (d *arrowStreamDecoder) Read() (arrow.Record, error) {
	batch, err := d.reader.Read()
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, ErrDataLoss.New("invalid arrow stream: %v", err)
	}
	// the reader owns the record it hands out, take our own reference
	batch.Retain()
	return batch, nil
}

func (d *arrowStreamDecoder) Release() { d.reader.Release() }

type arrowWriter struct {
	writer *ipc.Writer
	closed bool
}

func (e *arrowWriter) Write(batch arrow.Record) error {
	return Error.Wrap(e.writer.Write(batch))
}

func (e *arrowWriter) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	return Error.Wrap(e.writer.Close())
}

// arrowFileCodec is the Arrow IPC file format. The trailing seek table
// means decoding has to buffer the whole payload before it can start.
type arrowFileCodec struct{}

func (arrowFileCodec) Format() string        { return "ARROW_FILE" }
func (arrowFileCodec) MimeType() string      { return "application/vnd.apache.arrow.file" }
func (arrowFileCodec) FileExtension() string { return "arrow" }

func (arrowFileCodec) NewDecoder(r io.Reader, schema *arrow.Schema, alloc memory.Allocator) (BatchReader, error) {
	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, Error.Wrap(err)
	}
	reader, err := ipc.NewFileReader(bytes.NewReader(payload), ipc.WithAllocator(alloc))
	if err != nil {
		return nil, ErrDataLoss.New("invalid arrow file: %v", err)
	}
	if err := CheckSchemaMatch(schema, reader.Schema()); err != nil {
		_ = reader.Close()
		return nil, err
	}
	return conform(&arrowFileDecoder{reader: reader}, schema), nil
}

func (arrowFileCodec) NewEncoder(w io.Writer, schema *arrow.Schema, alloc memory.Allocator) (BatchWriter, error) {
	if schema == nil {
		return nil, Error.New("arrow encoding requires a schema")
	}
	// the file writer seeks back to patch the footer offsets, so encoding
	// goes through a seekable buffer that is flushed to w on Close
	buf := &seekBuffer{}
	writer, err := ipc.NewFileWriter(buf, ipc.WithSchema(schema), ipc.WithAllocator(alloc))
	if err != nil {
		return nil, Error.Wrap(err)
	}
	return &arrowFileEncoder{writer: writer, buf: buf, out: w}, nil
}

type arrowFileEncoder struct {
	writer *ipc.FileWriter
	buf    *seekBuffer
	out    io.Writer
	closed bool
}

func (e *arrowFileEncoder) Write(batch arrow.Record) error {
	return Error.Wrap(e.writer.Write(batch))
}

func (e *arrowFileEncoder) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	if err := e.writer.Close(); err != nil {
		return Error.Wrap(err)
	}
	_, err := e.out.Write(e.buf.data)
	return Error.Wrap(err)
}

// seekBuffer is an in-memory io.WriteSeeker.
type seekBuffer struct {
	data []byte
	pos  int64
}

func (b *seekBuffer) Write(p []byte) (int, error) {
	if end := b.pos + int64(len(p)); end > int64(len(b.data)) {
		if end > int64(cap(b.data)) {
			grown := make([]byte, end, 2*end)
			copy(grown, b.data)
			b.data = grown
		} else {
			b.data = b.data[:end]
		}
	}
	copy(b.data[b.pos:], p)
	b.pos += int64(len(p))
	return len(p), nil
}

func (b *seekBuffer) Seek(offset int64, whence int) (int64, error) {
	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = b.pos + offset
	case io.SeekEnd:
		pos = int64(len(b.data)) + offset
	default:
		return 0, Error.New("invalid seek whence %d", whence)
	}
	if pos < 0 {
		return 0, Error.New("negative seek position")
	}
	b.pos = pos
	return pos, nil
}

type arrowFileDecoder struct {
	reader *ipc.FileReader
	next   int
}

func (d *arrowFileDecoder) Schema() *arrow.Schema { return d.reader.Schema() }

func (d *arrowFileDecoder) Read() (arrow.Record, error) {
	if d.next >= d.reader.NumRecords() {
		return nil, io.EOF
	}
	batch, err := d.reader.RecordAt(d.next)
	if err != nil {
		return nil, ErrDataLoss.New("invalid arrow file: %v", err)
	}
	d.next++
	batch.Retain()
	return batch, nil
}

func (d *arrowFileDecoder) Release() { _ = d.reader.Close() }
