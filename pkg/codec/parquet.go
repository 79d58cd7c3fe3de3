package codec

import (
	"bytes"
	"context"
	"io"

	"github.com/apache/arrow/go/v12/arrow"
	"github.com/apache/arrow/go/v12/arrow/array"
	"github.com/apache/arrow/go/v12/arrow/memory"
	"github.com/apache/arrow/go/v12/parquet"
	"github.com/apache/arrow/go/v12/parquet/compress"
	"github.com/apache/arrow/go/v12/parquet/pqarrow"
)

func init() { Register(parquetCodec{}) }

// parquetCodec reads and writes Parquet. The footer lives at the end of
// the payload so decoding buffers the whole input first.
type parquetCodec struct{}

func (parquetCodec) Format() string        { return "PARQUET" }
func (parquetCodec) MimeType() string      { return "application/vnd.apache.parquet" }
func (parquetCodec) FileExtension() string { return "parquet" }

func (parquetCodec) NewDecoder(r io.Reader, schema *arrow.Schema, alloc memory.Allocator) (BatchReader, error) {
	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, Error.Wrap(err)
	}

	table, err := pqarrow.ReadTable(
		context.Background(), bytes.NewReader(payload),
		parquet.NewReaderProperties(alloc),
		pqarrow.ArrowReadProperties{BatchSize: defaultBatchRows},
		alloc)
	if err != nil {
		return nil, ErrDataLoss.New("invalid parquet file: %v", err)
	}
	if err := CheckSchemaMatch(schema, table.Schema()); err != nil {
		table.Release()
		return nil, err
	}

	reader := array.NewTableReader(table, defaultBatchRows)
	table.Release()
	return conform(&parquetDecoder{reader: reader}, schema), nil
}

func (parquetCodec) NewEncoder(w io.Writer, schema *arrow.Schema, alloc memory.Allocator) (BatchWriter, error) {
	if schema == nil {
		return nil, Error.New("parquet encoding requires a schema")
	}
	writer, err := pqarrow.NewFileWriter(schema, w,
		parquet.NewWriterProperties(
			parquet.WithAllocator(alloc),
			parquet.WithCompression(compress.Codecs.Snappy)),
		pqarrow.NewArrowWriterProperties(pqarrow.WithAllocator(alloc)))
	if err != nil {
		return nil, Error.Wrap(err)
	}
	return &parquetEncoder{writer: writer}, nil
}

type parquetDecoder struct {
	reader *array.TableReader
}

func (d *parquetDecoder) Schema() *arrow.Schema { return d.reader.Schema() }

func (d *parquetDecoder) Read() (arrow.Record, error) {
	if !d.reader.Next() {
		return nil, io.EOF
	}
	// the table reader owns its record, take our own reference
	batch := d.reader.Record()
	batch.Retain()
	return batch, nil
}

func (d *parquetDecoder) Release() { d.reader.Release() }

type parquetEncoder struct {
	writer *pqarrow.FileWriter
	closed bool
}

func (e *parquetEncoder) Write(batch arrow.Record) error {
	return Error.Wrap(e.writer.Write(batch))
}

func (e *parquetEncoder) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	return Error.Wrap(e.writer.Close())
}
