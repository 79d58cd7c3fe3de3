package codec

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/apache/arrow/go/v12/arrow"
	"github.com/apache/arrow/go/v12/arrow/array"
	"github.com/apache/arrow/go/v12/arrow/memory"
)

func init() { Register(csvCodec{}) }

// csvCodec reads and writes delimited text. The first row is the header;
// cells are whitespace trimmed before parsing and the empty cell is null.
type csvCodec struct{}

func (csvCodec) Format() string        { return "CSV" }
func (csvCodec) MimeType() string      { return "text/csv" }
func (csvCodec) FileExtension() string { return "csv" }

func (csvCodec) NewDecoder(r io.Reader, schema *arrow.Schema, alloc memory.Allocator) (BatchReader, error) {
	if schema == nil {
		return nil, Error.New("csv decoding requires a schema")
	}

	reader := csv.NewReader(r)
	reader.ReuseRecord = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrDataLoss.New("csv input has no header row")
	}
	if err != nil {
		return nil, ErrDataLoss.New("invalid csv header: %v", err)
	}

	// header columns must match the schema fields in order
	fields := schema.Fields()
	if len(header) != len(fields) {
		return nil, ErrDataLoss.New("csv header has %d columns, expected %d",
			len(header), len(fields))
	}
	for i, name := range header {
		name = strings.TrimSpace(name)
		if !strings.EqualFold(name, fields[i].Name) {
			return nil, ErrDataLoss.New("csv column %d is %q, expected %q",
				i, name, fields[i].Name)
		}
	}

	return &csvDecoder{
		reader:  reader,
		schema:  schema,
		builder: array.NewRecordBuilder(alloc, schema),
	}, nil
}

func (csvCodec) NewEncoder(w io.Writer, schema *arrow.Schema, alloc memory.Allocator) (BatchWriter, error) {
	if schema == nil {
		return nil, Error.New("csv encoding requires a schema")
	}
	writer := csv.NewWriter(w)

	header := make([]string, len(schema.Fields()))
	for i, field := range schema.Fields() {
		header[i] = field.Name
	}
	if err := writer.Write(header); err != nil {
		return nil, Error.Wrap(err)
	}
	return &csvEncoder{writer: writer, row: make([]string, len(header))}, nil
}

type csvDecoder struct {
	reader  *csv.Reader
	schema  *arrow.Schema
	builder *array.RecordBuilder
	done    bool
}

func (d *csvDecoder) Schema() *arrow.Schema { return d.schema }

func (d *csvDecoder) Read() (arrow.Record, error) {
	if d.done {
		return nil, io.EOF
	}

	rows := 0
	for rows < defaultBatchRows {
		record, err := d.reader.Read()
		if err == io.EOF {
			d.done = true
			break
		}
		if err != nil {
			return nil, ErrDataLoss.New("invalid csv row: %v", err)
		}
		if len(record) != len(d.schema.Fields()) {
			return nil, ErrDataLoss.New("csv row has %d cells, expected %d",
				len(record), len(d.schema.Fields()))
		}
		for col, cell := range record {
			field := d.schema.Field(col)
			if err := appendCell(d.builder.Field(col), field, strings.TrimSpace(cell)); err != nil {
				return nil, err
			}
		}
		rows++
	}

	if rows == 0 {
		return nil, io.EOF
	}
	return d.builder.NewRecord(), nil
}

func (d *csvDecoder) Release() { d.builder.Release() }

type csvEncoder struct {
	writer *csv.Writer
	row    []string
}

func (e *csvEncoder) Write(batch arrow.Record) error {
	for row := 0; row < int(batch.NumRows()); row++ {
		for col := 0; col < int(batch.NumCols()); col++ {
			e.row[col] = renderCell(batch.Column(col), row)
		}
		if err := e.writer.Write(e.row); err != nil {
			return Error.Wrap(err)
		}
	}
	return nil
}

func (e *csvEncoder) Close() error {
	e.writer.Flush()
	return Error.Wrap(e.writer.Error())
}
