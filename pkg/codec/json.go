package codec

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/apache/arrow/go/v12/arrow"
	"github.com/apache/arrow/go/v12/arrow/array"
	"github.com/apache/arrow/go/v12/arrow/decimal128"
	"github.com/apache/arrow/go/v12/arrow/memory"

	"tracd.io/tracd/pkg/metadata"
)

func init() { Register(jsonCodec{}) }

// jsonCodec reads and writes a dataset as an array of record objects.
// Missing keys are null, unknown keys are data loss.
type jsonCodec struct{}

func (jsonCodec) Format() string        { return "JSON" }
func (jsonCodec) MimeType() string      { return "application/json" }
func (jsonCodec) FileExtension() string { return "json" }

func (jsonCodec) NewDecoder(r io.Reader, schema *arrow.Schema, alloc memory.Allocator) (BatchReader, error) {
	if schema == nil {
		return nil, Error.New("json decoding requires a schema")
	}

	decoder := json.NewDecoder(r)
	decoder.UseNumber()

	token, err := decoder.Token()
	if err != nil {
		return nil, ErrDataLoss.New("invalid json input: %v", err)
	}
	if delim, ok := token.(json.Delim); !ok || delim != '[' {
		return nil, ErrDataLoss.New("json input must be an array of records")
	}

	fieldIndex := make(map[string]int, len(schema.Fields()))
	for i, field := range schema.Fields() {
		fieldIndex[strings.ToLower(field.Name)] = i
	}

	return &jsonDecoder{
		decoder:    decoder,
		schema:     schema,
		fieldIndex: fieldIndex,
		builder:    array.NewRecordBuilder(alloc, schema),
	}, nil
}

func (jsonCodec) NewEncoder(w io.Writer, schema *arrow.Schema, alloc memory.Allocator) (BatchWriter, error) {
	if schema == nil {
		return nil, Error.New("json encoding requires a schema")
	}
	if _, err := io.WriteString(w, "["); err != nil {
		return nil, Error.Wrap(err)
	}
	return &jsonEncoder{w: w, schema: schema}, nil
}

type jsonDecoder struct {
	decoder    *json.Decoder
	schema     *arrow.Schema
	fieldIndex map[string]int
	builder    *array.RecordBuilder
	done       bool
}

func (d *jsonDecoder) Schema() *arrow.Schema { return d.schema }

func (d *jsonDecoder) Read() (arrow.Record, error) {
	if d.done {
		return nil, io.EOF
	}

	rows := 0
	for rows < defaultBatchRows {
		if !d.decoder.More() {
			// consume the closing bracket
			if _, err := d.decoder.Token(); err != nil {
				return nil, ErrDataLoss.New("invalid json input: %v", err)
			}
			d.done = true
			break
		}

		var record map[string]interface{}
		if err := d.decoder.Decode(&record); err != nil {
			return nil, ErrDataLoss.New("invalid json record: %v", err)
		}

		present := make([]bool, len(d.schema.Fields()))
		for key, value := range record {
			fieldIdx, ok := d.fieldIndex[strings.ToLower(key)]
			if !ok {
				return nil, ErrDataLoss.New("json record has unknown column %q", key)
			}
			present[fieldIdx] = true
			field := d.schema.Field(fieldIdx)
			if err := appendJSONValue(d.builder.Field(fieldIdx), field, value); err != nil {
				return nil, err
			}
		}
		for fieldIdx, ok := range present {
			if !ok {
				field := d.schema.Field(fieldIdx)
				if !field.Nullable {
					return nil, ErrDataLoss.New("field %q does not allow nulls", field.Name)
				}
				d.builder.Field(fieldIdx).AppendNull()
			}
		}
		rows++
	}

	if rows == 0 {
		return nil, io.EOF
	}
	return d.builder.NewRecord(), nil
}

func (d *jsonDecoder) Release() { d.builder.Release() }

// appendJSONValue parses one decoded json value into a column builder.
func appendJSONValue(builder array.Builder, field arrow.Field, value interface{}) error {
	if value == nil {
		if !field.Nullable {
			return ErrDataLoss.New("field %q does not allow nulls", field.Name)
		}
		builder.AppendNull()
		return nil
	}

	switch b := builder.(type) {
	case *array.BooleanBuilder:
		v, ok := value.(bool)
		if !ok {
			return ErrDataLoss.New("field %q: expected boolean, got %T", field.Name, value)
		}
		b.Append(v)
		return nil

	case *array.Int64Builder:
		number, ok := value.(json.Number)
		if !ok {
			return ErrDataLoss.New("field %q: expected integer, got %T", field.Name, value)
		}
		v, err := number.Int64()
		if err != nil {
			return ErrDataLoss.New("field %q: invalid integer %q", field.Name, number.String())
		}
		b.Append(v)
		return nil

	case *array.Float64Builder:
		number, ok := value.(json.Number)
		if !ok {
			return ErrDataLoss.New("field %q: expected float, got %T", field.Name, value)
		}
		v, err := number.Float64()
		if err != nil {
			return ErrDataLoss.New("field %q: invalid float %q", field.Name, number.String())
		}
		b.Append(v)
		return nil

	case *array.Decimal128Builder:
		// decimals travel as strings or numbers
		var text string
		switch v := value.(type) {
		case string:
			text = v
		case json.Number:
			text = v.String()
		default:
			return ErrDataLoss.New("field %q: expected decimal, got %T", field.Name, value)
		}
		v, err := decimal128.FromString(text, DecimalPrecision, DecimalScale)
		if err != nil {
			return ErrDataLoss.New("field %q: invalid decimal %q", field.Name, text)
		}
		b.Append(v)
		return nil

	default:
		text, ok := value.(string)
		if !ok {
			return ErrDataLoss.New("field %q: expected string, got %T", field.Name, value)
		}
		return appendCell(builder, field, text)
	}
}

type jsonEncoder struct {
	w      io.Writer
	schema *arrow.Schema
	first  bool
	closed bool
}

func (e *jsonEncoder) Write(batch arrow.Record) error {
	for row := 0; row < int(batch.NumRows()); row++ {
		object := make(map[string]interface{}, int(batch.NumCols()))
		for col := 0; col < int(batch.NumCols()); col++ {
			object[e.schema.Field(col).Name] = jsonValue(batch.Column(col), row)
		}
		encoded, err := json.Marshal(object)
		if err != nil {
			return Error.Wrap(err)
		}
		separator := ","
		if !e.first {
			e.first = true
			separator = ""
		}
		if _, err := io.WriteString(e.w, separator+"\n"+string(encoded)); err != nil {
			return Error.Wrap(err)
		}
	}
	return nil
}

func (e *jsonEncoder) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	_, err := io.WriteString(e.w, "\n]")
	return Error.Wrap(err)
}

// jsonValue renders one column value in its natural json form. Decimals,
// dates and datetimes are strings to keep their exact representation.
func jsonValue(col arrow.Array, row int) interface{} {
	if col.IsNull(row) {
		return nil
	}
	switch c := col.(type) {
	case *array.Boolean:
		return c.Value(row)
	case *array.Int64:
		return c.Value(row)
	case *array.Float64:
		return c.Value(row)
	case *array.Decimal128:
		return c.Value(row).ToString(DecimalScale)
	case *array.String:
		return c.Value(row)
	case *array.Date32:
		return c.Value(row).ToTime().Format(metadata.DateFormat)
	case *array.Timestamp:
		return c.Value(row).ToTime(arrow.Microsecond).UTC().Format(metadata.DatetimeFormat)
	default:
		return nil
	}
}
