package codec

import (
	"strings"

	"github.com/apache/arrow/go/v12/arrow"
	"github.com/apache/arrow/go/v12/arrow/array"

	"tracd.io/tracd/pkg/pb"
)

// Arrow physical types for the platform's logical field types. Decimals
// are fixed at 38 digits with 12 decimal places, datetimes are microsecond
// timestamps without a zone (values are always UTC).
const (
	DecimalPrecision = 38
	DecimalScale     = 12
)

var decimalType = &arrow.Decimal128Type{Precision: DecimalPrecision, Scale: DecimalScale}
var timestampType = &arrow.TimestampType{Unit: arrow.Microsecond}

// ArrowField maps one schema field to its arrow form.
func ArrowField(field *pb.FieldSchema) (arrow.Field, error) {
	var dataType arrow.DataType
	switch field.FieldType {
	case pb.BasicType_BOOLEAN:
		dataType = arrow.FixedWidthTypes.Boolean
	case pb.BasicType_INTEGER:
		dataType = arrow.PrimitiveTypes.Int64
	case pb.BasicType_FLOAT:
		dataType = arrow.PrimitiveTypes.Float64
	case pb.BasicType_DECIMAL:
		dataType = decimalType
	case pb.BasicType_STRING:
		dataType = arrow.BinaryTypes.String
	case pb.BasicType_DATE:
		dataType = arrow.FixedWidthTypes.Date32
	case pb.BasicType_DATETIME:
		dataType = timestampType
	default:
		return arrow.Field{}, Error.New("field %q has unsupported type %v",
			field.FieldName, field.FieldType)
	}
	// businessKey implies not null
	nullable := !field.NotNull && !field.BusinessKey
	return arrow.Field{Name: field.FieldName, Type: dataType, Nullable: nullable}, nil
}

// ArrowSchema maps a table schema to its arrow form, fields in field order.
func ArrowSchema(schema *pb.SchemaDefinition) (*arrow.Schema, error) {
	table := schema.GetTable()
	if table == nil || len(table.Fields) == 0 {
		return nil, Error.New("schema has no table fields")
	}
	fields := make([]arrow.Field, len(table.Fields))
	for i, field := range table.Fields {
		arrowField, err := ArrowField(field)
		if err != nil {
			return nil, err
		}
		fields[i] = arrowField
	}
	return arrow.NewSchema(fields, nil), nil
}

// TableSchema maps an arrow schema back to the platform's form, used when
// a dataset is created from self-describing input without a declared
// schema.
func TableSchema(schema *arrow.Schema) (*pb.SchemaDefinition, error) {
	fields := make([]*pb.FieldSchema, len(schema.Fields()))
	for i, field := range schema.Fields() {
		basicType, err := basicTypeOf(field.Type)
		if err != nil {
			return nil, err
		}
		fields[i] = &pb.FieldSchema{
			FieldName:  field.Name,
			FieldOrder: int32(i),
			FieldType:  basicType,
			NotNull:    !field.Nullable,
		}
	}
	return &pb.SchemaDefinition{
		SchemaType: pb.SchemaType_TABLE,
		Table:      &pb.TableSchema{Fields: fields},
	}, nil
}

func basicTypeOf(dataType arrow.DataType) (pb.BasicType, error) {
	switch dataType.ID() {
	case arrow.BOOL:
		return pb.BasicType_BOOLEAN, nil
	case arrow.INT64:
		return pb.BasicType_INTEGER, nil
	case arrow.FLOAT64:
		return pb.BasicType_FLOAT, nil
	case arrow.DECIMAL128:
		return pb.BasicType_DECIMAL, nil
	case arrow.STRING:
		return pb.BasicType_STRING, nil
	case arrow.DATE32:
		return pb.BasicType_DATE, nil
	case arrow.TIMESTAMP:
		return pb.BasicType_DATETIME, nil
	default:
		return pb.BasicType_BASIC_TYPE_NOT_SET,
			Error.New("arrow type %s has no platform equivalent", dataType)
	}
}

// CheckSchemaMatch compares a stream's embedded schema against the
// expected one. Any drift, added or removed column or a different logical
// type, is data loss.
func CheckSchemaMatch(expected, actual *arrow.Schema) error {
	if expected == nil {
		return nil
	}
	if len(expected.Fields()) != len(actual.Fields()) {
		return ErrDataLoss.New("schema drift: %d fields, expected %d",
			len(actual.Fields()), len(expected.Fields()))
	}
	for i, want := range expected.Fields() {
		got := actual.Field(i)
		if !strings.EqualFold(got.Name, want.Name) {
			return ErrDataLoss.New("schema drift: field %d is %q, expected %q",
				i, got.Name, want.Name)
		}
		if !typesMatch(got.Type, want.Type) {
			return ErrDataLoss.New("schema drift: field %q is %s, expected %s",
				got.Name, got.Type, want.Type)
		}
	}
	return nil
}

// typesMatch compares logical types. Datetimes are naive microsecond
// timestamps in this platform but parquet round-trips them as tz=UTC, so
// timestamps compare modulo an explicit UTC zone.
func typesMatch(got, want arrow.DataType) bool {
	gotTs, gotOk := got.(*arrow.TimestampType)
	wantTs, wantOk := want.(*arrow.TimestampType)
	if gotOk && wantOk {
		return gotTs.Unit == wantTs.Unit &&
			normalizeZone(gotTs.TimeZone) == normalizeZone(wantTs.TimeZone)
	}
	return arrow.TypeEqual(got, want)
}

func normalizeZone(tz string) string {
	if tz == "" || strings.EqualFold(tz, "UTC") {
		return "UTC"
	}
	return tz
}

// conform relabels decoded batches with the declared schema when the
// embedded one differs only in accepted ways (name case, UTC vs naive
// timestamps). Downstream encoders then see a single schema regardless of
// the stored representation.
func conform(reader BatchReader, expected *arrow.Schema) BatchReader {
	if expected == nil || expected.Equal(reader.Schema()) {
		return reader
	}
	return &conformReader{inner: reader, schema: expected}
}

type conformReader struct {
	inner  BatchReader
	schema *arrow.Schema
}

func (r *conformReader) Schema() *arrow.Schema { return r.schema }

func (r *conformReader) Read() (arrow.Record, error) {
	batch, err := r.inner.Read()
	if err != nil {
		return nil, err
	}
	defer batch.Release()
	// physical layout is identical, only the schema label changes
	return array.NewRecord(r.schema, batch.Columns(), batch.NumRows()), nil
}

func (r *conformReader) Release() { r.inner.Release() }
