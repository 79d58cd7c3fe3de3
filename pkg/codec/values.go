package codec

import (
	"strconv"
	"time"

	"github.com/apache/arrow/go/v12/arrow"
	"github.com/apache/arrow/go/v12/arrow/array"
	"github.com/apache/arrow/go/v12/arrow/decimal128"

	"tracd.io/tracd/pkg/metadata"
)

// datetime layouts accepted on input, most specific first
var datetimeLayouts = []string{
	metadata.DatetimeFormat,
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

func parseDatetime(cell string) (time.Time, error) {
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, cell); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrDataLoss.New("invalid datetime %q", cell)
}

// appendCell parses one text cell into a column builder. The empty cell is
// null unless the field forbids nulls; a cell the field type cannot
// represent is data loss.
func appendCell(builder array.Builder, field arrow.Field, cell string) error {
	if cell == "" {
		if !field.Nullable {
			return ErrDataLoss.New("field %q does not allow nulls", field.Name)
		}
		builder.AppendNull()
		return nil
	}

	switch b := builder.(type) {
	case *array.BooleanBuilder:
		v, err := strconv.ParseBool(cell)
		if err != nil {
			return ErrDataLoss.New("field %q: invalid boolean %q", field.Name, cell)
		}
		b.Append(v)

	case *array.Int64Builder:
		v, err := strconv.ParseInt(cell, 10, 64)
		if err != nil {
			return ErrDataLoss.New("field %q: invalid integer %q", field.Name, cell)
		}
		b.Append(v)

	case *array.Float64Builder:
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return ErrDataLoss.New("field %q: invalid float %q", field.Name, cell)
		}
		b.Append(v)

	case *array.Decimal128Builder:
		v, err := decimal128.FromString(cell, DecimalPrecision, DecimalScale)
		if err != nil {
			return ErrDataLoss.New("field %q: invalid decimal %q", field.Name, cell)
		}
		b.Append(v)

	case *array.StringBuilder:
		b.Append(cell)

	case *array.Date32Builder:
		t, err := time.Parse(metadata.DateFormat, cell)
		if err != nil {
			return ErrDataLoss.New("field %q: invalid date %q", field.Name, cell)
		}
		b.Append(arrow.Date32FromTime(t))

	case *array.TimestampBuilder:
		t, err := parseDatetime(cell)
		if err != nil {
			return ErrDataLoss.New("field %q: invalid datetime %q", field.Name, cell)
		}
		b.Append(arrow.Timestamp(t.UnixMicro()))

	default:
		return Error.New("field %q has unsupported builder %T", field.Name, builder)
	}
	return nil
}

// renderCell formats one column value as text. Nulls render as the empty
// string.
func renderCell(col arrow.Array, row int) string {
	if col.IsNull(row) {
		return ""
	}

	switch c := col.(type) {
	case *array.Boolean:
		return strconv.FormatBool(c.Value(row))
	case *array.Int64:
		return strconv.FormatInt(c.Value(row), 10)
	case *array.Float64:
		return strconv.FormatFloat(c.Value(row), 'g', -1, 64)
	case *array.Decimal128:
		return c.Value(row).ToString(DecimalScale)
	case *array.String:
		return c.Value(row)
	case *array.Date32:
		return c.Value(row).ToTime().Format(metadata.DateFormat)
	case *array.Timestamp:
		return c.Value(row).ToTime(arrow.Microsecond).UTC().Format(metadata.DatetimeFormat)
	default:
		return ""
	}
}
