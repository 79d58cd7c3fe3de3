package metadata

import (
	"strconv"
	"time"

	"tracd.io/tracd/pkg/pb"
)

// ISO formats used on the wire. Datetimes are always UTC and truncated to
// microseconds before encoding.
const (
	DatetimeFormat = "2006-01-02T15:04:05.000000Z"
	DateFormat     = "2006-01-02"
)

// EncodeDatetime truncates to microseconds and renders a wire datetime.
func EncodeDatetime(t time.Time) *pb.DatetimeValue {
	t = t.UTC().Truncate(time.Microsecond)
	return &pb.DatetimeValue{IsoDatetime: t.Format(DatetimeFormat)}
}

// DecodeDatetime parses a wire datetime.
func DecodeDatetime(v *pb.DatetimeValue) (time.Time, error) {
	if v == nil || v.IsoDatetime == "" {
		return time.Time{}, ErrValidation.New("datetime value not set")
	}
	t, err := time.Parse(time.RFC3339Nano, v.IsoDatetime)
	if err != nil {
		return time.Time{}, ErrValidation.New("invalid datetime %q", v.IsoDatetime)
	}
	return t.UTC().Truncate(time.Microsecond), nil
}

// EncodeDate renders a wire date.
func EncodeDate(t time.Time) *pb.DateValue {
	return &pb.DateValue{IsoDate: t.UTC().Format(DateFormat)}
}

// DecodeDate parses a wire date.
func DecodeDate(v *pb.DateValue) (time.Time, error) {
	if v == nil || v.IsoDate == "" {
		return time.Time{}, ErrValidation.New("date value not set")
	}
	t, err := time.Parse(DateFormat, v.IsoDate)
	if err != nil {
		return time.Time{}, ErrValidation.New("invalid date %q", v.IsoDate)
	}
	return t, nil
}

// EncodeValue converts a native Go value into a wire value of the given
// basic type. Integers are 64 bit signed, floats are 64 bit IEEE, decimals
// travel as arbitrary precision text.
func EncodeValue(basicType pb.BasicType, native interface{}) (*pb.Value, error) {
	v := &pb.Value{Type: basicType}

	switch basicType {
	case pb.BasicType_BOOLEAN:
		b, ok := native.(bool)
		if !ok {
			return nil, ErrValidation.New("expected bool, got %T", native)
		}
		v.V = &pb.Value_BooleanValue{BooleanValue: b}

	case pb.BasicType_INTEGER:
		switch i := native.(type) {
		case int:
			v.V = &pb.Value_IntegerValue{IntegerValue: int64(i)}
		case int32:
			v.V = &pb.Value_IntegerValue{IntegerValue: int64(i)}
		case int64:
			v.V = &pb.Value_IntegerValue{IntegerValue: i}
		default:
			return nil, ErrValidation.New("expected integer, got %T", native)
		}

	case pb.BasicType_FLOAT:
		switch f := native.(type) {
		case float32:
			v.V = &pb.Value_FloatValue{FloatValue: float64(f)}
		case float64:
			v.V = &pb.Value_FloatValue{FloatValue: f}
		default:
			return nil, ErrValidation.New("expected float, got %T", native)
		}

	case pb.BasicType_STRING:
		s, ok := native.(string)
		if !ok {
			return nil, ErrValidation.New("expected string, got %T", native)
		}
		v.V = &pb.Value_StringValue{StringValue: s}

	case pb.BasicType_DECIMAL:
		s, ok := native.(string)
		if !ok {
			return nil, ErrValidation.New("expected decimal text, got %T", native)
		}
		if _, err := strconv.ParseFloat(s, 64); err != nil {
			return nil, ErrValidation.New("invalid decimal %q", s)
		}
		v.V = &pb.Value_DecimalValue{DecimalValue: &pb.DecimalValue{Decimal: s}}

	case pb.BasicType_DATE:
		t, ok := native.(time.Time)
		if !ok {
			return nil, ErrValidation.New("expected time.Time, got %T", native)
		}
		v.V = &pb.Value_DateValue{DateValue: EncodeDate(t)}

	case pb.BasicType_DATETIME:
		t, ok := native.(time.Time)
		if !ok {
			return nil, ErrValidation.New("expected time.Time, got %T", native)
		}
		v.V = &pb.Value_DatetimeValue{DatetimeValue: EncodeDatetime(t)}

	default:
		return nil, ErrValidation.New("unsupported basic type %v", basicType)
	}

	return v, nil
}

// DecodeValue converts a wire value back into a native Go value.
// Decimals decode to their text form, dates and datetimes to time.Time.
func DecodeValue(v *pb.Value) (interface{}, error) {
	if v == nil {
		return nil, ErrValidation.New("value not set")
	}

	switch x := v.V.(type) {
	case *pb.Value_BooleanValue:
		return x.BooleanValue, nil
	case *pb.Value_IntegerValue:
		return x.IntegerValue, nil
	case *pb.Value_FloatValue:
		return x.FloatValue, nil
	case *pb.Value_StringValue:
		return x.StringValue, nil
	case *pb.Value_DecimalValue:
		if x.DecimalValue == nil {
			return nil, ErrValidation.New("decimal value not set")
		}
		return x.DecimalValue.Decimal, nil
	case *pb.Value_DateValue:
		return DecodeDate(x.DateValue)
	case *pb.Value_DatetimeValue:
		return DecodeDatetime(x.DatetimeValue)
	case *pb.Value_ArrayValue:
		if x.ArrayValue == nil {
			return nil, ErrValidation.New("array value not set")
		}
		items := make([]interface{}, 0, len(x.ArrayValue.Items))
		for _, item := range x.ArrayValue.Items {
			native, err := DecodeValue(item)
			if err != nil {
				return nil, err
			}
			items = append(items, native)
		}
		return items, nil
	default:
		return nil, ErrValidation.New("value has no content")
	}
}

// ValueType reports the basic type of a value, inferring it from the
// content when the type field was not set by the client.
func ValueType(v *pb.Value) pb.BasicType {
	if v == nil {
		return pb.BasicType_BASIC_TYPE_NOT_SET
	}
	if v.Type != pb.BasicType_BASIC_TYPE_NOT_SET {
		return v.Type
	}
	switch v.V.(type) {
	case *pb.Value_BooleanValue:
		return pb.BasicType_BOOLEAN
	case *pb.Value_IntegerValue:
		return pb.BasicType_INTEGER
	case *pb.Value_FloatValue:
		return pb.BasicType_FLOAT
	case *pb.Value_StringValue:
		return pb.BasicType_STRING
	case *pb.Value_DecimalValue:
		return pb.BasicType_DECIMAL
	case *pb.Value_DateValue:
		return pb.BasicType_DATE
	case *pb.Value_DatetimeValue:
		return pb.BasicType_DATETIME
	case *pb.Value_ArrayValue:
		return pb.BasicType_ARRAY
	default:
		return pb.BasicType_BASIC_TYPE_NOT_SET
	}
}
