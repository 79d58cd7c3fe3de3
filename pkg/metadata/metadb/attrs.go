package metadb

import (
	"context"
	"database/sql"

	"github.com/golang/protobuf/proto"

	"tracd.io/tracd/pkg/metadata"
	"tracd.io/tracd/pkg/pb"
)

// attrRow is one flattened attr value. Arrays expand into one row per item
// with increasing attr_index, scalars use index 0.
type attrRow struct {
	name     string
	index    int32
	attrType pb.BasicType

	valueBoolean  sql.NullBool
	valueInteger  sql.NullInt64
	valueFloat    sql.NullFloat64
	valueString   sql.NullString
	valueDecimal  sql.NullString
	valueDate     sql.NullString
	valueDatetime sql.NullString
}

func buildAttrRows(attrs map[string]*pb.Value) ([]attrRow, error) {
	rows := make([]attrRow, 0, len(attrs))
	for name, value := range attrs {
		if arr := value.GetArrayValue(); arr != nil {
			for i, item := range arr.Items {
				row, err := buildAttrRow(name, int32(i), item)
				if err != nil {
					return nil, err
				}
				rows = append(rows, row)
			}
			continue
		}
		row, err := buildAttrRow(name, 0, value)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func buildAttrRow(name string, index int32, value *pb.Value) (attrRow, error) {
	row := attrRow{name: name, index: index, attrType: metadata.ValueType(value)}

	switch v := value.GetV().(type) {
	case *pb.Value_BooleanValue:
		row.valueBoolean = sql.NullBool{Bool: v.BooleanValue, Valid: true}
	case *pb.Value_IntegerValue:
		row.valueInteger = sql.NullInt64{Int64: v.IntegerValue, Valid: true}
	case *pb.Value_FloatValue:
		row.valueFloat = sql.NullFloat64{Float64: v.FloatValue, Valid: true}
	case *pb.Value_StringValue:
		row.valueString = sql.NullString{String: v.StringValue, Valid: true}
	case *pb.Value_DecimalValue:
		row.valueDecimal = sql.NullString{String: v.DecimalValue.GetDecimal(), Valid: true}
	case *pb.Value_DateValue:
		row.valueDate = sql.NullString{String: v.DateValue.GetIsoDate(), Valid: true}
	case *pb.Value_DatetimeValue:
		row.valueDatetime = sql.NullString{String: v.DatetimeValue.GetIsoDatetime(), Valid: true}
	default:
		return attrRow{}, ErrInvalidRequest.New("attr %q has no usable value", name)
	}
	return row, nil
}

func (db *DB) insertTagAttrs(ctx context.Context, tx *sql.Tx, tenantId int64, header *pb.TagHeader, attrs map[string]*pb.Value) error {
	rows, err := buildAttrRows(attrs)
	if err != nil {
		return err
	}

	query := db.rebind(`INSERT INTO tag_attrs (
		tenant_id, object_id, object_version, tag_version,
		attr_name, attr_index, attr_type,
		value_boolean, value_integer, value_float, value_string,
		value_decimal, value_date, value_datetime
	) VALUES ( ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ? )`)

	for _, row := range rows {
		_, err := tx.ExecContext(ctx, query,
			tenantId, header.ObjectId, header.ObjectVersion, header.TagVersion,
			row.name, row.index, int32(row.attrType),
			row.valueBoolean, row.valueInteger, row.valueFloat, row.valueString,
			row.valueDecimal, row.valueDate, row.valueDatetime)
		if err != nil {
			return err
		}
	}
	return nil
}

// insertTag stores the tag blob together with its flattened attrs.
func (db *DB) insertTag(ctx context.Context, tx *sql.Tx, tenantId int64, tag *pb.Tag) error {
	blob, err := proto.Marshal(tag)
	if err != nil {
		return ErrInvalidRequest.New("tag does not serialize: %w", err)
	}

	header := tag.Header
	_, err = tx.ExecContext(ctx, db.rebind(
		`INSERT INTO object_tags (
			tenant_id, object_id, object_version, tag_version, tag_timestamp, tag
		) VALUES ( ?, ?, ?, ?, ?, ? )`),
		tenantId, header.ObjectId, header.ObjectVersion, header.TagVersion,
		header.TagTimestamp.GetIsoDatetime(), blob)
	if err != nil {
		return err
	}

	return db.insertTagAttrs(ctx, tx, tenantId, header, tag.Attrs)
}

// insertDefinition stores one object version's definition blob.
func (db *DB) insertDefinition(ctx context.Context, tx *sql.Tx, tenantId int64, tag *pb.Tag) error {
	blob, err := proto.Marshal(tag.Definition)
	if err != nil {
		return ErrInvalidRequest.New("definition does not serialize: %w", err)
	}

	header := tag.Header
	_, err = tx.ExecContext(ctx, db.rebind(
		`INSERT INTO object_definitions (
			tenant_id, object_id, object_version, object_timestamp, definition
		) VALUES ( ?, ?, ?, ?, ? )`),
		tenantId, header.ObjectId, header.ObjectVersion,
		header.ObjectTimestamp.GetIsoDatetime(), blob)
	return err
}

func decodeTag(blob []byte) (*pb.Tag, error) {
	tag := &pb.Tag{}
	if err := proto.Unmarshal(blob, tag); err != nil {
		return nil, Error.New("stored tag does not parse: %w", err)
	}
	return tag, nil
}
