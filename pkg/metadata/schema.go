package metadata

import (
	"strings"

	"tracd.io/tracd/pkg/pb"
)

// ValidateSchema checks structural rules of a table schema: type set,
// at least one field, unique case-insensitive names, contiguous field order.
func ValidateSchema(schema *pb.SchemaDefinition) error {
	if schema == nil {
		return ErrValidation.New("schema not set")
	}
	if schema.SchemaType != pb.SchemaType_TABLE {
		return ErrValidation.New("unsupported schema type %v", schema.SchemaType)
	}
	if schema.Table == nil || len(schema.Table.Fields) == 0 {
		return ErrValidation.New("table schema has no fields")
	}

	seen := make(map[string]bool, len(schema.Table.Fields))
	for i, field := range schema.Table.Fields {
		if field.FieldName == "" {
			return ErrValidation.New("field %d has no name", i)
		}
		lower := strings.ToLower(field.FieldName)
		if seen[lower] {
			return ErrValidation.New("duplicate field name %q", field.FieldName)
		}
		seen[lower] = true
		if int(field.FieldOrder) != i {
			return ErrValidation.New("field %q order %d, expected %d", field.FieldName, field.FieldOrder, i)
		}
		switch field.FieldType {
		case pb.BasicType_BOOLEAN, pb.BasicType_INTEGER, pb.BasicType_FLOAT,
			pb.BasicType_DECIMAL, pb.BasicType_STRING, pb.BasicType_DATE,
			pb.BasicType_DATETIME:
		default:
			return ErrValidation.New("field %q has unsupported type %v", field.FieldName, field.FieldType)
		}
	}
	return nil
}

// CheckSchemaCompatibility enforces the update rules between an existing
// schema and its proposed replacement: fields may be appended at the end,
// existing fields must keep their name, order and type.
func CheckSchemaCompatibility(prior, next *pb.SchemaDefinition) error {
	if err := ValidateSchema(next); err != nil {
		return err
	}
	priorFields := prior.GetTable().GetFields()
	nextFields := next.GetTable().GetFields()

	if len(nextFields) < len(priorFields) {
		return ErrPrecondition.New(
			"schema update removes fields (%d -> %d)", len(priorFields), len(nextFields))
	}
	for i, pf := range priorFields {
		nf := nextFields[i]
		if !strings.EqualFold(pf.FieldName, nf.FieldName) {
			return ErrPrecondition.New(
				"schema update renames field %q to %q", pf.FieldName, nf.FieldName)
		}
		if pf.FieldType != nf.FieldType {
			return ErrPrecondition.New(
				"schema update changes type of field %q (%v -> %v)",
				pf.FieldName, pf.FieldType, nf.FieldType)
		}
	}
	return nil
}
