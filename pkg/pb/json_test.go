package pb

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumJSON(t *testing.T) {
	out, err := json.Marshal(ObjectType_DATA)
	require.NoError(t, err)
	assert.Equal(t, `"DATA"`, string(out))

	var objectType ObjectType
	require.NoError(t, json.Unmarshal([]byte(`"schema"`), &objectType))
	assert.Equal(t, ObjectType_SCHEMA, objectType)

	require.NoError(t, json.Unmarshal([]byte(`1`), &objectType))
	assert.Equal(t, ObjectType(1), objectType)

	assert.Error(t, json.Unmarshal([]byte(`"NOT_A_TYPE"`), &objectType))
	assert.Error(t, json.Unmarshal([]byte(`999`), &objectType))
}

func TestValueJSON(t *testing.T) {
	testCases := []struct {
		name  string
		value *Value
		json  string
	}{
		{
			name:  "boolean",
			value: &Value{Type: BasicType_BOOLEAN, V: &Value_BooleanValue{BooleanValue: true}},
			json:  `{"boolean_value":true,"type":"BOOLEAN"}`,
		},
		{
			name:  "integer as string",
			value: &Value{Type: BasicType_INTEGER, V: &Value_IntegerValue{IntegerValue: 42}},
			json:  `{"integer_value":"42","type":"INTEGER"}`,
		},
		{
			name:  "string",
			value: &Value{Type: BasicType_STRING, V: &Value_StringValue{StringValue: "hello"}},
			json:  `{"string_value":"hello","type":"STRING"}`,
		},
		{
			name: "date",
			value: &Value{Type: BasicType_DATE,
				V: &Value_DateValue{DateValue: &DateValue{IsoDate: "2026-08-24"}}},
			json: `{"date_value":{"iso_date":"2026-08-24"},"type":"DATE"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := json.Marshal(tc.value)
			require.NoError(t, err)
			assert.JSONEq(t, tc.json, string(out))

			decoded := new(Value)
			require.NoError(t, json.Unmarshal(out, decoded))
			assert.Equal(t, tc.value, decoded)
		})
	}
}

func TestValueJSONIntegerAsNumber(t *testing.T) {
	decoded := new(Value)
	require.NoError(t, json.Unmarshal([]byte(`{"type":"INTEGER","integer_value":7}`), decoded))
	assert.Equal(t, int64(7), decoded.GetIntegerValue())
}

func TestValueJSONArray(t *testing.T) {
	value := &Value{Type: BasicType_ARRAY, V: &Value_ArrayValue{ArrayValue: &ArrayValue{
		Items: []*Value{
			{Type: BasicType_STRING, V: &Value_StringValue{StringValue: "a"}},
			{Type: BasicType_STRING, V: &Value_StringValue{StringValue: "b"}},
		},
	}}}

	out, err := json.Marshal(value)
	require.NoError(t, err)

	decoded := new(Value)
	require.NoError(t, json.Unmarshal(out, decoded))
	assert.Equal(t, value, decoded)
}

func TestTagSelectorJSON(t *testing.T) {
	selector := &TagSelector{
		ObjectType:     ObjectType_DATA,
		ObjectId:       "abc-123",
		ObjectCriteria: &TagSelector_ObjectVersion{ObjectVersion: 3},
		TagCriteria:    &TagSelector_LatestTag{LatestTag: true},
	}

	out, err := json.Marshal(selector)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"object_type":"DATA","object_id":"abc-123","object_version":3,"latest_tag":true}`,
		string(out))

	decoded := new(TagSelector)
	require.NoError(t, json.Unmarshal(out, decoded))
	assert.Equal(t, selector, decoded)
}

func TestTagSelectorJSONAsOf(t *testing.T) {
	selector := &TagSelector{
		ObjectType:     ObjectType_FILE,
		ObjectId:       "f-1",
		ObjectCriteria: &TagSelector_ObjectAsOf{ObjectAsOf: &DatetimeValue{IsoDatetime: "2026-01-01T00:00:00Z"}},
		TagCriteria:    &TagSelector_TagVersion{TagVersion: 2},
	}

	out, err := json.Marshal(selector)
	require.NoError(t, err)

	decoded := new(TagSelector)
	require.NoError(t, json.Unmarshal(out, decoded))
	assert.Equal(t, selector, decoded)
}

func TestObjectDefinitionJSON(t *testing.T) {
	def := &ObjectDefinition{
		ObjectType: ObjectType_SCHEMA,
		Definition: &ObjectDefinition_Schema{Schema: &SchemaDefinition{
			SchemaType: SchemaType_TABLE,
			Table: &TableSchema{Fields: []*FieldSchema{
				{FieldName: "id", FieldOrder: 0, FieldType: BasicType_INTEGER, BusinessKey: true},
				{FieldName: "name", FieldOrder: 1, FieldType: BasicType_STRING},
			}},
		}},
	}

	out, err := json.Marshal(def)
	require.NoError(t, err)

	decoded := new(ObjectDefinition)
	require.NoError(t, json.Unmarshal(out, decoded))
	assert.Equal(t, def, decoded)
}

func TestDataDefinitionJSON(t *testing.T) {
	def := &DataDefinition{
		SchemaSpecifier: &DataDefinition_SchemaId{SchemaId: &TagSelector{
			ObjectType:     ObjectType_SCHEMA,
			ObjectId:       "s-1",
			ObjectCriteria: &TagSelector_ObjectVersion{ObjectVersion: 1},
			TagCriteria:    &TagSelector_LatestTag{LatestTag: true},
		}},
		StorageId: &TagSelector{
			ObjectType:     ObjectType_STORAGE,
			ObjectId:       "st-1",
			ObjectCriteria: &TagSelector_LatestObject{LatestObject: true},
			TagCriteria:    &TagSelector_LatestTag{LatestTag: true},
		},
	}

	out, err := json.Marshal(def)
	require.NoError(t, err)

	decoded := new(DataDefinition)
	require.NoError(t, json.Unmarshal(out, decoded))
	assert.Equal(t, def, decoded)
}

func TestSearchExpressionJSON(t *testing.T) {
	expr := &SearchExpression{Expr: &SearchExpression_Logical{Logical: &LogicalExpression{
		Operator: LogicalOperator_AND,
		Expr: []*SearchExpression{
			{Expr: &SearchExpression_Term{Term: &SearchTerm{
				AttrName: "region", AttrType: BasicType_STRING, Operator: SearchOperator_EQ,
				SearchValue: &Value{Type: BasicType_STRING, V: &Value_StringValue{StringValue: "EU"}},
			}}},
			{Expr: &SearchExpression_Term{Term: &SearchTerm{
				AttrName: "rows", AttrType: BasicType_INTEGER, Operator: SearchOperator_GT,
				SearchValue: &Value{Type: BasicType_INTEGER, V: &Value_IntegerValue{IntegerValue: 100}},
			}}},
		},
	}}}

	out, err := json.Marshal(expr)
	require.NoError(t, err)

	decoded := new(SearchExpression)
	require.NoError(t, json.Unmarshal(out, decoded))
	assert.Equal(t, expr, decoded)
}
