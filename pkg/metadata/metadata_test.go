package metadata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tracd.io/tracd/pkg/pb"
)

func TestValueRoundTrip(t *testing.T) {
	date := time.Date(1970, 1, 10, 0, 0, 0, 0, time.UTC)
	datetime := time.Date(2024, 5, 1, 12, 30, 15, 123456000, time.UTC)

	cases := []struct {
		basicType pb.BasicType
		native    interface{}
		expect    interface{}
	}{
		{pb.BasicType_BOOLEAN, true, true},
		{pb.BasicType_INTEGER, int64(42), int64(42)},
		{pb.BasicType_INTEGER, 7, int64(7)},
		{pb.BasicType_FLOAT, 1.5, 1.5},
		{pb.BasicType_STRING, "hello world", "hello world"},
		{pb.BasicType_DECIMAL, "123.000000000042", "123.000000000042"},
		{pb.BasicType_DATE, date, date},
		{pb.BasicType_DATETIME, datetime, datetime},
	}

	for _, tc := range cases {
		encoded, err := EncodeValue(tc.basicType, tc.native)
		require.NoError(t, err, "type %v", tc.basicType)
		decoded, err := DecodeValue(encoded)
		require.NoError(t, err, "type %v", tc.basicType)
		assert.Equal(t, tc.expect, decoded, "type %v", tc.basicType)
	}
}

func TestDatetimeTruncatedToMicros(t *testing.T) {
	in := time.Date(2024, 5, 1, 12, 30, 15, 123456789, time.UTC)
	out, err := DecodeDatetime(EncodeDatetime(in))
	require.NoError(t, err)
	assert.Equal(t, in.Truncate(time.Microsecond), out)
}

func TestEncodeValueTypeMismatch(t *testing.T) {
	_, err := EncodeValue(pb.BasicType_INTEGER, "not a number")
	assert.Error(t, err)
	_, err = EncodeValue(pb.BasicType_DECIMAL, "not a decimal")
	assert.Error(t, err)
}

func TestVersionIncrements(t *testing.T) {
	now := time.Now()
	header := NewObjectHeader(pb.ObjectType_DATA, NewObjectId(), now)
	assert.Equal(t, int32(1), header.ObjectVersion)
	assert.Equal(t, int32(1), header.TagVersion)

	tagged := NextTagHeader(header, now.Add(time.Second))
	assert.Equal(t, int32(1), tagged.ObjectVersion)
	assert.Equal(t, int32(2), tagged.TagVersion)
	assert.Equal(t, header.ObjectTimestamp, tagged.ObjectTimestamp)

	next := NextObjectHeader(tagged, now.Add(2*time.Second))
	assert.Equal(t, int32(2), next.ObjectVersion)
	assert.Equal(t, int32(1), next.TagVersion)
}

func TestSelectorValidation(t *testing.T) {
	id := NewObjectId()

	valid := &pb.TagSelector{
		ObjectType:     pb.ObjectType_DATA,
		ObjectId:       id,
		ObjectCriteria: &pb.TagSelector_ObjectVersion{ObjectVersion: 1},
		TagCriteria:    &pb.TagSelector_LatestTag{LatestTag: true},
	}
	require.NoError(t, ValidateSelector(valid))

	cases := []*pb.TagSelector{
		nil,
		{ObjectId: id,
			ObjectCriteria: &pb.TagSelector_LatestObject{LatestObject: true},
			TagCriteria:    &pb.TagSelector_LatestTag{LatestTag: true}},
		{ObjectType: pb.ObjectType_DATA, ObjectId: "not-a-uuid",
			ObjectCriteria: &pb.TagSelector_LatestObject{LatestObject: true},
			TagCriteria:    &pb.TagSelector_LatestTag{LatestTag: true}},
		// zero versions are invalid on both criteria
		{ObjectType: pb.ObjectType_DATA, ObjectId: id,
			ObjectCriteria: &pb.TagSelector_ObjectVersion{ObjectVersion: 0},
			TagCriteria:    &pb.TagSelector_LatestTag{LatestTag: true}},
		{ObjectType: pb.ObjectType_DATA, ObjectId: id,
			ObjectCriteria: &pb.TagSelector_LatestObject{LatestObject: true},
			TagCriteria:    &pb.TagSelector_TagVersion{TagVersion: 0}},
		// missing criteria
		{ObjectType: pb.ObjectType_DATA, ObjectId: id,
			TagCriteria: &pb.TagSelector_LatestTag{LatestTag: true}},
		{ObjectType: pb.ObjectType_DATA, ObjectId: id,
			ObjectCriteria: &pb.TagSelector_LatestObject{LatestObject: true}},
	}
	for i, selector := range cases {
		assert.Error(t, ValidateSelector(selector), "case %d", i)
	}
}

func TestAttrNameValidation(t *testing.T) {
	require.NoError(t, ValidateAttrName("my_attr", false))
	require.NoError(t, ValidateAttrName("Attr9", false))

	for _, name := range []string{"", "9lives", "has space", "has-dash"} {
		assert.Error(t, ValidateAttrName(name, false), "name %q", name)
	}
	for _, name := range []string{"trac_data_rows", "_private", "__hidden"} {
		assert.Error(t, ValidateAttrName(name, false), "name %q", name)
		assert.NoError(t, ValidateAttrName(name, true), "trusted name %q", name)
	}
}

func TestFileNameValidation(t *testing.T) {
	require.NoError(t, ValidateFileName("report.txt"))
	require.NoError(t, ValidateFileName("quarterly results 2024.csv"))

	bad := []string{
		"", "with/slash.txt", "with\\backslash.txt", "nul.txt", "COM1",
		" leading.txt", "trailing.txt ", "trailing.", "has\x01control.txt",
		"trac_reserved.txt", "_hidden.txt",
	}
	for _, name := range bad {
		assert.Error(t, ValidateFileName(name), "name %q", name)
	}

	assert.Equal(t, "txt", FileExtension("report.txt"))
	assert.Equal(t, "", FileExtension("no_extension"))
}

func TestApplyTagUpdates(t *testing.T) {
	v := func(s string) *pb.Value {
		return &pb.Value{Type: pb.BasicType_STRING, V: &pb.Value_StringValue{StringValue: s}}
	}

	attrs, err := ApplyTagUpdates(nil, []*pb.TagUpdate{
		{Operation: pb.TagOperation_CREATE_ATTR, AttrName: "a", Value: v("one")},
		{Operation: pb.TagOperation_CREATE_OR_REPLACE_ATTR, AttrName: "b", Value: v("two")},
	})
	require.NoError(t, err)
	assert.Len(t, attrs, 2)

	// replace missing attr is a precondition failure
	_, err = ApplyTagUpdates(attrs, []*pb.TagUpdate{
		{Operation: pb.TagOperation_REPLACE_ATTR, AttrName: "missing", Value: v("x")},
	})
	require.Error(t, err)
	assert.True(t, ErrPrecondition.Has(err))

	// create over existing attr is a precondition failure
	_, err = ApplyTagUpdates(attrs, []*pb.TagUpdate{
		{Operation: pb.TagOperation_CREATE_ATTR, AttrName: "a", Value: v("x")},
	})
	require.Error(t, err)
	assert.True(t, ErrPrecondition.Has(err))

	// append turns a single value into an array
	attrs, err = ApplyTagUpdates(attrs, []*pb.TagUpdate{
		{Operation: pb.TagOperation_APPEND_ATTR, AttrName: "a", Value: v("more")},
	})
	require.NoError(t, err)
	arr := attrs["a"].GetArrayValue()
	require.NotNil(t, arr)
	assert.Len(t, arr.Items, 2)

	// delete then clear
	attrs, err = ApplyTagUpdates(attrs, []*pb.TagUpdate{
		{Operation: pb.TagOperation_DELETE_ATTR, AttrName: "b"},
		{Operation: pb.TagOperation_CLEAR_ALL_ATTR},
	})
	require.NoError(t, err)
	assert.Empty(t, attrs)
}

func TestSchemaCompatibility(t *testing.T) {
	schema := func(fields ...*pb.FieldSchema) *pb.SchemaDefinition {
		return &pb.SchemaDefinition{
			SchemaType: pb.SchemaType_TABLE,
			Table:      &pb.TableSchema{Fields: fields},
		}
	}
	field := func(name string, order int32, ft pb.BasicType) *pb.FieldSchema {
		return &pb.FieldSchema{FieldName: name, FieldOrder: order, FieldType: ft}
	}

	prior := schema(
		field("id", 0, pb.BasicType_INTEGER),
		field("name", 1, pb.BasicType_STRING),
	)

	// appending a field is fine
	next := schema(
		field("id", 0, pb.BasicType_INTEGER),
		field("name", 1, pb.BasicType_STRING),
		field("extra", 2, pb.BasicType_STRING),
	)
	require.NoError(t, CheckSchemaCompatibility(prior, next))

	// removing a field is not
	err := CheckSchemaCompatibility(prior, schema(field("id", 0, pb.BasicType_INTEGER)))
	require.Error(t, err)
	assert.True(t, ErrPrecondition.Has(err))

	// changing a type is not
	err = CheckSchemaCompatibility(prior, schema(
		field("id", 0, pb.BasicType_STRING),
		field("name", 1, pb.BasicType_STRING),
	))
	require.Error(t, err)
	assert.True(t, ErrPrecondition.Has(err))
}

func TestDataItemTokens(t *testing.T) {
	id := NewObjectId()
	item := DataItemForDelta(id, 0, 0)
	assert.Regexp(t, `^data/table/`+id+`/snap-0/delta-0-x[0-9a-f]{6}$`, item)
	assert.Equal(t, "file/"+id+"/version-3", DataItemForFile(id, 3))
}

func TestDefinitionDiscriminator(t *testing.T) {
	def := &pb.ObjectDefinition{
		ObjectType: pb.ObjectType_FILE,
		Definition: &pb.ObjectDefinition_Data{Data: &pb.DataDefinition{}},
	}
	assert.Error(t, ValidateDefinition(def))

	def = &pb.ObjectDefinition{
		ObjectType: pb.ObjectType_JOB,
		Definition: &pb.ObjectDefinition_Job{Job: &pb.JobDefinition{JobType: "RUN_MODEL"}},
	}
	assert.NoError(t, ValidateDefinition(def))
}
