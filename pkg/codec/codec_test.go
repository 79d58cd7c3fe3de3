package codec

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/apache/arrow/go/v12/arrow"
	"github.com/apache/arrow/go/v12/arrow/array"
	"github.com/apache/arrow/go/v12/arrow/memory"
	"github.com/stretchr/testify/require"

	"tracd.io/tracd/pkg/pb"
)

func testTableSchema() *pb.SchemaDefinition {
	return &pb.SchemaDefinition{
		SchemaType: pb.SchemaType_TABLE,
		Table: &pb.TableSchema{
			Fields: []*pb.FieldSchema{
				{FieldName: "flag", FieldOrder: 0, FieldType: pb.BasicType_BOOLEAN},
				{FieldName: "count", FieldOrder: 1, FieldType: pb.BasicType_INTEGER},
				{FieldName: "ratio", FieldOrder: 2, FieldType: pb.BasicType_FLOAT},
				{FieldName: "amount", FieldOrder: 3, FieldType: pb.BasicType_DECIMAL},
				{FieldName: "label", FieldOrder: 4, FieldType: pb.BasicType_STRING},
				{FieldName: "open_date", FieldOrder: 5, FieldType: pb.BasicType_DATE},
				{FieldName: "updated", FieldOrder: 6, FieldType: pb.BasicType_DATETIME},
			},
		},
	}
}

func testArrowSchema(t *testing.T) *arrow.Schema {
	schema, err := ArrowSchema(testTableSchema())
	require.NoError(t, err)
	return schema
}

// makeBatch builds one record from rendered cell text, empty cell is null.
func makeBatch(t *testing.T, schema *arrow.Schema, alloc memory.Allocator, rows [][]string) arrow.Record {
	builder := array.NewRecordBuilder(alloc, schema)
	defer builder.Release()
	for _, row := range rows {
		require.Len(t, row, len(schema.Fields()))
		for col, cell := range row {
			require.NoError(t, appendCell(builder.Field(col), schema.Field(col), cell))
		}
	}
	return builder.NewRecord()
}

// readRows drains a batch reader into rendered cell text.
func readRows(t *testing.T, reader BatchReader) [][]string {
	var rows [][]string
	for {
		batch, err := reader.Read()
		if err == io.EOF {
			return rows
		}
		require.NoError(t, err)
		for row := 0; row < int(batch.NumRows()); row++ {
			cells := make([]string, int(batch.NumCols()))
			for col := range cells {
				cells[col] = renderCell(batch.Column(col), row)
			}
			rows = append(rows, cells)
		}
		batch.Release()
	}
}

func TestRegistry(t *testing.T) {
	for _, format := range []string{"CSV", "csv", "text/csv", "JSON", "ARROW_STREAM", "ARROW_FILE", "PARQUET"} {
		c, err := ForFormat(format)
		require.NoError(t, err, format)
		require.NotNil(t, c, format)
	}

	_, err := ForFormat("EXCEL")
	require.True(t, ErrUnsupportedFormat.Has(err))
	_, err = ForFormat("")
	require.True(t, ErrUnsupportedFormat.Has(err))
}

func TestCSVDecodeAllTypes(t *testing.T) {
	input := strings.Join([]string{
		"flag,count,ratio,amount,label,open_date,updated",
		"true,42,1.5,123.45,hello,2024-03-01,2024-03-01T10:30:00.000000Z",
		",,,,,,",
		`false,-7,-0.25,-0.01,"with, comma",1999-12-31,2023-06-15T08:00:00Z`,
	}, "\n")

	schema := testArrowSchema(t)
	c, err := ForFormat("CSV")
	require.NoError(t, err)

	reader, err := c.NewDecoder(strings.NewReader(input), schema, memory.DefaultAllocator)
	require.NoError(t, err)
	defer reader.Release()

	rows := readRows(t, reader)
	require.Equal(t, [][]string{
		{"true", "42", "1.5", "123.450000000000", "hello", "2024-03-01", "2024-03-01T10:30:00.000000Z"},
		{"", "", "", "", "", "", ""},
		{"false", "-7", "-0.25", "-0.010000000000", "with, comma", "1999-12-31", "2023-06-15T08:00:00.000000Z"},
	}, rows)
}

func TestCSVHeaderMismatch(t *testing.T) {
	schema := testArrowSchema(t)
	c, err := ForFormat("CSV")
	require.NoError(t, err)

	// extra column
	_, err = c.NewDecoder(strings.NewReader("flag,count,ratio,amount,label,open_date,updated,extra\n"),
		schema, memory.DefaultAllocator)
	require.True(t, ErrDataLoss.Has(err))

	// missing columns
	_, err = c.NewDecoder(strings.NewReader("flag,count\n"), schema, memory.DefaultAllocator)
	require.True(t, ErrDataLoss.Has(err))

	// duplicate column
	_, err = c.NewDecoder(strings.NewReader("flag,flag,ratio,amount,label,open_date,updated\n"),
		schema, memory.DefaultAllocator)
	require.True(t, ErrDataLoss.Has(err))

	// right names, wrong order
	_, err = c.NewDecoder(strings.NewReader("count,flag,ratio,amount,label,open_date,updated\n"),
		schema, memory.DefaultAllocator)
	require.True(t, ErrDataLoss.Has(err))

	// no header at all
	_, err = c.NewDecoder(strings.NewReader(""), schema, memory.DefaultAllocator)
	require.True(t, ErrDataLoss.Has(err))
}

func TestCSVBadValue(t *testing.T) {
	input := "flag,count,ratio,amount,label,open_date,updated\n" +
		"true,notanumber,1.5,1,x,2024-01-01,2024-01-01T00:00:00Z\n"

	c, err := ForFormat("CSV")
	require.NoError(t, err)
	reader, err := c.NewDecoder(strings.NewReader(input), testArrowSchema(t), memory.DefaultAllocator)
	require.NoError(t, err)
	defer reader.Release()

	_, err = reader.Read()
	require.True(t, ErrDataLoss.Has(err))
}

func TestCSVEncodeRoundTrip(t *testing.T) {
	schema := testArrowSchema(t)
	rows := [][]string{
		{"true", "1", "0.5", "10.01", "a", "2020-01-02", "2020-01-02T03:04:05.000000Z"},
		{"", "", "", "", "", "", ""},
	}
	batch := makeBatch(t, schema, memory.DefaultAllocator, rows)
	defer batch.Release()

	c, err := ForFormat("CSV")
	require.NoError(t, err)

	var buf bytes.Buffer
	writer, err := c.NewEncoder(&buf, schema, memory.DefaultAllocator)
	require.NoError(t, err)
	require.NoError(t, writer.Write(batch))
	require.NoError(t, writer.Close())

	reader, err := c.NewDecoder(&buf, schema, memory.DefaultAllocator)
	require.NoError(t, err)
	defer reader.Release()
	require.Equal(t, [][]string{
		{"true", "1", "0.5", "10.010000000000", "a", "2020-01-02", "2020-01-02T03:04:05.000000Z"},
		{"", "", "", "", "", "", ""},
	}, readRows(t, reader))
}

func TestJSONDecode(t *testing.T) {
	input := `[
		{"flag": true, "count": 42, "ratio": 1.5, "amount": "123.45",
		 "label": "hello", "open_date": "2024-03-01", "updated": "2024-03-01T10:30:00.000000Z"},
		{"count": null, "label": "second"}
	]`

	c, err := ForFormat("JSON")
	require.NoError(t, err)
	reader, err := c.NewDecoder(strings.NewReader(input), testArrowSchema(t), memory.DefaultAllocator)
	require.NoError(t, err)
	defer reader.Release()

	rows := readRows(t, reader)
	require.Equal(t, [][]string{
		{"true", "42", "1.5", "123.450000000000", "hello", "2024-03-01", "2024-03-01T10:30:00.000000Z"},
		{"", "", "", "", "second", "", ""},
	}, rows)
}

func TestJSONUnknownKey(t *testing.T) {
	c, err := ForFormat("JSON")
	require.NoError(t, err)
	reader, err := c.NewDecoder(strings.NewReader(`[{"bogus": 1}]`), testArrowSchema(t), memory.DefaultAllocator)
	require.NoError(t, err)
	defer reader.Release()

	_, err = reader.Read()
	require.True(t, ErrDataLoss.Has(err))
}

func TestJSONTypeMismatch(t *testing.T) {
	c, err := ForFormat("JSON")
	require.NoError(t, err)
	reader, err := c.NewDecoder(strings.NewReader(`[{"count": "notanumber"}]`), testArrowSchema(t), memory.DefaultAllocator)
	require.NoError(t, err)
	defer reader.Release()

	_, err = reader.Read()
	require.True(t, ErrDataLoss.Has(err))
}

func TestJSONNotAnArray(t *testing.T) {
	c, err := ForFormat("JSON")
	require.NoError(t, err)
	_, err = c.NewDecoder(strings.NewReader(`{"flag": true}`), testArrowSchema(t), memory.DefaultAllocator)
	require.True(t, ErrDataLoss.Has(err))
}

func TestJSONEncodeRoundTrip(t *testing.T) {
	schema := testArrowSchema(t)
	batch := makeBatch(t, schema, memory.DefaultAllocator, [][]string{
		{"true", "1", "0.5", "10.01", "a", "2020-01-02", "2020-01-02T03:04:05.000000Z"},
		{"", "", "", "", "", "", ""},
	})
	defer batch.Release()

	c, err := ForFormat("JSON")
	require.NoError(t, err)

	var buf bytes.Buffer
	writer, err := c.NewEncoder(&buf, schema, memory.DefaultAllocator)
	require.NoError(t, err)
	require.NoError(t, writer.Write(batch))
	require.NoError(t, writer.Close())

	// output is itself valid json
	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	require.Equal(t, true, decoded[0]["flag"])
	require.Nil(t, decoded[1]["flag"])

	reader, err := c.NewDecoder(&buf, schema, memory.DefaultAllocator)
	require.NoError(t, err)
	defer reader.Release()
	require.Equal(t, [][]string{
		{"true", "1", "0.5", "10.010000000000", "a", "2020-01-02", "2020-01-02T03:04:05.000000Z"},
		{"", "", "", "", "", "", ""},
	}, readRows(t, reader))
}

func TestArrowRoundTrip(t *testing.T) {
	for _, format := range []string{"ARROW_STREAM", "ARROW_FILE", "PARQUET"} {
		t.Run(format, func(t *testing.T) {
			schema := testArrowSchema(t)
			rows := [][]string{
				{"true", "42", "1.5", "123.45", "hello", "2024-03-01", "2024-03-01T10:30:00.000000Z"},
				{"", "", "", "", "", "", ""},
				{"false", "-7", "-0.25", "-0.01", "bye", "1999-12-31", "2023-06-15T08:00:00.000000Z"},
			}
			batch := makeBatch(t, schema, memory.DefaultAllocator, rows)
			defer batch.Release()

			c, err := ForFormat(format)
			require.NoError(t, err)

			var buf bytes.Buffer
			writer, err := c.NewEncoder(&buf, schema, memory.DefaultAllocator)
			require.NoError(t, err)
			require.NoError(t, writer.Write(batch))
			require.NoError(t, writer.Close())

			reader, err := c.NewDecoder(&buf, schema, memory.DefaultAllocator)
			require.NoError(t, err)
			defer reader.Release()
			// decoded batches come back under the declared schema, whatever
			// representation the format stored
			require.True(t, reader.Schema().Equal(schema))
			require.Equal(t, [][]string{
				{"true", "42", "1.5", "123.450000000000", "hello", "2024-03-01", "2024-03-01T10:30:00.000000Z"},
				{"", "", "", "", "", "", ""},
				{"false", "-7", "-0.25", "-0.010000000000", "bye", "1999-12-31", "2023-06-15T08:00:00.000000Z"},
			}, readRows(t, reader))
		})
	}
}

func TestArrowFileBuffersUntilClose(t *testing.T) {
	schema := testArrowSchema(t)
	batch := makeBatch(t, schema, memory.DefaultAllocator, [][]string{
		{"true", "1", "0.5", "10.01", "a", "2020-01-02", "2020-01-02T03:04:05.000000Z"},
	})
	defer batch.Release()

	c, err := ForFormat("ARROW_FILE")
	require.NoError(t, err)

	var buf bytes.Buffer
	writer, err := c.NewEncoder(&buf, schema, memory.DefaultAllocator)
	require.NoError(t, err)
	require.NoError(t, writer.Write(batch))

	// the trailing seek table is only known at the end, so nothing reaches
	// the sink before Close
	require.Zero(t, buf.Len())
	require.NoError(t, writer.Close())
	require.NotZero(t, buf.Len())

	reader, err := c.NewDecoder(&buf, schema, memory.DefaultAllocator)
	require.NoError(t, err)
	defer reader.Release()
	require.Len(t, readRows(t, reader), 1)
}

func TestCheckSchemaMatchTimestampZone(t *testing.T) {
	tsSchema := func(dataType arrow.DataType) *arrow.Schema {
		return arrow.NewSchema([]arrow.Field{
			{Name: "updated", Type: dataType, Nullable: true}}, nil)
	}
	naive := tsSchema(&arrow.TimestampType{Unit: arrow.Microsecond})
	zoned := tsSchema(&arrow.TimestampType{Unit: arrow.Microsecond, TimeZone: "UTC"})
	offset := tsSchema(&arrow.TimestampType{Unit: arrow.Microsecond, TimeZone: "America/New_York"})
	seconds := tsSchema(&arrow.TimestampType{Unit: arrow.Second})

	// parquet stores naive microsecond timestamps back as tz=UTC
	require.NoError(t, CheckSchemaMatch(naive, zoned))
	require.NoError(t, CheckSchemaMatch(zoned, naive))
	require.True(t, ErrDataLoss.Has(CheckSchemaMatch(naive, offset)))
	require.True(t, ErrDataLoss.Has(CheckSchemaMatch(naive, seconds)))
}

func TestRequiredFieldRejectsNull(t *testing.T) {
	schema, err := ArrowSchema(&pb.SchemaDefinition{
		SchemaType: pb.SchemaType_TABLE,
		Table: &pb.TableSchema{
			Fields: []*pb.FieldSchema{
				{FieldName: "id", FieldOrder: 0, FieldType: pb.BasicType_STRING, BusinessKey: true},
				{FieldName: "qty", FieldOrder: 1, FieldType: pb.BasicType_INTEGER, NotNull: true},
				{FieldName: "label", FieldOrder: 2, FieldType: pb.BasicType_STRING},
			},
		},
	})
	require.NoError(t, err)
	require.False(t, schema.Field(0).Nullable)
	require.False(t, schema.Field(1).Nullable)
	require.True(t, schema.Field(2).Nullable)

	c, err := ForFormat("CSV")
	require.NoError(t, err)

	for _, row := range []string{",1,alice", "a,,alice"} {
		reader, err := c.NewDecoder(strings.NewReader("id,qty,label\n"+row+"\n"),
			schema, memory.DefaultAllocator)
		require.NoError(t, err)
		_, err = reader.Read()
		require.True(t, ErrDataLoss.Has(err), row)
		reader.Release()
	}

	j, err := ForFormat("JSON")
	require.NoError(t, err)

	// an explicit null and a missing key both violate the constraint
	for _, input := range []string{
		`[{"id": null, "qty": 1, "label": "x"}]`,
		`[{"qty": 1, "label": "x"}]`,
	} {
		reader, err := j.NewDecoder(strings.NewReader(input), schema, memory.DefaultAllocator)
		require.NoError(t, err)
		_, err = reader.Read()
		require.True(t, ErrDataLoss.Has(err), input)
		reader.Release()
	}
}

func TestArrowSchemaDrift(t *testing.T) {
	full := testArrowSchema(t)
	// encode with a narrower schema than the hint used on decode
	narrow := arrow.NewSchema(full.Fields()[:3], nil)
	batch := makeBatch(t, narrow, memory.DefaultAllocator, [][]string{{"true", "1", "0.5"}})
	defer batch.Release()

	c, err := ForFormat("ARROW_STREAM")
	require.NoError(t, err)

	var buf bytes.Buffer
	writer, err := c.NewEncoder(&buf, narrow, memory.DefaultAllocator)
	require.NoError(t, err)
	require.NoError(t, writer.Write(batch))
	require.NoError(t, writer.Close())

	_, err = c.NewDecoder(&buf, full, memory.DefaultAllocator)
	require.True(t, ErrDataLoss.Has(err))
}

func TestSelfDescribingSchemaInference(t *testing.T) {
	full := testArrowSchema(t)
	batch := makeBatch(t, full, memory.DefaultAllocator,
		[][]string{{"true", "1", "0.5", "10.01", "a", "2020-01-02", "2020-01-02T03:04:05.000000Z"}})
	defer batch.Release()

	c, err := ForFormat("ARROW_STREAM")
	require.NoError(t, err)

	var buf bytes.Buffer
	writer, err := c.NewEncoder(&buf, full, memory.DefaultAllocator)
	require.NoError(t, err)
	require.NoError(t, writer.Write(batch))
	require.NoError(t, writer.Close())

	// nil schema hint: take the embedded schema and map it back
	reader, err := c.NewDecoder(&buf, nil, memory.DefaultAllocator)
	require.NoError(t, err)
	defer reader.Release()

	inferred, err := TableSchema(reader.Schema())
	require.NoError(t, err)
	require.Equal(t, testTableSchema().GetTable().String(), inferred.GetTable().String())
}
