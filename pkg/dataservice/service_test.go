package dataservice

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"

	"tracd.io/tracd/pkg/metadata"
	"tracd.io/tracd/pkg/metadata/metadb"
	"tracd.io/tracd/pkg/metaservice"
	"tracd.io/tracd/pkg/pb"
	"tracd.io/tracd/pkg/rpcstatus"
	"tracd.io/tracd/pkg/storage"
	"tracd.io/tracd/pkg/storage/teststore"
)

type testEnv struct {
	ctx   context.Context
	svc   *Service
	meta  *metaservice.Service
	store *teststore.Store
}

func newTestEnv(t *testing.T) *testEnv {
	ctx := context.Background()
	connstr := "sqlite://" + filepath.Join(t.TempDir(), "meta.db")

	db, err := metadb.Open(ctx, zaptest.NewLogger(t), connstr)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, db.Close()) })

	_, err = db.CreateTenant(ctx, metadb.CreateTenant{Code: "ACME", Description: "test tenant"})
	require.NoError(t, err)

	meta := metaservice.New(zaptest.NewLogger(t), db)
	store := teststore.New()
	stores, err := storage.NewManager(map[string]storage.Blobs{"STORE1": store}, "STORE1")
	require.NoError(t, err)

	svc, err := New(zaptest.NewLogger(t), meta, stores, Config{})
	require.NoError(t, err)
	return &testEnv{ctx: ctx, svc: svc, meta: meta, store: store}
}

// fakeDataWriteStream replays prepared request frames.
type fakeDataWriteStream struct {
	grpc.ServerStream
	frames []*pb.DataWriteRequest
	next   int
}

func (s *fakeDataWriteStream) Recv() (*pb.DataWriteRequest, error) {
	if s.next >= len(s.frames) {
		return nil, io.EOF
	}
	frame := s.frames[s.next]
	s.next++
	return frame, nil
}

func (s *fakeDataWriteStream) SendAndClose(*pb.TagHeader) error { return nil }

// fakeDataReadStream collects response frames.
type fakeDataReadStream struct {
	grpc.ServerStream
	ctx    context.Context
	frames []*pb.DataReadResponse
}

func (s *fakeDataReadStream) Context() context.Context { return s.ctx }

func (s *fakeDataReadStream) Send(resp *pb.DataReadResponse) error {
	s.frames = append(s.frames, resp)
	return nil
}

type fakeFileWriteStream struct {
	grpc.ServerStream
	frames []*pb.FileWriteRequest
	next   int
}

func (s *fakeFileWriteStream) Recv() (*pb.FileWriteRequest, error) {
	if s.next >= len(s.frames) {
		return nil, io.EOF
	}
	frame := s.frames[s.next]
	s.next++
	return frame, nil
}

func (s *fakeFileWriteStream) SendAndClose(*pb.TagHeader) error { return nil }

type fakeFileReadStream struct {
	grpc.ServerStream
	ctx    context.Context
	frames []*pb.FileReadResponse
}

func (s *fakeFileReadStream) Context() context.Context { return s.ctx }

func (s *fakeFileReadStream) Send(resp *pb.FileReadResponse) error {
	s.frames = append(s.frames, resp)
	return nil
}

func accountsSchema(extra ...*pb.FieldSchema) *pb.SchemaDefinition {
	fields := []*pb.FieldSchema{
		{FieldName: "id", FieldOrder: 0, FieldType: pb.BasicType_INTEGER},
		{FieldName: "name", FieldOrder: 1, FieldType: pb.BasicType_STRING},
		{FieldName: "balance", FieldOrder: 2, FieldType: pb.BasicType_FLOAT},
	}
	for i, field := range extra {
		field.FieldOrder = int32(len(fields) + i)
		fields = append(fields, field)
	}
	return &pb.SchemaDefinition{
		SchemaType: pb.SchemaType_TABLE,
		Table:      &pb.TableSchema{Fields: fields},
	}
}

// datasetFrames builds a write stream: header first, content split into
// frameSize chunks after it.
func datasetFrames(schema *pb.SchemaDefinition, content string, frameSize int) []*pb.DataWriteRequest {
	header := &pb.DataWriteRequest{
		Tenant: "ACME",
		Format: "CSV",
		Size:   int64(len(content)),
	}
	if schema != nil {
		header.SchemaSpecifier = &pb.DataWriteRequest_Schema{Schema: schema}
	}
	frames := []*pb.DataWriteRequest{header}
	for len(content) > 0 {
		n := frameSize
		if n > len(content) {
			n = len(content)
		}
		frames = append(frames, &pb.DataWriteRequest{Content: []byte(content[:n])})
		content = content[n:]
	}
	return frames
}

// readCSV reads a dataset back as CSV text.
func readCSV(t *testing.T, env *testEnv, req *pb.DataReadRequest) (*pb.SchemaDefinition, string) {
	req.Format = "CSV"
	stream := &fakeDataReadStream{ctx: env.ctx}
	require.NoError(t, env.svc.readDataset(req, stream))

	require.NotEmpty(t, stream.frames)
	require.NotNil(t, stream.frames[0].Schema, "first frame must carry the schema")
	require.Empty(t, stream.frames[0].Content, "first frame must carry no content")

	var sb strings.Builder
	for _, frame := range stream.frames[1:] {
		require.Nil(t, frame.Schema)
		sb.Write(frame.Content)
	}
	return stream.frames[0].Schema, sb.String()
}

func TestCreateAndReadDataset(t *testing.T) {
	env := newTestEnv(t)

	content := "id,name,balance\n1,alice,10.5\n2,bob,-3.25\n3,carol,0\n"
	stream := &fakeDataWriteStream{frames: datasetFrames(accountsSchema(), content, 16)}

	header, err := env.svc.writeDataset(env.ctx, stream, false)
	require.NoError(t, err)
	assert.Equal(t, pb.ObjectType_DATA, header.ObjectType)
	assert.Equal(t, int32(1), header.ObjectVersion)

	// the controlled metadata carries the row count and storage link
	tag, err := env.meta.ReadObject(env.ctx, &pb.MetadataReadRequest{
		Tenant: "ACME", Selector: metadata.SelectorFor(header)})
	require.NoError(t, err)
	assert.Equal(t, int64(3), tag.Attrs["trac_data_rows"].GetIntegerValue())
	assert.NotEmpty(t, tag.Attrs["trac_storage_id"].GetStringValue())

	// the blob landed under the tenant prefix
	paths, err := env.store.List(env.ctx, "acme")
	require.NoError(t, err)
	require.Len(t, paths, 1)

	schema, body := readCSV(t, env, &pb.DataReadRequest{
		Tenant: "ACME", Selector: metadata.SelectorFor(header)})
	assert.Len(t, schema.Table.Fields, 3)
	assert.Contains(t, body, "1,alice,10.5")
	assert.Contains(t, body, "3,carol,0")
	assert.Equal(t, 4, strings.Count(body, "\n"))
}

func TestUpdateDatasetCompatible(t *testing.T) {
	env := newTestEnv(t)

	v1Content := "id,name,balance\n1,alice,10.5\n2,bob,-3.25\n"
	stream := &fakeDataWriteStream{frames: datasetFrames(accountsSchema(), v1Content, 64)}
	v1, err := env.svc.writeDataset(env.ctx, stream, false)
	require.NoError(t, err)

	// v2 appends a nullable field and replaces the rows
	v2Schema := accountsSchema(&pb.FieldSchema{
		FieldName: "region", FieldType: pb.BasicType_STRING})
	v2Content := "id,name,balance,region\n1,alice,10.5,emea\n2,bob,-3.25,apac\n3,carol,0,emea\n"
	frames := datasetFrames(v2Schema, v2Content, 64)
	frames[0].PriorVersion = metadata.SelectorFor(v1)

	v2, err := env.svc.writeDataset(env.ctx, &fakeDataWriteStream{frames: frames}, true)
	require.NoError(t, err)
	assert.Equal(t, int32(2), v2.ObjectVersion)

	_, v2Body := readCSV(t, env, &pb.DataReadRequest{
		Tenant: "ACME", Selector: metadata.SelectorFor(v2)})
	assert.Contains(t, v2Body, "3,carol,0,emea")

	// the prior version still reads with its own schema and rows
	v1Schema, v1Body := readCSV(t, env, &pb.DataReadRequest{
		Tenant: "ACME", Selector: metadata.SelectorFor(v1)})
	assert.Len(t, v1Schema.Table.Fields, 3)
	assert.NotContains(t, v1Body, "carol")
}

func TestUpdateDatasetIncompatibleSchema(t *testing.T) {
	env := newTestEnv(t)

	stream := &fakeDataWriteStream{frames: datasetFrames(accountsSchema(),
		"id,name,balance\n1,alice,10.5\n", 64)}
	v1, err := env.svc.writeDataset(env.ctx, stream, false)
	require.NoError(t, err)

	// type change on an existing field
	badSchema := &pb.SchemaDefinition{
		SchemaType: pb.SchemaType_TABLE,
		Table: &pb.TableSchema{Fields: []*pb.FieldSchema{
			{FieldName: "id", FieldOrder: 0, FieldType: pb.BasicType_STRING},
			{FieldName: "name", FieldOrder: 1, FieldType: pb.BasicType_STRING},
			{FieldName: "balance", FieldOrder: 2, FieldType: pb.BasicType_FLOAT},
		}},
	}
	frames := datasetFrames(badSchema, "id,name,balance\nx,alice,10.5\n", 64)
	frames[0].PriorVersion = metadata.SelectorFor(v1)

	_, err = env.svc.writeDataset(env.ctx, &fakeDataWriteStream{frames: frames}, true)
	require.Error(t, err)
	assert.Equal(t, rpcstatus.FailedPrecondition, rpcstatus.Code(err))
}

func TestDatasetTypeMismatch(t *testing.T) {
	env := newTestEnv(t)

	stream := &fakeDataWriteStream{frames: datasetFrames(accountsSchema(),
		"id,name,balance\nnot-a-number,alice,10.5\n", 64)}
	_, err := env.svc.writeDataset(env.ctx, stream, false)
	require.Error(t, err)
	assert.Equal(t, rpcstatus.DataLoss, rpcstatus.Code(err))

	// nothing was committed
	paths, err := env.store.List(env.ctx, "acme")
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestDatasetSizeMismatch(t *testing.T) {
	env := newTestEnv(t)

	frames := datasetFrames(accountsSchema(), "id,name,balance\n1,alice,10.5\n", 64)
	frames[0].Size += 5

	_, err := env.svc.writeDataset(env.ctx, &fakeDataWriteStream{frames: frames}, false)
	require.Error(t, err)
	assert.Equal(t, rpcstatus.DataLoss, rpcstatus.Code(err))

	paths, err := env.store.List(env.ctx, "acme")
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestDatasetUnknownFormat(t *testing.T) {
	env := newTestEnv(t)

	frames := datasetFrames(accountsSchema(), "id,name,balance\n", 64)
	frames[0].Format = "EXCEL"

	_, err := env.svc.writeDataset(env.ctx, &fakeDataWriteStream{frames: frames}, false)
	require.Error(t, err)
	assert.Equal(t, rpcstatus.Unimplemented, rpcstatus.Code(err))
}

func TestCreateDatasetAllTypes(t *testing.T) {
	env := newTestEnv(t)

	schema := &pb.SchemaDefinition{
		SchemaType: pb.SchemaType_TABLE,
		Table: &pb.TableSchema{Fields: []*pb.FieldSchema{
			{FieldName: "boolean_field", FieldOrder: 0, FieldType: pb.BasicType_BOOLEAN},
			{FieldName: "integer_field", FieldOrder: 1, FieldType: pb.BasicType_INTEGER},
			{FieldName: "float_field", FieldOrder: 2, FieldType: pb.BasicType_FLOAT},
			{FieldName: "decimal_field", FieldOrder: 3, FieldType: pb.BasicType_DECIMAL},
			{FieldName: "string_field", FieldOrder: 4, FieldType: pb.BasicType_STRING},
			{FieldName: "date_field", FieldOrder: 5, FieldType: pb.BasicType_DATE},
			{FieldName: "datetime_field", FieldOrder: 6, FieldType: pb.BasicType_DATETIME},
		}},
	}

	var sb strings.Builder
	sb.WriteString("boolean_field,integer_field,float_field,decimal_field,string_field,date_field,datetime_field\n")
	epoch := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 10; i++ {
		fmt.Fprintf(&sb, "%t,%d,%d.0,%d,Hello world %d,%s,%s\n",
			i%2 == 0, i, i, i, i,
			epoch.AddDate(0, 0, i).Format("2006-01-02"),
			epoch.Add(time.Duration(i)*time.Second).Format("2006-01-02T15:04:05Z"))
	}

	stream := &fakeDataWriteStream{frames: datasetFrames(schema, sb.String(), 64)}
	header, err := env.svc.writeDataset(env.ctx, stream, false)
	require.NoError(t, err)
	assert.Equal(t, int32(1), header.ObjectVersion)
	assert.Equal(t, int32(1), header.TagVersion)

	readSchema, body := readCSV(t, env, &pb.DataReadRequest{
		Tenant: "ACME", Selector: metadata.SelectorFor(header)})
	require.Len(t, readSchema.Table.Fields, 7)
	assert.Equal(t, "boolean_field", readSchema.Table.Fields[0].FieldName)

	lines := strings.Split(strings.TrimRight(body, "\n"), "\n")
	require.Len(t, lines, 11)
	assert.Equal(t,
		"true,0,0,0.000000000000,Hello world 0,1970-01-01,1970-01-01T00:00:00.000000Z",
		lines[1])
	assert.Equal(t,
		"false,3,3,3.000000000000,Hello world 3,1970-01-04,1970-01-01T00:00:03.000000Z",
		lines[4])
}

func TestLargeDatasetChunkedRoundTrip(t *testing.T) {
	env := newTestEnv(t)

	// several storage batches worth of rows
	var sb strings.Builder
	sb.WriteString("id,name,balance\n")
	const rows = 20000
	for i := 0; i < rows; i++ {
		n := (i % 10000) + 1
		fmt.Fprintf(&sb, "%d,hello %d,%d.25\n", n, n, n)
	}
	content := sb.String()

	// frame boundaries land at arbitrary byte offsets
	rng := rand.New(rand.NewSource(1))
	frames := []*pb.DataWriteRequest{{
		Tenant:          "ACME",
		Format:          "CSV",
		Size:            int64(len(content)),
		SchemaSpecifier: &pb.DataWriteRequest_Schema{Schema: accountsSchema()},
	}}
	for rest := content; len(rest) > 0; {
		n := 1 + rng.Intn(8192)
		if n > len(rest) {
			n = len(rest)
		}
		frames = append(frames, &pb.DataWriteRequest{Content: []byte(rest[:n])})
		rest = rest[n:]
	}

	header, err := env.svc.writeDataset(env.ctx, &fakeDataWriteStream{frames: frames}, false)
	require.NoError(t, err)

	tag, err := env.meta.ReadObject(env.ctx, &pb.MetadataReadRequest{
		Tenant: "ACME", Selector: metadata.SelectorFor(header)})
	require.NoError(t, err)
	assert.Equal(t, int64(rows), tag.Attrs["trac_data_rows"].GetIntegerValue())

	_, body := readCSV(t, env, &pb.DataReadRequest{
		Tenant: "ACME", Selector: metadata.SelectorFor(header)})
	assert.Equal(t, rows+1, strings.Count(body, "\n"))
	assert.Contains(t, body, "10000,hello 10000,10000.25")
}

func TestReadDatasetOffsetLimit(t *testing.T) {
	env := newTestEnv(t)

	var sb strings.Builder
	sb.WriteString("id,name,balance\n")
	for i := 1; i <= 10; i++ {
		fmt.Fprintf(&sb, "%d,account-%d,0\n", i, i)
	}
	stream := &fakeDataWriteStream{frames: datasetFrames(accountsSchema(), sb.String(), 64)}
	header, err := env.svc.writeDataset(env.ctx, stream, false)
	require.NoError(t, err)

	_, body := readCSV(t, env, &pb.DataReadRequest{
		Tenant:   "ACME",
		Selector: metadata.SelectorFor(header),
		Offset:   3,
		Limit:    4,
	})
	assert.Equal(t, 5, strings.Count(body, "\n"), "header plus four rows")
	assert.NotContains(t, body, "3,account-3")
	assert.Contains(t, body, "4,account-4")
	assert.Contains(t, body, "7,account-7")
	assert.NotContains(t, body, "8,account-8")
}

func TestDatasetExternalSchema(t *testing.T) {
	env := newTestEnv(t)

	schemaHeader, err := env.meta.CreateObject(env.ctx, &pb.MetadataWriteRequest{
		Tenant:     "ACME",
		ObjectType: pb.ObjectType_SCHEMA,
		Definition: &pb.ObjectDefinition{
			ObjectType: pb.ObjectType_SCHEMA,
			Definition: &pb.ObjectDefinition_Schema{Schema: accountsSchema()},
		},
	}, false)
	require.NoError(t, err)

	frames := datasetFrames(nil, "id,name,balance\n1,alice,10.5\n", 64)
	frames[0].SchemaSpecifier = &pb.DataWriteRequest_SchemaId{
		SchemaId: metadata.SelectorFor(schemaHeader)}

	header, err := env.svc.writeDataset(env.ctx, &fakeDataWriteStream{frames: frames}, false)
	require.NoError(t, err)

	schema, body := readCSV(t, env, &pb.DataReadRequest{
		Tenant: "ACME", Selector: metadata.SelectorFor(header)})
	assert.Len(t, schema.Table.Fields, 3)
	assert.Contains(t, body, "1,alice,10.5")
}

func TestDuplicateDatasetUpdate(t *testing.T) {
	env := newTestEnv(t)

	stream := &fakeDataWriteStream{frames: datasetFrames(accountsSchema(),
		"id,name,balance\n1,alice,10.5\n", 64)}
	v1, err := env.svc.writeDataset(env.ctx, stream, false)
	require.NoError(t, err)

	update := func() (*pb.TagHeader, error) {
		frames := datasetFrames(accountsSchema(), "id,name,balance\n2,bob,1\n", 64)
		frames[0].PriorVersion = metadata.SelectorFor(v1)
		return env.svc.writeDataset(env.ctx, &fakeDataWriteStream{frames: frames}, true)
	}

	v2, err := update()
	require.NoError(t, err)
	assert.Equal(t, int32(2), v2.ObjectVersion)

	// the loser of the race gets ALREADY_EXISTS
	_, err = update()
	require.Error(t, err)
	assert.Equal(t, rpcstatus.AlreadyExists, rpcstatus.Code(err))

	// and the winner's version still reads
	_, body := readCSV(t, env, &pb.DataReadRequest{
		Tenant: "ACME", Selector: metadata.SelectorFor(v2)})
	assert.Contains(t, body, "2,bob,1")
}

func TestDatasetCrossTenant(t *testing.T) {
	env := newTestEnv(t)

	stream := &fakeDataWriteStream{frames: datasetFrames(accountsSchema(),
		"id,name,balance\n1,alice,10.5\n", 64)}
	header, err := env.svc.writeDataset(env.ctx, stream, false)
	require.NoError(t, err)

	readStream := &fakeDataReadStream{ctx: env.ctx}
	err = env.svc.readDataset(&pb.DataReadRequest{
		Tenant:   "OTHER_CORP",
		Selector: metadata.SelectorFor(header),
		Format:   "CSV",
	}, readStream)
	require.Error(t, err)
	assert.Equal(t, rpcstatus.NotFound, rpcstatus.Code(err))
}

func fileFrames(name, mimeType string, content []byte, frameSize int) []*pb.FileWriteRequest {
	frames := []*pb.FileWriteRequest{{
		Tenant:   "ACME",
		Name:     name,
		MimeType: mimeType,
		Size:     int64(len(content)),
	}}
	for len(content) > 0 {
		n := frameSize
		if n > len(content) {
			n = len(content)
		}
		frames = append(frames, &pb.FileWriteRequest{Content: content[:n]})
		content = content[n:]
	}
	return frames
}

func readFileContent(t *testing.T, env *testEnv, selector *pb.TagSelector) (*pb.FileDefinition, []byte) {
	stream := &fakeFileReadStream{ctx: env.ctx}
	require.NoError(t, env.svc.readFile(&pb.FileReadRequest{
		Tenant: "ACME", Selector: selector}, stream))

	require.NotEmpty(t, stream.frames)
	require.NotNil(t, stream.frames[0].FileDefinition)
	require.Empty(t, stream.frames[0].Content)

	var content []byte
	for _, frame := range stream.frames[1:] {
		content = append(content, frame.Content...)
	}
	return stream.frames[0].FileDefinition, content
}

func TestFileRoundTrip(t *testing.T) {
	env := newTestEnv(t)

	content := []byte("quarterly results\nrevenue went up\n")
	stream := &fakeFileWriteStream{frames: fileFrames("report.txt", "text/plain", content, 8)}

	header, err := env.svc.writeFile(env.ctx, stream, false)
	require.NoError(t, err)
	assert.Equal(t, pb.ObjectType_FILE, header.ObjectType)

	tag, err := env.meta.ReadObject(env.ctx, &pb.MetadataReadRequest{
		Tenant: "ACME", Selector: metadata.SelectorFor(header)})
	require.NoError(t, err)
	assert.Equal(t, "report.txt", tag.Attrs["trac_file_name"].GetStringValue())
	assert.Equal(t, "txt", tag.Attrs["trac_file_extension"].GetStringValue())
	assert.Equal(t, int64(len(content)), tag.Attrs["trac_file_size"].GetIntegerValue())

	fileDef, got := readFileContent(t, env, metadata.SelectorFor(header))
	assert.Equal(t, "report.txt", fileDef.Name)
	assert.Equal(t, "text/plain", fileDef.MimeType)
	assert.Equal(t, int64(len(content)), fileDef.Size)
	assert.Equal(t, content, got)
}

func TestFileUpdate(t *testing.T) {
	env := newTestEnv(t)

	v1Content := []byte("draft")
	stream := &fakeFileWriteStream{frames: fileFrames("report.txt", "text/plain", v1Content, 64)}
	v1, err := env.svc.writeFile(env.ctx, stream, false)
	require.NoError(t, err)

	v2Content := []byte("final version")
	frames := fileFrames("report-final.txt", "text/plain", v2Content, 64)
	frames[0].PriorVersion = metadata.SelectorFor(v1)
	v2, err := env.svc.writeFile(env.ctx, &fakeFileWriteStream{frames: frames}, true)
	require.NoError(t, err)
	assert.Equal(t, int32(2), v2.ObjectVersion)

	// both versions remain readable
	_, got := readFileContent(t, env, metadata.SelectorFor(v2))
	assert.Equal(t, v2Content, got)
	_, got = readFileContent(t, env, metadata.SelectorFor(v1))
	assert.Equal(t, v1Content, got)
}

func TestFileExtensionChange(t *testing.T) {
	env := newTestEnv(t)

	stream := &fakeFileWriteStream{frames: fileFrames("report.txt", "text/plain", []byte("x"), 64)}
	v1, err := env.svc.writeFile(env.ctx, stream, false)
	require.NoError(t, err)

	frames := fileFrames("report.csv", "text/csv", []byte("a,b\n"), 64)
	frames[0].PriorVersion = metadata.SelectorFor(v1)
	_, err = env.svc.writeFile(env.ctx, &fakeFileWriteStream{frames: frames}, true)
	require.Error(t, err)
	assert.Equal(t, rpcstatus.FailedPrecondition, rpcstatus.Code(err))
}

func TestFileBadName(t *testing.T) {
	env := newTestEnv(t)

	stream := &fakeFileWriteStream{frames: fileFrames("../escape.txt", "text/plain", []byte("x"), 64)}
	_, err := env.svc.writeFile(env.ctx, stream, false)
	require.Error(t, err)
	assert.Equal(t, rpcstatus.InvalidArgument, rpcstatus.Code(err))
}

func TestFileSizeMismatch(t *testing.T) {
	env := newTestEnv(t)

	frames := fileFrames("report.txt", "text/plain", []byte("short"), 64)
	frames[0].Size = 100
	_, err := env.svc.writeFile(env.ctx, &fakeFileWriteStream{frames: frames}, false)
	require.Error(t, err)
	assert.Equal(t, rpcstatus.DataLoss, rpcstatus.Code(err))
}

func TestFailedCommitExpungesCopy(t *testing.T) {
	env := newTestEnv(t)

	stream := &fakeDataWriteStream{frames: datasetFrames(accountsSchema(),
		"id,name,balance\n1,alice,10.5\n", 64)}
	v1, err := env.svc.writeDataset(env.ctx, stream, false)
	require.NoError(t, err)

	// a stale prior version loses the data commit after the storage commit
	frames := datasetFrames(accountsSchema(), "id,name,balance\n2,bob,1\n", 64)
	frames[0].PriorVersion = metadata.SelectorFor(v1)
	_, err = env.svc.writeDataset(env.ctx, &fakeDataWriteStream{frames: frames}, true)
	require.NoError(t, err)

	frames = datasetFrames(accountsSchema(), "id,name,balance\n3,carol,2\n", 64)
	frames[0].PriorVersion = metadata.SelectorFor(v1)
	_, err = env.svc.writeDataset(env.ctx, &fakeDataWriteStream{frames: frames}, true)
	require.Error(t, err)
	assert.Equal(t, rpcstatus.AlreadyExists, rpcstatus.Code(err))

	// the orphaned copy is flagged EXPUNGED in the latest storage version
	tag, err := env.meta.ReadObject(env.ctx, &pb.MetadataReadRequest{
		Tenant: "ACME", Selector: metadata.SelectorFor(v1)})
	require.NoError(t, err)
	storageTag, err := env.meta.ReadObject(env.ctx, &pb.MetadataReadRequest{
		Tenant: "ACME", Selector: tag.Definition.GetData().StorageId})
	require.NoError(t, err)

	var available, expunged int
	for _, item := range storageTag.Definition.GetStorage().DataItems {
		for _, incarnation := range item.Incarnations {
			for _, copy := range incarnation.Copies {
				switch copy.CopyStatus {
				case pb.CopyStatus_COPY_AVAILABLE:
					available++
				case pb.CopyStatus_COPY_EXPUNGED:
					expunged++
				}
			}
		}
	}
	assert.Equal(t, 2, available, "v1 and the winning v2 copies stay available")
	assert.Equal(t, 1, expunged, "the loser's copy is expunged")
}
