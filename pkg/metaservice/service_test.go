package metaservice_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"tracd.io/tracd/pkg/metadata"
	"tracd.io/tracd/pkg/metadata/metadb"
	"tracd.io/tracd/pkg/metaservice"
	"tracd.io/tracd/pkg/pb"
)

func newTestService(t *testing.T) (context.Context, *metaservice.Service) {
	ctx := context.Background()
	connstr := "sqlite://" + filepath.Join(t.TempDir(), "meta.db")

	db, err := metadb.Open(ctx, zaptest.NewLogger(t), connstr)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, db.Close()) })

	_, err = db.CreateTenant(ctx, metadb.CreateTenant{Code: "ACME", Description: "test tenant"})
	require.NoError(t, err)

	return ctx, metaservice.New(zaptest.NewLogger(t), db)
}

func schemaWriteRequest(fields ...*pb.FieldSchema) *pb.MetadataWriteRequest {
	if len(fields) == 0 {
		fields = []*pb.FieldSchema{
			{FieldName: "id", FieldOrder: 0, FieldType: pb.BasicType_INTEGER},
		}
	}
	return &pb.MetadataWriteRequest{
		Tenant:     "ACME",
		ObjectType: pb.ObjectType_SCHEMA,
		Definition: &pb.ObjectDefinition{
			ObjectType: pb.ObjectType_SCHEMA,
			Definition: &pb.ObjectDefinition_Schema{Schema: &pb.SchemaDefinition{
				SchemaType: pb.SchemaType_TABLE,
				Table:      &pb.TableSchema{Fields: fields},
			}},
		},
		TagUpdates: []*pb.TagUpdate{{
			Operation: pb.TagOperation_CREATE_OR_REPLACE_ATTR,
			AttrName:  "schema_name",
			Value: &pb.Value{Type: pb.BasicType_STRING,
				V: &pb.Value_StringValue{StringValue: "accounts"}},
		}},
	}
}

func grpcCode(t *testing.T, err error) codes.Code {
	require.Error(t, err)
	s, ok := status.FromError(err)
	require.True(t, ok, "error is not a grpc status: %v", err)
	return s.Code()
}

func TestCreateReadUpdateLifecycle(t *testing.T) {
	ctx, svc := newTestService(t)
	api := metaservice.NewPublicApi(svc)

	header, err := api.CreateObject(ctx, schemaWriteRequest())
	require.NoError(t, err)
	assert.Equal(t, int32(1), header.ObjectVersion)
	assert.Equal(t, int32(1), header.TagVersion)

	tag, err := api.ReadObject(ctx, &pb.MetadataReadRequest{
		Tenant:   "ACME",
		Selector: metadata.SelectorFor(header),
	})
	require.NoError(t, err)
	assert.Equal(t, "accounts", tag.Attrs["schema_name"].GetStringValue())

	// compatible update appends a field
	update := schemaWriteRequest(
		&pb.FieldSchema{FieldName: "id", FieldOrder: 0, FieldType: pb.BasicType_INTEGER},
		&pb.FieldSchema{FieldName: "name", FieldOrder: 1, FieldType: pb.BasicType_STRING},
	)
	update.PriorVersion = metadata.SelectorFor(header)
	v2, err := api.UpdateObject(ctx, update)
	require.NoError(t, err)
	assert.Equal(t, int32(2), v2.ObjectVersion)
	assert.Equal(t, int32(1), v2.TagVersion)

	// v1 remains readable
	v1, err := api.ReadObject(ctx, &pb.MetadataReadRequest{
		Tenant:   "ACME",
		Selector: metadata.SelectorFor(header),
	})
	require.NoError(t, err)
	assert.Len(t, v1.Definition.GetSchema().Table.Fields, 1)

	// duplicate update of the same prior version
	_, err = api.UpdateObject(ctx, update)
	assert.Equal(t, codes.AlreadyExists, grpcCode(t, err))
}

func TestIncompatibleSchemaUpdate(t *testing.T) {
	ctx, svc := newTestService(t)
	api := metaservice.NewPublicApi(svc)

	header, err := api.CreateObject(ctx, schemaWriteRequest())
	require.NoError(t, err)

	// type change on an existing field
	update := schemaWriteRequest(
		&pb.FieldSchema{FieldName: "id", FieldOrder: 0, FieldType: pb.BasicType_STRING},
	)
	update.PriorVersion = metadata.SelectorFor(header)
	_, err = api.UpdateObject(ctx, update)
	assert.Equal(t, codes.FailedPrecondition, grpcCode(t, err))
}

func TestUpdateTag(t *testing.T) {
	ctx, svc := newTestService(t)
	api := metaservice.NewPublicApi(svc)

	header, err := api.CreateObject(ctx, schemaWriteRequest())
	require.NoError(t, err)

	tagHeader, err := api.UpdateTag(ctx, &pb.MetadataWriteRequest{
		Tenant:       "ACME",
		PriorVersion: metadata.SelectorFor(header),
		TagUpdates: []*pb.TagUpdate{{
			Operation: pb.TagOperation_CREATE_ATTR,
			AttrName:  "reviewed",
			Value: &pb.Value{Type: pb.BasicType_BOOLEAN,
				V: &pb.Value_BooleanValue{BooleanValue: true}},
		}},
	})
	require.NoError(t, err)
	assert.Equal(t, int32(1), tagHeader.ObjectVersion)
	assert.Equal(t, int32(2), tagHeader.TagVersion)

	// REPLACE against a missing attr is a precondition failure
	_, err = api.UpdateTag(ctx, &pb.MetadataWriteRequest{
		Tenant:       "ACME",
		PriorVersion: metadata.SelectorFor(tagHeader),
		TagUpdates: []*pb.TagUpdate{{
			Operation: pb.TagOperation_REPLACE_ATTR,
			AttrName:  "no_such_attr",
			Value: &pb.Value{Type: pb.BasicType_STRING,
				V: &pb.Value_StringValue{StringValue: "x"}},
		}},
	})
	assert.Equal(t, codes.FailedPrecondition, grpcCode(t, err))
}

func TestPublicApiRestrictions(t *testing.T) {
	ctx, svc := newTestService(t)
	public := metaservice.NewPublicApi(svc)
	trusted := metaservice.NewTrustedApi(svc)

	fileReq := &pb.MetadataWriteRequest{
		Tenant:     "ACME",
		ObjectType: pb.ObjectType_FILE,
		Definition: &pb.ObjectDefinition{
			ObjectType: pb.ObjectType_FILE,
			Definition: &pb.ObjectDefinition_File{File: &pb.FileDefinition{
				Name:      "report.txt",
				Extension: "txt",
				MimeType:  "text/plain",
				Size:      3,
			}},
		},
	}

	// controlled object types are refused on the public surface
	_, err := public.CreateObject(ctx, fileReq)
	assert.Equal(t, codes.InvalidArgument, grpcCode(t, err))

	// and accepted on the trusted one
	header, err := trusted.CreateObject(ctx, fileReq)
	require.NoError(t, err)
	assert.Equal(t, pb.ObjectType_FILE, header.ObjectType)

	// reserved attrs are refused on the public surface
	req := schemaWriteRequest()
	req.TagUpdates = append(req.TagUpdates, &pb.TagUpdate{
		Operation: pb.TagOperation_CREATE_OR_REPLACE_ATTR,
		AttrName:  "trac_create_job",
		Value: &pb.Value{Type: pb.BasicType_STRING,
			V: &pb.Value_StringValue{StringValue: "job-1"}},
	})
	_, err = public.CreateObject(ctx, req)
	assert.Equal(t, codes.InvalidArgument, grpcCode(t, err))

	_, err = trusted.CreateObject(ctx, req)
	require.NoError(t, err)
}

func TestPreallocatedCreate(t *testing.T) {
	ctx, svc := newTestService(t)
	trusted := metaservice.NewTrustedApi(svc)

	reserved, err := trusted.PreallocateId(ctx, &pb.PreallocateRequest{
		Tenant:     "ACME",
		ObjectType: pb.ObjectType_FILE,
	})
	require.NoError(t, err)

	req := &pb.MetadataWriteRequest{
		Tenant:     "ACME",
		ObjectType: pb.ObjectType_FILE,
		PriorVersion: &pb.TagSelector{
			ObjectType:     pb.ObjectType_FILE,
			ObjectId:       reserved.ObjectId,
			ObjectCriteria: &pb.TagSelector_ObjectVersion{ObjectVersion: 1},
			TagCriteria:    &pb.TagSelector_TagVersion{TagVersion: 1},
		},
		Definition: &pb.ObjectDefinition{
			ObjectType: pb.ObjectType_FILE,
			Definition: &pb.ObjectDefinition_File{File: &pb.FileDefinition{
				Name:      "data.txt",
				Extension: "txt",
				MimeType:  "text/plain",
			}},
		},
	}
	header, err := trusted.CreateObject(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, reserved.ObjectId, header.ObjectId)

	// binding the same reserved id twice conflicts
	_, err = trusted.CreateObject(ctx, req)
	assert.Equal(t, codes.AlreadyExists, grpcCode(t, err))
}

func TestReadBatchAndSearch(t *testing.T) {
	ctx, svc := newTestService(t)
	api := metaservice.NewPublicApi(svc)

	first, err := api.CreateObject(ctx, schemaWriteRequest())
	require.NoError(t, err)
	second, err := api.CreateObject(ctx, schemaWriteRequest())
	require.NoError(t, err)

	batch, err := api.ReadBatch(ctx, &pb.MetadataBatchRequest{
		Tenant:   "ACME",
		Selector: []*pb.TagSelector{metadata.SelectorFor(second), metadata.SelectorFor(first)},
	})
	require.NoError(t, err)
	require.Len(t, batch.Tag, 2)
	assert.Equal(t, second.ObjectId, batch.Tag[0].Header.ObjectId)
	assert.Equal(t, first.ObjectId, batch.Tag[1].Header.ObjectId)

	found, err := api.Search(ctx, &pb.MetadataSearchRequest{
		Tenant: "ACME",
		SearchParams: &pb.SearchParameters{
			ObjectType: pb.ObjectType_SCHEMA,
			Search: &pb.SearchExpression{Expr: &pb.SearchExpression_Term{Term: &pb.SearchTerm{
				AttrName: "schema_name",
				AttrType: pb.BasicType_STRING,
				Operator: pb.SearchOperator_EQ,
				SearchValue: &pb.Value{Type: pb.BasicType_STRING,
					V: &pb.Value_StringValue{StringValue: "accounts"}},
			}}},
		},
	})
	require.NoError(t, err)
	assert.Len(t, found.SearchResult, 2)
}

func TestUnknownTenant(t *testing.T) {
	ctx, svc := newTestService(t)
	api := metaservice.NewPublicApi(svc)

	req := schemaWriteRequest()
	req.Tenant = "NO_SUCH_CORP"
	_, err := api.CreateObject(ctx, req)
	assert.Equal(t, codes.NotFound, grpcCode(t, err))
}
