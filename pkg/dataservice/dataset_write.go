package dataservice

import (
	"context"
	"io"
	"time"

	"github.com/apache/arrow/go/v12/arrow"
	"github.com/apache/arrow/go/v12/arrow/memory"
	"google.golang.org/grpc"

	"tracd.io/tracd/pkg/codec"
	"tracd.io/tracd/pkg/metadata"
	"tracd.io/tracd/pkg/pb"
	"tracd.io/tracd/pkg/pipeline"
	"tracd.io/tracd/pkg/rpcstatus"
	"tracd.io/tracd/pkg/storage"
)

// rootPartKey is the partition key of unpartitioned datasets.
const rootPartKey = "part-root"

// dataWriteStream is satisfied by the create and update server streams.
type dataWriteStream interface {
	SendAndClose(*pb.TagHeader) error
	Recv() (*pb.DataWriteRequest, error)
	grpc.ServerStream
}

// writeDataset drives one client-streaming dataset write. The first frame
// carries the request header, content may start in the first frame and
// continues in the rest. Bytes are decoded in the declared format and
// re-encoded in the canonical storage format on the way to the blob store.
// The storage object commits first and the data object second; when the
// second commit fails the fresh storage copy is expunged out of band.
func (s *Service) writeDataset(ctx context.Context, stream dataWriteStream, update bool) (header *pb.TagHeader, err error) {
	defer mon.Task()(&ctx)(&err)

	first, err := stream.Recv()
	if err != nil {
		return nil, Error.Wrap(err)
	}
	if first.GetTenant() == "" {
		return nil, rpcstatus.Error(rpcstatus.InvalidArgument, "tenant not set")
	}
	srcCodec, err := codec.ForFormat(first.Format)
	if err != nil {
		return nil, statusOf(err)
	}
	if err := metadata.ValidateTagUpdates(first.TagUpdates, false); err != nil {
		return nil, statusOf(err)
	}

	schema, dataDef, err := s.resolveWriteSchema(ctx, first)
	if err != nil {
		return nil, err
	}
	arrowSchema, err := codec.ArrowSchema(schema)
	if err != nil {
		return nil, statusOf(err)
	}

	var (
		dataId        string
		storageId     string
		snapIndex     int32
		dataSelector  *pb.TagSelector
		storagePrior  *pb.TagSelector
		storageDef    *pb.ObjectDefinition
		priorSelector = first.PriorVersion
	)

	if update {
		prior, storageTag, err := s.loadPriorDataset(ctx, first, schema)
		if err != nil {
			return nil, err
		}
		dataId = prior.Header.ObjectId
		storageId = storageTag.Header.ObjectId
		snapIndex = prior.Header.ObjectVersion // next version - 1
		storagePrior = metadata.SelectorFor(storageTag.Header)
		storageDef = storageTag.Definition
	} else {
		if priorSelector != nil {
			return nil, rpcstatus.Error(rpcstatus.InvalidArgument,
				"create dataset must not carry a prior version")
		}
		dataHeader, err := s.meta.PreallocateId(ctx, &pb.PreallocateRequest{
			Tenant: first.Tenant, ObjectType: pb.ObjectType_DATA})
		if err != nil {
			return nil, err
		}
		storageHeader, err := s.meta.PreallocateId(ctx, &pb.PreallocateRequest{
			Tenant: first.Tenant, ObjectType: pb.ObjectType_STORAGE})
		if err != nil {
			return nil, err
		}
		dataId = dataHeader.ObjectId
		storageId = storageHeader.ObjectId
		snapIndex = 0
		dataSelector = metadata.SelectorFor(dataHeader)
		storagePrior = metadata.SelectorFor(storageHeader)
	}

	// the delta token carries a random suffix, so a retried write never
	// clashes with an orphan of an earlier attempt
	dataItem := metadata.DataItemForDelta(dataId, snapIndex, 0)
	storagePath := tenantPrefix(first.Tenant) + "/" + dataItem
	blobs, storageKey, err := s.blobsFor("")
	if err != nil {
		return nil, err
	}

	_, rows, err := s.pumpDataset(ctx, first, stream, srcCodec, arrowSchema,
		blobs, storagePath, first.Size)
	if err != nil {
		return nil, statusOf(err)
	}

	// first commit: the storage object
	item := newStorageItem(storageKey, storagePath, s.storageFormat, time.Now())
	var storageHeader *pb.TagHeader
	if update {
		appendStorageItem(storageDef.GetStorage(), dataItem, item)
		storageHeader, err = s.meta.UpdateObject(ctx, &pb.MetadataWriteRequest{
			Tenant:       first.Tenant,
			ObjectType:   pb.ObjectType_STORAGE,
			PriorVersion: storagePrior,
			Definition:   storageDef,
		}, true)
	} else {
		storageHeader, err = s.meta.CreateObject(ctx, &pb.MetadataWriteRequest{
			Tenant:       first.Tenant,
			ObjectType:   pb.ObjectType_STORAGE,
			PriorVersion: storagePrior,
			Definition:   storageDefWith(dataItem, item),
		}, true)
	}
	if err != nil {
		_ = blobs.Delete(ctx, storagePath)
		return nil, err
	}

	// second commit: the data object
	dataDef.Parts = map[string]*pb.DataPartition{rootPartKey: {
		PartKey: rootPartKey,
		Snap: &pb.DataSnapshot{
			SnapIndex: snapIndex,
			Deltas:    []*pb.DataDelta{{DeltaIndex: 0, DataItem: dataItem}},
		},
	}}
	dataDef.StorageId = latestStorageSelector(storageId)
	updates := append(append([]*pb.TagUpdate{}, first.TagUpdates...),
		stringAttr("trac_storage_id", storageId),
		integerAttr("trac_data_rows", rows))

	writeReq := &pb.MetadataWriteRequest{
		Tenant:     first.Tenant,
		ObjectType: pb.ObjectType_DATA,
		Definition: &pb.ObjectDefinition{
			ObjectType: pb.ObjectType_DATA,
			Definition: &pb.ObjectDefinition_Data{Data: dataDef},
		},
		TagUpdates: updates,
	}
	if update {
		writeReq.PriorVersion = priorSelector
		header, err = s.meta.UpdateObject(ctx, writeReq, true)
	} else {
		writeReq.PriorVersion = dataSelector
		header, err = s.meta.CreateObject(ctx, writeReq, true)
	}
	if err != nil {
		s.expungeCopy(first.Tenant, storageHeader, dataItem, storagePath)
		return nil, err
	}
	return header, nil
}

// resolveWriteSchema produces the dataset schema from the write header,
// either embedded in the request or loaded from a pinned SCHEMA object,
// along with a DATA definition carrying the matching schema specifier.
func (s *Service) resolveWriteSchema(ctx context.Context, first *pb.DataWriteRequest) (*pb.SchemaDefinition, *pb.DataDefinition, error) {
	switch {
	case first.GetSchema() != nil:
		if err := metadata.ValidateSchema(first.GetSchema()); err != nil {
			return nil, nil, statusOf(err)
		}
		def := &pb.DataDefinition{
			SchemaSpecifier: &pb.DataDefinition_Schema{Schema: first.GetSchema()},
		}
		return first.GetSchema(), def, nil

	case first.GetSchemaId() != nil:
		schemaId := first.GetSchemaId()
		if err := metadata.ValidateSelector(schemaId); err != nil {
			return nil, nil, statusOf(err)
		}
		if schemaId.ObjectType != pb.ObjectType_SCHEMA {
			return nil, nil, rpcstatus.Error(rpcstatus.InvalidArgument,
				"schema id does not select a SCHEMA object")
		}
		if _, ok := schemaId.ObjectCriteria.(*pb.TagSelector_ObjectVersion); !ok {
			return nil, nil, rpcstatus.Error(rpcstatus.InvalidArgument,
				"schema id must pin an explicit object version")
		}
		tag, err := s.meta.ReadObject(ctx, &pb.MetadataReadRequest{
			Tenant: first.Tenant, Selector: schemaId})
		if err != nil {
			return nil, nil, err
		}
		def := &pb.DataDefinition{
			SchemaSpecifier: &pb.DataDefinition_SchemaId{SchemaId: schemaId},
		}
		return tag.Definition.GetSchema(), def, nil

	default:
		return nil, nil, rpcstatus.Error(rpcstatus.InvalidArgument,
			"write has no schema specifier")
	}
}

// loadPriorDataset loads the prior DATA version and its STORAGE object and
// enforces schema compatibility with the incoming schema.
func (s *Service) loadPriorDataset(ctx context.Context, first *pb.DataWriteRequest, next *pb.SchemaDefinition) (prior, storageTag *pb.Tag, err error) {
	selector := first.PriorVersion
	if err := metadata.ValidateSelector(selector); err != nil {
		return nil, nil, statusOf(err)
	}
	if selector.ObjectType != pb.ObjectType_DATA {
		return nil, nil, rpcstatus.Error(rpcstatus.InvalidArgument,
			"prior version does not select a DATA object")
	}
	if _, ok := selector.ObjectCriteria.(*pb.TagSelector_ObjectVersion); !ok {
		return nil, nil, rpcstatus.Error(rpcstatus.InvalidArgument,
			"dataset update requires an explicit prior object version")
	}

	prior, err = s.meta.ReadObject(ctx, &pb.MetadataReadRequest{
		Tenant: first.Tenant, Selector: selector})
	if err != nil {
		return nil, nil, err
	}
	priorData := prior.Definition.GetData()

	// embedded and external schemas cannot be switched between versions
	_, priorEmbedded := priorData.SchemaSpecifier.(*pb.DataDefinition_Schema)
	nextEmbedded := first.GetSchema() != nil
	if priorEmbedded != nextEmbedded {
		return nil, nil, rpcstatus.Error(rpcstatus.FailedPrecondition,
			"dataset switches between embedded and external schemas")
	}

	priorSchema := priorData.GetSchema()
	if !priorEmbedded {
		schemaTag, err := s.meta.ReadObject(ctx, &pb.MetadataReadRequest{
			Tenant: first.Tenant, Selector: priorData.GetSchemaId()})
		if err != nil {
			return nil, nil, err
		}
		priorSchema = schemaTag.Definition.GetSchema()
	}
	if err := metadata.CheckSchemaCompatibility(priorSchema, next); err != nil {
		return nil, nil, statusOf(err)
	}

	storageTag, err = s.meta.ReadObject(ctx, &pb.MetadataReadRequest{
		Tenant: first.Tenant, Selector: priorData.StorageId})
	if err != nil {
		return nil, nil, err
	}
	return prior, storageTag, nil
}

// pumpDataset runs the write pipeline: frame pump, format decode, storage
// format encode, blob sink. The blob is committed only when the pipeline
// finished clean and the declared size matches the received byte count.
func (s *Service) pumpDataset(ctx context.Context, first *pb.DataWriteRequest, stream dataWriteStream, srcCodec codec.Codec, schema *arrow.Schema, blobs storage.Blobs, path string, declaredSize int64) (received, rows int64, err error) {
	storageCodec, err := codec.ForFormat(s.storageFormat)
	if err != nil {
		return 0, 0, err
	}

	sizeHint := declaredSize
	if sizeHint <= 0 {
		sizeHint = -1
	}
	writer, err := blobs.Create(ctx, path, sizeHint)
	if err != nil {
		return 0, 0, err
	}

	ec := pipeline.NewExecutionContext(ctx, memory.DefaultAllocator)
	bytesIn := pipeline.NewByteStream(ec.Context(), 4)
	batches := pipeline.NewBatchStream(2)

	// frame pump
	ec.Go(func(ctx context.Context) error {
		defer bytesIn.Close()
		if len(first.Content) > 0 {
			received += int64(len(first.Content))
			if err := bytesIn.Send(ctx, first.Content); err != nil {
				return err
			}
		}
		for {
			frame, err := stream.Recv()
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return Error.Wrap(err)
			}
			received += int64(len(frame.Content))
			if err := bytesIn.Send(ctx, frame.Content); err != nil {
				return err
			}
		}
	})

	// decode the upload format
	ec.Go(func(ctx context.Context) error {
		defer batches.Close()
		reader, err := srcCodec.NewDecoder(bytesIn, schema, ec.Allocator())
		if err != nil {
			return err
		}
		defer reader.Release()
		for {
			batch, err := reader.Read()
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}
			if err := batches.Send(ctx, batch); err != nil {
				return err
			}
		}
	})

	// re-encode in the canonical storage format
	ec.Go(func(ctx context.Context) error {
		encoder, err := storageCodec.NewEncoder(writer, schema, ec.Allocator())
		if err != nil {
			return err
		}
		for {
			batch, ok, err := batches.Recv(ctx)
			if err != nil {
				return err
			}
			if !ok {
				break
			}
			rows += batch.NumRows()
			err = encoder.Write(batch)
			batch.Release()
			if err != nil {
				return err
			}
		}
		return encoder.Close()
	})

	if err := ec.Wait(); err != nil {
		batches.Drain()
		_ = writer.Cancel(ctx)
		return 0, 0, err
	}

	if declaredSize > 0 && received != declaredSize {
		_ = writer.Cancel(ctx)
		return 0, 0, codec.ErrDataLoss.New(
			"declared size %d does not match received %d bytes", declaredSize, received)
	}
	if err := writer.Commit(ctx); err != nil {
		return 0, 0, err
	}
	return received, rows, nil
}

func stringAttr(name, value string) *pb.TagUpdate {
	return &pb.TagUpdate{
		Operation: pb.TagOperation_CREATE_OR_REPLACE_ATTR,
		AttrName:  name,
		Value: &pb.Value{Type: pb.BasicType_STRING,
			V: &pb.Value_StringValue{StringValue: value}},
	}
}

func integerAttr(name string, value int64) *pb.TagUpdate {
	return &pb.TagUpdate{
		Operation: pb.TagOperation_CREATE_OR_REPLACE_ATTR,
		AttrName:  name,
		Value: &pb.Value{Type: pb.BasicType_INTEGER,
			V: &pb.Value_IntegerValue{IntegerValue: value}},
	}
}
