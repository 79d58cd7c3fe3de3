package dataservice

import (
	"context"
	"io"

	"github.com/apache/arrow/go/v12/arrow/memory"
	"google.golang.org/grpc"

	"tracd.io/tracd/pkg/codec"
	"tracd.io/tracd/pkg/metadata"
	"tracd.io/tracd/pkg/pb"
	"tracd.io/tracd/pkg/rpcstatus"
	"tracd.io/tracd/pkg/storage"
)

// ReadFormat is the wire format when a read request does not choose one.
const ReadFormat = "ARROW_STREAM"

type dataReadStream interface {
	Send(*pb.DataReadResponse) error
	grpc.ServerStream
}

// readDataset streams one dataset back to the client. The first frame
// carries the schema alone; content follows in bounded frames, decoded from
// the stored copy and re-encoded in the requested format. Offset and limit
// slice the row range, resolved at batch boundaries.
func (s *Service) readDataset(req *pb.DataReadRequest, stream dataReadStream) (err error) {
	ctx := stream.Context()
	defer mon.Task()(&ctx)(&err)

	if req.GetTenant() == "" {
		return rpcstatus.Error(rpcstatus.InvalidArgument, "tenant not set")
	}
	if err := metadata.ValidateSelector(req.Selector); err != nil {
		return statusOf(err)
	}
	if req.Selector.ObjectType != pb.ObjectType_DATA {
		return rpcstatus.Error(rpcstatus.InvalidArgument,
			"selector does not select a DATA object")
	}
	if req.Offset < 0 || req.Limit < 0 {
		return rpcstatus.Error(rpcstatus.InvalidArgument,
			"offset and limit must not be negative")
	}
	format := req.Format
	if format == "" {
		format = ReadFormat
	}
	dstCodec, err := codec.ForFormat(format)
	if err != nil {
		return statusOf(err)
	}

	tag, err := s.meta.ReadObject(ctx, &pb.MetadataReadRequest{
		Tenant: req.Tenant, Selector: req.Selector})
	if err != nil {
		return err
	}
	dataDef := tag.Definition.GetData()
	if dataDef == nil {
		return rpcstatus.Error(rpcstatus.Internal, "data object has no data definition")
	}

	schema, err := s.resolveReadSchema(ctx, req.Tenant, dataDef)
	if err != nil {
		return err
	}
	arrowSchema, err := codec.ArrowSchema(schema)
	if err != nil {
		return statusOf(err)
	}

	dataItem, err := dataItemOf(dataDef)
	if err != nil {
		return err
	}
	copy, blobs, err := s.locateCopy(ctx, req.Tenant, dataDef, dataItem)
	if err != nil {
		return err
	}

	blob, err := blobs.Open(ctx, copy.StoragePath)
	if err != nil {
		return statusOf(err)
	}
	defer func() { _ = blob.Close() }()

	storedCodec, err := codec.ForFormat(copy.StorageFormat)
	if err != nil {
		return statusOf(err)
	}

	// schema first, content after
	if err := stream.Send(&pb.DataReadResponse{Schema: schema}); err != nil {
		return Error.Wrap(err)
	}

	reader, err := storedCodec.NewDecoder(blob, arrowSchema, memory.DefaultAllocator)
	if err != nil {
		return statusOf(err)
	}
	defer reader.Release()

	frames := &dataFrameWriter{stream: stream}
	encoder, err := dstCodec.NewEncoder(frames, arrowSchema, memory.DefaultAllocator)
	if err != nil {
		return statusOf(err)
	}

	var position int64
	for {
		if req.Limit > 0 && position >= req.Offset+req.Limit {
			break
		}
		batch, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return statusOf(err)
		}

		rows := batch.NumRows()
		start := req.Offset - position
		if start < 0 {
			start = 0
		}
		end := rows
		if req.Limit > 0 {
			if remaining := req.Offset + req.Limit - position; remaining < end {
				end = remaining
			}
		}
		if start >= end {
			batch.Release()
			position += rows
			continue
		}

		if start > 0 || end < rows {
			slice := batch.NewSlice(start, end)
			err = encoder.Write(slice)
			slice.Release()
		} else {
			err = encoder.Write(batch)
		}
		batch.Release()
		if err != nil {
			return statusOf(err)
		}
		position += rows
	}
	if err := encoder.Close(); err != nil {
		return statusOf(err)
	}
	return nil
}

// resolveReadSchema is the schema of a stored dataset: embedded in the
// definition or loaded from the referenced SCHEMA object.
func (s *Service) resolveReadSchema(ctx context.Context, tenant string, dataDef *pb.DataDefinition) (*pb.SchemaDefinition, error) {
	if schema := dataDef.GetSchema(); schema != nil {
		return schema, nil
	}
	schemaId := dataDef.GetSchemaId()
	if schemaId == nil {
		return nil, rpcstatus.Error(rpcstatus.Internal, "data object has no schema specifier")
	}
	tag, err := s.meta.ReadObject(ctx, &pb.MetadataReadRequest{
		Tenant: tenant, Selector: schemaId})
	if err != nil {
		return nil, err
	}
	return tag.Definition.GetSchema(), nil
}

// locateCopy loads the STORAGE object behind a dataset and picks an
// available copy of the requested data item.
func (s *Service) locateCopy(ctx context.Context, tenant string, dataDef *pb.DataDefinition, dataItem string) (*pb.StorageCopy, storage.Blobs, error) {
	storageTag, err := s.meta.ReadObject(ctx, &pb.MetadataReadRequest{
		Tenant: tenant, Selector: dataDef.StorageId})
	if err != nil {
		return nil, nil, err
	}
	copy, ok := availableCopy(storageTag.Definition.GetStorage(), dataItem)
	if !ok {
		return nil, nil, rpcstatus.Errorf(rpcstatus.NotFound,
			"no available storage copy for data item %s", dataItem)
	}
	blobs, _, err := s.blobsFor(copy.StorageKey)
	if err != nil {
		return nil, nil, err
	}
	return copy, blobs, nil
}

// dataItemOf picks the data item behind a dataset's root partition. Each
// version holds a single full snapshot, the snapshot's last delta wins.
func dataItemOf(dataDef *pb.DataDefinition) (string, error) {
	part, ok := dataDef.GetParts()[rootPartKey]
	if !ok || part.GetSnap() == nil || len(part.Snap.Deltas) == 0 {
		return "", rpcstatus.Error(rpcstatus.Internal, "data object has no root partition")
	}
	deltas := part.Snap.Deltas
	return deltas[len(deltas)-1].DataItem, nil
}

// dataFrameWriter splits encoder output into bounded content frames.
type dataFrameWriter struct {
	stream dataReadStream
}

func (w *dataFrameWriter) Write(p []byte) (n int, err error) {
	for len(p) > 0 {
		chunk := p
		if len(chunk) > readChunkSize {
			chunk = chunk[:readChunkSize]
		}
		frame := &pb.DataReadResponse{Content: append([]byte(nil), chunk...)}
		if err := w.stream.Send(frame); err != nil {
			return n, Error.Wrap(err)
		}
		n += len(chunk)
		p = p[len(chunk):]
	}
	return n, nil
}
