package dataservice

import (
	"context"
	"io"
	"time"

	"google.golang.org/grpc"

	"tracd.io/tracd/pkg/metadata"
	"tracd.io/tracd/pkg/pb"
	"tracd.io/tracd/pkg/rpcstatus"
	"tracd.io/tracd/pkg/storage"
)

// fileWriteStream is satisfied by the create and update server streams.
type fileWriteStream interface {
	SendAndClose(*pb.TagHeader) error
	Recv() (*pb.FileWriteRequest, error)
	grpc.ServerStream
}

type fileReadStream interface {
	Send(*pb.FileReadResponse) error
	grpc.ServerStream
}

// writeFile drives one client-streaming file write. File content is opaque
// and lands in the store byte for byte, no decode step. The commit order
// matches datasets: STORAGE first, FILE second, expunge on a failed second
// commit.
func (s *Service) writeFile(ctx context.Context, stream fileWriteStream, update bool) (header *pb.TagHeader, err error) {
	defer mon.Task()(&ctx)(&err)

	first, err := stream.Recv()
	if err != nil {
		return nil, Error.Wrap(err)
	}
	if first.GetTenant() == "" {
		return nil, rpcstatus.Error(rpcstatus.InvalidArgument, "tenant not set")
	}
	if err := metadata.ValidateFileName(first.Name); err != nil {
		return nil, statusOf(err)
	}
	if err := metadata.ValidateTagUpdates(first.TagUpdates, false); err != nil {
		return nil, statusOf(err)
	}
	extension := metadata.FileExtension(first.Name)

	var (
		fileId       string
		storageId    string
		newVersion   int32
		mimeType     = first.MimeType
		fileSelector *pb.TagSelector
		storagePrior *pb.TagSelector
		storageDef   *pb.ObjectDefinition
	)

	if update {
		prior, storageTag, err := s.loadPriorFile(ctx, first, extension)
		if err != nil {
			return nil, err
		}
		fileId = prior.Header.ObjectId
		storageId = storageTag.Header.ObjectId
		newVersion = prior.Header.ObjectVersion + 1
		storagePrior = metadata.SelectorFor(storageTag.Header)
		storageDef = storageTag.Definition
		// the mime type is fixed across versions
		mimeType = prior.Definition.GetFile().MimeType
	} else {
		if first.PriorVersion != nil {
			return nil, rpcstatus.Error(rpcstatus.InvalidArgument,
				"create file must not carry a prior version")
		}
		fileHeader, err := s.meta.PreallocateId(ctx, &pb.PreallocateRequest{
			Tenant: first.Tenant, ObjectType: pb.ObjectType_FILE})
		if err != nil {
			return nil, err
		}
		storageHeader, err := s.meta.PreallocateId(ctx, &pb.PreallocateRequest{
			Tenant: first.Tenant, ObjectType: pb.ObjectType_STORAGE})
		if err != nil {
			return nil, err
		}
		fileId = fileHeader.ObjectId
		storageId = storageHeader.ObjectId
		newVersion = 1
		fileSelector = metadata.SelectorFor(fileHeader)
		storagePrior = metadata.SelectorFor(storageHeader)
	}

	// file tokens are deterministic, so the physical path takes a short
	// random suffix to keep racing writers off each other's bytes
	dataItem := metadata.DataItemForFile(fileId, newVersion)
	storagePath := tenantPrefix(first.Tenant) + "/" + dataItem + "-x" + metadata.NewObjectId()[:6]
	blobs, storageKey, err := s.blobsFor("")
	if err != nil {
		return nil, err
	}

	received, err := s.pumpFile(ctx, first, stream, blobs, storagePath, first.Size)
	if err != nil {
		return nil, statusOf(err)
	}

	// first commit: the storage object
	storageFormat := mimeType
	if storageFormat == "" {
		storageFormat = "application/octet-stream"
	}
	item := newStorageItem(storageKey, storagePath, storageFormat, time.Now())
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

	// second commit: the file object
	fileDef := &pb.ObjectDefinition{
		ObjectType: pb.ObjectType_FILE,
		Definition: &pb.ObjectDefinition_File{File: &pb.FileDefinition{
			Name:      first.Name,
			Extension: extension,
			MimeType:  mimeType,
			Size:      received,
			StorageId: latestStorageSelector(storageId),
			DataItem:  dataItem,
		}},
	}
	updates := append(append([]*pb.TagUpdate{}, first.TagUpdates...),
		stringAttr("trac_file_name", first.Name),
		stringAttr("trac_file_extension", extension),
		stringAttr("trac_file_mime_type", mimeType),
		integerAttr("trac_file_size", received))

	writeReq := &pb.MetadataWriteRequest{
		Tenant:     first.Tenant,
		ObjectType: pb.ObjectType_FILE,
		Definition: fileDef,
		TagUpdates: updates,
	}
	if update {
		writeReq.PriorVersion = first.PriorVersion
		header, err = s.meta.UpdateObject(ctx, writeReq, true)
	} else {
		writeReq.PriorVersion = fileSelector
		header, err = s.meta.CreateObject(ctx, writeReq, true)
	}
	if err != nil {
		s.expungeCopy(first.Tenant, storageHeader, dataItem, storagePath)
		return nil, err
	}
	return header, nil
}

// loadPriorFile loads the prior FILE version and its STORAGE object and
// rejects extension changes before any content moves.
func (s *Service) loadPriorFile(ctx context.Context, first *pb.FileWriteRequest, extension string) (prior, storageTag *pb.Tag, err error) {
	selector := first.PriorVersion
	if err := metadata.ValidateSelector(selector); err != nil {
		return nil, nil, statusOf(err)
	}
	if selector.ObjectType != pb.ObjectType_FILE {
		return nil, nil, rpcstatus.Error(rpcstatus.InvalidArgument,
			"prior version does not select a FILE object")
	}
	if _, ok := selector.ObjectCriteria.(*pb.TagSelector_ObjectVersion); !ok {
		return nil, nil, rpcstatus.Error(rpcstatus.InvalidArgument,
			"file update requires an explicit prior object version")
	}

	prior, err = s.meta.ReadObject(ctx, &pb.MetadataReadRequest{
		Tenant: first.Tenant, Selector: selector})
	if err != nil {
		return nil, nil, err
	}
	priorFile := prior.Definition.GetFile()
	if priorFile.Extension != extension {
		return nil, nil, rpcstatus.Errorf(rpcstatus.FailedPrecondition,
			"file extension cannot change between versions, was %q", priorFile.Extension)
	}

	storageTag, err = s.meta.ReadObject(ctx, &pb.MetadataReadRequest{
		Tenant: first.Tenant, Selector: priorFile.StorageId})
	if err != nil {
		return nil, nil, err
	}
	return prior, storageTag, nil
}

// pumpFile copies raw content frames into a fresh blob and commits it when
// the received byte count matches the declared size.
func (s *Service) pumpFile(ctx context.Context, first *pb.FileWriteRequest, stream fileWriteStream, blobs storage.Blobs, path string, declaredSize int64) (received int64, err error) {
	sizeHint := declaredSize
	if sizeHint <= 0 {
		sizeHint = -1
	}
	writer, err := blobs.Create(ctx, path, sizeHint)
	if err != nil {
		return 0, err
	}

	write := func(content []byte) error {
		if len(content) == 0 {
			return nil
		}
		n, err := writer.Write(content)
		received += int64(n)
		return err
	}

	err = func() error {
		if err := write(first.Content); err != nil {
			return err
		}
		for {
			frame, err := stream.Recv()
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return Error.Wrap(err)
			}
			if err := write(frame.Content); err != nil {
				return err
			}
		}
	}()
	if err != nil {
		_ = writer.Cancel(ctx)
		return 0, err
	}

	if declaredSize > 0 && received != declaredSize {
		_ = writer.Cancel(ctx)
		return 0, rpcstatus.Errorf(rpcstatus.DataLoss,
			"declared size %d does not match received %d bytes", declaredSize, received)
	}
	if err := writer.Commit(ctx); err != nil {
		return 0, err
	}
	return received, nil
}

// readFile streams one file back to the client: the file definition in the
// first frame, raw content in bounded frames after it.
func (s *Service) readFile(req *pb.FileReadRequest, stream fileReadStream) (err error) {
	ctx := stream.Context()
	defer mon.Task()(&ctx)(&err)

	if req.GetTenant() == "" {
		return rpcstatus.Error(rpcstatus.InvalidArgument, "tenant not set")
	}
	if err := metadata.ValidateSelector(req.Selector); err != nil {
		return statusOf(err)
	}
	if req.Selector.ObjectType != pb.ObjectType_FILE {
		return rpcstatus.Error(rpcstatus.InvalidArgument,
			"selector does not select a FILE object")
	}

	tag, err := s.meta.ReadObject(ctx, &pb.MetadataReadRequest{
		Tenant: req.Tenant, Selector: req.Selector})
	if err != nil {
		return err
	}
	fileDef := tag.Definition.GetFile()
	if fileDef == nil {
		return rpcstatus.Error(rpcstatus.Internal, "file object has no file definition")
	}

	storageTag, err := s.meta.ReadObject(ctx, &pb.MetadataReadRequest{
		Tenant: req.Tenant, Selector: fileDef.StorageId})
	if err != nil {
		return err
	}
	copy, ok := availableCopy(storageTag.Definition.GetStorage(), fileDef.DataItem)
	if !ok {
		return rpcstatus.Errorf(rpcstatus.NotFound,
			"no available storage copy for data item %s", fileDef.DataItem)
	}
	blobs, _, err := s.blobsFor(copy.StorageKey)
	if err != nil {
		return err
	}
	blob, err := blobs.Open(ctx, copy.StoragePath)
	if err != nil {
		return statusOf(err)
	}
	defer func() { _ = blob.Close() }()

	if err := stream.Send(&pb.FileReadResponse{FileDefinition: fileDef}); err != nil {
		return Error.Wrap(err)
	}

	buf := make([]byte, readChunkSize)
	for {
		n, err := blob.Read(buf)
		if n > 0 {
			frame := &pb.FileReadResponse{Content: append([]byte(nil), buf[:n]...)}
			if err := stream.Send(frame); err != nil {
				return Error.Wrap(err)
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return statusOf(storage.Error.Wrap(err))
		}
	}
}
