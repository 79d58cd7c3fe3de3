package metaservice

import (
	"context"
	"time"

	"go.uber.org/zap"

	"tracd.io/tracd/pkg/metadata"
	"tracd.io/tracd/pkg/metadata/metadb"
	"tracd.io/tracd/pkg/pb"
	"tracd.io/tracd/pkg/rpcstatus"
)

// CreateObject commits version 1 of a new object. A trusted caller may set
// priorVersion to a preallocated id selector, in which case the commit
// binds to the reserved id instead of minting a fresh one.
func (s *Service) CreateObject(ctx context.Context, req *pb.MetadataWriteRequest, trusted bool) (header *pb.TagHeader, err error) {
	defer mon.Task()(&ctx)(&err)

	if err := s.validateWrite(req, trusted); err != nil {
		return nil, err
	}

	objectId := metadata.NewObjectId()
	if req.PriorVersion != nil {
		if !trusted {
			return nil, rpcstatus.Error(rpcstatus.InvalidArgument,
				"create object must not carry a prior version")
		}
		if req.PriorVersion.ObjectType != req.ObjectType {
			return nil, rpcstatus.Errorf(rpcstatus.InvalidArgument,
				"preallocated id type %v does not match request type %v",
				req.PriorVersion.ObjectType, req.ObjectType)
		}
		objectId = req.PriorVersion.ObjectId
	}

	attrs, err := metadata.ApplyTagUpdates(nil, req.TagUpdates)
	if err != nil {
		return nil, statusOf(err)
	}

	tag := &pb.Tag{
		Header:     metadata.NewObjectHeader(req.ObjectType, objectId, time.Now()),
		Definition: req.Definition,
		Attrs:      attrs,
	}
	header, err = s.db.SaveNewObject(ctx, metadb.SaveNewObject{Tenant: req.Tenant, Tag: tag})
	if err != nil {
		return nil, statusOf(err)
	}

	s.log.Debug("object created",
		zap.String("tenant", req.Tenant),
		zap.Stringer("type", header.ObjectType),
		zap.String("object", header.ObjectId))
	return header, nil
}

// UpdateObject commits the next version of an object. The request pins the
// exact prior version; a concurrent update of the same prior yields
// ALREADY_EXISTS for whoever commits second.
func (s *Service) UpdateObject(ctx context.Context, req *pb.MetadataWriteRequest, trusted bool) (header *pb.TagHeader, err error) {
	defer mon.Task()(&ctx)(&err)

	if err := s.validateWrite(req, trusted); err != nil {
		return nil, err
	}
	if err := metadata.ValidateSelector(req.PriorVersion); err != nil {
		return nil, statusOf(err)
	}
	if req.PriorVersion.ObjectType != req.ObjectType {
		return nil, rpcstatus.Errorf(rpcstatus.InvalidArgument,
			"prior version type %v does not match request type %v",
			req.PriorVersion.ObjectType, req.ObjectType)
	}

	prior, err := s.db.LoadPriorObject(ctx, metadb.LoadObject{
		Tenant:   req.Tenant,
		Selector: req.PriorVersion,
	})
	if err != nil {
		return nil, statusOf(err)
	}

	if err := checkVersionCompatibility(prior.Definition, req.Definition); err != nil {
		return nil, statusOf(err)
	}

	attrs, err := metadata.ApplyTagUpdates(prior.Attrs, req.TagUpdates)
	if err != nil {
		return nil, statusOf(err)
	}

	tag := &pb.Tag{
		Header:     metadata.NextObjectHeader(prior.Header, time.Now()),
		Definition: req.Definition,
		Attrs:      attrs,
	}
	header, err = s.db.SaveNewVersion(ctx, metadb.SaveNewVersion{Tenant: req.Tenant, Tag: tag})
	if err != nil {
		return nil, statusOf(err)
	}
	return header, nil
}

// UpdateTag commits a tag-only update against an exact object and tag
// version. The definition is carried over unchanged.
func (s *Service) UpdateTag(ctx context.Context, req *pb.MetadataWriteRequest, trusted bool) (header *pb.TagHeader, err error) {
	defer mon.Task()(&ctx)(&err)

	if req.GetTenant() == "" {
		return nil, rpcstatus.Error(rpcstatus.InvalidArgument, "tenant not set")
	}
	if req.Definition != nil {
		return nil, rpcstatus.Error(rpcstatus.InvalidArgument,
			"tag update must not carry a definition")
	}
	if err := metadata.ValidateSelector(req.PriorVersion); err != nil {
		return nil, statusOf(err)
	}
	if _, ok := req.PriorVersion.ObjectCriteria.(*pb.TagSelector_ObjectVersion); !ok {
		return nil, rpcstatus.Error(rpcstatus.InvalidArgument,
			"tag update requires an explicit object version")
	}
	if _, ok := req.PriorVersion.TagCriteria.(*pb.TagSelector_TagVersion); !ok {
		return nil, rpcstatus.Error(rpcstatus.InvalidArgument,
			"tag update requires an explicit tag version")
	}
	if err := metadata.ValidateTagUpdates(req.TagUpdates, trusted); err != nil {
		return nil, statusOf(err)
	}

	prior, err := s.db.LoadObject(ctx, metadb.LoadObject{
		Tenant:   req.Tenant,
		Selector: req.PriorVersion,
	})
	if err != nil {
		return nil, statusOf(err)
	}

	attrs, err := metadata.ApplyTagUpdates(prior.Attrs, req.TagUpdates)
	if err != nil {
		return nil, statusOf(err)
	}

	tag := &pb.Tag{
		Header:     metadata.NextTagHeader(prior.Header, time.Now()),
		Definition: prior.Definition,
		Attrs:      attrs,
	}
	header, err = s.db.SaveNewTag(ctx, metadb.SaveNewTag{Tenant: req.Tenant, Tag: tag})
	if err != nil {
		return nil, statusOf(err)
	}
	return header, nil
}

// CreateObjectBatch commits a batch of new objects. The batch fails as a
// whole on the first error, nothing from a failed batch is committed after
// the failing entry.
func (s *Service) CreateObjectBatch(ctx context.Context, req *pb.MetadataWriteBatchRequest, trusted bool) (resp *pb.MetadataWriteBatchResponse, err error) {
	defer mon.Task()(&ctx)(&err)

	if req.GetTenant() == "" {
		return nil, rpcstatus.Error(rpcstatus.InvalidArgument, "tenant not set")
	}
	if len(req.CreateObjects) == 0 {
		return nil, rpcstatus.Error(rpcstatus.InvalidArgument, "batch has no objects")
	}

	headers := make([]*pb.TagHeader, 0, len(req.CreateObjects))
	for i, sub := range req.CreateObjects {
		if sub.GetTenant() != "" && sub.GetTenant() != req.Tenant {
			return nil, rpcstatus.Errorf(rpcstatus.InvalidArgument,
				"batch entry %d names a different tenant", i)
		}
		entry := *sub
		entry.Tenant = req.Tenant
		header, err := s.CreateObject(ctx, &entry, trusted)
		if err != nil {
			return nil, err
		}
		headers = append(headers, header)
	}
	return &pb.MetadataWriteBatchResponse{Headers: headers}, nil
}

// PreallocateId reserves an object id for a later streaming create. Only
// reachable through the trusted surface.
func (s *Service) PreallocateId(ctx context.Context, req *pb.PreallocateRequest) (header *pb.TagHeader, err error) {
	defer mon.Task()(&ctx)(&err)

	if req.GetTenant() == "" {
		return nil, rpcstatus.Error(rpcstatus.InvalidArgument, "tenant not set")
	}
	header, err = s.db.PreallocateId(ctx, metadb.PreallocateId{
		Tenant:     req.Tenant,
		ObjectType: req.ObjectType,
	})
	if err != nil {
		return nil, statusOf(err)
	}
	return header, nil
}

// validateWrite applies the checks shared by create and update.
func (s *Service) validateWrite(req *pb.MetadataWriteRequest, trusted bool) error {
	if req.GetTenant() == "" {
		return rpcstatus.Error(rpcstatus.InvalidArgument, "tenant not set")
	}
	if req.ObjectType == pb.ObjectType_OBJECT_TYPE_NOT_SET {
		return rpcstatus.Error(rpcstatus.InvalidArgument, "object type not set")
	}
	if !trusted && controlledTypes[req.ObjectType] {
		return rpcstatus.Errorf(rpcstatus.InvalidArgument,
			"%v objects are created by the platform, not the metadata API", req.ObjectType)
	}
	if err := metadata.ValidateDefinition(req.Definition); err != nil {
		return statusOf(err)
	}
	if req.Definition.ObjectType != req.ObjectType {
		return rpcstatus.Errorf(rpcstatus.InvalidArgument,
			"definition type %v does not match request type %v",
			req.Definition.ObjectType, req.ObjectType)
	}
	if err := metadata.ValidateTagUpdates(req.TagUpdates, trusted); err != nil {
		return statusOf(err)
	}
	return nil
}

// checkVersionCompatibility enforces the structural rules between two
// consecutive versions of an object.
func checkVersionCompatibility(prior, next *pb.ObjectDefinition) error {
	if prior.GetObjectType() != next.GetObjectType() {
		return metadata.ErrPrecondition.New("object type changes between versions")
	}

	switch next.ObjectType {
	case pb.ObjectType_SCHEMA:
		return metadata.CheckSchemaCompatibility(prior.GetSchema(), next.GetSchema())

	case pb.ObjectType_DATA:
		priorData, nextData := prior.GetData(), next.GetData()
		_, priorEmbedded := priorData.SchemaSpecifier.(*pb.DataDefinition_Schema)
		_, nextEmbedded := nextData.SchemaSpecifier.(*pb.DataDefinition_Schema)
		if priorEmbedded != nextEmbedded {
			return metadata.ErrPrecondition.New(
				"dataset switches between embedded and external schemas")
		}
		if priorEmbedded {
			return metadata.CheckSchemaCompatibility(priorData.GetSchema(), nextData.GetSchema())
		}
		return nil

	case pb.ObjectType_FILE:
		priorFile, nextFile := prior.GetFile(), next.GetFile()
		if priorFile.Extension != nextFile.Extension {
			return metadata.ErrPrecondition.New(
				"file extension changes from %q to %q", priorFile.Extension, nextFile.Extension)
		}
		if priorFile.MimeType != nextFile.MimeType {
			return metadata.ErrPrecondition.New("file mime type changes between versions")
		}
		return nil
	}
	return nil
}
