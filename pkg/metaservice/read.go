package metaservice

import (
	"context"

	"tracd.io/tracd/pkg/metadata/metadb"
	"tracd.io/tracd/pkg/pb"
	"tracd.io/tracd/pkg/rpcstatus"
)

// ReadObject resolves one selector to its stored tag.
func (s *Service) ReadObject(ctx context.Context, req *pb.MetadataReadRequest) (tag *pb.Tag, err error) {
	defer mon.Task()(&ctx)(&err)

	if req.GetTenant() == "" {
		return nil, rpcstatus.Error(rpcstatus.InvalidArgument, "tenant not set")
	}
	tag, err = s.db.LoadObject(ctx, metadb.LoadObject{
		Tenant:   req.Tenant,
		Selector: req.Selector,
	})
	if err != nil {
		return nil, statusOf(err)
	}
	return tag, nil
}

// ReadBatch resolves a batch of selectors, tags in request order. The batch
// fails as a whole when any selector does not resolve.
func (s *Service) ReadBatch(ctx context.Context, req *pb.MetadataBatchRequest) (resp *pb.MetadataBatchResponse, err error) {
	defer mon.Task()(&ctx)(&err)

	if req.GetTenant() == "" {
		return nil, rpcstatus.Error(rpcstatus.InvalidArgument, "tenant not set")
	}
	tags, err := s.db.LoadObjects(ctx, metadb.LoadObjects{
		Tenant:    req.Tenant,
		Selectors: req.Selector,
	})
	if err != nil {
		return nil, statusOf(err)
	}
	return &pb.MetadataBatchResponse{Tag: tags}, nil
}

// Search returns the tags matching an attr search expression.
func (s *Service) Search(ctx context.Context, req *pb.MetadataSearchRequest) (resp *pb.MetadataSearchResponse, err error) {
	defer mon.Task()(&ctx)(&err)

	if req.GetTenant() == "" {
		return nil, rpcstatus.Error(rpcstatus.InvalidArgument, "tenant not set")
	}
	tags, err := s.db.Search(ctx, metadb.Search{
		Tenant: req.Tenant,
		Params: req.SearchParams,
	})
	if err != nil {
		return nil, statusOf(err)
	}
	return &pb.MetadataSearchResponse{SearchResult: tags}, nil
}
