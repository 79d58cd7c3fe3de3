package metaservice

import (
	"context"

	"tracd.io/tracd/pkg/pb"
	"tracd.io/tracd/pkg/rpcstatus"
)

// PublicApi is the gRPC surface exposed to clients. Writes of controlled
// object types and reserved attrs are refused here.
type PublicApi struct {
	svc *Service
}

// NewPublicApi wraps a service in its public gRPC surface.
func NewPublicApi(svc *Service) *PublicApi {
	return &PublicApi{svc: svc}
}

var _ pb.TracMetadataApiServer = (*PublicApi)(nil)

func (api *PublicApi) CreateObject(ctx context.Context, req *pb.MetadataWriteRequest) (*pb.TagHeader, error) {
	header, err := api.svc.CreateObject(ctx, req, false)
	return header, rpcstatus.ToGrpc(err)
}

func (api *PublicApi) UpdateObject(ctx context.Context, req *pb.MetadataWriteRequest) (*pb.TagHeader, error) {
	header, err := api.svc.UpdateObject(ctx, req, false)
	return header, rpcstatus.ToGrpc(err)
}

func (api *PublicApi) UpdateTag(ctx context.Context, req *pb.MetadataWriteRequest) (*pb.TagHeader, error) {
	header, err := api.svc.UpdateTag(ctx, req, false)
	return header, rpcstatus.ToGrpc(err)
}

func (api *PublicApi) ReadObject(ctx context.Context, req *pb.MetadataReadRequest) (*pb.Tag, error) {
	tag, err := api.svc.ReadObject(ctx, req)
	return tag, rpcstatus.ToGrpc(err)
}

func (api *PublicApi) ReadBatch(ctx context.Context, req *pb.MetadataBatchRequest) (*pb.MetadataBatchResponse, error) {
	resp, err := api.svc.ReadBatch(ctx, req)
	return resp, rpcstatus.ToGrpc(err)
}

func (api *PublicApi) Search(ctx context.Context, req *pb.MetadataSearchRequest) (*pb.MetadataSearchResponse, error) {
	resp, err := api.svc.Search(ctx, req)
	return resp, rpcstatus.ToGrpc(err)
}

func (api *PublicApi) CreateObjectBatch(ctx context.Context, req *pb.MetadataWriteBatchRequest) (*pb.MetadataWriteBatchResponse, error) {
	resp, err := api.svc.CreateObjectBatch(ctx, req, false)
	return resp, rpcstatus.ToGrpc(err)
}

// TrustedApi is the in-platform gRPC surface. It shares the public method
// set without the controlled-type and reserved-attr restrictions, and adds
// id preallocation.
type TrustedApi struct {
	svc *Service
}

// NewTrustedApi wraps a service in its trusted gRPC surface.
func NewTrustedApi(svc *Service) *TrustedApi {
	return &TrustedApi{svc: svc}
}

var _ pb.TracTrustedMetadataApiServer = (*TrustedApi)(nil)

func (api *TrustedApi) CreateObject(ctx context.Context, req *pb.MetadataWriteRequest) (*pb.TagHeader, error) {
	header, err := api.svc.CreateObject(ctx, req, true)
	return header, rpcstatus.ToGrpc(err)
}

func (api *TrustedApi) UpdateObject(ctx context.Context, req *pb.MetadataWriteRequest) (*pb.TagHeader, error) {
	header, err := api.svc.UpdateObject(ctx, req, true)
	return header, rpcstatus.ToGrpc(err)
}

func (api *TrustedApi) UpdateTag(ctx context.Context, req *pb.MetadataWriteRequest) (*pb.TagHeader, error) {
	header, err := api.svc.UpdateTag(ctx, req, true)
	return header, rpcstatus.ToGrpc(err)
}

func (api *TrustedApi) ReadObject(ctx context.Context, req *pb.MetadataReadRequest) (*pb.Tag, error) {
	tag, err := api.svc.ReadObject(ctx, req)
	return tag, rpcstatus.ToGrpc(err)
}

func (api *TrustedApi) ReadBatch(ctx context.Context, req *pb.MetadataBatchRequest) (*pb.MetadataBatchResponse, error) {
	resp, err := api.svc.ReadBatch(ctx, req)
	return resp, rpcstatus.ToGrpc(err)
}

func (api *TrustedApi) Search(ctx context.Context, req *pb.MetadataSearchRequest) (*pb.MetadataSearchResponse, error) {
	resp, err := api.svc.Search(ctx, req)
	return resp, rpcstatus.ToGrpc(err)
}

func (api *TrustedApi) CreateObjectBatch(ctx context.Context, req *pb.MetadataWriteBatchRequest) (*pb.MetadataWriteBatchResponse, error) {
	resp, err := api.svc.CreateObjectBatch(ctx, req, true)
	return resp, rpcstatus.ToGrpc(err)
}

func (api *TrustedApi) PreallocateId(ctx context.Context, req *pb.PreallocateRequest) (*pb.TagHeader, error) {
	header, err := api.svc.PreallocateId(ctx, req)
	return header, rpcstatus.ToGrpc(err)
}
