package metaservice

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"tracd.io/tracd/pkg/metadata/metadb"
	"tracd.io/tracd/pkg/pb"
	"tracd.io/tracd/pkg/rpcstatus"
	"tracd.io/tracd/pkg/storage"
)

// AdminApi is the tenant and storage lifecycle surface.
type AdminApi struct {
	log    *zap.Logger
	db     *metadb.DB
	stores *storage.Manager
}

// NewAdminApi constructs the admin surface over the DAL and the configured
// blob stores.
func NewAdminApi(log *zap.Logger, db *metadb.DB, stores *storage.Manager) *AdminApi {
	return &AdminApi{log: log, db: db, stores: stores}
}

var _ pb.TracAdminApiServer = (*AdminApi)(nil)

func (api *AdminApi) CreateTenant(ctx context.Context, req *pb.TenantInfo) (_ *pb.TenantInfo, err error) {
	defer mon.Task()(&ctx)(&err)

	info, err := api.db.CreateTenant(ctx, metadb.CreateTenant{
		Code:        req.GetTenantCode(),
		Description: req.GetDescription(),
	})
	if err != nil {
		return nil, rpcstatus.ToGrpc(statusOf(err))
	}
	api.log.Info("tenant created", zap.String("tenant", info.TenantCode))
	return info, nil
}

func (api *AdminApi) ListTenants(ctx context.Context, req *pb.ListTenantsRequest) (_ *pb.ListTenantsResponse, err error) {
	defer mon.Task()(&ctx)(&err)

	tenants, err := api.db.ListTenants(ctx)
	if err != nil {
		return nil, rpcstatus.ToGrpc(statusOf(err))
	}
	return &pb.ListTenantsResponse{Tenants: tenants}, nil
}

func (api *AdminApi) CreateStoragePrefix(ctx context.Context, req *pb.StoragePrefixRequest) (_ *pb.StoragePrefixResponse, err error) {
	defer mon.Task()(&ctx)(&err)

	blobs, prefix, err := api.resolvePrefix(req)
	if err != nil {
		return nil, rpcstatus.ToGrpc(err)
	}
	if err := blobs.CreatePrefix(ctx, prefix); err != nil {
		return nil, rpcstatus.ToGrpc(rpcstatus.Wrap(rpcstatus.Unavailable, err))
	}
	return &pb.StoragePrefixResponse{Prefix: prefix}, nil
}

func (api *AdminApi) DeleteStoragePrefix(ctx context.Context, req *pb.StoragePrefixRequest) (_ *pb.StoragePrefixResponse, err error) {
	defer mon.Task()(&ctx)(&err)

	blobs, prefix, err := api.resolvePrefix(req)
	if err != nil {
		return nil, rpcstatus.ToGrpc(err)
	}
	if err := blobs.DeletePrefix(ctx, prefix); err != nil {
		return nil, rpcstatus.ToGrpc(rpcstatus.Wrap(rpcstatus.Unavailable, err))
	}
	api.log.Info("storage prefix deleted", zap.String("prefix", prefix))
	return &pb.StoragePrefixResponse{Prefix: prefix}, nil
}

// resolvePrefix picks the store for a request and derives the tenant
// prefix. An empty storage key means the default store.
func (api *AdminApi) resolvePrefix(req *pb.StoragePrefixRequest) (storage.Blobs, string, error) {
	key := req.GetStorageKey()
	if key == "" {
		key = api.stores.DefaultKey()
	}
	blobs, err := api.stores.ForKey(key)
	if err != nil {
		return nil, "", rpcstatus.Wrap(rpcstatus.Unimplemented, err)
	}
	code := req.GetTenantCode()
	if code == "" {
		return nil, "", rpcstatus.Error(rpcstatus.InvalidArgument, "tenant code not set")
	}
	return blobs, strings.ToLower(code), nil
}
