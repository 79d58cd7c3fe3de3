package gateway

import (
	"context"

	"tracd.io/tracd/pkg/pb"
)

// MetadataRoutes builds the REST surface of the public metadata API under
// the given path prefix. Write operations are POST with a JSON body; reads
// come in a POST form taking a selector body and GET forms with the
// selector spelled out in the path.
func MetadataRoutes(prefix string, api pb.TracMetadataApiServer) []RestMethod {
	return []RestMethod{
		{
			HttpMethod: "POST",
			Template:   MustTemplate(prefix + "/{tenant}/create-object"),
			HasBody:    true,
			NewRequest: func() interface{} { return new(pb.MetadataWriteRequest) },
			Invoke: func(ctx context.Context, req interface{}) (interface{}, error) {
				return api.CreateObject(ctx, req.(*pb.MetadataWriteRequest))
			},
		},
		{
			HttpMethod: "POST",
			Template:   MustTemplate(prefix + "/{tenant}/update-object"),
			HasBody:    true,
			NewRequest: func() interface{} { return new(pb.MetadataWriteRequest) },
			Invoke: func(ctx context.Context, req interface{}) (interface{}, error) {
				return api.UpdateObject(ctx, req.(*pb.MetadataWriteRequest))
			},
		},
		{
			HttpMethod: "POST",
			Template:   MustTemplate(prefix + "/{tenant}/update-tag"),
			HasBody:    true,
			NewRequest: func() interface{} { return new(pb.MetadataWriteRequest) },
			Invoke: func(ctx context.Context, req interface{}) (interface{}, error) {
				return api.UpdateTag(ctx, req.(*pb.MetadataWriteRequest))
			},
		},
		{
			HttpMethod: "POST",
			Template:   MustTemplate(prefix + "/{tenant}/read-object"),
			HasBody:    true,
			BodyField:  "selector",
			NewRequest: func() interface{} { return new(pb.MetadataReadRequest) },
			Invoke: func(ctx context.Context, req interface{}) (interface{}, error) {
				return api.ReadObject(ctx, req.(*pb.MetadataReadRequest))
			},
		},
		{
			HttpMethod: "GET",
			Template: MustTemplate(prefix +
				"/{tenant}/{selector.object_type}/{selector.object_id}" +
				"/versions/{selector.object_version}/tags/{selector.tag_version}"),
			NewRequest: func() interface{} { return new(pb.MetadataReadRequest) },
			Invoke: func(ctx context.Context, req interface{}) (interface{}, error) {
				return api.ReadObject(ctx, req.(*pb.MetadataReadRequest))
			},
		},
		{
			HttpMethod: "GET",
			Template: MustTemplate(prefix +
				"/{tenant}/{selector.object_type}/{selector.object_id}/latest"),
			Defaults: map[string]string{
				"selector.latest_object": "true",
				"selector.latest_tag":    "true",
			},
			NewRequest: func() interface{} { return new(pb.MetadataReadRequest) },
			Invoke: func(ctx context.Context, req interface{}) (interface{}, error) {
				return api.ReadObject(ctx, req.(*pb.MetadataReadRequest))
			},
		},
		{
			HttpMethod: "POST",
			Template:   MustTemplate(prefix + "/{tenant}/read-batch"),
			HasBody:    true,
			NewRequest: func() interface{} { return new(pb.MetadataBatchRequest) },
			Invoke: func(ctx context.Context, req interface{}) (interface{}, error) {
				return api.ReadBatch(ctx, req.(*pb.MetadataBatchRequest))
			},
		},
		{
			HttpMethod: "POST",
			Template:   MustTemplate(prefix + "/{tenant}/search"),
			HasBody:    true,
			BodyField:  "search_params",
			NewRequest: func() interface{} { return new(pb.MetadataSearchRequest) },
			Invoke: func(ctx context.Context, req interface{}) (interface{}, error) {
				return api.Search(ctx, req.(*pb.MetadataSearchRequest))
			},
		},
		{
			HttpMethod: "POST",
			Template:   MustTemplate(prefix + "/{tenant}/create-object-batch"),
			HasBody:    true,
			NewRequest: func() interface{} { return new(pb.MetadataWriteBatchRequest) },
			Invoke: func(ctx context.Context, req interface{}) (interface{}, error) {
				return api.CreateObjectBatch(ctx, req.(*pb.MetadataWriteBatchRequest))
			},
		},
	}
}

// AdminRoutes builds the REST surface of the admin API.
func AdminRoutes(prefix string, api pb.TracAdminApiServer) []RestMethod {
	return []RestMethod{
		{
			HttpMethod: "GET",
			Template:   MustTemplate(prefix + "/tenants"),
			NewRequest: func() interface{} { return new(pb.ListTenantsRequest) },
			Invoke: func(ctx context.Context, req interface{}) (interface{}, error) {
				return api.ListTenants(ctx, req.(*pb.ListTenantsRequest))
			},
		},
		{
			HttpMethod: "POST",
			Template:   MustTemplate(prefix + "/tenants"),
			HasBody:    true,
			NewRequest: func() interface{} { return new(pb.TenantInfo) },
			Invoke: func(ctx context.Context, req interface{}) (interface{}, error) {
				return api.CreateTenant(ctx, req.(*pb.TenantInfo))
			},
		},
		{
			HttpMethod: "POST",
			Template:   MustTemplate(prefix + "/tenants/{tenant_code}/storage/{storage_key}"),
			NewRequest: func() interface{} { return new(pb.StoragePrefixRequest) },
			Invoke: func(ctx context.Context, req interface{}) (interface{}, error) {
				return api.CreateStoragePrefix(ctx, req.(*pb.StoragePrefixRequest))
			},
		},
		{
			HttpMethod: "POST",
			Template:   MustTemplate(prefix + "/tenants/{tenant_code}/storage/{storage_key}/delete"),
			NewRequest: func() interface{} { return new(pb.StoragePrefixRequest) },
			Invoke: func(ctx context.Context, req interface{}) (interface{}, error) {
				return api.DeleteStoragePrefix(ctx, req.(*pb.StoragePrefixRequest))
			},
		},
	}
}
