package main

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/zeebo/errs"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"tracd.io/tracd/pkg/config"
	"tracd.io/tracd/pkg/dataservice"
	"tracd.io/tracd/pkg/gateway"
	"tracd.io/tracd/pkg/metadata/metadb"
	"tracd.io/tracd/pkg/metaservice"
	"tracd.io/tracd/pkg/pb"
	"tracd.io/tracd/pkg/process"
	"tracd.io/tracd/pkg/server"
	"tracd.io/tracd/pkg/storage"
	"tracd.io/tracd/pkg/storage/filestore"
	"tracd.io/tracd/pkg/storage/s3store"
	"tracd.io/tracd/pkg/storage/teststore"
)

const metaRestPrefix = "/trac-meta/api/v1"

func newRunCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "run the platform services",
		RunE: func(cmd *cobra.Command, args []string) error {
			platform, err := config.Load(configPath)
			if err != nil {
				return err
			}

			level, _ := cmd.Flags().GetString("log-level")
			dev, _ := cmd.Flags().GetBool("dev")
			log, err := process.NewLogger(level, dev)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			ctx, cancel := process.Ctx()
			defer cancel()
			return runPlatform(ctx, log, platform)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "platform.yaml", "platform config file")
	return cmd
}

func runPlatform(ctx context.Context, log *zap.Logger, platform *config.Platform) (err error) {
	db, err := metadb.Open(ctx, log.Named("metadb"), platform.Metadata.DatabaseUrl)
	if err != nil {
		return process.Exit(process.ExitStartup, err)
	}
	defer func() { err = errs.Combine(err, db.Close()) }()
	db.ConfigurePool(platform.Metadata.Pool.MaxConnections, platform.Metadata.Pool.MaxIdle)

	if err := bootstrapTenants(ctx, log, db, platform.Tenants); err != nil {
		return process.Exit(process.ExitStartup, err)
	}

	stores, err := openStores(platform.Storage)
	if err != nil {
		return process.Exit(process.ExitStartup, err)
	}
	manager, err := storage.NewManager(stores, platform.Storage.DefaultStore)
	if err != nil {
		return process.Exit(process.ExitStartup, err)
	}

	metaSvc := metaservice.New(log.Named("metaservice"), db)
	publicApi := metaservice.NewPublicApi(metaSvc)
	trustedApi := metaservice.NewTrustedApi(metaSvc)
	adminApi := metaservice.NewAdminApi(log.Named("admin"), db, manager)

	dataSvc, err := dataservice.New(log.Named("dataservice"), metaSvc, manager, platform.Data)
	if err != nil {
		return process.Exit(process.ExitStartup, err)
	}
	dataApi := dataservice.NewApi(dataSvc)

	group, ctx := errgroup.WithContext(ctx)

	// the metadata server also fronts the gateway when both are enabled,
	// so the gateway can bridge gRPC-Web onto an in-process handler
	metaService := platform.Services[config.ServiceMetadata]
	gatewayService := platform.Services[config.ServiceGateway]
	dataService := platform.Services[config.ServiceData]

	grpcAddress := ""
	if metaService.IsEnabled() {
		grpcAddress = metaService.ListenAddress()
	}
	httpAddress := ""
	if gatewayService.IsEnabled() {
		httpAddress = gatewayService.ListenAddress()
	}

	if grpcAddress != "" || httpAddress != "" {
		metaServer, err := server.New(log.Named("server"), server.Config{
			GrpcAddress: grpcAddress,
			HttpAddress: httpAddress,
		})
		if err != nil {
			return process.Exit(process.ExitStartup, err)
		}
		pb.RegisterTracMetadataApiServer(metaServer.GRPC(), publicApi)
		pb.RegisterTracTrustedMetadataApiServer(metaServer.GRPC(), trustedApi)
		pb.RegisterTracAdminApiServer(metaServer.GRPC(), adminApi)

		if httpAddress != "" {
			apiPrefix := platform.Gateway.ApiPrefix
			gw, err := gateway.New(log.Named("gateway"), platform.Gateway, metaServer.GRPC(),
				[]string{
					"tracd.metadata.TracMetadataApi",
					"tracd.admin.TracAdminApi",
				},
				gateway.MetadataRoutes(apiPrefix+metaRestPrefix, publicApi),
				gateway.AdminRoutes(apiPrefix+"/trac-admin/api/v1", adminApi),
			)
			if err != nil {
				return process.Exit(process.ExitStartup, err)
			}
			metaServer.SetHandler(gw)
		}

		log.Info("metadata server starting",
			zap.String("grpc", grpcAddress), zap.String("http", httpAddress))
		group.Go(func() error { return metaServer.Run(ctx) })
	}

	if dataService.IsEnabled() {
		dataServer, err := server.New(log.Named("dataserver"), server.Config{
			GrpcAddress: dataService.ListenAddress(),
		})
		if err != nil {
			return process.Exit(process.ExitStartup, err)
		}
		pb.RegisterTracDataApiServer(dataServer.GRPC(), dataApi)
		pb.RegisterTracTrustedMetadataApiServer(dataServer.GRPC(), trustedApi)

		log.Info("data server starting", zap.String("grpc", dataService.ListenAddress()))
		group.Go(func() error { return dataServer.Run(ctx) })
	}

	return group.Wait()
}

// bootstrapTenants ensures configured tenants exist; an already-known
// tenant is not an error.
func bootstrapTenants(ctx context.Context, log *zap.Logger, db *metadb.DB, tenants []config.Tenant) error {
	for _, tenant := range tenants {
		_, err := db.CreateTenant(ctx, metadb.CreateTenant{
			Code:        tenant.Code,
			Description: tenant.Description,
		})
		switch {
		case err == nil:
			log.Info("tenant created", zap.String("tenant", tenant.Code))
		case metadb.ErrAlreadyExists.Has(err):
		default:
			return err
		}
	}
	return nil
}

func openStores(cfg config.Storage) (map[string]storage.Blobs, error) {
	stores := make(map[string]storage.Blobs, len(cfg.Stores))
	for key, store := range cfg.Stores {
		switch store.Type {
		case config.StoreTypeLocal:
			blobs, err := filestore.New(store.Properties["rootPath"])
			if err != nil {
				return nil, err
			}
			stores[key] = blobs
		case config.StoreTypeS3:
			useTLS := true
			if raw, ok := store.Properties["useTls"]; ok {
				parsed, err := strconv.ParseBool(raw)
				if err != nil {
					return nil, config.Error.New("store %q: invalid useTls %q", key, raw)
				}
				useTLS = parsed
			}
			blobs, err := s3store.New(s3store.Config{
				Endpoint:  store.Properties["endpoint"],
				Region:    store.Properties["region"],
				Bucket:    store.Properties["bucket"],
				AccessKey: store.Properties["accessKey"],
				SecretKey: store.Properties["secretKey"],
				UseTLS:    useTLS,
			})
			if err != nil {
				return nil, err
			}
			stores[key] = blobs
		case config.StoreTypeTest:
			stores[key] = teststore.New()
		}
	}
	return stores, nil
}
