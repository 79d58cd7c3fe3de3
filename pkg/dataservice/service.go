// Package dataservice implements the streaming data API: datasets and
// files move between clients and the object store, with their metadata
// committed through the trusted metadata service. Content flows through a
// decode/re-encode pipeline so that everything lands in the platform's
// canonical storage format regardless of the upload format.
package dataservice

import (
	"context"
	"strings"

	"github.com/spacemonkeygo/monkit/v3"
	"github.com/zeebo/errs"
	"go.uber.org/zap"

	"tracd.io/tracd/pkg/codec"
	"tracd.io/tracd/pkg/metadata"
	"tracd.io/tracd/pkg/metaservice"
	"tracd.io/tracd/pkg/pb"
	"tracd.io/tracd/pkg/pipeline"
	"tracd.io/tracd/pkg/rpcstatus"
	"tracd.io/tracd/pkg/storage"
)

var mon = monkit.Package()

// Error is the default data service error class.
var Error = errs.Class("dataservice")

// DefaultStorageFormat is the canonical on-disk format when the platform
// config does not choose one.
const DefaultStorageFormat = "ARROW_FILE"

// readChunkSize is the content frame size on read streams.
const readChunkSize = 64 * 1024

// Config carries the data service settings.
type Config struct {
	// StorageFormat is the canonical on-disk format for dataset content.
	StorageFormat string `yaml:"storageFormat"`
}

// Service is the data API core.
type Service struct {
	log           *zap.Logger
	meta          *metaservice.Service
	stores        *storage.Manager
	storageFormat string
}

// New constructs the data service. The metadata service is used in-process
// through its trusted surface.
func New(log *zap.Logger, meta *metaservice.Service, stores *storage.Manager, config Config) (*Service, error) {
	format := config.StorageFormat
	if format == "" {
		format = DefaultStorageFormat
	}
	if _, err := codec.ForFormat(format); err != nil {
		return nil, Error.New("storage format %q is not supported", format)
	}
	return &Service{
		log:           log,
		meta:          meta,
		stores:        stores,
		storageFormat: format,
	}, nil
}

// tenantPrefix is the storage prefix all of a tenant's blobs live under.
func tenantPrefix(tenant string) string {
	return strings.ToLower(tenant)
}

// statusOf maps the error classes met on the data path onto status codes.
// Metadata service errors already carry their code and pass through.
func statusOf(err error) error {
	switch {
	case err == nil:
		return nil
	case rpcstatus.Code(err) != rpcstatus.Unknown:
		return err
	case codec.ErrDataLoss.Has(err):
		return rpcstatus.Wrap(rpcstatus.DataLoss, err)
	case codec.ErrUnsupportedFormat.Has(err):
		return rpcstatus.Wrap(rpcstatus.Unimplemented, err)
	case metadata.ErrValidation.Has(err):
		return rpcstatus.Wrap(rpcstatus.InvalidArgument, err)
	case metadata.ErrPrecondition.Has(err):
		return rpcstatus.Wrap(rpcstatus.FailedPrecondition, err)
	case storage.ErrNotFound.Has(err):
		return rpcstatus.Wrap(rpcstatus.NotFound, err)
	case storage.ErrInvalidPath.Has(err):
		return rpcstatus.Wrap(rpcstatus.InvalidArgument, err)
	case storage.Error.Has(err):
		return rpcstatus.Wrap(rpcstatus.Unavailable, err)
	case pipeline.ErrCancelled.Has(err):
		return rpcstatus.Wrap(rpcstatus.Canceled, err)
	default:
		return rpcstatus.Wrap(rpcstatus.Internal, err)
	}
}

// blobsFor resolves the store for a storage key, the default store for "".
func (s *Service) blobsFor(key string) (storage.Blobs, string, error) {
	if key == "" {
		key = s.stores.DefaultKey()
	}
	blobs, err := s.stores.ForKey(key)
	if err != nil {
		return nil, "", rpcstatus.Wrap(rpcstatus.Unimplemented, err)
	}
	return blobs, key, nil
}

// expungeCopy flags the storage copy for a data item EXPUNGED after the
// second commit of a write failed. It runs detached from the request
// context so a cancelled request still leaves a consistent marker.
func (s *Service) expungeCopy(tenant string, storageHeader *pb.TagHeader, dataItem, storagePath string) {
	ctx, cancel := context.WithTimeout(context.Background(), expungeTimeout)
	defer cancel()

	tag, err := s.meta.ReadObject(ctx, &pb.MetadataReadRequest{
		Tenant:   tenant,
		Selector: metadata.SelectorFor(storageHeader),
	})
	if err == nil {
		def := tag.Definition.GetStorage()
		markExpunged(def, dataItem, storagePath)
		_, err = s.meta.UpdateObject(ctx, &pb.MetadataWriteRequest{
			Tenant:       tenant,
			ObjectType:   pb.ObjectType_STORAGE,
			PriorVersion: metadata.SelectorFor(storageHeader),
			Definition:   tag.Definition,
		}, true)
	}
	if err != nil {
		s.log.Error("failed to expunge orphaned storage copy",
			zap.String("tenant", tenant),
			zap.String("data_item", dataItem),
			zap.Error(err))
		return
	}
	s.log.Warn("storage copy expunged after failed commit",
		zap.String("tenant", tenant),
		zap.String("data_item", dataItem))
}
