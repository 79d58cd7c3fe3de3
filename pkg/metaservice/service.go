// Package metaservice implements the metadata API on top of the metadata
// DAL. The same core service backs two gRPC surfaces: the public API, which
// refuses writes of platform-controlled object types and reserved attrs,
// and the trusted API used in-process by the data service, which may write
// them and can preallocate object ids.
package metaservice

import (
	"github.com/spacemonkeygo/monkit/v3"
	"github.com/zeebo/errs"
	"go.uber.org/zap"

	"tracd.io/tracd/pkg/metadata"
	"tracd.io/tracd/pkg/metadata/metadb"
	"tracd.io/tracd/pkg/pb"
	"tracd.io/tracd/pkg/rpcstatus"
)

var mon = monkit.Package()

// Error is the default metaservice error class.
var Error = errs.Class("metaservice")

// Object types only the platform itself may create or version.
var controlledTypes = map[pb.ObjectType]bool{
	pb.ObjectType_DATA:    true,
	pb.ObjectType_FILE:    true,
	pb.ObjectType_STORAGE: true,
}

// Service is the metadata API core, shared by the public and trusted
// surfaces.
type Service struct {
	log *zap.Logger
	db  *metadb.DB
}

// New constructs a metadata service over an open DAL.
func New(log *zap.Logger, db *metadb.DB) *Service {
	return &Service{log: log, db: db}
}

// statusOf maps model and DAL error classes onto API status codes. Errors
// with no recognized class surface as internal, their text is not
// forwarded to clients.
func statusOf(err error) error {
	switch {
	case err == nil:
		return nil
	case metadata.ErrValidation.Has(err), metadb.ErrInvalidRequest.Has(err):
		return rpcstatus.Wrap(rpcstatus.InvalidArgument, err)
	case metadb.ErrNotFound.Has(err):
		return rpcstatus.Wrap(rpcstatus.NotFound, err)
	case metadb.ErrAlreadyExists.Has(err):
		return rpcstatus.Wrap(rpcstatus.AlreadyExists, err)
	case metadata.ErrPrecondition.Has(err), metadb.ErrWrongType.Has(err):
		return rpcstatus.Wrap(rpcstatus.FailedPrecondition, err)
	case metadb.ErrUnavailable.Has(err):
		return rpcstatus.Wrap(rpcstatus.Unavailable, err)
	default:
		return rpcstatus.Wrap(rpcstatus.Internal, err)
	}
}
