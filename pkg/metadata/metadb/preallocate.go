package metadb

import (
	"context"
	"database/sql"
	"time"

	"tracd.io/tracd/pkg/metadata"
	"tracd.io/tracd/pkg/pb"
	"tracd.io/tracd/private/dbutil/txutil"
)

// PreallocateId contains arguments for reserving an object id ahead of a
// streaming create. The later commit binds to the reserved id.
type PreallocateId struct {
	Tenant     string
	ObjectType pb.ObjectType
}

// Verify verifies the preallocation request fields.
func (opts *PreallocateId) Verify() error {
	if opts.ObjectType == pb.ObjectType_OBJECT_TYPE_NOT_SET {
		return ErrInvalidRequest.New("object type not set")
	}
	return nil
}

// PreallocateId reserves a fresh object id with no committed versions.
func (db *DB) PreallocateId(ctx context.Context, opts PreallocateId) (header *pb.TagHeader, err error) {
	defer mon.Task()(&ctx)(&err)

	if err := opts.Verify(); err != nil {
		return nil, err
	}

	objectId := metadata.NewObjectId()
	err = db.withTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		tenantId, err := db.tenantId(ctx, tx, opts.Tenant)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, db.rebind(
			`INSERT INTO object_ids ( tenant_id, object_id, object_type, created_at )
			VALUES ( ?, ?, ?, ? )`),
			tenantId, objectId, int32(opts.ObjectType),
			metadata.EncodeDatetime(time.Now()).IsoDatetime)
		return err
	})
	if err != nil {
		if txutil.ConstraintViolation(err) {
			// freshly minted uuid collided, effectively impossible
			return nil, ErrAlreadyExists.New("object %s", objectId)
		}
		return nil, wrapUnlessCoded(err)
	}

	return &pb.TagHeader{
		ObjectType: opts.ObjectType,
		ObjectId:   objectId,
	}, nil
}
