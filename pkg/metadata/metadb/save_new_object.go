package metadb

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"tracd.io/tracd/pkg/metadata"
	"tracd.io/tracd/pkg/pb"
	"tracd.io/tracd/private/dbutil/txutil"
)

// SaveNewObject contains arguments for committing version 1 of an object.
type SaveNewObject struct {
	Tenant string
	Tag    *pb.Tag
}

// Verify verifies the new object request fields.
func (opts *SaveNewObject) Verify() error {
	header := opts.Tag.GetHeader()
	if header == nil {
		return ErrInvalidRequest.New("tag has no header")
	}
	if !metadata.ValidObjectId(header.ObjectId) {
		return ErrInvalidRequest.New("invalid object id %q", header.ObjectId)
	}
	if header.ObjectVersion != metadata.ObjectFirstVersion || header.TagVersion != metadata.TagFirstVersion {
		return ErrInvalidRequest.New("new object must be version %d tag %d",
			metadata.ObjectFirstVersion, metadata.TagFirstVersion)
	}
	if opts.Tag.Definition.GetObjectType() != header.ObjectType {
		return ErrWrongType.New("definition type %v does not match header type %v",
			opts.Tag.Definition.GetObjectType(), header.ObjectType)
	}
	return nil
}

// SaveNewObject commits version 1 of a new object. The object id row may
// already exist if the id was preallocated, in which case the id must still
// have no committed versions and must carry the same object type.
func (db *DB) SaveNewObject(ctx context.Context, opts SaveNewObject) (header *pb.TagHeader, err error) {
	defer mon.Task()(&ctx)(&err)

	if err := opts.Verify(); err != nil {
		return nil, err
	}
	header = opts.Tag.Header

	err = db.withTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		tenantId, err := db.tenantId(ctx, tx, opts.Tenant)
		if err != nil {
			return err
		}

		var existingType sql.NullInt64
		err = tx.QueryRowContext(ctx, db.rebind(
			`SELECT object_type FROM object_ids WHERE tenant_id = ? AND object_id = ?`),
			tenantId, header.ObjectId).Scan(&existingType)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			_, err = tx.ExecContext(ctx, db.rebind(
				`INSERT INTO object_ids ( tenant_id, object_id, object_type, created_at )
				VALUES ( ?, ?, ?, ? )`),
				tenantId, header.ObjectId, int32(header.ObjectType),
				metadata.EncodeDatetime(time.Now()).IsoDatetime)
			if err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			// preallocated id, the type was fixed at preallocation
			if pb.ObjectType(existingType.Int64) != header.ObjectType {
				return ErrWrongType.New("object %s was preallocated as %v",
					header.ObjectId, pb.ObjectType(existingType.Int64))
			}
		}

		if err := db.insertDefinition(ctx, tx, tenantId, opts.Tag); err != nil {
			return err
		}
		return db.insertTag(ctx, tx, tenantId, opts.Tag)
	})
	if err != nil {
		if txutil.ConstraintViolation(err) {
			return nil, ErrAlreadyExists.New("object %s version %d",
				header.ObjectId, header.ObjectVersion)
		}
		return nil, wrapUnlessCoded(err)
	}

	mon.Meter("metadata_object_create").Mark(1)
	return header, nil
}

// wrapUnlessCoded keeps the typed DAL error classes intact and wraps
// everything else as an internal error.
func wrapUnlessCoded(err error) error {
	switch {
	case ErrNotFound.Has(err), ErrAlreadyExists.Has(err),
		ErrWrongType.Has(err), ErrInvalidRequest.Has(err),
		ErrUnavailable.Has(err), metadata.ErrPrecondition.Has(err):
		return err
	default:
		return Error.Wrap(err)
	}
}
