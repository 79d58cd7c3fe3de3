package metadb

import (
	"context"
	"database/sql"
	"errors"

	"tracd.io/tracd/pkg/metadata"
	"tracd.io/tracd/pkg/pb"
	"tracd.io/tracd/private/dbutil/txutil"
)

// SaveNewVersion contains arguments for committing the next version of an
// existing object. The tag header already carries the assigned version,
// which must be exactly one past the latest committed version.
type SaveNewVersion struct {
	Tenant string
	Tag    *pb.Tag
}

// Verify verifies the new version request fields.
func (opts *SaveNewVersion) Verify() error {
	header := opts.Tag.GetHeader()
	if header == nil {
		return ErrInvalidRequest.New("tag has no header")
	}
	if !metadata.ValidObjectId(header.ObjectId) {
		return ErrInvalidRequest.New("invalid object id %q", header.ObjectId)
	}
	if header.ObjectVersion <= metadata.ObjectFirstVersion {
		return ErrInvalidRequest.New("new version must be greater than %d", metadata.ObjectFirstVersion)
	}
	if header.TagVersion != metadata.TagFirstVersion {
		return ErrInvalidRequest.New("tag version restarts at %d on a new object version", metadata.TagFirstVersion)
	}
	if opts.Tag.Definition.GetObjectType() != header.ObjectType {
		return ErrWrongType.New("definition type %v does not match header type %v",
			opts.Tag.Definition.GetObjectType(), header.ObjectType)
	}
	return nil
}

// SaveNewVersion commits the next version of an object. NOT_FOUND when the
// prior version does not exist, ALREADY_EXISTS when a concurrent writer got
// there first, wrong type when the stored object type differs.
func (db *DB) SaveNewVersion(ctx context.Context, opts SaveNewVersion) (header *pb.TagHeader, err error) {
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

		var storedType int32
		err = tx.QueryRowContext(ctx, db.rebind(
			`SELECT object_type FROM object_ids WHERE tenant_id = ? AND object_id = ?`),
			tenantId, header.ObjectId).Scan(&storedType)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound.New("object %s", header.ObjectId)
		}
		if err != nil {
			return err
		}
		if pb.ObjectType(storedType) != header.ObjectType {
			return ErrWrongType.New("object %s is %v, not %v",
				header.ObjectId, pb.ObjectType(storedType), header.ObjectType)
		}

		var priorExists bool
		err = tx.QueryRowContext(ctx, db.rebind(
			`SELECT COUNT(*) > 0 FROM object_definitions
			WHERE tenant_id = ? AND object_id = ? AND object_version = ?`),
			tenantId, header.ObjectId, header.ObjectVersion-1).Scan(&priorExists)
		if err != nil {
			return err
		}
		if !priorExists {
			return ErrNotFound.New("object %s version %d",
				header.ObjectId, header.ObjectVersion-1)
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

	mon.Meter("metadata_object_update").Mark(1)
	return header, nil
}
