package metadb

import (
	"context"
	"database/sql"
	"errors"

	"tracd.io/tracd/pkg/metadata"
	"tracd.io/tracd/pkg/pb"
	"tracd.io/tracd/private/dbutil/txutil"
)

// SaveNewTag contains arguments for committing a tag-only update to the
// current object version.
type SaveNewTag struct {
	Tenant string
	Tag    *pb.Tag
}

// Verify verifies the new tag request fields.
func (opts *SaveNewTag) Verify() error {
	header := opts.Tag.GetHeader()
	if header == nil {
		return ErrInvalidRequest.New("tag has no header")
	}
	if !metadata.ValidObjectId(header.ObjectId) {
		return ErrInvalidRequest.New("invalid object id %q", header.ObjectId)
	}
	if header.TagVersion <= metadata.TagFirstVersion {
		return ErrInvalidRequest.New("new tag version must be greater than %d", metadata.TagFirstVersion)
	}
	return nil
}

// SaveNewTag commits the next tag version for an existing object version.
func (db *DB) SaveNewTag(ctx context.Context, opts SaveNewTag) (header *pb.TagHeader, err error) {
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
			`SELECT i.object_type FROM object_ids i
			JOIN object_definitions d ON d.tenant_id = i.tenant_id AND d.object_id = i.object_id
			WHERE i.tenant_id = ? AND i.object_id = ? AND d.object_version = ?`),
			tenantId, header.ObjectId, header.ObjectVersion).Scan(&storedType)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound.New("object %s version %d", header.ObjectId, header.ObjectVersion)
		}
		if err != nil {
			return err
		}
		if pb.ObjectType(storedType) != header.ObjectType {
			return ErrWrongType.New("object %s is %v, not %v",
				header.ObjectId, pb.ObjectType(storedType), header.ObjectType)
		}

		return db.insertTag(ctx, tx, tenantId, opts.Tag)
	})
	if err != nil {
		if txutil.ConstraintViolation(err) {
			return nil, ErrAlreadyExists.New("object %s version %d tag %d",
				header.ObjectId, header.ObjectVersion, header.TagVersion)
		}
		return nil, wrapUnlessCoded(err)
	}

	mon.Meter("metadata_tag_update").Mark(1)
	return header, nil
}
