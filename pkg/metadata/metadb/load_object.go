package metadb

import (
	"context"
	"database/sql"
	"errors"

	"tracd.io/tracd/pkg/metadata"
	"tracd.io/tracd/pkg/pb"
)

// LoadObject contains arguments for resolving one selector to a stored tag.
type LoadObject struct {
	Tenant   string
	Selector *pb.TagSelector
}

// Verify verifies the load request fields.
func (opts *LoadObject) Verify() error {
	if err := metadata.ValidateSelector(opts.Selector); err != nil {
		return ErrInvalidRequest.Wrap(err)
	}
	return nil
}

// LoadObject resolves a selector and returns the stored tag.
func (db *DB) LoadObject(ctx context.Context, opts LoadObject) (tag *pb.Tag, err error) {
	defer mon.Task()(&ctx)(&err)

	if err := opts.Verify(); err != nil {
		return nil, err
	}

	err = db.withRetry(ctx, func(ctx context.Context) error {
		tag, err = db.loadOne(ctx, db.db, opts.Tenant, opts.Selector)
		return err
	})
	if err != nil {
		return nil, wrapUnlessCoded(err)
	}
	return tag, nil
}

// LoadObjects contains arguments for resolving a batch of selectors.
type LoadObjects struct {
	Tenant    string
	Selectors []*pb.TagSelector
}

// Verify verifies the batch request fields.
func (opts *LoadObjects) Verify() error {
	if len(opts.Selectors) == 0 {
		return ErrInvalidRequest.New("batch has no selectors")
	}
	for i, selector := range opts.Selectors {
		if err := metadata.ValidateSelector(selector); err != nil {
			return ErrInvalidRequest.New("selector %d: %w", i, err)
		}
	}
	return nil
}

// LoadObjects resolves all selectors, returning tags in request order. The
// whole batch fails if any selector does not resolve.
func (db *DB) LoadObjects(ctx context.Context, opts LoadObjects) (tags []*pb.Tag, err error) {
	defer mon.Task()(&ctx)(&err)

	if err := opts.Verify(); err != nil {
		return nil, err
	}

	err = db.withRetry(ctx, func(ctx context.Context) error {
		tags = make([]*pb.Tag, 0, len(opts.Selectors))
		for _, selector := range opts.Selectors {
			tag, err := db.loadOne(ctx, db.db, opts.Tenant, selector)
			if err != nil {
				return err
			}
			tags = append(tags, tag)
		}
		return nil
	})
	if err != nil {
		return nil, wrapUnlessCoded(err)
	}
	return tags, nil
}

// LoadPriorObject resolves a selector that pins an explicit object version,
// the shape used when an update needs the exact prior version regardless of
// what the latest version is by now.
func (db *DB) LoadPriorObject(ctx context.Context, opts LoadObject) (tag *pb.Tag, err error) {
	defer mon.Task()(&ctx)(&err)

	if err := opts.Verify(); err != nil {
		return nil, err
	}
	if _, ok := opts.Selector.ObjectCriteria.(*pb.TagSelector_ObjectVersion); !ok {
		return nil, ErrInvalidRequest.New("prior object load requires an explicit object version")
	}

	err = db.withRetry(ctx, func(ctx context.Context) error {
		tag, err = db.loadOne(ctx, db.db, opts.Tenant, opts.Selector)
		return err
	})
	if err != nil {
		return nil, wrapUnlessCoded(err)
	}
	return tag, nil
}

func (db *DB) loadOne(ctx context.Context, q querier, tenant string, selector *pb.TagSelector) (*pb.Tag, error) {
	tenantId, err := db.tenantId(ctx, q, tenant)
	if err != nil {
		return nil, err
	}

	var storedType int32
	err = q.QueryRowContext(ctx, db.rebind(
		`SELECT object_type FROM object_ids WHERE tenant_id = ? AND object_id = ?`),
		tenantId, selector.ObjectId).Scan(&storedType)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound.New("object %s", selector.ObjectId)
	}
	if err != nil {
		return nil, err
	}
	if pb.ObjectType(storedType) != selector.ObjectType {
		return nil, ErrWrongType.New("object %s is %v, not %v",
			selector.ObjectId, pb.ObjectType(storedType), selector.ObjectType)
	}

	objectVersion, err := db.resolveObjectVersion(ctx, q, tenantId, selector)
	if err != nil {
		return nil, err
	}
	tagVersion, err := db.resolveTagVersion(ctx, q, tenantId, selector, objectVersion)
	if err != nil {
		return nil, err
	}

	var blob []byte
	err = q.QueryRowContext(ctx, db.rebind(
		`SELECT tag FROM object_tags
		WHERE tenant_id = ? AND object_id = ? AND object_version = ? AND tag_version = ?`),
		tenantId, selector.ObjectId, objectVersion, tagVersion).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound.New("object %s version %d tag %d",
			selector.ObjectId, objectVersion, tagVersion)
	}
	if err != nil {
		return nil, err
	}
	return decodeTag(blob)
}

// resolveObjectVersion applies the selector's object criterion: explicit
// version, as-of timestamp, or latest.
func (db *DB) resolveObjectVersion(ctx context.Context, q querier, tenantId int64, selector *pb.TagSelector) (int32, error) {
	switch criteria := selector.ObjectCriteria.(type) {
	case *pb.TagSelector_ObjectVersion:
		return criteria.ObjectVersion, nil

	case *pb.TagSelector_ObjectAsOf:
		asOf, err := metadata.DecodeDatetime(criteria.ObjectAsOf)
		if err != nil {
			return 0, ErrInvalidRequest.Wrap(err)
		}
		var version sql.NullInt64
		err = q.QueryRowContext(ctx, db.rebind(
			`SELECT MAX(object_version) FROM object_definitions
			WHERE tenant_id = ? AND object_id = ? AND object_timestamp <= ?`),
			tenantId, selector.ObjectId,
			metadata.EncodeDatetime(asOf).IsoDatetime).Scan(&version)
		if err != nil {
			return 0, err
		}
		if !version.Valid {
			return 0, ErrNotFound.New("object %s as of %s",
				selector.ObjectId, criteria.ObjectAsOf.GetIsoDatetime())
		}
		return int32(version.Int64), nil

	case *pb.TagSelector_LatestObject:
		var version sql.NullInt64
		err := q.QueryRowContext(ctx, db.rebind(
			`SELECT MAX(object_version) FROM object_definitions
			WHERE tenant_id = ? AND object_id = ?`),
			tenantId, selector.ObjectId).Scan(&version)
		if err != nil {
			return 0, err
		}
		if !version.Valid {
			return 0, ErrNotFound.New("object %s has no committed versions", selector.ObjectId)
		}
		return int32(version.Int64), nil

	default:
		return 0, ErrInvalidRequest.New("selector has no object criterion")
	}
}

// resolveTagVersion applies the selector's tag criterion within the chosen
// object version.
func (db *DB) resolveTagVersion(ctx context.Context, q querier, tenantId int64, selector *pb.TagSelector, objectVersion int32) (int32, error) {
	switch criteria := selector.TagCriteria.(type) {
	case *pb.TagSelector_TagVersion:
		return criteria.TagVersion, nil

	case *pb.TagSelector_TagAsOf:
		asOf, err := metadata.DecodeDatetime(criteria.TagAsOf)
		if err != nil {
			return 0, ErrInvalidRequest.Wrap(err)
		}
		var version sql.NullInt64
		err = q.QueryRowContext(ctx, db.rebind(
			`SELECT MAX(tag_version) FROM object_tags
			WHERE tenant_id = ? AND object_id = ? AND object_version = ? AND tag_timestamp <= ?`),
			tenantId, selector.ObjectId, objectVersion,
			metadata.EncodeDatetime(asOf).IsoDatetime).Scan(&version)
		if err != nil {
			return 0, err
		}
		if !version.Valid {
			return 0, ErrNotFound.New("object %s version %d as of %s",
				selector.ObjectId, objectVersion, criteria.TagAsOf.GetIsoDatetime())
		}
		return int32(version.Int64), nil

	case *pb.TagSelector_LatestTag:
		var version sql.NullInt64
		err := q.QueryRowContext(ctx, db.rebind(
			`SELECT MAX(tag_version) FROM object_tags
			WHERE tenant_id = ? AND object_id = ? AND object_version = ?`),
			tenantId, selector.ObjectId, objectVersion).Scan(&version)
		if err != nil {
			return 0, err
		}
		if !version.Valid {
			return 0, ErrNotFound.New("object %s version %d has no tags",
				selector.ObjectId, objectVersion)
		}
		return int32(version.Int64), nil

	default:
		return 0, ErrInvalidRequest.New("selector has no tag criterion")
	}
}
