package metadb

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/zeebo/errs"

	"tracd.io/tracd/pkg/metadata"
	"tracd.io/tracd/pkg/pb"
	"tracd.io/tracd/private/dbutil/txutil"
)

// CreateTenant contains arguments for onboarding a new tenant.
type CreateTenant struct {
	Code        string
	Description string
}

// Verify verifies tenant creation fields.
func (opts *CreateTenant) Verify() error {
	if !metadata.ValidTenantCode(opts.Code) {
		return ErrInvalidRequest.New("invalid tenant code %q", opts.Code)
	}
	return nil
}

// CreateTenant registers a tenant. Tenant ids are assigned sequentially
// inside the transaction, codes are unique.
func (db *DB) CreateTenant(ctx context.Context, opts CreateTenant) (info *pb.TenantInfo, err error) {
	defer mon.Task()(&ctx)(&err)

	if err := opts.Verify(); err != nil {
		return nil, err
	}

	err = db.withTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		var nextId sql.NullInt64
		err := tx.QueryRowContext(ctx,
			`SELECT MAX(tenant_id) FROM tenants`).Scan(&nextId)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, db.rebind(
			`INSERT INTO tenants ( tenant_id, tenant_code, description, created_at )
			VALUES ( ?, ?, ?, ? )`),
			nextId.Int64+1, opts.Code, opts.Description,
			metadata.EncodeDatetime(time.Now()).IsoDatetime)
		return err
	})
	if err != nil {
		if txutil.ConstraintViolation(err) {
			return nil, ErrAlreadyExists.New("tenant %q", opts.Code)
		}
		return nil, Error.Wrap(err)
	}

	return &pb.TenantInfo{TenantCode: opts.Code, Description: opts.Description}, nil
}

// ListTenants returns all registered tenants ordered by code.
func (db *DB) ListTenants(ctx context.Context) (tenants []*pb.TenantInfo, err error) {
	defer mon.Task()(&ctx)(&err)

	err = db.withRetry(ctx, func(ctx context.Context) (err error) {
		rows, err := db.db.QueryContext(ctx,
			`SELECT tenant_code, description FROM tenants ORDER BY tenant_code`)
		if err != nil {
			return err
		}
		defer func() { err = errs.Combine(err, rows.Close()) }()

		tenants = tenants[:0]
		for rows.Next() {
			info := &pb.TenantInfo{}
			if err := rows.Scan(&info.TenantCode, &info.Description); err != nil {
				return err
			}
			tenants = append(tenants, info)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, Error.Wrap(err)
	}
	return tenants, nil
}

// querier covers both *sql.DB and *sql.Tx.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// tenantId resolves a tenant code inside the current transaction.
func (db *DB) tenantId(ctx context.Context, q querier, code string) (int64, error) {
	if !metadata.ValidTenantCode(code) {
		return 0, ErrInvalidRequest.New("invalid tenant code %q", code)
	}
	var id int64
	err := q.QueryRowContext(ctx, db.rebind(
		`SELECT tenant_id FROM tenants WHERE tenant_code = ?`), code).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound.New("tenant %q", code)
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}
