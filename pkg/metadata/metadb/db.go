// Package metadb is the data access layer for tenant metadata. All writes
// run inside serializable transactions, version uniqueness is enforced by
// primary key constraints and surfaced as ErrAlreadyExists.
package metadb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"
	"time"

	"github.com/spacemonkeygo/monkit/v3"
	"github.com/zeebo/errs"
	"go.uber.org/zap"

	"tracd.io/tracd/private/dbutil"
	"tracd.io/tracd/private/dbutil/txutil"
)

var mon = monkit.Package()

// Error is the default metadb error class.
var Error = errs.Class("metadb")

// ErrNotFound means the selector did not resolve to a stored object.
var ErrNotFound = errs.Class("metadata not found")

// ErrAlreadyExists means a version or tag slot was already taken.
var ErrAlreadyExists = errs.Class("metadata already exists")

// ErrWrongType means the stored object has a different object type than
// the request claims.
var ErrWrongType = errs.Class("metadata wrong type")

// ErrInvalidRequest means the request arguments are malformed.
var ErrInvalidRequest = errs.Class("metadb invalid request")

// ErrUnavailable means the backend could not be reached within the retry
// budget.
var ErrUnavailable = errs.Class("metadb unavailable")

const (
	maxAttempts    = 4
	initialBackoff = 100 * time.Millisecond
)

// DB provides access to the metadata store.
type DB struct {
	log  *zap.Logger
	db   *sql.DB
	impl dbutil.Implementation
}

// Open connects to the metadata database and applies pending migrations.
func Open(ctx context.Context, log *zap.Logger, connstr string) (*DB, error) {
	handle, impl, err := dbutil.Open(ctx, log, connstr)
	if err != nil {
		return nil, Error.Wrap(err)
	}

	db := &DB{log: log, db: handle, impl: impl}
	if err := db.Migration().Run(ctx, log, handle); err != nil {
		return nil, Error.Wrap(errs.Combine(err, handle.Close()))
	}
	return db, nil
}

// ConfigurePool bounds the connection pool. Zero values keep the driver
// defaults.
func (db *DB) ConfigurePool(maxConnections, maxIdle int) {
	if maxConnections > 0 {
		db.db.SetMaxOpenConns(maxConnections)
	}
	if maxIdle > 0 {
		db.db.SetMaxIdleConns(maxIdle)
	}
}

// Close releases the underlying database handle.
func (db *DB) Close() error {
	return Error.Wrap(db.db.Close())
}

// TestingRawDB exposes the raw handle for tests.
func (db *DB) TestingRawDB() *sql.DB { return db.db }

func (db *DB) rebind(query string) string {
	return db.impl.Rebind(query)
}

// withTx runs fn in a serializable transaction, retrying transient
// connection failures with bounded backoff before giving up with
// ErrUnavailable.
func (db *DB) withTx(ctx context.Context, fn func(context.Context, *sql.Tx) error) error {
	return db.withRetry(ctx, func(ctx context.Context) error {
		return txutil.WithTx(ctx, db.db, fn)
	})
}

func (db *DB) withRetry(ctx context.Context, fn func(context.Context) error) error {
	backoff := initialBackoff
	for attempt := 1; ; attempt++ {
		err := fn(ctx)
		if err == nil || !transient(err) {
			return err
		}
		if attempt >= maxAttempts {
			return ErrUnavailable.Wrap(err)
		}
		db.log.Warn("metadata database unreachable, retrying",
			zap.Int("attempt", attempt), zap.Duration("backoff", backoff), zap.Error(err))

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return ErrUnavailable.Wrap(errs.Combine(err, ctx.Err()))
		}
		backoff *= 2
	}
}

// transient reports whether the failure is a connection-level problem that
// a fresh attempt can resolve. Constraint violations and sql semantics
// errors are never transient.
func transient(err error) bool {
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
