// Package txutil provides safe transaction-encapsulation functions which have
// retry semantics as necessary.
package txutil

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/spacemonkeygo/monkit/v3"
	"github.com/zeebo/errs"
)

var mon = monkit.Package()

// WithTx runs fn inside a serializable transaction on db. If fn returns an
// error the transaction is rolled back, otherwise it is committed. When the
// backend aborts the transaction with a serialization failure it is retried
// with a fresh transaction.
//
// If fn has any side effects outside of changes to the database, they must
// be idempotent! fn may be called more than one time.
func WithTx(ctx context.Context, db *sql.DB, fn func(context.Context, *sql.Tx) error) (err error) {
	defer mon.Task()(&ctx)(&err)

	txOpts := &sql.TxOptions{Isolation: sql.LevelSerializable}

	start := time.Now()
	for i := 0; ; i++ {
		err, rollbackErr := withTxOnce(ctx, db, txOpts, fn)
		if time.Since(start) < 5*time.Minute && i < 10 {
			if retryable(err) {
				mon.Event(fmt.Sprintf("transaction_retry_%d", i+1))
				continue
			}
		}
		mon.IntVal("transaction_retries").Observe(int64(i))
		return errs.Combine(err, rollbackErr)
	}
}

// withTxOnce creates a transaction, ensures that it is eventually released
// (commit or rollback) and passes it to the provided callback. It does not
// handle retries or anything, delegating that to callers.
func withTxOnce(ctx context.Context, db *sql.DB, txOpts *sql.TxOptions, fn func(context.Context, *sql.Tx) error) (err, rollbackErr error) {
	defer mon.Task()(&ctx)(&err)

	tx, err := db.BeginTx(ctx, txOpts)
	if err != nil {
		return errs.Wrap(err), nil
	}
	defer func() {
		if err == nil {
			err = tx.Commit()
		} else {
			rollbackErr = tx.Rollback()
		}
	}()

	return fn(ctx, tx), nil
}

// retryable reports whether the error is a transient conflict that a fresh
// transaction can resolve: postgres serialization failures and deadlocks,
// sqlite busy/locked errors.
func retryable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked
	}
	return false
}

// ConstraintViolation reports whether the error is a unique or primary key
// constraint violation on either backend.
func ConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint
	}
	return false
}
