// Package migrate applies versioned schema migrations to a sql database.
package migrate

import (
	"context"
	"database/sql"
	"regexp"
	"sort"
	"time"

	"github.com/zeebo/errs"
	"go.uber.org/zap"

	"tracd.io/tracd/private/dbutil"
	"tracd.io/tracd/private/dbutil/txutil"
)

// Error is the default migrate error class.
var Error = errs.Class("migrate")

// Migration describes a sequence of schema changes tracked in a version table.
type Migration struct {
	Table string
	Impl  dbutil.Implementation
	Steps []*Step
}

// Step describes a single step in a migration.
type Step struct {
	Description string
	// Versions start at 0 and increment by one per step.
	Version int
	Action  Action
}

// Action is something that needs to be done inside a migration transaction.
type Action interface {
	Run(ctx context.Context, log *zap.Logger, tx *sql.Tx) error
}

// SQL statements are a partial migration.
type SQL []string

// Run runs the SQL statements.
func (sql SQL) Run(ctx context.Context, log *zap.Logger, tx *sql.Tx) error {
	for _, query := range sql {
		if _, err := tx.ExecContext(ctx, query); err != nil {
			return errs.Wrap(err)
		}
	}
	return nil
}

// Func is an arbitrary operation as a partial migration.
type Func func(ctx context.Context, log *zap.Logger, tx *sql.Tx) error

// Run runs the migration function.
func (fn Func) Run(ctx context.Context, log *zap.Logger, tx *sql.Tx) error {
	return fn(ctx, log, tx)
}

// ValidTableName checks whether the version table name is valid.
func (migration *Migration) ValidTableName() error {
	matched, err := regexp.MatchString(`^[a-z_]+$`, migration.Table)
	if !matched || err != nil {
		return Error.New("invalid table name: %v", migration.Table)
	}
	return nil
}

// ValidateSteps checks that the version of each migration step increments in order.
func (migration *Migration) ValidateSteps() error {
	sorted := sort.SliceIsSorted(migration.Steps, func(i, j int) bool {
		return migration.Steps[i].Version <= migration.Steps[j].Version
	})
	if !sorted {
		return Error.New("steps have incorrect order")
	}
	return nil
}

// Run applies all steps beyond the current database version, each inside its
// own transaction together with the version bump.
func (migration *Migration) Run(ctx context.Context, log *zap.Logger, db *sql.DB) error {
	if err := migration.ValidTableName(); err != nil {
		return err
	}
	if err := migration.ValidateSteps(); err != nil {
		return err
	}

	if err := migration.ensureVersionTable(ctx, db); err != nil {
		return Error.New("creating version table failed: %w", err)
	}

	version, err := migration.CurrentVersion(ctx, db)
	if err != nil {
		return Error.Wrap(err)
	}

	for _, step := range migration.Steps {
		if step.Version <= version {
			continue
		}
		stepLog := log.With(zap.Int("version", step.Version))
		stepLog.Info("running migration step", zap.String("description", step.Description))

		err := txutil.WithTx(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
			if err := step.Action.Run(ctx, stepLog, tx); err != nil {
				return err
			}
			return migration.addVersion(ctx, tx, step.Version)
		})
		if err != nil {
			return Error.New("step %d failed: %w", step.Version, err)
		}
	}

	if len(migration.Steps) > 0 {
		log.Debug("database version is up to date",
			zap.Int("version", migration.Steps[len(migration.Steps)-1].Version))
	}
	return nil
}

// CurrentVersion returns the latest applied version, or -1 for a fresh database.
func (migration *Migration) CurrentVersion(ctx context.Context, db *sql.DB) (int, error) {
	var version sql.NullInt64
	err := db.QueryRowContext(ctx,
		`SELECT MAX(version) FROM `+migration.Table).Scan(&version)
	if err != nil {
		return -1, Error.Wrap(err)
	}
	if !version.Valid {
		return -1, nil
	}
	return int(version.Int64), nil
}

func (migration *Migration) ensureVersionTable(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS `+migration.Table+` (
		version INTEGER NOT NULL PRIMARY KEY,
		commited_at TEXT NOT NULL
	)`)
	return errs.Wrap(err)
}

func (migration *Migration) addVersion(ctx context.Context, tx *sql.Tx, version int) error {
	_, err := tx.ExecContext(ctx,
		migration.Impl.Rebind(`INSERT INTO `+migration.Table+` (version, commited_at) VALUES (?, ?)`),
		version, time.Now().UTC().Format(time.RFC3339Nano))
	return errs.Wrap(err)
}
