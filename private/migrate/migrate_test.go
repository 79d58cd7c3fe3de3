package migrate_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"tracd.io/tracd/private/dbutil"
	"tracd.io/tracd/private/migrate"
)

func TestRunMigration(t *testing.T) {
	ctx := context.Background()
	log := zaptest.NewLogger(t)

	db, impl, err := dbutil.Open(ctx, log, "sqlite://file::memory:?cache=shared")
	require.NoError(t, err)
	defer func() { require.NoError(t, db.Close()) }()

	migration := &migrate.Migration{
		Table: "versions",
		Impl:  impl,
		Steps: []*migrate.Step{
			{
				Description: "initial tables",
				Version:     0,
				Action: migrate.SQL{
					`CREATE TABLE widgets ( id INTEGER PRIMARY KEY, name TEXT NOT NULL )`,
				},
			},
			{
				Description: "seed data",
				Version:     1,
				Action: migrate.Func(func(ctx context.Context, _ *zap.Logger, tx *sql.Tx) error {
					_, err := tx.ExecContext(ctx, `INSERT INTO widgets (id, name) VALUES (1, 'one')`)
					return err
				}),
			},
		},
	}

	require.NoError(t, migration.Run(ctx, log, db))

	version, err := migration.CurrentVersion(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, 1, version)

	// running again is a no-op
	require.NoError(t, migration.Run(ctx, log, db))

	var name string
	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT name FROM widgets WHERE id = 1`).Scan(&name))
	assert.Equal(t, "one", name)
}

func TestValidateSteps(t *testing.T) {
	migration := &migrate.Migration{
		Table: "versions",
		Steps: []*migrate.Step{
			{Version: 1, Action: migrate.SQL{}},
			{Version: 0, Action: migrate.SQL{}},
		},
	}
	assert.Error(t, migration.ValidateSteps())

	migration = &migrate.Migration{Table: "bad table name"}
	assert.Error(t, migration.ValidTableName())
}
