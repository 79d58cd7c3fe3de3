package dbutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConnStr(t *testing.T) {
	impl, source, err := ParseConnStr("sqlite:///tmp/meta.db")
	require.NoError(t, err)
	assert.Equal(t, SQLite, impl)
	assert.Equal(t, "/tmp/meta.db", source)

	impl, source, err = ParseConnStr("postgres://user@host/tracd?sslmode=disable")
	require.NoError(t, err)
	assert.Equal(t, Postgres, impl)
	assert.Equal(t, "postgres://user@host/tracd?sslmode=disable", source)

	_, _, err = ParseConnStr("mysql://host/db")
	assert.Error(t, err)
	_, _, err = ParseConnStr("not a url")
	assert.Error(t, err)
}

func TestRebind(t *testing.T) {
	assert.Equal(t,
		"SELECT a FROM t WHERE b = $1 AND c = $2",
		Postgres.Rebind("SELECT a FROM t WHERE b = ? AND c = ?"))

	// placeholders inside literals and quoted identifiers are untouched
	assert.Equal(t,
		`SELECT '?' AS "q?" FROM t WHERE a = $1`,
		Postgres.Rebind(`SELECT '?' AS "q?" FROM t WHERE a = ?`))

	assert.Equal(t,
		"SELECT a FROM t WHERE b = ?",
		SQLite.Rebind("SELECT a FROM t WHERE b = ?"))
}
