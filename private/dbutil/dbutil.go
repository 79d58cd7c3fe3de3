// Package dbutil contains helpers for working with the metadata databases.
package dbutil

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
	"time"

	"github.com/zeebo/errs"
	"go.uber.org/zap"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the pgx driver
	_ "github.com/mattn/go-sqlite3"    // registers the sqlite3 driver
)

// Error is the default dbutil error class.
var Error = errs.Class("dbutil")

// Implementation type of supported databases.
type Implementation int

const (
	// Unknown is an unrecognized database type.
	Unknown Implementation = iota
	// Postgres is a PostgreSQL database.
	Postgres
	// SQLite is an embedded sqlite3 database.
	SQLite
)

// String returns the lowercase name of the implementation.
func (impl Implementation) String() string {
	switch impl {
	case Postgres:
		return "postgres"
	case SQLite:
		return "sqlite"
	default:
		return "unknown"
	}
}

// ImplementationForScheme returns the database implementation for a
// connection string scheme.
func ImplementationForScheme(scheme string) Implementation {
	switch scheme {
	case "postgres", "postgresql", "pgx":
		return Postgres
	case "sqlite", "sqlite3", "file":
		return SQLite
	default:
		return Unknown
	}
}

// ParseConnStr splits a connection string into its implementation and the
// driver-specific source. "sqlite://path" becomes a plain file path,
// postgres urls pass through unchanged.
func ParseConnStr(connstr string) (Implementation, string, error) {
	scheme, rest, found := strings.Cut(connstr, "://")
	if !found {
		return Unknown, "", Error.New("malformed connection string %q", connstr)
	}
	impl := ImplementationForScheme(scheme)
	switch impl {
	case Postgres:
		return Postgres, connstr, nil
	case SQLite:
		return SQLite, rest, nil
	default:
		return Unknown, "", Error.New("unsupported database scheme %q", scheme)
	}
}

// Open opens a database handle for the given connection string and pings it.
func Open(ctx context.Context, log *zap.Logger, connstr string) (*sql.DB, Implementation, error) {
	impl, source, err := ParseConnStr(connstr)
	if err != nil {
		return nil, Unknown, err
	}

	var driver string
	switch impl {
	case Postgres:
		driver = "pgx"
	case SQLite:
		driver = "sqlite3"
	}

	db, err := sql.Open(driver, source)
	if err != nil {
		return nil, impl, Error.Wrap(err)
	}
	if impl == SQLite {
		// sqlite handles a single writer, let database/sql serialize access
		db.SetMaxOpenConns(1)
	}
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		return nil, impl, Error.Wrap(errs.Combine(err, db.Close()))
	}

	log.Debug("database opened", zap.String("implementation", impl.String()))
	return db, impl, nil
}

// Rebind transforms a query with ? placeholders into the form the
// implementation expects. Postgres uses ordinal $N placeholders.
func (impl Implementation) Rebind(query string) string {
	if impl != Postgres {
		return query
	}

	type sqlParseState int
	const (
		sqlParseStart sqlParseState = iota
		sqlParseInStringLiteral
		sqlParseInQuotedIdentifier
		sqlParseInComment
	)

	out := make([]byte, 0, len(query)+10)

	state := sqlParseStart
	ordinal := 1
	for i := 0; i < len(query); i++ {
		ch := query[i]
		switch state {
		case sqlParseStart:
			switch ch {
			case '?':
				out = append(out, '$')
				out = append(out, []byte(strconv.Itoa(ordinal))...)
				ordinal++
				continue
			case '\'':
				state = sqlParseInStringLiteral
			case '"':
				state = sqlParseInQuotedIdentifier
			case '-':
				if i+1 < len(query) && query[i+1] == '-' {
					state = sqlParseInComment
				}
			}
		case sqlParseInStringLiteral:
			if ch == '\'' {
				state = sqlParseStart
			}
		case sqlParseInQuotedIdentifier:
			if ch == '"' {
				state = sqlParseStart
			}
		case sqlParseInComment:
			if ch == '\n' {
				state = sqlParseStart
			}
		}
		out = append(out, ch)
	}

	return string(out)
}
