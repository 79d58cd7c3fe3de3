package metadb

import (
	"tracd.io/tracd/private/dbutil"
	"tracd.io/tracd/private/migrate"
)

// Migration returns the schema migration for the metadata store. Timestamps
// are stored as ISO text in UTC with microsecond precision, which orders
// lexicographically and keeps the as-of queries portable across backends.
func (db *DB) Migration() *migrate.Migration {
	blob := "BLOB"
	double := "REAL"
	if db.impl == dbutil.Postgres {
		blob = "BYTEA"
		double = "DOUBLE PRECISION"
	}

	return &migrate.Migration{
		Table: "metadata_versions",
		Impl:  db.impl,
		Steps: []*migrate.Step{
			{
				Description: "initial metadata schema",
				Version:     0,
				Action: migrate.SQL{
					`CREATE TABLE tenants (
						tenant_id INTEGER NOT NULL,
						tenant_code TEXT NOT NULL,
						description TEXT NOT NULL DEFAULT '',
						created_at TEXT NOT NULL,
						PRIMARY KEY ( tenant_id ),
						UNIQUE ( tenant_code )
					)`,
					`CREATE TABLE object_ids (
						tenant_id INTEGER NOT NULL,
						object_id TEXT NOT NULL,
						object_type INTEGER NOT NULL,
						created_at TEXT NOT NULL,
						PRIMARY KEY ( tenant_id, object_id ),
						FOREIGN KEY ( tenant_id ) REFERENCES tenants ( tenant_id )
					)`,
					`CREATE TABLE object_definitions (
						tenant_id INTEGER NOT NULL,
						object_id TEXT NOT NULL,
						object_version INTEGER NOT NULL,
						object_timestamp TEXT NOT NULL,
						definition ` + blob + ` NOT NULL,
						PRIMARY KEY ( tenant_id, object_id, object_version ),
						FOREIGN KEY ( tenant_id, object_id ) REFERENCES object_ids ( tenant_id, object_id )
					)`,
					`CREATE TABLE object_tags (
						tenant_id INTEGER NOT NULL,
						object_id TEXT NOT NULL,
						object_version INTEGER NOT NULL,
						tag_version INTEGER NOT NULL,
						tag_timestamp TEXT NOT NULL,
						tag ` + blob + ` NOT NULL,
						PRIMARY KEY ( tenant_id, object_id, object_version, tag_version ),
						FOREIGN KEY ( tenant_id, object_id, object_version )
							REFERENCES object_definitions ( tenant_id, object_id, object_version )
					)`,
					`CREATE TABLE tag_attrs (
						tenant_id INTEGER NOT NULL,
						object_id TEXT NOT NULL,
						object_version INTEGER NOT NULL,
						tag_version INTEGER NOT NULL,
						attr_name TEXT NOT NULL,
						attr_index INTEGER NOT NULL,
						attr_type INTEGER NOT NULL,
						value_boolean INTEGER,
						value_integer INTEGER,
						value_float ` + double + `,
						value_string TEXT,
						value_decimal TEXT,
						value_date TEXT,
						value_datetime TEXT,
						PRIMARY KEY ( tenant_id, object_id, object_version, tag_version, attr_name, attr_index ),
						FOREIGN KEY ( tenant_id, object_id, object_version, tag_version )
							REFERENCES object_tags ( tenant_id, object_id, object_version, tag_version )
					)`,
					`CREATE INDEX tag_attrs_search_idx
						ON tag_attrs ( tenant_id, attr_name, attr_type )`,
				},
			},
		},
	}
}
