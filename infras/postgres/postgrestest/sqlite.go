// Package postgrestest provides an in-process database with the application
// schema for store tests that should not need a Postgres server.
package postgrestest

import (
	"fmt"
	"path/filepath"
	"testing"

	"hoteladmin/infras/postgres"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const sqliteDriver = "sqlite"

// Schema mirrors migrations/postgres with SQLite column types.
const Schema = `
CREATE TABLE users (
    id          TEXT PRIMARY KEY,
    username    TEXT NOT NULL UNIQUE,
    password    TEXT NOT NULL,
    level       TEXT NOT NULL DEFAULT 'admin',
    last_login  DATETIME NULL,
    active      BOOLEAN NOT NULL DEFAULT 1,
    created_at  DATETIME NOT NULL,
    modified_at DATETIME NOT NULL,
    created_by  TEXT NOT NULL,
    modified_by TEXT NOT NULL
);

CREATE TABLE hotels (
    id          TEXT PRIMARY KEY,
    name        TEXT NOT NULL,
    location    TEXT NOT NULL,
    status      TEXT NOT NULL DEFAULT 'active',
    created_at  DATETIME NOT NULL,
    modified_at DATETIME NOT NULL,
    created_by  TEXT NOT NULL,
    modified_by TEXT NOT NULL
);

CREATE TABLE room_types (
    id          TEXT PRIMARY KEY,
    hotel_id    TEXT NOT NULL REFERENCES hotels (id),
    name        TEXT NOT NULL,
    base_rate   NUMERIC NOT NULL CHECK (base_rate >= 0),
    created_at  DATETIME NOT NULL,
    modified_at DATETIME NOT NULL,
    created_by  TEXT NOT NULL,
    modified_by TEXT NOT NULL
);

CREATE TABLE rate_adjustments (
    id                TEXT PRIMARY KEY,
    room_type_id      TEXT NOT NULL REFERENCES room_types (id),
    adjustment_amount NUMERIC NOT NULL,
    effective_date    DATE NOT NULL,
    reason            TEXT NOT NULL DEFAULT '',
    created_at        DATETIME NOT NULL,
    created_by        TEXT NOT NULL
);
`

// NewSQLite opens a fresh database file under t.TempDir with foreign keys
// enforced and the schema applied. It is closed when the test ends.
func NewSQLite(t testing.TB) *postgres.Connection {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", filepath.Join(t.TempDir(), "hoteladmin.db"))

	db, err := sqlx.Open(sqliteDriver, dsn)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if _, err := db.Exec(Schema); err != nil {
		t.Fatalf("apply schema: %v", err)
	}

	conn := postgres.NewFromDB(db)
	t.Cleanup(conn.Close)

	return conn
}
