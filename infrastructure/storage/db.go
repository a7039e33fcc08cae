// Package storage provides the persistence adapters behind the
// repository ports: an embedded sqlite / postgres SQL store and an
// in-memory store for tests and dry runs.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	_ "modernc.org/sqlite"             // driver: sqlite
)

// Driver selects the SQL backend.
type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// Open opens the database and ensures the schema exists. An empty DSN
// falls back to a local file (sqlite) or a local server (postgres).
func Open(ctx context.Context, driver Driver, dsn string) (*sql.DB, error) {
	var drvName string
	switch driver {
	case DriverSQLite:
		drvName = "sqlite"
		if dsn == "" {
			dsn = "file:researchday.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)"
		}
	case DriverPostgres:
		drvName = "pgx"
		if dsn == "" {
			dsn = "postgres://localhost:5432/researchday?sslmode=disable"
		}
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	db, err := sql.Open(drvName, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	if err := ensureSchema(ctx, db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}

// rebind rewrites ? placeholders to $N for postgres. Queries are
// written with ? throughout; sqlite takes them as-is.
func rebind(driver Driver, query string) string {
	if driver != DriverPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Portable column types only: TEXT and INTEGER, timestamps as unix
// seconds, booleans as 0/1.
const schema = `
CREATE TABLE IF NOT EXISTS presenters (
  id TEXT PRIMARY KEY,
  position INTEGER NOT NULL,
  first_name TEXT NOT NULL DEFAULT '',
  last_name TEXT NOT NULL DEFAULT '',
  email TEXT NOT NULL DEFAULT '',
  classification TEXT NOT NULL DEFAULT '',
  research_stage TEXT NOT NULL DEFAULT '',
  research_type TEXT NOT NULL DEFAULT '',
  department TEXT NOT NULL DEFAULT '',
  presentation_type TEXT NOT NULL DEFAULT '',
  presentation_time TEXT NOT NULL DEFAULT '',
  title TEXT NOT NULL DEFAULT '',
  judge1 TEXT NOT NULL DEFAULT '',
  judge2 TEXT NOT NULL DEFAULT '',
  judge3 TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS scores (
  presenter_id TEXT NOT NULL,
  judge_id TEXT NOT NULL,
  id TEXT NOT NULL,
  judge_name TEXT NOT NULL,
  submitted_at INTEGER NOT NULL,
  content_why INTEGER NOT NULL DEFAULT 0,
  content_what_how INTEGER NOT NULL DEFAULT 0,
  content_next_steps INTEGER NOT NULL DEFAULT 0,
  presentation_flow INTEGER NOT NULL DEFAULT 0,
  preparedness INTEGER NOT NULL DEFAULT 0,
  verbal_comm INTEGER NOT NULL DEFAULT 0,
  visual_aids INTEGER NOT NULL DEFAULT 0,
  weighted_total INTEGER NOT NULL DEFAULT 0,
  is_no_show INTEGER NOT NULL DEFAULT 0,
  PRIMARY KEY (presenter_id, judge_id)
);

CREATE TABLE IF NOT EXISTS feedback (
  id TEXT PRIMARY KEY,
  presenter_id TEXT NOT NULL,
  presenter_name TEXT NOT NULL DEFAULT '',
  submitter_type TEXT NOT NULL DEFAULT '',
  submitter_name TEXT NOT NULL DEFAULT '',
  strengths TEXT NOT NULL DEFAULT '',
  areas_for_improvement TEXT NOT NULL DEFAULT '',
  submitted_at INTEGER NOT NULL
);
`
