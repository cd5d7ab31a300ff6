// Package testutil provides database test doubles: an in-memory SQLite
// backend for exercising the select pipeline against a live engine, and a
// recording executor for asserting exactly which statements and parameters
// would reach the database.
package testutil

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

// OpenSQLite opens an in-memory SQLite database and applies the given
// schema. The database is closed automatically when the test ends.
//
// Select statements in this codebase are rendered without bound parameters
// and without dialect-specific syntax, so they run unchanged on SQLite.
// Insert statements use postgres-only syntax (the default keyword) and must
// be exercised against a RecordingExecer instead.
func OpenSQLite(t *testing.T, schema string) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("close sqlite: %v", err)
		}
	})

	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	return db
}

// ExecCall is one recorded ExecContext invocation.
type ExecCall struct {
	SQL  string
	Args []any
}

// RecordingExecer implements querysql.Execer, recording every statement
// instead of executing it.
type RecordingExecer struct {
	Calls    []ExecCall
	Affected int64 // reported by every result
	Err      error // returned by every call when set
}

func (r *RecordingExecer) ExecContext(_ context.Context, query string, args ...any) (sql.Result, error) {
	r.Calls = append(r.Calls, ExecCall{SQL: query, Args: args})
	if r.Err != nil {
		return nil, r.Err
	}
	return fixedResult{affected: r.Affected}, nil
}

type fixedResult struct {
	affected int64
}

func (r fixedResult) LastInsertId() (int64, error) { return 0, nil }

func (r fixedResult) RowsAffected() (int64, error) { return r.affected, nil }
