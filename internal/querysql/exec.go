package querysql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hesselink/todo-go/internal/queryir"
)

// Querier runs select statements. *sql.DB, *sqlx.DB and *sql.Tx satisfy it.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Execer runs statements that return no rows.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Select compiles and runs a select statement, decoding each result row via
// the query's row-decode capability. Backend errors are returned as-is,
// wrapped only with call-site context; the core never classifies or retries
// them.
//
// The caller is assumed to have exclusive use of db for the duration of the
// call; no concurrency control happens here.
func Select[C, R any](ctx context.Context, db Querier, q queryir.Query[C, R]) ([]R, error) {
	stmt, err := CompileQuery(q)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", stmt, err)
	}
	defer rows.Close()

	var out []R
	for rows.Next() {
		r, err := q.DecodeRow(rows)
		if err != nil {
			return nil, fmt.Errorf("decode row: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return out, nil
}

// Exec compiles and runs an insert statement, binding the non-default
// parameters collected by CompileInsert. Returns the number of affected
// rows.
func Exec[C, R any](ctx context.Context, db Execer, ins queryir.Insert[C, R]) (int64, error) {
	stmt, params, err := CompileInsert(ins)
	if err != nil {
		return 0, err
	}

	res, err := db.ExecContext(ctx, stmt, params...)
	if err != nil {
		return 0, fmt.Errorf("exec %q: %w", stmt, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("affected rows: %w", err)
	}
	return affected, nil
}
