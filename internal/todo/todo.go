// Package todo is the todo-list domain built on top of the typed query
// layer: the table declaration, the row type with its decode capability,
// and the operations the CLI exposes.
package todo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/hesselink/todo-go/internal/queryir"
	"github.com/hesselink/todo-go/internal/querysql"
)

// Record is one row of the todo table, fields in table-column order.
type Record struct {
	ID            int
	Name          string
	CreatedTime   time.Time
	Completed     bool
	CompletedTime sql.NullTime
}

// Columns is the typed column record of the todo table. Field names here
// must match the column names in the schema; nothing re-validates that at
// runtime.
type Columns struct {
	ID            queryir.Field[int]
	Name          queryir.Field[string]
	CreatedTime   queryir.Field[time.Time]
	Completed     queryir.Field[bool]
	CompletedTime queryir.Field[time.Time]
}

// Table is the todo table declaration: built once, read-only thereafter.
var Table = queryir.Table[Columns, Record]{
	Name: "todo",
	Columns: Columns{
		ID:            queryir.Col[int]("id"),
		Name:          queryir.Col[string]("name"),
		CreatedTime:   queryir.Col[time.Time]("created_time"),
		Completed:     queryir.Col[bool]("completed"),
		CompletedTime: queryir.Col[time.Time]("completed_time"),
	},
	Decode: decodeRecord,
}

func decodeRecord(row queryir.Scanner) (Record, error) {
	var r Record
	err := row.Scan(&r.ID, &r.Name, &r.CreatedTime, &r.Completed, &r.CompletedTime)
	return r, err
}

// newTodo is the insertable row shape: an explicit name, every other column
// deferring to its declared default (serial id, created_time now(),
// completed false, completed_time null).
type newTodo struct {
	name string
}

func (n newTodo) SQLParams() []queryir.Param {
	return []queryir.Param{
		queryir.Default[int]().Param(),
		queryir.Bind(n.name),
		queryir.Default[time.Time]().Param(),
		queryir.Default[bool]().Param(),
		queryir.Default[time.Time]().Param(),
	}
}

// Add inserts a new, incomplete todo.
func Add(ctx context.Context, db querysql.Execer, name string) error {
	ins := queryir.InsertInto(Table).Values(newTodo{name: name})
	if _, err := querysql.Exec(ctx, db, ins); err != nil {
		return fmt.Errorf("add todo: %w", err)
	}
	return nil
}

// Pending returns the incomplete todos, oldest first.
func Pending(ctx context.Context, db querysql.Querier) ([]Record, error) {
	q := queryir.From(Table).
		Where(func(c Columns) queryir.Predicate { return c.Completed.Eq(queryir.Lit(false)) }).
		OrderBy(func(c Columns) queryir.Order { return queryir.Asc(c.CreatedTime) })
	return querysql.Select(ctx, db, q)
}

// All returns every todo, completed or not, newest first.
func All(ctx context.Context, db querysql.Querier) ([]Record, error) {
	q := queryir.From(Table).
		OrderBy(func(c Columns) queryir.Order { return queryir.Desc(c.CreatedTime) })
	return querysql.Select(ctx, db, q)
}

// Complete marks one todo as done, recording the completion time. Updates
// sit outside the typed query surface, so this is a plain statement.
// Reports whether a todo with the given id existed.
func Complete(ctx context.Context, db querysql.Execer, id int) (bool, error) {
	res, err := db.ExecContext(ctx,
		"update todo set completed = true, completed_time = $1 where id = $2",
		time.Now(), id)
	if err != nil {
		return false, fmt.Errorf("complete todo %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("affected rows: %w", err)
	}
	return affected > 0, nil
}
