package todo

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hesselink/todo-go/internal/testutil"
)

// SQLite rendition of the todo schema, for exercising the select pipeline
// against a live engine. Inserts in tests go through plain SQL: the typed
// insert renders the postgres-only default keyword and is asserted against
// a recording executor instead.
const sqliteSchema = `
create table todo (
    id integer primary key autoincrement,
    name text not null,
    created_time timestamp not null,
    completed boolean not null default false,
    completed_time timestamp null
)`

func TestTable_Declaration(t *testing.T) {
	assert.Equal(t, "todo", Table.Name)

	// Column names and order must match the schema; the core never
	// re-validates this, it only carries what it is given.
	c := Table.Columns
	assert.Equal(t, "id", c.ID.Name())
	assert.Equal(t, "name", c.Name.Name())
	assert.Equal(t, "created_time", c.CreatedTime.Name())
	assert.Equal(t, "completed", c.Completed.Name())
	assert.Equal(t, "completed_time", c.CompletedTime.Name())
}

func TestAdd_DefaultsEverythingButName(t *testing.T) {
	db := &testutil.RecordingExecer{Affected: 1}

	err := Add(context.Background(), db, "buy milk")
	require.NoError(t, err)

	require.Len(t, db.Calls, 1)
	assert.Equal(t, "insert into todo values (default, $1, default, default, default)", db.Calls[0].SQL)
	assert.Equal(t, []any{"buy milk"}, db.Calls[0].Args)
}

func TestComplete(t *testing.T) {
	db := &testutil.RecordingExecer{Affected: 1}

	found, err := Complete(context.Background(), db, 3)
	require.NoError(t, err)
	assert.True(t, found)

	require.Len(t, db.Calls, 1)
	assert.Equal(t,
		"update todo set completed = true, completed_time = $1 where id = $2",
		db.Calls[0].SQL)
	require.Len(t, db.Calls[0].Args, 2)
	assert.IsType(t, time.Time{}, db.Calls[0].Args[0])
	assert.Equal(t, 3, db.Calls[0].Args[1])
}

func TestComplete_UnknownID(t *testing.T) {
	db := &testutil.RecordingExecer{Affected: 0}

	found, err := Complete(context.Background(), db, 99)
	require.NoError(t, err)
	assert.False(t, found)
}

func seedTodo(t *testing.T, db *sql.DB, name string, created time.Time, completed bool) {
	t.Helper()
	var completedTime any
	if completed {
		completedTime = created.Add(time.Hour)
	}
	_, err := db.Exec(
		"insert into todo (name, created_time, completed, completed_time) values (?, ?, ?, ?)",
		name, created, completed, completedTime)
	require.NoError(t, err)
}

func TestPending_FiltersAndOrders(t *testing.T) {
	db := testutil.OpenSQLite(t, sqliteSchema)
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	seedTodo(t, db, "water plants", base.Add(2*time.Minute), false)
	seedTodo(t, db, "buy milk", base, false)
	seedTodo(t, db, "file taxes", base.Add(time.Minute), true)

	records, err := Pending(context.Background(), db)
	require.NoError(t, err)

	// Only incomplete rows, creation time ascending.
	require.Len(t, records, 2)
	assert.Equal(t, "buy milk", records[0].Name)
	assert.Equal(t, "water plants", records[1].Name)
	for _, r := range records {
		assert.False(t, r.Completed)
		assert.False(t, r.CompletedTime.Valid)
	}
}

func TestAll_IncludesCompletedNewestFirst(t *testing.T) {
	db := testutil.OpenSQLite(t, sqliteSchema)
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	seedTodo(t, db, "buy milk", base, false)
	seedTodo(t, db, "file taxes", base.Add(time.Minute), true)

	records, err := All(context.Background(), db)
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, "file taxes", records[0].Name)
	assert.True(t, records[0].Completed)
	assert.True(t, records[0].CompletedTime.Valid)
	assert.Equal(t, "buy milk", records[1].Name)
}

func TestAddThenList(t *testing.T) {
	// End to end over both halves of the pipeline: the insert side against
	// the recording executor (postgres syntax), the select side against a
	// live database seeded with the equivalent row.
	exec := &testutil.RecordingExecer{Affected: 1}
	require.NoError(t, Add(context.Background(), exec, "buy milk"))
	require.Equal(t, []any{"buy milk"}, exec.Calls[0].Args)

	db := testutil.OpenSQLite(t, sqliteSchema)
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	seedTodo(t, db, "buy milk", created, false)
	seedTodo(t, db, "old chore", created.Add(-time.Hour), true)

	records, err := Pending(context.Background(), db)
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, "buy milk", records[0].Name)
	assert.False(t, records[0].Completed)
	assert.True(t, records[0].CreatedTime.Equal(created))
}
