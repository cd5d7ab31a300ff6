package querysql

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hesselink/todo-go/internal/queryir"
	"github.com/hesselink/todo-go/internal/testutil"
)

func TestExec_BindsNonDefaultParamsInOrder(t *testing.T) {
	db := &testutil.RecordingExecer{Affected: 2}

	ins := queryir.InsertInto(todoTable).
		Values(paramRow{queryir.Bind(1), queryir.Default[int]().Param(), queryir.Bind(3), queryir.Bind(false)}).
		Values(paramRow{queryir.Default[int]().Param(), queryir.Bind(5), queryir.Bind(6), queryir.Bind(true)})

	affected, err := Exec(context.Background(), db, ins)
	require.NoError(t, err)

	assert.Equal(t, int64(2), affected)
	require.Len(t, db.Calls, 1)
	assert.Equal(t, "insert into todo values ($1, default, $2, $3), (default, $4, $5, $6)", db.Calls[0].SQL)
	assert.Equal(t, []any{1, 3, false, 5, 6, true}, db.Calls[0].Args)
}

func TestExec_PropagatesBackendError(t *testing.T) {
	backendErr := errors.New("connection refused")
	db := &testutil.RecordingExecer{Err: backendErr}

	ins := queryir.InsertInto(todoTable).Values(paramRow{queryir.Bind(1)})

	_, err := Exec(context.Background(), db, ins)
	require.Error(t, err)
	assert.ErrorIs(t, err, backendErr)
}

type kvColumns struct {
	K queryir.Field[string]
	V queryir.Field[int]
}

type kvRow struct {
	K string
	V int
}

var kvTable = queryir.Table[kvColumns, kvRow]{
	Name: "kv",
	Columns: kvColumns{
		K: queryir.Col[string]("k"),
		V: queryir.Col[int]("v"),
	},
	Decode: func(row queryir.Scanner) (kvRow, error) {
		var r kvRow
		err := row.Scan(&r.K, &r.V)
		return r, err
	},
}

func TestSelect_AgainstLiveDatabase(t *testing.T) {
	db := testutil.OpenSQLite(t, "create table kv (k text not null, v integer not null)")
	seed := []kvRow{
		{K: "b", V: 1},
		{K: "a", V: 7},
		{K: "c", V: 7},
	}
	for _, r := range seed {
		_, err := db.Exec("insert into kv (k, v) values (?, ?)", r.K, r.V)
		require.NoError(t, err)
	}

	q := queryir.From(kvTable).
		Where(func(c kvColumns) queryir.Predicate { return c.V.Eq(queryir.Lit(7)) }).
		OrderBy(func(c kvColumns) queryir.Order { return queryir.Asc(c.K) })

	rows, err := Select(context.Background(), db, q)
	require.NoError(t, err)

	assert.Equal(t, []kvRow{{K: "a", V: 7}, {K: "c", V: 7}}, rows)
}

func TestSelect_EmptyResult(t *testing.T) {
	db := testutil.OpenSQLite(t, "create table kv (k text not null, v integer not null)")

	rows, err := Select(context.Background(), db, queryir.From(kvTable))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSelect_BadStatementPropagates(t *testing.T) {
	db := testutil.OpenSQLite(t, "create table kv (k text not null, v integer not null)")

	missing := queryir.Table[kvColumns, kvRow]{
		Name:    "missing",
		Columns: kvTable.Columns,
		Decode:  kvTable.Decode,
	}

	_, err := Select(context.Background(), db, queryir.From(missing))
	assert.Error(t, err)
}
