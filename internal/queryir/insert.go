package queryir

// Param is one insert slot: either a concrete value to bind as a statement
// parameter, or the marker "use the column's declared default".
//
// Params are immutable. Only WithDefault can produce a defaulted Param;
// plain values wrapped with Bind are never treated as defaults.
type Param struct {
	value      any
	useDefault bool
}

// Bind wraps a concrete value as an insert parameter.
func Bind(v any) Param {
	return Param{value: v}
}

// IsDefault reports whether this slot defers to the column default.
func (p Param) IsDefault() bool { return p.useDefault }

// BindValue returns the value to bind for this slot.
//
// Defaulted params are rendered as the literal keyword default and must be
// filtered out before binding; asking a defaulted param for a bind value
// means that filtering has a defect, so this panics rather than reporting a
// runtime error.
func (p Param) BindValue() any {
	if p.useDefault {
		panic("queryir: default param has no bind value")
	}
	return p.value
}

// WithDefault is a two-state insert value: a concrete value of type T, or
// the column default. It is the only parameter type that resolves to
// "default".
type WithDefault[T any] struct {
	value     T
	isDefault bool
}

// Value wraps a concrete value.
func Value[T any](v T) WithDefault[T] {
	return WithDefault[T]{value: v}
}

// Default defers to the column's declared default.
func Default[T any]() WithDefault[T] {
	return WithDefault[T]{isDefault: true}
}

// Param converts to an insert slot.
func (w WithDefault[T]) Param() Param {
	if w.isDefault {
		return Param{useDefault: true}
	}
	return Param{value: w.value}
}

// ToParams is the capability an insertable row type provides: convert itself
// into one Param per column, in table-column order.
type ToParams interface {
	SQLParams() []Param
}

// Insert is a pending multi-row insert into Table[C, R]. Rows accumulate via
// Values; like Query, every call returns a new value and never mutates
// previously added rows.
type Insert[C, R any] struct {
	table string
	rows  [][]Param
}

// InsertInto begins an insert with zero rows.
func InsertInto[C, R any](t Table[C, R]) Insert[C, R] {
	return Insert[C, R]{table: t.Name}
}

// Values appends one row. The row is converted to Params via its ToParams
// capability; the outer row list is copied so the extended Insert shares no
// backing storage with its predecessor.
func (ins Insert[C, R]) Values(row ToParams) Insert[C, R] {
	rows := make([][]Param, len(ins.rows), len(ins.rows)+1)
	copy(rows, ins.rows)
	return Insert[C, R]{table: ins.table, rows: append(rows, row.SQLParams())}
}

// Table returns the target table name.
func (ins Insert[C, R]) Table() string { return ins.table }

// Rows returns the accumulated parameter rows, in insertion order. The
// returned slices are read-only to callers.
func (ins Insert[C, R]) Rows() [][]Param { return ins.rows }
