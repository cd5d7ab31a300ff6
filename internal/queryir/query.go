package queryir

// Node is one select-statement tree node.
//
// This is a sealed interface - only types in this package implement it.
//
// Node types:
//   - TableNode: full scan of a named table
//   - WhereNode: wraps an inner node with a filter
//   - OrderNode: wraps an inner node with a sort key
//
// Wrapping never rewrites the inner node, so a built tree is shareable and
// rendering it is a pure function of its structure.
type Node interface {
	queryNode() // Marker method - seals interface to this package
}

// TableNode scans a whole table.
type TableNode struct {
	Table string
}

func (TableNode) queryNode() {}

// WhereNode filters the rows of an inner query. Backends render the inner
// query as a derived table.
type WhereNode struct {
	Query     Node
	Predicate Predicate
}

func (WhereNode) queryNode() {}

// OrderNode sorts the rows of an inner query. Backends render the inner
// query as a derived table.
type OrderNode struct {
	Query Node
	Order Order
}

func (OrderNode) queryNode() {}

// Query is a typed, immutable select statement over Table[C, R]. It pairs
// the untyped Node tree with the originating table's column record and row
// decoder, so that however deeply the tree is wrapped, Columns and DecodeRow
// always refer to the innermost table.
type Query[C, R any] struct {
	node    Node
	columns C
	decode  func(row Scanner) (R, error)
}

// From builds the base query: a full scan of the table.
func From[C, R any](t Table[C, R]) Query[C, R] {
	return Query[C, R]{
		node:    TableNode{Table: t.Name},
		columns: t.Columns,
		decode:  t.Decode,
	}
}

// Where wraps the query with a filter. The condition callback receives the
// column record of the innermost table, so predicates always refer to the
// original table's columns regardless of nesting depth.
func (q Query[C, R]) Where(condition func(C) Predicate) Query[C, R] {
	return Query[C, R]{
		node:    WhereNode{Query: q.node, Predicate: condition(q.columns)},
		columns: q.columns,
		decode:  q.decode,
	}
}

// OrderBy wraps the query with a sort key, symmetric to Where.
//
// Calling OrderBy twice nests two OrderNode wrappers, each rendered as its
// own derived table. Standard SQL does not guarantee that row order survives
// re-querying a derived table, so only the outermost key is the authoritative
// final order; inner keys are rendered but have no guaranteed effect.
func (q Query[C, R]) OrderBy(makeOrder func(C) Order) Query[C, R] {
	return Query[C, R]{
		node:    OrderNode{Query: q.node, Order: makeOrder(q.columns)},
		columns: q.columns,
		decode:  q.decode,
	}
}

// Columns returns the column record of the innermost table.
func (q Query[C, R]) Columns() C { return q.columns }

// Node returns the statement tree for rendering.
func (q Query[C, R]) Node() Node { return q.node }

// DecodeRow decodes one physical result row into R using the originating
// table's row-decode capability.
func (q Query[C, R]) DecodeRow(row Scanner) (R, error) {
	return q.decode(row)
}
