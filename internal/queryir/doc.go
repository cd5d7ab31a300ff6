// Package queryir models select and insert statements as typed, immutable
// expression trees.
//
// The package separates two layers:
//
//   - A typed surface: Table, Field, Constant, Query and Insert carry type
//     parameters so that predicates, orderings and decoded rows are checked
//     at compile time. The type parameters have no runtime representation.
//   - An untyped tree: Node, Predicate, Expr and Order are small sealed
//     unions describing the statement structure. Backends (see the querysql
//     package) render them with exhaustive type switches.
//
// Query and predicate operands form a closed set. The unions are sealed with
// unexported marker methods, so only types in this package implement them
// and a backend type switch cannot be surprised by an external variant.
//
// Every builder operation (Where, OrderBy, Values) returns a new value and
// never mutates its receiver. Built trees are plain immutable values: they
// can be rendered repeatedly and shared across goroutines without
// coordination. Execution is not handled here; trees are handed to a
// database backend together with the table's row-decode capability.
package queryir
