package queryir

import "fmt"

// Expr is a field-like operand in a predicate or ordering.
//
// This is a sealed interface - only types in this package implement it.
// The operand set is deliberately closed:
//
//   - ColumnRef: a named column
//   - Literal: a constant value, pre-rendered to text
//
// Backends may type switch over Expr exhaustively.
type Expr interface {
	exprNode() // Marker method - seals interface to this package
}

// ColumnRef references a column by name in the enclosing query's table.
type ColumnRef struct {
	Name string
}

func (ColumnRef) exprNode() {}

// Literal is a constant operand, already rendered to its SQL text.
//
// The text is interpolated into the statement verbatim, not bound as a
// parameter. This is a known limitation of the design: literals are not
// escaped and must never be built from untrusted input.
type Literal struct {
	Text string
}

func (Literal) exprNode() {}

// FieldLike is anything usable as one side of a predicate or as a sort key:
// a typed column handle or a typed constant. The type parameter ties both
// operands of a comparison to the same value type at compile time; it has no
// runtime representation.
//
// fieldLike is a phantom method: it is never called, but its signature
// mentions T, which is what lets the compiler infer T at bare Asc/Desc call
// sites and what stops a Constant[string] from satisfying FieldLike[bool].
// Without it the interface would name T nowhere and the type parameter would
// bind nothing.
//
// Sealed - implemented only by Field[T] and Constant[T].
type FieldLike[T any] interface {
	expr() Expr
	fieldLike() T
}

// Field is a typed handle to one column. The zero value is not meaningful;
// construct fields with Col, normally once per table inside a column record
// (see Table).
type Field[T any] struct {
	name string
}

// Col returns a Field of type T for the named column.
func Col[T any](name string) Field[T] {
	return Field[T]{name: name}
}

// Name returns the column name.
func (f Field[T]) Name() string { return f.name }

func (f Field[T]) expr() Expr { return ColumnRef{Name: f.name} }

func (f Field[T]) fieldLike() (zero T) { return zero }

// Eq builds an equality predicate between this field and another operand of
// the same value type. Type agreement is enforced by the shared type
// parameter; there is no runtime check.
func (f Field[T]) Eq(other FieldLike[T]) Predicate {
	return Eq{Left: f.expr(), Right: other.expr()}
}

// Constant is a typed literal usable wherever a field is usable in an
// expression position. Its value is rendered with fmt.Sprint at statement
// build time and interpolated unescaped (see Literal).
type Constant[T any] struct {
	value T
}

// Lit wraps a value as a typed constant operand.
func Lit[T any](v T) Constant[T] {
	return Constant[T]{value: v}
}

// Value returns the wrapped value.
func (c Constant[T]) Value() T { return c.value }

func (c Constant[T]) expr() Expr { return Literal{Text: fmt.Sprint(c.value)} }

func (c Constant[T]) fieldLike() (zero T) { return zero }

// Predicate is a boolean condition over a query's columns.
//
// This is a sealed interface - only types in this package implement it.
// Equality is the only predicate kind; there is no AND/OR/NOT combinator
// algebra and no inequality.
type Predicate interface {
	predicateNode() // Marker method - seals interface to this package
}

// Eq compares two field-like operands for equality.
type Eq struct {
	Left  Expr
	Right Expr
}

func (Eq) predicateNode() {}

// Direction is a sort direction.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// Order is a single sort key: one field-like operand plus a direction.
// Multi-key ordering does not exist at this level; repeated OrderBy calls
// nest query wrappers instead (see Query.OrderBy).
type Order struct {
	By        Expr
	Direction Direction
}

// Asc orders ascending by the given operand. The operand is captured by
// value, so the Order owns its key independently of the caller's handle.
func Asc[T any](f FieldLike[T]) Order {
	return Order{By: f.expr(), Direction: Ascending}
}

// Desc orders descending by the given operand.
func Desc[T any](f FieldLike[T]) Order {
	return Order{By: f.expr(), Direction: Descending}
}
