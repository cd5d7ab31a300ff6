// Package querysql renders queryir trees to SQL text and executes them
// against a database handle.
//
// Rendering is a pure function of the tree: compiling the same value twice
// yields byte-identical SQL and, for inserts, identical parameter slices.
// Values appearing in select statements are literals interpolated by the
// tree itself (see queryir.Literal); selects therefore never carry bound
// parameters. Insert values are bound as positional $n parameters.
package querysql

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hesselink/todo-go/internal/queryir"
)

// CompileQuery renders a select statement.
//
// Each wrapper level nests its inner query as a derived table:
//
//	select * from todo
//	select * from (select * from todo) t where completed = false
//	select * from (select * from (...) t where ...) t order by created_time asc
//
// Every derived table is aliased t. Nested scopes each introduce their own
// t and SQL name resolution binds references to the nearest one, so the
// fixed alias is preserved as-is rather than numbered per depth.
func CompileQuery[C, R any](q queryir.Query[C, R]) (string, error) {
	return compileNode(q.Node())
}

func compileNode(n queryir.Node) (string, error) {
	switch node := n.(type) {
	case queryir.TableNode:
		return "select * from " + node.Table, nil
	case queryir.WhereNode:
		inner, err := compileNode(node.Query)
		if err != nil {
			return "", err
		}
		pred, err := compilePredicate(node.Predicate)
		if err != nil {
			return "", err
		}
		return "select * from (" + inner + ") t where " + pred, nil
	case queryir.OrderNode:
		inner, err := compileNode(node.Query)
		if err != nil {
			return "", err
		}
		return "select * from (" + inner + ") t order by " + compileOrder(node.Order), nil
	default:
		return "", fmt.Errorf("unsupported query node type: %T", n)
	}
}

func compilePredicate(p queryir.Predicate) (string, error) {
	switch pred := p.(type) {
	case queryir.Eq:
		return compileExpr(pred.Left) + " = " + compileExpr(pred.Right), nil
	default:
		return "", fmt.Errorf("unsupported predicate type: %T", p)
	}
}

func compileExpr(e queryir.Expr) string {
	switch expr := e.(type) {
	case queryir.ColumnRef:
		return expr.Name
	case queryir.Literal:
		return expr.Text
	default:
		// Expr is sealed; nothing else can reach here.
		panic(fmt.Sprintf("unsupported expression type: %T", e))
	}
}

func compileOrder(o queryir.Order) string {
	dir := "asc"
	if o.Direction == queryir.Descending {
		dir = "desc"
	}
	return compileExpr(o.By) + " " + dir
}

// CompileInsert renders an insert statement and collects its bind
// parameters.
//
// Rows render as comma-separated parenthesized lists. Each slot is either
// the literal keyword default or a positional $n placeholder. One counter
// numbers the placeholders and the same traversal appends the corresponding
// bind values, so placeholder numbering and parameter order cannot diverge.
func CompileInsert[C, R any](ins queryir.Insert[C, R]) (string, []any, error) {
	var b strings.Builder
	b.WriteString("insert into ")
	b.WriteString(ins.Table())
	b.WriteString(" values ")

	var params []any
	n := 0
	for i, row := range ins.Rows() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('(')
		for j, p := range row {
			if j > 0 {
				b.WriteString(", ")
			}
			if p.IsDefault() {
				b.WriteString("default")
				continue
			}
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			params = append(params, p.BindValue())
		}
		b.WriteByte(')')
	}
	return b.String(), params, nil
}
