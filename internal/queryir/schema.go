package queryir

// Scanner is the subset of a physical result row needed to decode it.
// *sql.Rows satisfies it.
type Scanner interface {
	Scan(dest ...any) error
}

// Table describes one relation: its name, a record of typed column handles,
// and how to decode a physical result row into the row type R.
//
// C is an application-defined struct with one Field per column. Its field
// names must match real column names in the database; this is established by
// the caller at construction and never re-validated. A mismatch surfaces
// only at execution time as a backend error.
//
// Decode reads one result row positionally, in table-column order. It is
// implemented once per row type by the consumer, typically as a call to
// Scanner.Scan with the row struct's fields in declaration order.
//
// A Table is constructed once, at package init of the consumer, and is
// read-only thereafter.
type Table[C, R any] struct {
	Name    string
	Columns C
	Decode  func(row Scanner) (R, error)
}
