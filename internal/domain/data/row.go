package data

// Row represents a single table row
// Key = column name, Value = typed cell value
type Row map[string]Value

// Copy creates a copy of the row to prevent mutation of shared state
func (r Row) Copy() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Get returns the value stored under column, if any.
func (r Row) Get(column string) (Value, bool) {
	v, ok := r[column]
	return v, ok
}
