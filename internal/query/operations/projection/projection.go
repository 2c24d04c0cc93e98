package projection

// Projection represents which columns to select from a query
// If SelectAll is true, all schema columns are returned in declared order
// Otherwise, only Columns are returned, in the requested order
type Projection struct {
	Columns   []string
	SelectAll bool
}

// NewProjection creates a new projection for selecting all columns
func NewProjection() *Projection {
	return &Projection{SelectAll: true}
}

// NewProjectionWithColumns creates a projection for specific columns
func NewProjectionWithColumns(columns ...string) *Projection {
	return &Projection{Columns: columns}
}
