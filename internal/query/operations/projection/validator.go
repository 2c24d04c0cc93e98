package projection

import (
	"fmt"

	"github.com/leengari/tabledb/internal/domain/schema"
)

// Resolve checks that every projected column exists in the table schema and
// returns the output column order. SELECT * expands to the schema order.
func Resolve(table *schema.Table, proj *Projection) ([]string, error) {
	if proj == nil || proj.SelectAll {
		return table.Schema.ColumnNames(), nil
	}

	for _, col := range proj.Columns {
		if _, ok := table.Schema.Column(col); !ok {
			return nil, fmt.Errorf("column '%s' does not exist in table '%s'", col, table.Name)
		}
	}

	out := make([]string, len(proj.Columns))
	copy(out, proj.Columns)
	return out, nil
}
