package crud

import (
	"github.com/leengari/tabledb/internal/domain/data"
	"github.com/leengari/tabledb/internal/domain/schema"
	"github.com/leengari/tabledb/internal/query/operations/projection"
	"github.com/leengari/tabledb/internal/query/predicate"
)

// SelectWhere returns the rows matching pred, projected onto columns.
// The predicate sees the full row; projection applies to matches only.
// A nil pred selects every row.
func SelectWhere(table *schema.Table, pred predicate.PredicateFunc, columns []string) []data.Row {
	rows := table.Select(pred)
	for i, row := range rows {
		rows[i] = projection.ProjectRow(row, columns)
	}
	return rows
}
