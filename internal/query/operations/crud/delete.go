package crud

import (
	"log/slog"

	"github.com/leengari/tabledb/internal/domain/schema"
	"github.com/leengari/tabledb/internal/query/predicate"
)

// Delete removes rows matching the predicate.
// Returns number of rows deleted.
func Delete(table *schema.Table, pred predicate.PredicateFunc) int {
	deleted := table.Delete(pred)

	if deleted == 0 {
		slog.Debug("no rows matched delete", slog.String("table", table.Name))
	}
	return deleted
}
