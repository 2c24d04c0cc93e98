package crud

import (
	"fmt"
	"log/slog"

	"github.com/leengari/tabledb/internal/domain/data"
	"github.com/leengari/tabledb/internal/domain/schema"
	"github.com/leengari/tabledb/internal/query/predicate"
)

// Update applies updates to every row matching pred.
// Every updated column must exist and carry a value of its declared type;
// nothing is written when validation fails.
// Returns number of rows updated.
func Update(table *schema.Table, pred predicate.PredicateFunc, updates data.Row) (int, error) {
	for colName, v := range updates {
		col, ok := table.Schema.Column(colName)
		if !ok {
			return 0, fmt.Errorf("update %s: unknown column %s", table.Name, colName)
		}
		if v.Type != col.Type {
			return 0, fmt.Errorf("update %s: column %s expects %s, got %s", table.Name, colName, col.Type, v.Type)
		}
	}

	updated := table.Update(pred, updates)

	if updated == 0 {
		slog.Debug("no rows matched update", slog.String("table", table.Name))
	}
	return updated, nil
}
