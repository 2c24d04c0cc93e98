package crud

import (
	"fmt"
	"log/slog"

	"github.com/leengari/tabledb/internal/domain/data"
	"github.com/leengari/tabledb/internal/domain/schema"
)

// Insert validates row against the table schema and appends it.
func Insert(table *schema.Table, row data.Row) error {
	if err := table.Schema.ValidateRow(row); err != nil {
		return fmt.Errorf("insert into %s: %w", table.Name, err)
	}

	table.Append(row)

	slog.Debug("row inserted",
		slog.String("table", table.Name),
		slog.Int("columns", len(row)),
	)
	return nil
}
