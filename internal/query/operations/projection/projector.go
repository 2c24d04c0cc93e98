package projection

import (
	"strings"

	"github.com/leengari/tabledb/internal/domain/data"
)

// ProjectRow returns a new row containing only the given columns
func ProjectRow(row data.Row, columns []string) data.Row {
	projected := make(data.Row, len(columns))
	for _, col := range columns {
		if v, ok := row[col]; ok {
			projected[col] = v
		}
	}
	return projected
}

// FormatRow renders a row as `col: value, col: value` in column order.
func FormatRow(row data.Row, columns []string) string {
	var b strings.Builder
	for i, col := range columns {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(col)
		b.WriteString(": ")
		if v, ok := row[col]; ok {
			b.WriteString(v.String())
		} else {
			b.WriteString("null")
		}
	}
	return b.String()
}

// FormatRows renders rows one per line.
func FormatRows(rows []data.Row, columns []string) string {
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = FormatRow(row, columns)
	}
	return strings.Join(lines, "\n")
}
