package schema

import (
	"fmt"
	"regexp"

	"github.com/leengari/tabledb/internal/domain/data"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// ValidIdentifier reports whether name is usable as a table or column name.
func ValidIdentifier(name string) bool {
	return identifierPattern.MatchString(name)
}

// Column describes one typed column of a table.
type Column struct {
	Name string
	Type data.DataType
}

// TableSchema is the ordered column list of a table.
// Order matters: INSERT binds values by position.
type TableSchema struct {
	TableName string
	Columns   []Column
}

// Column returns the named column, if present.
func (s *TableSchema) Column(name string) (Column, bool) {
	for _, c := range s.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// ColumnNames returns the column names in declared order.
func (s *TableSchema) ColumnNames() []string {
	names := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		names[i] = c.Name
	}
	return names
}

// ValidateRow checks that row holds exactly one correctly typed value per column.
func (s *TableSchema) ValidateRow(row data.Row) error {
	if len(row) != len(s.Columns) {
		return fmt.Errorf("row has %d values, schema has %d columns", len(row), len(s.Columns))
	}
	for _, col := range s.Columns {
		v, ok := row[col.Name]
		if !ok {
			return fmt.Errorf("column %s: missing value", col.Name)
		}
		if v.Type != col.Type {
			return fmt.Errorf("column %s: expected %s, got %s", col.Name, col.Type, v.Type)
		}
	}
	return nil
}
