package parser

import (
	"strings"

	"github.com/leengari/tabledb/internal/domain/data"
	dberrors "github.com/leengari/tabledb/internal/domain/errors"
	"github.com/leengari/tabledb/internal/domain/schema"
	"github.com/leengari/tabledb/internal/parser/ast"
)

// parseCreateTable parses:
//
//	CREATE_TABLE name ( col TYPE, col TYPE, ... )
//
// Column clauses that are not exactly `<name> <TYPE>` with a valid name and a
// known type are dropped, as are repeated column names (first one wins).
// Dropped clauses are kept in Rejected so strict mode can refuse them.
func parseCreateTable(rest string) (ast.Statement, error) {
	parts := strings.Split(rest, "(")
	if len(parts) != 2 || parts[1] == "" {
		return nil, dberrors.Invalid(VerbCreateTable, "expected exactly one column list")
	}

	tableName := strings.TrimSpace(parts[0])
	if !schema.ValidIdentifier(tableName) {
		return nil, &dberrors.CommandError{
			Op:     VerbCreateTable,
			Value:  tableName,
			Reason: "table name must match [A-Za-z0-9]+",
			Err:    dberrors.ErrInvalidCommand,
		}
	}

	stmt := &ast.CreateTableStatement{TableName: tableName}
	seen := make(map[string]bool)

	for _, clause := range strings.Split(strings.ReplaceAll(parts[1], ")", ""), ",") {
		def, ok := parseColumnDefinition(clause)
		if !ok || seen[def.Name] {
			stmt.Rejected = append(stmt.Rejected, strings.TrimSpace(clause))
			continue
		}
		seen[def.Name] = true
		stmt.Columns = append(stmt.Columns, def)
	}

	return stmt, nil
}

func parseColumnDefinition(clause string) (ast.ColumnDefinition, bool) {
	fields := strings.Fields(clause)
	if len(fields) != 2 || !schema.ValidIdentifier(fields[0]) {
		return ast.ColumnDefinition{}, false
	}
	dt, err := data.ParseDataType(fields[1])
	if err != nil {
		return ast.ColumnDefinition{}, false
	}
	return ast.ColumnDefinition{Name: fields[0], Type: dt}, true
}
