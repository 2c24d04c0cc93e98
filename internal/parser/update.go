package parser

import (
	dberrors "github.com/leengari/tabledb/internal/domain/errors"
	"github.com/leengari/tabledb/internal/parser/ast"
)

// parseUpdate parses:
//
//	UPDATE name SET col1=value1, col2=value2 WHERE cond
//
// WHERE is required.
func parseUpdate(rest string) (ast.Statement, error) {
	tableName, afterSet, err := splitKeyword(rest, "SET")
	if err != nil {
		return nil, invalid(VerbUpdate, err)
	}

	assignsPart, whereText, err := splitKeyword(afterSet, "WHERE")
	if err != nil {
		return nil, invalid(VerbUpdate, err)
	}

	stmt := &ast.UpdateStatement{TableName: tableName}
	for _, def := range splitList(assignsPart) {
		col, val, ok := splitPair(def)
		if !ok {
			return nil, &dberrors.CommandError{
				Op:     VerbUpdate,
				Table:  tableName,
				Value:  def,
				Reason: "assignment must be col=value",
				Err:    dberrors.ErrInvalidCommand,
			}
		}
		stmt.Assignments = append(stmt.Assignments, ast.Assignment{Column: col, Value: val})
	}

	cond, err := parseWhere(whereText)
	if err != nil {
		return nil, invalid(VerbUpdate, err)
	}
	stmt.Where = cond
	stmt.WhereText = whereText

	return stmt, nil
}
