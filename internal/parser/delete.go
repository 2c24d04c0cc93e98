package parser

import (
	"strings"

	dberrors "github.com/leengari/tabledb/internal/domain/errors"
	"github.com/leengari/tabledb/internal/parser/ast"
)

const deletePrefix = "FROM "

// parseDelete parses:
//
//	DELETE FROM name WHERE cond
func parseDelete(rest string) (ast.Statement, error) {
	if !strings.HasPrefix(rest, deletePrefix) {
		return nil, dberrors.Invalid(VerbDelete, "expected FROM")
	}

	tableName, whereText, err := splitKeyword(rest[len(deletePrefix):], "WHERE")
	if err != nil {
		return nil, invalid(VerbDelete, err)
	}

	cond, err := parseWhere(whereText)
	if err != nil {
		return nil, invalid(VerbDelete, err)
	}

	return &ast.DeleteStatement{
		TableName: tableName,
		Where:     cond,
		WhereText: whereText,
	}, nil
}
