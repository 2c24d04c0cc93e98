package parser

import (
	"strings"

	dberrors "github.com/leengari/tabledb/internal/domain/errors"
	"github.com/leengari/tabledb/internal/parser/ast"
)

const insertPrefix = "INTO "

// parseInsert parses:
//
//	INSERT INTO name VALUES ( v1, v2, ... )
func parseInsert(rest string) (ast.Statement, error) {
	if !strings.HasPrefix(rest, insertPrefix) {
		return nil, dberrors.Invalid(VerbInsert, "expected INTO")
	}

	tableName, valuesPart, err := splitKeyword(rest[len(insertPrefix):], "VALUES")
	if err != nil {
		return nil, invalid(VerbInsert, err)
	}

	if !strings.HasPrefix(valuesPart, "(") || !strings.HasSuffix(valuesPart, ")") {
		return nil, &dberrors.CommandError{
			Op:     VerbInsert,
			Table:  tableName,
			Value:  valuesPart,
			Reason: "values must be wrapped in parentheses",
			Err:    dberrors.ErrInvalidCommand,
		}
	}

	return &ast.InsertStatement{
		TableName: tableName,
		Values:    splitList(valuesPart[1 : len(valuesPart)-1]),
	}, nil
}
