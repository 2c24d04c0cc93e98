package parser

import (
	"strings"
	"unicode"

	dberrors "github.com/leengari/tabledb/internal/domain/errors"
	"github.com/leengari/tabledb/internal/parser/ast"
)

// parseSelect parses:
//
//	SELECT * FROM name [WHERE cond]
//	SELECT col1, col2 FROM name [WHERE cond]
//
// The column list may be separated by commas or whitespace.
func parseSelect(rest string) (ast.Statement, error) {
	fieldsPart, fromPart, err := splitKeyword(rest, "FROM")
	if err != nil {
		return nil, invalid(VerbSelect, err)
	}

	fields := strings.FieldsFunc(fieldsPart, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) == 0 {
		return nil, dberrors.Invalid(VerbSelect, "no columns requested")
	}

	stmt := &ast.SelectStatement{}
	if fields[0] == "*" {
		stmt.SelectAll = true
	} else {
		stmt.Fields = fields
	}

	if len(keywordPositions(fromPart, "WHERE")) == 0 {
		stmt.TableName = fromPart
		return stmt, nil
	}

	// A WHERE with no condition after it is rejected rather than read as
	// "no filter"; omit the keyword to select every row.
	tableName, whereText, err := splitKeyword(fromPart, "WHERE")
	if err != nil {
		return nil, invalid(VerbSelect, err)
	}
	cond, err := parseWhere(whereText)
	if err != nil {
		return nil, invalid(VerbSelect, err)
	}
	stmt.TableName = tableName
	stmt.Where = cond
	stmt.WhereText = whereText

	return stmt, nil
}
