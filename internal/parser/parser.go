package parser

import (
	"strings"
	"unicode"

	dberrors "github.com/leengari/tabledb/internal/domain/errors"
	"github.com/leengari/tabledb/internal/parser/ast"
)

// Verbs recognised as the first word of a command (case-insensitive).
const (
	VerbCreateTable  = "CREATE_TABLE"
	VerbInsert       = "INSERT"
	VerbSelect       = "SELECT"
	VerbUpdate       = "UPDATE"
	VerbDelete       = "DELETE"
	VerbShow         = "SHOW"
	VerbStop         = "STOP"
	VerbPurgeAndStop = "PURGE_AND_STOP"
	VerbPurge        = "PURGE"
)

// Parse turns one raw command line into a statement.
// Every failure wraps errors.ErrInvalidCommand.
func Parse(command string) (ast.Statement, error) {
	verb, rest := splitVerb(command)
	if verb == "" {
		return nil, dberrors.Invalid("", "empty command")
	}

	switch verb {
	case VerbCreateTable:
		return parseCreateTable(rest)
	case VerbInsert:
		return parseInsert(rest)
	case VerbSelect:
		return parseSelect(rest)
	case VerbUpdate:
		return parseUpdate(rest)
	case VerbDelete:
		return parseDelete(rest)
	case VerbShow:
		return parseShow(rest)
	case VerbStop:
		if rest != "" {
			return nil, dberrors.Invalid(VerbStop, "STOP takes no arguments")
		}
		return &ast.StopStatement{}, nil
	case VerbPurgeAndStop, VerbPurge:
		if rest != "" {
			return nil, dberrors.Invalid(VerbPurgeAndStop, "PURGE_AND_STOP takes no arguments")
		}
		return &ast.PurgeStatement{}, nil
	default:
		return nil, dberrors.Invalid(verb, "unknown command")
	}
}

// splitVerb returns the upper-cased first word and the trimmed remainder.
func splitVerb(command string) (string, string) {
	command = strings.TrimSpace(command)
	if command == "" {
		return "", ""
	}
	idx := strings.IndexFunc(command, unicode.IsSpace)
	if idx == -1 {
		return strings.ToUpper(command), ""
	}
	return strings.ToUpper(command[:idx]), strings.TrimSpace(command[idx:])
}

func parseShow(rest string) (ast.Statement, error) {
	if rest != "" && !strings.EqualFold(rest, "TABLES") {
		return nil, dberrors.Invalid(VerbShow, "expected SHOW TABLES")
	}
	return &ast.ShowTablesStatement{}, nil
}
