package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel outcomes that the command boundary distinguishes.
// Everything else renders as INVALID_COMMAND.
var (
	ErrTableNotFound  = errors.New("table not found")
	ErrTableExists    = errors.New("table already exists")
	ErrInvalidCommand = errors.New("invalid command")
)

// CommandError carries the detail of a rejected statement
// (which operation, which table/column, offending value and why).
// The detail is for logs only; callers see the flat result string.
type CommandError struct {
	Op     string // statement verb, e.g. "INSERT"
	Table  string // table name (empty if not known yet)
	Column string // column name (empty if not column-specific)
	Value  string // offending raw text (may be empty)
	Reason string // human-readable explanation
	Err    error  // one of the sentinels above
}

func (e *CommandError) Error() string {
	var parts []string

	head := e.Op
	if e.Table != "" {
		head += " " + e.Table
		if e.Column != "" {
			head += "." + e.Column
		}
	}
	parts = append(parts, strings.TrimSpace(head))

	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	if e.Value != "" {
		parts = append(parts, fmt.Sprintf("value=%q", e.Value))
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	return strings.Join(parts, " - ")
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Invalid builds an ErrInvalidCommand error for op with the given reason.
func Invalid(op, reason string) *CommandError {
	return &CommandError{Op: op, Reason: reason, Err: ErrInvalidCommand}
}

func NewTableNotFound(op, table string) *CommandError {
	return &CommandError{Op: op, Table: table, Err: ErrTableNotFound}
}

func NewTableExists(table string) *CommandError {
	return &CommandError{Op: "CREATE_TABLE", Table: table, Err: ErrTableExists}
}

func NewTypeMismatch(op, table, column, value string, expected fmt.Stringer) *CommandError {
	return &CommandError{
		Op:     op,
		Table:  table,
		Column: column,
		Value:  value,
		Reason: fmt.Sprintf("expected type %s", expected),
		Err:    ErrInvalidCommand,
	}
}

func NewUnknownColumn(op, table, column string) *CommandError {
	return &CommandError{
		Op:     op,
		Table:  table,
		Column: column,
		Reason: "column does not exist",
		Err:    ErrInvalidCommand,
	}
}
