package ast

import (
	"bytes"
	"strings"

	"github.com/leengari/tabledb/internal/domain/data"
	"github.com/leengari/tabledb/internal/query/predicate"
)

// Node is the base interface for all AST nodes
type Node interface {
	TokenLiteral() string
	String() string
}

// Statement represents one parsed command
type Statement interface {
	Node
	statementNode()
}

// ColumnDefinition is one `<name> <TYPE>` clause of CREATE_TABLE.
type ColumnDefinition struct {
	Name string
	Type data.DataType
}

// CreateTableStatement: CREATE_TABLE name ( col TYPE, ... )
// Columns may be empty; the executor reports that after the existence check.
// Rejected holds the column clauses that were dropped while parsing.
type CreateTableStatement struct {
	TableName string
	Columns   []ColumnDefinition
	Rejected  []string
}

func (s *CreateTableStatement) statementNode()       {}
func (s *CreateTableStatement) TokenLiteral() string { return "CREATE_TABLE" }
func (s *CreateTableStatement) String() string {
	defs := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		defs[i] = c.Name + " " + c.Type.String()
	}
	return "CREATE_TABLE " + s.TableName + " ( " + strings.Join(defs, ", ") + " )"
}

// InsertStatement: INSERT INTO table VALUES ( v1, v2 )
// Values are raw literals; they are typed against the schema at execution.
type InsertStatement struct {
	TableName string
	Values    []string
}

func (s *InsertStatement) statementNode()       {}
func (s *InsertStatement) TokenLiteral() string { return "INSERT" }
func (s *InsertStatement) String() string {
	return "INSERT INTO " + s.TableName + " VALUES ( " + strings.Join(s.Values, ", ") + " )"
}

// SelectStatement: SELECT col1 col2 | * FROM table [WHERE ...]
type SelectStatement struct {
	SelectAll bool
	Fields    []string
	TableName string
	Where     *predicate.Condition // nil when absent
	WhereText string
}

func (s *SelectStatement) statementNode()       {}
func (s *SelectStatement) TokenLiteral() string { return "SELECT" }
func (s *SelectStatement) String() string {
	var out bytes.Buffer
	out.WriteString("SELECT ")
	if s.SelectAll {
		out.WriteString("*")
	} else {
		out.WriteString(strings.Join(s.Fields, ", "))
	}
	out.WriteString(" FROM ")
	out.WriteString(s.TableName)
	if s.Where != nil {
		out.WriteString(" WHERE ")
		out.WriteString(s.WhereText)
	}
	return out.String()
}

// Assignment is one `col=value` pair of an UPDATE.
type Assignment struct {
	Column string
	Value  string // raw literal
}

// UpdateStatement: UPDATE table SET col=val, ... WHERE ...
type UpdateStatement struct {
	TableName   string
	Assignments []Assignment
	Where       *predicate.Condition
	WhereText   string
}

func (s *UpdateStatement) statementNode()       {}
func (s *UpdateStatement) TokenLiteral() string { return "UPDATE" }
func (s *UpdateStatement) String() string {
	sets := make([]string, len(s.Assignments))
	for i, a := range s.Assignments {
		sets[i] = a.Column + "=" + a.Value
	}
	return "UPDATE " + s.TableName + " SET " + strings.Join(sets, ", ") + " WHERE " + s.WhereText
}

// DeleteStatement: DELETE FROM table WHERE ...
type DeleteStatement struct {
	TableName string
	Where     *predicate.Condition
	WhereText string
}

func (s *DeleteStatement) statementNode()       {}
func (s *DeleteStatement) TokenLiteral() string { return "DELETE" }
func (s *DeleteStatement) String() string {
	return "DELETE FROM " + s.TableName + " WHERE " + s.WhereText
}

// ShowTablesStatement: SHOW [TABLES]
type ShowTablesStatement struct{}

func (s *ShowTablesStatement) statementNode()       {}
func (s *ShowTablesStatement) TokenLiteral() string { return "SHOW" }
func (s *ShowTablesStatement) String() string       { return "SHOW TABLES" }

// StopStatement: STOP
type StopStatement struct{}

func (s *StopStatement) statementNode()       {}
func (s *StopStatement) TokenLiteral() string { return "STOP" }
func (s *StopStatement) String() string       { return "STOP" }

// PurgeStatement: PURGE_AND_STOP
type PurgeStatement struct{}

func (s *PurgeStatement) statementNode()       {}
func (s *PurgeStatement) TokenLiteral() string { return "PURGE_AND_STOP" }
func (s *PurgeStatement) String() string       { return "PURGE_AND_STOP" }
