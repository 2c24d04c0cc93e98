package executor

import (
	"fmt"

	"github.com/leengari/tabledb/internal/domain/data"
	dberrors "github.com/leengari/tabledb/internal/domain/errors"
	"github.com/leengari/tabledb/internal/domain/schema"
	"github.com/leengari/tabledb/internal/parser/ast"
	"github.com/leengari/tabledb/internal/query/operations/projection"
	"github.com/leengari/tabledb/internal/storage/manager"
)

// Result markers returned on the command channel.
const (
	MsgSuccess       = "SUCCESS"
	MsgNoRowsFound   = "NO_ROWS_FOUND"
	MsgNoRowsDeleted = "NO_ROWS_DELETED"
	MsgNoRowsUpdated = "NO_ROWS_UPDATED"
	MsgNoTables      = "NO_TABLES_AVAILABLE"
	MsgGoodbye       = "Goodbye!"
	MsgPurgedGoodbye = "PURGED, Goodbye!"
	msgDeletedFormat = "DELETED %d"
	msgUpdatedFormat = "UPDATED %d"
)

// Options tunes statement validation.
type Options struct {
	// StrictSchema rejects CREATE_TABLE statements with any invalid or
	// duplicate column clause instead of dropping those clauses.
	StrictSchema bool
}

// Result is the outcome of one executed statement.
type Result struct {
	Columns      []string
	Rows         []data.Row
	Message      string
	RowsAffected int

	// Terminal is set by STOP and PURGE_AND_STOP; the caller loop must end.
	Terminal bool

	// Modified is the table whose contents changed and must be flushed.
	Modified *schema.Table
}

// String renders the result the way it is written on the command channel.
func (r *Result) String() string {
	if r.Message != "" {
		return r.Message
	}
	return projection.FormatRows(r.Rows, r.Columns)
}

// Executor runs parsed statements against a table registry.
type Executor struct {
	registry *manager.Registry
	opts     Options
}

func New(registry *manager.Registry, opts Options) *Executor {
	return &Executor{registry: registry, opts: opts}
}

// Execute dispatches stmt to its executor. Persisting Result.Modified is left
// to the caller.
func (x *Executor) Execute(stmt ast.Statement) (*Result, error) {
	switch s := stmt.(type) {
	case *ast.CreateTableStatement:
		return x.executeCreateTable(s)
	case *ast.InsertStatement:
		return x.executeInsert(s)
	case *ast.SelectStatement:
		return x.executeSelect(s)
	case *ast.UpdateStatement:
		return x.executeUpdate(s)
	case *ast.DeleteStatement:
		return x.executeDelete(s)
	case *ast.ShowTablesStatement:
		return x.executeShowTables()
	case *ast.StopStatement:
		return x.executeStop()
	case *ast.PurgeStatement:
		return x.executePurge()
	default:
		return nil, dberrors.Invalid("", fmt.Sprintf("unsupported statement type: %T", stmt))
	}
}

// table looks up name for op, tagging a miss with the operation.
func (x *Executor) table(op, name string) (*schema.Table, error) {
	t, err := x.registry.Get(name)
	if err != nil {
		return nil, dberrors.NewTableNotFound(op, name)
	}
	return t, nil
}
