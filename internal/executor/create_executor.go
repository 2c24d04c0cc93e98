package executor

import (
	"log/slog"
	"strings"

	dberrors "github.com/leengari/tabledb/internal/domain/errors"
	"github.com/leengari/tabledb/internal/domain/schema"
	"github.com/leengari/tabledb/internal/parser/ast"
)

const opCreateTable = "CREATE_TABLE"

// executeCreateTable registers a new table. An existing name is reported
// before any schema problem, so re-creating a table always yields
// TABLE_EXISTS whatever columns are given.
func (x *Executor) executeCreateTable(stmt *ast.CreateTableStatement) (*Result, error) {
	if _, err := x.registry.Get(stmt.TableName); err == nil {
		return nil, dberrors.NewTableExists(stmt.TableName)
	}

	if x.opts.StrictSchema && len(stmt.Rejected) > 0 {
		return nil, &dberrors.CommandError{
			Op:     opCreateTable,
			Table:  stmt.TableName,
			Value:  strings.Join(stmt.Rejected, ", "),
			Reason: "invalid or duplicate column definitions",
			Err:    dberrors.ErrInvalidCommand,
		}
	}

	if len(stmt.Columns) == 0 {
		return nil, &dberrors.CommandError{
			Op:     opCreateTable,
			Table:  stmt.TableName,
			Reason: "no valid column definitions",
			Err:    dberrors.ErrInvalidCommand,
		}
	}

	if len(stmt.Rejected) > 0 {
		slog.Warn("dropped column definitions",
			slog.String("table", stmt.TableName),
			slog.Any("clauses", stmt.Rejected),
		)
	}

	columns := make([]schema.Column, len(stmt.Columns))
	for i, def := range stmt.Columns {
		columns[i] = schema.Column{Name: def.Name, Type: def.Type}
	}

	table, err := x.registry.Create(stmt.TableName, columns)
	if err != nil {
		return nil, err
	}

	return &Result{Message: MsgSuccess, Modified: table}, nil
}
