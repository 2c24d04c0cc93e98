package executor

import (
	dberrors "github.com/leengari/tabledb/internal/domain/errors"
	"github.com/leengari/tabledb/internal/parser/ast"
	"github.com/leengari/tabledb/internal/query/operations/crud"
	"github.com/leengari/tabledb/internal/query/operations/projection"
	"github.com/leengari/tabledb/internal/query/predicate"
)

const opSelect = "SELECT"

func (x *Executor) executeSelect(stmt *ast.SelectStatement) (*Result, error) {
	table, err := x.table(opSelect, stmt.TableName)
	if err != nil {
		return nil, err
	}

	proj := projection.NewProjection()
	if !stmt.SelectAll {
		proj = projection.NewProjectionWithColumns(stmt.Fields...)
	}

	columns, err := projection.Resolve(table, proj)
	if err != nil {
		return nil, &dberrors.CommandError{
			Op:     opSelect,
			Table:  table.Name,
			Reason: err.Error(),
			Err:    dberrors.ErrInvalidCommand,
		}
	}

	var pred predicate.PredicateFunc
	if stmt.Where != nil {
		pred = stmt.Where.Func()
	}

	rows := crud.SelectWhere(table, pred, columns)
	if len(rows) == 0 {
		return &Result{Columns: columns, Message: MsgNoRowsFound}, nil
	}

	return &Result{Columns: columns, Rows: rows}, nil
}
