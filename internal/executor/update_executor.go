package executor

import (
	"fmt"

	"github.com/leengari/tabledb/internal/domain/data"
	dberrors "github.com/leengari/tabledb/internal/domain/errors"
	"github.com/leengari/tabledb/internal/parser/ast"
	"github.com/leengari/tabledb/internal/query/operations/crud"
)

const opUpdate = "UPDATE"

// executeUpdate validates every assignment before touching any row.
// A column assigned twice keeps the last value.
func (x *Executor) executeUpdate(stmt *ast.UpdateStatement) (*Result, error) {
	table, err := x.table(opUpdate, stmt.TableName)
	if err != nil {
		return nil, err
	}

	updates := make(data.Row, len(stmt.Assignments))
	for _, a := range stmt.Assignments {
		col, ok := table.Schema.Column(a.Column)
		if !ok {
			return nil, dberrors.NewUnknownColumn(opUpdate, table.Name, a.Column)
		}
		v, err := convertLiteral(opUpdate, table.Name, col, a.Value)
		if err != nil {
			return nil, err
		}
		updates[col.Name] = v
	}

	updated, err := crud.Update(table, stmt.Where.Func(), updates)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", dberrors.ErrInvalidCommand, err)
	}

	if updated == 0 {
		return &Result{Message: MsgNoRowsUpdated}, nil
	}

	return &Result{
		Message:      fmt.Sprintf(msgUpdatedFormat, updated),
		RowsAffected: updated,
		Modified:     table,
	}, nil
}
