package executor

import (
	"fmt"

	"github.com/leengari/tabledb/internal/parser/ast"
	"github.com/leengari/tabledb/internal/query/operations/crud"
)

const opDelete = "DELETE"

func (x *Executor) executeDelete(stmt *ast.DeleteStatement) (*Result, error) {
	table, err := x.table(opDelete, stmt.TableName)
	if err != nil {
		return nil, err
	}

	deleted := crud.Delete(table, stmt.Where.Func())
	if deleted == 0 {
		return &Result{Message: MsgNoRowsDeleted}, nil
	}

	return &Result{
		Message:      fmt.Sprintf(msgDeletedFormat, deleted),
		RowsAffected: deleted,
		Modified:     table,
	}, nil
}
