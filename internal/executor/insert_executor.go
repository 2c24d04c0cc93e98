package executor

import (
	"fmt"

	"github.com/leengari/tabledb/internal/domain/data"
	dberrors "github.com/leengari/tabledb/internal/domain/errors"
	"github.com/leengari/tabledb/internal/parser/ast"
	"github.com/leengari/tabledb/internal/query/operations/crud"
)

const opInsert = "INSERT"

// executeInsert binds values to columns by position.
func (x *Executor) executeInsert(stmt *ast.InsertStatement) (*Result, error) {
	table, err := x.table(opInsert, stmt.TableName)
	if err != nil {
		return nil, err
	}

	columns := table.Schema.Columns
	if len(stmt.Values) != len(columns) {
		return nil, &dberrors.CommandError{
			Op:     opInsert,
			Table:  table.Name,
			Reason: fmt.Sprintf("column count (%d) does not match value count (%d)", len(columns), len(stmt.Values)),
			Err:    dberrors.ErrInvalidCommand,
		}
	}

	row := make(data.Row, len(columns))
	for i, col := range columns {
		v, err := convertLiteral(opInsert, table.Name, col, stmt.Values[i])
		if err != nil {
			return nil, err
		}
		row[col.Name] = v
	}

	if err := crud.Insert(table, row); err != nil {
		return nil, fmt.Errorf("%w: %v", dberrors.ErrInvalidCommand, err)
	}

	return &Result{Message: MsgSuccess, RowsAffected: 1, Modified: table}, nil
}
