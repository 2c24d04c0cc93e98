package executor

import (
	"github.com/leengari/tabledb/internal/domain/data"
	dberrors "github.com/leengari/tabledb/internal/domain/errors"
	"github.com/leengari/tabledb/internal/domain/schema"
)

// convertLiteral coerces a raw literal to the declared type of col.
// INT takes a signed decimal, STRING takes a double-quoted value.
func convertLiteral(op, table string, col schema.Column, raw string) (data.Value, error) {
	v, err := data.ParseLiteral(raw, col.Type)
	if err != nil {
		return data.Value{}, dberrors.NewTypeMismatch(op, table, col.Name, raw, col.Type)
	}
	return v, nil
}
