package data

import (
	"fmt"
	"strconv"
	"strings"
)

// DataType is the logical type of a column and of the values stored in it.
type DataType int

const (
	TypeInt DataType = iota
	TypeText
)

// String returns the keyword used when a schema is persisted.
func (t DataType) String() string {
	switch t {
	case TypeInt:
		return "INT"
	case TypeText:
		return "STRING"
	default:
		return fmt.Sprintf("DataType(%d)", int(t))
	}
}

// ParseDataType maps a declaration keyword to a DataType (case-insensitive).
// INT/INTEGER and STRING/TEXT are accepted.
func ParseDataType(s string) (DataType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "INT", "INTEGER":
		return TypeInt, nil
	case "STRING", "TEXT":
		return TypeText, nil
	default:
		return 0, fmt.Errorf("unknown data type %q", s)
	}
}

// Value is a single cell. Only the field matching Type is meaningful.
type Value struct {
	Type DataType
	Int  int64  // for TypeInt
	Text string // for TypeText
}

// IntValue builds an integer cell.
func IntValue(i int64) Value {
	return Value{Type: TypeInt, Int: i}
}

// TextValue builds a text cell.
func TextValue(s string) Value {
	return Value{Type: TypeText, Text: s}
}

// String renders the value the way predicates and SELECT output see it.
func (v Value) String() string {
	if v.Type == TypeInt {
		return strconv.FormatInt(v.Int, 10)
	}
	return v.Text
}

// ParseLiteral coerces a raw statement literal into a value of type t.
// Integers are signed decimal; text must be wrapped in double quotes and
// embedded quotes are not escaped.
func ParseLiteral(raw string, t DataType) (Value, error) {
	s := strings.TrimSpace(raw)
	switch t {
	case TypeInt:
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("invalid integer literal %q", s)
		}
		return IntValue(i), nil
	case TypeText:
		if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
			return Value{}, fmt.Errorf("text literal must be double-quoted, got %q", s)
		}
		return TextValue(s[1 : len(s)-1]), nil
	default:
		return Value{}, fmt.Errorf("unsupported data type %v", t)
	}
}
