package metadata

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/leengari/tabledb/internal/domain/data"
	"github.com/leengari/tabledb/internal/domain/schema"
)

// FormatVersion is written into every table file.
const FormatVersion = 1

// TableMeta is the on-disk snapshot of one table: schema plus all rows.
type TableMeta struct {
	Name     string                       `json:"name"`
	Version  int                          `json:"version"`
	Columns  []ColumnMeta                 `json:"columns"`
	Rows     []map[string]json.RawMessage `json:"rows"`
	RowCount int64                        `json:"row_count"`
}

type ColumnMeta struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Snapshot captures the table's schema and a copy of its rows.
// Rows are copied under the table's read lock.
func Snapshot(t *schema.Table) (*TableMeta, error) {
	rows := t.Select(nil)

	meta := &TableMeta{
		Name:     t.Name,
		Version:  FormatVersion,
		Columns:  make([]ColumnMeta, len(t.Schema.Columns)),
		Rows:     make([]map[string]json.RawMessage, len(rows)),
		RowCount: int64(len(rows)),
	}

	for i, col := range t.Schema.Columns {
		meta.Columns[i] = ColumnMeta{Name: col.Name, Type: col.Type.String()}
	}

	for i, row := range rows {
		encoded := make(map[string]json.RawMessage, len(row))
		for col, v := range row {
			raw, err := encodeValue(v)
			if err != nil {
				return nil, fmt.Errorf("row %d column %s: %w", i, col, err)
			}
			encoded[col] = raw
		}
		meta.Rows[i] = encoded
	}

	return meta, nil
}

// Marshal encodes the snapshot as indented JSON.
func (m *TableMeta) Marshal() ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}

// Unmarshal decodes a table file.
func Unmarshal(b []byte) (*TableMeta, error) {
	var meta TableMeta
	if err := json.Unmarshal(b, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// ToTable rebuilds a table from its snapshot, checking every row against
// the schema so that a loaded table satisfies the same invariants as a live one.
func (m *TableMeta) ToTable() (*schema.Table, error) {
	if m.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported format version %d", m.Version)
	}
	if !schema.ValidIdentifier(m.Name) {
		return nil, fmt.Errorf("invalid table name %q", m.Name)
	}
	if len(m.Columns) == 0 {
		return nil, fmt.Errorf("table %s has no columns", m.Name)
	}
	if m.RowCount != int64(len(m.Rows)) {
		return nil, fmt.Errorf("table %s: row_count %d does not match %d rows", m.Name, m.RowCount, len(m.Rows))
	}

	columns := make([]schema.Column, len(m.Columns))
	seen := make(map[string]bool, len(m.Columns))
	for i, c := range m.Columns {
		if !schema.ValidIdentifier(c.Name) || seen[c.Name] {
			return nil, fmt.Errorf("table %s: invalid or duplicate column %q", m.Name, c.Name)
		}
		seen[c.Name] = true

		dt, err := data.ParseDataType(c.Type)
		if err != nil {
			return nil, fmt.Errorf("table %s column %s: %w", m.Name, c.Name, err)
		}
		columns[i] = schema.Column{Name: c.Name, Type: dt}
	}

	table := schema.NewTable(m.Name, columns)
	table.Rows = make([]data.Row, 0, len(m.Rows))

	for i, encoded := range m.Rows {
		if len(encoded) != len(columns) {
			return nil, fmt.Errorf("table %s row %d: has %d values, want %d", m.Name, i, len(encoded), len(columns))
		}
		row := make(data.Row, len(columns))
		for _, col := range columns {
			raw, ok := encoded[col.Name]
			if !ok {
				return nil, fmt.Errorf("table %s row %d: missing column %s", m.Name, i, col.Name)
			}
			v, err := decodeValue(raw, col.Type)
			if err != nil {
				return nil, fmt.Errorf("table %s row %d column %s: %w", m.Name, i, col.Name, err)
			}
			row[col.Name] = v
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

func encodeValue(v data.Value) (json.RawMessage, error) {
	switch v.Type {
	case data.TypeInt:
		return json.Marshal(v.Int)
	case data.TypeText:
		return json.Marshal(v.Text)
	default:
		return nil, fmt.Errorf("unsupported value type %v", v.Type)
	}
}

func decodeValue(raw json.RawMessage, t data.DataType) (data.Value, error) {
	switch t {
	case data.TypeInt:
		var i int64
		if err := json.Unmarshal(raw, &i); err != nil {
			return data.Value{}, fmt.Errorf("expected integer: %w", err)
		}
		return data.IntValue(i), nil
	case data.TypeText:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return data.Value{}, fmt.Errorf("expected string: %w", err)
		}
		return data.TextValue(s), nil
	default:
		return data.Value{}, fmt.Errorf("unsupported data type %v", t)
	}
}
