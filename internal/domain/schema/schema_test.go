package schema

import (
	"sync"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/leengari/tabledb/internal/domain/data"
)

func newUsers() *Table {
	return NewTable("users", []Column{
		{Name: "id", Type: data.TypeInt},
		{Name: "name", Type: data.TypeText},
	})
}

func TestValidIdentifier(t *testing.T) {
	for _, ok := range []string{"users", "T1", "abc123"} {
		assert.Assert(t, ValidIdentifier(ok), ok)
	}
	for _, bad := range []string{"", "a-b", "a b", "naïve", "x_y"} {
		assert.Assert(t, !ValidIdentifier(bad), bad)
	}
}

func TestValidateRow(t *testing.T) {
	s := newUsers().Schema

	tests := []struct {
		name    string
		row     data.Row
		wantErr string
	}{
		{"valid", data.Row{"id": data.IntValue(1), "name": data.TextValue("a")}, ""},
		{"too few", data.Row{"id": data.IntValue(1)}, "row has 1 values"},
		{"wrong column", data.Row{"id": data.IntValue(1), "nick": data.TextValue("a")}, "column name: missing value"},
		{"wrong type", data.Row{"id": data.TextValue("1"), "name": data.TextValue("a")}, "column id: expected INT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.ValidateRow(tt.row)
			if tt.wantErr == "" {
				assert.NilError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestSchemaLookup(t *testing.T) {
	s := newUsers().Schema
	col, ok := s.Column("name")
	assert.Assert(t, ok)
	assert.Equal(t, col.Type, data.TypeText)

	_, ok = s.Column("nope")
	assert.Assert(t, !ok)
	assert.DeepEqual(t, s.ColumnNames(), []string{"id", "name"})
}

func TestTableMutations(t *testing.T) {
	table := newUsers()
	for i := int64(1); i <= 4; i++ {
		table.Append(data.Row{"id": data.IntValue(i), "name": data.TextValue("x")})
	}
	even := func(r data.Row) bool { return r["id"].Int%2 == 0 }

	assert.Equal(t, len(table.Select(nil)), 4)
	assert.Equal(t, len(table.Select(even)), 2)

	updated := table.Update(even, data.Row{"name": data.TextValue("even")})
	assert.Equal(t, updated, 2)
	assert.Equal(t, table.Rows[1]["name"], data.TextValue("even"))
	assert.Equal(t, table.Rows[0]["name"], data.TextValue("x"))

	assert.Equal(t, table.Delete(even), 2)
	assert.Equal(t, table.Len(), 2)
	assert.Equal(t, table.Delete(even), 0)
}

func TestSelectReturnsCopies(t *testing.T) {
	table := newUsers()
	table.Append(data.Row{"id": data.IntValue(1), "name": data.TextValue("a")})

	rows := table.Select(nil)
	rows[0]["name"] = data.TextValue("changed")

	assert.Equal(t, table.Rows[0]["name"], data.TextValue("a"))
}

// Readers must see each row either before or after an update, never a mix.
func TestUpdateIsNeverTorn(t *testing.T) {
	table := NewTable("pairs", []Column{
		{Name: "a", Type: data.TypeInt},
		{Name: "b", Type: data.TypeInt},
	})
	table.Append(data.Row{"a": data.IntValue(0), "b": data.IntValue(0)})

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := int64(1); i <= 500; i++ {
			table.Update(func(data.Row) bool { return true },
				data.Row{"a": data.IntValue(i), "b": data.IntValue(i)})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			for _, r := range table.Select(nil) {
				if r["a"] != r["b"] {
					t.Errorf("torn row: %v", r)
					return
				}
			}
		}
	}()
	wg.Wait()
}
