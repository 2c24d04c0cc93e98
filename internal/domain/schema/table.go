package schema

import (
	"sync"

	"github.com/leengari/tabledb/internal/domain/data"
)

// Table represents a database table with its schema and rows.
// Name and Schema never change after creation; Rows is guarded by mu.
type Table struct {
	mu     sync.RWMutex
	Name   string
	Schema *TableSchema
	Rows   []data.Row
}

// NewTable creates an empty table with the given columns.
func NewTable(name string, columns []Column) *Table {
	return &Table{
		Name: name,
		Schema: &TableSchema{
			TableName: name,
			Columns:   columns,
		},
		Rows: []data.Row{},
	}
}

// Lock acquires an exclusive lock on the table for write operations
func (t *Table) Lock() {
	t.mu.Lock()
}

// Unlock releases the exclusive lock
func (t *Table) Unlock() {
	t.mu.Unlock()
}

// RLock acquires a read lock on the table for read operations
func (t *Table) RLock() {
	t.mu.RLock()
}

// RUnlock releases the read lock
func (t *Table) RUnlock() {
	t.mu.RUnlock()
}

// Append adds a row. The caller is responsible for validation.
func (t *Table) Append(row data.Row) {
	t.Lock()
	defer t.Unlock()

	t.Rows = append(t.Rows, row.Copy())
}

// Select returns copies of the rows that match predicate.
// A nil predicate matches every row.
func (t *Table) Select(predicate func(data.Row) bool) []data.Row {
	t.RLock()
	defer t.RUnlock()

	var result []data.Row
	for _, row := range t.Rows {
		if predicate == nil || predicate(row) {
			result = append(result, row.Copy())
		}
	}
	return result
}

// Update replaces the assigned fields of every matching row and returns how
// many rows changed. Rows are swapped whole so readers never see a partial update.
func (t *Table) Update(predicate func(data.Row) bool, updates data.Row) int {
	t.Lock()
	defer t.Unlock()

	count := 0
	for i, row := range t.Rows {
		if !predicate(row) {
			continue
		}
		next := row.Copy()
		for col, v := range updates {
			next[col] = v
		}
		t.Rows[i] = next
		count++
	}
	return count
}

// Delete removes every matching row and returns how many were removed.
func (t *Table) Delete(predicate func(data.Row) bool) int {
	t.Lock()
	defer t.Unlock()

	kept := make([]data.Row, 0, len(t.Rows))
	deleted := 0
	for _, row := range t.Rows {
		if predicate(row) {
			deleted++
			continue
		}
		kept = append(kept, row)
	}

	if deleted > 0 {
		t.Rows = kept
	}
	return deleted
}

// Len returns the current row count.
func (t *Table) Len() int {
	t.RLock()
	defer t.RUnlock()
	return len(t.Rows)
}
