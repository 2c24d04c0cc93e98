package testutil

import (
	"testing"

	"github.com/leengari/tabledb/internal/domain/data"
)

// AssertRowCount checks the number of rows returned
func AssertRowCount(t *testing.T, actual, expected int, context string) {
	t.Helper()
	if actual != expected {
		t.Errorf("%s: expected %d rows, got %d", context, expected, actual)
	}
}

// AssertColumnCount checks the number of columns in a row
func AssertColumnCount(t *testing.T, actual, expected int, context string) {
	t.Helper()
	if actual != expected {
		t.Errorf("%s: expected %d columns, got %d", context, expected, actual)
	}
}

// AssertColumnExists checks that a column is present in a row
func AssertColumnExists(t *testing.T, row data.Row, column, context string) {
	t.Helper()
	if _, ok := row[column]; !ok {
		t.Errorf("%s: expected column %q to exist", context, column)
	}
}

// AssertColumnNotExists checks that a column is absent from a row
func AssertColumnNotExists(t *testing.T, row data.Row, column, context string) {
	t.Helper()
	if _, ok := row[column]; ok {
		t.Errorf("%s: expected column %q to not exist", context, column)
	}
}

// AssertNoError fails the test if err is not nil
func AssertNoError(t *testing.T, err error, context string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", context, err)
	}
}

// AssertValue checks the value stored under column
func AssertValue(t *testing.T, row data.Row, column string, expected data.Value, context string) {
	t.Helper()
	if got, ok := row[column]; !ok || got != expected {
		t.Errorf("%s: expected %s=%v, got %v", context, column, expected, got)
	}
}
