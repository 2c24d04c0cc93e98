package crud_test

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/leengari/tabledb/internal/domain/data"
	"github.com/leengari/tabledb/internal/query/operations/crud"
	"github.com/leengari/tabledb/internal/query/operations/testutil"
	"github.com/leengari/tabledb/internal/query/predicate"
)

func where(t *testing.T, text string) predicate.PredicateFunc {
	t.Helper()
	cond, err := predicate.Parse(text)
	assert.NilError(t, err)
	return cond.Func()
}

func TestInsert(t *testing.T) {
	table := testutil.CreateUsersTable()

	err := crud.Insert(table, testutil.User(4, "dave", "dave@example.com"))
	testutil.AssertNoError(t, err, "valid insert")
	testutil.AssertRowCount(t, table.Len(), 4, "after insert")

	err = crud.Insert(table, data.Row{"id": data.IntValue(5)})
	assert.ErrorContains(t, err, "insert into users")

	err = crud.Insert(table, data.Row{
		"id":       data.TextValue("5"),
		"username": data.TextValue("eve"),
		"email":    data.TextValue("eve@example.com"),
	})
	assert.ErrorContains(t, err, "expected INT")
	testutil.AssertRowCount(t, table.Len(), 4, "after rejected inserts")
}

func TestSelectWhere(t *testing.T) {
	table := testutil.CreateUsersTable()

	rows := crud.SelectWhere(table, nil, []string{"username"})
	testutil.AssertRowCount(t, len(rows), 3, "SELECT username")
	testutil.AssertColumnNotExists(t, rows[0], "id", "projected row")

	// The predicate sees columns that are not projected.
	rows = crud.SelectWhere(table, where(t, "id=2"), []string{"email"})
	testutil.AssertRowCount(t, len(rows), 1, "SELECT email WHERE id=2")
	testutil.AssertValue(t, rows[0], "email", data.TextValue("bob@example.com"), "projected row")

	rows = crud.SelectWhere(table, where(t, "id=9"), []string{"id"})
	testutil.AssertRowCount(t, len(rows), 0, "no match")
}

func TestUpdate(t *testing.T) {
	table := testutil.CreateUsersTable()

	n, err := crud.Update(table, where(t, "username=bob OR username=alice"),
		data.Row{"email": data.TextValue("hidden")})
	testutil.AssertNoError(t, err, "update")
	assert.Equal(t, n, 2)
	testutil.AssertValue(t, table.Rows[0], "email", data.TextValue("hidden"), "alice")
	testutil.AssertValue(t, table.Rows[2], "email", data.TextValue("charlie@example.com"), "charlie")

	_, err = crud.Update(table, where(t, "id=1"), data.Row{"nope": data.IntValue(1)})
	assert.ErrorContains(t, err, "unknown column nope")

	_, err = crud.Update(table, where(t, "id=1"), data.Row{"id": data.TextValue("1")})
	assert.ErrorContains(t, err, "expects INT")

	n, err = crud.Update(table, where(t, "id=42"), data.Row{"email": data.TextValue("x")})
	testutil.AssertNoError(t, err, "no match")
	assert.Equal(t, n, 0)
}

func TestDelete(t *testing.T) {
	table := testutil.CreateUsersTable()

	assert.Equal(t, crud.Delete(table, where(t, "id=2 OR id=3")), 2)
	testutil.AssertRowCount(t, table.Len(), 1, "after delete")
	testutil.AssertValue(t, table.Rows[0], "username", data.TextValue("alice"), "survivor")

	assert.Equal(t, crud.Delete(table, where(t, "id=2")), 0)
}
