package parser

import (
	"errors"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/leengari/tabledb/internal/domain/data"
	dberrors "github.com/leengari/tabledb/internal/domain/errors"
	"github.com/leengari/tabledb/internal/parser/ast"
	"github.com/leengari/tabledb/internal/query/predicate"
)

func mustParse(t *testing.T, input string) ast.Statement {
	t.Helper()
	stmt, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", input, err)
	}
	return stmt
}

func TestParseCreateTable(t *testing.T) {
	stmt := mustParse(t, "CREATE_TABLE users ( id INT, name STRING )")

	create, ok := stmt.(*ast.CreateTableStatement)
	if !ok {
		t.Fatalf("Expected CreateTableStatement, got %T", stmt)
	}

	assert.Equal(t, create.TableName, "users")
	assert.DeepEqual(t, create.Columns, []ast.ColumnDefinition{
		{Name: "id", Type: data.TypeInt},
		{Name: "name", Type: data.TypeText},
	})
	assert.Equal(t, len(create.Rejected), 0)
}

func TestParseCreateTableDropsBadColumns(t *testing.T) {
	stmt := mustParse(t, "create_table t ( id int, bad-name INT, x FLOAT, onlyname, id TEXT, label text )")
	create := stmt.(*ast.CreateTableStatement)

	assert.DeepEqual(t, create.Columns, []ast.ColumnDefinition{
		{Name: "id", Type: data.TypeInt},
		{Name: "label", Type: data.TypeText},
	})
	assert.DeepEqual(t, create.Rejected, []string{"bad-name INT", "x FLOAT", "onlyname", "id TEXT"})
}

func TestParseCreateTableEmptySchemaIsNotAParseError(t *testing.T) {
	create := mustParse(t, "CREATE_TABLE t ( nope )").(*ast.CreateTableStatement)
	assert.Equal(t, len(create.Columns), 0)
}

func TestParseInsert(t *testing.T) {
	stmt := mustParse(t, `INSERT INTO items VALUES ( 1, "apple, red", -3 )`)

	ins, ok := stmt.(*ast.InsertStatement)
	if !ok {
		t.Fatalf("Expected InsertStatement, got %T", stmt)
	}

	assert.Equal(t, ins.TableName, "items")
	assert.DeepEqual(t, ins.Values, []string{"1", `"apple, red"`, "-3"})
}

func TestParseSelect(t *testing.T) {
	tests := []struct {
		input     string
		selectAll bool
		fields    []string
		table     string
		where     string
	}{
		{"SELECT * FROM users", true, nil, "users", ""},
		{"SELECT id, name FROM users WHERE id=1", false, []string{"id", "name"}, "users", "id=1"},
		{"SELECT id name FROM users", false, []string{"id", "name"}, "users", ""},
		{"SELECT id,name FROM users WHERE a=1 AND b=2", false, []string{"id", "name"}, "users", "a=1 AND b=2"},
		{`SELECT * FROM users WHERE note="FROM WHERE"`, true, nil, "users", `note="FROM WHERE"`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			sel, ok := mustParse(t, tt.input).(*ast.SelectStatement)
			if !ok {
				t.Fatalf("Expected SelectStatement")
			}
			assert.Equal(t, sel.SelectAll, tt.selectAll)
			assert.DeepEqual(t, sel.Fields, tt.fields)
			assert.Equal(t, sel.TableName, tt.table)
			assert.Equal(t, sel.WhereText, tt.where)
			assert.Equal(t, sel.Where == nil, tt.where == "")
		})
	}
}

func TestParseUpdate(t *testing.T) {
	stmt := mustParse(t, `UPDATE assets SET name="a, b", qty=3 WHERE id=1 OR id=2`)

	upd, ok := stmt.(*ast.UpdateStatement)
	if !ok {
		t.Fatalf("Expected UpdateStatement, got %T", stmt)
	}

	assert.Equal(t, upd.TableName, "assets")
	assert.DeepEqual(t, upd.Assignments, []ast.Assignment{
		{Column: "name", Value: `"a, b"`},
		{Column: "qty", Value: "3"},
	})
	assert.Equal(t, upd.Where.Combinator, predicate.Or)
	assert.Equal(t, len(upd.Where.Terms), 2)
}

func TestParseDelete(t *testing.T) {
	del, ok := mustParse(t, "DELETE FROM users WHERE name=Bob").(*ast.DeleteStatement)
	if !ok {
		t.Fatal("Expected DeleteStatement")
	}
	assert.Equal(t, del.TableName, "users")
	assert.DeepEqual(t, del.Where.Terms, []predicate.Term{{Column: "name", Literal: "Bob"}})
}

func TestParseNoArgumentVerbs(t *testing.T) {
	tests := []struct {
		input string
		want  ast.Statement
	}{
		{"SHOW", &ast.ShowTablesStatement{}},
		{"show tables", &ast.ShowTablesStatement{}},
		{"  STOP  ", &ast.StopStatement{}},
		{"Stop", &ast.StopStatement{}},
		{"PURGE_AND_STOP", &ast.PurgeStatement{}},
		{"purge", &ast.PurgeStatement{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.DeepEqual(t, mustParse(t, tt.input), tt.want)
		})
	}
}

func TestParseErrors(t *testing.T) {
	inputs := []string{
		"",
		"DROP TABLE users",
		"STOP now",
		"PURGE_AND_STOP now",
		"SHOW COLUMNS",
		"CREATE_TABLE users id INT",
		"CREATE_TABLE users ( id INT ) ( x INT )",
		"CREATE_TABLE users (",
		"CREATE_TABLE bad-name ( id INT )",
		"INSERT users VALUES ( 1 )",
		"INSERT INTO users ( 1 )",
		"INSERT INTO users VALUES 1, 2",
		"INSERT INTO users VALUES ( 1 ) VALUES ( 2 )",
		"SELECT FROM users",
		"SELECT * users",
		"SELECT * FROM users WHERE",
		"SELECT * FROM users WHERE a=1 WHERE b=2",
		"UPDATE users name=1 WHERE id=1",
		"UPDATE users SET name=1",
		"UPDATE users SET name WHERE id=1",
		"UPDATE users SET a=1=2 WHERE id=1",
		"DELETE users WHERE id=1",
		"DELETE FROM users",
		"DELETE FROM users WHERE ",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			assert.Assert(t, errors.Is(err, dberrors.ErrInvalidCommand), "got %v", err)
		})
	}
}

func TestParseTrailingWhereWithoutCondition(t *testing.T) {
	stmt := mustParse(t, "SELECT * FROM users").(*ast.SelectStatement)
	assert.Assert(t, stmt.Where == nil)

	for _, input := range []string{
		"SELECT * FROM users WHERE",
		"SELECT * FROM users WHERE   ",
		"UPDATE users SET id=1 WHERE",
		"DELETE FROM users WHERE",
	} {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			assert.Assert(t, errors.Is(err, dberrors.ErrInvalidCommand), "got %v", err)
			assert.ErrorContains(t, err, "empty condition")
		})
	}
}

func TestStatementString(t *testing.T) {
	assert.Equal(t, mustParse(t, "SELECT id name FROM t WHERE id=1").String(), "SELECT id, name FROM t WHERE id=1")
	assert.Equal(t, mustParse(t, "CREATE_TABLE t ( id INTEGER )").String(), "CREATE_TABLE t ( id INT )")
}
