package testutil

import (
	"github.com/leengari/tabledb/internal/domain/data"
	"github.com/leengari/tabledb/internal/domain/schema"
)

// CreateTestTable creates a basic test table with common columns
func CreateTestTable(name string) *schema.Table {
	return schema.NewTable(name, []schema.Column{
		{Name: "id", Type: data.TypeInt},
		{Name: "name", Type: data.TypeText},
		{Name: "email", Type: data.TypeText},
		{Name: "age", Type: data.TypeInt},
	})
}

// CreateUsersTable creates a users table with sample data for testing
func CreateUsersTable() *schema.Table {
	table := schema.NewTable("users", []schema.Column{
		{Name: "id", Type: data.TypeInt},
		{Name: "username", Type: data.TypeText},
		{Name: "email", Type: data.TypeText},
	})
	table.Rows = []data.Row{
		User(1, "alice", "alice@example.com"),
		User(2, "bob", "bob@example.com"),
		User(3, "charlie", "charlie@example.com"),
	}
	return table
}

// User builds one row of the users table
func User(id int64, username, email string) data.Row {
	return data.Row{
		"id":       data.IntValue(id),
		"username": data.TextValue(username),
		"email":    data.TextValue(email),
	}
}
