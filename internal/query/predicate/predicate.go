package predicate

import (
	"fmt"
	"strings"

	"github.com/leengari/tabledb/internal/domain/data"
)

// PredicateFunc is a function that tests whether a row matches certain criteria
type PredicateFunc func(data.Row) bool

// Combinator joins the terms of a condition.
type Combinator int

const (
	Single Combinator = iota
	And
	Or
)

const (
	andSeparator = " AND "
	orSeparator  = " OR "
)

// Term is one `column=literal` comparison. A malformed term never matches.
type Term struct {
	Column    string
	Literal   string
	Malformed bool
}

// Condition is a parsed WHERE clause: terms joined by a single combinator.
// AND and OR never mix and there is no grouping.
type Condition struct {
	Combinator Combinator
	Terms      []Term
}

// Parse splits condition text into terms.
// If the text contains " AND " all terms must hold, else if it contains
// " OR " any term may hold, else it is a single term.
func Parse(text string) (*Condition, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("empty condition")
	}

	cond := &Condition{Combinator: Single}
	parts := []string{text}

	switch {
	case strings.Contains(text, andSeparator):
		cond.Combinator = And
		parts = strings.Split(text, andSeparator)
	case strings.Contains(text, orSeparator):
		cond.Combinator = Or
		parts = strings.Split(text, orSeparator)
	}

	cond.Terms = make([]Term, len(parts))
	for i, p := range parts {
		cond.Terms[i] = parseTerm(strings.TrimSpace(p))
	}
	return cond, nil
}

func parseTerm(text string) Term {
	parts := strings.Split(text, "=")
	// a bare trailing "=" carries no literal
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	if len(parts) != 2 {
		return Term{Malformed: true}
	}
	return Term{
		Column:  strings.TrimSpace(parts[0]),
		Literal: strings.ReplaceAll(strings.TrimSpace(parts[1]), `"`, ""),
	}
}

// Matches compares the row value by its text rendering, so an integer column
// compared with "01" does not match a stored 1.
func (t Term) Matches(row data.Row) bool {
	if t.Malformed {
		return false
	}
	v, ok := row.Get(t.Column)
	if !ok {
		return false
	}
	return v.String() == t.Literal
}

// Evaluate reports whether row satisfies the condition.
func (c *Condition) Evaluate(row data.Row) bool {
	switch c.Combinator {
	case And:
		for _, t := range c.Terms {
			if !t.Matches(row) {
				return false
			}
		}
		return true
	case Or:
		for _, t := range c.Terms {
			if t.Matches(row) {
				return true
			}
		}
		return false
	default:
		return len(c.Terms) == 1 && c.Terms[0].Matches(row)
	}
}

// Func adapts the condition to a PredicateFunc.
func (c *Condition) Func() PredicateFunc {
	return c.Evaluate
}

// Evaluate parses text and checks it against row in one step.
// Unparseable text matches nothing.
func Evaluate(row data.Row, text string) bool {
	cond, err := Parse(text)
	if err != nil {
		return false
	}
	return cond.Evaluate(row)
}
