package parser

import (
	"fmt"
	"strings"

	dberrors "github.com/leengari/tabledb/internal/domain/errors"
	"github.com/leengari/tabledb/internal/parser/lexer"
	"github.com/leengari/tabledb/internal/query/predicate"
)

// keywordPositions returns the byte offsets at which kw appears as a
// standalone word of s. Words inside double quotes never count.
func keywordPositions(s, kw string) []int {
	var positions []int
	for _, tok := range lexer.Tokenize(s) {
		if tok.Type == lexer.WORD && tok.Literal == kw {
			positions = append(positions, tok.Pos)
		}
	}
	return positions
}

// splitKeyword splits s around the single occurrence of keyword kw.
// It fails when kw is missing or appears more than once.
func splitKeyword(s, kw string) (before, after string, err error) {
	positions := keywordPositions(s, kw)
	switch len(positions) {
	case 0:
		return "", "", fmt.Errorf("missing %s", kw)
	case 1:
		pos := positions[0]
		return strings.TrimSpace(s[:pos]), strings.TrimSpace(s[pos+len(kw):]), nil
	default:
		return "", "", fmt.Errorf("%s appears %d times", kw, len(positions))
	}
}

// splitList splits s on commas outside double quotes and trims each item.
func splitList(s string) []string {
	var (
		items   []string
		current strings.Builder
		quoted  bool
	)
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch == '"':
			quoted = !quoted
			current.WriteByte(ch)
		case ch == ',' && !quoted:
			items = append(items, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteByte(ch)
		}
	}
	items = append(items, strings.TrimSpace(current.String()))
	return items
}

// splitPair splits `left=right` on its only '='. A trailing bare '=' counts
// as no right side.
func splitPair(s string) (string, string, bool) {
	parts := strings.Split(s, "=")
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	if len(parts) != 2 {
		return "", "", false
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), true
}

// parseWhere builds the condition that follows a WHERE keyword.
func parseWhere(text string) (*predicate.Condition, error) {
	cond, err := predicate.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("WHERE: %w", err)
	}
	return cond, nil
}

func invalid(op string, err error) error {
	return dberrors.Invalid(op, err.Error())
}
