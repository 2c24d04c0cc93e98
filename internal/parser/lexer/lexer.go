package lexer

import (
	"fmt"
)

type TokenType int

const (
	// Special
	EOF TokenType = iota

	// Literals
	WORD   // users, id, VALUES, 42, name=1
	STRING // "value"

	// Punctuation
	COMMA       // ,
	PAREN_OPEN  // (
	PAREN_CLOSE // )
)

type Token struct {
	Type    TokenType
	Literal string
	Pos     int // byte offset of the first character in the input
}

func (t Token) String() string {
	return fmt.Sprintf("Token(%d, %q, @%d)", t.Type, t.Literal, t.Pos)
}

// Lexer splits a statement into whitespace-separated words, double-quoted
// strings and the punctuation the grammar cares about. It never interprets
// keywords; the parser decides which words are keywords and where.
type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
}

func New(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition += 1
}

func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	pos := l.position
	switch {
	case l.position >= len(l.input):
		return Token{Type: EOF, Pos: pos}
	case l.ch == ',':
		l.readChar()
		return Token{Type: COMMA, Literal: ",", Pos: pos}
	case l.ch == '(':
		l.readChar()
		return Token{Type: PAREN_OPEN, Literal: "(", Pos: pos}
	case l.ch == ')':
		l.readChar()
		return Token{Type: PAREN_CLOSE, Literal: ")", Pos: pos}
	case l.ch == '"':
		return Token{Type: STRING, Literal: l.readString(), Pos: pos}
	default:
		return Token{Type: WORD, Literal: l.readWord(), Pos: pos}
	}
}

func (l *Lexer) skipWhitespace() {
	for isSpace(l.ch) && l.position < len(l.input) {
		l.readChar()
	}
}

func (l *Lexer) readWord() string {
	position := l.position
	for l.position < len(l.input) && !isSpace(l.ch) && !isDelimiter(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

// readString consumes a double-quoted string including both quotes.
// An unterminated string runs to the end of input.
func (l *Lexer) readString() string {
	position := l.position
	for {
		l.readChar()
		if l.ch == '"' || l.position >= len(l.input) {
			break
		}
	}

	// Consume the closing quote
	if l.ch == '"' && l.position < len(l.input) {
		l.readChar()
	}

	return l.input[position:l.position]
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\f' || ch == '\v'
}

func isDelimiter(ch byte) bool {
	return ch == ',' || ch == '(' || ch == ')' || ch == '"'
}

// Helper to tokenize entire string at once
func Tokenize(input string) []Token {
	l := New(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		if tok.Type == EOF {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens
}
