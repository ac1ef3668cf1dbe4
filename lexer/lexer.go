/*
File    : wisp/lexer/lexer.go
*/

// Package lexer turns Wisp source text into a token stream. It never
// fails hard: malformed input is reported through a diag.Reporter and the
// offending character is skipped, so scanning always runs to completion
// and always produces a stream terminated by exactly one EOF.
package lexer

import (
	"strconv"

	"github.com/wisplang/wisp/diag"
	"github.com/wisplang/wisp/token"
)

// Lexer performs a single forward scan over source, tracking two cursors —
// start (the beginning of the lexeme currently being scanned) and current
// (the next unconsumed byte) — plus a 1-based line counter incremented on
// every '\n'.
type Lexer struct {
	source   string
	reporter *diag.Reporter

	tokens  []token.Token
	start   int
	current int
	line    int
}

// New creates a Lexer over source that reports diagnostics through r.
func New(source string, r *diag.Reporter) *Lexer {
	return &Lexer{source: source, reporter: r, line: 1}
}

// ScanTokens runs the lexer to completion and returns the full ordered
// token stream, always ending in exactly one EOF token.
func (l *Lexer) ScanTokens() []token.Token {
	for !l.atEnd() {
		l.start = l.current
		l.scanToken()
	}
	l.tokens = append(l.tokens, token.New(token.EOF, "", l.line))
	return l.tokens
}

// scanToken scans exactly one lexeme starting at l.start (or none, for
// discarded whitespace/comments).
func (l *Lexer) scanToken() {
	c := l.advance()
	switch c {
	case '(':
		l.addToken(token.LEFT_PAREN)
	case ')':
		l.addToken(token.RIGHT_PAREN)
	case '{':
		l.addToken(token.LEFT_BRACE)
	case '}':
		l.addToken(token.RIGHT_BRACE)
	case ',':
		l.addToken(token.COMMA)
	case '.':
		l.addToken(token.DOT)
	case '-':
		l.addToken(token.MINUS)
	case '+':
		l.addToken(token.PLUS)
	case ';':
		l.addToken(token.SEMICOLON)
	case '*':
		l.addToken(token.STAR)
	case '!':
		l.addTwoChar('=', token.BANG_EQUAL, token.BANG)
	case '=':
		l.addTwoChar('=', token.EQUAL_EQUAL, token.EQUAL)
	case '<':
		l.addTwoChar('=', token.LESS_EQUAL, token.LESS)
	case '>':
		l.addTwoChar('=', token.GREATER_EQUAL, token.GREATER)
	case '/':
		if l.match('/') {
			// Line comment: consume through (not including) the newline.
			for l.peek() != '\n' && !l.atEnd() {
				l.advance()
			}
		} else {
			l.addToken(token.SLASH)
		}
	case ' ', '\r', '\t':
		// Discarded.
	case '\n':
		l.line++
	case '"':
		l.scanString()
	default:
		switch {
		case isDigit(c):
			l.scanNumber()
		case isAlpha(c):
			l.scanIdentifier()
		default:
			l.reporter.Line(l.line, "Unexpected character")
		}
	}
}

// addTwoChar emits twoKind if the next character matches second (consuming
// it), otherwise emits oneKind — the shared shape of !=, ==, <=, >=.
func (l *Lexer) addTwoChar(second byte, twoKind, oneKind token.Kind) {
	if l.match(second) {
		l.addToken(twoKind)
	} else {
		l.addToken(oneKind)
	}
}

// scanString consumes a "..."-delimited string literal. A newline inside
// the string is tracked but does not terminate it; reaching EOF first is an
// unterminated-string error and no token is emitted.
func (l *Lexer) scanString() {
	for l.peek() != '"' && !l.atEnd() {
		if l.peek() == '\n' {
			l.line++
		}
		l.advance()
	}
	if l.atEnd() {
		l.reporter.Line(l.line, "Unterminated string")
		return
	}
	l.advance() // the closing quote
	value := l.source[l.start+1 : l.current-1]
	l.addLiteral(token.STRING, value)
}

// scanNumber consumes a digit run, optionally followed by a '.' and a
// second digit run. No leading sign, no exponent form, no trailing dot.
func (l *Lexer) scanNumber() {
	for isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance() // the '.'
		for isDigit(l.peek()) {
			l.advance()
		}
	}
	text := l.source[l.start:l.current]
	value, _ := strconv.ParseFloat(text, 64)
	l.addLiteral(token.NUMBER, value)
}

// scanIdentifier consumes an identifier-shaped lexeme and classifies it as
// a keyword or a plain IDENTIFIER via the keyword table.
func (l *Lexer) scanIdentifier() {
	for isAlphaNumeric(l.peek()) {
		l.advance()
	}
	text := l.source[l.start:l.current]
	kind, ok := token.Keywords[text]
	if !ok {
		kind = token.IDENTIFIER
	}
	l.addToken(kind)
}

func (l *Lexer) atEnd() bool {
	return l.current >= len(l.source)
}

// advance consumes and returns the current byte, moving current forward.
func (l *Lexer) advance() byte {
	c := l.source[l.current]
	l.current++
	return c
}

// match consumes the current byte and returns true only if it equals
// expected; otherwise current is left unchanged.
func (l *Lexer) match(expected byte) bool {
	if l.atEnd() || l.source[l.current] != expected {
		return false
	}
	l.current++
	return true
}

// peek returns the current byte without consuming it, or 0 at end of input.
func (l *Lexer) peek() byte {
	if l.atEnd() {
		return 0
	}
	return l.source[l.current]
}

// peekNext returns the byte after current without consuming it, or 0 if
// that position is past the end of input.
func (l *Lexer) peekNext() byte {
	if l.current+1 >= len(l.source) {
		return 0
	}
	return l.source[l.current+1]
}

func (l *Lexer) addToken(kind token.Kind) {
	text := l.source[l.start:l.current]
	l.tokens = append(l.tokens, token.New(kind, text, l.line))
}

func (l *Lexer) addLiteral(kind token.Kind, literal any) {
	text := l.source[l.start:l.current]
	l.tokens = append(l.tokens, token.NewLiteral(kind, text, literal, l.line))
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
