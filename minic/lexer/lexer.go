package lexer

import (
	"fmt"
	"sort"
	"unicode/utf8"
)

// Error is a lexical diagnostic. The lexer records it and keeps going.
type Error struct {
	Message string
	Pos     Position
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// Symbol is an identifier together with the position it was first seen at.
type Symbol struct {
	Name string
	Pos  Position
}

type Lexer struct {
	input   []byte
	file    string
	pos     int
	line    int
	column  int
	errors  []*Error
	symbols map[string]Position
}

func NewLexer(input []byte, file string) *Lexer {
	return &Lexer{
		input:   input,
		file:    file,
		pos:     0,
		line:    1,
		column:  1,
		symbols: make(map[string]Position),
	}
}

func (l *Lexer) File() string {
	return l.file
}

func (l *Lexer) Position() Position {
	return Position{
		Offset: l.pos,
		Line:   l.line,
		Column: l.column,
	}
}

// Errors returns the lexical errors recorded so far, in source order.
func (l *Lexer) Errors() []*Error {
	return l.errors
}

// Symbols returns every identifier seen so far with its first position,
// sorted by name.
func (l *Lexer) Symbols() []Symbol {
	out := make([]Symbol, 0, len(l.symbols))
	for name, pos := range l.symbols {
		out = append(out, Symbol{Name: name, Pos: pos})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// All scans the rest of the input and returns its tokens. The end-of-stream
// token is not included; callers append EOFToken themselves.
func (l *Lexer) All() []Token {
	var tokens []Token
	for {
		tok := l.NextToken()
		if tok.Kind == EOF {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekN(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

func (l *Lexer) advanceN(n int) {
	for i := 0; i < n; i++ {
		l.advance()
	}
}

func (l *Lexer) errorf(pos Position, format string, args ...any) {
	l.errors = append(l.errors, &Error{Message: fmt.Sprintf(format, args...), Pos: pos})
}

func (l *Lexer) token(kind Kind, start Position) Token {
	return Token{
		Kind:    kind,
		Literal: string(l.input[start.Offset:l.pos]),
		Pos:     start,
	}
}

// NextToken returns the next significant token, skipping whitespace and
// comments. Characters that cannot start a token are reported through
// Errors and skipped. At the end of input it returns an EOF token positioned
// just past the last byte.
func (l *Lexer) NextToken() Token {
	for {
		l.skipWhitespace()
		start := l.Position()

		if l.pos >= len(l.input) {
			return Token{Kind: EOF, Pos: start}
		}

		ch := l.peek()

		if ch == '/' && l.peekN(1) == '/' {
			l.skipLineComment()
			continue
		}
		if ch == '/' && l.peekN(1) == '*' {
			l.skipBlockComment(start)
			continue
		}

		if isLetter(ch) {
			return l.scanIdentOrKeyword(start)
		}

		if isDigit(ch) || (ch == '.' && isDigit(l.peekN(1))) {
			if tok, ok := l.scanNumber(start); ok {
				return tok
			}
			continue
		}

		if tok, ok := l.scanOperator(start); ok {
			return tok
		}
	}
}

func (l *Lexer) skipWhitespace() {
	for {
		ch := l.peek()
		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '\f' || ch == '\v' {
			l.advance()
		} else {
			return
		}
	}
}

func (l *Lexer) skipLineComment() {
	l.advanceN(2)
	for l.peek() != 0 && l.peek() != '\n' {
		l.advance()
	}
}

func (l *Lexer) skipBlockComment(start Position) {
	l.advanceN(2)
	for {
		if l.pos >= len(l.input) {
			l.errorf(start, "unterminated block comment")
			return
		}
		if l.peek() == '*' && l.peekN(1) == '/' {
			l.advanceN(2)
			return
		}
		l.advance()
	}
}

func (l *Lexer) scanIdentOrKeyword(start Position) Token {
	for isLetter(l.peek()) || isDigit(l.peek()) {
		l.advance()
	}
	tok := l.token(LookupKeyword(string(l.input[start.Offset:l.pos])), start)
	if tok.Kind == Ident {
		if _, seen := l.symbols[tok.Literal]; !seen {
			l.symbols[tok.Literal] = start
		}
	}
	return tok
}

// scanNumber reads an integer or floating literal. In a literal that began
// with a point, a second point is reported and left in the input; after
// leading digits it simply ends the literal. An exponent without digits is
// reported and the literal is dropped.
func (l *Lexer) scanNumber(start Position) (Token, bool) {
	isFloat := false

	if l.peek() == '.' {
		isFloat = true
		l.advance()
	}
	for isDigit(l.peek()) {
		l.advance()
	}

	if l.peek() == '.' {
		if isFloat {
			l.errorf(start, "malformed number with multiple decimal points %q", string(l.input[start.Offset:l.pos+1]))
		} else {
			isFloat = true
			l.advance()
			for isDigit(l.peek()) {
				l.advance()
			}
		}
	}

	if l.peek() == 'e' || l.peek() == 'E' {
		isFloat = true
		l.advance()
		if l.peek() == '+' || l.peek() == '-' {
			l.advance()
		}
		if !isDigit(l.peek()) {
			l.errorf(start, "malformed exponent in number %q", string(l.input[start.Offset:l.pos]))
			return Token{}, false
		}
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	if isFloat {
		return l.token(FloatLiteral, start), true
	}
	return l.token(IntLiteral, start), true
}

var singleCharKinds = map[byte]Kind{
	';': Semicolon,
	',': Comma,
	'(': LParen,
	')': RParen,
	'{': LBrace,
	'}': RBrace,
	'+': ArithOp,
	'-': ArithOp,
	'*': ArithOp,
	'/': ArithOp,
	'%': ArithOp,
	'.': Dot,
	':': Colon,
}

func (l *Lexer) scanOperator(start Position) (Token, bool) {
	ch := l.peek()

	switch ch {
	case '=', '!', '<', '>':
		l.advance()
		if l.peek() == '=' {
			l.advance()
			return l.token(RelOp, start), true
		}
		switch ch {
		case '=':
			return l.token(Assign, start), true
		case '!':
			return l.token(LogicOp, start), true
		default:
			return l.token(RelOp, start), true
		}

	case '&', '|':
		l.advance()
		if l.peek() == ch {
			l.advance()
			return l.token(LogicOp, start), true
		}
		l.errorf(start, "unexpected single %q (expected %q)", string(ch), string([]byte{ch, ch}))
		return Token{}, false
	}

	if kind, ok := singleCharKinds[ch]; ok {
		l.advance()
		return l.token(kind, start), true
	}

	r, size := utf8.DecodeRune(l.input[l.pos:])
	l.advanceN(size)
	l.errorf(start, "unknown character %q", r)
	return Token{}, false
}

func isLetter(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
