package lexer

import "fmt"

// Position is a location in the source. Line and Column are 1-based;
// Column counts bytes, not runes.
type Position struct {
	Offset int
	Line   int
	Column int
}

// Sentinel is the position carried by the end-of-stream token appended
// after the last real token. It does not name a source location.
var Sentinel = Position{Offset: -1, Line: -1, Column: -1}

// IsSentinel reports whether p is the end-of-stream sentinel.
func (p Position) IsSentinel() bool {
	return p.Line < 1 || p.Column < 1
}

func (p Position) String() string {
	if p.IsSentinel() {
		return "end of input"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Kind int

const (
	EOF Kind = iota

	// Literals and names
	Ident
	IntLiteral
	FloatLiteral

	// Keywords
	Type // int, float, char, void, double
	If
	Else
	For
	While
	Do
	Return
	Break
	Continue

	// Operator classes
	ArithOp
	RelOp
	LogicOp

	// Punctuation
	Assign
	Semicolon
	Comma
	LParen
	RParen
	LBrace
	RBrace
	Dot
	Colon
)

var kindNames = map[Kind]string{
	EOF:          "EOF",
	Ident:        "Identifier",
	IntLiteral:   "IntLiteral",
	FloatLiteral: "FloatLiteral",
	Type:         "Type",
	If:           "If",
	Else:         "Else",
	For:          "For",
	While:        "While",
	Do:           "Do",
	Return:       "Return",
	Break:        "Break",
	Continue:     "Continue",
	ArithOp:      "ArithOp",
	RelOp:        "RelOp",
	LogicOp:      "LogicOp",
	Assign:       "Assign",
	Semicolon:    "Semicolon",
	Comma:        "Comma",
	LParen:       "LParen",
	RParen:       "RParen",
	LBrace:       "LBrace",
	RBrace:       "RBrace",
	Dot:          "Dot",
	Colon:        "Colon",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Token is one lexical unit. Tokens are produced by the Lexer (or any
// other scanner honouring the same contract) and are never mutated.
type Token struct {
	Kind    Kind
	Literal string
	Pos     Position
}

// EOFToken returns the end-of-stream token with the sentinel position.
func EOFToken() Token {
	return Token{Kind: EOF, Literal: "$", Pos: Sentinel}
}

func (t Token) Line() int   { return t.Pos.Line }
func (t Token) Column() int { return t.Pos.Column }

func (t Token) String() string {
	return fmt.Sprintf("%s %s %q", t.Pos, t.Kind, t.Literal)
}

var keywords = map[string]Kind{
	"int":      Type,
	"float":    Type,
	"char":     Type,
	"void":     Type,
	"double":   Type,
	"if":       If,
	"else":     Else,
	"for":      For,
	"while":    While,
	"do":       Do,
	"return":   Return,
	"break":    Break,
	"continue": Continue,
}

func LookupKeyword(ident string) Kind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return Ident
}
