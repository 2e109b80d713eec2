package grammar

import (
	"fmt"
	"strconv"
)

// Symbol is an element of the parser stack alphabet. It is implemented only
// by Terminal, NonTerminal and EndMarker.
type Symbol interface {
	fmt.Stringer
	symbol()
}

type Terminal int

const (
	Type Terminal = iota
	Ident
	Number
	If
	Else
	While
	Do
	For
	Return
	Break
	Continue
	ArithOp
	RelOp
	LogicOp
	Assign
	Semicolon
	Comma
	LParen
	RParen
	LBrace
	RBrace
	EOF

	numTerminals
)

var terminalNames = [numTerminals]string{
	Type:      "type",
	Ident:     "id",
	Number:    "number",
	If:        "if",
	Else:      "else",
	While:     "while",
	Do:        "do",
	For:       "for",
	Return:    "return",
	Break:     "break",
	Continue:  "continue",
	ArithOp:   "arith_op",
	RelOp:     "rel_op",
	LogicOp:   "logic_op",
	Assign:    "=",
	Semicolon: ";",
	Comma:     ",",
	LParen:    "(",
	RParen:    ")",
	LBrace:    "{",
	RBrace:    "}",
	EOF:       "EOF",
}

var terminalDescriptions = map[Terminal]string{
	Type:    "type name",
	Ident:   "identifier",
	Number:  "number",
	ArithOp: "arithmetic operator",
	RelOp:   "relational operator",
	LogicOp: "logical operator",
	EOF:     "end of input",
}

func (Terminal) symbol() {}

// Valid reports whether t belongs to the terminal alphabet.
func (t Terminal) Valid() bool {
	return t >= 0 && t < numTerminals
}

func (t Terminal) String() string {
	if !t.Valid() {
		return "Terminal(" + strconv.Itoa(int(t)) + ")"
	}
	return terminalNames[t]
}

// Describe returns the terminal as it should appear in a diagnostic:
// keywords and punctuation quoted, token classes by name.
func (t Terminal) Describe() string {
	if d, ok := terminalDescriptions[t]; ok {
		return d
	}
	return strconv.Quote(t.String())
}

// Terminals returns the whole terminal alphabet in declaration order.
func Terminals() []Terminal {
	out := make([]Terminal, numTerminals)
	for i := range out {
		out[i] = Terminal(i)
	}
	return out
}

type NonTerminal int

const (
	Program NonTerminal = iota
	ExternalDeclList
	ExternalDecl
	DeclTail
	Params
	ParamList
	ParamListTail
	Param
	OptInit
	IdListTail
	Block
	StmtList
	Stmt
	IfStmt
	ElsePart
	WhileStmt
	DoWhileStmt
	ForStmt
	SimpleAssign
	ReturnStmt
	BreakStmt
	ContinueStmt
	AssignStmt
	Expr
	LogicTail
	RelExpr
	RelTail
	ArithExpr
	ArithTail
	Factor

	numNonTerminals
)

var nonTerminalNames = [numNonTerminals]string{
	Program:          "Program",
	ExternalDeclList: "ExternalDeclList",
	ExternalDecl:     "ExternalDecl",
	DeclTail:         "DeclTail",
	Params:           "Params",
	ParamList:        "ParamList",
	ParamListTail:    "ParamListTail",
	Param:            "Param",
	OptInit:          "OptInit",
	IdListTail:       "IdListTail",
	Block:            "Block",
	StmtList:         "StmtList",
	Stmt:             "Stmt",
	IfStmt:           "IfStmt",
	ElsePart:         "ElsePart",
	WhileStmt:        "WhileStmt",
	DoWhileStmt:      "DoWhileStmt",
	ForStmt:          "ForStmt",
	SimpleAssign:     "SimpleAssign",
	ReturnStmt:       "ReturnStmt",
	BreakStmt:        "BreakStmt",
	ContinueStmt:     "ContinueStmt",
	AssignStmt:       "AssignStmt",
	Expr:             "Expr",
	LogicTail:        "LogicTail",
	RelExpr:          "RelExpr",
	RelTail:          "RelTail",
	ArithExpr:        "ArithExpr",
	ArithTail:        "ArithTail",
	Factor:           "Factor",
}

var nonTerminalDescriptions = [numNonTerminals]string{
	Program:          "program",
	ExternalDeclList: "declaration list",
	ExternalDecl:     "declaration",
	DeclTail:         "declaration",
	Params:           "parameter list",
	ParamList:        "parameter list",
	ParamListTail:    "parameter list",
	Param:            "parameter",
	OptInit:          "initializer",
	IdListTail:       "declarator list",
	Block:            "block",
	StmtList:         "statement list",
	Stmt:             "statement",
	IfStmt:           "if statement",
	ElsePart:         "else clause",
	WhileStmt:        "while statement",
	DoWhileStmt:      "do-while statement",
	ForStmt:          "for statement",
	SimpleAssign:     "assignment",
	ReturnStmt:       "return statement",
	BreakStmt:        "break statement",
	ContinueStmt:     "continue statement",
	AssignStmt:       "assignment statement",
	Expr:             "expression",
	LogicTail:        "logical expression",
	RelExpr:          "relational expression",
	RelTail:          "relational expression",
	ArithExpr:        "arithmetic expression",
	ArithTail:        "arithmetic expression",
	Factor:           "factor",
}

func (NonTerminal) symbol() {}

// Valid reports whether n belongs to the non-terminal alphabet.
func (n NonTerminal) Valid() bool {
	return n >= 0 && n < numNonTerminals
}

func (n NonTerminal) String() string {
	if !n.Valid() {
		return "NonTerminal(" + strconv.Itoa(int(n)) + ")"
	}
	return nonTerminalNames[n]
}

// Describe names the construct in prose for diagnostics.
func (n NonTerminal) Describe() string {
	if !n.Valid() {
		return n.String()
	}
	return nonTerminalDescriptions[n]
}

// NonTerminals returns the whole non-terminal alphabet in declaration order.
func NonTerminals() []NonTerminal {
	out := make([]NonTerminal, numNonTerminals)
	for i := range out {
		out[i] = NonTerminal(i)
	}
	return out
}

// EndMarker anchors the bottom of the parser stack.
type EndMarker struct{}

func (EndMarker) symbol() {}

func (EndMarker) String() string { return "$" }

// ValidSymbol reports whether s is a member of the stack alphabet.
func ValidSymbol(s Symbol) bool {
	switch s := s.(type) {
	case Terminal:
		return s.Valid()
	case NonTerminal:
		return s.Valid()
	case EndMarker:
		return true
	default:
		return false
	}
}

func symbolName(s Symbol) string {
	if s == nil {
		return "<nil>"
	}
	return s.String()
}
