package parser

import (
	"errors"
	"testing"

	"github.com/DefaultKira/trabalho-lexema/minic/grammar"
	"github.com/DefaultKira/trabalho-lexema/minic/lexer"
)

func tok(kind lexer.Kind, lit string) lexer.Token {
	return lexer.Token{Kind: kind, Literal: lit, Pos: lexer.Position{Line: 2, Column: 7}}
}

// fakeTable serves hand-written entries so tests can feed the driver
// tables that grammar.Build would reject.
type fakeTable struct {
	start    grammar.NonTerminal
	actions  map[grammar.NonTerminal]map[grammar.Terminal]grammar.Action
	nullable map[grammar.NonTerminal]bool
}

func (f *fakeTable) Start() grammar.NonTerminal { return f.start }

func (f *fakeTable) Lookup(nt grammar.NonTerminal, t grammar.Terminal) (grammar.Action, bool) {
	a, ok := f.actions[nt][t]
	return a, ok
}

func (f *fakeTable) Nullable(nt grammar.NonTerminal) bool { return f.nullable[nt] }

// foreign satisfies grammar.Symbol through embedding but is not one of
// its members.
type foreign struct {
	grammar.Terminal
}

func TestStep(t *testing.T) {
	tests := []struct {
		name       string
		top        grammar.Symbol
		tok        lexer.Token
		recovering bool
		op         op
		kind       Kind
		message    string
		body       string
	}{
		{
			name: "unmapped token",
			top:  grammar.Program,
			tok:  tok(lexer.Dot, "."),
			op:   opDiscard,
		},
		{
			name: "unmapped token before end marker",
			top:  grammar.EndMarker{},
			tok:  tok(lexer.Colon, ":"),
			op:   opDiscard,
		},
		{
			name: "accept",
			top:  grammar.EndMarker{},
			tok:  lexer.EOFToken(),
			op:   opAccept,
		},
		{
			name:    "resync",
			top:     grammar.EndMarker{},
			tok:     tok(lexer.RBrace, "}"),
			op:      opResync,
			kind:    Unexpected,
			message: `unexpected "}", expected a declaration`,
		},
		{
			name:       "resync while recovering",
			top:        grammar.EndMarker{},
			tok:        tok(lexer.RBrace, "}"),
			recovering: true,
			op:         opResync,
		},
		{
			name: "match",
			top:  grammar.Semicolon,
			tok:  tok(lexer.Semicolon, ";"),
			op:   opMatch,
		},
		{
			name: "match class",
			top:  grammar.Number,
			tok:  tok(lexer.FloatLiteral, "2.5"),
			op:   opMatch,
		},
		{
			name:    "mismatch",
			top:     grammar.Semicolon,
			tok:     tok(lexer.Type, "int"),
			op:      opMismatch,
			kind:    Mismatch,
			message: `expected ";", found "int"`,
		},
		{
			name:    "mismatch at end of input",
			top:     grammar.Semicolon,
			tok:     lexer.EOFToken(),
			op:      opMismatch,
			kind:    Mismatch,
			message: `expected ";", found end of input`,
		},
		{
			name:       "mismatch is reported while recovering",
			top:        grammar.Ident,
			tok:        tok(lexer.LParen, "("),
			recovering: true,
			op:         opMismatch,
			kind:       Mismatch,
			message:    `expected identifier, found "("`,
		},
		{
			name: "produce",
			top:  grammar.Block,
			tok:  tok(lexer.LBrace, "{"),
			op:   opProduce,
			body: "{ StmtList }",
		},
		{
			name: "empty",
			top:  grammar.ElsePart,
			tok:  tok(lexer.RBrace, "}"),
			op:   opEmpty,
		},
		{
			name:    "synchronize",
			top:     grammar.ArithExpr,
			tok:     tok(lexer.RParen, ")"),
			op:      opSync,
			kind:    Abandoned,
			message: `unexpected ")", assuming arithmetic expression absent`,
		},
		{
			name: "default ε for nullable",
			top:  grammar.ArithTail,
			tok:  lexer.EOFToken(),
			op:   opDefault,
		},
		{
			name:    "abandon at end of input",
			top:     grammar.Stmt,
			tok:     lexer.EOFToken(),
			op:      opAbandon,
			kind:    Abandoned,
			message: "unexpected end of input, assuming statement absent",
		},
		{
			name:    "skip",
			top:     grammar.Stmt,
			tok:     tok(lexer.Type, "int"),
			op:      opSkip,
			kind:    Unexpected,
			message: `unexpected "int" in statement`,
		},
		{
			name:       "skip while recovering",
			top:        grammar.Stmt,
			tok:        tok(lexer.Type, "int"),
			recovering: true,
			op:         opSkip,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := step(grammar.Default, tt.top, tt.tok, tt.recovering)
			if err != nil {
				t.Fatalf("step() error = %v", err)
			}
			if tr.op != tt.op {
				t.Errorf("op = %v, want %v", tr.op, tt.op)
			}
			if tr.kind != tt.kind {
				t.Errorf("kind = %v, want %v", tr.kind, tt.kind)
			}
			if tr.message != tt.message {
				t.Errorf("message = %q, want %q", tr.message, tt.message)
			}
			if got := (grammar.Action{Kind: grammar.Produce, Body: tr.body}).String(); got != tt.body {
				t.Errorf("body = %q, want %q", got, tt.body)
			}
		})
	}
}

func TestStepProgress(t *testing.T) {
	// Every transition except produce and accept must pop or advance.
	for o := opDiscard; o <= opSkip; o++ {
		tr := transition{op: o}
		progress := tr.pops() || tr.advances()
		switch o {
		case opAccept:
			if progress {
				t.Errorf("%v pops or advances", o)
			}
		case opProduce:
			if !tr.pops() || tr.advances() {
				t.Errorf("%v should pop without advancing", o)
			}
		default:
			if !progress {
				t.Errorf("%v neither pops nor advances", o)
			}
		}
	}
	if (transition{op: opMatch}).pops() != true || (transition{op: opMatch}).advances() != true {
		t.Error("match must pop and advance")
	}
	if (transition{op: opResync}).pops() {
		t.Error("resync must not pop the end marker")
	}
}

func TestStepMalformed(t *testing.T) {
	empty := &fakeTable{
		start: grammar.Program,
		actions: map[grammar.NonTerminal]map[grammar.Terminal]grammar.Action{
			grammar.Program: {
				grammar.Type: {Kind: grammar.Produce},
				grammar.EOF:  {Kind: grammar.ActionKind(42)},
			},
		},
	}

	tests := []struct {
		name  string
		table Table
		top   grammar.Symbol
		tok   lexer.Token
	}{
		{"nil symbol", grammar.Default, nil, tok(lexer.Type, "int")},
		{"terminal out of range", grammar.Default, grammar.Terminal(99), tok(lexer.Type, "int")},
		{"non-terminal out of range", grammar.Default, grammar.NonTerminal(-1), tok(lexer.Type, "int")},
		{"foreign symbol", grammar.Default, foreign{grammar.Semicolon}, tok(lexer.Semicolon, ";")},
		{"foreign symbol before unmapped token", grammar.Default, foreign{grammar.Semicolon}, tok(lexer.Dot, ".")},
		{"produce without body", empty, grammar.Program, tok(lexer.Type, "int")},
		{"unknown action kind", empty, grammar.Program, lexer.EOFToken()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := step(tt.table, tt.top, tt.tok, false)
			if err == nil {
				t.Fatal("step() error = nil, want *grammar.TableError")
			}
			var te *grammar.TableError
			if !errors.As(err, &te) {
				t.Errorf("error %T is not *grammar.TableError", err)
			}
		})
	}
}
