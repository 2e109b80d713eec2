package grammar

import (
	"strings"
	"testing"
)

func TestVerifyEBNF(t *testing.T) {
	if err := VerifyEBNF(Default); err != nil {
		t.Fatalf("VerifyEBNF() = %v", err)
	}
}

func TestEBNFLexicalClasses(t *testing.T) {
	g, err := ParseEBNF()
	if err != nil {
		t.Fatalf("ParseEBNF() = %v", err)
	}
	for _, name := range []string{"type", "id", "number", "arith_op", "rel_op", "logic_op"} {
		if g[name] == nil {
			t.Errorf("no lexical production %q", name)
		}
	}
}

func TestVerifyEBNFRejectsOtherStart(t *testing.T) {
	tbl := MustBuild(Factor, []Rule{{Factor, body(Ident), terms(Ident)}}, nil)
	err := VerifyEBNF(tbl)
	if err == nil {
		t.Fatal("VerifyEBNF() = nil, want unreachable productions")
	}
	if !strings.HasPrefix(err.Error(), "verify grammar:") {
		t.Errorf("error = %q, want verify grammar prefix", err.Error())
	}
}

func TestSymbolNames(t *testing.T) {
	tests := []struct {
		sym      Symbol
		name     string
		describe string
	}{
		{Semicolon, ";", `";"`},
		{Ident, "id", "identifier"},
		{EOF, "EOF", "end of input"},
		{While, "while", `"while"`},
		{ArithExpr, "ArithExpr", "arithmetic expression"},
		{DoWhileStmt, "DoWhileStmt", "do-while statement"},
	}
	for _, tt := range tests {
		if got := tt.sym.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
		var got string
		switch s := tt.sym.(type) {
		case Terminal:
			got = s.Describe()
		case NonTerminal:
			got = s.Describe()
		}
		if got != tt.describe {
			t.Errorf("Describe(%s) = %q, want %q", tt.sym, got, tt.describe)
		}
	}

	if got := Terminal(55).String(); got != "Terminal(55)" {
		t.Errorf("String() = %q", got)
	}
	if got := NonTerminal(-2).Describe(); got != "NonTerminal(-2)" {
		t.Errorf("Describe() = %q", got)
	}
	if ValidSymbol(nil) || ValidSymbol(Terminal(55)) || !ValidSymbol(EndMarker{}) {
		t.Error("ValidSymbol misclassifies")
	}
}
