package grammar

import "testing"

func TestAnalyzeFollow(t *testing.T) {
	sets := Analyze(Program, Default.Rules())

	stmtFollow := SetOf(If, While, Do, For, Return, Break, Continue, Ident, LBrace, RBrace, Else)
	tests := []struct {
		nt   NonTerminal
		want TerminalSet
	}{
		{Program, SetOf(EOF)},
		{ExternalDecl, SetOf(Type, EOF)},
		{DeclTail, SetOf(Type, EOF)},
		{Param, SetOf(Comma, RParen)},
		{OptInit, SetOf(Comma, Semicolon)},
		{IdListTail, SetOf(Semicolon)},
		{Block, stmtFollow.Union(SetOf(Type, EOF))},
		{Stmt, stmtFollow},
		{ElsePart, stmtFollow},
		{StmtList, SetOf(RBrace)},
		{SimpleAssign, SetOf(Semicolon, RParen)},
		{Expr, SetOf(RParen, Semicolon, Comma)},
		{RelExpr, SetOf(LogicOp, RParen, Semicolon, Comma)},
		{ArithExpr, SetOf(RelOp, LogicOp, RParen, Semicolon, Comma)},
		{Factor, SetOf(ArithOp, RelOp, LogicOp, RParen, Semicolon, Comma)},
	}

	for _, tt := range tests {
		t.Run(tt.nt.String(), func(t *testing.T) {
			if got := sets.Follow[tt.nt]; got != tt.want {
				t.Errorf("FOLLOW(%s) = %s, want %s", tt.nt, got, tt.want)
			}
		})
	}
}

func TestAnalyzeFirst(t *testing.T) {
	sets := Analyze(Program, Default.Rules())

	tests := []struct {
		nt   NonTerminal
		want TerminalSet
	}{
		{Program, SetOf(Type)},
		{Stmt, SetOf(If, While, Do, For, Return, Break, Continue, Ident, LBrace)},
		{Expr, SetOf(LParen, Ident, Number)},
		{ArithTail, SetOf(ArithOp)},
		{Params, SetOf(Type)},
	}

	for _, tt := range tests {
		if got := sets.First[tt.nt]; got != tt.want {
			t.Errorf("FIRST(%s) = %s, want %s", tt.nt, got, tt.want)
		}
	}
}

func TestSyncEntriesLieInFollow(t *testing.T) {
	sets := Analyze(Program, Default.Rules())
	for _, nt := range NonTerminals() {
		for _, term := range Terminals() {
			a, ok := Default.Lookup(nt, term)
			if ok && a.Kind == Synchronize && !sets.Follow[nt].Has(term) {
				t.Errorf("sync entry (%s, %s) outside FOLLOW %s", nt, term, sets.Follow[nt])
			}
		}
	}
}

func TestTerminalSet(t *testing.T) {
	s := SetOf(If, Else, Terminal(-1), Terminal(200))
	if !s.Has(If) || !s.Has(Else) {
		t.Errorf("%s is missing members", s)
	}
	if s.Has(While) || s.Has(Terminal(200)) {
		t.Errorf("%s has unexpected members", s)
	}
	if got := s.Minus(SetOf(If)).String(); got != "{else}" {
		t.Errorf("Minus = %q, want %q", got, "{else}")
	}
	if got := len(s.Union(SetOf(EOF)).Terminals()); got != 3 {
		t.Errorf("len(Union) = %d, want 3", got)
	}
}
