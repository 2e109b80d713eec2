package grammar

import (
	"fmt"
	"strings"
)

type ActionKind uint8

const (
	// Produce replaces the non-terminal with the action body.
	Produce ActionKind = iota + 1
	// Empty pops the non-terminal (ε-production).
	Empty
	// Synchronize abandons the non-terminal without consuming input.
	Synchronize
)

func (k ActionKind) String() string {
	switch k {
	case Produce:
		return "produce"
	case Empty:
		return "empty"
	case Synchronize:
		return "sync"
	default:
		return "none"
	}
}

// Action is one parse table entry. The zero Action means "no entry".
type Action struct {
	Kind ActionKind
	Body []Symbol
}

func (a Action) String() string {
	switch a.Kind {
	case Produce:
		return formatBody(a.Body)
	case Empty:
		return "ε"
	case Synchronize:
		return "sync"
	default:
		return ""
	}
}

// Rule is a production together with the lookahead terminals that select
// it. An empty Body is an ε-production.
type Rule struct {
	Head      NonTerminal
	Body      []Symbol
	Lookahead []Terminal
}

func (r Rule) String() string {
	if len(r.Body) == 0 {
		return r.Head.String() + " → ε"
	}
	return r.Head.String() + " → " + formatBody(r.Body)
}

// Sync declares the follow-set terminals on which Head may be abandoned.
type Sync struct {
	Head      NonTerminal
	Lookahead []Terminal
}

// TableError reports a malformed table or an inconsistency between a table
// and the stack contents. It is a programming error, never a syntax error.
type TableError struct {
	Op     string
	Symbol Symbol
	Msg    string
}

func (e *TableError) Error() string {
	if e.Symbol == nil {
		return fmt.Sprintf("grammar: %s: %s", e.Op, e.Msg)
	}
	return fmt.Sprintf("grammar: %s: %s: %s", e.Op, symbolName(e.Symbol), e.Msg)
}

// Table is an LL(1) decision table. It is immutable once built and safe
// for concurrent use.
type Table struct {
	start    NonTerminal
	rules    []Rule
	syncs    []Sync
	actions  [numNonTerminals][numTerminals]Action
	nullable [numNonTerminals]bool
}

// Build assembles a table from rules and synchronization entries. Every
// symbol must belong to the alphabets and no cell may be claimed twice.
func Build(start NonTerminal, rules []Rule, syncs []Sync) (*Table, error) {
	if !start.Valid() {
		return nil, &TableError{Op: "build", Symbol: start, Msg: "start symbol outside the alphabet"}
	}

	t := &Table{start: start, rules: rules, syncs: syncs}

	for _, r := range rules {
		if !r.Head.Valid() {
			return nil, &TableError{Op: "build", Symbol: r.Head, Msg: "rule head outside the alphabet"}
		}
		for _, s := range r.Body {
			if s == nil {
				return nil, &TableError{Op: "build", Symbol: r.Head, Msg: "<nil> symbol in rule body"}
			}
			if _, isEnd := s.(EndMarker); isEnd || !ValidSymbol(s) {
				return nil, &TableError{Op: "build", Symbol: s, Msg: "rule body symbol outside the alphabet in " + r.Head.String()}
			}
		}
		if len(r.Lookahead) == 0 {
			return nil, &TableError{Op: "build", Symbol: r.Head, Msg: fmt.Sprintf("rule %s has no lookahead", r)}
		}

		action := Action{Kind: Produce, Body: r.Body}
		if len(r.Body) == 0 {
			action = Action{Kind: Empty}
		}
		if err := t.set(r.Head, r.Lookahead, action); err != nil {
			return nil, err
		}
	}

	for _, s := range syncs {
		if !s.Head.Valid() {
			return nil, &TableError{Op: "build", Symbol: s.Head, Msg: "sync head outside the alphabet"}
		}
		if err := t.set(s.Head, s.Lookahead, Action{Kind: Synchronize}); err != nil {
			return nil, err
		}
	}

	sets := Analyze(start, rules)
	for nt := range t.nullable {
		t.nullable[nt] = sets.Nullable[NonTerminal(nt)]
	}

	return t, nil
}

// MustBuild is like Build but panics on error. It is meant for tables
// defined at package initialization.
func MustBuild(start NonTerminal, rules []Rule, syncs []Sync) *Table {
	t, err := Build(start, rules, syncs)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Table) set(head NonTerminal, lookahead []Terminal, action Action) error {
	for _, term := range lookahead {
		if !term.Valid() {
			return &TableError{Op: "build", Symbol: term, Msg: "lookahead outside the alphabet in " + head.String()}
		}
		if prev := t.actions[head][term]; prev.Kind != 0 {
			return &TableError{
				Op:     "build",
				Symbol: head,
				Msg:    fmt.Sprintf("conflict on %s: %s vs %s", term, prev.Kind, action.Kind),
			}
		}
		t.actions[head][term] = action
	}
	return nil
}

func (t *Table) Start() NonTerminal {
	return t.start
}

// Lookup returns the action for (nt, term). The second result is false
// when the cell is empty or either index lies outside its alphabet.
func (t *Table) Lookup(nt NonTerminal, term Terminal) (Action, bool) {
	if !nt.Valid() || !term.Valid() {
		return Action{}, false
	}
	a := t.actions[nt][term]
	return a, a.Kind != 0
}

// Nullable reports whether nt derives the empty string.
func (t *Table) Nullable(nt NonTerminal) bool {
	return nt.Valid() && t.nullable[nt]
}

// Rules returns the productions the table was built from.
func (t *Table) Rules() []Rule {
	return t.rules
}

// Syncs returns the synchronization declarations the table was built from.
func (t *Table) Syncs() []Sync {
	return t.syncs
}

func formatBody(body []Symbol) string {
	parts := make([]string, len(body))
	for i, s := range body {
		parts[i] = symbolName(s)
	}
	return strings.Join(parts, " ")
}
