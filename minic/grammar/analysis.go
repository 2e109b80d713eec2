package grammar

import (
	"errors"
	"fmt"
	"strings"
)

// TerminalSet is a set of terminals.
type TerminalSet uint64

func SetOf(ts ...Terminal) TerminalSet {
	var s TerminalSet
	for _, t := range ts {
		s = s.Add(t)
	}
	return s
}

func (s TerminalSet) Add(t Terminal) TerminalSet {
	if !t.Valid() {
		return s
	}
	return s | 1<<uint(t)
}

func (s TerminalSet) Has(t Terminal) bool {
	return t.Valid() && s&(1<<uint(t)) != 0
}

func (s TerminalSet) Union(o TerminalSet) TerminalSet {
	return s | o
}

func (s TerminalSet) Minus(o TerminalSet) TerminalSet {
	return s &^ o
}

func (s TerminalSet) Terminals() []Terminal {
	var out []Terminal
	for t := Terminal(0); t < numTerminals; t++ {
		if s.Has(t) {
			out = append(out, t)
		}
	}
	return out
}

func (s TerminalSet) String() string {
	ts := s.Terminals()
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = t.String()
	}
	return "{" + strings.Join(parts, " ") + "}"
}

// Sets holds the nullable, FIRST and FOLLOW sets of a grammar.
type Sets struct {
	Nullable map[NonTerminal]bool
	First    map[NonTerminal]TerminalSet
	Follow   map[NonTerminal]TerminalSet
}

// Analyze computes nullable, FIRST and FOLLOW by fixpoint iteration.
// FOLLOW of the start symbol contains EOF.
func Analyze(start NonTerminal, rules []Rule) *Sets {
	s := &Sets{
		Nullable: make(map[NonTerminal]bool),
		First:    make(map[NonTerminal]TerminalSet),
		Follow:   make(map[NonTerminal]TerminalSet),
	}

	for changed := true; changed; {
		changed = false
		for _, r := range rules {
			first, nullable := s.FirstOf(r.Body)
			if nullable && !s.Nullable[r.Head] {
				s.Nullable[r.Head] = true
				changed = true
			}
			if merged := s.First[r.Head].Union(first); merged != s.First[r.Head] {
				s.First[r.Head] = merged
				changed = true
			}
		}
	}

	s.Follow[start] = SetOf(EOF)
	for changed := true; changed; {
		changed = false
		for _, r := range rules {
			for i, sym := range r.Body {
				nt, ok := sym.(NonTerminal)
				if !ok {
					continue
				}
				first, nullable := s.FirstOf(r.Body[i+1:])
				follow := s.Follow[nt].Union(first)
				if nullable {
					follow = follow.Union(s.Follow[r.Head])
				}
				if follow != s.Follow[nt] {
					s.Follow[nt] = follow
					changed = true
				}
			}
		}
	}

	return s
}

// FirstOf returns FIRST of a symbol sequence and whether the whole
// sequence can derive the empty string.
func (s *Sets) FirstOf(seq []Symbol) (TerminalSet, bool) {
	var first TerminalSet
	for _, sym := range seq {
		switch sym := sym.(type) {
		case Terminal:
			return first.Add(sym), false
		case NonTerminal:
			first = first.Union(s.First[sym])
			if !s.Nullable[sym] {
				return first, false
			}
		default:
			return first, false
		}
	}
	return first, true
}

// Predict returns the terminals on which r should be chosen.
func (s *Sets) Predict(r Rule) TerminalSet {
	first, nullable := s.FirstOf(r.Body)
	if nullable {
		first = first.Union(s.Follow[r.Head])
	}
	return first
}

// Validate cross-checks the declared entries against the grammar: every
// production entry lies in the rule's predict set, every predict-set
// terminal has some production entry, and every synchronization entry lies
// in the FOLLOW set of its non-terminal.
func (t *Table) Validate() error {
	sets := Analyze(t.start, t.rules)
	var errs []error

	for _, r := range t.rules {
		predict := sets.Predict(r)
		declared := SetOf(r.Lookahead...)
		if extra := declared.Minus(predict); extra != 0 {
			errs = append(errs, &TableError{
				Op:     "validate",
				Symbol: r.Head,
				Msg:    fmt.Sprintf("rule %s selected on %s outside its predict set %s", r, extra, predict),
			})
		}
		for _, term := range predict.Terminals() {
			a, ok := t.Lookup(r.Head, term)
			if !ok || a.Kind == Synchronize {
				errs = append(errs, &TableError{
					Op:     "validate",
					Symbol: r.Head,
					Msg:    fmt.Sprintf("rule %s has no entry for %s", r, term),
				})
			}
		}
	}

	for _, sy := range t.syncs {
		follow := sets.Follow[sy.Head]
		for _, term := range sy.Lookahead {
			if !follow.Has(term) {
				errs = append(errs, &TableError{
					Op:     "validate",
					Symbol: sy.Head,
					Msg:    fmt.Sprintf("sync on %s outside FOLLOW %s", term, follow),
				})
			}
		}
	}

	return errors.Join(errs...)
}
