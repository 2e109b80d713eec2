package parser

import (
	"fmt"
	"strconv"

	"github.com/DefaultKira/trabalho-lexema/minic/grammar"
	"github.com/DefaultKira/trabalho-lexema/minic/lexer"
)

type op int

const (
	opDiscard op = iota
	opAccept
	opResync
	opMatch
	opMismatch
	opProduce
	opEmpty
	opSync
	opDefault
	opAbandon
	opSkip
)

var opNames = [...]string{
	opDiscard:  "discard",
	opAccept:   "accept",
	opResync:   "resync",
	opMatch:    "match",
	opMismatch: "mismatch",
	opProduce:  "produce",
	opEmpty:    "empty",
	opSync:     "sync",
	opDefault:  "default",
	opAbandon:  "abandon",
	opSkip:     "skip",
}

func (o op) String() string {
	if o < 0 || int(o) >= len(opNames) {
		return "op(" + strconv.Itoa(int(o)) + ")"
	}
	return opNames[o]
}

// transition is the outcome of one step. The driver applies it to the
// stack and cursor; step itself touches neither.
type transition struct {
	op   op
	body []grammar.Symbol
	// kind is zero when the transition reports nothing.
	kind    Kind
	message string
}

func (tr transition) pops() bool {
	switch tr.op {
	case opMatch, opMismatch, opProduce, opEmpty, opSync, opDefault, opAbandon:
		return true
	}
	return false
}

func (tr transition) advances() bool {
	switch tr.op {
	case opDiscard, opResync, opMatch, opSkip:
		return true
	}
	return false
}

// step decides what to do with top given the current token. recovering is
// true between a skip or resync and the next successful match; it only
// mutes repeated skip and resync reports.
func step(table Table, top grammar.Symbol, tok lexer.Token, recovering bool) (transition, error) {
	if !grammar.ValidSymbol(top) {
		return transition{}, unknownSymbol(top)
	}

	term, ok := grammar.Map(tok)
	if !ok {
		return transition{op: opDiscard}, nil
	}

	switch top := top.(type) {
	case grammar.EndMarker:
		if term == grammar.EOF {
			return transition{op: opAccept}, nil
		}
		tr := transition{op: opResync}
		if !recovering {
			tr.kind = Unexpected
			tr.message = fmt.Sprintf("unexpected %s, expected a declaration", found(tok, term))
		}
		return tr, nil

	case grammar.Terminal:
		if top == term {
			return transition{op: opMatch}, nil
		}
		return transition{
			op:      opMismatch,
			kind:    Mismatch,
			message: fmt.Sprintf("expected %s, found %s", top.Describe(), found(tok, term)),
		}, nil

	case grammar.NonTerminal:
		return expand(table, top, tok, term, recovering)
	}

	return transition{}, unknownSymbol(top)
}

func expand(table Table, nt grammar.NonTerminal, tok lexer.Token, term grammar.Terminal, recovering bool) (transition, error) {
	action, ok := table.Lookup(nt, term)
	if ok {
		switch action.Kind {
		case grammar.Produce:
			if len(action.Body) == 0 {
				return transition{}, &grammar.TableError{
					Op:     "parse",
					Symbol: nt,
					Msg:    fmt.Sprintf("production on %s has no body", term),
				}
			}
			return transition{op: opProduce, body: action.Body}, nil
		case grammar.Empty:
			return transition{op: opEmpty}, nil
		case grammar.Synchronize:
			return transition{
				op:      opSync,
				kind:    Abandoned,
				message: fmt.Sprintf("unexpected %s, assuming %s absent", found(tok, term), nt.Describe()),
			}, nil
		default:
			return transition{}, &grammar.TableError{
				Op:     "parse",
				Symbol: nt,
				Msg:    fmt.Sprintf("entry on %s has unknown action %s", term, action.Kind),
			}
		}
	}

	switch {
	case table.Nullable(nt):
		return transition{op: opDefault}, nil
	case term == grammar.EOF:
		return transition{
			op:      opAbandon,
			kind:    Abandoned,
			message: fmt.Sprintf("unexpected end of input, assuming %s absent", nt.Describe()),
		}, nil
	}

	tr := transition{op: opSkip}
	if !recovering {
		tr.kind = Unexpected
		tr.message = fmt.Sprintf("unexpected %s in %s", found(tok, term), nt.Describe())
	}
	return tr, nil
}

func found(tok lexer.Token, term grammar.Terminal) string {
	if term == grammar.EOF {
		return "end of input"
	}
	return strconv.Quote(tok.Literal)
}

func unknownSymbol(s grammar.Symbol) *grammar.TableError {
	if s == nil {
		return &grammar.TableError{Op: "parse", Msg: "nil symbol on the stack"}
	}
	return &grammar.TableError{Op: "parse", Symbol: s, Msg: "symbol outside the stack alphabet"}
}
