package parser

import (
	"fmt"

	"github.com/DefaultKira/trabalho-lexema/minic/grammar"
	"github.com/DefaultKira/trabalho-lexema/minic/lexer"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("minic.parser")

// Table is the read-only view of a parse table the driver needs.
// *grammar.Table implements it.
type Table interface {
	Start() grammar.NonTerminal
	Lookup(nt grammar.NonTerminal, t grammar.Terminal) (grammar.Action, bool)
	Nullable(nt grammar.NonTerminal) bool
}

type Option func(*Parser)

// WithMaxSteps bounds the number of driver iterations. Values below one
// select the default, which grows with the input length.
func WithMaxSteps(n int) Option {
	return func(p *Parser) {
		p.maxSteps = n
	}
}

// WithTrace logs every transition at debug level.
func WithTrace(on bool) Option {
	return func(p *Parser) {
		p.trace = on
	}
}

// Parser holds a table and options. It keeps no per-parse state, so one
// Parser may run any number of parses concurrently.
type Parser struct {
	table    Table
	maxSteps int
	trace    bool
}

func New(table Table, opts ...Option) *Parser {
	p := &Parser{table: table}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse recognizes tokens against grammar.Default.
func Parse(tokens []lexer.Token) (*Result, error) {
	return New(grammar.Default).Parse(tokens)
}

// Parse runs the driver to completion over tokens and returns every
// diagnostic found. Reading stops at the first token of kind lexer.EOF;
// a slice without one behaves as if it were appended. The error is
// non-nil only for a malformed table.
func (p *Parser) Parse(tokens []lexer.Token) (*Result, error) {
	if p.table == nil {
		return nil, &grammar.TableError{Op: "parse", Msg: "no table"}
	}

	m := &machine{
		table:  p.table,
		tokens: tokens,
		stack:  []grammar.Symbol{grammar.EndMarker{}, p.table.Start()},
		trace:  p.trace,
	}
	limit := p.maxSteps
	if limit < 1 {
		limit = DefaultMaxSteps(len(tokens))
	}

	accepted, err := m.run(limit)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Diagnostics: m.diags.Diagnostics(),
		Steps:       m.steps,
	}
	res.Accepted = accepted && len(res.Diagnostics) == 0
	return res, nil
}

// DefaultMaxSteps is the step budget used for n tokens when none is set.
// Valid input needs far fewer.
func DefaultMaxSteps(n int) int {
	return 64*(n+1) + 1024
}

type machine struct {
	table      Table
	tokens     []lexer.Token
	cursor     int
	stack      []grammar.Symbol
	recovering bool
	diags      Collector
	steps      int
	trace      bool
}

func (m *machine) lookahead() lexer.Token {
	if m.cursor < len(m.tokens) {
		return m.tokens[m.cursor]
	}
	return lexer.EOFToken()
}

func (m *machine) run(limit int) (bool, error) {
	for {
		if len(m.stack) == 0 {
			// Only reachable if a transition popped the end marker.
			return false, &grammar.TableError{Op: "parse", Msg: "stack exhausted below the end marker"}
		}

		tok := m.lookahead()
		if m.steps >= limit {
			m.diags.Add(Diagnostic{
				Kind:    Stalled,
				Message: fmt.Sprintf("parser stalled after %d steps", m.steps),
				Line:    tok.Line(),
				Column:  tok.Column(),
			})
			log.Warningf("parse stalled after %d steps at token %d of %d", m.steps, m.cursor, len(m.tokens))
			return false, nil
		}
		m.steps++

		top := m.stack[len(m.stack)-1]
		tr, err := step(m.table, top, tok, m.recovering)
		if err != nil {
			return false, err
		}
		if m.trace {
			log.Debugf("%d: %s %s on %s", m.steps, tr.op, top, tok)
		}
		if tr.op == opAccept {
			return true, nil
		}
		m.apply(tr, tok)
	}
}

func (m *machine) apply(tr transition, tok lexer.Token) {
	if tr.kind != 0 {
		m.diags.Add(Diagnostic{
			Kind:    tr.kind,
			Message: tr.message,
			Line:    tok.Line(),
			Column:  tok.Column(),
		})
	}

	if tr.pops() {
		m.stack = m.stack[:len(m.stack)-1]
	}
	for i := len(tr.body) - 1; i >= 0; i-- {
		m.stack = append(m.stack, tr.body[i])
	}

	switch tr.op {
	case opMatch:
		m.recovering = false
	case opSkip:
		m.recovering = true
	case opResync:
		m.recovering = true
		m.stack = append(m.stack, m.table.Start())
	}

	if tr.advances() && m.cursor < len(m.tokens) {
		m.cursor++
	}
}
