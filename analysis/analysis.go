// Package analysis runs the scanner and the parser over one source file
// and gathers everything they report.
package analysis

import (
	"fmt"
	"os"

	"github.com/DefaultKira/trabalho-lexema/minic/grammar"
	"github.com/DefaultKira/trabalho-lexema/minic/lexer"
	"github.com/DefaultKira/trabalho-lexema/minic/parser"
)

// Report is the outcome of analyzing one file. Lexical errors do not stop
// the parse; the parser sees whatever tokens the scanner produced.
type Report struct {
	File      string
	Tokens    []lexer.Token
	LexErrors []*lexer.Error
	Symbols   []lexer.Symbol
	Result    *parser.Result
}

// OK reports whether the file is free of lexical and syntax errors.
func (r *Report) OK() bool {
	return len(r.LexErrors) == 0 && r.Result != nil && r.Result.Accepted
}

func (r *Report) ErrorCount() int {
	n := len(r.LexErrors)
	if r.Result != nil {
		n += len(r.Result.Diagnostics)
	}
	return n
}

type Analyzer struct {
	parser *parser.Parser
}

// New returns an Analyzer parsing with the default grammar and the given
// parser options.
func New(opts ...parser.Option) *Analyzer {
	return &Analyzer{parser: parser.New(grammar.Default, opts...)}
}

func (a *Analyzer) Analyze(src []byte, file string) (*Report, error) {
	lx := lexer.NewLexer(src, file)
	tokens := lx.All()

	res, err := a.parser.Parse(append(tokens[:len(tokens):len(tokens)], lexer.EOFToken()))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", file, err)
	}

	return &Report{
		File:      file,
		Tokens:    tokens,
		LexErrors: lx.Errors(),
		Symbols:   lx.Symbols(),
		Result:    res,
	}, nil
}

func (a *Analyzer) AnalyzeFile(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	return a.Analyze(data, path)
}
