package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/DefaultKira/trabalho-lexema/analysis"
)

// TokenEncoder dumps the scanner's view of a report: the token list, the
// symbol table and the lexical errors.
type TokenEncoder struct {
	w      io.Writer
	report *analysis.Report
}

func NewTokenEncoder(w io.Writer) *TokenEncoder {
	return &TokenEncoder{w: w}
}

func (e *TokenEncoder) Encode(r *analysis.Report) error {
	e.report = r
	return write(e.w, e)
}

func (e *TokenEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	r := e.report

	sb.WriteString("tokens:\n")
	if len(r.Tokens) == 0 {
		sb.WriteString("  (none)\n")
	}
	for _, tok := range r.Tokens {
		fmt.Fprintf(&sb, "  %-8s %-14s %s\n", tok.Pos, tok.Kind, tok.Literal)
	}

	sb.WriteString("symbols:\n")
	if len(r.Symbols) == 0 {
		sb.WriteString("  (none)\n")
	}
	for _, s := range r.Symbols {
		fmt.Fprintf(&sb, "  %-20s first seen at %s\n", s.Name, s.Pos)
	}

	sb.WriteString("lexical errors:\n")
	if len(r.LexErrors) == 0 {
		sb.WriteString("  (none)\n")
	}
	for _, le := range r.LexErrors {
		fmt.Fprintf(&sb, "  %s\n", le)
	}

	return []byte(sb.String()), nil
}
