package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/DefaultKira/trabalho-lexema/analysis"
	"github.com/DefaultKira/trabalho-lexema/minic/lexer"
)

// LineEncoder writes one problem per line in file:line:col form, lexical
// errors first, followed by a summary line.
type LineEncoder struct {
	w      io.Writer
	report *analysis.Report
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(r *analysis.Report) error {
	e.report = r
	return write(e.w, e)
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	r := e.report

	for _, le := range r.LexErrors {
		fmt.Fprintf(&sb, "%s: %s lexical: %s\n", e.location(le.Pos.Line, le.Pos.Column), lexicalCode, le.Message)
	}
	if r.Result != nil {
		for _, d := range r.Result.Diagnostics {
			fmt.Fprintf(&sb, "%s: %s %s\n", e.location(d.Line, d.Column), d.Kind.Code(), d.Message)
		}
	}

	if r.OK() {
		fmt.Fprintf(&sb, "%s: ok\n", r.File)
	} else {
		fmt.Fprintf(&sb, "%s: %s, %s\n", r.File,
			plural(len(r.LexErrors), "lexical error"),
			plural(r.ErrorCount()-len(r.LexErrors), "syntax error"))
	}

	return []byte(sb.String()), nil
}

func (e *LineEncoder) location(line, col int) string {
	if line < 0 {
		return e.report.File + ": " + lexer.Sentinel.String()
	}
	return fmt.Sprintf("%s:%d:%d", e.report.File, line, col)
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
