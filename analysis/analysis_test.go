package analysis

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DefaultKira/trabalho-lexema/minic/parser"
)

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		ok        bool
		lexErrors int
		syntax    int
	}{
		{"valid", "int main() { x = 1; }", true, 0, 0},
		{"syntax error", "int x = 10", false, 0, 1},
		{"lexical error only", "int x = 10 @ ;", false, 1, 0},
		{"both", "int x = 5e;", false, 1, 1},
		{"multiple decimal points", "int x = .5.3;", false, 1, 2},
		{"second point after digits", "int x = 1.2.3;", false, 0, 2},
		{"empty", "", true, 0, 0},
	}

	a := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := a.Analyze([]byte(tt.src), "test.mc")
			if err != nil {
				t.Fatalf("Analyze() error = %v", err)
			}
			if r.OK() != tt.ok {
				t.Errorf("OK() = %v, want %v", r.OK(), tt.ok)
			}
			if len(r.LexErrors) != tt.lexErrors {
				t.Errorf("lexical errors = %d, want %d", len(r.LexErrors), tt.lexErrors)
			}
			if len(r.Result.Diagnostics) != tt.syntax {
				t.Errorf("syntax diagnostics = %v, want %d", r.Result.Diagnostics, tt.syntax)
			}
			if r.ErrorCount() != tt.lexErrors+tt.syntax {
				t.Errorf("ErrorCount() = %d, want %d", r.ErrorCount(), tt.lexErrors+tt.syntax)
			}
			if r.File != "test.mc" {
				t.Errorf("File = %q, want test.mc", r.File)
			}
		})
	}
}

func TestAnalyzeSymbols(t *testing.T) {
	r, err := New().Analyze([]byte("int b; int a = b;"), "test.mc")
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, s := range r.Symbols {
		names = append(names, s.Name)
	}
	if got := strings.Join(names, ","); got != "a,b" {
		t.Errorf("Symbols = %s, want a,b", got)
	}
	if got := len(r.Tokens); got != 8 {
		t.Errorf("len(Tokens) = %d, want 8", got)
	}
}

func TestAnalyzeParserOptions(t *testing.T) {
	r, err := New(parser.WithMaxSteps(2)).Analyze([]byte("int x;"), "test.mc")
	if err != nil {
		t.Fatal(err)
	}
	if r.OK() {
		t.Error("OK() = true under a two-step budget")
	}
}

func TestAnalyzeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.mc")
	if err := os.WriteFile(path, []byte("int main() { return 0; }\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := New().AnalyzeFile(path)
	if err != nil {
		t.Fatalf("AnalyzeFile() error = %v", err)
	}
	if !r.OK() || r.File != path {
		t.Errorf("AnalyzeFile() = %+v", r)
	}

	if _, err := New().AnalyzeFile(filepath.Join(dir, "missing.mc")); err == nil {
		t.Error("AnalyzeFile(missing) error = nil")
	}
}
