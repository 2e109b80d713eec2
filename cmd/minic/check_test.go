package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DefaultKira/trabalho-lexema/config"
)

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestCollectSources(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"a.mc":         "int a;",
		"sub/b.txt":    "int b;",
		"notes.md":     "# notes",
		".git/HEAD.mc": "ref",
		"extra.c":      "int c;",
	})

	paths, err := collectSources([]string{dir, filepath.Join(dir, "extra.c")}, config.Default())
	if err != nil {
		t.Fatalf("collectSources() error = %v", err)
	}
	want := []string{
		filepath.Join(dir, "a.mc"),
		filepath.Join(dir, "sub", "b.txt"),
		filepath.Join(dir, "extra.c"),
	}
	if strings.Join(paths, "\n") != strings.Join(want, "\n") {
		t.Errorf("collectSources() = %v, want %v", paths, want)
	}

	if _, err := collectSources([]string{filepath.Join(dir, "missing")}, config.Default()); err == nil {
		t.Error("collectSources(missing) error = nil")
	}

	empty := t.TempDir()
	if _, err := collectSources([]string{empty}, config.Default()); err == nil {
		t.Error("collectSources(empty dir) error = nil")
	}
}

func TestRunCheck(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.mc")
	bad := filepath.Join(dir, "bad.mc")
	writeFiles(t, dir, map[string]string{
		"good.mc": "int main() { return 0; }",
		"bad.mc":  "int x = 1",
	})

	tests := []struct {
		name    string
		args    []string
		wantErr string
		want    []string
	}{
		{
			name: "clean",
			args: []string{good},
			want: []string{good + ": ok"},
		},
		{
			name:    "with errors",
			args:    []string{dir},
			wantErr: "1 of 2 files have errors",
			want: []string{
				bad + `: end of input: S001 expected ";", found end of input`,
				bad + ": 0 lexical errors, 1 syntax error",
				good + ": ok",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			g := &globals{cfg: config.Default()}
			err := runCheck(&out, g, tt.args)
			if tt.wantErr == "" && err != nil {
				t.Fatalf("runCheck() error = %v", err)
			}
			if tt.wantErr != "" && (err == nil || err.Error() != tt.wantErr) {
				t.Fatalf("runCheck() error = %v, want %q", err, tt.wantErr)
			}
			got := strings.Split(strings.TrimSpace(out.String()), "\n")
			if strings.Join(got, "\n") != strings.Join(tt.want, "\n") {
				t.Errorf("output =\n%s\nwant\n%s", strings.Join(got, "\n"), strings.Join(tt.want, "\n"))
			}
		})
	}
}

func TestRunCheckFormat(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"a.mc": "int a;"})

	g := &globals{cfg: config.Default()}
	g.cfg.Format = "json"
	var out bytes.Buffer
	if err := runCheck(&out, g, []string{dir}); err != nil {
		t.Fatalf("runCheck() error = %v", err)
	}
	if !strings.HasPrefix(out.String(), "{") {
		t.Errorf("json output = %q", out.String())
	}

	g.cfg.Format = "xml"
	if err := runCheck(&out, g, []string{dir}); err == nil {
		t.Error("runCheck(xml) error = nil")
	}
}
