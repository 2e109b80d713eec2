package workspace

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestToProtocolDiagnostics(t *testing.T) {
	w := New(t.TempDir())
	src := "int x = 10 @\nint y = 2;\nint z"
	f := w.UpdateFile("a.mc", []byte(src))

	got := toProtocolDiagnostics(f)
	type want struct {
		line, char protocol.UInteger
		code       string
		message    string
	}
	wants := []want{
		{0, 11, "L001", "unknown character '@'"},
		{1, 0, "S001", `expected ";", found "int"`},
		{2, 5, "S002", "unexpected end of input, assuming declaration absent"},
	}
	if len(got) != len(wants) {
		t.Fatalf("got %d diagnostics, want %d: %+v", len(got), len(wants), got)
	}
	for i, w := range wants {
		d := got[i]
		if d.Range.Start.Line != w.line || d.Range.Start.Character != w.char {
			t.Errorf("diagnostic %d at %d:%d, want %d:%d", i, d.Range.Start.Line, d.Range.Start.Character, w.line, w.char)
		}
		if d.Range.End.Character != w.char+1 {
			t.Errorf("diagnostic %d ends at %d, want %d", i, d.Range.End.Character, w.char+1)
		}
		if d.Code == nil || d.Code.Value != w.code {
			t.Errorf("diagnostic %d code = %v, want %s", i, d.Code, w.code)
		}
		if d.Message != w.message {
			t.Errorf("diagnostic %d message = %q, want %q", i, d.Message, w.message)
		}
		if d.Severity == nil || *d.Severity != protocol.DiagnosticSeverityError {
			t.Errorf("diagnostic %d severity = %v", i, d.Severity)
		}
	}
}

func TestToProtocolDiagnosticsClean(t *testing.T) {
	f := New(t.TempDir()).UpdateFile("a.mc", []byte("int x;"))
	got := toProtocolDiagnostics(f)
	if got == nil || len(got) != 0 {
		t.Errorf("toProtocolDiagnostics() = %#v, want an empty non-nil slice", got)
	}

	failed := &File{Path: "b.mc", Err: errors.New("boom")}
	got = toProtocolDiagnostics(failed)
	if len(got) != 1 || got[0].Message != "boom" || got[0].Code != nil {
		t.Errorf("toProtocolDiagnostics(failed) = %+v", got)
	}
}

func TestToProtocolDiagnosticsUTF16(t *testing.T) {
	// é is one UTF-16 unit in two bytes, 😀 two units in four bytes.
	src := "int s = 1; /* é 😀 */ @"
	f := New(t.TempDir()).UpdateFile("u.mc", []byte(src))

	got := toProtocolDiagnostics(f)
	if len(got) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %+v", len(got), got)
	}
	if c := got[0].Range.Start.Character; c != 22 {
		t.Errorf("Character = %d, want 22", c)
	}
	if end := endPosition(f.Content); end.Character != 23 {
		t.Errorf("endPosition().Character = %d, want 23", end.Character)
	}
}

func TestNotificationsBeforeInitialize(t *testing.T) {
	ls := NewLSPServer("test")
	if err := ls.initialized(nil, &protocol.InitializedParams{}); err != nil {
		t.Errorf("initialized() error = %v", err)
	}
	if err := ls.textDocumentDidOpen(nil, &protocol.DidOpenTextDocumentParams{}); err != nil {
		t.Errorf("didOpen error = %v", err)
	}
	if err := ls.textDocumentDidChange(nil, &protocol.DidChangeTextDocumentParams{}); err != nil {
		t.Errorf("didChange error = %v", err)
	}
	if err := ls.textDocumentDidClose(nil, &protocol.DidCloseTextDocumentParams{}); err != nil {
		t.Errorf("didClose error = %v", err)
	}
	if err := ls.textDocumentDidSave(nil, &protocol.DidSaveTextDocumentParams{}); err != nil {
		t.Errorf("didSave error = %v", err)
	}
}

func TestEndPosition(t *testing.T) {
	tests := []struct {
		src        string
		line, char protocol.UInteger
	}{
		{"", 0, 0},
		{"int x", 0, 5},
		{"int x;\n", 1, 0},
		{"a\nbc\ndef", 2, 3},
		{"x = 1;\n// é😀", 1, 6},
	}
	for _, tt := range tests {
		got := endPosition([]byte(tt.src))
		if got.Line != tt.line || got.Character != tt.char {
			t.Errorf("endPosition(%q) = %d:%d, want %d:%d", tt.src, got.Line, got.Character, tt.line, tt.char)
		}
	}
}

func TestURIConversion(t *testing.T) {
	path, err := uriToPath("file:///home/user/src/main%20file.mc")
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Clean("/home/user/src/main file.mc") {
		t.Errorf("uriToPath() = %q", path)
	}

	if got, _ := uriToPath("untitled:1"); got != "untitled:1" {
		t.Errorf("uriToPath(untitled) = %q", got)
	}

	uri := pathToURI("/tmp/dir/a.mc")
	if !strings.HasPrefix(uri, "file:///") || !strings.HasSuffix(uri, "/tmp/dir/a.mc") {
		t.Errorf("pathToURI() = %q", uri)
	}
	if back, _ := uriToPath(uri); back != "/tmp/dir/a.mc" {
		t.Errorf("round trip = %q", back)
	}
}
