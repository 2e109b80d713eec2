package workspace

import (
	"bytes"
	"net/url"
	"path/filepath"
	"strings"
	"unicode/utf16"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "minic"

var lspLog = commonlog.GetLogger("minic.lsp")

// LSPServer publishes lexical and syntax diagnostics for every open or
// workspace file.
type LSPServer struct {
	// workspace is nil until initialize; document notifications that
	// arrive earlier are dropped.
	workspace *Workspace
	opts      []Option
	handler   protocol.Handler
	server    *server.Server
	version   string
}

// NewLSPServer creates a server. The workspace is created on initialize,
// rooted at the client's root, with opts applied.
func NewLSPServer(version string, opts ...Option) *LSPServer {
	ls := &LSPServer{
		version: version,
		opts:    opts,
	}

	ls.handler = protocol.Handler{
		Initialize:            ls.initialize,
		Initialized:           ls.initialized,
		Shutdown:              ls.shutdown,
		SetTrace:              ls.setTrace,
		TextDocumentDidOpen:   ls.textDocumentDidOpen,
		TextDocumentDidChange: ls.textDocumentDidChange,
		TextDocumentDidClose:  ls.textDocumentDidClose,
		TextDocumentDidSave:   ls.textDocumentDidSave,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *LSPServer) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *LSPServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	rootDir := "."
	if params.RootPath != nil && *params.RootPath != "" {
		rootDir = *params.RootPath
	} else if params.RootURI != nil && *params.RootURI != "" {
		if path, err := uriToPath(*params.RootURI); err == nil {
			rootDir = path
		}
	}
	lspLog.Infof("initialize: root %s", rootDir)

	ls.workspace = New(rootDir, ls.opts...)

	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *LSPServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	if ls.workspace == nil {
		return nil
	}
	if err := ls.workspace.ScanAll(); err != nil {
		lspLog.Warningf("scan workspace: %s", err)
	}
	for _, f := range ls.workspace.Files() {
		ls.publish(ctx, f)
	}
	return nil
}

func (ls *LSPServer) shutdown(ctx *glsp.Context) error {
	lspLog.Info("shutdown")
	return nil
}

func (ls *LSPServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *LSPServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	if ls.workspace == nil {
		return nil
	}
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	ls.publish(ctx, ls.workspace.UpdateFile(path, []byte(params.TextDocument.Text)))
	return nil
}

func (ls *LSPServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if ls.workspace == nil {
		return nil
	}
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			ls.publish(ctx, ls.workspace.UpdateFile(path, []byte(textChange.Text)))
		}
	}
	return nil
}

// textDocumentDidClose falls back to the file on disk, or clears the
// diagnostics when there is none.
func (ls *LSPServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	if ls.workspace == nil {
		return nil
	}
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if err := ls.workspace.ScanFile(path); err != nil {
		ls.workspace.RemoveFile(path)
		ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
			URI:         params.TextDocument.URI,
			Diagnostics: []protocol.Diagnostic{},
		})
		return nil
	}
	ls.publish(ctx, ls.workspace.GetFile(path))
	return nil
}

func (ls *LSPServer) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if ls.workspace == nil {
		return nil
	}
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if params.Text != nil {
		ls.publish(ctx, ls.workspace.UpdateFile(path, []byte(*params.Text)))
	} else if err := ls.workspace.ScanFile(path); err == nil {
		ls.publish(ctx, ls.workspace.GetFile(path))
	}
	return nil
}

func (ls *LSPServer) publish(ctx *glsp.Context, f *File) {
	if f == nil {
		return
	}
	diags := toProtocolDiagnostics(f)
	lspLog.Debugf("publish %s: %d diagnostics", f.Path, len(diags))
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         pathToURI(f.Path),
		Diagnostics: diags,
	})
}

// toProtocolDiagnostics converts a file's problems to LSP diagnostics.
// Problems at the end of input are placed after the last character.
func toProtocolDiagnostics(f *File) []protocol.Diagnostic {
	out := []protocol.Diagnostic{}
	if f.Err != nil {
		out = append(out, newDiagnostic(protocol.Position{}, "", f.Err.Error()))
		return out
	}
	if f.Report == nil {
		return out
	}

	end := endPosition(f.Content)
	at := func(line, col int) protocol.Position {
		if line < 1 || col < 1 {
			return end
		}
		return protocol.Position{Line: protocol.UInteger(line - 1), Character: character(f.Content, line-1, col)}
	}

	for _, e := range f.Report.LexErrors {
		out = append(out, newDiagnostic(at(e.Pos.Line, e.Pos.Column), "L001", e.Message))
	}
	if f.Report.Result != nil {
		for _, d := range f.Report.Result.Diagnostics {
			out = append(out, newDiagnostic(at(d.Line, d.Column), d.Kind.Code(), d.Message))
		}
	}
	return out
}

func newDiagnostic(pos protocol.Position, code, message string) protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError
	source := lsName
	d := protocol.Diagnostic{
		Range: protocol.Range{
			Start: pos,
			End:   protocol.Position{Line: pos.Line, Character: pos.Character + 1},
		},
		Severity: &severity,
		Source:   &source,
		Message:  message,
	}
	if code != "" {
		d.Code = &protocol.IntegerOrString{Value: code}
	}
	return d
}

func endPosition(content []byte) protocol.Position {
	line := bytes.Count(content, []byte("\n"))
	last := content[bytes.LastIndexByte(content, '\n')+1:]
	return protocol.Position{Line: protocol.UInteger(line), Character: utf16Len(last)}
}

// character converts a 1-based byte column on a 0-based line of content
// to the UTF-16 offset LSP positions count in.
func character(content []byte, line, col int) protocol.UInteger {
	start := 0
	for i := 0; i < line; i++ {
		nl := bytes.IndexByte(content[start:], '\n')
		if nl < 0 {
			return protocol.UInteger(col - 1)
		}
		start += nl + 1
	}
	end := min(start+col-1, len(content))
	return utf16Len(content[start:end])
}

func utf16Len(b []byte) protocol.UInteger {
	n := 0
	for _, r := range string(b) {
		n += utf16.RuneLen(r)
	}
	return protocol.UInteger(n)
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func pathToURI(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(path)}).String()
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
