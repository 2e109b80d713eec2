// Package workspace keeps the analysis of every source file under a root
// directory current, either by polling the file system or through an LSP
// client.
package workspace

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/DefaultKira/trabalho-lexema/analysis"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("minic.workspace")

type Workspace struct {
	mu         sync.RWMutex
	rootDir    string
	analyzer   *analysis.Analyzer
	extensions []string
	files      map[string]*File

	listenMu sync.Mutex
	onUpdate []func(*File)
	onRemove []func(path string)
}

// File is the latest analysis of one source file. Err is set when the
// file could not be analyzed at all.
type File struct {
	Path    string
	Content []byte
	Report  *analysis.Report
	Err     error
}

type Option func(*Workspace)

func WithAnalyzer(a *analysis.Analyzer) Option {
	return func(w *Workspace) {
		w.analyzer = a
	}
}

// WithExtensions limits scans to files with the given extensions.
func WithExtensions(exts ...string) Option {
	return func(w *Workspace) {
		w.extensions = exts
	}
}

func New(rootDir string, opts ...Option) *Workspace {
	w := &Workspace{
		rootDir:    rootDir,
		extensions: []string{".mc"},
		files:      make(map[string]*File),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.analyzer == nil {
		w.analyzer = analysis.New()
	}
	return w
}

func (w *Workspace) RootDir() string {
	return w.rootDir
}

// Matches reports whether path has one of the workspace extensions.
func (w *Workspace) Matches(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range w.extensions {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}

// OnUpdate registers fn to run after a file is analyzed.
func (w *Workspace) OnUpdate(fn func(*File)) {
	w.listenMu.Lock()
	defer w.listenMu.Unlock()
	w.onUpdate = append(w.onUpdate, fn)
}

// OnRemove registers fn to run after a file leaves the workspace.
func (w *Workspace) OnRemove(fn func(path string)) {
	w.listenMu.Lock()
	defer w.listenMu.Unlock()
	w.onRemove = append(w.onRemove, fn)
}

// ScanAll analyzes every matching file below the root. Hidden
// directories are skipped.
func (w *Workspace) ScanAll() error {
	var errs []error
	err := filepath.Walk(w.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		if info.IsDir() {
			if path != w.rootDir && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if w.Matches(path) {
			if err := w.ScanFile(path); err != nil {
				errs = append(errs, err)
			}
		}
		return nil
	})
	if err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (w *Workspace) ScanFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	w.UpdateFile(path, content)
	return nil
}

// UpdateFile analyzes content as the current text of path.
func (w *Workspace) UpdateFile(path string, content []byte) *File {
	f := &File{Path: path, Content: content}
	f.Report, f.Err = w.analyzer.Analyze(content, path)
	if f.Err != nil {
		log.Errorf("analyze %s: %s", path, f.Err)
	} else {
		log.Debugf("analyzed %s: %d problems", path, f.Report.ErrorCount())
	}

	w.mu.Lock()
	w.files[path] = f
	w.mu.Unlock()

	w.listenMu.Lock()
	listeners := append([]func(*File){}, w.onUpdate...)
	w.listenMu.Unlock()
	for _, fn := range listeners {
		fn(f)
	}
	return f
}

func (w *Workspace) RemoveFile(path string) {
	w.mu.Lock()
	_, known := w.files[path]
	delete(w.files, path)
	w.mu.Unlock()
	if !known {
		return
	}
	log.Debugf("removed %s", path)

	w.listenMu.Lock()
	listeners := append([]func(string){}, w.onRemove...)
	w.listenMu.Unlock()
	for _, fn := range listeners {
		fn(path)
	}
}

func (w *Workspace) GetFile(path string) *File {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.files[path]
}

// Files returns the analyzed files ordered by path.
func (w *Workspace) Files() []*File {
	w.mu.RLock()
	out := make([]*File, 0, len(w.files))
	for _, f := range w.files {
		out = append(out, f)
	}
	w.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// ErrorCount sums lexical and syntax problems over all files; a file that
// failed to analyze counts once.
func (w *Workspace) ErrorCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	n := 0
	for _, f := range w.files {
		switch {
		case f.Err != nil:
			n++
		case f.Report != nil:
			n += f.Report.ErrorCount()
		}
	}
	return n
}
