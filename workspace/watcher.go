package workspace

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// FileWatcher polls the workspace root and re-analyzes files whose
// modification time moved forward. Files that disappear are removed.
type FileWatcher struct {
	workspace    *Workspace
	stopCh       chan struct{}
	doneCh       chan struct{}
	stopOnce     sync.Once
	pollInterval time.Duration
	modTimes     map[string]time.Time
}

func NewFileWatcher(w *Workspace, interval time.Duration) *FileWatcher {
	if interval <= 0 {
		interval = time.Second
	}
	return &FileWatcher{
		workspace:    w,
		stopCh:       make(chan struct{}),
		doneCh:       make(chan struct{}),
		pollInterval: interval,
		modTimes:     make(map[string]time.Time),
	}
}

func (fw *FileWatcher) Start() {
	go fw.run()
}

// Stop ends polling and waits for an in-flight scan to finish. It is safe
// to call more than once.
func (fw *FileWatcher) Stop() {
	fw.stopOnce.Do(func() {
		close(fw.stopCh)
		<-fw.doneCh
	})
}

func (fw *FileWatcher) run() {
	defer close(fw.doneCh)

	ticker := time.NewTicker(fw.pollInterval)
	defer ticker.Stop()

	fw.scan()

	for {
		select {
		case <-fw.stopCh:
			return
		case <-ticker.C:
			fw.scan()
		}
	}
}

func (fw *FileWatcher) scan() {
	current := make(map[string]bool)
	root := fw.workspace.RootDir()

	filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if path != root && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !fw.workspace.Matches(path) {
			return nil
		}

		current[path] = true

		lastMod, known := fw.modTimes[path]
		if !known || info.ModTime().After(lastMod) {
			fw.modTimes[path] = info.ModTime()
			if err := fw.workspace.ScanFile(path); err != nil {
				log.Warningf("scan %s: %s", path, err)
			}
		}
		return nil
	})

	for path := range fw.modTimes {
		if !current[path] {
			delete(fw.modTimes, path)
			fw.workspace.RemoveFile(path)
		}
	}
}
