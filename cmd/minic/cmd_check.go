package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"

	"github.com/DefaultKira/trabalho-lexema/config"
	"github.com/DefaultKira/trabalho-lexema/format"
	"github.com/DefaultKira/trabalho-lexema/workspace"
	"github.com/spf13/cobra"
)

func newCheckCmd(g *globals) *cobra.Command {
	var outputFormat string
	var maxSteps int
	var watch bool

	cmd := &cobra.Command{
		Use:   "check <path>...",
		Short: "Scan and parse source files, reporting lexical and syntax errors",
		Long: `Scan and parse each file, or every matching file below each directory.
Lexical errors do not stop the parse: the parser runs over whatever tokens
the scanner produced. The command fails when any file has errors.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("format") {
				g.cfg.Format = outputFormat
			}
			if cmd.Flags().Changed("max-steps") {
				g.cfg.MaxSteps = maxSteps
			}
			if err := g.cfg.Validate(); err != nil {
				return err
			}

			if watch {
				return runWatch(cmd.Context(), cmd.OutOrStdout(), g, args)
			}
			return runCheck(cmd.OutOrStdout(), g, args)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format ("+strings.Join(format.Names(), ", ")+")")
	cmd.Flags().IntVar(&maxSteps, "max-steps", 0, "parser step budget (0 for the default)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "keep re-checking files as they change")

	return cmd
}

func runCheck(w io.Writer, g *globals, args []string) error {
	paths, err := collectSources(args, g.cfg)
	if err != nil {
		return err
	}

	enc, err := format.New(g.cfg.Format, w)
	if err != nil {
		return err
	}

	analyzer := g.analyzer()
	failed := 0
	for _, path := range paths {
		report, err := analyzer.AnalyzeFile(path)
		if err != nil {
			return fmt.Errorf("check %s: %w", path, err)
		}
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		if !report.OK() {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files have errors", failed, len(paths))
	}
	return nil
}

// collectSources expands directories to the files below them that match
// the configured extensions. Files named explicitly are always kept.
func collectSources(args []string, cfg *config.Config) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", arg, err)
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}

		err = filepath.Walk(arg, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				if path != arg && strings.HasPrefix(info.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if cfg.Matches(path) {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", arg, err)
		}
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("no source files with extensions %s", strings.Join(cfg.Extensions, ", "))
	}
	return paths, nil
}

// runWatch polls each directory argument and prints a fresh report
// whenever a file changes, until interrupted.
func runWatch(ctx context.Context, w io.Writer, g *globals, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	enc, err := format.New(g.cfg.Format, w)
	if err != nil {
		return err
	}
	analyzer := g.analyzer()

	// Watchers poll concurrently; mu serializes their output.
	var mu sync.Mutex
	var watchers []*workspace.FileWatcher
	for _, dir := range args {
		info, err := os.Stat(dir)
		if err != nil {
			return fmt.Errorf("stat %s: %w", dir, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("watch %s: not a directory", dir)
		}

		ws := workspace.New(dir,
			workspace.WithAnalyzer(analyzer),
			workspace.WithExtensions(g.cfg.Extensions...),
		)
		ws.OnUpdate(func(f *workspace.File) {
			mu.Lock()
			defer mu.Unlock()
			if f.Err != nil {
				fmt.Fprintf(w, "%s: %s\n", f.Path, f.Err)
				return
			}
			if err := enc.Encode(f.Report); err != nil {
				fmt.Fprintf(w, "%s: encode: %s\n", f.Path, err)
			}
		})
		ws.OnRemove(func(path string) {
			mu.Lock()
			defer mu.Unlock()
			fmt.Fprintf(w, "%s: removed\n", path)
		})

		watchers = append(watchers, workspace.NewFileWatcher(ws, g.cfg.Watch.Interval))
	}

	for _, fw := range watchers {
		fw.Start()
		defer fw.Stop()
	}

	<-ctx.Done()
	return nil
}
