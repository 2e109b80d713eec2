package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/DefaultKira/trabalho-lexema/analysis"
	"github.com/DefaultKira/trabalho-lexema/config"
	"github.com/DefaultKira/trabalho-lexema/minic/grammar"
	"github.com/DefaultKira/trabalho-lexema/minic/parser"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

// globals holds the persistent flags and the configuration they resolve
// to. cfg is set before any subcommand runs.
type globals struct {
	verbosity  int
	logFile    string
	configPath string
	cfg        *config.Config
}

func main() {
	g := &globals{}

	rootCmd := &cobra.Command{
		Use:          "minic",
		Short:        "Lexical and syntax checker for a small C-like language",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().CountVarP(&g.verbosity, "verbose", "v", "increase log verbosity (repeatable)")
	rootCmd.PersistentFlags().StringVar(&g.logFile, "log", "", "write logs to this file instead of stderr")
	rootCmd.PersistentFlags().StringVar(&g.configPath, "config", "", "configuration file (default: minic.toml or minic.yaml in the working directory)")

	rootCmd.AddCommand(newCheckCmd(g))
	rootCmd.AddCommand(newLexCmd(g))
	rootCmd.AddCommand(newGrammarCmd())
	rootCmd.AddCommand(newLSPCmd(g))

	if err := rootCmd.Execute(); err != nil {
		var tableErr *grammar.TableError
		if errors.As(err, &tableErr) {
			fmt.Fprintln(os.Stderr, "the parse table is malformed; this is a bug in minic")
		}
		os.Exit(1)
	}
}

// setup loads the configuration, applies MINIC_* environment overrides and
// configures logging. Flags given on the command line win over both.
func (g *globals) setup(cmd *cobra.Command) error {
	var err error
	if g.configPath != "" {
		g.cfg, err = config.Load(g.configPath)
	} else {
		g.cfg, err = config.Discover(".")
	}
	if err != nil {
		return err
	}
	if err := g.cfg.ApplyEnv("MINIC"); err != nil {
		return fmt.Errorf("environment: %w", err)
	}

	if cmd.Flags().Changed("verbose") {
		g.cfg.Log.Verbosity = g.verbosity
	}
	if cmd.Flags().Changed("log") {
		g.cfg.Log.File = g.logFile
	}

	var path *string
	if g.cfg.Log.File != "" {
		path = &g.cfg.Log.File
	}
	commonlog.Configure(g.cfg.Log.Verbosity, path)

	if p := g.cfg.Path(); p != "" {
		commonlog.GetLogger("minic").Infof("using configuration %s", p)
	}
	return nil
}

// analyzer builds an analyzer honoring the configured step budget. Parser
// tracing is switched on at debug verbosity.
func (g *globals) analyzer() *analysis.Analyzer {
	var opts []parser.Option
	if g.cfg.MaxSteps > 0 {
		opts = append(opts, parser.WithMaxSteps(g.cfg.MaxSteps))
	}
	if g.cfg.Log.Verbosity >= 2 {
		opts = append(opts, parser.WithTrace(true))
	}
	return analysis.New(opts...)
}
