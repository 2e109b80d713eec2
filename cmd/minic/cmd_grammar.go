package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/DefaultKira/trabalho-lexema/minic/grammar"
	"github.com/spf13/cobra"
)

func newGrammarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "Inspect the grammar and its parse table",
	}

	cmd.AddCommand(newGrammarRulesCmd())
	cmd.AddCommand(newGrammarTableCmd())
	cmd.AddCommand(newGrammarSetsCmd())
	cmd.AddCommand(newGrammarEbnfCmd())
	cmd.AddCommand(newGrammarCheckCmd())

	return cmd
}

func newGrammarRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the productions with the lookahead terminals that select them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for i, r := range grammar.Default.Rules() {
				fmt.Fprintf(w, "%3d  %-50s %s\n", i+1, r, grammar.SetOf(r.Lookahead...))
			}
			for _, s := range grammar.Default.Syncs() {
				fmt.Fprintf(w, "sync %-50s %s\n", s.Head, grammar.SetOf(s.Lookahead...))
			}
			return nil
		},
	}
}

func newGrammarTableCmd() *cobra.Command {
	var head string

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the non-empty cells of the parse table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			nts := grammar.NonTerminals()
			if head != "" {
				nt, ok := lookupNonTerminal(head)
				if !ok {
					return fmt.Errorf("unknown non-terminal: %s", head)
				}
				nts = []grammar.NonTerminal{nt}
			}
			printTable(cmd.OutOrStdout(), grammar.Default, nts)
			return nil
		},
	}

	cmd.Flags().StringVar(&head, "head", "", "only print the row of this non-terminal")

	return cmd
}

func printTable(w io.Writer, t *grammar.Table, nts []grammar.NonTerminal) {
	for _, nt := range nts {
		fmt.Fprintf(w, "%s:\n", nt)
		for _, term := range grammar.Terminals() {
			if a, ok := t.Lookup(nt, term); ok {
				fmt.Fprintf(w, "  %-12s %s\n", term, a)
			}
		}
	}
}

func lookupNonTerminal(name string) (grammar.NonTerminal, bool) {
	for _, nt := range grammar.NonTerminals() {
		if strings.EqualFold(nt.String(), name) {
			return nt, true
		}
	}
	return 0, false
}

func newGrammarSetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sets",
		Short: "Print the nullable, FIRST and FOLLOW sets of every non-terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			sets := grammar.Analyze(grammar.Default.Start(), grammar.Default.Rules())
			for _, nt := range grammar.NonTerminals() {
				nullable := ""
				if sets.Nullable[nt] {
					nullable = " (nullable)"
				}
				fmt.Fprintf(w, "%s%s\n", nt, nullable)
				fmt.Fprintf(w, "  first  %s\n", sets.First[nt])
				fmt.Fprintf(w, "  follow %s\n", sets.Follow[nt])
			}
			return nil
		},
	}
}

func newGrammarEbnfCmd() *cobra.Command {
	var verify bool

	cmd := &cobra.Command{
		Use:   "ebnf",
		Short: "Print the grammar in EBNF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), strings.TrimPrefix(grammar.EBNF, "\n"))
			if verify {
				return grammar.VerifyEBNF(grammar.Default)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&verify, "verify", false, "also verify the EBNF against the parse table")

	return cmd
}

func newGrammarCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Cross-check the parse table against its FIRST and FOLLOW sets and the EBNF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := grammar.Default.Validate(); err != nil {
				return err
			}
			if err := grammar.VerifyEBNF(grammar.Default); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d non-terminals, %d productions\n",
				len(grammar.NonTerminals()), len(grammar.Default.Rules()))
			return nil
		},
	}
}
