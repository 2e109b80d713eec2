package main

import (
	"fmt"

	"github.com/DefaultKira/trabalho-lexema/format"
	"github.com/spf13/cobra"
)

func newLexCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "lex <file>",
		Short: "Dump the tokens, symbol table and lexical errors of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := g.analyzer().AnalyzeFile(args[0])
			if err != nil {
				return err
			}

			enc := format.NewTokenEncoder(cmd.OutOrStdout())
			if err := enc.Encode(report); err != nil {
				return fmt.Errorf("encode: %w", err)
			}

			if n := len(report.LexErrors); n > 0 {
				return fmt.Errorf("%s: %d lexical error(s)", args[0], n)
			}
			return nil
		},
	}
}
