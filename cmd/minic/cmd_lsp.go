package main

import (
	"github.com/DefaultKira/trabalho-lexema/workspace"
	"github.com/spf13/cobra"
)

func newLSPCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			server := workspace.NewLSPServer(version,
				workspace.WithAnalyzer(g.analyzer()),
				workspace.WithExtensions(g.cfg.Extensions...),
			)
			return server.RunStdio()
		},
	}
}
