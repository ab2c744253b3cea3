package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/witcheck/witcheck/internal/adapters/inbound/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the witcheck MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var wasmTools string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start witcheck MCP server (stdio)",
		Long:  "Start the witcheck MCP server using stdio transport. This lets AI coding assistants validate component exports and inspect wasm artifacts during a build conversation.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := mcpadapter.NewWitcheckMCPServer(wasmTools)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&wasmTools, "wasm-tools", "", "Path to the extraction tool (default: from .witcheck.yaml or PATH)")

	return cmd
}
