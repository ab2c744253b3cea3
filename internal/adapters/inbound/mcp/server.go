package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewWitcheckMCPServer creates a new MCP server with all witcheck tools
// registered. wasmTools overrides the extraction tool path; empty means the
// .witcheck.yaml / PATH default.
func NewWitcheckMCPServer(wasmTools string) *server.MCPServer {
	s := server.NewMCPServer(
		"witcheck",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, wasmTools)

	return s
}
