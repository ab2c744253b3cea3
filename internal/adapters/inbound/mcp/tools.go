package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	configAdapter "github.com/witcheck/witcheck/internal/adapters/outbound/config"
	"github.com/witcheck/witcheck/internal/adapters/outbound/extractor"
	"github.com/witcheck/witcheck/internal/adapters/outbound/gitinfo"
	"github.com/witcheck/witcheck/internal/adapters/outbound/inspector"
	"github.com/witcheck/witcheck/internal/application"
	"github.com/witcheck/witcheck/internal/domain/wit"
)

// registerTools registers all witcheck MCP tools on the given server.
func registerTools(s *server.MCPServer, wasmTools string) {
	// 1. witcheck_validate
	s.AddTool(
		mcplib.NewTool("witcheck_validate",
			mcplib.WithDescription("Validate a compiled component's exported interfaces and functions against a WIT specification file. Returns the per-interface diff and verdict as JSON."),
			mcplib.WithString("component",
				mcplib.Required(),
				mcplib.Description("Path to the WebAssembly component (.wasm)"),
			),
			mcplib.WithString("wit_file",
				mcplib.Required(),
				mcplib.Description("Path to the expected WIT specification file"),
			),
			mcplib.WithString("world",
				mcplib.Description("WIT world name, carried into the report"),
			),
			mcplib.WithBoolean("fail_on_extra",
				mcplib.Description("Treat extra exported functions as failures"),
			),
		),
		handleValidate(wasmTools),
	)

	// 2. witcheck_parse_exports
	s.AddTool(
		mcplib.NewTool("witcheck_parse_exports",
			mcplib.WithDescription("Parse WIT text and return its export surface: interface names mapped to exported function names"),
			mcplib.WithString("wit_text",
				mcplib.Required(),
				mcplib.Description("WIT source text to parse"),
			),
		),
		handleParseExports(),
	)

	// 3. witcheck_inspect
	s.AddTool(
		mcplib.NewTool("witcheck_inspect",
			mcplib.WithDescription("Check that wasm artifacts are well-formed and summarize their WIT interface surface"),
			mcplib.WithString("paths",
				mcplib.Required(),
				mcplib.Description("Comma-separated paths to wasm files"),
			),
		),
		handleInspect(wasmTools),
	)
}

// newServices builds the outbound adapters and services with the effective
// tool configuration. MCP speaks over stdio, so logging stays silent.
func newServices(wasmTools string) (*application.ValidateService, *application.InspectService, error) {
	cfg, err := configAdapter.New().Load(".")
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	if wasmTools != "" {
		cfg.WasmTools = wasmTools
	}

	logger := zap.NewNop()
	ex := extractor.New(cfg.WasmTools, time.Duration(cfg.TimeoutSeconds)*time.Second, logger)
	return application.NewValidateService(ex, gitinfo.New(), logger),
		application.NewInspectService(inspector.New(logger), ex, logger),
		nil
}

func handleValidate(wasmTools string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		component, err := request.RequireString("component")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		witFile, err := request.RequireString("wit_file")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		world, _ := request.GetArguments()["world"].(string)
		failOnExtra, _ := request.GetArguments()["fail_on_extra"].(bool)

		validateSvc, _, err := newServices(wasmTools)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		result, err := validateSvc.Validate(ctx, component, witFile, world, failOnExtra)
		if err != nil {
			return errorResult(fmt.Sprintf("validation failed: %v", err)), nil
		}
		return jsonResult(result)
	}
}

func handleParseExports() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		text, err := request.RequireString("wit_text")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		exports := wit.ParseExports(text)

		// Sets flatten to sorted lists for a stable JSON shape.
		surface := make(map[string][]string, len(exports))
		for _, iface := range exports.Interfaces() {
			surface[iface] = exports.Functions(iface)
		}
		return jsonResult(surface)
	}
}

func handleInspect(wasmTools string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		raw, err := request.RequireString("paths")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		var paths []string
		for _, p := range strings.Split(raw, ",") {
			if p = strings.TrimSpace(p); p != "" {
				paths = append(paths, p)
			}
		}
		if len(paths) == 0 {
			return errorResult("paths must name at least one wasm file"), nil
		}

		_, inspectSvc, err := newServices(wasmTools)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		return jsonResult(inspectSvc.InspectAll(ctx, paths))
	}
}

// jsonResult marshals v as indented JSON text content.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns an error content result.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
