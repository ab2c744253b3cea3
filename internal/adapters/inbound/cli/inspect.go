package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	configAdapter "github.com/witcheck/witcheck/internal/adapters/outbound/config"
	"github.com/witcheck/witcheck/internal/adapters/outbound/extractor"
	"github.com/witcheck/witcheck/internal/adapters/outbound/inspector"
	"github.com/witcheck/witcheck/internal/adapters/outbound/tui"
	"github.com/witcheck/witcheck/internal/application"
)

func newInspectCmd() *cobra.Command {
	var (
		wasmTools  string
		verbose    bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "inspect <component> [component...]",
		Short: "Check that wasm artifacts are well-formed",
		Long:  "Inspect one or more wasm files: verify the binary header, compile core modules, and summarize the WIT interface surface when the extraction tool is available. A missing extraction tool skips the surface summary instead of failing.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configAdapter.New().Load(".")
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if wasmTools != "" {
				cfg.WasmTools = wasmTools
			}

			logger := newLogger(verbose)
			defer func() { _ = logger.Sync() }()

			ex := extractor.New(cfg.WasmTools, time.Duration(cfg.TimeoutSeconds)*time.Second, logger)
			svc := application.NewInspectService(inspector.New(logger), ex, logger)

			summary := svc.InspectAll(cmd.Context(), args)

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(summary); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderInspectSummary(summary))
			}

			if !summary.AllValid {
				return fmt.Errorf("%d of %d components failed inspection", summary.Total-summary.Valid, summary.Total)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&wasmTools, "wasm-tools", "", "Path to the extraction tool (default: from .witcheck.yaml or PATH)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
