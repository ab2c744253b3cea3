package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	configAdapter "github.com/witcheck/witcheck/internal/adapters/outbound/config"
	"github.com/witcheck/witcheck/internal/adapters/outbound/extractor"
	"github.com/witcheck/witcheck/internal/adapters/outbound/gitinfo"
	"github.com/witcheck/witcheck/internal/adapters/outbound/tui"
	"github.com/witcheck/witcheck/internal/application"
)

func newValidateCmd() *cobra.Command {
	var (
		wasmTools   string
		verbose     bool
		jsonOutput  bool
		failOnExtra bool
	)

	cmd := &cobra.Command{
		Use:   "validate <component> <wit-file> <world>",
		Short: "Validate a component's exports against a WIT specification",
		Long:  "Extract the WIT interface from a compiled component and verify that every interface and function the specification exports is present. Missing functions fail the build; extra functions are warnings.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			componentPath, witPath, worldName := args[0], args[1], args[2]

			cfg, err := configAdapter.New().Load(".")
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if wasmTools != "" {
				cfg.WasmTools = wasmTools
			}
			if cmd.Flags().Changed("fail-on-extra") {
				cfg.FailOnExtra = failOnExtra
			}

			logger := newLogger(verbose)
			defer func() { _ = logger.Sync() }()

			logger.Info("resolved arguments",
				zap.String("component", componentPath),
				zap.String("wit_file", witPath),
				zap.String("world", worldName),
				zap.String("wasm_tools", cfg.WasmTools),
				zap.Int("timeout_seconds", cfg.TimeoutSeconds),
			)

			ex := extractor.New(cfg.WasmTools, time.Duration(cfg.TimeoutSeconds)*time.Second, logger)
			svc := application.NewValidateService(ex, gitinfo.New(), logger)

			result, err := svc.Validate(cmd.Context(), componentPath, witPath, worldName, cfg.FailOnExtra)
			if err != nil {
				return err
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(result); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderValidation(result))
			}

			if !result.Passed {
				return fmt.Errorf("WIT validation failed: component exports don't match %s", witPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&wasmTools, "wasm-tools", "", "Path to the extraction tool (default: from .witcheck.yaml or PATH)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Echo resolved arguments and enable debug logging")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&failOnExtra, "fail-on-extra", false, "Treat extra exported functions as failures")

	return cmd
}
