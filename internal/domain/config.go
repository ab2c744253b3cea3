package domain

import "fmt"

// Config holds validator settings loaded from .witcheck.yaml. Flags override
// config values; config values override defaults.
type Config struct {
	// WasmTools is the extraction tool invoked as
	// "<wasm_tools> component wit <component>". Resolved via PATH when not
	// absolute.
	WasmTools string `yaml:"wasm_tools"`

	// TimeoutSeconds bounds a single extraction-tool invocation.
	TimeoutSeconds int `yaml:"timeout_seconds"`

	// FailOnExtra escalates extra exported functions from warnings to
	// validation failures.
	FailOnExtra bool `yaml:"fail_on_extra"`
}

// DefaultConfig returns the settings used when no .witcheck.yaml exists.
func DefaultConfig() Config {
	return Config{
		WasmTools:      "wasm-tools",
		TimeoutSeconds: 30,
	}
}

// Validate rejects configs that would make every run fail in confusing ways.
func (c Config) Validate() error {
	if c.WasmTools == "" {
		return fmt.Errorf("wasm_tools must not be empty")
	}
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout_seconds must be positive, got %d", c.TimeoutSeconds)
	}
	return nil
}
