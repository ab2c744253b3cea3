package cli

import "go.uber.org/zap"

// newLogger returns a development logger under --verbose and a nop logger
// otherwise, so quiet runs emit nothing but the report.
func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
