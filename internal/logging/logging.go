// Package logging builds facet's debug logger. The statusline owns stdout and
// must keep stderr quiet too, so logging is file-only and disabled unless a
// path is configured (or FACET_DEBUG points somewhere).
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger writing JSON lines to path, or a nop logger when path
// is empty or the file cannot be opened. Statusline rendering must never fail
// because its debug log is broken.
func New(path string) *zap.Logger {
	if path == "" {
		return zap.NewNop()
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
