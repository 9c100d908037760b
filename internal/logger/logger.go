// README: Structured JSON logger writing to stdout.
package logger

import (
	"fmt"

	"go.uber.org/zap"
)

func New(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"stdout"}
	config.Level = lvl
	return config.Build()
}
