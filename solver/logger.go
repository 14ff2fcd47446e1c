// SPDX-License-Identifier: MIT

package solver

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the solver package's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the solver package's logger.
// This must be called before any solve operations.
func SetLogger(l *zap.Logger) {
	logger = l
}
