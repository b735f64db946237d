package mint

import (
	"log/slog"
	"sync/atomic"
)

var customLogger atomic.Pointer[slog.Logger]

// SetLogger replaces the logger used by mint and its subpackages. Passing nil
// restores the default, which follows slog.Default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		customLogger.Store(nil)
		return
	}
	customLogger.Store(l.With("component", "mint"))
}

// Logger returns the logger used by mint and its subpackages.
func Logger() *slog.Logger {
	if l := customLogger.Load(); l != nil {
		return l
	}
	return slog.Default().With("component", "mint")
}
