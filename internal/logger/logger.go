package logger

import (
	"sync"

	"go.uber.org/zap"
)

// Log is the shared engine logger. It is a no-op until Init is called so
// packages can log unconditionally.
var Log = zap.NewNop()

var once sync.Once

// Init builds the production logger. Calling it more than once is harmless.
func Init() {
	once.Do(func() {
		l, err := zap.NewProduction()
		if err != nil {
			l = zap.NewExample()
		}
		Log = l
	})
}

// SetLogger swaps the shared logger, returning a func that restores the
// previous one. Mainly used by tests to observe output.
func SetLogger(l *zap.Logger) (restore func()) {
	prev := Log
	Log = l
	return func() { Log = prev }
}

// Sync flushes buffered entries.
func Sync() {
	_ = Log.Sync()
}
