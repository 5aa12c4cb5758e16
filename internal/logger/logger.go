package logger

import (
	"os"

	"go.uber.org/zap"
)

// Log is the process-wide logger. It defaults to a no-op so packages can log
// before Init runs (and so tests don't have to set anything up).
var Log = zap.NewNop()

// Init replaces the no-op logger with a real one. Production config when
// ENV=production, human-readable development config otherwise.
func Init() {
	var (
		l   *zap.Logger
		err error
	)
	if os.Getenv("ENV") == "production" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	Log = l
}

// Sync flushes buffered log entries. Call on shutdown.
func Sync() {
	_ = Log.Sync()
}
