// Package debug provides optional file-based debug logging.
//
// When the FLIPBOOK_DEBUG environment variable is set to a file path, debug
// messages are appended to that file. Otherwise, logging is a no-op.
package debug

import (
	"io"
	"log"
	"os"
	"sync"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "FLIPBOOK_DEBUG"

var (
	once   sync.Once
	logger *log.Logger
)

// Logger returns the shared debug logger. It discards output unless
// FLIPBOOK_DEBUG names a writable file.
func Logger() *log.Logger {
	once.Do(func() {
		logger = open(os.Getenv(EnvVar))
	})
	return logger
}

func open(path string) *log.Logger {
	if path == "" {
		return log.New(io.Discard, "", 0)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return log.New(io.Discard, "", 0)
	}
	return log.New(f, "", log.LstdFlags|log.Lmicroseconds)
}

// Log writes a formatted message to the debug logger.
func Log(format string, args ...any) {
	Logger().Printf(format, args...)
}
