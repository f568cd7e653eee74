package errors

import (
	"io"
	"log"
	"os"
)

// LogHandler is an ErrorHandler that logs errors with the standard logger
// format. Output goes to stderr unless Out is set.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
	// Out receives log lines. Nil means stderr.
	Out io.Writer
}

func (h *LogHandler) logger() *log.Logger {
	out := h.Out
	if out == nil {
		out = os.Stderr
	}
	return log.New(out, "", log.LstdFlags)
}

// HandleError logs an Error.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	l := h.logger()
	if h.Verbose {
		l.Printf("[flipbook %s] %s: %v (at %s)", err.Kind, err.Op, err.Err, err.Timestamp.Format("15:04:05.000"))
	} else {
		l.Printf("[flipbook %s] %s: %v", err.Kind, err.Op, err.Err)
	}
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	l := h.logger()
	if err.Op != "" {
		l.Printf("[flipbook panic] %s: %v", err.Op, err.Value)
	} else {
		l.Printf("[flipbook panic] %v", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		l.Printf("Stack trace:\n%s", err.StackTrace)
	}
}
