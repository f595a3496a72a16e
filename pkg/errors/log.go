package errors

import (
	"os"

	"github.com/charmbracelet/log"
)

// LogHandler is an ErrorHandler that writes through a charmbracelet logger.
// Configuration errors are logged at warn level, everything else at error.
type LogHandler struct {
	// Logger receives the entries. A nil Logger writes to stderr.
	Logger *log.Logger
	// Verbose adds stack traces to the output.
	Verbose bool
}

// NewLogHandler returns a LogHandler for logger, or for a stderr logger
// when logger is nil.
func NewLogHandler(logger *log.Logger) *LogHandler {
	return &LogHandler{Logger: logger}
}

var stderrLogger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "maskbutton"})

func (h *LogHandler) logger() *log.Logger {
	if h.Logger == nil {
		return stderrLogger
	}
	return h.Logger
}

// HandleError logs a DriftError.
func (h *LogHandler) HandleError(err *DriftError) {
	if err == nil {
		return
	}
	keyvals := []any{"op", err.Op, "kind", err.Kind.String(), "err", err.Err}
	if h.Verbose && err.StackTrace != "" {
		keyvals = append(keyvals, "stack", err.StackTrace)
	}
	if err.Kind == KindConfig {
		h.logger().Warn("configuration error", keyvals...)
		return
	}
	h.logger().Error("drift error", keyvals...)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	keyvals := []any{"op", err.Op, "value", err.Value}
	if h.Verbose && err.StackTrace != "" {
		keyvals = append(keyvals, "stack", err.StackTrace)
	}
	h.logger().Error("recovered panic", keyvals...)
}
