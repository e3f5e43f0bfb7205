package errors

import (
	"fmt"
	"io"
	"os"
)

// LogHandler is an ErrorHandler that logs errors to stderr.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
	// Out overrides the destination. Nil means os.Stderr.
	Out io.Writer
}

func (h *LogHandler) out() io.Writer {
	if h.Out != nil {
		return h.Out
	}
	return os.Stderr
}

// HandleError logs a TweenError. Unknown curve reports are printed as
// warnings since the animator has already substituted a fallback.
func (h *LogHandler) HandleError(err *TweenError) {
	if err == nil {
		return
	}
	w := h.out()
	label := "tween error"
	if err.Kind == KindCurve {
		label = "tween warning"
	}
	if h.Verbose {
		fmt.Fprintf(w, "[%s] %s [%s] at %s: %v\n", label, err.Op, err.Kind,
			err.Timestamp.Format("15:04:05.000"), err.Err)
	} else {
		fmt.Fprintf(w, "[%s] %s: %v\n", label, err.Op, err.Err)
	}
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	w := h.out()
	if err.Op != "" {
		fmt.Fprintf(w, "[tween panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(w, "[tween panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}
