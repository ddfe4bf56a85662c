package ui

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	outMu sync.Mutex
	out   io.Writer = os.Stderr
)

// SetOutput redirects Log and Logf, returning the previous writer
func SetOutput(w io.Writer) io.Writer {
	outMu.Lock()
	defer outMu.Unlock()
	prev := out
	out = w
	return prev
}

// Logf logs a formatted message to stderr so generated code on stdout stays clean.
func Logf(format string, args ...interface{}) {
	outMu.Lock()
	defer outMu.Unlock()
	fmt.Fprintf(out, format, args...)
}

// Log writes a plain message with newline semantics.
func Log(msg string) {
	Logf("%s\n", msg)
}

// Warnf logs a styled warning line
func Warnf(format string, args ...interface{}) {
	Log(WarningStyle.Render("warning: ") + fmt.Sprintf(format, args...))
}
