package logger

import (
	"fmt"
	"io"
	"os"
)

// StdoutLogger writes messages to Out, or to stderr when Out is nil so that
// generated code on stdout stays clean.
type StdoutLogger struct {
	Out io.Writer
}

func (l *StdoutLogger) writer() io.Writer {
	if l.Out == nil {
		return os.Stderr
	}
	return l.Out
}

func (l *StdoutLogger) Logf(format string, args ...interface{}) {
	fmt.Fprintf(l.writer(), format, args...)
}

func (l *StdoutLogger) Log(msg string) { fmt.Fprintln(l.writer(), msg) }
