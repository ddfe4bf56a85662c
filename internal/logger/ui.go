package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
)

// UILogger folds log lines into a spinner while one is running
type UILogger struct {
	mu      sync.Mutex
	out     io.Writer
	spinner *uiSpinner
}

// NewUILogger creates a logger rendering on stderr
func NewUILogger() *UILogger {
	return &UILogger{out: os.Stderr}
}

// IsInteractive reports whether stderr is attached to a terminal.
// Used to decide when to use interactive UI elements like spinners.
func IsInteractive() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// StartSpinner returns a spinner, or a no-op one when the output is not a terminal
func StartSpinner(l Logger, text string) Spinner {
	if ui, ok := l.(*UILogger); ok && IsInteractive() {
		return ui.StartSpinner(text)
	}
	return &noOpSpinner{}
}

func (l *UILogger) Logf(format string, args ...interface{}) {
	l.mu.Lock()
	s := l.spinner
	l.mu.Unlock()
	if s != nil {
		s.Update(singleLine(fmt.Sprintf(format, args...)))
		return
	}
	fmt.Fprintf(l.out, format, args...)
}

func (l *UILogger) Log(msg string) {
	l.mu.Lock()
	s := l.spinner
	l.mu.Unlock()
	if s != nil {
		s.Update(singleLine(msg))
		return
	}
	fmt.Fprintln(l.out, msg)
}

func singleLine(text string) string {
	text = strings.TrimSuffix(text, "\n")
	return strings.ReplaceAll(text, "\n", " ")
}

// uiSpinner animates a single status line from a background goroutine
type uiSpinner struct {
	parent  *UILogger
	mu      sync.Mutex
	text    string
	stopped chan struct{}
	exited  chan struct{}
	failed  bool
}

func (l *UILogger) StartSpinner(text string) Spinner {
	l.mu.Lock()
	// stop previous spinner if exists
	if l.spinner != nil {
		l.spinner.internalStop(false)
		l.spinner = nil
	}
	s := &uiSpinner{parent: l, text: text, stopped: make(chan struct{}), exited: make(chan struct{})}
	l.spinner = s
	l.mu.Unlock()
	go s.loop()
	return s
}

func (s *uiSpinner) loop() {
	defer close(s.exited)
	frames := []rune{'⠋', '⠙', '⠹', '⠸', '⠼', '⠴', '⠦', '⠧', '⠇', '⠏'}
	out := s.parent.out
	i := 0
	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()
	clear := func() { fmt.Fprint(out, "\r\033[2K") }
	for {
		select {
		case <-s.stopped:
			clear()
			s.mu.Lock()
			failed, text := s.failed, s.text
			s.mu.Unlock()
			if failed {
				fmt.Fprintf(out, "✗ %s\n", text)
			}
			return
		case <-ticker.C:
			s.mu.Lock()
			text := s.text
			s.mu.Unlock()
			clear()
			fmt.Fprintf(out, "%c %s", frames[i%len(frames)], text)
			i++
		}
	}
}

func (s *uiSpinner) Update(text string) {
	s.mu.Lock()
	s.text = text
	s.mu.Unlock()
}

func (s *uiSpinner) internalStop(failed bool) {
	s.mu.Lock()
	s.failed = failed
	s.mu.Unlock()
	select {
	case <-s.stopped:
	default:
		close(s.stopped)
	}
	<-s.exited
}

func (s *uiSpinner) detach() {
	s.parent.mu.Lock()
	if s.parent.spinner == s {
		s.parent.spinner = nil
	}
	s.parent.mu.Unlock()
}

func (s *uiSpinner) Stop() {
	s.internalStop(false)
	s.detach()
}

func (s *uiSpinner) Fail() {
	s.internalStop(true)
	s.detach()
}
