package logger

// Logger receives progress and warning messages from the CLI.
// Generated code never goes through a Logger.
type Logger interface {
	Logf(format string, args ...interface{})
	Log(msg string)
}

// Spinner displays progress for a long-running operation.
// Implementations should be safe for single-threaded Start/Stop/Fail usage.
type Spinner interface {
	// Update changes the spinner text while running.
	Update(text string)
	// Stop stops the spinner and prints a success indicator.
	Stop()
	// Fail stops the spinner and prints a failure indicator.
	Fail()
}

// noOpSpinner is used when output is non-interactive (e.g., tests, piped output).
type noOpSpinner struct{}

func (n *noOpSpinner) Update(text string) {}
func (n *noOpSpinner) Stop()              {}
func (n *noOpSpinner) Fail()              {}

// Discard drops every message
type Discard struct{}

func (Discard) Logf(format string, args ...interface{}) {}
func (Discard) Log(msg string)                          {}

// Verbose forwards to Logger only when Enabled is set
type Verbose struct {
	Logger
	Enabled bool
}

func (v Verbose) Logf(format string, args ...interface{}) {
	if v.Enabled {
		v.Logger.Logf(format, args...)
	}
}

func (v Verbose) Log(msg string) {
	if v.Enabled {
		v.Logger.Log(msg)
	}
}
