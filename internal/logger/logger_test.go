package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStdoutLogger_WritesToOut(t *testing.T) {
	var buf bytes.Buffer
	l := &StdoutLogger{Out: &buf}

	l.Logf("generated %s\n", "CowboyType.cs")
	l.Log("done")

	assert.Equal(t, "generated CowboyType.cs\ndone\n", buf.String())
}

func TestVerbose(t *testing.T) {
	var buf bytes.Buffer
	base := &StdoutLogger{Out: &buf}

	Verbose{Logger: base}.Log("hidden")
	Verbose{Logger: base, Enabled: true}.Logf("shown %d\n", 1)

	assert.Equal(t, "shown 1\n", buf.String())
}

func TestUILogger_WithoutSpinner(t *testing.T) {
	var buf bytes.Buffer
	l := &UILogger{out: &buf}

	l.Log("plain")
	assert.Equal(t, "plain\n", buf.String())
}

func TestUILogger_SpinnerCapturesLines(t *testing.T) {
	var buf bytes.Buffer
	l := &UILogger{out: &buf}

	s := l.StartSpinner("working")
	l.Logf("step %d\nof many\n", 2)
	s.Stop()

	l.Log("after")
	assert.Contains(t, buf.String(), "after\n")
	assert.NotContains(t, buf.String(), "step 2\n")
}

func TestStartSpinner_NonInteractive(t *testing.T) {
	s := StartSpinner(Discard{}, "x")
	_, ok := s.(*noOpSpinner)
	assert.True(t, ok)
}
