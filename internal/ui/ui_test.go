package ui

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getlawrence/stenum/internal/syntax"
)

func TestRenderVersions(t *testing.T) {
	SetColor(false)
	out := RenderVersions(syntax.All(), syntax.Gates())

	assert.Contains(t, out, "Syntax versions")
	lines := strings.Split(out, "\n")

	find := func(prefix string) string {
		for _, l := range lines {
			if strings.HasPrefix(l, prefix) {
				return l
			}
		}
		return ""
	}
	assert.Contains(t, find("C# 5.0"), "baseline")
	assert.Contains(t, find("C# 6.0"), "nameof, expression-body, string-interpolation")
	assert.Contains(t, find("C# 7.0"), "throw-expression")
	assert.Contains(t, find("C# 9.0*"), "target-typed-new")
}

func TestLogf_UsesOutput(t *testing.T) {
	var buf bytes.Buffer
	prev := SetOutput(&buf)
	defer SetOutput(prev)

	Logf("wrote %s\n", "A.cs")
	Log("done")
	assert.Equal(t, "wrote A.cs\ndone\n", buf.String())
}

func TestSpinnerModel_ReportsActionResult(t *testing.T) {
	boom := errors.New("boom")
	m := newSpinnerModel(context.Background(), "working", func() error { return boom })

	msg := m.waitForCompletion()
	_, cmd := m.Update(msg)
	require.NotNil(t, cmd)
	assert.ErrorIs(t, m.err, boom)
	assert.Contains(t, m.View(), "working (boom)")
}
