package ui

import (
	"context"
	"errors"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrCanceled is returned when the user interrupts a running spinner
var ErrCanceled = errors.New("operation canceled")

// RunSpinner runs a minimal Bubble Tea spinner on stderr while executing the given action.
// The UI exits when the action completes and returns the action's error.
func RunSpinner(ctx context.Context, title string, action func() error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	m := newSpinnerModel(ctx, title, action)
	p := tea.NewProgram(m, tea.WithOutput(os.Stderr), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	return m.err
}

type actionDoneMsg struct{ err error }

type spinnerModel struct {
	title    string
	spin     spinner.Model
	result   chan error
	finished bool
	err      error
	style    lipgloss.Style
}

func newSpinnerModel(ctx context.Context, title string, action func() error) *spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := &spinnerModel{
		title:  title,
		spin:   s,
		result: make(chan error, 1),
		style:  lipgloss.NewStyle().Padding(0, 1),
	}

	// Kick off the action in the background and notify on completion
	go func() {
		m.result <- action()
	}()

	return m
}

func (m *spinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.waitForCompletion)
}

func (m *spinnerModel) waitForCompletion() tea.Msg {
	return actionDoneMsg{err: <-m.result}
}

func (m *spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.err = ErrCanceled
			m.finished = true
			return m, tea.Quit
		}
	case actionDoneMsg:
		m.err = msg.err
		m.finished = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *spinnerModel) View() string {
	if m.finished {
		if m.err != nil {
			return m.style.Render(FailureStyle.Render("✗") + " " + m.title + " (" + m.err.Error() + ")\n")
		}
		return m.style.Render(SuccessStyle.Render("✓") + " " + m.title + "\n")
	}
	return m.style.Render(m.spin.View() + " " + m.title)
}
