// Package tui is a terminal front end for a single session timer.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ichscheine/goAIME-sub001/internal/sessiontimer"
)

// Options configures the timer UI.
type Options struct {
	Timer   *sessiontimer.Timer
	Title   string
	Refresh time.Duration // redraw interval, defaults to the timer tick
}

// Model is the Bubble Tea model. It owns its timer and closes it on quit.
type Model struct {
	timer    *sessiontimer.Timer
	title    string
	refresh  time.Duration
	keys     keyMap
	help     help.Model
	width    int
	quitting bool
}

func New(opts Options) Model {
	refresh := opts.Refresh
	if refresh <= 0 {
		refresh = sessiontimer.DefaultTickInterval
	}
	title := opts.Title
	if title == "" {
		title = string(opts.Timer.Mode())
	}
	return Model{
		timer:   opts.Timer,
		title:   title,
		refresh: refresh,
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
}

type tickMsg time.Time

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.refresh)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		if m.quitting {
			return m, nil
		}
		return m, tickCmd(m.refresh)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.timer.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Start):
		m.timer.Start()
	case key.Matches(msg, m.keys.Pause):
		m.timer.Pause()
	case key.Matches(msg, m.keys.Stop):
		m.timer.Stop()
	case key.Matches(msg, m.keys.Reset):
		m.timer.Reset()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// Status describes the timer state shown under the display.
func (m Model) Status() string {
	switch {
	case m.timer.IsComplete():
		return "complete"
	case m.timer.IsRunning():
		return "running"
	default:
		return "paused"
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var status string
	switch s := m.Status(); s {
	case "complete":
		status = completeStyle.Render("time's up")
	case "running":
		status = runningStyle.Render(s)
	default:
		status = pausedStyle.Render(s)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(displayStyle.Render(m.timer.FormatDisplay()))
	b.WriteString("\n")
	b.WriteString(status)
	if m.timer.Mode() == sessiontimer.Countdown {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  of %s", sessiontimer.Format(m.timer.InitialTime()))))
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	if m.width > 0 {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, b.String())
	}
	return b.String()
}

// Run shows the UI until the user quits or ctx is cancelled. The timer is
// closed either way.
func Run(ctx context.Context, opts Options) error {
	defer opts.Timer.Close()

	p := tea.NewProgram(New(opts), tea.WithContext(ctx), tea.WithAltScreen())
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
