// Package notify surfaces one transient notification at a time as a
// toast bar. It is a single-slot dispatcher: showing a new notification
// immediately replaces the current one and supersedes its pending
// dismissal timer.
package notify

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/taskdeck/internal/model"
	"github.com/nhle/taskdeck/internal/theme"
)

// DefaultDuration is how long a notification stays visible.
const DefaultDuration = 5 * time.Second

// dismissMsg fires when a notification's display window elapses. The
// token identifies which notification the timer belongs to, so a timer
// for an already-replaced notification is ignored.
type dismissMsg struct {
	token int
}

// Model is the toast dispatcher component.
type Model struct {
	spec     model.NotificationSpec
	visible  bool
	token    int
	duration time.Duration
	width    int
}

// New creates a dispatcher with the given display duration.
// A non-positive duration falls back to DefaultDuration.
func New(duration time.Duration) Model {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return Model{duration: duration}
}

// Show replaces the current notification, if any, and schedules the
// auto-dismiss. The returned command must be run by the caller.
func (m *Model) Show(spec model.NotificationSpec) tea.Cmd {
	m.spec = spec
	m.visible = true
	m.token++

	token := m.token
	return tea.Tick(m.duration, func(time.Time) tea.Msg {
		return dismissMsg{token: token}
	})
}

// Update handles the dismissal timer. Triggering the action does not
// dismiss early; dismissal is purely time-driven.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if d, ok := msg.(dismissMsg); ok && d.token == m.token {
		m.visible = false
		m.spec = model.NotificationSpec{}
	}
	return m, nil
}

// Visible reports whether a notification is currently displayed.
func (m Model) Visible() bool {
	return m.visible
}

// Message returns the current notification text.
func (m Model) Message() string {
	return m.spec.Message
}

// Action returns the pending follow-up action, or nil when the current
// notification carries none or nothing is visible.
func (m Model) Action() *model.NotificationAction {
	if !m.visible {
		return nil
	}
	return m.spec.Action
}

// SetWidth updates the render width.
func (m *Model) SetWidth(width int) {
	m.width = width
}

// View renders the toast bar, or an empty string when nothing is visible.
func (m Model) View() string {
	if !m.visible {
		return ""
	}

	text := m.spec.Message
	if m.spec.Action != nil {
		hint := theme.ToastActionStyle.Render("[a] " + m.spec.Action.Label)
		text += "  " + hint
	}

	bar := theme.ToastStyle.Render(text)
	if m.width > lipgloss.Width(bar) {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, bar)
	}
	return bar
}
