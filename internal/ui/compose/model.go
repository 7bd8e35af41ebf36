// Package compose is the smart-post overlay: a free-text editor for
// capturing evidence about a task. Publishing reports back to the parent,
// which increments the task's post count through the store; the post body
// itself stays with the presentation layer.
package compose

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/taskdeck/internal/model"
	"github.com/nhle/taskdeck/internal/theme"
)

// PublishMsg is dispatched when the user publishes the post.
type PublishMsg struct {
	TaskID  string
	Content string
}

// CancelMsg is dispatched when the user abandons the composer; the
// uncommitted draft is discarded.
type CancelMsg struct{}

// Model is the smart-post composer overlay.
type Model struct {
	task   model.Task
	editor textarea.Model
	width  int
	height int
}

// New creates a composer for the given task.
func New(t model.Task, width, height int) Model {
	ta := textarea.New()
	ta.Placeholder = "Capture this moment: what did you do, what did you learn?"
	ta.ShowLineNumbers = false
	ta.SetWidth(width - 6)
	ta.SetHeight(height - 8)
	ta.CharLimit = 0
	ta.Focus()

	return Model{
		task:   t,
		editor: ta,
		width:  width,
		height: height,
	}
}

// Init returns the initial command for the composer.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages for the composer.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return m, func() tea.Msg { return CancelMsg{} }

		case "ctrl+s":
			content := strings.TrimSpace(m.editor.Value())
			if content == "" {
				return m, nil
			}
			taskID := m.task.ID
			return m, func() tea.Msg {
				return PublishMsg{TaskID: taskID, Content: content}
			}
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

// Insert appends assistant content to the draft, separated by a blank
// line when a draft already exists.
func (m *Model) Insert(content string) {
	current := m.editor.Value()
	if current == "" {
		m.editor.SetValue(content)
		return
	}
	m.editor.SetValue(current + "\n\n" + content)
}

// TaskID returns the id of the task the post is being written for.
func (m Model) TaskID() string {
	return m.task.ID
}

// Value returns the current draft text.
func (m Model) Value() string {
	return m.editor.Value()
}

// View renders the composer overlay.
func (m Model) View() string {
	header := theme.HeaderStyle.Render("Smart Post") + " " +
		theme.StatLabelStyle.Render(m.task.Title)
	counter := theme.StatLabelStyle.Render(
		fmt.Sprintf("%d posts attached", m.task.Posts),
	)
	hints := theme.HelpStyle.Render("ctrl+s publish | ctrl+w writing partner | esc discard")

	return theme.PanelStyle.Width(m.width - 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, header, counter, "", m.editor.View(), hints),
	)
}

// SetSize updates the composer dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.editor.SetWidth(width - 6)
	m.editor.SetHeight(height - 8)
}
