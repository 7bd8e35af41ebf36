package chat

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/taskdeck/internal/mentor"
	"github.com/nhle/taskdeck/internal/theme"
)

// CloseMsg signals the parent to close the chat panel.
type CloseMsg struct{}

// InsertMsg asks the parent to insert assistant content into the
// smart-post composer, when one is open.
type InsertMsg struct {
	Content string
}

// replyMsg delivers the simulated assistant reply after its delay.
type replyMsg struct {
	content string
}

// displayMessage represents one message in the conversation viewport.
type displayMessage struct {
	Role    string
	Content string
}

// Model is the mentor chat panel. The conversation is simulated: every
// user message receives the canned reply for the current mode after a
// short delay.
type Model struct {
	mode      mentor.Mode
	taskTitle string
	input     textarea.Model
	viewport  viewport.Model
	messages  []displayMessage
	thinking  bool
	actionIdx int
	width     int
	height    int
}

// New creates a chat panel in the given mode, seeded with the mode's
// greeting for the given task.
func New(mode mentor.Mode, taskTitle string, width, height int) Model {
	ta := textarea.New()
	ta.Placeholder = "Ask about your task..."
	if mode == mentor.ModeWritingPartner {
		ta.Placeholder = "Ask your writing partner..."
	}
	ta.Prompt = "> "
	ta.ShowLineNumbers = false
	ta.SetWidth(width - 4)
	ta.SetHeight(3)
	ta.CharLimit = 2000
	ta.Focus()

	vpHeight := height - 9 // input area, quick actions, borders
	if vpHeight < 4 {
		vpHeight = 4
	}

	vp := viewport.New(width-4, vpHeight)
	vp.Style = lipgloss.NewStyle()

	m := Model{
		mode:      mode,
		taskTitle: taskTitle,
		input:     ta,
		viewport:  vp,
		width:     width,
		height:    height,
	}
	m.messages = append(m.messages, displayMessage{
		Role:    "Mentor",
		Content: mentor.Greeting(mode, taskTitle),
	})
	m.refreshViewport()
	return m
}

// Init returns the initial command for the chat panel.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages for the chat panel.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		m.thinking = false
		m.messages = append(m.messages, displayMessage{
			Role:    "Mentor",
			Content: msg.content,
		})
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	var cmds []tea.Cmd

	var taCmd tea.Cmd
	m.input, taCmd = m.input.Update(msg)
	if taCmd != nil {
		cmds = append(cmds, taCmd)
	}

	var vpCmd tea.Cmd
	m.viewport, vpCmd = m.viewport.Update(msg)
	if vpCmd != nil {
		cmds = append(cmds, vpCmd)
	}

	return m, tea.Batch(cmds...)
}

// handleKeyMsg processes keyboard input for the chat panel.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, func() tea.Msg { return CloseMsg{} }

	case "enter":
		if m.thinking {
			return m, nil
		}
		text := strings.TrimSpace(m.input.Value())
		if text == "" {
			return m, nil
		}
		return m.send(text)

	case "ctrl+k":
		// Cycle a quick-action suggestion into the input.
		actions := mentor.QuickActions(m.mode)
		m.input.SetValue(actions[m.actionIdx%len(actions)])
		m.actionIdx++
		return m, nil

	case "ctrl+y":
		// Hand the last assistant message to the composer.
		for i := len(m.messages) - 1; i >= 0; i-- {
			if m.messages[i].Role == "Mentor" {
				content := m.messages[i].Content
				return m, func() tea.Msg { return InsertMsg{Content: content} }
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// send appends the user message and schedules the canned reply.
func (m Model) send(text string) (Model, tea.Cmd) {
	m.input.Reset()
	m.messages = append(m.messages, displayMessage{Role: "You", Content: text})
	m.thinking = true
	m.refreshViewport()

	reply := mentor.Reply(m.mode, m.taskTitle)
	return m, tea.Tick(mentor.ReplyDelay, func(time.Time) tea.Msg {
		return replyMsg{content: reply}
	})
}

// refreshViewport re-renders the conversation and scrolls to the bottom.
func (m *Model) refreshViewport() {
	roleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorBlue)
	youStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorGreen)

	var b strings.Builder
	for i, msg := range m.messages {
		if i > 0 {
			b.WriteString("\n\n")
		}
		style := roleStyle
		if msg.Role == "You" {
			style = youStyle
		}
		b.WriteString(style.Render(msg.Role) + "\n")
		b.WriteString(msg.Content)
	}
	if m.thinking {
		b.WriteString("\n\n" + theme.HelpStyle.Render("Mentor is thinking..."))
	}

	m.viewport.SetContent(lipgloss.NewStyle().Width(m.viewport.Width).Render(b.String()))
	m.viewport.GotoBottom()
}

// View renders the chat panel.
func (m Model) View() string {
	title := "Mentor Chat — Task Lens"
	if m.mode == mentor.ModeWritingPartner {
		title = "Mentor Chat — Writing Partner"
	}

	header := theme.HeaderStyle.Render(title)
	hints := theme.HelpStyle.Render("enter send | ctrl+k quick action | ctrl+y insert | esc close")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		m.viewport.View(),
		m.input.View(),
		hints,
	)
}

// SetSize updates the panel dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.SetWidth(width - 4)
	m.viewport.Width = width - 4
	vpHeight := height - 9
	if vpHeight < 4 {
		vpHeight = 4
	}
	m.viewport.Height = vpHeight
	m.refreshViewport()
}
