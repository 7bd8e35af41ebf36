package app

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/taskdeck/internal/keys"
	"github.com/nhle/taskdeck/internal/mentor"
	"github.com/nhle/taskdeck/internal/model"
	"github.com/nhle/taskdeck/internal/notify"
	"github.com/nhle/taskdeck/internal/store"
	"github.com/nhle/taskdeck/internal/theme"
	"github.com/nhle/taskdeck/internal/ui"
	"github.com/nhle/taskdeck/internal/ui/chat"
	"github.com/nhle/taskdeck/internal/ui/compose"
	"github.com/nhle/taskdeck/internal/ui/drawer"
	"github.com/nhle/taskdeck/internal/ui/taskform"
	"github.com/nhle/taskdeck/internal/ui/tasklist"
)

// Mode is the single UI-mode value: exactly one panel owns the screen at
// a time, so panel visibility cannot drift out of sync.
type Mode int

const (
	ModeList Mode = iota
	ModeForm
	ModeChat
	ModeReview
	ModeLinkage
	ModeCompose
	ModeConfirm
)

// confirmKind distinguishes the two destructive operations that require
// confirmation before reaching the store.
type confirmKind int

const (
	confirmDelete confirmKind = iota
	confirmClear
)

// snapshotSavedMsg reports the outcome of a background snapshot write.
type snapshotSavedMsg struct {
	err error
}

// Model is the root Bubble Tea model that manages mode routing, layout,
// the toast dispatcher, and access to the task store.
type Model struct {
	mode   Mode
	layout ui.Layout
	cfg    *model.AppConfig
	store  *store.TaskStore
	snap   *store.Snapshot
	keys   *keys.KeyMap

	taskList tasklist.Model
	form     taskform.Model
	chatView chat.Model
	review   drawer.Review
	linkage  drawer.Linkage
	composer compose.Model
	toast    notify.Model

	// chatOverCompose is set when the writing-partner chat is opened on
	// top of the composer, so closing it returns there instead of to the
	// list.
	chatOverCompose bool

	confirmKind   confirmKind
	confirmTaskID string
	confirmPrompt string

	// Snapshot writes are serialized: while one Save runs, the latest
	// collection waits in pendingSave and is written when the running
	// save reports back. Without this, two in-flight saves could commit
	// out of order and persist a stale collection.
	saving      bool
	pendingSave []model.Task

	ready       bool
	snapshotErr string
}

// New creates the root application model. snap may be nil when
// snapshotting is disabled.
func New(cfg *model.AppConfig, s *store.TaskStore, snap *store.Snapshot) Model {
	k := keys.DefaultKeyMap()

	toastDuration := notify.DefaultDuration
	if cfg != nil && cfg.Display.ToastDurationSec > 0 {
		toastDuration = time.Duration(cfg.Display.ToastDurationSec) * time.Second
	}

	return Model{
		mode:     ModeList,
		cfg:      cfg,
		store:    s,
		snap:     snap,
		keys:     k,
		taskList: tasklist.New(s, k, 80, 24),
		form:     taskform.New(s.Clock(), 80, 24),
		toast:    notify.New(toastDuration),
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return m.taskList.Init()
}

// Update handles messages and dispatches to the active mode.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The toast runs alongside every mode; its dismissal timer must be
	// seen regardless of what owns the keyboard.
	var toastCmd tea.Cmd
	m.toast, toastCmd = m.toast.Update(msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		w := m.layout.ContentWidth()
		h := m.layout.ContentHeight()
		m.taskList.SetSize(w, h)
		m.form.SetSize(w, h)
		m.toast.SetWidth(m.layout.Width)
		switch m.mode {
		case ModeChat:
			m.chatView.SetSize(w, h)
		case ModeReview:
			m.review.SetSize(w, h)
		case ModeLinkage:
			m.linkage.SetSize(w, h)
		case ModeCompose:
			m.composer.SetSize(w, h)
			if m.chatOverCompose {
				m.chatView.SetSize(w, h)
			}
		}
		return m.updateActiveMode(msg, toastCmd)

	case taskform.SubmitMsg:
		m.mode = ModeList
		cmd := m.applyForm(msg)
		return m, tea.Batch(toastCmd, cmd)

	case taskform.CancelMsg:
		m.mode = ModeList
		return m, toastCmd

	case chat.CloseMsg:
		if m.chatOverCompose {
			m.chatOverCompose = false
			return m, toastCmd
		}
		m.mode = ModeList
		return m, toastCmd

	case chat.InsertMsg:
		if m.mode == ModeCompose {
			m.composer.Insert(msg.Content)
			m.chatOverCompose = false
		}
		return m, toastCmd

	case drawer.CloseMsg:
		m.mode = ModeList
		return m, toastCmd

	case compose.PublishMsg:
		m.mode = ModeList
		m.chatOverCompose = false
		cmd := m.publishPost(msg.TaskID)
		return m, tea.Batch(toastCmd, cmd)

	case compose.CancelMsg:
		m.mode = ModeList
		m.chatOverCompose = false
		return m, toastCmd

	case snapshotSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.snapshotErr = fmt.Sprintf("snapshot failed: %v", msg.err)
		} else {
			m.snapshotErr = ""
		}
		var next tea.Cmd
		if m.pendingSave != nil {
			m.saving = true
			next = saveCmd(m.snap, m.pendingSave)
			m.pendingSave = nil
		}
		return m, tea.Batch(toastCmd, next)

	case tea.KeyMsg:
		mdl, cmd := m.handleKeyMsg(msg)
		return mdl, tea.Batch(toastCmd, cmd)
	}

	return m.updateActiveMode(msg, toastCmd)
}

// handleKeyMsg processes global keys, then falls through to the active mode.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// The toast action works from any mode while the toast is visible.
	if key.Matches(msg, m.keys.ToastAction) && m.mode == ModeList && !m.taskList.Searching() {
		if action := m.toast.Action(); action != nil {
			return m.openComposer(action.TaskID)
		}
	}

	switch m.mode {
	case ModeList:
		if m.taskList.Searching() {
			break
		}
		if mdl, cmd, handled := m.handleListKeys(msg); handled {
			return mdl, cmd
		}

	case ModeConfirm:
		return m.handleConfirmKeys(msg)

	case ModeCompose:
		// The writing partner can be summoned over the composer. Bound to
		// a modifier so bare letters reach the textarea.
		if !m.chatOverCompose && key.Matches(msg, m.keys.ComposeWriting) {
			if t, ok := m.store.Get(m.composer.TaskID()); ok {
				m.chatView = chat.New(mentor.ModeWritingPartner, t.Title,
					m.layout.ContentWidth(), m.layout.ContentHeight())
				m.chatOverCompose = true
				return m, m.chatView.Init()
			}
		}
	}

	return m.updateActiveMode(msg, nil)
}

// handleListKeys processes the list-mode keys that mutate tasks or open
// panels. Returns handled=false for keys the task list itself owns.
func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit, true

	case key.Matches(msg, m.keys.New):
		m.mode = ModeForm
		return m, m.form.StartCreate(), true

	case key.Matches(msg, m.keys.Edit):
		if t, ok := m.taskList.SelectedTask(); ok {
			m.mode = ModeForm
			return m, m.form.StartEdit(t), true
		}
		return m, nil, true

	case key.Matches(msg, m.keys.Toggle):
		return m.toggleSelected()

	case key.Matches(msg, m.keys.Delete):
		if t, ok := m.taskList.SelectedTask(); ok {
			m.mode = ModeConfirm
			m.confirmKind = confirmDelete
			m.confirmTaskID = t.ID
			m.confirmPrompt = fmt.Sprintf("Delete %q?", t.Title)
		}
		return m, nil, true

	case key.Matches(msg, m.keys.ClearCompleted):
		m.mode = ModeConfirm
		m.confirmKind = confirmClear
		m.confirmPrompt = "Delete all completed tasks?"
		return m, nil, true

	case key.Matches(msg, m.keys.Mentor):
		if t, ok := m.taskList.SelectedTask(); ok {
			m.chatView = chat.New(mentor.ModeTaskLens, t.Title,
				m.layout.ContentWidth(), m.layout.ContentHeight())
			m.mode = ModeChat
			return m, m.chatView.Init(), true
		}
		return m, nil, true

	case key.Matches(msg, m.keys.Writing):
		if t, ok := m.taskList.SelectedTask(); ok {
			m.chatView = chat.New(mentor.ModeWritingPartner, t.Title,
				m.layout.ContentWidth(), m.layout.ContentHeight())
			m.mode = ModeChat
			return m, m.chatView.Init(), true
		}
		return m, nil, true

	case key.Matches(msg, m.keys.Review):
		if t, ok := m.taskList.SelectedTask(); ok {
			m.review = drawer.NewReview(t, m.layout.ContentWidth(), m.layout.ContentHeight())
			m.mode = ModeReview
		}
		return m, nil, true

	case key.Matches(msg, m.keys.Linkage):
		if t, ok := m.taskList.SelectedTask(); ok && !t.Linkages.IsZero() {
			m.linkage = drawer.NewLinkage(t, m.layout.ContentWidth(), m.layout.ContentHeight())
			m.mode = ModeLinkage
		}
		return m, nil, true

	case key.Matches(msg, m.keys.Compose):
		if t, ok := m.taskList.SelectedTask(); ok {
			mdl, cmd := m.openComposer(t.ID)
			return mdl, cmd, true
		}
		return m, nil, true
	}

	return m, nil, false
}

// handleConfirmKeys resolves a pending destructive confirmation.
func (m Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		m.mode = ModeList
		switch m.confirmKind {
		case confirmDelete:
			m.store.Delete(m.confirmTaskID)
		case confirmClear:
			m.store.ClearCompleted()
		}
		return m, m.afterMutation()

	case "n", "esc":
		m.mode = ModeList
		return m, nil
	}
	return m, nil
}

// toggleSelected flips the selected task's completion state and surfaces
// the store's notification, if any.
func (m Model) toggleSelected() (tea.Model, tea.Cmd, bool) {
	t, ok := m.taskList.SelectedTask()
	if !ok {
		return m, nil, true
	}

	_, spec, err := m.store.Toggle(t.ID, !t.Completed)
	if err != nil {
		return m, nil, true
	}

	cmds := []tea.Cmd{m.afterMutation()}
	if spec != nil {
		cmds = append(cmds, m.toast.Show(*spec))
	}
	return m, tea.Batch(cmds...), true
}

// openComposer opens the smart-post overlay for the given task.
func (m Model) openComposer(taskID string) (tea.Model, tea.Cmd) {
	t, ok := m.store.Get(taskID)
	if !ok {
		return m, nil
	}
	m.composer = compose.New(t, m.layout.ContentWidth(), m.layout.ContentHeight())
	m.mode = ModeCompose
	m.chatOverCompose = false
	return m, m.composer.Init()
}

// applyForm commits a submitted create/edit form to the store.
func (m *Model) applyForm(msg taskform.SubmitMsg) tea.Cmd {
	if msg.EditID == "" {
		if _, err := m.store.Create(msg.Draft); err != nil {
			return m.toast.Show(model.NotificationSpec{
				Message: "Could not create task: " + err.Error(),
			})
		}
		return m.afterMutation()
	}

	d := msg.Draft
	tags := d.Tags
	_, err := m.store.Apply(msg.EditID, store.Patch{
		Title:       &d.Title,
		Description: &d.Description,
		DueDate:     &d.DueDate,
		Priority:    &d.Priority,
		Recurrence:  &d.Recurrence,
		Tags:        &tags,
	})
	if err != nil {
		return m.toast.Show(model.NotificationSpec{
			Message: "Could not update task: " + err.Error(),
		})
	}
	return m.afterMutation()
}

// publishPost increments the task's post count and confirms it.
func (m *Model) publishPost(taskID string) tea.Cmd {
	t, err := m.store.AddPost(taskID)
	if err != nil {
		return nil
	}
	return tea.Batch(
		m.afterMutation(),
		m.toast.Show(model.NotificationSpec{
			Message: fmt.Sprintf("📎 Post attached to %q", t.Title),
		}),
	)
}

// afterMutation reprojects the list and, when enabled, snapshots the
// collection in the background.
func (m *Model) afterMutation() tea.Cmd {
	return tea.Batch(m.taskList.Refresh(), m.scheduleSave())
}

// scheduleSave starts a snapshot write, or queues the collection if one
// is already running.
func (m *Model) scheduleSave() tea.Cmd {
	if m.snap == nil {
		return nil
	}
	tasks := m.store.Tasks()
	if m.saving {
		m.pendingSave = tasks
		return nil
	}
	m.saving = true
	return saveCmd(m.snap, tasks)
}

func saveCmd(snap *store.Snapshot, tasks []model.Task) tea.Cmd {
	return func() tea.Msg {
		return snapshotSavedMsg{err: snap.Save(tasks)}
	}
}

// updateActiveMode dispatches the message to the model owning the screen.
func (m Model) updateActiveMode(msg tea.Msg, extra tea.Cmd) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.mode {
	case ModeList:
		m.taskList, cmd = m.taskList.Update(msg)
	case ModeForm:
		m.form, cmd = m.form.Update(msg)
	case ModeChat:
		m.chatView, cmd = m.chatView.Update(msg)
	case ModeReview:
		m.review, cmd = m.review.Update(msg)
	case ModeLinkage:
		m.linkage, cmd = m.linkage.Update(msg)
	case ModeCompose:
		if m.chatOverCompose {
			m.chatView, cmd = m.chatView.Update(msg)
		} else {
			m.composer, cmd = m.composer.Update(msg)
		}
	case ModeConfirm:
		// Confirm mode consumes keys in handleConfirmKeys only.
	}

	if extra != nil {
		return m, tea.Batch(extra, cmd)
	}
	return m, cmd
}

// View renders the full terminal UI.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.layout.RenderHeader("TaskDeck", m.headerSummary())
	stats := m.renderStats()
	content := lipgloss.NewStyle().
		Height(m.layout.ContentHeight()).
		Render(m.renderContent())
	toast := m.toast.View()
	if toast == "" {
		toast = " "
	}
	statusBar := m.layout.RenderStatusBar(m.keyHints())

	return m.layout.RenderWithFrame(header, stats, content, toast, statusBar)
}

// headerSummary returns the right-aligned header text.
func (m Model) headerSummary() string {
	if m.snapshotErr != "" {
		return "⚠ " + m.snapshotErr
	}
	if summary := m.taskList.FilterSummary(); summary != "" {
		return summary
	}
	return ""
}

// renderStats draws the collection-wide counter strip. The counters come
// from the projector and never depend on the active filters.
func (m Model) renderStats() string {
	s := m.taskList.Stats()

	cell := func(value int, label string) string {
		return theme.StatStyle.Render(
			fmt.Sprintf("%d %s", value, theme.StatLabelStyle.Render(label)),
		)
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		cell(s.Total, "total"),
		cell(s.Active, "not started"),
		cell(s.Done, "done"),
		cell(s.TotalPosts, "posts"),
	)
}

// renderContent returns the rendered string for the active mode.
func (m Model) renderContent() string {
	switch m.mode {
	case ModeList:
		return m.taskList.View()
	case ModeForm:
		return m.form.View()
	case ModeChat:
		return m.chatView.View()
	case ModeReview:
		return m.review.View()
	case ModeLinkage:
		return m.linkage.View()
	case ModeCompose:
		if m.chatOverCompose {
			return m.chatView.View()
		}
		return m.composer.View()
	case ModeConfirm:
		return m.renderConfirm()
	default:
		return ""
	}
}

// renderConfirm draws the destructive-operation prompt.
func (m Model) renderConfirm() string {
	prompt := m.confirmPrompt + "\n\n" +
		theme.HelpStyle.Render("y confirm | n cancel")
	box := theme.PanelStyle.Render(prompt)
	return lipgloss.Place(
		m.layout.ContentWidth(), m.layout.ContentHeight(),
		lipgloss.Center, lipgloss.Center,
		box,
	)
}

// keyHints returns keyboard shortcut hints for the status bar.
func (m Model) keyHints() string {
	switch m.mode {
	case ModeForm:
		return "enter submit | esc cancel"
	case ModeChat:
		return "enter send | ctrl+k quick action | ctrl+y insert | esc close"
	case ModeReview, ModeLinkage:
		return "j/k scroll | tab cycle | esc close"
	case ModeCompose:
		if m.chatOverCompose {
			return "enter send | ctrl+y insert | esc back to post"
		}
		return "ctrl+s publish | ctrl+w writing partner | esc discard"
	case ModeConfirm:
		return "y confirm | n cancel"
	default:
		if m.taskList.Searching() {
			return "type to search | enter keep | esc clear"
		}
		return "q quit | n new | e edit | x done | d delete | / search | f filter | tab sort | J/K move | m mentor"
	}
}
