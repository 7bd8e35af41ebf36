package taskform

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/taskdeck/internal/model"
	"github.com/nhle/taskdeck/internal/store"
	"github.com/nhle/taskdeck/internal/theme"
)

// SubmitMsg is dispatched when the form completes. EditID is empty for a
// newly created task.
type SubmitMsg struct {
	EditID string
	Draft  store.Draft
}

// CancelMsg is dispatched when the user abandons the form; any
// uncommitted values are discarded without touching the store.
type CancelMsg struct{}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	title       string
	description string
	dueDate     string
	priority    model.Priority
	recurrence  model.Recurrence
	tags        string
}

// Model is the Bubble Tea model for the task create/edit form.
type Model struct {
	form   *huh.Form
	fb     *formBindings
	editID string
	now    func() time.Time
	width  int
	height int
}

// New creates a new task form model. now supplies the default due date
// for new tasks.
func New(now func() time.Time, width, height int) Model {
	if now == nil {
		now = time.Now
	}
	return Model{
		fb:     &formBindings{priority: model.PriorityMedium, recurrence: model.RecurrenceNone},
		now:    now,
		width:  width,
		height: height,
	}
}

// StartCreate initializes the form for creating a new task. The due date
// defaults to today.
func (m *Model) StartCreate() tea.Cmd {
	m.editID = ""
	m.fb.title = ""
	m.fb.description = ""
	m.fb.dueDate = m.now().Format(model.DateLayout)
	m.fb.priority = model.PriorityMedium
	m.fb.recurrence = model.RecurrenceNone
	m.fb.tags = ""
	m.form = m.buildForm()
	return m.form.Init()
}

// StartEdit initializes the form with an existing task's fields.
func (m *Model) StartEdit(t model.Task) tea.Cmd {
	m.editID = t.ID
	m.fb.title = t.Title
	m.fb.description = t.Description
	m.fb.dueDate = t.DueDate.Format(model.DateLayout)
	m.fb.priority = t.Priority
	m.fb.recurrence = t.Recurrence
	m.fb.tags = strings.Join(t.Tags, ", ")
	m.form = m.buildForm()
	return m.form.Init()
}

// Update handles messages for the task form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		return m, m.handleSubmit()
	}
	if m.form.State == huh.StateAborted {
		return m, func() tea.Msg { return CancelMsg{} }
	}

	return m, cmd
}

// View renders the task form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	titleText := "New Task"
	if m.editID != "" {
		titleText = "Edit Task"
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	content := titleStyle.Render(titleText) + "\n" + m.form.View()

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(content)
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task").
				Placeholder("What needs to be done?").
				Value(&m.fb.title).
				Validate(validateRequired("Task")),
			huh.NewText().
				Title("Description").
				Placeholder("Add description (optional)").
				Value(&m.fb.description),
			huh.NewInput().
				Title("Due Date").
				Placeholder(model.DateLayout).
				Value(&m.fb.dueDate).
				Validate(validateDate),
			huh.NewSelect[model.Priority]().
				Title("Priority").
				Options(
					huh.NewOption("High", model.PriorityHigh),
					huh.NewOption("Medium", model.PriorityMedium),
					huh.NewOption("Low", model.PriorityLow),
				).
				Value(&m.fb.priority),
			huh.NewSelect[model.Recurrence]().
				Title("Recurrence").
				Options(
					huh.NewOption("None", model.RecurrenceNone),
					huh.NewOption("Daily", model.RecurrenceDaily),
					huh.NewOption("Weekly", model.RecurrenceWeekly),
					huh.NewOption("Monthly", model.RecurrenceMonthly),
				).
				Value(&m.fb.recurrence),
			huh.NewInput().
				Title("Tags").
				Placeholder("comma, separated, tags").
				Value(&m.fb.tags),
		),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m Model) handleSubmit() tea.Cmd {
	due, err := model.ParseDate(strings.TrimSpace(m.fb.dueDate))
	if err != nil {
		due = model.DateOf(m.now())
	}

	draft := store.Draft{
		Title:       m.fb.title,
		Description: m.fb.description,
		DueDate:     due,
		Priority:    m.fb.priority,
		Recurrence:  m.fb.recurrence,
		Tags:        splitTags(m.fb.tags),
	}

	editID := m.editID
	return func() tea.Msg { return SubmitMsg{EditID: editID, Draft: draft} }
}

// splitTags parses the comma-separated tag input, preserving entry order.
func splitTags(s string) []string {
	var tags []string
	for _, part := range strings.Split(s, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func (m Model) formWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	if w > 100 {
		w = 100
	}
	return w
}

func (m Model) formHeight() int {
	h := m.height - 4
	if h < 10 {
		h = 10
	}
	return h
}

func validateRequired(fieldName string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", fieldName)
		}
		return nil
	}
}

func validateDate(s string) error {
	if _, err := model.ParseDate(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("invalid date format, use YYYY-MM-DD")
	}
	return nil
}
