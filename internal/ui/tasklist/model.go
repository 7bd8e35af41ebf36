package tasklist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/taskdeck/internal/keys"
	"github.com/nhle/taskdeck/internal/model"
	"github.com/nhle/taskdeck/internal/store"
	"github.com/nhle/taskdeck/internal/theme"
	"github.com/nhle/taskdeck/internal/view"
)

// sortCycle defines the sort keys cycled by Tab, in column order.
var sortCycle = []model.SortKey{
	model.SortDefault,
	model.SortTitle,
	model.SortDueDate,
	model.SortPriority,
	model.SortRecurrence,
}

// priorityCycle defines the filter values cycled by the priority key.
var priorityCycle = []string{
	model.PriorityAll,
	string(model.PriorityHigh),
	string(model.PriorityMedium),
	string(model.PriorityLow),
}

// Model is the main task list view. It owns the ephemeral view state
// (search, filter, sort, manual order) and projects the store's
// collection through it on every refresh.
type Model struct {
	list        list.Model
	store       *store.TaskStore
	keys        *keys.KeyMap
	vs          model.ViewState
	projected   []model.Task
	stats       view.Stats
	searchMode  bool
	searchInput textinput.Model
	width       int
	height      int
}

// New creates a new task list model over the given store.
func New(s *store.TaskStore, k *keys.KeyMap, width, height int) Model {
	delegate := ItemDelegate{}
	l := list.New([]list.Item{}, delegate, width, height-2)
	l.Title = "Tasks"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = theme.HeaderStyle

	si := textinput.New()
	si.Placeholder = "search tasks, descriptions, tags..."
	si.Prompt = "/ "
	si.Width = width - 4

	m := Model{
		list:        l,
		store:       s,
		keys:        k,
		vs:          model.NewViewState(),
		searchInput: si,
		width:       width,
		height:      height,
	}
	m.refresh()
	return m
}

// Init is a no-op; projection is synchronous.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the task list view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if m.searchMode {
			return m.handleSearchKeys(msg)
		}
		return m.handleNormalKeys(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// handleSearchKeys processes key input while the search bar has focus.
// The query applies live on every keystroke.
func (m Model) handleSearchKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searchMode = false
		return m, nil

	case "esc":
		m.searchMode = false
		m.searchInput.Reset()
		m.vs.Query = ""
		return m, m.refresh()
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.vs.Query = m.searchInput.Value()
	return m, tea.Batch(cmd, m.refresh())
}

// handleNormalKeys processes key input in normal (non-search) mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Search):
		m.searchMode = true
		return m, m.searchInput.Focus()

	case key.Matches(msg, m.keys.CyclePriority):
		m.cyclePriorityFilter()
		return m, m.refresh()

	case key.Matches(msg, m.keys.CycleSort):
		m.cycleSort()
		return m, m.refresh()

	case key.Matches(msg, m.keys.FlipOrder):
		if m.vs.SortOrder == model.SortAsc {
			m.vs.SortOrder = model.SortDesc
		} else {
			m.vs.SortOrder = model.SortAsc
		}
		return m, m.refresh()

	case key.Matches(msg, m.keys.MoveUp):
		return m, m.move(-1)

	case key.Matches(msg, m.keys.MoveDown):
		return m, m.move(1)
	}

	switch msg.String() {
	case "1", "2", "3", "4", "5":
		i := int(msg.String()[0] - '1')
		m.selectSort(sortCycle[i])
		return m, m.refresh()
	}

	// Delegate to the list for navigation keys (up/down/pgup/pgdn).
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// selectSort applies a sort column like a table header: re-selecting the
// active column flips direction, a new column resets to ascending.
func (m *Model) selectSort(k model.SortKey) {
	if m.vs.SortKey == k {
		if m.vs.SortOrder == model.SortAsc {
			m.vs.SortOrder = model.SortDesc
		} else {
			m.vs.SortOrder = model.SortAsc
		}
		return
	}
	m.vs.SortKey = k
	m.vs.SortOrder = model.SortAsc
}

// cycleSort advances to the next sort column, resetting to ascending.
func (m *Model) cycleSort() {
	for i, k := range sortCycle {
		if k == m.vs.SortKey {
			m.vs.SortKey = sortCycle[(i+1)%len(sortCycle)]
			m.vs.SortOrder = model.SortAsc
			return
		}
	}
	m.vs.SortKey = model.SortDefault
	m.vs.SortOrder = model.SortAsc
}

// cyclePriorityFilter advances All -> High -> Medium -> Low -> All.
func (m *Model) cyclePriorityFilter() {
	for i, p := range priorityCycle {
		if p == m.vs.PriorityFilter {
			m.vs.PriorityFilter = priorityCycle[(i+1)%len(priorityCycle)]
			return
		}
	}
	m.vs.PriorityFilter = model.PriorityAll
}

// move shifts the selected row by delta within the displayed sequence and
// persists the result as the manual order. The order only governs display
// while no search, filter, or explicit sort is active, but it may be
// edited from any displayed sequence.
func (m *Model) move(delta int) tea.Cmd {
	i := m.list.Index()
	j := i + delta
	if i < 0 || i >= len(m.projected) || j < 0 || j >= len(m.projected) {
		return nil
	}

	m.vs.CustomOrder = view.Reorder(m.projected, i, j)
	cmd := m.refresh()
	if m.vs.ManualOrderActive() {
		m.list.Select(j)
	}
	return cmd
}

// refresh reprojects the collection through the current view state and
// swaps the displayed items.
func (m *Model) refresh() tea.Cmd {
	p := view.Project(m.store.Tasks(), m.vs)
	m.projected = p.Tasks
	m.stats = p.Stats

	items := make([]list.Item, len(p.Tasks))
	for i, t := range p.Tasks {
		items[i] = TaskItem{Task: t}
	}
	return m.list.SetItems(items)
}

// Refresh recomputes the projection; the app calls this after any store
// mutation.
func (m *Model) Refresh() tea.Cmd {
	return m.refresh()
}

// SelectedTask returns the task under the cursor.
func (m Model) SelectedTask() (model.Task, bool) {
	item, ok := m.list.SelectedItem().(TaskItem)
	if !ok {
		return model.Task{}, false
	}
	return item.Task, true
}

// Stats returns the collection-wide counters from the latest projection.
func (m Model) Stats() view.Stats {
	return m.stats
}

// Searching reports whether the search bar has key focus.
func (m Model) Searching() bool {
	return m.searchMode
}

// FilterSummary describes the active view parameters for the status bar.
// Empty when the view is in its default state.
func (m Model) FilterSummary() string {
	var parts []string
	if m.vs.Query != "" {
		parts = append(parts, fmt.Sprintf("search %q", m.vs.Query))
	}
	if m.vs.PriorityFilter != "" && m.vs.PriorityFilter != model.PriorityAll {
		parts = append(parts, "priority "+m.vs.PriorityFilter)
	}
	if m.vs.SortKey != model.SortDefault {
		parts = append(parts, fmt.Sprintf("sort %s %s", m.vs.SortKey, m.vs.SortOrder))
	}
	if len(parts) == 0 && m.vs.ManualOrderActive() {
		parts = append(parts, "manual order")
	}
	return strings.Join(parts, " | ")
}

// View renders the task list view.
func (m Model) View() string {
	if m.searchMode {
		searchBar := lipgloss.NewStyle().
			Foreground(theme.ColorWhite).
			Padding(0, 1).
			Render(m.searchInput.View())
		return lipgloss.JoinVertical(lipgloss.Left, searchBar, m.list.View())
	}

	if len(m.list.Items()) == 0 {
		return m.renderEmptyState()
	}

	return m.list.View()
}

// renderEmptyState shows guidance text when nothing is visible.
func (m Model) renderEmptyState() string {
	style := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.ColorGray)

	if m.vs.Query != "" || (m.vs.PriorityFilter != "" && m.vs.PriorityFilter != model.PriorityAll) {
		return style.Render("No matching tasks.\nTry adjusting your filters.")
	}

	return style.Render("No tasks yet.\n\nPress n to create one.")
}

// SetSize updates the list dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height-2)
	m.searchInput.Width = width - 4
}
