package tasklist

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/taskdeck/internal/model"
	"github.com/nhle/taskdeck/internal/theme"
)

// TaskItem wraps a model.Task so it can be used in a bubbles/list.
type TaskItem struct {
	Task model.Task
}

// FilterValue returns the string used for fuzzy filtering. The list's
// built-in filter is disabled; the projector owns searching.
func (i TaskItem) FilterValue() string { return i.Task.Title }

// Title returns the task title for the list.
func (i TaskItem) Title() string { return i.Task.Title }

// Description returns a short summary line for the list.
func (i TaskItem) Description() string {
	return i.Task.Description
}

// ItemDelegate implements list.ItemDelegate for rendering task rows.
type ItemDelegate struct{}

// Height returns the number of lines each item takes.
func (d ItemDelegate) Height() int { return 1 }

// Spacing returns the number of blank lines between items.
func (d ItemDelegate) Spacing() int { return 0 }

// Update handles per-item messages (unused).
func (d ItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render draws a single task row.
func (d ItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ti, ok := item.(TaskItem)
	if !ok {
		return
	}

	t := ti.Task
	isSelected := index == m.Index()

	var prefix string
	if t.Completed {
		prefix = "✓"
	} else {
		prefix = "○"
	}

	priBadge := theme.PriorityStyle(t.Priority).Render(string(t.Priority))

	recBadge := ""
	if t.IsRecurring() {
		recBadge = theme.RecurrenceStyle(t.Recurrence).Render(" ↻" + string(t.Recurrence))
	}

	streakBadge := ""
	if t.Streak > 0 {
		streakBadge = theme.StreakStyle.Render(fmt.Sprintf(" %s%d", model.TierFor(t.Streak).Icon(), t.Streak))
	}

	tagBadge := ""
	if len(t.Tags) > 0 {
		display := t.Tags
		if len(display) > 2 {
			display = append(append([]string(nil), display[:2]...), "…")
		}
		tagBadge = theme.TagStyle.Render(" #" + strings.Join(display, ",#"))
	}

	postBadge := ""
	if t.Posts > 0 {
		postBadge = lipgloss.NewStyle().
			Foreground(theme.ColorGray).
			Render(fmt.Sprintf(" [%d posts]", t.Posts))
	}

	linkBadge := ""
	if !t.Linkages.IsZero() {
		linkBadge = lipgloss.NewStyle().
			Foreground(theme.ColorBlue).
			Render(" ⛓")
	}

	due := theme.StatLabelStyle.Render(" " + t.DueDate.Format("Jan 02"))

	line := fmt.Sprintf(
		"%s %s %s%s%s%s%s%s",
		prefix, priBadge, t.Title,
		tagBadge, recBadge, streakBadge, postBadge+linkBadge, due,
	)

	if t.Completed {
		line = theme.DimmedStyle.Render(line)
	}

	if isSelected {
		line = theme.SelectedItemStyle.Render(line)
	} else {
		line = theme.ListItemStyle.Render(line)
	}

	fmt.Fprint(w, line)
}
