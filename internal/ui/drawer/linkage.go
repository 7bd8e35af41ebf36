package drawer

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/taskdeck/internal/mentor"
	"github.com/nhle/taskdeck/internal/model"
	"github.com/nhle/taskdeck/internal/theme"
)

// linkageRef pairs a linkage kind with its display title from the task.
type linkageRef struct {
	kind  string
	title string
}

// Linkage is the drawer showing detail content for a task's linked
// entities. Tab cycles through the task's linkages when it has several.
type Linkage struct {
	refs     []linkageRef
	active   int
	viewport viewport.Model
	width    int
	height   int
}

// NewLinkage creates a linkage drawer over the given task's linkages.
// The caller must ensure the task has at least one linkage.
func NewLinkage(t model.Task, width, height int) Linkage {
	var refs []linkageRef
	if t.Linkages.Moment != "" {
		refs = append(refs, linkageRef{kind: "moment", title: t.Linkages.Moment})
	}
	if t.Linkages.Project != "" {
		refs = append(refs, linkageRef{kind: "project", title: t.Linkages.Project})
	}
	if t.Linkages.Milestone != "" {
		refs = append(refs, linkageRef{kind: "milestone", title: t.Linkages.Milestone})
	}

	vp := viewport.New(width-4, height-5)

	l := Linkage{
		refs:     refs,
		viewport: vp,
		width:    width,
		height:   height,
	}
	l.refreshContent()
	return l
}

// Update handles messages for the linkage drawer.
func (l Linkage) Update(msg tea.Msg) (Linkage, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "q":
			return l, func() tea.Msg { return CloseMsg{} }
		case "tab":
			if len(l.refs) > 1 {
				l.active = (l.active + 1) % len(l.refs)
				l.refreshContent()
			}
			return l, nil
		}
	}

	var cmd tea.Cmd
	l.viewport, cmd = l.viewport.Update(msg)
	return l, cmd
}

// View renders the linkage drawer.
func (l Linkage) View() string {
	if len(l.refs) == 0 {
		return theme.PanelStyle.Render("No linkages on this task.")
	}

	ref := l.refs[l.active]
	doc := mentor.LinkageFor(ref.kind)

	badge := theme.LinkageStyle(ref.kind).Render(doc.Heading)
	header := badge + " " + theme.HeaderStyle.Render(ref.title)
	meta := theme.StatLabelStyle.Render(doc.Metadata)

	return theme.PanelStyle.Width(l.width - 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, header, meta, "", l.viewport.View()),
	)
}

// refreshContent loads the active linkage's canned document.
func (l *Linkage) refreshContent() {
	if len(l.refs) == 0 {
		return
	}
	doc := mentor.LinkageFor(l.refs[l.active].kind)
	l.viewport.SetContent(
		lipgloss.NewStyle().Width(l.viewport.Width).Render(doc.Content),
	)
	l.viewport.GotoTop()
}

// SetSize updates the drawer dimensions.
func (l *Linkage) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.viewport.Width = width - 4
	l.viewport.Height = height - 5
	l.refreshContent()
}
