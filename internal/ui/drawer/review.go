// Package drawer holds the slide-in detail panels: the evidence/post
// review drawer and the linkage drawer. Both display static content and
// never mutate the task collection.
package drawer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/taskdeck/internal/mentor"
	"github.com/nhle/taskdeck/internal/model"
	"github.com/nhle/taskdeck/internal/theme"
)

// CloseMsg signals the parent to close the open drawer.
type CloseMsg struct{}

// Review is the drawer listing a task's evidence posts.
type Review struct {
	task     model.Task
	posts    []mentor.Post
	viewport viewport.Model
	width    int
	height   int
}

// NewReview creates a review drawer for the given task.
func NewReview(t model.Task, width, height int) Review {
	vp := viewport.New(width-4, height-4)

	r := Review{
		task:     t,
		posts:    mentor.MockPosts(),
		viewport: vp,
		width:    width,
		height:   height,
	}
	r.viewport.SetContent(r.renderPosts())
	return r
}

// Update handles messages for the review drawer.
func (r Review) Update(msg tea.Msg) (Review, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "q":
			return r, func() tea.Msg { return CloseMsg{} }
		}
	}

	var cmd tea.Cmd
	r.viewport, cmd = r.viewport.Update(msg)
	return r, cmd
}

// View renders the review drawer.
func (r Review) View() string {
	plural := "Posts"
	if len(r.posts) == 1 {
		plural = "Post"
	}
	header := theme.HeaderStyle.Render(r.task.Title) + "\n" +
		theme.StatLabelStyle.Render(fmt.Sprintf("%d Smart %s", len(r.posts), plural))

	return theme.PanelStyle.Width(r.width - 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, header, "", r.viewport.View()),
	)
}

// renderPosts lays out the post cards.
func (r Review) renderPosts() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite)
	metaStyle := theme.StatLabelStyle

	var b strings.Builder
	for i, p := range r.posts {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(titleStyle.Render(p.Title) + "\n")
		b.WriteString(metaStyle.Render(p.Timestamp+" · "+p.Type) + "\n")
		b.WriteString(p.Content)
	}
	return lipgloss.NewStyle().Width(r.viewport.Width).Render(b.String())
}

// SetSize updates the drawer dimensions.
func (r *Review) SetSize(width, height int) {
	r.width = width
	r.height = height
	r.viewport.Width = width - 4
	r.viewport.Height = height - 4
	r.viewport.SetContent(r.renderPosts())
}
