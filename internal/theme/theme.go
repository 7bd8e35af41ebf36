package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/taskdeck/internal/model"
)

// Adaptive color pairs (dark terminal value, light terminal value).
// The light values follow the product's glacial-blue palette.
var (
	ColorBlue    = lipgloss.AdaptiveColor{Dark: "#5B9BD5", Light: "#5E94CE"}
	ColorGreen   = lipgloss.AdaptiveColor{Dark: "#6BCB77", Light: "#7BAFA3"}
	ColorYellow  = lipgloss.AdaptiveColor{Dark: "#FFD93D", Light: "#F5C75C"}
	ColorRed     = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"}
	ColorMagenta = lipgloss.AdaptiveColor{Dark: "#CC5DE8", Light: "#805AD5"}
	ColorGray    = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#8B95A0"}
	ColorWhite   = lipgloss.AdaptiveColor{Dark: "#F8F9FA", Light: "#2E3A47"}
	ColorSubtle  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#CBD5E0"}
	ColorBorder  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#E3F2FA"}
)

// HeaderStyle is used for top-level section headers and the application title.
var HeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Background(ColorBlue).
	Padding(0, 1)

// StatusBarStyle is used for the bottom status bar.
var StatusBarStyle = lipgloss.NewStyle().
	Foreground(ColorWhite).
	Background(ColorSubtle).
	Padding(0, 1)

// StatStyle renders one cell of the stats strip.
var StatStyle = lipgloss.NewStyle().
	Padding(0, 2).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// StatLabelStyle renders the caption under a stat value.
var StatLabelStyle = lipgloss.NewStyle().
	Foreground(ColorGray)

// ListItemStyle is the base style for items in a list.
var ListItemStyle = lipgloss.NewStyle().
	PaddingLeft(2)

// SelectedItemStyle highlights the currently focused list item.
var SelectedItemStyle = lipgloss.NewStyle().
	PaddingLeft(1).
	Bold(true).
	Foreground(ColorBlue).
	Border(lipgloss.NormalBorder(), false, false, false, true).
	BorderForeground(ColorBlue)

// DimmedStyle de-emphasizes completed tasks.
var DimmedStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Strikethrough(true)

// PanelStyle wraps drawer and overlay content areas.
var PanelStyle = lipgloss.NewStyle().
	Padding(1, 2).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// HelpStyle is used for keyboard shortcut hints and help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Italic(true)

// ToastStyle renders the transient notification bar.
var ToastStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Background(ColorBlue).
	Padding(0, 2)

// ToastActionStyle highlights the optional follow-up action inside a toast.
var ToastActionStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorYellow)

// TagStyle renders a tag chip.
var TagStyle = lipgloss.NewStyle().
	Foreground(ColorMagenta)

// StreakStyle renders the streak counter on recurring tasks.
var StreakStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorYellow)

// PriorityStyle returns a color-coded style for the given priority.
func PriorityStyle(p model.Priority) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)

	switch p {
	case model.PriorityHigh:
		return base.Foreground(ColorRed)
	case model.PriorityMedium:
		return base.Foreground(ColorYellow)
	case model.PriorityLow:
		return base.Foreground(ColorGreen)
	default:
		return base.Foreground(ColorGray)
	}
}

// RecurrenceStyle returns the style for a recurrence badge.
func RecurrenceStyle(r model.Recurrence) lipgloss.Style {
	base := lipgloss.NewStyle()

	switch r {
	case model.RecurrenceDaily:
		return base.Foreground(ColorBlue)
	case model.RecurrenceWeekly:
		return base.Foreground(ColorMagenta)
	case model.RecurrenceMonthly:
		return base.Foreground(ColorGreen)
	default:
		return base.Foreground(ColorGray)
	}
}

// LinkageStyle returns the style for a linkage badge of the given kind.
func LinkageStyle(kind string) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)

	switch kind {
	case "moment":
		return base.Foreground(ColorGreen)
	case "project":
		return base.Foreground(ColorBlue)
	case "milestone":
		return base.Foreground(ColorYellow)
	default:
		return base.Foreground(ColorGray)
	}
}
