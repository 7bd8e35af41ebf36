package model

import "time"

// Priority levels for a task. The display order is High before Medium
// before Low, so Rank returns a smaller number for a more urgent task.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Rank returns the sort rank of the priority (0 = most urgent).
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// Valid reports whether p is one of the known priority levels.
func (p Priority) Valid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// Recurrence is a task's repeat cadence.
type Recurrence string

const (
	RecurrenceNone    Recurrence = "none"
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
)

// Rank returns the sort rank of the recurrence (none < daily < weekly < monthly).
func (r Recurrence) Rank() int {
	switch r {
	case RecurrenceNone:
		return 0
	case RecurrenceDaily:
		return 1
	case RecurrenceWeekly:
		return 2
	case RecurrenceMonthly:
		return 3
	default:
		return 4
	}
}

// NextDue advances a due date by one recurrence period. Monthly addition
// uses time.AddDate, which normalizes month-end overflow (Jan 31 + 1 month
// lands on Mar 2/3) rather than clamping.
func (r Recurrence) NextDue(due time.Time) time.Time {
	switch r {
	case RecurrenceDaily:
		return due.AddDate(0, 0, 1)
	case RecurrenceWeekly:
		return due.AddDate(0, 0, 7)
	case RecurrenceMonthly:
		return due.AddDate(0, 1, 0)
	default:
		return due
	}
}

// Linkages are named references from a task to external entities.
// They are display metadata only; nothing in the store resolves them.
type Linkages struct {
	Moment    string `json:"moment,omitempty"`
	Project   string `json:"project,omitempty"`
	Milestone string `json:"milestone,omitempty"`
}

// IsZero reports whether no linkage is set.
func (l Linkages) IsZero() bool {
	return l.Moment == "" && l.Project == "" && l.Milestone == ""
}

// Task is a trackable work item with scheduling and categorization metadata.
type Task struct {
	// ID is the unique identifier, immutable after creation.
	ID string `json:"id"`

	// Completed marks the task as done. Recurring tasks are never left
	// completed: completing one reschedules it and clears this flag.
	Completed bool `json:"completed"`

	// Title is the short task summary. Required, non-empty on creation.
	Title string `json:"title"`

	// Description is optional free text.
	Description string `json:"description"`

	// DueDate is a calendar date with no time-of-day component,
	// normalized to UTC midnight.
	DueDate time.Time `json:"due_date"`

	Priority   Priority   `json:"priority"`
	Recurrence Recurrence `json:"recurrence"`

	// Tags keep their insertion order; duplicates are allowed.
	Tags []string `json:"tags,omitempty"`

	// Posts counts the evidence entries attached to this task.
	Posts int `json:"posts"`

	// Streak counts consecutive completions of a recurring task.
	Streak int `json:"streak"`

	// LastCompleted is set for recurring tasks only and blocks a second
	// completion within the same calendar day.
	LastCompleted *time.Time `json:"last_completed,omitempty"`

	Linkages Linkages `json:"linkages,omitempty"`
}

// Clone returns a deep copy of the task so callers can hold a snapshot
// that later store mutations cannot alias into.
func (t Task) Clone() Task {
	c := t
	if t.Tags != nil {
		c.Tags = append([]string(nil), t.Tags...)
	}
	if t.LastCompleted != nil {
		lc := *t.LastCompleted
		c.LastCompleted = &lc
	}
	return c
}

// IsRecurring reports whether the task repeats.
func (t Task) IsRecurring() bool {
	return t.Recurrence != RecurrenceNone && t.Recurrence != ""
}

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// Date constructs a calendar date at UTC midnight.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DateOf truncates t to its calendar date in UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a UTC calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
