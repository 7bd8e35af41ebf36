package model

// SortKey selects the comparator used for the incomplete group.
type SortKey string

const (
	SortDefault    SortKey = "default" // priority, then due date
	SortTitle      SortKey = "title"
	SortDueDate    SortKey = "due_date"
	SortPriority   SortKey = "priority"
	SortRecurrence SortKey = "recurrence"
)

// SortOrder is the comparison direction.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// PriorityAll is the priority filter value that matches every task.
const PriorityAll = "All"

// ViewState holds the ephemeral display parameters the projector derives
// the visible task sequence from. It is never persisted.
type ViewState struct {
	// Query is matched case-insensitively against title, description,
	// and tags. Empty matches everything.
	Query string

	// PriorityFilter is PriorityAll or one of the Priority values.
	PriorityFilter string

	SortKey   SortKey
	SortOrder SortOrder

	// CustomOrder is the user-imposed display sequence as an ordered id
	// list, populated by manual reordering.
	CustomOrder []string
}

// NewViewState returns the default view parameters.
func NewViewState() ViewState {
	return ViewState{
		PriorityFilter: PriorityAll,
		SortKey:        SortDefault,
		SortOrder:      SortAsc,
	}
}

// ManualOrderActive reports whether the custom order governs display.
// It requires a non-empty custom order and that no search, priority
// filter, or explicit sort is in effect.
func (v ViewState) ManualOrderActive() bool {
	return len(v.CustomOrder) > 0 &&
		v.SortKey == SortDefault &&
		v.Query == "" &&
		(v.PriorityFilter == "" || v.PriorityFilter == PriorityAll)
}
