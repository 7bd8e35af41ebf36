// Package view derives the displayable task sequence from the canonical
// collection and the current view parameters. Everything here is pure:
// identical inputs produce identical output, with no hidden state.
package view

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/nhle/taskdeck/internal/model"
)

// Stats are global counters over the whole collection, independent of
// any active filter or search, so the user keeps orientation regardless
// of what is currently visible.
type Stats struct {
	Total      int
	Active     int
	Done       int
	TotalPosts int
}

// Projection is the ordered, filtered sequence of visible tasks plus the
// aggregate counters.
type Projection struct {
	Tasks []model.Task
	Stats Stats
}

// collator provides locale-aware title comparison for the title sort key.
var collator = collate.New(language.English, collate.IgnoreCase)

// Project runs the filter/order pipeline over the collection.
//
// A manual order, when one exists, only governs display while no search,
// priority filter, or explicit sort is active; any of those switches the
// projector back to sort mode until all are cleared again. In sort mode
// completed tasks always follow incomplete ones and are left in filtered
// order, untouched by the comparator.
func Project(tasks []model.Task, vs model.ViewState) Projection {
	filtered := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if matches(t, vs) {
			filtered = append(filtered, t)
		}
	}

	var ordered []model.Task
	if vs.ManualOrderActive() {
		ordered = applyCustomOrder(filtered, vs.CustomOrder)
	} else {
		ordered = applySort(filtered, vs)
	}

	return Projection{
		Tasks: ordered,
		Stats: Aggregate(tasks),
	}
}

// Aggregate computes the global counters over the unfiltered collection.
func Aggregate(tasks []model.Task) Stats {
	s := Stats{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			s.Done++
		} else {
			s.Active++
		}
		s.TotalPosts += t.Posts
	}
	return s
}

// matches applies the search and priority predicates.
func matches(t model.Task, vs model.ViewState) bool {
	if vs.PriorityFilter != "" && vs.PriorityFilter != model.PriorityAll &&
		string(t.Priority) != vs.PriorityFilter {
		return false
	}

	q := strings.ToLower(vs.Query)
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(t.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(t.Description), q) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// applyCustomOrder emits tasks in the user-imposed id sequence, skipping
// ids no longer present, then appends tasks the sequence does not know
// about in their original collection order.
func applyCustomOrder(filtered []model.Task, order []string) []model.Task {
	byID := make(map[string]int, len(filtered))
	for i, t := range filtered {
		byID[t.ID] = i
	}

	known := make(map[string]bool, len(order))
	out := make([]model.Task, 0, len(filtered))
	for _, id := range order {
		known[id] = true
		if i, ok := byID[id]; ok {
			out = append(out, filtered[i])
		}
	}
	for _, t := range filtered {
		if !known[t.ID] {
			out = append(out, t)
		}
	}
	return out
}

// applySort partitions into incomplete and completed groups, sorts the
// incomplete group by the active key, and appends the completed group
// verbatim.
func applySort(filtered []model.Task, vs model.ViewState) []model.Task {
	incomplete := make([]model.Task, 0, len(filtered))
	completed := make([]model.Task, 0)
	for _, t := range filtered {
		if t.Completed {
			completed = append(completed, t)
		} else {
			incomplete = append(incomplete, t)
		}
	}

	sort.SliceStable(incomplete, func(i, j int) bool {
		c := compare(incomplete[i], incomplete[j], vs.SortKey)
		if vs.SortOrder == model.SortDesc {
			c = -c
		}
		return c < 0
	})

	return append(incomplete, completed...)
}

// compare orders two tasks under the given sort key (ascending).
func compare(a, b model.Task, key model.SortKey) int {
	switch key {
	case model.SortTitle:
		return collator.CompareString(a.Title, b.Title)
	case model.SortPriority:
		return a.Priority.Rank() - b.Priority.Rank()
	case model.SortDueDate:
		return a.DueDate.Compare(b.DueDate)
	case model.SortRecurrence:
		return a.Recurrence.Rank() - b.Recurrence.Rank()
	default:
		if c := a.Priority.Rank() - b.Priority.Rank(); c != 0 {
			return c
		}
		return a.DueDate.Compare(b.DueDate)
	}
}
