package view

import "github.com/nhle/taskdeck/internal/model"

// Reorder moves the element at dragIndex to hoverIndex within the
// currently displayed sequence and returns the resulting id list, which
// becomes the new custom order. Indices refer to positions in the exact
// sequence most recently produced by Project; they are not stable across
// recomputation with different filters. Out-of-range indices return the
// displayed order unchanged.
func Reorder(displayed []model.Task, dragIndex, hoverIndex int) []string {
	ids := make([]string, len(displayed))
	for i, t := range displayed {
		ids[i] = t.ID
	}

	if dragIndex < 0 || dragIndex >= len(ids) ||
		hoverIndex < 0 || hoverIndex >= len(ids) ||
		dragIndex == hoverIndex {
		return ids
	}

	id := ids[dragIndex]
	ids = append(ids[:dragIndex], ids[dragIndex+1:]...)

	rest := append([]string(nil), ids[hoverIndex:]...)
	ids = append(ids[:hoverIndex], id)
	ids = append(ids, rest...)
	return ids
}
