package taskform

import (
	"testing"
	"time"

	"github.com/nhle/taskdeck/internal/model"
)

func TestStartCreateDefaultsToClock(t *testing.T) {
	day := model.Date(2025, time.November, 14)
	m := New(func() time.Time { return day }, 80, 24)

	m.StartCreate()

	if m.fb.dueDate != "2025-11-14" {
		t.Errorf("default due date = %q, want the injected clock's today", m.fb.dueDate)
	}
	if m.editID != "" {
		t.Errorf("editID = %q, want empty for a create", m.editID)
	}
	if m.fb.priority != model.PriorityMedium || m.fb.recurrence != model.RecurrenceNone {
		t.Errorf("defaults = %q/%q, want Medium/none", m.fb.priority, m.fb.recurrence)
	}
}

func TestStartEditPrefillsFields(t *testing.T) {
	m := New(nil, 80, 24)

	m.StartEdit(model.Task{
		ID:         "t1",
		Title:      "Water plants",
		DueDate:    model.Date(2025, time.December, 1),
		Priority:   model.PriorityHigh,
		Recurrence: model.RecurrenceWeekly,
		Tags:       []string{"home", "garden"},
	})

	if m.editID != "t1" {
		t.Errorf("editID = %q, want t1", m.editID)
	}
	if m.fb.title != "Water plants" || m.fb.dueDate != "2025-12-01" {
		t.Errorf("prefill = %q / %q", m.fb.title, m.fb.dueDate)
	}
	if m.fb.tags != "home, garden" {
		t.Errorf("tags = %q, want comma-joined", m.fb.tags)
	}
}
