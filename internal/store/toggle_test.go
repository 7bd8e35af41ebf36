package store

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/nhle/taskdeck/internal/model"
)

func TestToggleNonRecurring(t *testing.T) {
	t.Run("completing without posts offers to capture the moment", func(t *testing.T) {
		s := New(fixedClock("2025-11-14"))
		task := mustCreate(t, s, Draft{Title: "Ship release"})

		got, spec, err := s.Toggle(task.ID, true)
		if err != nil {
			t.Fatalf("Toggle failed: %v", err)
		}
		if !got.Completed {
			t.Error("task should be completed")
		}
		if spec == nil {
			t.Fatal("expected a notification")
		}
		if spec.Action == nil {
			t.Fatal("expected an Add Post action for a task without posts")
		}
		if spec.Action.Label != "Add Post" || spec.Action.TaskID != task.ID {
			t.Errorf("action = %+v, want Add Post for %s", spec.Action, task.ID)
		}
	})

	t.Run("completing with posts celebrates without an action", func(t *testing.T) {
		s := New(fixedClock("2025-11-14"))
		task := mustCreate(t, s, Draft{Title: "Ship release"})
		if _, err := s.AddPost(task.ID); err != nil {
			t.Fatalf("AddPost failed: %v", err)
		}

		_, spec, err := s.Toggle(task.ID, true)
		if err != nil {
			t.Fatalf("Toggle failed: %v", err)
		}
		if spec == nil {
			t.Fatal("expected a notification")
		}
		if spec.Action != nil {
			t.Errorf("expected no action when posts exist, got %+v", spec.Action)
		}
		if !strings.Contains(spec.Message, "evidence") {
			t.Errorf("message = %q, want the evidence variant", spec.Message)
		}
	})

	t.Run("un-completing restores state without a notification", func(t *testing.T) {
		s := New(fixedClock("2025-11-14"))
		task := mustCreate(t, s, Draft{Title: "Ship release"})
		if _, _, err := s.Toggle(task.ID, true); err != nil {
			t.Fatalf("Toggle failed: %v", err)
		}

		got, spec, err := s.Toggle(task.ID, false)
		if err != nil {
			t.Fatalf("Toggle failed: %v", err)
		}
		if got.Completed {
			t.Error("task should be incomplete again")
		}
		if spec != nil {
			t.Errorf("un-completing must be silent, got %q", spec.Message)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		s := New(nil)
		if _, _, err := s.Toggle("nope", true); !errors.Is(err, ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})
}

func TestToggleRecurring(t *testing.T) {
	t.Run("completing reschedules and reopens", func(t *testing.T) {
		s := New(fixedClock("2025-11-14"))
		task := mustCreate(t, s, Draft{
			Title:      "Water plants",
			DueDate:    model.Date(2025, time.November, 14),
			Recurrence: model.RecurrenceDaily,
		})

		got, spec, err := s.Toggle(task.ID, true)
		if err != nil {
			t.Fatalf("Toggle failed: %v", err)
		}

		if got.Completed {
			t.Error("recurring task must reopen immediately")
		}
		if !got.DueDate.Equal(model.Date(2025, time.November, 15)) {
			t.Errorf("due date = %v, want next day", got.DueDate)
		}
		if got.Streak != 1 {
			t.Errorf("streak = %d, want 1", got.Streak)
		}
		if got.LastCompleted == nil || !model.SameDay(*got.LastCompleted, model.Date(2025, time.November, 14)) {
			t.Errorf("last completed = %v, want today", got.LastCompleted)
		}

		if spec == nil {
			t.Fatal("expected a streak notification")
		}
		if !strings.Contains(spec.Message, "Streak 1!") {
			t.Errorf("message = %q, want streak count", spec.Message)
		}
		if !strings.HasPrefix(spec.Message, "✨") {
			t.Errorf("message = %q, want spark tier icon for streak 1", spec.Message)
		}
		if !strings.Contains(spec.Message, "Nov 15") {
			t.Errorf("message = %q, want new due date", spec.Message)
		}
	})

	t.Run("second completion the same day is rejected unchanged", func(t *testing.T) {
		s := New(fixedClock("2025-11-14"))
		task := mustCreate(t, s, Draft{
			Title:      "Water plants",
			DueDate:    model.Date(2025, time.November, 14),
			Recurrence: model.RecurrenceDaily,
		})

		first, _, err := s.Toggle(task.ID, true)
		if err != nil {
			t.Fatalf("first Toggle failed: %v", err)
		}

		second, spec, err := s.Toggle(task.ID, true)
		if err != nil {
			t.Fatalf("second Toggle failed: %v", err)
		}
		if spec == nil || !strings.Contains(spec.Message, "already completed") {
			t.Fatalf("notification = %v, want the rejection message", spec)
		}
		if spec.Action != nil {
			t.Error("rejection must carry no action")
		}

		if second.Streak != first.Streak {
			t.Errorf("streak advanced to %d on a same-day repeat", second.Streak)
		}
		if !second.DueDate.Equal(first.DueDate) {
			t.Errorf("due date moved to %v on a same-day repeat", second.DueDate)
		}
	})

	t.Run("completion the next day advances the streak", func(t *testing.T) {
		day := model.Date(2025, time.November, 14)
		s := New(func() time.Time { return day })
		task := mustCreate(t, s, Draft{
			Title:      "Water plants",
			DueDate:    model.Date(2025, time.November, 14),
			Recurrence: model.RecurrenceDaily,
		})

		if _, _, err := s.Toggle(task.ID, true); err != nil {
			t.Fatalf("Toggle failed: %v", err)
		}
		day = model.Date(2025, time.November, 15)

		got, spec, err := s.Toggle(task.ID, true)
		if err != nil {
			t.Fatalf("Toggle failed: %v", err)
		}
		if got.Streak != 2 {
			t.Errorf("streak = %d, want 2", got.Streak)
		}
		if !got.DueDate.Equal(model.Date(2025, time.November, 16)) {
			t.Errorf("due date = %v, want Nov 16", got.DueDate)
		}
		if spec == nil || !strings.Contains(spec.Message, "Streak 2!") {
			t.Errorf("notification = %v, want streak 2", spec)
		}
	})

	t.Run("streak tiers escalate the icon", func(t *testing.T) {
		day := model.Date(2025, time.January, 1)
		s := New(func() time.Time { return day })
		task := mustCreate(t, s, Draft{
			Title:      "Daily review",
			DueDate:    day,
			Recurrence: model.RecurrenceDaily,
		})

		var last *model.NotificationSpec
		for i := 0; i < 10; i++ {
			_, spec, err := s.Toggle(task.ID, true)
			if err != nil {
				t.Fatalf("Toggle %d failed: %v", i, err)
			}
			last = spec
			day = day.AddDate(0, 0, 1)
		}

		if last == nil || !strings.HasPrefix(last.Message, "🔥") {
			t.Errorf("message at streak 10 = %v, want blaze icon", last)
		}
		if !strings.Contains(last.Message, "Streak 10!") {
			t.Errorf("message = %q, want streak 10", last.Message)
		}
	})

	t.Run("monthly overflow follows calendar normalization", func(t *testing.T) {
		s := New(fixedClock("2025-01-31"))
		task := mustCreate(t, s, Draft{
			Title:      "Pay rent",
			DueDate:    model.Date(2025, time.January, 31),
			Recurrence: model.RecurrenceMonthly,
		})

		got, _, err := s.Toggle(task.ID, true)
		if err != nil {
			t.Fatalf("Toggle failed: %v", err)
		}
		if !got.DueDate.Equal(model.Date(2025, time.March, 3)) {
			t.Errorf("due date = %v, want Mar 3 (Jan 31 + 1 month normalized)", got.DueDate)
		}
	})

	t.Run("un-completing a reopened recurring task stays silent", func(t *testing.T) {
		s := New(fixedClock("2025-11-14"))
		task := mustCreate(t, s, Draft{
			Title:      "Water plants",
			DueDate:    model.Date(2025, time.November, 14),
			Recurrence: model.RecurrenceDaily,
		})
		if _, _, err := s.Toggle(task.ID, true); err != nil {
			t.Fatalf("Toggle failed: %v", err)
		}

		got, spec, err := s.Toggle(task.ID, false)
		if err != nil {
			t.Fatalf("Toggle failed: %v", err)
		}
		if spec != nil {
			t.Errorf("expected no notification, got %q", spec.Message)
		}
		if got.Streak != 1 {
			t.Errorf("streak = %d, un-completing must not touch it", got.Streak)
		}
	})
}
