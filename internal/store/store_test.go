package store

import (
	"errors"
	"testing"
	"time"

	"github.com/nhle/taskdeck/internal/model"
)

func fixedClock(day string) func() time.Time {
	d, err := model.ParseDate(day)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return d }
}

func mustCreate(t *testing.T, s *TaskStore, d Draft) model.Task {
	t.Helper()
	task, err := s.Create(d)
	if err != nil {
		t.Fatalf("Create(%q) failed: %v", d.Title, err)
	}
	return task
}

func TestCreate(t *testing.T) {
	t.Run("assigns id and defaults", func(t *testing.T) {
		s := New(fixedClock("2025-11-14"))
		task := mustCreate(t, s, Draft{Title: "Water plants"})

		if task.ID == "" {
			t.Error("expected a generated id")
		}
		if task.Completed {
			t.Error("new task should start incomplete")
		}
		if task.Priority != model.PriorityMedium {
			t.Errorf("default priority = %q, want Medium", task.Priority)
		}
		if task.Recurrence != model.RecurrenceNone {
			t.Errorf("default recurrence = %q, want none", task.Recurrence)
		}
		if task.Posts != 0 || task.Streak != 0 {
			t.Errorf("posts/streak = %d/%d, want 0/0", task.Posts, task.Streak)
		}
	})

	t.Run("rejects blank titles", func(t *testing.T) {
		s := New(nil)
		for _, title := range []string{"", "   ", "\t\n"} {
			if _, err := s.Create(Draft{Title: title}); !errors.Is(err, ErrEmptyTitle) {
				t.Errorf("Create(%q) error = %v, want ErrEmptyTitle", title, err)
			}
		}
		if s.Len() != 0 {
			t.Errorf("rejected creates left %d tasks behind", s.Len())
		}
	})

	t.Run("keeps surrounding whitespace in accepted titles", func(t *testing.T) {
		s := New(nil)
		task := mustCreate(t, s, Draft{Title: "  Review draft  "})
		if task.Title != "  Review draft  " {
			t.Errorf("title = %q, want original spacing preserved", task.Title)
		}
	})

	t.Run("prepends new tasks", func(t *testing.T) {
		s := New(nil)
		mustCreate(t, s, Draft{Title: "first"})
		mustCreate(t, s, Draft{Title: "second"})

		tasks := s.Tasks()
		if tasks[0].Title != "second" || tasks[1].Title != "first" {
			t.Errorf("order = [%q %q], want newest first", tasks[0].Title, tasks[1].Title)
		}
	})

	t.Run("normalizes the due date", func(t *testing.T) {
		s := New(nil)
		task := mustCreate(t, s, Draft{
			Title:   "Ship release",
			DueDate: time.Date(2025, time.November, 14, 17, 30, 0, 0, time.UTC),
		})
		if !task.DueDate.Equal(model.Date(2025, time.November, 14)) {
			t.Errorf("due date = %v, want midnight UTC", task.DueDate)
		}
	})

	t.Run("falls back to Medium for unknown priority", func(t *testing.T) {
		s := New(nil)
		task := mustCreate(t, s, Draft{Title: "x", Priority: model.Priority("Critical")})
		if task.Priority != model.PriorityMedium {
			t.Errorf("priority = %q, want Medium", task.Priority)
		}
	})
}

func TestApply(t *testing.T) {
	newStore := func(t *testing.T) (*TaskStore, model.Task) {
		s := New(nil)
		task := mustCreate(t, s, Draft{
			Title:       "Write report",
			Description: "quarterly numbers",
			DueDate:     model.Date(2025, time.November, 14),
			Priority:    model.PriorityHigh,
			Tags:        []string{"work"},
		})
		return s, task
	}

	t.Run("patches only the set fields", func(t *testing.T) {
		s, task := newStore(t)
		title := "Write annual report"
		got, err := s.Apply(task.ID, Patch{Title: &title})
		if err != nil {
			t.Fatalf("Apply failed: %v", err)
		}
		if got.Title != title {
			t.Errorf("title = %q, want %q", got.Title, title)
		}
		if got.Description != task.Description || got.Priority != task.Priority {
			t.Error("unset patch fields must not change")
		}
	})

	t.Run("replaces the whole tag slice", func(t *testing.T) {
		s, task := newStore(t)
		tags := []string{"finance", "q4"}
		got, err := s.Apply(task.ID, Patch{Tags: &tags})
		if err != nil {
			t.Fatalf("Apply failed: %v", err)
		}
		if len(got.Tags) != 2 || got.Tags[0] != "finance" || got.Tags[1] != "q4" {
			t.Errorf("tags = %v, want [finance q4]", got.Tags)
		}
	})

	t.Run("rejects a blank patched title", func(t *testing.T) {
		s, task := newStore(t)
		blank := "   "
		if _, err := s.Apply(task.ID, Patch{Title: &blank}); !errors.Is(err, ErrEmptyTitle) {
			t.Errorf("error = %v, want ErrEmptyTitle", err)
		}
		got, _ := s.Get(task.ID)
		if got.Title != task.Title {
			t.Error("rejected patch must leave the task unchanged")
		}
	})

	t.Run("ignores an invalid patched priority", func(t *testing.T) {
		s, task := newStore(t)
		bogus := model.Priority("Critical")
		got, err := s.Apply(task.ID, Patch{Priority: &bogus})
		if err != nil {
			t.Fatalf("Apply failed: %v", err)
		}
		if got.Priority != task.Priority {
			t.Errorf("priority = %q, want unchanged %q", got.Priority, task.Priority)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		s, _ := newStore(t)
		title := "x"
		if _, err := s.Apply("nope", Patch{Title: &title}); !errors.Is(err, ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})
}

func TestTags(t *testing.T) {
	s := New(nil)
	task := mustCreate(t, s, Draft{Title: "Plan trip", Tags: []string{"travel"}})

	got, err := s.AddTag(task.ID, "summer")
	if err != nil {
		t.Fatalf("AddTag failed: %v", err)
	}
	if len(got.Tags) != 2 || got.Tags[1] != "summer" {
		t.Errorf("tags = %v, want travel then summer", got.Tags)
	}

	// Duplicates are allowed; RemoveTag drops the first occurrence only.
	if _, err := s.AddTag(task.ID, "travel"); err != nil {
		t.Fatalf("AddTag failed: %v", err)
	}
	got, err = s.RemoveTag(task.ID, "travel")
	if err != nil {
		t.Fatalf("RemoveTag failed: %v", err)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "summer" || got.Tags[1] != "travel" {
		t.Errorf("tags = %v, want [summer travel]", got.Tags)
	}

	// Removing an absent tag is a no-op.
	got, err = s.RemoveTag(task.ID, "missing")
	if err != nil {
		t.Fatalf("RemoveTag failed: %v", err)
	}
	if len(got.Tags) != 2 {
		t.Errorf("tags = %v, want unchanged", got.Tags)
	}
}

func TestAddPost(t *testing.T) {
	s := New(nil)
	task := mustCreate(t, s, Draft{Title: "Morning run"})

	for want := 1; want <= 3; want++ {
		got, err := s.AddPost(task.ID)
		if err != nil {
			t.Fatalf("AddPost failed: %v", err)
		}
		if got.Posts != want {
			t.Errorf("posts = %d, want %d", got.Posts, want)
		}
	}

	if _, err := s.AddPost("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	s := New(nil)
	a := mustCreate(t, s, Draft{Title: "a"})
	mustCreate(t, s, Draft{Title: "b"})

	s.Delete(a.ID)
	if s.Len() != 1 {
		t.Fatalf("len = %d, want 1", s.Len())
	}
	if _, ok := s.Get(a.ID); ok {
		t.Error("deleted task still present")
	}

	// Deleting again, or deleting an unknown id, is a no-op.
	s.Delete(a.ID)
	s.Delete("nope")
	if s.Len() != 1 {
		t.Errorf("len after no-op deletes = %d, want 1", s.Len())
	}
}

func TestClearCompleted(t *testing.T) {
	s := New(fixedClock("2025-11-14"))
	mustCreate(t, s, Draft{Title: "open one"})
	done1 := mustCreate(t, s, Draft{Title: "done one"})
	done2 := mustCreate(t, s, Draft{Title: "done two"})
	for _, id := range []string{done1.ID, done2.ID} {
		if _, _, err := s.Toggle(id, true); err != nil {
			t.Fatalf("Toggle failed: %v", err)
		}
	}

	if removed := s.ClearCompleted(); removed != 2 {
		t.Errorf("removed = %d, want 2", removed)
	}
	if s.Len() != 1 {
		t.Errorf("len = %d, want 1", s.Len())
	}
	if s.Tasks()[0].Title != "open one" {
		t.Errorf("survivor = %q, want the open task", s.Tasks()[0].Title)
	}

	if removed := s.ClearCompleted(); removed != 0 {
		t.Errorf("second clear removed %d, want 0", removed)
	}
}

func TestTasksReturnsCopies(t *testing.T) {
	s := New(nil)
	task := mustCreate(t, s, Draft{Title: "original", Tags: []string{"keep"}})

	out := s.Tasks()
	out[0].Title = "mutated"
	out[0].Tags[0] = "mutated"

	got, _ := s.Get(task.ID)
	if got.Title != "original" || got.Tags[0] != "keep" {
		t.Error("mutating the returned slice leaked into store state")
	}
}

func TestClock(t *testing.T) {
	day := model.Date(2025, time.November, 14)
	s := New(func() time.Time { return day })

	if !s.Clock()().Equal(day) {
		t.Error("Clock must return the injected time source")
	}
	if New(nil).Clock() == nil {
		t.Error("Clock must fall back to a real time source")
	}
}

func TestReplace(t *testing.T) {
	s := New(nil)
	mustCreate(t, s, Draft{Title: "stale"})

	seed := []model.Task{
		{ID: "s1", Title: "one", Priority: model.PriorityHigh, Recurrence: model.RecurrenceNone},
		{ID: "s2", Title: "two", Priority: model.PriorityLow, Recurrence: model.RecurrenceDaily},
	}
	s.Replace(seed)

	if s.Len() != 2 {
		t.Fatalf("len = %d, want 2", s.Len())
	}
	seed[0].Title = "mutated"
	got, _ := s.Get("s1")
	if got.Title != "one" {
		t.Error("Replace must clone its input")
	}
}
