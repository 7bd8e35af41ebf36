package store

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nhle/taskdeck/internal/model"
)

var (
	// ErrEmptyTitle is returned when a draft's title is blank.
	ErrEmptyTitle = errors.New("task title must not be empty")

	// ErrNotFound is returned when a mutation references an unknown id.
	ErrNotFound = errors.New("task not found")
)

// Draft is the input for creating a task. Id, completion, posts, and
// streak are store-assigned and deliberately absent.
type Draft struct {
	Title       string
	Description string
	DueDate     time.Time
	Priority    model.Priority
	Recurrence  model.Recurrence
	Tags        []string
	Linkages    model.Linkages
}

// Patch is a closed set of optional field updates. A nil field leaves the
// corresponding task field unchanged; Tags replaces the whole slice.
type Patch struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	Priority    *model.Priority
	Recurrence  *model.Recurrence
	Tags        *[]string
}

// TaskStore owns the canonical task collection. Each mutation either fully
// applies or leaves the collection unchanged. The store is written for a
// single-owner event loop and does no locking of its own.
type TaskStore struct {
	tasks []model.Task
	now   func() time.Time
}

// New creates an empty store. now supplies the current time for due-date
// and streak comparisons and is injectable for tests; nil means time.Now.
func New(now func() time.Time) *TaskStore {
	if now == nil {
		now = time.Now
	}
	return &TaskStore{now: now}
}

// Clock returns the store's time source, so callers that need "today"
// share the injected clock instead of reading time.Now themselves.
func (s *TaskStore) Clock() func() time.Time {
	return s.now
}

// Tasks returns a deep copy of the collection in raw insertion order
// (newest first). Callers cannot alias into store state through it.
func (s *TaskStore) Tasks() []model.Task {
	out := make([]model.Task, len(s.tasks))
	for i, t := range s.tasks {
		out[i] = t.Clone()
	}
	return out
}

// Len returns the number of live tasks.
func (s *TaskStore) Len() int {
	return len(s.tasks)
}

// Get returns a copy of the task with the given id.
func (s *TaskStore) Get(id string) (model.Task, bool) {
	i := s.index(id)
	if i < 0 {
		return model.Task{}, false
	}
	return s.tasks[i].Clone(), true
}

// Replace swaps in a whole collection, e.g. the seed list or a restored
// snapshot. The slice is cloned.
func (s *TaskStore) Replace(tasks []model.Task) {
	s.tasks = make([]model.Task, len(tasks))
	for i, t := range tasks {
		s.tasks[i] = t.Clone()
	}
}

// Create validates the draft, assigns a fresh id, and prepends the new
// task to the collection. Display order is the projector's concern;
// raw insertion order is newest first.
func (s *TaskStore) Create(d Draft) (model.Task, error) {
	if strings.TrimSpace(d.Title) == "" {
		return model.Task{}, ErrEmptyTitle
	}

	t := model.Task{
		ID:          uuid.New().String(),
		Completed:   false,
		Title:       d.Title,
		Description: d.Description,
		DueDate:     model.DateOf(d.DueDate),
		Priority:    d.Priority,
		Recurrence:  d.Recurrence,
		Tags:        append([]string(nil), d.Tags...),
		Posts:       0,
		Streak:      0,
		Linkages:    d.Linkages,
	}
	if !t.Priority.Valid() {
		t.Priority = model.PriorityMedium
	}
	if t.Recurrence == "" {
		t.Recurrence = model.RecurrenceNone
	}

	s.tasks = append([]model.Task{t}, s.tasks...)
	return t.Clone(), nil
}

// Apply merges the patch into the task with the given id and returns the
// updated task.
func (s *TaskStore) Apply(id string, p Patch) (model.Task, error) {
	i := s.index(id)
	if i < 0 {
		return model.Task{}, fmt.Errorf("applying patch to %s: %w", id, ErrNotFound)
	}

	t := &s.tasks[i]
	if p.Title != nil {
		if strings.TrimSpace(*p.Title) == "" {
			return model.Task{}, ErrEmptyTitle
		}
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.DueDate != nil {
		t.DueDate = model.DateOf(*p.DueDate)
	}
	if p.Priority != nil && p.Priority.Valid() {
		t.Priority = *p.Priority
	}
	if p.Recurrence != nil {
		t.Recurrence = *p.Recurrence
	}
	if p.Tags != nil {
		t.Tags = append([]string(nil), (*p.Tags)...)
	}

	return t.Clone(), nil
}

// AddTag appends a tag to the task's tag list. Duplicates are allowed;
// insertion order is preserved for display.
func (s *TaskStore) AddTag(id, tag string) (model.Task, error) {
	i := s.index(id)
	if i < 0 {
		return model.Task{}, fmt.Errorf("adding tag to %s: %w", id, ErrNotFound)
	}
	s.tasks[i].Tags = append(s.tasks[i].Tags, tag)
	return s.tasks[i].Clone(), nil
}

// RemoveTag removes the first occurrence of tag from the task's tag list.
func (s *TaskStore) RemoveTag(id, tag string) (model.Task, error) {
	i := s.index(id)
	if i < 0 {
		return model.Task{}, fmt.Errorf("removing tag from %s: %w", id, ErrNotFound)
	}
	tags := s.tasks[i].Tags
	for j, tg := range tags {
		if tg == tag {
			s.tasks[i].Tags = append(tags[:j:j], tags[j+1:]...)
			break
		}
	}
	return s.tasks[i].Clone(), nil
}

// AddPost increments the task's attached-post count. Post content itself
// lives with the presentation layer; the store tracks the count only.
func (s *TaskStore) AddPost(id string) (model.Task, error) {
	i := s.index(id)
	if i < 0 {
		return model.Task{}, fmt.Errorf("adding post to %s: %w", id, ErrNotFound)
	}
	s.tasks[i].Posts++
	return s.tasks[i].Clone(), nil
}

// Delete removes the task with the given id. Deleting an absent id is a
// no-op; intent confirmation is the caller's concern.
func (s *TaskStore) Delete(id string) {
	i := s.index(id)
	if i < 0 {
		return
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
}

// ClearCompleted removes every completed task and returns how many were
// removed. Like Delete, it assumes the caller has confirmed intent.
func (s *TaskStore) ClearCompleted() int {
	kept := s.tasks[:0]
	removed := 0
	for _, t := range s.tasks {
		if t.Completed {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	s.tasks = kept
	return removed
}

// index returns the position of the task with the given id, or -1.
func (s *TaskStore) index(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
