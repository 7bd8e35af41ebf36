package store

import (
	"fmt"

	"github.com/nhle/taskdeck/internal/model"
)

// Toggle sets the completion state of the task with the given id and runs
// the recurrence machinery. It returns the task as it stands after the
// operation plus an optional notification for the caller to surface.
//
// Completing is the only transition with side effects:
//
//   - a non-recurring task is marked completed and a celebration message
//     is returned; if it has no attached posts the message carries an
//     "Add Post" follow-up action;
//   - a recurring task already completed today is left untouched and a
//     rejection message is returned;
//   - otherwise a recurring task is rescheduled one period out, reopened,
//     and its streak advanced.
//
// Un-completing, or re-completing an already-completed task, is a plain
// field write with no notification. The asymmetry is deliberate.
func (s *TaskStore) Toggle(id string, nowCompleted bool) (model.Task, *model.NotificationSpec, error) {
	i := s.index(id)
	if i < 0 {
		return model.Task{}, nil, fmt.Errorf("toggling %s: %w", id, ErrNotFound)
	}

	t := &s.tasks[i]
	if t.Completed || !nowCompleted {
		t.Completed = nowCompleted
		return t.Clone(), nil, nil
	}

	if t.IsRecurring() {
		today := model.DateOf(s.now())
		if t.LastCompleted != nil && model.SameDay(*t.LastCompleted, today) {
			// At-most-once-per-day guard: reject, leave the task untouched.
			return t.Clone(), &model.NotificationSpec{
				Message: "⏰ You've already completed this task today! Come back tomorrow.",
			}, nil
		}

		t.DueDate = t.Recurrence.NextDue(t.DueDate)
		t.Completed = false // reopen immediately for the next cycle
		t.Streak++
		t.LastCompleted = &today

		tier := model.TierFor(t.Streak)
		return t.Clone(), &model.NotificationSpec{
			Message: fmt.Sprintf(
				"%s Streak %d! %q completed and rescheduled to %s",
				tier.Icon(), t.Streak, t.Title, t.DueDate.Format("Jan 2"),
			),
		}, nil
	}

	t.Completed = true
	if t.Posts > 0 {
		return t.Clone(), &model.NotificationSpec{
			Message: "🎉 Awesome! You completed this task and attached evidence. Keep up the great work!",
		}, nil
	}
	return t.Clone(), &model.NotificationSpec{
		Message: "✨ Nice work! Task completed! Want to capture this moment?",
		Action:  &model.NotificationAction{Label: "Add Post", TaskID: t.ID},
	}, nil
}
