package notify

import (
	"strings"
	"testing"
	"time"

	"github.com/nhle/taskdeck/internal/model"
)

func TestShowAndDismiss(t *testing.T) {
	m := New(time.Second)

	cmd := m.Show(model.NotificationSpec{Message: "hello"})
	if cmd == nil {
		t.Fatal("Show must schedule a dismissal")
	}
	if !m.Visible() || m.Message() != "hello" {
		t.Errorf("visible=%v message=%q after Show", m.Visible(), m.Message())
	}

	m, _ = m.Update(dismissMsg{token: m.token})
	if m.Visible() {
		t.Error("notification should be dismissed after its timer fires")
	}
	if m.Message() != "" {
		t.Errorf("message = %q after dismissal, want empty", m.Message())
	}
}

func TestReplacementSupersedesOldTimer(t *testing.T) {
	m := New(time.Second)

	m.Show(model.NotificationSpec{Message: "first"})
	firstToken := m.token
	m.Show(model.NotificationSpec{Message: "second"})

	// The first notification's timer fires late; it must not dismiss the
	// replacement.
	m, _ = m.Update(dismissMsg{token: firstToken})
	if !m.Visible() || m.Message() != "second" {
		t.Errorf("stale timer dismissed the replacement: visible=%v message=%q",
			m.Visible(), m.Message())
	}

	m, _ = m.Update(dismissMsg{token: m.token})
	if m.Visible() {
		t.Error("current timer should dismiss the replacement")
	}
}

func TestActionAvailability(t *testing.T) {
	m := New(time.Second)

	if m.Action() != nil {
		t.Error("no action before any notification")
	}

	m.Show(model.NotificationSpec{
		Message: "done",
		Action:  &model.NotificationAction{Label: "Add Post", TaskID: "t1"},
	})
	action := m.Action()
	if action == nil || action.TaskID != "t1" {
		t.Fatalf("action = %+v, want Add Post for t1", action)
	}

	// Triggering the action does not dismiss; only the timer does.
	if !m.Visible() {
		t.Error("notification must stay visible until its timer fires")
	}

	m, _ = m.Update(dismissMsg{token: m.token})
	if m.Action() != nil {
		t.Error("no action after dismissal")
	}
}

func TestViewRendersActionHint(t *testing.T) {
	m := New(time.Second)

	if m.View() != "" {
		t.Errorf("empty dispatcher rendered %q", m.View())
	}

	m.Show(model.NotificationSpec{
		Message: "done",
		Action:  &model.NotificationAction{Label: "Add Post", TaskID: "t1"},
	})
	out := m.View()
	if !strings.Contains(out, "done") || !strings.Contains(out, "Add Post") {
		t.Errorf("View() = %q, want message and action hint", out)
	}
}

func TestNonPositiveDurationFallsBack(t *testing.T) {
	m := New(0)
	if m.duration != DefaultDuration {
		t.Errorf("duration = %v, want DefaultDuration", m.duration)
	}
}
