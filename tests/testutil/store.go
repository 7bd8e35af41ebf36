package testutil

import (
	"testing"
	"time"

	"github.com/nhle/taskdeck/internal/model"
	"github.com/nhle/taskdeck/internal/store"
)

// Clock returns a store clock frozen at the given YYYY-MM-DD date.
func Clock(t *testing.T, day string) func() time.Time {
	t.Helper()

	d, err := model.ParseDate(day)
	if err != nil {
		t.Fatalf("parsing clock date %q: %v", day, err)
	}
	return func() time.Time { return d }
}

// NewStore creates a task store with its clock frozen at the given date.
func NewStore(t *testing.T, day string) *store.TaskStore {
	t.Helper()
	return store.New(Clock(t, day))
}
