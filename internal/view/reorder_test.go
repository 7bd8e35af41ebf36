package view

import (
	"strings"
	"testing"

	"github.com/nhle/taskdeck/internal/model"
)

func TestReorder(t *testing.T) {
	displayed := []model.Task{
		task("a", "alpha"),
		task("b", "beta"),
		task("c", "gamma"),
	}

	tests := []struct {
		name       string
		drag, over int
		want       string
	}{
		{"drag first past the others", 0, 2, "b c a"},
		{"drag last to the front", 2, 0, "c a b"},
		{"swap neighbors down", 0, 1, "b a c"},
		{"swap neighbors up", 2, 1, "a c b"},
		{"same position is a no-op", 1, 1, "a b c"},
		{"negative drag index is a no-op", -1, 1, "a b c"},
		{"out-of-range hover index is a no-op", 0, 3, "a b c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strings.Join(Reorder(displayed, tt.drag, tt.over), " ")
			if got != tt.want {
				t.Errorf("Reorder(%d, %d) = %q, want %q", tt.drag, tt.over, got, tt.want)
			}
		})
	}

	t.Run("input sequence is not mutated", func(t *testing.T) {
		Reorder(displayed, 0, 2)
		if displayed[0].ID != "a" || displayed[1].ID != "b" || displayed[2].ID != "c" {
			t.Error("Reorder mutated the displayed slice")
		}
	})
}
