package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/taskdeck/internal/store"
	"github.com/nhle/taskdeck/tests/testutil"
)

func newTestApp(t *testing.T, snap *store.Snapshot) (Model, *store.TaskStore) {
	t.Helper()

	s := testutil.NewStore(t, "2025-11-14")
	if _, err := s.Create(store.Draft{Title: "Write trip report"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	m := New(nil, s, snap)
	mdl, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return mdl.(Model), s
}

func press(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	mdl, _ := m.Update(msg)
	return mdl.(Model)
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestComposerKeepsBareLetters(t *testing.T) {
	m, _ := newTestApp(t, nil)

	m = press(t, m, keyPress('s'))
	if m.mode != ModeCompose {
		t.Fatalf("mode = %v after s, want ModeCompose", m.mode)
	}

	// Letters bound to list-mode panels (w, m, v...) must reach the
	// textarea while the composer has focus.
	for _, r := range "went well" {
		m = press(t, m, keyPress(r))
	}

	if m.chatOverCompose {
		t.Fatal("typing a bare letter opened the writing-partner chat")
	}
	if m.mode != ModeCompose {
		t.Fatalf("mode = %v, want ModeCompose", m.mode)
	}
	if got := m.composer.Value(); got != "went well" {
		t.Errorf("draft = %q, want %q", got, "went well")
	}
}

func TestComposerSummonsWritingPartnerWithModifier(t *testing.T) {
	m, _ := newTestApp(t, nil)

	m = press(t, m, keyPress('s'))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlW})

	if m.mode != ModeCompose {
		t.Fatalf("mode = %v, want ModeCompose with the chat overlaid", m.mode)
	}
	if !m.chatOverCompose {
		t.Fatal("ctrl+w should open the writing partner over the composer")
	}
}

// collectSaved runs a command tree and returns the snapshotSavedMsg it
// produces, if any.
func collectSaved(t *testing.T, cmd tea.Cmd) (snapshotSavedMsg, bool) {
	t.Helper()
	if cmd == nil {
		return snapshotSavedMsg{}, false
	}
	switch msg := cmd().(type) {
	case snapshotSavedMsg:
		return msg, true
	case tea.BatchMsg:
		for _, c := range msg {
			if saved, ok := collectSaved(t, c); ok {
				return saved, true
			}
		}
	}
	return snapshotSavedMsg{}, false
}

func TestSnapshotSavesAreSerialized(t *testing.T) {
	snap, err := store.OpenSnapshot(":memory:")
	if err != nil {
		t.Fatalf("creating test snapshot: %v", err)
	}
	t.Cleanup(func() { snap.Close() })

	m, s := newTestApp(t, snap)

	first := m.scheduleSave()
	if first == nil || !m.saving {
		t.Fatal("first mutation should start a save")
	}

	// A second mutation while the save runs must queue, not start a
	// concurrent write that could commit out of order.
	if _, err := s.Create(store.Draft{Title: "Pack bags"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if cmd := m.scheduleSave(); cmd != nil {
		t.Fatal("second save started while the first was in flight")
	}
	if m.pendingSave == nil {
		t.Fatal("second collection was not queued")
	}

	// The first save completes and reports back; the queued collection
	// is written next.
	firstResult, ok := collectSaved(t, first)
	if !ok || firstResult.err != nil {
		t.Fatalf("first save = %+v", firstResult)
	}
	mdl, next := m.Update(firstResult)
	m = mdl.(Model)
	if !m.saving || m.pendingSave != nil {
		t.Fatal("completion of the first save should start the queued one")
	}

	queuedResult, ok := collectSaved(t, next)
	if !ok {
		t.Fatal("no follow-up save command was issued")
	}
	if queuedResult.err != nil {
		t.Fatalf("queued save failed: %v", queuedResult.err)
	}

	loaded, err := snap.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != s.Len() {
		t.Errorf("snapshot holds %d tasks, want the latest %d", len(loaded), s.Len())
	}
}
