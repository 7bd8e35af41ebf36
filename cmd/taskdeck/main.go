package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/taskdeck/internal/app"
	"github.com/nhle/taskdeck/internal/model"
	"github.com/nhle/taskdeck/internal/store"
)

func main() {
	cfg, err := model.LoadConfig(model.DefaultConfigPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	s := store.New(nil)

	var snap *store.Snapshot
	if cfg.Snapshot.Enabled {
		snap, err = store.OpenSnapshot(cfg.Snapshot.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open snapshot: %v\n", err)
			os.Exit(1)
		}
		defer snap.Close()

		tasks, err := snap.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load snapshot: %v\n", err)
			os.Exit(1)
		}
		s.Replace(tasks)
	}

	if s.Len() == 0 && cfg.SeedOnEmpty {
		s.Replace(store.Seed())
	}

	p := tea.NewProgram(app.New(cfg, s, snap), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error running program: %v\n", err)
		os.Exit(1)
	}
}
