package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/nhle/taskdeck/internal/model"
)

// Snapshot persists the in-memory task collection to a local SQLite
// database. It is layered on top of the mutation API: the app writes the
// whole collection out after each mutation and reads it back on startup.
// The core engine itself stays in-memory only.
type Snapshot struct {
	db *sqlx.DB
}

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
// Each migration's version must be sequential starting from 1.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS tasks (
	id             TEXT PRIMARY KEY,
	position       INTEGER NOT NULL,
	completed      INTEGER NOT NULL DEFAULT 0,
	title          TEXT NOT NULL,
	description    TEXT NOT NULL DEFAULT '',
	due_date       TEXT NOT NULL,
	priority       TEXT NOT NULL DEFAULT 'Medium',
	recurrence     TEXT NOT NULL DEFAULT 'none',
	tags           TEXT NOT NULL DEFAULT '[]',
	posts          INTEGER NOT NULL DEFAULT 0,
	streak         INTEGER NOT NULL DEFAULT 0,
	last_completed TEXT,
	linkages       TEXT NOT NULL DEFAULT '{}'
);
`,
	},
}

// OpenSnapshot opens (or creates) the snapshot database at dbPath,
// enables WAL mode, and runs any pending schema migrations.
func OpenSnapshot(dbPath string) (*Snapshot, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, fmt.Errorf("creating snapshot directory: %w", err)
		}
	}

	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot db: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	s := &Snapshot{db: db}
	if err := s.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the underlying database connection.
func (s *Snapshot) Close() error {
	return s.db.Close()
}

// runMigrations checks the current schema version and applies any
// outstanding migrations in order.
func (s *Snapshot) runMigrations() error {
	currentVersion := 0

	var tableCount int
	err := s.db.Get(
		&tableCount,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	)
	if err != nil {
		return fmt.Errorf("checking schema_version table: %w", err)
	}

	if tableCount > 0 {
		err = s.db.Get(&currentVersion, "SELECT COALESCE(MAX(version), 0) FROM schema_version")
		if err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}
		if _, err := s.db.Exec(m.sql); err != nil {
			return fmt.Errorf("applying migration %d: %w", m.version, err)
		}
		if _, err := s.db.Exec(
			"INSERT INTO schema_version (version) VALUES (?)", m.version,
		); err != nil {
			return fmt.Errorf("recording migration %d: %w", m.version, err)
		}
	}

	return nil
}

// taskRow is the flat database representation of a task. Tags and
// linkages are stored as JSON text columns.
type taskRow struct {
	ID            string  `db:"id"`
	Position      int     `db:"position"`
	Completed     bool    `db:"completed"`
	Title         string  `db:"title"`
	Description   string  `db:"description"`
	DueDate       string  `db:"due_date"`
	Priority      string  `db:"priority"`
	Recurrence    string  `db:"recurrence"`
	Tags          string  `db:"tags"`
	Posts         int     `db:"posts"`
	Streak        int     `db:"streak"`
	LastCompleted *string `db:"last_completed"`
	Linkages      string  `db:"linkages"`
}

// Save replaces the stored collection with the given one, preserving its
// order. The write is transactional: either the whole snapshot is
// replaced or nothing changes.
func (s *Snapshot) Save(tasks []model.Task) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return fmt.Errorf("starting snapshot transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM tasks"); err != nil {
		return fmt.Errorf("clearing snapshot: %w", err)
	}

	for i, t := range tasks {
		row, err := toRow(t, i)
		if err != nil {
			return fmt.Errorf("encoding task %s: %w", t.ID, err)
		}
		_, err = tx.NamedExec(`
			INSERT INTO tasks (
				id, position, completed, title, description,
				due_date, priority, recurrence, tags,
				posts, streak, last_completed, linkages
			) VALUES (
				:id, :position, :completed, :title, :description,
				:due_date, :priority, :recurrence, :tags,
				:posts, :streak, :last_completed, :linkages
			)`, row)
		if err != nil {
			return fmt.Errorf("writing task %s: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing snapshot: %w", err)
	}
	return nil
}

// Load reads the stored collection back in its saved order. An empty
// database yields an empty, non-nil slice.
func (s *Snapshot) Load() ([]model.Task, error) {
	var rows []taskRow
	err := s.db.Select(&rows, "SELECT * FROM tasks ORDER BY position ASC")
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	tasks := make([]model.Task, 0, len(rows))
	for _, r := range rows {
		t, err := fromRow(r)
		if err != nil {
			return nil, fmt.Errorf("decoding task %s: %w", r.ID, err)
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func toRow(t model.Task, position int) (taskRow, error) {
	tags, err := json.Marshal(t.Tags)
	if err != nil {
		return taskRow{}, err
	}
	linkages, err := json.Marshal(t.Linkages)
	if err != nil {
		return taskRow{}, err
	}

	row := taskRow{
		ID:          t.ID,
		Position:    position,
		Completed:   t.Completed,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate.Format(model.DateLayout),
		Priority:    string(t.Priority),
		Recurrence:  string(t.Recurrence),
		Tags:        string(tags),
		Posts:       t.Posts,
		Streak:      t.Streak,
		Linkages:    string(linkages),
	}
	if t.LastCompleted != nil {
		lc := t.LastCompleted.Format(model.DateLayout)
		row.LastCompleted = &lc
	}
	return row, nil
}

func fromRow(r taskRow) (model.Task, error) {
	due, err := model.ParseDate(r.DueDate)
	if err != nil {
		return model.Task{}, fmt.Errorf("parsing due date %q: %w", r.DueDate, err)
	}

	t := model.Task{
		ID:          r.ID,
		Completed:   r.Completed,
		Title:       r.Title,
		Description: r.Description,
		DueDate:     due,
		Priority:    model.Priority(r.Priority),
		Recurrence:  model.Recurrence(r.Recurrence),
		Posts:       r.Posts,
		Streak:      r.Streak,
	}

	if r.Tags != "" {
		if err := json.Unmarshal([]byte(r.Tags), &t.Tags); err != nil {
			return model.Task{}, fmt.Errorf("parsing tags: %w", err)
		}
	}
	if r.Linkages != "" {
		if err := json.Unmarshal([]byte(r.Linkages), &t.Linkages); err != nil {
			return model.Task{}, fmt.Errorf("parsing linkages: %w", err)
		}
	}
	if r.LastCompleted != nil && *r.LastCompleted != "" {
		lc, err := model.ParseDate(*r.LastCompleted)
		if err != nil {
			return model.Task{}, fmt.Errorf("parsing last completed %q: %w", *r.LastCompleted, err)
		}
		t.LastCompleted = &lc
	}

	return t, nil
}
