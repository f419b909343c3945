package store

import (
	"fmt"
)

type migration struct {
	Version     int
	Description string
	SQL         string
}

var migrations = []migration{
	{
		Version:     1,
		Description: "heap_events: allocation and transition audit trail",
		SQL: `
CREATE TABLE heap_events (
    id         INTEGER PRIMARY KEY,
    event      TEXT NOT NULL CHECK (event IN ('allocate', 'overwrite', 'transition')),
    object_id  INTEGER NOT NULL,
    zone       TEXT NOT NULL,
    state      TEXT NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE INDEX idx_events_object  ON heap_events(object_id);
CREATE INDEX idx_events_created ON heap_events(created_at DESC);
`,
	},
	{
		Version:     2,
		Description: "sweep_cycles + sweep_reclaims: per-cycle collection history",
		SQL: `
CREATE TABLE sweep_cycles (
    id           INTEGER PRIMARY KEY,
    pending_mask INTEGER NOT NULL,
    reclaimed    INTEGER NOT NULL,
    duration_us  INTEGER NOT NULL,
    created_at   INTEGER NOT NULL
);

CREATE INDEX idx_cycles_created ON sweep_cycles(created_at DESC);

CREATE TABLE sweep_reclaims (
    id        INTEGER PRIMARY KEY,
    cycle_id  INTEGER NOT NULL,
    object_id INTEGER NOT NULL,
    zone      TEXT NOT NULL,
    state     TEXT NOT NULL,

    FOREIGN KEY (cycle_id) REFERENCES sweep_cycles(id) ON DELETE CASCADE
);

CREATE INDEX idx_reclaims_cycle ON sweep_reclaims(cycle_id);
`,
	},
}

func (db *DB) migrate() error {
	// Create schema_versions table if it doesn't exist
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_versions (
			version     INTEGER PRIMARY KEY,
			description TEXT NOT NULL,
			applied_at  INTEGER NOT NULL DEFAULT (strftime('%s', 'now') * 1000)
		)
	`)
	if err != nil {
		return fmt.Errorf("create schema_versions: %w", err)
	}

	for _, m := range migrations {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM schema_versions WHERE version = ?", m.Version).Scan(&count)
		if err != nil {
			return fmt.Errorf("check migration %d: %w", m.Version, err)
		}
		if count > 0 {
			continue
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin migration %d: %w", m.Version, err)
		}

		if _, err := tx.Exec(m.SQL); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d (%s): %w", m.Version, m.Description, err)
		}

		if _, err := tx.Exec(
			"INSERT INTO schema_versions (version, description) VALUES (?, ?)",
			m.Version, m.Description,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("record migration %d: %w", m.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %d: %w", m.Version, err)
		}
	}

	return nil
}

// SchemaVersion returns the current schema version.
func (db *DB) SchemaVersion() (int, error) {
	var version int
	err := db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_versions").Scan(&version)
	return version, err
}
