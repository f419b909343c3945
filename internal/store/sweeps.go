package store

import (
	"fmt"
	"time"

	"github.com/Abdullahlab-n/VGC-for-arxiv/internal/vgc"
)

// SweepCycle is one persisted collection cycle.
type SweepCycle struct {
	ID          int64
	PendingMask uint8
	Reclaimed   int
	DurationUS  int64
	CreatedAt   int64
}

// ReclaimedObject is one object removed during a persisted sweep cycle.
type ReclaimedObject struct {
	ID       int64
	CycleID  int64
	ObjectID uint32
	Zone     string
	State    string
}

// RecordSweep persists a completed sweep cycle and its reclaimed objects in
// a single transaction. Returns the cycle row id.
func (db *DB) RecordSweep(res vgc.SweepResult) (int64, error) {
	now := time.Now().UnixMilli()

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin sweep record: %w", err)
	}

	result, err := tx.Exec(`
		INSERT INTO sweep_cycles (pending_mask, reclaimed, duration_us, created_at)
		VALUES (?, ?, ?, ?)
	`, res.PendingMask, len(res.Reclaimed), res.Duration.Microseconds(), now)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("insert sweep cycle: %w", err)
	}

	cycleID, err := result.LastInsertId()
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("sweep cycle id: %w", err)
	}

	for _, obj := range res.Reclaimed {
		if _, err := tx.Exec(`
			INSERT INTO sweep_reclaims (cycle_id, object_id, zone, state)
			VALUES (?, ?, ?, ?)
		`, cycleID, obj.ID, obj.Zone.String(), obj.State.String()); err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("insert reclaim for object %d: %w", obj.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit sweep record: %w", err)
	}
	return cycleID, nil
}

// RecentSweeps returns the most recent sweep cycles, newest first.
func (db *DB) RecentSweeps(limit int) ([]SweepCycle, error) {
	rows, err := db.Query(`
		SELECT id, pending_mask, reclaimed, duration_us, created_at
		FROM sweep_cycles ORDER BY created_at DESC, id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent sweeps: %w", err)
	}
	defer rows.Close()

	var cycles []SweepCycle
	for rows.Next() {
		var c SweepCycle
		if err := rows.Scan(&c.ID, &c.PendingMask, &c.Reclaimed, &c.DurationUS, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sweep cycle: %w", err)
		}
		cycles = append(cycles, c)
	}
	return cycles, rows.Err()
}

// CycleReclaims returns the objects reclaimed by one cycle, in insertion
// order.
func (db *DB) CycleReclaims(cycleID int64) ([]ReclaimedObject, error) {
	rows, err := db.Query(`
		SELECT id, cycle_id, object_id, zone, state
		FROM sweep_reclaims WHERE cycle_id = ? ORDER BY id
	`, cycleID)
	if err != nil {
		return nil, fmt.Errorf("cycle reclaims: %w", err)
	}
	defer rows.Close()

	var reclaims []ReclaimedObject
	for rows.Next() {
		var r ReclaimedObject
		if err := rows.Scan(&r.ID, &r.CycleID, &r.ObjectID, &r.Zone, &r.State); err != nil {
			return nil, fmt.Errorf("scan reclaim: %w", err)
		}
		reclaims = append(reclaims, r)
	}
	return reclaims, rows.Err()
}
