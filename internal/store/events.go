package store

import (
	"fmt"
	"time"

	"github.com/Abdullahlab-n/VGC-for-arxiv/internal/vgc"
)

// HeapEvent is one audited heap mutation: an allocation, an overwriting
// re-allocation, or a state transition.
type HeapEvent struct {
	ID        int64
	Event     string
	ObjectID  uint32
	Zone      string
	State     string
	CreatedAt int64
}

// RecordAllocation stores an allocation event. replaced distinguishes a
// fresh allocation from an overwrite of an existing id.
func (db *DB) RecordAllocation(obj vgc.Object, replaced bool) error {
	event := "allocate"
	if replaced {
		event = "overwrite"
	}
	return db.insertEvent(event, obj)
}

// RecordTransition stores a state-transition event with the object's
// post-transition record.
func (db *DB) RecordTransition(obj vgc.Object) error {
	return db.insertEvent("transition", obj)
}

func (db *DB) insertEvent(event string, obj vgc.Object) error {
	now := time.Now().UnixMilli()
	_, err := db.Exec(`
		INSERT INTO heap_events (event, object_id, zone, state, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, event, obj.ID, obj.Zone.String(), obj.State.String(), now)
	if err != nil {
		return fmt.Errorf("record %s: %w", event, err)
	}
	return nil
}

// RecentEvents returns the most recent heap events, newest first.
func (db *DB) RecentEvents(limit int) ([]HeapEvent, error) {
	rows, err := db.Query(`
		SELECT id, event, object_id, zone, state, created_at
		FROM heap_events ORDER BY created_at DESC, id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent events: %w", err)
	}
	defer rows.Close()

	var events []HeapEvent
	for rows.Next() {
		var e HeapEvent
		if err := rows.Scan(&e.ID, &e.Event, &e.ObjectID, &e.Zone, &e.State, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// ObjectEvents returns the full audit trail for a single object id, oldest
// first.
func (db *DB) ObjectEvents(objectID uint32) ([]HeapEvent, error) {
	rows, err := db.Query(`
		SELECT id, event, object_id, zone, state, created_at
		FROM heap_events WHERE object_id = ? ORDER BY created_at, id
	`, objectID)
	if err != nil {
		return nil, fmt.Errorf("object events: %w", err)
	}
	defer rows.Close()

	var events []HeapEvent
	for rows.Next() {
		var e HeapEvent
		if err := rows.Scan(&e.ID, &e.Event, &e.ObjectID, &e.Zone, &e.State, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
