package store

import (
	"testing"
	"time"

	"github.com/Abdullahlab-n/VGC-for-arxiv/internal/vgc"
)

func TestRecordAllocation(t *testing.T) {
	db := testDB(t)

	obj := vgc.Object{ID: 101, Zone: vgc.ZoneGreen, State: vgc.StateActive}
	if err := db.RecordAllocation(obj, false); err != nil {
		t.Fatalf("RecordAllocation: %v", err)
	}
	if err := db.RecordAllocation(obj, true); err != nil {
		t.Fatalf("RecordAllocation overwrite: %v", err)
	}

	events, err := db.ObjectEvents(101)
	if err != nil {
		t.Fatalf("ObjectEvents: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	if events[0].Event != "allocate" || events[1].Event != "overwrite" {
		t.Errorf("event kinds = %s, %s", events[0].Event, events[1].Event)
	}
	if events[0].Zone != "GREEN" || events[0].State != "ACTIVE" {
		t.Errorf("event record = %+v", events[0])
	}
}

func TestRecordTransition(t *testing.T) {
	db := testDB(t)

	obj := vgc.Object{ID: 102, Zone: vgc.ZoneRed, State: vgc.StateExpired}
	if err := db.RecordTransition(obj); err != nil {
		t.Fatalf("RecordTransition: %v", err)
	}

	events, err := db.ObjectEvents(102)
	if err != nil {
		t.Fatalf("ObjectEvents: %v", err)
	}
	if len(events) != 1 || events[0].Event != "transition" || events[0].State != "EXPIRED" {
		t.Errorf("events = %+v", events)
	}
}

func TestRecentEventsOrder(t *testing.T) {
	db := testDB(t)

	for i := uint32(1); i <= 5; i++ {
		obj := vgc.Object{ID: i, Zone: vgc.ZoneBlue, State: vgc.StateActive}
		if err := db.RecordAllocation(obj, false); err != nil {
			t.Fatalf("RecordAllocation %d: %v", i, err)
		}
	}

	events, err := db.RecentEvents(3)
	if err != nil {
		t.Fatalf("RecentEvents: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("events = %d, want 3", len(events))
	}
	// Newest first.
	if events[0].ObjectID != 5 {
		t.Errorf("first event object = %d, want 5", events[0].ObjectID)
	}
}

func TestRecordSweep(t *testing.T) {
	db := testDB(t)

	res := vgc.SweepResult{
		PendingMask: 0b011,
		Reclaimed: []vgc.Object{
			{ID: 102, Zone: vgc.ZoneRed, State: vgc.StateMarked},
			{ID: 104, Zone: vgc.ZoneGreen, State: vgc.StateIdle},
		},
		Duration: 1500 * time.Microsecond,
	}

	cycleID, err := db.RecordSweep(res)
	if err != nil {
		t.Fatalf("RecordSweep: %v", err)
	}

	cycles, err := db.RecentSweeps(10)
	if err != nil {
		t.Fatalf("RecentSweeps: %v", err)
	}
	if len(cycles) != 1 {
		t.Fatalf("cycles = %d, want 1", len(cycles))
	}
	c := cycles[0]
	if c.ID != cycleID || c.PendingMask != 0b011 || c.Reclaimed != 2 || c.DurationUS != 1500 {
		t.Errorf("cycle = %+v", c)
	}

	reclaims, err := db.CycleReclaims(cycleID)
	if err != nil {
		t.Fatalf("CycleReclaims: %v", err)
	}
	if len(reclaims) != 2 {
		t.Fatalf("reclaims = %d, want 2", len(reclaims))
	}
	if reclaims[0].ObjectID != 102 || reclaims[0].Zone != "RED" || reclaims[0].State != "MARKED" {
		t.Errorf("reclaim[0] = %+v", reclaims[0])
	}
	if reclaims[1].ObjectID != 104 {
		t.Errorf("reclaim[1] = %+v", reclaims[1])
	}
}

func TestRecordSweepEmpty(t *testing.T) {
	db := testDB(t)

	cycleID, err := db.RecordSweep(vgc.SweepResult{PendingMask: 0})
	if err != nil {
		t.Fatalf("RecordSweep: %v", err)
	}

	reclaims, err := db.CycleReclaims(cycleID)
	if err != nil {
		t.Fatalf("CycleReclaims: %v", err)
	}
	if len(reclaims) != 0 {
		t.Errorf("reclaims = %d, want 0", len(reclaims))
	}
}
