package vgc

import "testing"

func TestZoneDistribution(t *testing.T) {
	c, _ := testCollector(t)
	c.Allocate(1, ZoneRed)
	c.Allocate(2, ZoneRed)
	c.Allocate(3, ZoneGreen)
	c.Allocate(4, ZoneBlue)
	c.AllocateState(5, Zone(0b011), StateIdle) // multi-bit mask: "other" bucket

	d := c.ZoneDistribution()
	if d.Red != 2 || d.Green != 1 || d.Blue != 1 || d.Other != 1 {
		t.Errorf("distribution = %+v, want red=2 green=1 blue=1 other=1", d)
	}
}

func TestZoneDistributionEmpty(t *testing.T) {
	c, _ := testCollector(t)
	if d := c.ZoneDistribution(); d != (Distribution{}) {
		t.Errorf("distribution of empty heap = %+v", d)
	}
}

func TestStatusReport(t *testing.T) {
	c, _ := testCollector(t)
	c.AllocateState(3, ZoneBlue, StatePersist)
	c.AllocateState(1, ZoneGreen, StateActive)
	c.AllocateState(2, ZoneRed, StateMarked)

	report := c.StatusReport()
	if len(report) != 3 {
		t.Fatalf("report rows = %d, want 3", len(report))
	}

	// Sorted by id for display.
	want := []ObjectStatus{
		{ID: 1, Zone: "GREEN", State: "ACTIVE", Alive: true},
		{ID: 2, Zone: "RED", State: "MARKED", Alive: false},
		{ID: 3, Zone: "BLUE", State: "PERSIST", Alive: true},
	}
	for i, row := range report {
		if row != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, row, want[i])
		}
	}

	// A report is a snapshot read, not a mutation.
	if c.Count() != 3 {
		t.Errorf("Count = %d after report, want 3", c.Count())
	}
}
