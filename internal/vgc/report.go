package vgc

import "sort"

// Distribution counts objects by exact zone assignment. Objects whose zone
// mask is not one of the three canonical single-bit values land in Other.
type Distribution struct {
	Red   int `json:"red"`
	Green int `json:"green"`
	Blue  int `json:"blue"`
	Other int `json:"other"`
}

// ZoneDistribution tallies the current heap by zone. Read-only snapshot.
func (c *Collector) ZoneDistribution() Distribution {
	var d Distribution
	for _, obj := range c.heap {
		switch obj.Zone {
		case ZoneRed:
			d.Red++
		case ZoneGreen:
			d.Green++
		case ZoneBlue:
			d.Blue++
		default:
			d.Other++
		}
	}
	return d
}

// ObjectStatus is one row of a status report.
type ObjectStatus struct {
	ID    uint32 `json:"id"`
	Zone  string `json:"zone"`
	State string `json:"state"`
	Alive bool   `json:"alive"`
}

// StatusReport returns every object's id, zone name, state name, and its
// liveness with no pending operations. Rows are sorted by id for stable
// display; the underlying heap itself remains unordered.
func (c *Collector) StatusReport() []ObjectStatus {
	report := make([]ObjectStatus, 0, len(c.heap))
	for _, obj := range c.heap {
		report = append(report, ObjectStatus{
			ID:    obj.ID,
			Zone:  obj.Zone.String(),
			State: obj.State.String(),
			Alive: IsLive(obj, 0),
		})
	}
	sort.Slice(report, func(i, j int) bool { return report[i].ID < report[j].ID })
	return report
}
