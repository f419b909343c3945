package vgc

import (
	"errors"
	"fmt"
	"log"
	"time"
)

// ErrObjectNotFound is returned by Transition when the target id is not in
// the heap. The heap never creates records implicitly.
var ErrObjectNotFound = errors.New("object not found")

// Collector owns the simulated heap and the sweep machinery. It is not safe
// for concurrent use: all operations run to completion on the calling
// goroutine and callers sharing one Collector must serialize access
// themselves.
type Collector struct {
	heap      map[uint32]Object
	preSweep  []func()
	postSweep []func(int)
	logger    *log.Logger
}

// New creates an empty Collector logging through the default logger.
func New() *Collector {
	return &Collector{
		heap:   make(map[uint32]Object),
		logger: log.Default(),
	}
}

// SetLogger redirects the collector's warnings and reclaim reports.
func (c *Collector) SetLogger(l *log.Logger) {
	c.logger = l
}

// Allocate inserts an object with the default ACTIVE initial state.
func (c *Collector) Allocate(id uint32, zone Zone) {
	c.AllocateState(id, zone, StateActive)
}

// AllocateState inserts an object with an explicit initial state. If the id
// already exists the old record is replaced after a warning; duplicate
// allocation is never an error.
func (c *Collector) AllocateState(id uint32, zone Zone, state State) {
	if _, exists := c.heap[id]; exists {
		c.logger.Printf("warning: object %d already exists, overwriting", id)
	}
	c.heap[id] = Object{ID: id, Zone: zone, State: state}
}

// Transition replaces the state of an existing object, leaving id and zone
// untouched. Unknown ids are reported, not created.
func (c *Collector) Transition(id uint32, newState State) error {
	obj, ok := c.heap[id]
	if !ok {
		return fmt.Errorf("transition object %d: %w", id, ErrObjectNotFound)
	}
	obj.State = newState
	c.heap[id] = obj
	return nil
}

// Get returns the record for id, if present.
func (c *Collector) Get(id uint32) (Object, bool) {
	obj, ok := c.heap[id]
	return obj, ok
}

// Count returns the number of managed objects.
func (c *Collector) Count() int {
	return len(c.heap)
}

// Objects returns a snapshot of every managed object. Order is not
// guaranteed and callers must not depend on it for correctness.
func (c *Collector) Objects() []Object {
	objs := make([]Object, 0, len(c.heap))
	for _, obj := range c.heap {
		objs = append(objs, obj)
	}
	return objs
}

// RegisterPreSweepHook appends a hook invoked at the start of every sweep,
// in registration order.
func (c *Collector) RegisterPreSweepHook(fn func()) {
	c.preSweep = append(c.preSweep, fn)
}

// RegisterPostSweepHook appends a hook invoked at the end of every sweep, in
// registration order, with the count of objects reclaimed by that cycle.
func (c *Collector) RegisterPostSweepHook(fn func(reclaimed int)) {
	c.postSweep = append(c.postSweep, fn)
}

// SweepResult describes one completed collection cycle.
type SweepResult struct {
	PendingMask uint8
	Reclaimed   []Object
	Duration    time.Duration
}

// Sweep runs one collection cycle and returns the number of objects
// reclaimed. The pending mask applies uniformly to every object evaluated
// in this cycle.
func (c *Collector) Sweep(pendingMask uint8) int {
	return len(c.SweepDetailed(pendingMask).Reclaimed)
}

// SweepDetailed runs one collection cycle — pre-sweep hooks, a full scan of
// the heap through IsLive, reclamation of every non-surviving object, then
// post-sweep hooks — and returns the reclaimed records for observability.
//
// The cycle is strictly sequential and must run to completion before another
// begins. A hook panic is not recovered here and aborts the remainder of the
// cycle; hooks already run are not rolled back, nor is partial reclamation.
func (c *Collector) SweepDetailed(pendingMask uint8) SweepResult {
	start := time.Now()

	for _, hook := range c.preSweep {
		hook()
	}

	var doomed []Object
	for _, obj := range c.heap {
		if !IsLive(obj, pendingMask) {
			doomed = append(doomed, obj)
		}
	}

	for _, obj := range doomed {
		c.logger.Printf("reclaimed object %d (zone %s, state %s)", obj.ID, obj.Zone, obj.State)
		delete(c.heap, obj.ID)
	}

	for _, hook := range c.postSweep {
		hook(len(doomed))
	}

	return SweepResult{
		PendingMask: pendingMask,
		Reclaimed:   doomed,
		Duration:    time.Since(start),
	}
}
