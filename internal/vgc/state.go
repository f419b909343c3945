// Package vgc implements a zone-aware virtual garbage collector: a simulated
// heap of tracked objects, each carrying a lifecycle state and a memory-zone
// classification, evaluated for liveness with a bitwise decision rule and
// reclaimed in discrete sweep cycles. It manages metadata only — no real
// storage, pointers, or reachability graphs.
package vgc

import "fmt"

// State is a 3-bit lifecycle phase. The numeric value doubles as a bitmask
// operand in the liveness equation, so the ordering below is load-bearing
// and must not be rearranged.
type State uint8

const (
	StateIdle     State = iota // 0b000 sleeping, waiting for activation
	StateActive                // 0b001 in active use, keep alive
	StatePromote               // 0b010 candidate for a higher-priority zone
	StateDemote                // 0b011 candidate for a lower-priority zone
	StatePersist               // 0b100 long-lived, survives regardless of zone
	StateDeferred              // 0b101 collection deferred to next cycle
	StateMarked                // 0b110 flagged for potential deletion
	StateExpired               // 0b111 ready for immediate reclamation
)

var stateNames = [...]string{
	StateIdle:     "IDLE",
	StateActive:   "ACTIVE",
	StatePromote:  "PROMOTE",
	StateDemote:   "DEMOTE",
	StatePersist:  "PERSIST",
	StateDeferred: "DEFERRED",
	StateMarked:   "MARKED",
	StateExpired:  "EXPIRED",
}

// Bits returns the raw 3-bit value used by the liveness equation.
func (s State) Bits() uint8 { return uint8(s) }

// Valid reports whether s is one of the eight defined states.
func (s State) Valid() bool { return s <= StateExpired }

func (s State) String() string {
	if !s.Valid() {
		return "UNKNOWN"
	}
	return stateNames[s]
}

// ParseState maps a state name (as produced by String) back to its value.
func ParseState(name string) (State, error) {
	for s, n := range stateNames {
		if n == name {
			return State(s), nil
		}
	}
	return 0, fmt.Errorf("unknown state %q", name)
}

// Zone classifies an object's expected lifetime. Each zone is a single-bit
// mask so that multi-zone combinations stay representable, though the
// collector assigns exactly one zone per object.
type Zone uint8

const (
	ZoneRed   Zone = 0b001 // short-lived, high-turnover objects
	ZoneGreen Zone = 0b010 // medium-lived, regular objects
	ZoneBlue  Zone = 0b100 // long-lived, persistent objects
)

// Bits returns the raw zone mask used by the liveness equation.
func (z Zone) Bits() uint8 { return uint8(z) }

func (z Zone) String() string {
	switch z {
	case ZoneRed:
		return "RED"
	case ZoneGreen:
		return "GREEN"
	case ZoneBlue:
		return "BLUE"
	default:
		return "MIXED_ZONE"
	}
}

// ParseZone maps a zone name back to its mask value.
func ParseZone(name string) (Zone, error) {
	switch name {
	case "RED":
		return ZoneRed, nil
	case "GREEN":
		return ZoneGreen, nil
	case "BLUE":
		return ZoneBlue, nil
	}
	return 0, fmt.Errorf("unknown zone %q", name)
}

// Object is a single record tracked by the collector. State is kept as its
// raw 3-bit encoding so it can be combined bitwise with the zone mask and
// the pending-operations mask.
type Object struct {
	ID    uint32
	Zone  Zone
	State State
}
