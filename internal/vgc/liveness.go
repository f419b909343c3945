package vgc

// IsLive decides whether an object survives the current collection cycle.
// It implements the decision equation O = (S & Z) | (S & P), where S is the
// object's state bits, Z its zone mask, and P the caller-supplied
// pending-operations mask (low 3 bits).
//
// Two states short-circuit the equation: EXPIRED is always collected and
// PERSIST always survives, regardless of zone or pending signal. ACTIVE gets
// an explicit survival clause because its bit pattern (0b001) ANDs to zero
// against GREEN and BLUE zones, which would otherwise misclassify an
// in-use object as dead.
//
// DEFERRED, PROMOTE, and DEMOTE have no special branch: their fate is
// zone-dependent by the formula alone.
//
// Pure function: no side effects, same inputs always give the same answer.
func IsLive(obj Object, pendingMask uint8) bool {
	switch obj.State {
	case StateExpired:
		return false
	case StatePersist:
		return true
	}

	score := (obj.State.Bits() & obj.Zone.Bits()) | (obj.State.Bits() & pendingMask)
	return score > 0 || obj.State == StateActive
}
