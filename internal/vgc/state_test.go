package vgc

import "testing"

func TestStateBitPatterns(t *testing.T) {
	// The numeric ordering feeds the liveness equation directly, so the
	// encoding is pinned here.
	want := map[State]uint8{
		StateIdle:     0b000,
		StateActive:   0b001,
		StatePromote:  0b010,
		StateDemote:   0b011,
		StatePersist:  0b100,
		StateDeferred: 0b101,
		StateMarked:   0b110,
		StateExpired:  0b111,
	}
	for s, bits := range want {
		if s.Bits() != bits {
			t.Errorf("%s.Bits() = %03b, want %03b", s, s.Bits(), bits)
		}
	}
}

func TestZoneBitPatterns(t *testing.T) {
	if ZoneRed.Bits() != 0b001 || ZoneGreen.Bits() != 0b010 || ZoneBlue.Bits() != 0b100 {
		t.Errorf("zone masks = %03b/%03b/%03b, want 001/010/100",
			ZoneRed.Bits(), ZoneGreen.Bits(), ZoneBlue.Bits())
	}
}

func TestStateNames(t *testing.T) {
	cases := map[State]string{
		StateIdle:     "IDLE",
		StateActive:   "ACTIVE",
		StatePromote:  "PROMOTE",
		StateDemote:   "DEMOTE",
		StatePersist:  "PERSIST",
		StateDeferred: "DEFERRED",
		StateMarked:   "MARKED",
		StateExpired:  "EXPIRED",
		State(8):      "UNKNOWN",
	}
	for s, name := range cases {
		if s.String() != name {
			t.Errorf("State(%d).String() = %q, want %q", s, s.String(), name)
		}
	}
}

func TestZoneNames(t *testing.T) {
	cases := map[Zone]string{
		ZoneRed:     "RED",
		ZoneGreen:   "GREEN",
		ZoneBlue:    "BLUE",
		Zone(0b011): "MIXED_ZONE",
		Zone(0):     "MIXED_ZONE",
	}
	for z, name := range cases {
		if z.String() != name {
			t.Errorf("Zone(%03b).String() = %q, want %q", uint8(z), z.String(), name)
		}
	}
}

func TestParseStateRoundTrip(t *testing.T) {
	for s := StateIdle; s <= StateExpired; s++ {
		parsed, err := ParseState(s.String())
		if err != nil {
			t.Fatalf("ParseState(%q): %v", s.String(), err)
		}
		if parsed != s {
			t.Errorf("ParseState(%q) = %v, want %v", s.String(), parsed, s)
		}
	}
	if _, err := ParseState("ZOMBIE"); err == nil {
		t.Error("ParseState(ZOMBIE) should fail")
	}
}

func TestParseZoneRoundTrip(t *testing.T) {
	for _, z := range []Zone{ZoneRed, ZoneGreen, ZoneBlue} {
		parsed, err := ParseZone(z.String())
		if err != nil {
			t.Fatalf("ParseZone(%q): %v", z.String(), err)
		}
		if parsed != z {
			t.Errorf("ParseZone(%q) = %v, want %v", z.String(), parsed, z)
		}
	}
	if _, err := ParseZone("MIXED_ZONE"); err == nil {
		t.Error("ParseZone(MIXED_ZONE) should fail")
	}
}
