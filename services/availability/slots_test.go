package availability

import (
	"testing"
	"time"
)

// refDay returns a fixed reference Wednesday (2026-03-04).
func refDay() time.Time {
	return time.Date(2026, 3, 4, 0, 0, 0, 0, time.Local)
}

func TestGenerateBaseSlots_DefaultWindow(t *testing.T) {
	slots := GenerateBaseSlots(refDay(), 600, 1050, 30)

	if len(slots) != 16 {
		t.Fatalf("expected 16 base slots, got %d", len(slots))
	}
	if got := FormatSlot(slots[0]); got != "10:00" {
		t.Fatalf("expected first slot 10:00, got %s", got)
	}
	if got := FormatSlot(slots[len(slots)-1]); got != "17:30" {
		t.Fatalf("expected last slot 17:30, got %s", got)
	}
}

func TestGenerateBaseSlots_StrictlyAscendingUnique(t *testing.T) {
	slots := GenerateBaseSlots(refDay(), 600, 1050, 30)

	for i := 1; i < len(slots); i++ {
		if !slots[i-1].Before(slots[i]) {
			t.Fatalf("slots not strictly ascending at index %d: %s then %s",
				i, FormatSlot(slots[i-1]), FormatSlot(slots[i]))
		}
	}
}

func TestGenerateBaseSlots_Deterministic(t *testing.T) {
	first := GenerateBaseSlots(refDay(), 600, 1050, 30)
	second := GenerateBaseSlots(refDay(), 600, 1050, 30)

	if len(first) != len(second) {
		t.Fatalf("expected identical lengths, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if !first[i].Equal(second[i]) {
			t.Fatalf("slot %d differs between runs: %s vs %s", i, first[i], second[i])
		}
	}
}

func TestGenerateBaseSlots_AnchoredToRequestedDay(t *testing.T) {
	slots := GenerateBaseSlots(refDay(), 600, 1050, 30)

	for _, s := range slots {
		if s.Year() != 2026 || s.Month() != time.March || s.Day() != 4 {
			t.Fatalf("slot %s not anchored to 2026-03-04", s)
		}
	}
}

func TestGenerateBaseSlots_DegenerateWindows(t *testing.T) {
	if got := GenerateBaseSlots(refDay(), 1050, 600, 30); len(got) != 0 {
		t.Fatalf("inverted window should yield no slots, got %d", len(got))
	}
	if got := GenerateBaseSlots(refDay(), 600, 1050, 0); len(got) != 0 {
		t.Fatalf("zero base unit should yield no slots, got %d", len(got))
	}
	if got := GenerateBaseSlots(refDay(), 600, 600, 30); len(got) != 1 {
		t.Fatalf("single-slot window should yield exactly one slot, got %d", len(got))
	}
}
