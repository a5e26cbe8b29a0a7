package availability

import (
	"time"

	"campusbook/models"
)

// Overlaps reports whether the half-open ranges [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching endpoints do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// FilterSlots removes candidate start times whose occupied window
// [slot, slot+durationMinutes) collides with any busy interval. When
// excludePast is set and the slots fall on now's calendar day, starts
// strictly before now are dropped as well.
//
// Callers compose longer durations from base-granularity availability
// (ComposeForDuration); this filter is normally run with the base unit so
// the overlap semantics live in exactly one place.
func FilterSlots(slots []time.Time, busy []models.BusyInterval, durationMinutes int, now time.Time, excludePast bool) []time.Time {
	free := make([]time.Time, 0, len(slots))
	window := time.Duration(durationMinutes) * time.Minute

	for _, slot := range slots {
		if excludePast && sameDay(slot, now) && slot.Before(now) {
			continue
		}
		if overlapsAny(slot, slot.Add(window), busy) {
			continue
		}
		free = append(free, slot)
	}
	return free
}

func overlapsAny(start, end time.Time, busy []models.BusyInterval) bool {
	for _, b := range busy {
		if Overlaps(start, end, b.Start, b.End) {
			return true
		}
	}
	return false
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
