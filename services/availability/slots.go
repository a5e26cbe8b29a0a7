package availability

import "time"

// GenerateBaseSlots produces the full base-granularity grid of candidate
// start times for the given calendar day: firstStartMinute, then every
// baseUnitMinutes up to and including lastStartMinute, all anchored to the
// day's local midnight. It is pure: the same inputs always yield the same
// sequence, strictly ascending and duplicate-free.
//
// Whether a day is bookable at all (weekends, holidays) is caller policy;
// the generator only does slot math.
func GenerateBaseSlots(date time.Time, firstStartMinute, lastStartMinute, baseUnitMinutes int) []time.Time {
	if baseUnitMinutes <= 0 || lastStartMinute < firstStartMinute {
		return nil
	}
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	var slots []time.Time
	for m := firstStartMinute; m <= lastStartMinute; m += baseUnitMinutes {
		slots = append(slots, midnight.Add(time.Duration(m)*time.Minute))
	}
	return slots
}

// FormatSlot renders a slot start as the wire "HH:mm" label.
func FormatSlot(t time.Time) string {
	return t.Format("15:04")
}
