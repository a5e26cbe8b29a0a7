package availability

import "time"

// ComposeForDuration narrows base-granularity availability to the start
// times that can serve a booking of durationMinutes. A start is valid only
// when every one of its k = duration/baseUnit consecutive base blocks is
// itself free, reusing the base free/busy classification instead of
// re-running overlap tests against raw intervals.
//
// The duration must be a positive exact multiple of the base unit;
// anything else is the caller's error, never rounded. With k == 1 the
// input is returned unchanged.
func ComposeForDuration(baseAvailability []string, durationMinutes, baseUnitMinutes int) ([]string, error) {
	if baseUnitMinutes <= 0 {
		return nil, invalidInputf("base unit must be positive, got %d", baseUnitMinutes)
	}
	if durationMinutes <= 0 || durationMinutes%baseUnitMinutes != 0 {
		return nil, invalidInputf("duration %d is not a positive multiple of the %d-minute base unit", durationMinutes, baseUnitMinutes)
	}

	k := durationMinutes / baseUnitMinutes
	if k == 1 {
		return baseAvailability, nil
	}

	available := make(map[string]bool, len(baseAvailability))
	for _, s := range baseAvailability {
		available[s] = true
	}

	valid := make([]string, 0, len(baseAvailability))
	for _, start := range baseAvailability {
		run := true
		for j := 1; j < k; j++ {
			next, err := addMinutesToLabel(start, j*baseUnitMinutes)
			if err != nil {
				return nil, invalidInputf("malformed slot label %q", start)
			}
			if !available[next] {
				run = false
				break
			}
		}
		if run {
			valid = append(valid, start)
		}
	}
	return valid, nil
}

// addMinutesToLabel shifts an "HH:mm" label forward. Slot grids never cross
// midnight, so no day wrap handling is needed.
func addMinutesToLabel(label string, minutes int) (string, error) {
	t, err := time.Parse("15:04", label)
	if err != nil {
		return "", err
	}
	return t.Add(time.Duration(minutes) * time.Minute).Format("15:04"), nil
}
