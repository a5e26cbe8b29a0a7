package availability

import (
	"time"

	"campusbook/config"
)

// Rules are the engine's scheduling parameters. They come from config in
// production and are set directly in tests.
type Rules struct {
	BaseUnitMinutes     int
	FirstStartMinute    int // minutes from midnight of the first base slot
	LastStartMinute     int // minutes from midnight of the last base slot
	NonBlockingStatuses []int
	ClosedWeekdays      []time.Weekday
	BookingWindowDays   int
}

// DefaultRules mirrors the campus reservation policy: 30-minute base unit,
// starts from 10:00 through 17:30, weekends closed, bookings up to 90 days
// ahead, and released holds (rejected, no-show, cancelled) never block.
func DefaultRules() Rules {
	return Rules{
		BaseUnitMinutes:     30,
		FirstStartMinute:    600,
		LastStartMinute:     1050,
		NonBlockingStatuses: []int{0, 4, 6},
		ClosedWeekdays:      []time.Weekday{time.Sunday, time.Saturday},
		BookingWindowDays:   90,
	}
}

// RulesFromConfig builds Rules from the loaded application config.
func RulesFromConfig() Rules {
	cfg := config.AppConfig
	closed := make([]time.Weekday, 0, len(cfg.ClosedWeekdays))
	for _, d := range cfg.ClosedWeekdays {
		closed = append(closed, time.Weekday(d))
	}
	return Rules{
		BaseUnitMinutes:     cfg.BaseUnitMinutes,
		FirstStartMinute:    cfg.DayFirstStartMinute,
		LastStartMinute:     cfg.DayLastStartMinute,
		NonBlockingStatuses: cfg.NonBlockingStatuses,
		ClosedWeekdays:      closed,
		BookingWindowDays:   cfg.BookingWindowDays,
	}
}

func (r Rules) nonBlockingSet() map[int]bool {
	set := make(map[int]bool, len(r.NonBlockingStatuses))
	for _, s := range r.NonBlockingStatuses {
		set[s] = true
	}
	return set
}

func (r Rules) isClosed(day time.Weekday) bool {
	for _, d := range r.ClosedWeekdays {
		if d == day {
			return true
		}
	}
	return false
}
