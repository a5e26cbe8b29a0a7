package availability

import (
	"time"

	"campusbook/models"
	"campusbook/utils"

	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// timeOfDayLayouts are the accepted forms for booking start/end fields. The
// backend usually stores full RFC 3339 timestamps, older records carry bare
// clock values.
var timeOfDayLayouts = []string{time.RFC3339, "15:04:05", "15:04"}

// BuildBusyIntervals normalizes raw commitment records into half-open busy
// intervals for the given day.
//
// Bookings whose status is in the non-blocking set (rejected, no-show,
// cancelled) hold nothing and are dropped. For the rest, the interval is
// anchored to the record's date_scheduled day; the date portion of
// start_time/end_time is ignored because upstream stores placeholder dates
// there, only the time-of-day is trusted. Event timestamps are trusted whole.
//
// Malformed records are skipped with a warning; one bad record never blocks
// availability for the day.
func BuildBusyIntervals(date time.Time, bookings []models.Booking, events []models.Event, nonBlocking map[int]bool) []models.BusyInterval {
	logger := utils.GetLogger()
	busy := make([]models.BusyInterval, 0, len(bookings)+len(events))

	for _, b := range bookings {
		if nonBlocking[b.Status] {
			continue
		}
		day, err := time.ParseInLocation(dateLayout, b.DateScheduled, date.Location())
		if err != nil {
			logger.Warn("skipping booking with malformed date_scheduled",
				zap.Int64("bookingID", b.ID), zap.String("date_scheduled", b.DateScheduled))
			continue
		}
		start, err1 := parseTimeOfDay(b.StartTime)
		end, err2 := parseTimeOfDay(b.EndTime)
		if err1 != nil || err2 != nil {
			logger.Warn("skipping booking with malformed start/end time",
				zap.Int64("bookingID", b.ID),
				zap.String("start_time", b.StartTime), zap.String("end_time", b.EndTime))
			continue
		}
		iv := models.BusyInterval{
			Start:    anchorToDay(day, start),
			End:      anchorToDay(day, end),
			Source:   models.BusySourceBooking,
			OriginID: b.ID,
		}
		if !iv.Start.Before(iv.End) {
			logger.Warn("skipping booking with inverted time range", zap.Int64("bookingID", b.ID))
			continue
		}
		busy = append(busy, iv)
	}

	for _, ev := range events {
		start, err1 := parseWallClock(ev.StartDateTime, date.Location())
		end, err2 := parseWallClock(ev.EndDateTime, date.Location())
		if err1 != nil || err2 != nil {
			logger.Warn("skipping event with malformed datetime",
				zap.Int64("eventID", ev.ID),
				zap.String("start_datetime", ev.StartDateTime), zap.String("end_datetime", ev.EndDateTime))
			continue
		}
		if !start.Before(end) {
			logger.Warn("skipping event with inverted time range", zap.Int64("eventID", ev.ID))
			continue
		}
		busy = append(busy, models.BusyInterval{
			Start:    start,
			End:      end,
			Source:   models.BusySourceEvent,
			OriginID: ev.ID,
		})
	}

	return busy
}

func parseTimeOfDay(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range timeOfDayLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// anchorToDay combines the authoritative day with the parsed time-of-day.
func anchorToDay(day, clock time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, day.Location())
}

// parseWallClock reads an RFC 3339 timestamp as a plain wall-clock value in
// loc, dropping whatever offset the store recorded. The engine reasons about
// a single local calendar day and never converts timezones.
func parseWallClock(value string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, loc), nil
}
