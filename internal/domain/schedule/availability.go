package schedule

import (
	"sort"

	"github.com/campuscuts/booking-api/internal/models"
)

// Window is a contiguous open interval during which a barber accepts
// bookings.
type Window struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Reasons surfaced to clients when a date yields no windows. An empty
// window set is a normal result, not an error.
const (
	ReasonDateBlocked   = "barber not available on this date"
	ReasonWeekdayClosed = "barber not available on this day of the week"
)

// ResolveWindows turns the recurring weekly schedule plus an optional
// date exception into the open windows for one date. An exception fully
// supersedes the recurring rows: a blocked day returns no windows, an
// available exception returns exactly its own window. Without an
// exception the recurring rows for the weekday are returned sorted
// ascending by start time.
func ResolveWindows(
	recurring []models.RecurringAvailability,
	exception *models.AvailabilityException,
) ([]Window, string) {

	if exception != nil {
		if !exception.IsAvailable {
			return nil, ReasonDateBlocked
		}
		return []Window{{Start: exception.StartTime, End: exception.EndTime}}, ""
	}

	if len(recurring) == 0 {
		return nil, ReasonWeekdayClosed
	}

	windows := make([]Window, 0, len(recurring))
	for _, r := range recurring {
		windows = append(windows, Window{Start: r.StartTime, End: r.EndTime})
	}

	sort.Slice(windows, func(i, j int) bool {
		return TimeToMinutes(windows[i].Start) < TimeToMinutes(windows[j].Start)
	})

	return windows, ""
}

// WindowsOverlap reports whether two windows share any time, half-open:
// touching boundaries do not overlap. Used to reject overlapping
// recurring rows at write time, which keeps slot expansion free of
// duplicates.
func WindowsOverlap(a, b Window) bool {
	return TimeToMinutes(a.Start) < TimeToMinutes(b.End) &&
		TimeToMinutes(a.End) > TimeToMinutes(b.Start)
}
