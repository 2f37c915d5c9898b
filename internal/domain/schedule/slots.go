package schedule

// Interval is an occupied stretch of a barber's day, taken from an
// active (pending or confirmed) booking.
type Interval struct {
	Start       string
	DurationMin int
}

// ExpandWindows concatenates the fixed-duration slot expansion of each
// window, in window order.
func ExpandWindows(windows []Window, durationMin int) []string {
	slots := make([]string, 0)
	for _, w := range windows {
		for s := range GenerateTimeSlots(w.Start, w.End, durationMin) {
			slots = append(slots, s)
		}
	}
	return slots
}

// Overlaps is the half-open interval overlap test: intervals that only
// touch at an endpoint do not conflict.
func Overlaps(startA string, durA int, startB string, durB int) bool {
	as := TimeToMinutes(startA)
	bs := TimeToMinutes(startB)
	return as < bs+durB && as+durA > bs
}

// IsSlotFree reports whether a candidate slot overlaps none of the
// occupied intervals.
func IsSlotFree(slot string, durationMin int, occupied []Interval) bool {
	for _, o := range occupied {
		if Overlaps(slot, durationMin, o.Start, o.DurationMin) {
			return false
		}
	}
	return true
}

// FilterConflicts removes candidate slots that overlap an occupied
// interval, preserving the original order.
func FilterConflicts(slots []string, durationMin int, occupied []Interval) []string {
	free := make([]string, 0, len(slots))
	for _, s := range slots {
		if IsSlotFree(s, durationMin, occupied) {
			free = append(free, s)
		}
	}
	return free
}
