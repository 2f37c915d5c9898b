package schedule

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// Clock-time arithmetic over pre-validated 24-hour HH:MM strings.
// Format validation happens upstream (validators.IsValidTime); nothing
// here parses defensively or handles day rollover.

// TimeToMinutes converts "HH:MM" to minutes since midnight.
func TimeToMinutes(t string) int {
	h, m, _ := strings.Cut(t, ":")
	hours, _ := strconv.Atoi(h)
	minutes, _ := strconv.Atoi(m)
	return hours*60 + minutes
}

// MinutesToTime formats minutes since midnight as zero-padded "HH:MM".
// The input must stay below 1440: callers never generate slots that
// cross midnight.
func MinutesToTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// CalculateEndTime returns the clock time durationMin minutes after start.
func CalculateEndTime(start string, durationMin int) string {
	return MinutesToTime(TimeToMinutes(start) + durationMin)
}

// GenerateTimeSlots yields slot start times at a fixed durationMin
// stride beginning at start. A slot is emitted only when it fits whole:
// the trailing partial slot is dropped rather than clipped to end.
// The sequence is restartable; ranging over it twice yields the same slots.
func GenerateTimeSlots(start, end string, durationMin int) iter.Seq[string] {
	return func(yield func(string) bool) {
		if durationMin <= 0 {
			return
		}
		endMin := TimeToMinutes(end)
		for cur := TimeToMinutes(start); cur+durationMin <= endMin; cur += durationMin {
			if !yield(MinutesToTime(cur)) {
				return
			}
		}
	}
}
