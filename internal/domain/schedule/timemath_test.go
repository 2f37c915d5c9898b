package schedule

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(start, end string, durationMin int) []string {
	var out []string
	for s := range GenerateTimeSlots(start, end, durationMin) {
		out = append(out, s)
	}
	return out
}

func TestTimeToMinutes(t *testing.T) {
	assert.Equal(t, 0, TimeToMinutes("00:00"))
	assert.Equal(t, 540, TimeToMinutes("09:00"))
	assert.Equal(t, 869, TimeToMinutes("14:29"))
	assert.Equal(t, 1439, TimeToMinutes("23:59"))
}

func TestMinutesToTime_ZeroPadded(t *testing.T) {
	assert.Equal(t, "00:00", MinutesToTime(0))
	assert.Equal(t, "09:05", MinutesToTime(545))
	assert.Equal(t, "23:59", MinutesToTime(1439))
}

func TestRoundTrip_AllValidTimes(t *testing.T) {
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m++ {
			s := fmt.Sprintf("%02d:%02d", h, m)
			require.Equal(t, s, MinutesToTime(TimeToMinutes(s)))
		}
	}
}

func TestCalculateEndTime(t *testing.T) {
	assert.Equal(t, "09:45", CalculateEndTime("09:00", 45))
	assert.Equal(t, "15:30", CalculateEndTime("14:45", 45))
	assert.Equal(t, "10:00", CalculateEndTime("09:30", 30))
}

func TestGenerateTimeSlots_ExactFit(t *testing.T) {
	slots := collect("09:00", "11:00", 30)

	require.Len(t, slots, 4)
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, slots)

	last := slots[len(slots)-1]
	assert.Equal(t, "11:00", CalculateEndTime(last, 30))
}

func TestGenerateTimeSlots_EmptyWindow(t *testing.T) {
	assert.Empty(t, collect("09:00", "09:00", 30))
}

func TestGenerateTimeSlots_WindowShorterThanSlot(t *testing.T) {
	assert.Empty(t, collect("09:00", "09:20", 30))
}

func TestGenerateTimeSlots_TrailingPartialDropped(t *testing.T) {
	// a second slot at 09:45 would run to 10:30, past the boundary
	assert.Equal(t, []string{"09:00"}, collect("09:00", "10:00", 45))
}

func TestGenerateTimeSlots_Restartable(t *testing.T) {
	seq := GenerateTimeSlots("14:00", "17:00", 45)

	var first, second []string
	for s := range seq {
		first = append(first, s)
	}
	for s := range seq {
		second = append(second, s)
	}

	assert.Equal(t, []string{"14:00", "14:45", "15:30", "16:15"}, first)
	assert.Equal(t, first, second)
}

func TestGenerateTimeSlots_EarlyBreak(t *testing.T) {
	var got []string
	for s := range GenerateTimeSlots("09:00", "17:00", 30) {
		got = append(got, s)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"09:00", "09:30"}, got)
}

func TestGenerateTimeSlots_NonPositiveDuration(t *testing.T) {
	assert.Empty(t, collect("09:00", "17:00", 0))
}
