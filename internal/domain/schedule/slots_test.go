package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandWindows_SingleWindow(t *testing.T) {
	windows := []Window{{Start: "14:00", End: "17:00"}}

	slots := ExpandWindows(windows, 45)

	assert.Equal(t, []string{"14:00", "14:45", "15:30", "16:15"}, slots)
}

func TestExpandWindows_MultipleWindowsInOrder(t *testing.T) {
	windows := []Window{
		{Start: "09:00", End: "11:00"},
		{Start: "14:00", End: "15:00"},
	}

	slots := ExpandWindows(windows, 60)

	assert.Equal(t, []string{"09:00", "10:00", "14:00"}, slots)
}

func TestExpandWindows_Empty(t *testing.T) {
	assert.Empty(t, ExpandWindows(nil, 30))
}

func TestOverlaps_TouchingBoundariesDoNotConflict(t *testing.T) {
	// [09:00,09:45) and [09:45,10:30) only share the boundary
	assert.False(t, Overlaps("09:00", 45, "09:45", 45))
	assert.False(t, Overlaps("09:45", 45, "09:00", 45))
}

func TestOverlaps_IntersectingIntervalsConflict(t *testing.T) {
	// [09:00,09:45) and [09:30,10:15)
	assert.True(t, Overlaps("09:00", 45, "09:30", 45))
	assert.True(t, Overlaps("09:30", 45, "09:00", 45))
}

func TestFilterConflicts_RemovesBlockedSlot(t *testing.T) {
	slots := []string{"14:00", "14:45", "15:30", "16:15"}
	occupied := []Interval{{Start: "14:45", DurationMin: 45}}

	free := FilterConflicts(slots, 45, occupied)

	assert.Equal(t, []string{"14:00", "15:30", "16:15"}, free)
}

func TestFilterConflicts_BookingSpanningTwoSlots(t *testing.T) {
	slots := []string{"09:00", "09:30", "10:00", "10:30"}
	// a 40-minute booking at 09:20 covers parts of the first three slots
	occupied := []Interval{{Start: "09:20", DurationMin: 40}}

	free := FilterConflicts(slots, 30, occupied)

	assert.Equal(t, []string{"10:30"}, free)
}

func TestFilterConflicts_NoOccupied(t *testing.T) {
	slots := []string{"09:00", "09:30"}

	assert.Equal(t, slots, FilterConflicts(slots, 30, nil))
}

func TestIsSlotFree(t *testing.T) {
	occupied := []Interval{{Start: "10:00", DurationMin: 30}}

	assert.True(t, IsSlotFree("09:30", 30, occupied))
	assert.False(t, IsSlotFree("09:45", 30, occupied))
	assert.True(t, IsSlotFree("10:30", 30, occupied))
}
