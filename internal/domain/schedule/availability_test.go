package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuscuts/booking-api/internal/models"
)

func recurringRow(weekday int, start, end string) models.RecurringAvailability {
	return models.RecurringAvailability{
		BarberID:  1,
		Weekday:   weekday,
		StartTime: start,
		EndTime:   end,
	}
}

func TestResolveWindows_BlockedException(t *testing.T) {
	recurring := []models.RecurringAvailability{recurringRow(1, "14:00", "17:00")}
	exc := &models.AvailabilityException{BarberID: 1, Date: "2025-06-09", IsAvailable: false}

	// the exception wins even when recurring rows were fetched
	windows, reason := ResolveWindows(recurring, exc)

	assert.Empty(t, windows)
	assert.Equal(t, ReasonDateBlocked, reason)
}

func TestResolveWindows_AvailableExceptionReplacesRecurring(t *testing.T) {
	recurring := []models.RecurringAvailability{
		recurringRow(1, "09:00", "12:00"),
		recurringRow(1, "14:00", "17:00"),
	}
	exc := &models.AvailabilityException{
		BarberID:    1,
		Date:        "2025-06-09",
		IsAvailable: true,
		StartTime:   "10:00",
		EndTime:     "13:00",
	}

	windows, reason := ResolveWindows(recurring, exc)

	require.Len(t, windows, 1)
	assert.Equal(t, Window{Start: "10:00", End: "13:00"}, windows[0])
	assert.Empty(t, reason)
}

func TestResolveWindows_NoRecurringRows(t *testing.T) {
	windows, reason := ResolveWindows(nil, nil)

	assert.Empty(t, windows)
	assert.Equal(t, ReasonWeekdayClosed, reason)
}

func TestResolveWindows_RecurringSortedByStart(t *testing.T) {
	recurring := []models.RecurringAvailability{
		recurringRow(1, "14:00", "17:00"),
		recurringRow(1, "09:00", "12:00"),
	}

	windows, reason := ResolveWindows(recurring, nil)

	require.Len(t, windows, 2)
	assert.Equal(t, "09:00", windows[0].Start)
	assert.Equal(t, "14:00", windows[1].Start)
	assert.Empty(t, reason)
}

func TestWindowsOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b Window
		want bool
	}{
		{"separate", Window{"09:00", "10:00"}, Window{"11:00", "12:00"}, false},
		{"touching", Window{"09:00", "10:00"}, Window{"10:00", "11:00"}, false},
		{"overlapping", Window{"09:00", "10:30"}, Window{"10:00", "11:00"}, true},
		{"contained", Window{"09:00", "17:00"}, Window{"10:00", "11:00"}, true},
		{"identical", Window{"09:00", "10:00"}, Window{"09:00", "10:00"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WindowsOverlap(tt.a, tt.b))
			assert.Equal(t, tt.want, WindowsOverlap(tt.b, tt.a))
		})
	}
}
