package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuscuts/booking-api/internal/domain/schedule"
	"github.com/campuscuts/booking-api/internal/models"
)

const (
	testBarberID = uint(20)
	mondayDate   = "2025-06-09" // a Monday
)

func barberProfile(durationMin int) *models.BarberProfile {
	return &models.BarberProfile{
		ID:          1,
		UserID:      testBarberID,
		DurationMin: durationMin,
		Price:       25,
	}
}

func mondayAfternoon(repo *fakeRepo) {
	repo.recurring[1] = []models.RecurringAvailability{
		{BarberID: testBarberID, Weekday: 1, StartTime: "14:00", EndTime: "17:00"},
	}
}

func TestGetAvailability_RecurringScheduleNoBookings(t *testing.T) {
	repo := newFakeRepo(barberProfile(45))
	mondayAfternoon(repo)

	uc := NewGetAvailability(repo, nil)

	result, err := uc.Execute(context.Background(), testBarberID, mondayDate)

	require.NoError(t, err)
	assert.Equal(t, []string{"14:00", "14:45", "15:30", "16:15"}, result.Slots)
	assert.Empty(t, result.Reason)
}

func TestGetAvailability_ConfirmedBookingBlocksSlot(t *testing.T) {
	repo := newFakeRepo(barberProfile(45))
	mondayAfternoon(repo)
	repo.bookings = append(repo.bookings, models.Booking{
		ID:              7,
		BarberID:        testBarberID,
		AppointmentDate: mondayDate,
		StartTime:       "14:45",
		DurationMin:     45,
		Status:          "confirmed",
	})

	uc := NewGetAvailability(repo, nil)

	result, err := uc.Execute(context.Background(), testBarberID, mondayDate)

	require.NoError(t, err)
	assert.Equal(t, []string{"14:00", "15:30", "16:15"}, result.Slots)
}

func TestGetAvailability_CancelledBookingDoesNotBlock(t *testing.T) {
	repo := newFakeRepo(barberProfile(45))
	mondayAfternoon(repo)
	repo.bookings = append(repo.bookings, models.Booking{
		ID:              7,
		BarberID:        testBarberID,
		AppointmentDate: mondayDate,
		StartTime:       "14:45",
		DurationMin:     45,
		Status:          "cancelled",
	})

	uc := NewGetAvailability(repo, nil)

	result, err := uc.Execute(context.Background(), testBarberID, mondayDate)

	require.NoError(t, err)
	assert.Equal(t, []string{"14:00", "14:45", "15:30", "16:15"}, result.Slots)
}

func TestGetAvailability_BlockedExceptionWinsOverRecurring(t *testing.T) {
	repo := newFakeRepo(barberProfile(45))
	mondayAfternoon(repo)
	repo.exceptions[mondayDate] = &models.AvailabilityException{
		BarberID:    testBarberID,
		Date:        mondayDate,
		IsAvailable: false,
	}

	uc := NewGetAvailability(repo, nil)

	result, err := uc.Execute(context.Background(), testBarberID, mondayDate)

	require.NoError(t, err)
	assert.Empty(t, result.Slots)
	assert.Equal(t, schedule.ReasonDateBlocked, result.Reason)
}

func TestGetAvailability_AvailableExceptionReplacesRecurring(t *testing.T) {
	repo := newFakeRepo(barberProfile(30))
	mondayAfternoon(repo)
	repo.exceptions[mondayDate] = &models.AvailabilityException{
		BarberID:    testBarberID,
		Date:        mondayDate,
		IsAvailable: true,
		StartTime:   "10:00",
		EndTime:     "11:00",
	}

	uc := NewGetAvailability(repo, nil)

	result, err := uc.Execute(context.Background(), testBarberID, mondayDate)

	require.NoError(t, err)
	assert.Equal(t, []string{"10:00", "10:30"}, result.Slots)
}

func TestGetAvailability_NoScheduleForWeekday(t *testing.T) {
	repo := newFakeRepo(barberProfile(30))
	mondayAfternoon(repo)

	uc := NewGetAvailability(repo, nil)

	// 2025-06-10 is a Tuesday; only Monday has recurring rows
	result, err := uc.Execute(context.Background(), testBarberID, "2025-06-10")

	require.NoError(t, err)
	assert.Empty(t, result.Slots)
	assert.Equal(t, schedule.ReasonWeekdayClosed, result.Reason)
}

func TestGetAvailability_UnknownBarber(t *testing.T) {
	repo := newFakeRepo(barberProfile(30))

	uc := NewGetAvailability(repo, nil)

	_, err := uc.Execute(context.Background(), uint(404), mondayDate)

	assert.Error(t, err)
}

func TestGetAvailability_MultipleWindowsConcatenated(t *testing.T) {
	repo := newFakeRepo(barberProfile(60))
	repo.recurring[1] = []models.RecurringAvailability{
		{BarberID: testBarberID, Weekday: 1, StartTime: "14:00", EndTime: "16:00"},
		{BarberID: testBarberID, Weekday: 1, StartTime: "09:00", EndTime: "11:00"},
	}

	uc := NewGetAvailability(repo, nil)

	result, err := uc.Execute(context.Background(), testBarberID, mondayDate)

	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "10:00", "14:00", "15:00"}, result.Slots)
}
