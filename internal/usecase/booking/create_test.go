package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuscuts/booking-api/internal/httperr"
	"github.com/campuscuts/booking-api/internal/models"
)

const testCustomerID = uint(10)

func createInput(startTime string) CreateBookingInput {
	return CreateBookingInput{
		CustomerID: testCustomerID,
		BarberID:   testBarberID,
		Date:       mondayDate,
		Time:       startTime,
	}
}

func TestCreateBooking_Success(t *testing.T) {
	repo := newFakeRepo(barberProfile(45))
	mondayAfternoon(repo)

	uc := NewCreateBooking(repo, nil, nil)

	b, err := uc.Execute(context.Background(), createInput("14:45"))

	require.NoError(t, err)
	assert.NotZero(t, b.ID)
	assert.Equal(t, "pending", b.Status)
	assert.Equal(t, testCustomerID, b.CustomerID)
	assert.Equal(t, testBarberID, b.BarberID)

	// duration and price are copied from the profile at creation time
	assert.Equal(t, 45, b.DurationMin)
	assert.Equal(t, 25.0, b.Price)
}

func TestCreateBooking_OutsideWorkingHours(t *testing.T) {
	repo := newFakeRepo(barberProfile(45))
	mondayAfternoon(repo)

	uc := NewCreateBooking(repo, nil, nil)

	_, err := uc.Execute(context.Background(), createInput("12:00"))

	assert.True(t, httperr.IsBusiness(err, "outside_working_hours"))
	assert.Empty(t, repo.bookings)
}

func TestCreateBooking_SlotMustFitInsideWindow(t *testing.T) {
	repo := newFakeRepo(barberProfile(45))
	mondayAfternoon(repo)

	uc := NewCreateBooking(repo, nil, nil)

	// window closes at 17:00, a 45min slot at 16:30 would spill over
	_, err := uc.Execute(context.Background(), createInput("16:30"))

	assert.True(t, httperr.IsBusiness(err, "outside_working_hours"))
}

func TestCreateBooking_TimeConflictWithActiveBooking(t *testing.T) {
	repo := newFakeRepo(barberProfile(45))
	mondayAfternoon(repo)
	repo.bookings = append(repo.bookings, models.Booking{
		ID:              1,
		BarberID:        testBarberID,
		AppointmentDate: mondayDate,
		StartTime:       "14:00",
		DurationMin:     45,
		Status:          "confirmed",
	})

	uc := NewCreateBooking(repo, nil, nil)

	// overlaps [14:00, 14:45)
	_, err := uc.Execute(context.Background(), createInput("14:30"))

	assert.True(t, httperr.IsBusiness(err, "time_conflict"))
}

func TestCreateBooking_CancelledBookingDoesNotConflict(t *testing.T) {
	repo := newFakeRepo(barberProfile(45))
	mondayAfternoon(repo)
	repo.bookings = append(repo.bookings, models.Booking{
		ID:              1,
		BarberID:        testBarberID,
		AppointmentDate: mondayDate,
		StartTime:       "14:00",
		DurationMin:     45,
		Status:          "cancelled",
	})

	uc := NewCreateBooking(repo, nil, nil)

	_, err := uc.Execute(context.Background(), createInput("14:00"))

	require.NoError(t, err)
}

func TestCreateBooking_UnknownBarber(t *testing.T) {
	repo := newFakeRepo(barberProfile(45))

	uc := NewCreateBooking(repo, nil, nil)

	in := createInput("14:00")
	in.BarberID = 404

	_, err := uc.Execute(context.Background(), in)

	assert.True(t, httperr.IsBusiness(err, "barber_not_found"))
}

// TestCreateBooking_ConcurrentIdenticalRequests replays the
// check-then-write race: both requests read the same snapshot (no
// active bookings), both pass the overlap check, but the uniqueness
// rule lets only the first insert through. The loser must get the same
// time_conflict rejection as a plain overlap.
func TestCreateBooking_ConcurrentIdenticalRequests(t *testing.T) {
	repo := newFakeRepo(barberProfile(45))
	mondayAfternoon(repo)
	repo.staleReads = true
	repo.snapshot = nil // both requests observe an empty day

	uc := NewCreateBooking(repo, nil, nil)

	first, err := uc.Execute(context.Background(), createInput("15:30"))
	require.NoError(t, err)
	assert.NotZero(t, first.ID)

	_, err = uc.Execute(context.Background(), createInput("15:30"))
	assert.True(t, httperr.IsBusiness(err, "time_conflict"))

	assert.Len(t, repo.bookings, 1)
}
