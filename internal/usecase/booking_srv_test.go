package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"bus-booking/internal/data/entity"
	"bus-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTestBus(t *testing.T, busRepo *fakeBusRepo, totalSeats int) *entity.Bus {
	t.Helper()

	now := time.Now()
	bus := &entity.Bus{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BusNumber:  "KBX 001A - Express",
		BusType:    "AC Sleeper",
		TotalSeats: totalSeats,
		Route: entity.Route{
			From:          "Nairobi",
			To:            "Mombasa",
			DepartureTime: "08:00",
			ArrivalTime:   "16:00",
			Price:         1500,
		},
	}
	require.NoError(t, busRepo.Create(context.Background(), bus))
	return bus
}

func validBookingRequest(busID uuid.UUID, seat, date string) *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		BusID:      busID.String(),
		SeatNumber: seat,
		TravelDate: date,
		Passenger: request.PassengerRequest{
			Name:   "Jane Wanjiku",
			Age:    28,
			Gender: "female",
		},
	}
}

func TestCreateBookingSuccess(t *testing.T) {
	repo, _, busRepo, _ := newTestRepository()
	svc := NewBookingService(repo, newTestLogger())
	bus := seedTestBus(t, busRepo, 40)
	userID := uuid.New()

	resp, err := svc.CreateBooking(context.Background(), userID, validBookingRequest(bus.ID, "5", "2026-09-01"))
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, "05", resp.SeatNumber, "seat number is stored zero-padded")
	assert.Equal(t, "2026-09-01", resp.TravelDate)
	assert.Equal(t, entity.BookingStatusConfirmed, resp.Status)
	assert.Equal(t, "Jane Wanjiku", resp.Passenger.Name)
}

func TestCreateBookingSeatTaken(t *testing.T) {
	repo, _, busRepo, _ := newTestRepository()
	svc := NewBookingService(repo, newTestLogger())
	bus := seedTestBus(t, busRepo, 40)

	_, err := svc.CreateBooking(context.Background(), uuid.New(), validBookingRequest(bus.ID, "12", "2026-09-01"))
	require.NoError(t, err)

	// Same seat, same date, written without padding: still a conflict.
	_, err = svc.CreateBooking(context.Background(), uuid.New(), validBookingRequest(bus.ID, " 12", "2026-09-01"))
	assert.ErrorIs(t, err, entity.ErrSeatAlreadyBooked)

	// Same seat on another date is fine.
	_, err = svc.CreateBooking(context.Background(), uuid.New(), validBookingRequest(bus.ID, "12", "2026-09-02"))
	assert.NoError(t, err)
}

func TestCreateBookingConcurrentSameSeat(t *testing.T) {
	repo, _, busRepo, _ := newTestRepository()
	svc := NewBookingService(repo, newTestLogger())
	bus := seedTestBus(t, busRepo, 40)

	const attempts = 20
	results := make(chan error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.CreateBooking(context.Background(), uuid.New(), validBookingRequest(bus.ID, "07", "2026-09-01"))
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var won, lost int
	for err := range results {
		switch {
		case err == nil:
			won++
		case err == entity.ErrSeatAlreadyBooked:
			lost++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, won, "exactly one request should win the seat")
	assert.Equal(t, attempts-1, lost)
}

func TestCreateBookingSeatOutOfRange(t *testing.T) {
	repo, _, busRepo, _ := newTestRepository()
	svc := NewBookingService(repo, newTestLogger())
	bus := seedTestBus(t, busRepo, 40)

	for _, seat := range []string{"0", "41", "-3", "abc"} {
		_, err := svc.CreateBooking(context.Background(), uuid.New(), validBookingRequest(bus.ID, seat, "2026-09-01"))
		assert.ErrorIs(t, err, entity.ErrSeatOutOfRange, "seat %q", seat)
	}
}

func TestCreateBookingBusNotFound(t *testing.T) {
	repo, _, _, _ := newTestRepository()
	svc := NewBookingService(repo, newTestLogger())

	_, err := svc.CreateBooking(context.Background(), uuid.New(), validBookingRequest(uuid.New(), "1", "2026-09-01"))
	assert.ErrorIs(t, err, entity.ErrBusNotFound)
}

func TestCreateBookingValidation(t *testing.T) {
	repo, _, busRepo, _ := newTestRepository()
	svc := NewBookingService(repo, newTestLogger())
	bus := seedTestBus(t, busRepo, 40)

	req := validBookingRequest(bus.ID, "1", "01-09-2026") // wrong date layout
	_, err := svc.CreateBooking(context.Background(), uuid.New(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")

	req = validBookingRequest(bus.ID, "1", "2026-09-01")
	req.Passenger.Gender = "unknown"
	_, err = svc.CreateBooking(context.Background(), uuid.New(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestGetUserBookings(t *testing.T) {
	repo, _, busRepo, _ := newTestRepository()
	svc := NewBookingService(repo, newTestLogger())
	bus := seedTestBus(t, busRepo, 40)
	userID := uuid.New()

	_, err := svc.CreateBooking(context.Background(), userID, validBookingRequest(bus.ID, "1", "2026-09-01"))
	require.NoError(t, err)
	_, err = svc.CreateBooking(context.Background(), userID, validBookingRequest(bus.ID, "2", "2026-09-01"))
	require.NoError(t, err)
	_, err = svc.CreateBooking(context.Background(), uuid.New(), validBookingRequest(bus.ID, "3", "2026-09-01"))
	require.NoError(t, err)

	bookings, err := svc.GetUserBookings(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, bookings, 2, "only the caller's bookings are returned")

	for _, b := range bookings {
		assert.Equal(t, bus.BusNumber, b.BusNumber)
		assert.Equal(t, "Nairobi", b.Route.From)
		assert.Equal(t, "Mombasa", b.Route.To)
	}
}

func TestCancelBooking(t *testing.T) {
	repo, _, busRepo, _ := newTestRepository()
	svc := NewBookingService(repo, newTestLogger())
	bus := seedTestBus(t, busRepo, 40)
	owner := uuid.New()

	resp, err := svc.CreateBooking(context.Background(), owner, validBookingRequest(bus.ID, "9", "2026-09-01"))
	require.NoError(t, err)

	// Another user cannot cancel it, and learns nothing from the error.
	err = svc.CancelBooking(context.Background(), resp.ID, uuid.New())
	assert.ErrorIs(t, err, entity.ErrBookingNotFound)

	require.NoError(t, svc.CancelBooking(context.Background(), resp.ID, owner))

	// Cancelling twice fails: the booking is no longer confirmed.
	err = svc.CancelBooking(context.Background(), resp.ID, owner)
	assert.ErrorIs(t, err, entity.ErrBookingNotFound)

	// The seat is free again.
	_, err = svc.CreateBooking(context.Background(), uuid.New(), validBookingRequest(bus.ID, "9", "2026-09-01"))
	assert.NoError(t, err)
}

func TestCancelBookingBadID(t *testing.T) {
	repo, _, _, _ := newTestRepository()
	svc := NewBookingService(repo, newTestLogger())

	err := svc.CancelBooking(context.Background(), "not-a-uuid", uuid.New())
	assert.ErrorIs(t, err, entity.ErrBookingNotFound)
}
