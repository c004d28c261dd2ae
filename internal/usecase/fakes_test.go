package usecase

import (
	"context"
	"sync"

	"bus-booking/internal/data/entity"
	"bus-booking/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// In-memory fakes implementing the repository interfaces. The booking fake
// enforces the same confirmed-seat uniqueness as the partial unique index,
// so the race behavior under test matches the storage layer.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == user.Email {
			return entity.ErrEmailTaken
		}
	}
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

type fakeBusRepo struct {
	mu     sync.Mutex
	buses  map[uuid.UUID]*entity.Bus
	order  []uuid.UUID
	ledger *fakeBookingRepo
}

func newFakeBusRepo() *fakeBusRepo {
	return &fakeBusRepo{buses: make(map[uuid.UUID]*entity.Bus)}
}

func (f *fakeBusRepo) Create(ctx context.Context, bus *entity.Bus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *bus
	f.buses[bus.ID] = &copied
	f.order = append(f.order, bus.ID)
	return nil
}

func (f *fakeBusRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Bus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.buses[id]
	if !ok {
		return nil, nil
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBusRepo) FindAll(ctx context.Context) ([]*entity.Bus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var buses []*entity.Bus
	for _, id := range f.order {
		if b, ok := f.buses[id]; ok {
			copied := *b
			buses = append(buses, &copied)
		}
	}
	return buses, nil
}

func (f *fakeBusRepo) CountAll(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.buses)), nil
}

func (f *fakeBusRepo) Update(ctx context.Context, bus *entity.Bus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.buses[bus.ID]; !ok {
		return entity.ErrBusNotFound
	}
	copied := *bus
	f.buses[bus.ID] = &copied
	return nil
}

func (f *fakeBusRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.buses[id]; !ok {
		return entity.ErrBusNotFound
	}
	// Bookings reference buses, regardless of status.
	if f.ledger != nil && f.ledger.referencesBus(id) {
		return entity.ErrBusHasBookings
	}
	delete(f.buses, id)
	return nil
}

func (f *fakeBusRepo) DeleteAll(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ledger != nil {
		f.ledger.clear()
	}
	f.buses = make(map[uuid.UUID]*entity.Bus)
	f.order = nil
	return nil
}

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[uuid.UUID]*entity.Booking
	busRepo  *fakeBusRepo
}

func newFakeBookingRepo(busRepo *fakeBusRepo) *fakeBookingRepo {
	return &fakeBookingRepo{
		bookings: make(map[uuid.UUID]*entity.Booking),
		busRepo:  busRepo,
	}
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.Status == entity.BookingStatusConfirmed &&
			b.BusID == booking.BusID &&
			b.SeatNumber == booking.SeatNumber &&
			b.TravelDate == booking.TravelDate {
			return entity.ErrSeatAlreadyBooked
		}
	}
	copied := *booking
	f.bookings[booking.ID] = &copied
	return nil
}

func (f *fakeBookingRepo) FindConfirmedSeats(ctx context.Context, busID uuid.UUID, travelDate string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var seats []string
	for _, b := range f.bookings {
		if b.Status == entity.BookingStatusConfirmed && b.BusID == busID && b.TravelDate == travelDate {
			seats = append(seats, b.SeatNumber)
		}
	}
	return seats, nil
}

func (f *fakeBookingRepo) FindDetailsByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.BookingDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var details []*entity.BookingDetail
	for _, b := range f.bookings {
		if b.UserID != userID {
			continue
		}
		d := &entity.BookingDetail{Booking: *b}
		if bus, ok := f.busRepo.buses[b.BusID]; ok {
			d.BusNumber = bus.BusNumber
			d.BusType = bus.BusType
			d.Route = bus.Route
		}
		details = append(details, d)
	}
	return details, nil
}

func (f *fakeBookingRepo) referencesBus(busID uuid.UUID) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.BusID == busID {
			return true
		}
	}
	return false
}

func (f *fakeBookingRepo) clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bookings = make(map[uuid.UUID]*entity.Booking)
}

func (f *fakeBookingRepo) CancelOwned(ctx context.Context, bookingID, userID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[bookingID]
	if !ok || b.UserID != userID || b.Status != entity.BookingStatusConfirmed {
		return entity.ErrBookingNotFound
	}
	b.Status = entity.BookingStatusCancelled
	return nil
}

func newTestRepository() (*repository.Repository, *fakeUserRepo, *fakeBusRepo, *fakeBookingRepo) {
	userRepo := newFakeUserRepo()
	busRepo := newFakeBusRepo()
	bookingRepo := newFakeBookingRepo(busRepo)
	busRepo.ledger = bookingRepo

	return &repository.Repository{
		User:    userRepo,
		Bus:     busRepo,
		Booking: bookingRepo,
	}, userRepo, busRepo, bookingRepo
}

func newTestLogger() *zap.Logger {
	return zap.NewNop()
}
