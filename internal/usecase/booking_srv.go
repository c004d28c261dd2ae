package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"bus-booking/internal/data/entity"
	"bus-booking/internal/data/repository"
	"bus-booking/internal/dto/request"
	"bus-booking/internal/dto/response"
	"bus-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetUserBookings(ctx context.Context, userID uuid.UUID) ([]response.BookingDetailResponse, error)
	CancelBooking(ctx context.Context, bookingID string, userID uuid.UUID) error
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

// normalizeSeat accepts "5", "05" or " 05 " and returns the canonical
// zero-padded form, checking the [1, totalSeats] bound.
func normalizeSeat(seatNumber string, totalSeats int) (string, error) {
	n, err := strconv.Atoi(strings.TrimSpace(seatNumber))
	if err != nil {
		return "", entity.ErrSeatOutOfRange
	}
	if n < 1 || n > totalSeats {
		return "", entity.ErrSeatOutOfRange
	}
	return formatSeat(n), nil
}

func (s *bookingService) CreateBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	busID, err := uuid.Parse(req.BusID)
	if err != nil {
		return nil, entity.ErrBusNotFound
	}

	bus, err := s.repo.Bus.FindByID(ctx, busID)
	if err != nil {
		s.log.Error("Failed to find bus for booking", zap.Error(err), zap.String("bus_id", req.BusID))
		return nil, fmt.Errorf("find bus %s: %w", req.BusID, err)
	}
	if bus == nil {
		return nil, entity.ErrBusNotFound
	}

	seatNumber, err := normalizeSeat(req.SeatNumber, bus.TotalSeats)
	if err != nil {
		return nil, err
	}

	// The insert is the availability check: the partial unique index on
	// confirmed (bus_id, seat_number, travel_date) decides who wins when
	// two requests race on the same seat.
	now := time.Now()
	booking := &entity.Booking{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		UserID:      userID,
		BusID:       busID,
		SeatNumber:  seatNumber,
		TravelDate:  req.TravelDate,
		BookingDate: now,
		Status:      entity.BookingStatusConfirmed,
		Passenger: entity.Passenger{
			Name:   req.Passenger.Name,
			Age:    req.Passenger.Age,
			Gender: req.Passenger.Gender,
		},
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		if errors.Is(err, entity.ErrSeatAlreadyBooked) {
			s.log.Warn("Seat already booked",
				zap.String("bus_id", req.BusID),
				zap.String("seat_number", seatNumber),
				zap.String("travel_date", req.TravelDate))
			return nil, err
		}
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("bus_id", req.BusID),
		)
		return nil, err
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("bus_id", req.BusID),
		zap.String("seat_number", seatNumber),
		zap.String("travel_date", req.TravelDate),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID uuid.UUID) ([]response.BookingDetailResponse, error) {
	details, err := s.repo.Booking.FindDetailsByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get user bookings", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("get user bookings: %w", err)
	}

	detailResponses := make([]response.BookingDetailResponse, len(details))
	for i, d := range details {
		detailResponses[i] = response.BookingDetailToResponse(d)
	}

	s.log.Info("User bookings retrieved",
		zap.String("user_id", userID.String()),
		zap.Int("count", len(details)),
	)

	return detailResponses, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, bookingID string, userID uuid.UUID) error {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return entity.ErrBookingNotFound
	}

	// The ownership check is part of the UPDATE predicate, so a booking
	// owned by someone else is indistinguishable from a missing one.
	if err := s.repo.Booking.CancelOwned(ctx, id, userID); err != nil {
		if errors.Is(err, entity.ErrBookingNotFound) {
			s.log.Warn("Cancel target not found or not owned",
				zap.String("booking_id", bookingID),
				zap.String("user_id", userID.String()))
			return err
		}
		s.log.Error("Failed to cancel booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return err
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_id", bookingID),
		zap.String("user_id", userID.String()),
	)

	return nil
}
