package usecase

import (
	"context"
	"fmt"
	"time"

	"bus-booking/internal/data/entity"
	"bus-booking/internal/data/repository"
	"bus-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const travelDateLayout = "2006-01-02"

// formatSeat renders seat ordinals at the fixed 2-digit width used across
// the API. Catalog validation caps total_seats at 99 so the width never
// truncates.
func formatSeat(n int) string {
	return fmt.Sprintf("%02d", n)
}

type SeatService interface {
	// GetSeatAvailability derives the seat map for one bus on one date
	// from current ledger state. No caching: a cancellation is visible on
	// the next call.
	GetSeatAvailability(ctx context.Context, busID, travelDate string) (*response.SeatAvailabilityResponse, error)
}

type seatService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewSeatService(repo *repository.Repository, log *zap.Logger) SeatService {
	return &seatService{
		repo: repo,
		log:  log.With(zap.String("service", "seat")),
	}
}

func (s *seatService) GetSeatAvailability(ctx context.Context, busID, travelDate string) (*response.SeatAvailabilityResponse, error) {
	if _, err := time.Parse(travelDateLayout, travelDate); err != nil {
		return nil, entity.ErrInvalidTravelDate
	}

	id, err := uuid.Parse(busID)
	if err != nil {
		return nil, entity.ErrBusNotFound
	}

	bus, err := s.repo.Bus.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find bus for seat map", zap.Error(err), zap.String("bus_id", busID))
		return nil, fmt.Errorf("find bus %s: %w", busID, err)
	}
	if bus == nil {
		return nil, entity.ErrBusNotFound
	}

	bookedSeats, err := s.repo.Booking.FindConfirmedSeats(ctx, id, travelDate)
	if err != nil {
		s.log.Error("Failed to find booked seats",
			zap.Error(err),
			zap.String("bus_id", busID),
			zap.String("travel_date", travelDate))
		return nil, fmt.Errorf("find booked seats: %w", err)
	}

	booked := make(map[string]struct{}, len(bookedSeats))
	for _, seat := range bookedSeats {
		booked[seat] = struct{}{}
	}

	seats := make([]response.Seat, bus.TotalSeats)
	for i := 1; i <= bus.TotalSeats; i++ {
		seatNumber := formatSeat(i)
		_, taken := booked[seatNumber]
		seats[i-1] = response.Seat{
			SeatNumber:  seatNumber,
			IsAvailable: !taken,
		}
	}

	return &response.SeatAvailabilityResponse{
		TravelDate: travelDate,
		Seats:      seats,
	}, nil
}
