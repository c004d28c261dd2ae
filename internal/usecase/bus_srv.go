package usecase

import (
	"context"
	"fmt"
	"time"

	"bus-booking/internal/data/entity"
	"bus-booking/internal/data/repository"
	"bus-booking/internal/dto/request"
	"bus-booking/internal/dto/response"
	"bus-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BusService interface {
	GetBuses(ctx context.Context) ([]response.BusResponse, error)
	GetBusByID(ctx context.Context, busID string) (*response.BusResponse, error)

	// Admin operations
	CreateBus(ctx context.Context, req *request.BusRequest) (*response.BusResponse, error)
	UpdateBus(ctx context.Context, busID string, req *request.BusRequest) (*response.BusResponse, error)
	DeleteBus(ctx context.Context, busID string) error

	// Seed loads the sample fleet. Idempotent unless force, which clears
	// the booking ledger and the catalog first. Returns the number of
	// buses inserted.
	Seed(ctx context.Context, force bool) (int, error)
}

type busService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBusService(repo *repository.Repository, log *zap.Logger) BusService {
	return &busService{
		repo: repo,
		log:  log.With(zap.String("service", "bus")),
	}
}

func (s *busService) GetBuses(ctx context.Context) ([]response.BusResponse, error) {
	buses, err := s.repo.Bus.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get buses", zap.Error(err))
		return nil, fmt.Errorf("get buses: %w", err)
	}

	busResponses := make([]response.BusResponse, len(buses))
	for i, bus := range buses {
		busResponses[i] = response.BusToResponse(bus)
	}

	return busResponses, nil
}

func (s *busService) GetBusByID(ctx context.Context, busID string) (*response.BusResponse, error) {
	id, err := uuid.Parse(busID)
	if err != nil {
		return nil, entity.ErrBusNotFound
	}

	bus, err := s.repo.Bus.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get bus", zap.Error(err), zap.String("bus_id", busID))
		return nil, fmt.Errorf("get bus %s: %w", busID, err)
	}
	if bus == nil {
		return nil, entity.ErrBusNotFound
	}

	resp := response.BusToResponse(bus)
	return &resp, nil
}

func (s *busService) CreateBus(ctx context.Context, req *request.BusRequest) (*response.BusResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create bus validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	bus := &entity.Bus{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BusNumber:  req.BusNumber,
		BusType:    req.BusType,
		TotalSeats: req.TotalSeats,
		Route: entity.Route{
			From:          req.Route.From,
			To:            req.Route.To,
			DepartureTime: req.Route.DepartureTime,
			ArrivalTime:   req.Route.ArrivalTime,
			Price:         req.Route.Price,
		},
	}

	if err := s.repo.Bus.Create(ctx, bus); err != nil {
		s.log.Error("Failed to create bus", zap.Error(err), zap.String("bus_number", req.BusNumber))
		return nil, fmt.Errorf("create bus: %w", err)
	}

	s.log.Info("Bus created",
		zap.String("bus_id", bus.ID.String()),
		zap.String("bus_number", bus.BusNumber))

	resp := response.BusToResponse(bus)
	return &resp, nil
}

func (s *busService) UpdateBus(ctx context.Context, busID string, req *request.BusRequest) (*response.BusResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update bus validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(busID)
	if err != nil {
		return nil, entity.ErrBusNotFound
	}

	bus, err := s.repo.Bus.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find bus for update", zap.Error(err), zap.String("bus_id", busID))
		return nil, fmt.Errorf("find bus %s: %w", busID, err)
	}
	if bus == nil {
		return nil, entity.ErrBusNotFound
	}

	bus.BusNumber = req.BusNumber
	bus.BusType = req.BusType
	bus.TotalSeats = req.TotalSeats
	bus.Route = entity.Route{
		From:          req.Route.From,
		To:            req.Route.To,
		DepartureTime: req.Route.DepartureTime,
		ArrivalTime:   req.Route.ArrivalTime,
		Price:         req.Route.Price,
	}
	bus.UpdatedAt = time.Now()

	if err := s.repo.Bus.Update(ctx, bus); err != nil {
		s.log.Error("Failed to update bus", zap.Error(err), zap.String("bus_id", busID))
		return nil, err
	}

	s.log.Info("Bus updated", zap.String("bus_id", busID))

	resp := response.BusToResponse(bus)
	return &resp, nil
}

func (s *busService) DeleteBus(ctx context.Context, busID string) error {
	id, err := uuid.Parse(busID)
	if err != nil {
		return entity.ErrBusNotFound
	}

	if err := s.repo.Bus.Delete(ctx, id); err != nil {
		return err
	}

	return nil
}

func (s *busService) Seed(ctx context.Context, force bool) (int, error) {
	if force {
		s.log.Warn("Force seeding enabled, clearing bookings and bus catalog")
		if err := s.repo.Bus.DeleteAll(ctx); err != nil {
			return 0, fmt.Errorf("clear catalog: %w", err)
		}
	}

	count, err := s.repo.Bus.CountAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("count buses: %w", err)
	}
	if count > 0 {
		s.log.Info("Catalog already populated, skipping seed", zap.Int64("count", count))
		return 0, nil
	}

	now := time.Now()
	for _, bus := range sampleBuses {
		bus.Base = entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.repo.Bus.Create(ctx, &bus); err != nil {
			return 0, fmt.Errorf("seed bus %s: %w", bus.BusNumber, err)
		}
	}

	s.log.Info("Bus catalog seeded", zap.Int("count", len(sampleBuses)))
	return len(sampleBuses), nil
}
