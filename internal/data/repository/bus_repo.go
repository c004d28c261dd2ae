package repository

import (
	"context"
	"errors"
	"fmt"

	"bus-booking/internal/data/entity"
	"bus-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type BusRepository interface {
	Create(ctx context.Context, bus *entity.Bus) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Bus, error)
	FindAll(ctx context.Context) ([]*entity.Bus, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, bus *entity.Bus) error

	// Delete removes a bus from the catalog. A bus referenced by any
	// booking row is kept and entity.ErrBusHasBookings returned; the
	// ledger is the history of record and is never orphaned.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteAll clears the ledger and the catalog in one transaction.
	// Used only by force seeding.
	DeleteAll(ctx context.Context) error
}

type busRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBusRepository(db database.PgxIface, log *zap.Logger) BusRepository {
	return &busRepository{
		db:  db,
		log: log.With(zap.String("repository", "bus")),
	}
}

func (r *busRepository) Create(ctx context.Context, bus *entity.Bus) error {
	query := `
		INSERT INTO buses (id, bus_number, bus_type, total_seats,
		                   route_from, route_to, departure_time, arrival_time, price,
		                   created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		bus.ID,
		bus.BusNumber,
		bus.BusType,
		bus.TotalSeats,
		bus.Route.From,
		bus.Route.To,
		bus.Route.DepartureTime,
		bus.Route.ArrivalTime,
		bus.Route.Price,
		bus.CreatedAt,
		bus.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create bus",
			zap.Error(err),
			zap.String("bus_number", bus.BusNumber),
		)
		return fmt.Errorf("create bus %s: %w", bus.BusNumber, err)
	}

	return nil
}

func (r *busRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Bus, error) {
	query := `
		SELECT id, bus_number, bus_type, total_seats,
		       route_from, route_to, departure_time, arrival_time, price,
		       created_at, updated_at
		FROM buses
		WHERE id = $1
	`

	var bus entity.Bus
	err := r.db.QueryRow(ctx, query, id).Scan(
		&bus.ID,
		&bus.BusNumber,
		&bus.BusType,
		&bus.TotalSeats,
		&bus.Route.From,
		&bus.Route.To,
		&bus.Route.DepartureTime,
		&bus.Route.ArrivalTime,
		&bus.Route.Price,
		&bus.CreatedAt,
		&bus.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find bus by ID",
			zap.Error(err),
			zap.String("bus_id", id.String()),
		)
		return nil, fmt.Errorf("find bus by ID %s: %w", id.String(), err)
	}

	return &bus, nil
}

func (r *busRepository) FindAll(ctx context.Context) ([]*entity.Bus, error) {
	query := `
		SELECT id, bus_number, bus_type, total_seats,
		       route_from, route_to, departure_time, arrival_time, price,
		       created_at, updated_at
		FROM buses
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to get all buses", zap.Error(err))
		return nil, fmt.Errorf("find all buses: %w", err)
	}
	defer rows.Close()

	var buses []*entity.Bus
	for rows.Next() {
		var bus entity.Bus
		err := rows.Scan(
			&bus.ID,
			&bus.BusNumber,
			&bus.BusType,
			&bus.TotalSeats,
			&bus.Route.From,
			&bus.Route.To,
			&bus.Route.DepartureTime,
			&bus.Route.ArrivalTime,
			&bus.Route.Price,
			&bus.CreatedAt,
			&bus.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan bus row", zap.Error(err))
			return nil, fmt.Errorf("scan bus row: %w", err)
		}
		buses = append(buses, &bus)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate bus rows: %w", err)
	}

	return buses, nil
}

func (r *busRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM buses`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count buses", zap.Error(err))
		return 0, fmt.Errorf("count all buses: %w", err)
	}

	return count, nil
}

func (r *busRepository) Update(ctx context.Context, bus *entity.Bus) error {
	query := `
		UPDATE buses
		SET bus_number = $2, bus_type = $3, total_seats = $4,
		    route_from = $5, route_to = $6, departure_time = $7,
		    arrival_time = $8, price = $9, updated_at = $10
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		bus.ID,
		bus.BusNumber,
		bus.BusType,
		bus.TotalSeats,
		bus.Route.From,
		bus.Route.To,
		bus.Route.DepartureTime,
		bus.Route.ArrivalTime,
		bus.Route.Price,
		bus.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update bus",
			zap.Error(err),
			zap.String("bus_id", bus.ID.String()),
		)
		return fmt.Errorf("update bus %s: %w", bus.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrBusNotFound
	}

	return nil
}

func (r *busRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM buses WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return entity.ErrBusHasBookings
		}
		r.log.Error("Failed to delete bus",
			zap.Error(err),
			zap.String("bus_id", id.String()),
		)
		return fmt.Errorf("delete bus %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrBusNotFound
	}

	r.log.Info("Bus deleted", zap.String("bus_id", id.String()))
	return nil
}

func (r *busRepository) DeleteAll(ctx context.Context) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin clear transaction", zap.Error(err))
		return fmt.Errorf("begin clear transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Bookings reference buses, so they go first.
	if _, err := tx.Exec(ctx, `DELETE FROM bookings`); err != nil {
		r.log.Error("Failed to clear bookings", zap.Error(err))
		return fmt.Errorf("clear bookings: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM buses`); err != nil {
		r.log.Error("Failed to clear buses", zap.Error(err))
		return fmt.Errorf("clear buses: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit clear transaction", zap.Error(err))
		return fmt.Errorf("commit clear transaction: %w", err)
	}

	return nil
}
