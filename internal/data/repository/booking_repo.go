package repository

import (
	"context"
	"errors"
	"fmt"

	"bus-booking/internal/data/entity"
	"bus-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type BookingRepository interface {
	// Create inserts a confirmed booking. The partial unique index on
	// (bus_id, seat_number, travel_date) WHERE status = 'confirmed' makes
	// the check-and-insert a single atomic step; a violation is returned
	// as entity.ErrSeatAlreadyBooked.
	Create(ctx context.Context, booking *entity.Booking) error

	// FindConfirmedSeats returns the seat numbers with a confirmed
	// booking for the given bus and travel date.
	FindConfirmedSeats(ctx context.Context, busID uuid.UUID, travelDate string) ([]string, error)

	// FindDetailsByUserID joins each booking with its bus at read time.
	FindDetailsByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.BookingDetail, error)

	// CancelOwned flips a confirmed booking owned by userID to cancelled.
	// Returns entity.ErrBookingNotFound when no such row exists, which
	// covers both unknown ids and bookings owned by someone else.
	CancelOwned(ctx context.Context, bookingID, userID uuid.UUID) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, user_id, bus_id, seat_number, travel_date,
		                      booking_date, status,
		                      passenger_name, passenger_age, passenger_gender,
		                      created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.UserID,
		booking.BusID,
		booking.SeatNumber,
		booking.TravelDate,
		booking.BookingDate,
		booking.Status,
		booking.Passenger.Name,
		booking.Passenger.Age,
		booking.Passenger.Gender,
		booking.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return entity.ErrSeatAlreadyBooked
		}
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", booking.UserID.String()),
			zap.String("bus_id", booking.BusID.String()),
			zap.String("seat_number", booking.SeatNumber),
			zap.String("travel_date", booking.TravelDate),
		)
		return fmt.Errorf("create booking: %w", err)
	}

	return nil
}

func (r *bookingRepository) FindConfirmedSeats(ctx context.Context, busID uuid.UUID, travelDate string) ([]string, error) {
	query := `
		SELECT seat_number
		FROM bookings
		WHERE bus_id = $1 AND travel_date = $2 AND status = 'confirmed'
	`

	rows, err := r.db.Query(ctx, query, busID, travelDate)
	if err != nil {
		r.log.Error("Failed to find confirmed seats",
			zap.Error(err),
			zap.String("bus_id", busID.String()),
			zap.String("travel_date", travelDate),
		)
		return nil, fmt.Errorf("find confirmed seats for bus %s on %s: %w",
			busID.String(), travelDate, err)
	}
	defer rows.Close()

	var seats []string
	for rows.Next() {
		var seat string
		if err := rows.Scan(&seat); err != nil {
			r.log.Error("Failed to scan seat row", zap.Error(err))
			return nil, fmt.Errorf("scan seat row: %w", err)
		}
		seats = append(seats, seat)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate seat rows: %w", err)
	}

	return seats, nil
}

func (r *bookingRepository) FindDetailsByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.BookingDetail, error) {
	query := `
		SELECT b.id, b.user_id, b.bus_id, b.seat_number, b.travel_date,
		       b.booking_date, b.status,
		       b.passenger_name, b.passenger_age, b.passenger_gender,
		       b.created_at,
		       bus.bus_number, bus.bus_type,
		       bus.route_from, bus.route_to, bus.departure_time, bus.arrival_time, bus.price
		FROM bookings b
		JOIN buses bus ON bus.id = b.bus_id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find bookings by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var details []*entity.BookingDetail
	for rows.Next() {
		var d entity.BookingDetail
		err := rows.Scan(
			&d.ID,
			&d.UserID,
			&d.BusID,
			&d.SeatNumber,
			&d.TravelDate,
			&d.BookingDate,
			&d.Status,
			&d.Passenger.Name,
			&d.Passenger.Age,
			&d.Passenger.Gender,
			&d.CreatedAt,
			&d.BusNumber,
			&d.BusType,
			&d.Route.From,
			&d.Route.To,
			&d.Route.DepartureTime,
			&d.Route.ArrivalTime,
			&d.Route.Price,
		)
		if err != nil {
			r.log.Error("Failed to scan booking detail row", zap.Error(err))
			return nil, fmt.Errorf("scan booking detail row: %w", err)
		}
		details = append(details, &d)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}

	return details, nil
}

func (r *bookingRepository) CancelOwned(ctx context.Context, bookingID, userID uuid.UUID) error {
	query := `
		UPDATE bookings
		SET status = 'cancelled'
		WHERE id = $1 AND user_id = $2 AND status = 'confirmed'
	`

	result, err := r.db.Exec(ctx, query, bookingID, userID)
	if err != nil {
		r.log.Error("Failed to cancel booking",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("user_id", userID.String()),
		)
		return fmt.Errorf("cancel booking %s: %w", bookingID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrBookingNotFound
	}

	return nil
}
