package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Passenger struct {
	Name   string `db:"passenger_name"`
	Age    int    `db:"passenger_age"`
	Gender string `db:"passenger_gender"`
}

type Booking struct {
	BaseSimple
	UserID      uuid.UUID     `db:"user_id"`
	BusID       uuid.UUID     `db:"bus_id"`
	SeatNumber  string        `db:"seat_number"`
	TravelDate  string        `db:"travel_date"`
	BookingDate time.Time     `db:"booking_date"`
	Status      BookingStatus `db:"status"`
	Passenger   Passenger
}

// BookingDetail is a booking joined with its bus at read time. The route
// fields reflect the catalog as it is now, not as it was at booking time.
type BookingDetail struct {
	Booking
	BusNumber string
	BusType   string
	Route     Route
}
