package entity

import "errors"

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidGoogleToken = errors.New("invalid google token")
	ErrUserNotFound       = errors.New("user not found")
)

var (
	ErrBusNotFound    = errors.New("bus not found")
	ErrBusHasBookings = errors.New("bus has existing bookings")
)

var (
	ErrBookingNotFound   = errors.New("booking not found")
	ErrSeatOutOfRange    = errors.New("seat number out of range")
	ErrSeatAlreadyBooked = errors.New("seat is already booked")
	ErrInvalidTravelDate = errors.New("invalid travel date")
)
