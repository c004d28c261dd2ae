package wire

import (
	"bus-booking/internal/adaptor"
	"bus-booking/pkg/middleware"
	"bus-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// All booking routes require authentication
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))

		// POST /bookings - reserve a seat
		r.Post("/bookings", bookingHandler.CreateBooking)

		// GET /bookings/user - booking history for the caller
		r.Get("/bookings/user", bookingHandler.GetUserBookings)

		// DELETE /bookings/{id} - cancel own booking
		r.Delete("/bookings/{id}", bookingHandler.CancelBooking)
	})
}
