package response

import (
	"time"

	"bus-booking/internal/data/entity"
)

type PassengerResponse struct {
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Gender string `json:"gender"`
}

type BookingResponse struct {
	ID          string               `json:"id"`
	UserID      string               `json:"user_id"`
	BusID       string               `json:"bus_id"`
	SeatNumber  string               `json:"seat_number"`
	TravelDate  string               `json:"travel_date"`
	BookingDate time.Time            `json:"booking_date"`
	Status      entity.BookingStatus `json:"status"`
	Passenger   PassengerResponse    `json:"passenger"`
}

// BookingDetailResponse embeds the bus and route as they exist at read
// time, matching what the booking history screen shows.
type BookingDetailResponse struct {
	BookingResponse
	BusNumber string        `json:"bus_number"`
	BusType   string        `json:"bus_type"`
	Route     RouteResponse `json:"route"`
}

func BookingToResponse(b *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:          b.ID.String(),
		UserID:      b.UserID.String(),
		BusID:       b.BusID.String(),
		SeatNumber:  b.SeatNumber,
		TravelDate:  b.TravelDate,
		BookingDate: b.BookingDate,
		Status:      b.Status,
		Passenger: PassengerResponse{
			Name:   b.Passenger.Name,
			Age:    b.Passenger.Age,
			Gender: b.Passenger.Gender,
		},
	}
}

func BookingDetailToResponse(d *entity.BookingDetail) BookingDetailResponse {
	return BookingDetailResponse{
		BookingResponse: BookingToResponse(&d.Booking),
		BusNumber:       d.BusNumber,
		BusType:         d.BusType,
		Route: RouteResponse{
			From:          d.Route.From,
			To:            d.Route.To,
			DepartureTime: d.Route.DepartureTime,
			ArrivalTime:   d.Route.ArrivalTime,
			Price:         d.Route.Price,
		},
	}
}
