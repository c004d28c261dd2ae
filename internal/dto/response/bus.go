package response

import "bus-booking/internal/data/entity"

type RouteResponse struct {
	From          string  `json:"from"`
	To            string  `json:"to"`
	DepartureTime string  `json:"departure_time"`
	ArrivalTime   string  `json:"arrival_time"`
	Price         float64 `json:"price"`
}

type BusResponse struct {
	ID         string        `json:"id"`
	BusNumber  string        `json:"bus_number"`
	BusType    string        `json:"bus_type"`
	TotalSeats int           `json:"total_seats"`
	Route      RouteResponse `json:"route"`
}

func BusToResponse(bus *entity.Bus) BusResponse {
	return BusResponse{
		ID:         bus.ID.String(),
		BusNumber:  bus.BusNumber,
		BusType:    bus.BusType,
		TotalSeats: bus.TotalSeats,
		Route: RouteResponse{
			From:          bus.Route.From,
			To:            bus.Route.To,
			DepartureTime: bus.Route.DepartureTime,
			ArrivalTime:   bus.Route.ArrivalTime,
			Price:         bus.Route.Price,
		},
	}
}
