package request

type RouteRequest struct {
	From          string  `json:"from" validate:"required"`
	To            string  `json:"to" validate:"required"`
	DepartureTime string  `json:"departure_time" validate:"required"`
	ArrivalTime   string  `json:"arrival_time" validate:"required"`
	Price         float64 `json:"price" validate:"gte=0"`
}

// Seat numbers render at a fixed 2-digit width, so capacity is capped at 99.
type BusRequest struct {
	BusNumber  string       `json:"bus_number" validate:"required,min=1,max=100"`
	BusType    string       `json:"bus_type" validate:"required,min=1,max=50"`
	TotalSeats int          `json:"total_seats" validate:"required,gte=1,max=99"`
	Route      RouteRequest `json:"route" validate:"required"`
}
