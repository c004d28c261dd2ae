package response

type Seat struct {
	SeatNumber  string `json:"seat_number"`
	IsAvailable bool   `json:"is_available"`
}

type SeatAvailabilityResponse struct {
	TravelDate string `json:"travel_date"`
	Seats      []Seat `json:"seats"`
}
