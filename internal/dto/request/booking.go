package request

type PassengerRequest struct {
	Name   string `json:"name" validate:"required,min=1,max=100"`
	Age    int    `json:"age" validate:"required,gte=1"`
	Gender string `json:"gender" validate:"required,oneof=male female other"`
}

type CreateBookingRequest struct {
	BusID      string           `json:"bus_id" validate:"required,uuid"`
	SeatNumber string           `json:"seat_number" validate:"required"`
	TravelDate string           `json:"travel_date" validate:"required,datetime=2006-01-02"`
	Passenger  PassengerRequest `json:"passenger" validate:"required"`
}
