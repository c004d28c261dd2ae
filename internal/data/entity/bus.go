package entity

// Route is embedded in Bus; stored as flat columns on the buses table.
type Route struct {
	From          string  `db:"route_from"`
	To            string  `db:"route_to"`
	DepartureTime string  `db:"departure_time"`
	ArrivalTime   string  `db:"arrival_time"`
	Price         float64 `db:"price"`
}

type Bus struct {
	Base
	BusNumber  string `db:"bus_number"`
	BusType    string `db:"bus_type"`
	TotalSeats int    `db:"total_seats"`
	Route      Route
}
