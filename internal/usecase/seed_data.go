package usecase

import "bus-booking/internal/data/entity"

// sampleBuses is the Kenyan intercity fleet used for development seeding.
var sampleBuses = []entity.Bus{
	{
		BusNumber:  "Easy Coach - KCH 123A",
		BusType:    "Standard",
		TotalSeats: 44,
		Route: entity.Route{
			From:          "Nairobi",
			To:            "Kisumu",
			DepartureTime: "08:15 AM",
			ArrivalTime:   "04:30 PM",
			Price:         1450,
		},
	},
	{
		BusNumber:  "Mash East Africa - KDA 456B",
		BusType:    "VIP Oxygen",
		TotalSeats: 36,
		Route: entity.Route{
			From:          "Nairobi",
			To:            "Mombasa",
			DepartureTime: "10:00 PM",
			ArrivalTime:   "06:00 AM",
			Price:         2200,
		},
	},
	{
		BusNumber:  "Tahmeed - KDB 789C",
		BusType:    "Luxury Coach",
		TotalSeats: 32,
		Route: entity.Route{
			From:          "Mombasa",
			To:            "Nairobi",
			DepartureTime: "09:00 AM",
			ArrivalTime:   "05:00 PM",
			Price:         1600,
		},
	},
	{
		BusNumber:  "Dreamline - KDC 012D",
		BusType:    "Executive",
		TotalSeats: 40,
		Route: entity.Route{
			From:          "Nairobi",
			To:            "Eldoret",
			DepartureTime: "07:30 AM",
			ArrivalTime:   "01:30 PM",
			Price:         1300,
		},
	},
	{
		BusNumber:  "Guardian Angel - KDD 345E",
		BusType:    "Standard",
		TotalSeats: 52,
		Route: entity.Route{
			From:          "Nairobi",
			To:            "Busia",
			DepartureTime: "09:00 PM",
			ArrivalTime:   "05:00 AM",
			Price:         1500,
		},
	},
	{
		BusNumber:  "Modern Coast - KDE 678F",
		BusType:    "VIP",
		TotalSeats: 28,
		Route: entity.Route{
			From:          "Nairobi",
			To:            "Mombasa",
			DepartureTime: "08:00 AM",
			ArrivalTime:   "04:30 PM",
			Price:         2500,
		},
	},
	{
		BusNumber:  "Super Metro - KDF 901G",
		BusType:    "Semi-Luxury",
		TotalSeats: 48,
		Route: entity.Route{
			From:          "Nairobi",
			To:            "Nakuru",
			DepartureTime: "06:00 AM",
			ArrivalTime:   "09:00 AM",
			Price:         800,
		},
	},
	{
		BusNumber:  "Transline Galaxy - KDG 234H",
		BusType:    "Standard",
		TotalSeats: 14,
		Route: entity.Route{
			From:          "Nairobi",
			To:            "Kisii",
			DepartureTime: "10:00 AM",
			ArrivalTime:   "04:00 PM",
			Price:         1200,
		},
	},
	{
		BusNumber:  "Spanish - KDH 567I",
		BusType:    "Standard Coach",
		TotalSeats: 52,
		Route: entity.Route{
			From:          "Nairobi",
			To:            "Kakamega",
			DepartureTime: "08:30 PM",
			ArrivalTime:   "04:30 AM",
			Price:         1400,
		},
	},
	{
		BusNumber:  "Mash East Africa - KDI 890J",
		BusType:    "Standard",
		TotalSeats: 52,
		Route: entity.Route{
			From:          "Nairobi",
			To:            "Malindi",
			DepartureTime: "07:00 PM",
			ArrivalTime:   "05:00 AM",
			Price:         1800,
		},
	},
}
