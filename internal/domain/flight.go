package domain

import "time"

type Flight struct {
	FlightID       int64     `json:"flight_id"`
	FlightNumber   string    `json:"flight_number"`
	DepartureCity  string    `json:"departure_city"`
	ArrivalCity    string    `json:"arrival_city"`
	DepartureTime  time.Time `json:"departure_time"`
	ArrivalTime    time.Time `json:"arrival_time"`
	Airline        string    `json:"airline"`
	Price          float64   `json:"price"`
	SeatsAvailable int       `json:"seats_available"`
}

func (f Flight) Identity() int64 { return f.FlightID }

func (f Flight) WithIdentity(id int64) Flight {
	f.FlightID = id
	return f
}

func (Flight) Entity() string { return "Flight" }
