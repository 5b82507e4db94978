package validation

import (
	"time"

	"github.com/Domenick1991/travelbooking/internal/domain"
)

type FlightCreate struct {
	FlightNumber   string     `json:"flight_number" binding:"required"`
	DepartureCity  string     `json:"departure_city" binding:"required"`
	ArrivalCity    string     `json:"arrival_city" binding:"required"`
	DepartureTime  *time.Time `json:"departure_time" binding:"required"`
	ArrivalTime    *time.Time `json:"arrival_time" binding:"required"`
	Airline        string     `json:"airline" binding:"required"`
	Price          *float64   `json:"price" binding:"required,gte=0"`
	SeatsAvailable *int       `json:"seats_available" binding:"required,gte=0"`
}

func (in FlightCreate) Record(time.Time) domain.Flight {
	return domain.Flight{
		FlightNumber:   in.FlightNumber,
		DepartureCity:  in.DepartureCity,
		ArrivalCity:    in.ArrivalCity,
		DepartureTime:  in.DepartureTime.UTC(),
		ArrivalTime:    in.ArrivalTime.UTC(),
		Airline:        in.Airline,
		Price:          *in.Price,
		SeatsAvailable: *in.SeatsAvailable,
	}
}

type FlightUpdate struct {
	FlightNumber   *string    `json:"flight_number"`
	DepartureCity  *string    `json:"departure_city"`
	ArrivalCity    *string    `json:"arrival_city"`
	DepartureTime  *time.Time `json:"departure_time"`
	ArrivalTime    *time.Time `json:"arrival_time"`
	Airline        *string    `json:"airline"`
	Price          *float64   `json:"price" binding:"omitnil,gte=0"`
	SeatsAvailable *int       `json:"seats_available" binding:"omitnil,gte=0"`
}

func (in FlightUpdate) Apply(f *domain.Flight) {
	if in.FlightNumber != nil {
		f.FlightNumber = *in.FlightNumber
	}
	if in.DepartureCity != nil {
		f.DepartureCity = *in.DepartureCity
	}
	if in.ArrivalCity != nil {
		f.ArrivalCity = *in.ArrivalCity
	}
	if in.DepartureTime != nil {
		f.DepartureTime = in.DepartureTime.UTC()
	}
	if in.ArrivalTime != nil {
		f.ArrivalTime = in.ArrivalTime.UTC()
	}
	if in.Airline != nil {
		f.Airline = *in.Airline
	}
	if in.Price != nil {
		f.Price = *in.Price
	}
	if in.SeatsAvailable != nil {
		f.SeatsAvailable = *in.SeatsAvailable
	}
}
