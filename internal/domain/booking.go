package domain

import "time"

type BookingType string

const (
	BookingTypeFlight BookingType = "flight"
	BookingTypeHotel  BookingType = "hotel"
)

func (t BookingType) Valid() bool {
	return t == BookingTypeFlight || t == BookingTypeHotel
}

// Booking belongs to a user and points at either a flight or a hotel,
// depending on BookingType.
type Booking struct {
	BookingID   int64       `json:"booking_id"`
	UserID      int64       `json:"user_id"`
	BookingType BookingType `json:"booking_type"`
	FlightID    *int64      `json:"flight_id"`
	HotelID     *int64      `json:"hotel_id"`
	CheckIn     *time.Time  `json:"check_in"`
	CheckOut    *time.Time  `json:"check_out"`
	BookingDate time.Time   `json:"booking_date"`
	TotalAmount float64     `json:"total_amount"`
}

func (b Booking) Identity() int64 { return b.BookingID }

func (b Booking) WithIdentity(id int64) Booking {
	b.BookingID = id
	return b
}

func (Booking) Entity() string { return "Booking" }
