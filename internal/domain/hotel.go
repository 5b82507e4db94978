package domain

type Hotel struct {
	HotelID        int64    `json:"hotel_id"`
	Name           string   `json:"name"`
	Location       string   `json:"location"`
	AvailableRooms int      `json:"available_rooms"`
	PricePerNight  float64  `json:"price_per_night"`
	Rating         *float64 `json:"rating"`
}

func (h Hotel) Identity() int64 { return h.HotelID }

func (h Hotel) WithIdentity(id int64) Hotel {
	h.HotelID = id
	return h
}

func (Hotel) Entity() string { return "Hotel" }
