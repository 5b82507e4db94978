package validation

import (
	"time"

	"github.com/Domenick1991/travelbooking/internal/domain"
)

type HotelCreate struct {
	Name           string   `json:"name" binding:"required"`
	Location       string   `json:"location" binding:"required"`
	AvailableRooms *int     `json:"available_rooms" binding:"required,gte=0"`
	PricePerNight  *float64 `json:"price_per_night" binding:"required,gte=0"`
	Rating         *float64 `json:"rating"`
}

func (in HotelCreate) Record(time.Time) domain.Hotel {
	return domain.Hotel{
		Name:           in.Name,
		Location:       in.Location,
		AvailableRooms: *in.AvailableRooms,
		PricePerNight:  *in.PricePerNight,
		Rating:         in.Rating,
	}
}

type HotelUpdate struct {
	Name           *string  `json:"name"`
	Location       *string  `json:"location"`
	AvailableRooms *int     `json:"available_rooms" binding:"omitnil,gte=0"`
	PricePerNight  *float64 `json:"price_per_night" binding:"omitnil,gte=0"`
	Rating         *float64 `json:"rating"`
}

func (in HotelUpdate) Apply(h *domain.Hotel) {
	if in.Name != nil {
		h.Name = *in.Name
	}
	if in.Location != nil {
		h.Location = *in.Location
	}
	if in.AvailableRooms != nil {
		h.AvailableRooms = *in.AvailableRooms
	}
	if in.PricePerNight != nil {
		h.PricePerNight = *in.PricePerNight
	}
	if in.Rating != nil {
		h.Rating = in.Rating
	}
}
