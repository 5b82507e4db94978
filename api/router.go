package api

import (
	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/Domenick1991/travelbooking/internal/service/records"
	"github.com/Domenick1991/travelbooking/internal/validation"
	"github.com/gin-gonic/gin"
)

type Services struct {
	Users    records.UseCase[domain.User]
	Flights  records.UseCase[domain.Flight]
	Hotels   records.UseCase[domain.Hotel]
	Bookings records.UseCase[domain.Booking]
	Payments records.UseCase[domain.Payment]
}

// RegisterRoutes mounts one resource group per entity.
func RegisterRoutes(router gin.IRouter, s Services) {
	validation.Register()

	NewResourceHandler[domain.User, validation.UserCreate, validation.UserUpdate](s.Users).
		Register(router.Group("/users"))
	NewResourceHandler[domain.Flight, validation.FlightCreate, validation.FlightUpdate](s.Flights).
		Register(router.Group("/flights"))
	NewResourceHandler[domain.Hotel, validation.HotelCreate, validation.HotelUpdate](s.Hotels).
		Register(router.Group("/hotels"))
	NewResourceHandler[domain.Booking, validation.BookingCreate, validation.BookingUpdate](s.Bookings).
		Register(router.Group("/bookings"))
	NewResourceHandler[domain.Payment, validation.PaymentCreate, validation.PaymentUpdate](s.Payments).
		Register(router.Group("/payments"))
}
