package repository

import (
	"strconv"

	"github.com/Domenick1991/travelbooking/internal/domain"
)

// UniqueEmail enforces one user per email address.
var UniqueEmail = UniqueKey[domain.User]{
	Field: "email",
	Key: func(u domain.User) (string, bool) {
		return u.Email, u.Email != ""
	},
}

// UniqueBookingPayment enforces at most one payment per booking.
var UniqueBookingPayment = UniqueKey[domain.Payment]{
	Field: "booking_id",
	Key: func(p domain.Payment) (string, bool) {
		return strconv.FormatInt(p.BookingID, 10), true
	},
}

// MemoryStores bundles one in-memory repository per entity.
type MemoryStores struct {
	Users    *MemoryRepository[domain.User]
	Flights  *MemoryRepository[domain.Flight]
	Hotels   *MemoryRepository[domain.Hotel]
	Bookings *MemoryRepository[domain.Booking]
	Payments *MemoryRepository[domain.Payment]
}

func NewMemoryStores() *MemoryStores {
	return &MemoryStores{
		Users:    NewMemoryRepository(UniqueEmail),
		Flights:  NewMemoryRepository[domain.Flight](),
		Hotels:   NewMemoryRepository[domain.Hotel](),
		Bookings: NewMemoryRepository[domain.Booking](),
		Payments: NewMemoryRepository(UniqueBookingPayment),
	}
}
