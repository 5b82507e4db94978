package repository

import (
	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var UserTable = Table[domain.User]{
	Name:    "users",
	Key:     "user_id",
	Columns: []string{"name", "email", "role", "contact", "password_hash"},
	Values: func(u domain.User) []any {
		return []any{u.Name, u.Email, string(u.Role), u.Contact, u.PasswordHash}
	},
	Scan: func(row pgx.Row) (domain.User, error) {
		var u domain.User
		var role string
		err := row.Scan(&u.UserID, &u.Name, &u.Email, &role, &u.Contact, &u.PasswordHash)
		u.Role = domain.UserRole(role)
		return u, err
	},
	Constraints: map[string]string{
		"users_email_key":  "email",
		"users_role_check": "role",
	},
	ReferencedBy: map[string]string{"bookings_user_id_fkey": "bookings"},
}

var FlightTable = Table[domain.Flight]{
	Name: "flights",
	Key:  "flight_id",
	Columns: []string{"flight_number", "departure_city", "arrival_city", "departure_time",
		"arrival_time", "airline", "price", "seats_available"},
	Values: func(f domain.Flight) []any {
		return []any{f.FlightNumber, f.DepartureCity, f.ArrivalCity, f.DepartureTime,
			f.ArrivalTime, f.Airline, f.Price, f.SeatsAvailable}
	},
	Scan: func(row pgx.Row) (domain.Flight, error) {
		var f domain.Flight
		err := row.Scan(&f.FlightID, &f.FlightNumber, &f.DepartureCity, &f.ArrivalCity, &f.DepartureTime,
			&f.ArrivalTime, &f.Airline, &f.Price, &f.SeatsAvailable)
		return f, err
	},
	ReferencedBy: map[string]string{"bookings_flight_id_fkey": "bookings"},
}

var HotelTable = Table[domain.Hotel]{
	Name:    "hotels",
	Key:     "hotel_id",
	Columns: []string{"name", "location", "available_rooms", "price_per_night", "rating"},
	Values: func(h domain.Hotel) []any {
		return []any{h.Name, h.Location, h.AvailableRooms, h.PricePerNight, h.Rating}
	},
	Scan: func(row pgx.Row) (domain.Hotel, error) {
		var h domain.Hotel
		err := row.Scan(&h.HotelID, &h.Name, &h.Location, &h.AvailableRooms, &h.PricePerNight, &h.Rating)
		return h, err
	},
	ReferencedBy: map[string]string{"bookings_hotel_id_fkey": "bookings"},
}

var BookingTable = Table[domain.Booking]{
	Name: "bookings",
	Key:  "booking_id",
	Columns: []string{"user_id", "booking_type", "flight_id", "hotel_id", "check_in",
		"check_out", "booking_date", "total_amount"},
	Values: func(b domain.Booking) []any {
		return []any{b.UserID, string(b.BookingType), b.FlightID, b.HotelID, b.CheckIn,
			b.CheckOut, b.BookingDate, b.TotalAmount}
	},
	Scan: func(row pgx.Row) (domain.Booking, error) {
		var b domain.Booking
		var kind string
		err := row.Scan(&b.BookingID, &b.UserID, &kind, &b.FlightID, &b.HotelID, &b.CheckIn,
			&b.CheckOut, &b.BookingDate, &b.TotalAmount)
		b.BookingType = domain.BookingType(kind)
		return b, err
	},
	Constraints: map[string]string{
		"bookings_user_id_fkey":       "user_id",
		"bookings_flight_id_fkey":     "flight_id",
		"bookings_hotel_id_fkey":      "hotel_id",
		"bookings_booking_type_check": "booking_type",
	},
	ReferencedBy: map[string]string{"payments_booking_id_fkey": "payments"},
}

var PaymentTable = Table[domain.Payment]{
	Name:    "payments",
	Key:     "payment_id",
	Columns: []string{"booking_id", "payment_date", "amount", "method", "status"},
	Values: func(p domain.Payment) []any {
		return []any{p.BookingID, p.PaymentDate, p.Amount, string(p.Method), string(p.Status)}
	},
	Scan: func(row pgx.Row) (domain.Payment, error) {
		var p domain.Payment
		var method, status string
		err := row.Scan(&p.PaymentID, &p.BookingID, &p.PaymentDate, &p.Amount, &method, &status)
		p.Method = domain.PaymentMethod(method)
		p.Status = domain.PaymentStatus(status)
		return p, err
	},
	Constraints: map[string]string{
		"payments_booking_id_key":  "booking_id",
		"payments_booking_id_fkey": "booking_id",
		"payments_method_check":    "method",
		"payments_status_check":    "status",
	},
}

func NewUserRepository(db *pgxpool.Pool) Repository[domain.User] {
	return NewPGRepository[domain.User](db, UserTable)
}

func NewFlightRepository(db *pgxpool.Pool) Repository[domain.Flight] {
	return NewPGRepository[domain.Flight](db, FlightTable)
}

func NewHotelRepository(db *pgxpool.Pool) Repository[domain.Hotel] {
	return NewPGRepository[domain.Hotel](db, HotelTable)
}

func NewBookingRepository(db *pgxpool.Pool) Repository[domain.Booking] {
	return NewPGRepository[domain.Booking](db, BookingTable)
}

func NewPaymentRepository(db *pgxpool.Pool) Repository[domain.Payment] {
	return NewPGRepository[domain.Payment](db, PaymentTable)
}
