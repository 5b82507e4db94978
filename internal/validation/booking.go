package validation

import (
	"time"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/go-playground/validator/v10"
)

type BookingCreate struct {
	UserID      *int64             `json:"user_id" binding:"required"`
	BookingType domain.BookingType `json:"booking_type" binding:"required,oneof=flight hotel"`
	FlightID    *int64             `json:"flight_id"`
	HotelID     *int64             `json:"hotel_id"`
	CheckIn     *time.Time         `json:"check_in"`
	CheckOut    *time.Time         `json:"check_out"`
	BookingDate *time.Time         `json:"booking_date"`
	TotalAmount *float64           `json:"total_amount" binding:"required"`
}

// Record fills booking_date with now when the client leaves it out.
func (in BookingCreate) Record(now time.Time) domain.Booking {
	b := domain.Booking{
		UserID:      *in.UserID,
		BookingType: in.BookingType,
		FlightID:    in.FlightID,
		HotelID:     in.HotelID,
		CheckIn:     utc(in.CheckIn),
		CheckOut:    utc(in.CheckOut),
		BookingDate: now.UTC(),
		TotalAmount: *in.TotalAmount,
	}
	if in.BookingDate != nil {
		b.BookingDate = in.BookingDate.UTC()
	}
	return b
}

// validateBookingTarget requires the id matching booking_type and rejects the other one.
func validateBookingTarget(sl validator.StructLevel) {
	in := sl.Current().Interface().(BookingCreate)
	switch in.BookingType {
	case domain.BookingTypeFlight:
		if in.FlightID == nil {
			sl.ReportError(in.FlightID, "flight_id", "FlightID", "required", "")
		}
		if in.HotelID != nil {
			sl.ReportError(in.HotelID, "hotel_id", "HotelID", "excluded", "")
		}
	case domain.BookingTypeHotel:
		if in.HotelID == nil {
			sl.ReportError(in.HotelID, "hotel_id", "HotelID", "required", "")
		}
		if in.FlightID != nil {
			sl.ReportError(in.FlightID, "flight_id", "FlightID", "excluded", "")
		}
	}
}

type BookingUpdate struct {
	UserID      *int64              `json:"user_id"`
	BookingType *domain.BookingType `json:"booking_type" binding:"omitnil,oneof=flight hotel"`
	FlightID    *int64              `json:"flight_id"`
	HotelID     *int64              `json:"hotel_id"`
	CheckIn     *time.Time          `json:"check_in"`
	CheckOut    *time.Time          `json:"check_out"`
	BookingDate *time.Time          `json:"booking_date"`
	TotalAmount *float64            `json:"total_amount"`
}

func (in BookingUpdate) Apply(b *domain.Booking) {
	if in.UserID != nil {
		b.UserID = *in.UserID
	}
	if in.BookingType != nil {
		b.BookingType = *in.BookingType
	}
	if in.FlightID != nil {
		b.FlightID = in.FlightID
	}
	if in.HotelID != nil {
		b.HotelID = in.HotelID
	}
	if in.CheckIn != nil {
		b.CheckIn = utc(in.CheckIn)
	}
	if in.CheckOut != nil {
		b.CheckOut = utc(in.CheckOut)
	}
	if in.BookingDate != nil {
		b.BookingDate = in.BookingDate.UTC()
	}
	if in.TotalAmount != nil {
		b.TotalAmount = *in.TotalAmount
	}
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
