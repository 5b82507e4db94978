package validation

import (
	"time"

	"github.com/Domenick1991/travelbooking/internal/domain"
)

type PaymentCreate struct {
	BookingID   *int64                `json:"booking_id" binding:"required"`
	PaymentDate *time.Time            `json:"payment_date"`
	Amount      *float64              `json:"amount" binding:"required"`
	Method      domain.PaymentMethod  `json:"method" binding:"required,oneof=credit_card bank_transfer cash digital_wallet"`
	Status      *domain.PaymentStatus `json:"status" binding:"omitnil,oneof=successful failed pending"`
}

// Record defaults payment_date to now and an absent status to pending.
func (in PaymentCreate) Record(now time.Time) domain.Payment {
	p := domain.Payment{
		BookingID:   *in.BookingID,
		PaymentDate: now.UTC(),
		Amount:      *in.Amount,
		Method:      in.Method,
		Status:      domain.PaymentStatusPending,
	}
	if in.PaymentDate != nil {
		p.PaymentDate = in.PaymentDate.UTC()
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	return p
}

type PaymentUpdate struct {
	BookingID   *int64                `json:"booking_id"`
	PaymentDate *time.Time            `json:"payment_date"`
	Amount      *float64              `json:"amount"`
	Method      *domain.PaymentMethod `json:"method" binding:"omitnil,oneof=credit_card bank_transfer cash digital_wallet"`
	Status      *domain.PaymentStatus `json:"status" binding:"omitnil,oneof=successful failed pending"`
}

func (in PaymentUpdate) Apply(p *domain.Payment) {
	if in.BookingID != nil {
		p.BookingID = *in.BookingID
	}
	if in.PaymentDate != nil {
		p.PaymentDate = in.PaymentDate.UTC()
	}
	if in.Amount != nil {
		p.Amount = *in.Amount
	}
	if in.Method != nil {
		p.Method = *in.Method
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
}
