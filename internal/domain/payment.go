package domain

import "time"

type PaymentMethod string

const (
	PaymentMethodCreditCard    PaymentMethod = "credit_card"
	PaymentMethodBankTransfer  PaymentMethod = "bank_transfer"
	PaymentMethodCash          PaymentMethod = "cash"
	PaymentMethodDigitalWallet PaymentMethod = "digital_wallet"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCreditCard, PaymentMethodBankTransfer, PaymentMethodCash, PaymentMethodDigitalWallet:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusSuccessful PaymentStatus = "successful"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusPending    PaymentStatus = "pending"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusSuccessful, PaymentStatusFailed, PaymentStatusPending:
		return true
	}
	return false
}

// Payment settles a single booking.
type Payment struct {
	PaymentID   int64         `json:"payment_id"`
	BookingID   int64         `json:"booking_id"`
	PaymentDate time.Time     `json:"payment_date"`
	Amount      float64       `json:"amount"`
	Method      PaymentMethod `json:"method"`
	Status      PaymentStatus `json:"status"`
}

func (p Payment) Identity() int64 { return p.PaymentID }

func (p Payment) WithIdentity(id int64) Payment {
	p.PaymentID = id
	return p
}

func (Payment) Entity() string { return "Payment" }
