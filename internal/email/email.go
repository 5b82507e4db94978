package email

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/Domenick1991/travelbooking/internal/kafka"
)

// Notice is a message addressed to the owner of a booking.
type Notice struct {
	BookingID int64
	UserID    int64
	Subject   string
}

type Sender struct {
	log *slog.Logger
}

func NewSender(log *slog.Logger) *Sender {
	return &Sender{log: log}
}

// Send delivers a notice for booking and payment events. Other entities are ignored.
func (s *Sender) Send(ctx context.Context, event kafka.RecordEvent) error {
	notice, ok, err := Compose(event)
	if err != nil || !ok {
		return err
	}
	s.log.InfoContext(ctx, "send email",
		"user_id", notice.UserID,
		"booking_id", notice.BookingID,
		"subject", notice.Subject,
	)
	return nil
}

// Compose builds the notice for event, reporting false when no notice applies.
func Compose(event kafka.RecordEvent) (Notice, bool, error) {
	switch event.Entity {
	case domain.Booking{}.Entity():
		var b domain.Booking
		if err := json.Unmarshal(event.Record, &b); err != nil {
			return Notice{}, false, fmt.Errorf("decode booking: %w", err)
		}
		return Notice{
			BookingID: b.BookingID,
			UserID:    b.UserID,
			Subject:   fmt.Sprintf("Your %s booking #%d was %s", b.BookingType, b.BookingID, event.Action),
		}, true, nil
	case domain.Payment{}.Entity():
		var p domain.Payment
		if err := json.Unmarshal(event.Record, &p); err != nil {
			return Notice{}, false, fmt.Errorf("decode payment: %w", err)
		}
		if event.Action == "deleted" {
			return Notice{}, false, nil
		}
		return Notice{
			BookingID: p.BookingID,
			Subject:   fmt.Sprintf("Payment #%d for booking #%d is %s", p.PaymentID, p.BookingID, p.Status),
		}, true, nil
	}
	return Notice{}, false, nil
}
