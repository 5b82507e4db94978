package repository

import (
	"context"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		user_id       BIGSERIAL PRIMARY KEY,
		name          TEXT NOT NULL,
		email         TEXT NOT NULL CONSTRAINT users_email_key UNIQUE,
		role          TEXT NOT NULL CONSTRAINT users_role_check CHECK (role IN ('Admin', 'Customer')),
		contact       TEXT,
		password_hash TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS flights (
		flight_id       BIGSERIAL PRIMARY KEY,
		flight_number   TEXT NOT NULL,
		departure_city  TEXT NOT NULL,
		arrival_city    TEXT NOT NULL,
		departure_time  TIMESTAMPTZ NOT NULL,
		arrival_time    TIMESTAMPTZ NOT NULL,
		airline         TEXT NOT NULL,
		price           DOUBLE PRECISION NOT NULL,
		seats_available INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS hotels (
		hotel_id        BIGSERIAL PRIMARY KEY,
		name            TEXT NOT NULL,
		location        TEXT NOT NULL,
		available_rooms INTEGER NOT NULL,
		price_per_night DOUBLE PRECISION NOT NULL,
		rating          DOUBLE PRECISION
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		booking_id   BIGSERIAL PRIMARY KEY,
		user_id      BIGINT NOT NULL CONSTRAINT bookings_user_id_fkey REFERENCES users (user_id),
		booking_type TEXT NOT NULL CONSTRAINT bookings_booking_type_check CHECK (booking_type IN ('flight', 'hotel')),
		flight_id    BIGINT CONSTRAINT bookings_flight_id_fkey REFERENCES flights (flight_id),
		hotel_id     BIGINT CONSTRAINT bookings_hotel_id_fkey REFERENCES hotels (hotel_id),
		check_in     TIMESTAMPTZ,
		check_out    TIMESTAMPTZ,
		booking_date TIMESTAMPTZ NOT NULL DEFAULT now(),
		total_amount DOUBLE PRECISION NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS payments (
		payment_id   BIGSERIAL PRIMARY KEY,
		booking_id   BIGINT NOT NULL
			CONSTRAINT payments_booking_id_key UNIQUE
			CONSTRAINT payments_booking_id_fkey REFERENCES bookings (booking_id),
		payment_date TIMESTAMPTZ NOT NULL DEFAULT now(),
		amount       DOUBLE PRECISION NOT NULL,
		method       TEXT NOT NULL CONSTRAINT payments_method_check
			CHECK (method IN ('credit_card', 'bank_transfer', 'cash', 'digital_wallet')),
		status       TEXT NOT NULL DEFAULT 'pending' CONSTRAINT payments_status_check
			CHECK (status IN ('successful', 'failed', 'pending'))
	)`,
}

// Migrate creates the booking schema if it does not exist yet.
func Migrate(ctx context.Context, db DB) error {
	for i, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}
	return nil
}
