package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment records money received for a rental.
type Payment struct {
	ID            uuid.UUID       `db:"id" json:"id"`
	RentalID      uuid.UUID       `db:"rental_id" json:"rental_id"`
	PaymentMethod string          `db:"payment_method" json:"payment_method"`
	Amount        decimal.Decimal `db:"amount" json:"amount"`
	PaymentStatus PaymentStatus   `db:"payment_status" json:"payment_status"`
	PaymentDate   time.Time       `db:"payment_date" json:"payment_date"`
}
