package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Rental books a clothing item for an inclusive date range.
type Rental struct {
	ID         uuid.UUID       `db:"id" json:"id"`
	UserID     uuid.UUID       `db:"user_id" json:"user_id"`
	ClothingID uuid.UUID       `db:"clothing_id" json:"clothing_id"`
	StartDate  time.Time       `db:"start_date" json:"start_date"`
	EndDate    time.Time       `db:"end_date" json:"end_date"`
	Status     RentalStatus    `db:"status" json:"status"`
	TotalValue decimal.Decimal `db:"total_value" json:"total_value"`
	CreatedAt  time.Time       `db:"created_at" json:"created_at"`
}

// CalendarDay drops the clock part of t, keeping its calendar date.
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaySpan is the number of whole calendar days from start to end.
// A same-day range yields 0.
func DaySpan(start, end time.Time) int64 {
	return int64(CalendarDay(end).Sub(CalendarDay(start)).Hours() / 24)
}

// RentalReportRow is a rental joined with its renter's name and the
// clothing description, as exported to owners.
type RentalReportRow struct {
	Rental
	UserName    string `db:"user_name" json:"user_name"`
	Description string `db:"description" json:"description"`
}
