package models

import (
	"time"

	"github.com/google/uuid"
)

// Rating is the renter's score for a finished rental. Score is not bounded.
type Rating struct {
	ID         uuid.UUID `db:"id" json:"id"`
	UserID     uuid.UUID `db:"user_id" json:"user_id"`
	RentalID   uuid.UUID `db:"rental_id" json:"rental_id"`
	ClothingID uuid.UUID `db:"clothing_id" json:"clothing_id"`
	Score      int       `db:"score" json:"score"`
	Comment    *string   `db:"comment" json:"comment,omitempty"`
	Date       time.Time `db:"date" json:"date"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
