package models

import (
	"time"

	"github.com/google/uuid"
)

// Report is a moderation complaint against a user and one of their listings.
type Report struct {
	ID                 uuid.UUID    `db:"id" json:"id"`
	ReporterID         uuid.UUID    `db:"reporter_id" json:"reporter_id"`
	ReportedID         uuid.UUID    `db:"reported_id" json:"reported_id"`
	ReportedClothingID uuid.UUID    `db:"reported_clothing_id" json:"reported_clothing_id"`
	RentalID           *uuid.UUID   `db:"rental_id" json:"rental_id,omitempty"`
	Type               string       `db:"type" json:"type"`
	Reason             string       `db:"reason" json:"reason"`
	Description        *string      `db:"description" json:"description,omitempty"`
	Status             ReportStatus `db:"status" json:"status"`
	Date               time.Time    `db:"date" json:"date"`
	CreatedAt          time.Time    `db:"created_at" json:"created_at"`
}
