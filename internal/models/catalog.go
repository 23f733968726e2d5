package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category groups clothing; names are unique ignoring case.
type Category struct {
	ID   uuid.UUID `db:"id" json:"id"`
	Name string    `db:"name" json:"name"`

	// Clothings is populated only when the caller needs the dependents.
	Clothings []Clothing `db:"-" json:"-"`
}

// Clothing is a garment listed for rent by its owner.
type Clothing struct {
	ID                 uuid.UUID       `db:"id" json:"id"`
	Description        string          `db:"description" json:"description"`
	RentPrice          decimal.Decimal `db:"rent_price" json:"rent_price"`
	AvailabilityStatus string          `db:"availability_status" json:"availability_status"`
	OwnerID            uuid.UUID       `db:"owner_id" json:"owner_id"`
	CreatedAt          time.Time       `db:"created_at" json:"created_at"`
	Categories         []Category      `db:"-" json:"categories"`
}

// ClothingFilter narrows catalog listings; zero values mean "no filter".
type ClothingFilter struct {
	Status     string
	CategoryID *uuid.UUID
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
}
