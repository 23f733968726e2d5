package dto

import "github.com/shopspring/decimal"

// RegisterRequest represents the request to create an account
type RegisterRequest struct {
	Name        string  `json:"name" binding:"required"`
	Telephone   *string `json:"telephone"`
	Email       string  `json:"email" binding:"required"`
	Password    string  `json:"password" binding:"required"`
	ProfileType string  `json:"profile_type" binding:"required"`
}

// LoginRequest represents the request to obtain an access token
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest represents the request to update a user profile
type UpdateUserRequest struct {
	Name      string  `json:"name" binding:"required"`
	Email     string  `json:"email" binding:"required"`
	Telephone *string `json:"telephone"`
}

// CategoryRequest represents the request to create or rename a category
type CategoryRequest struct {
	Name string `json:"name"`
}

// ClothingRequest represents the request to create or update a clothing item
type ClothingRequest struct {
	Description        string          `json:"description"`
	RentPrice          decimal.Decimal `json:"rent_price"`
	AvailabilityStatus string          `json:"availability_status"`
}

// ReplaceCategoriesRequest represents the request to set the categories of a clothing item
type ReplaceCategoriesRequest struct {
	CategoryIDs []string `json:"category_ids"`
}

// CreateRentalRequest represents the request to rent a clothing item.
// Dates use the YYYY-MM-DD layout.
type CreateRentalRequest struct {
	ClothingID string `json:"clothing_id" binding:"required"`
	StartDate  string `json:"start_date" binding:"required"`
	EndDate    string `json:"end_date" binding:"required"`
}

// UpdateStatusRequest represents the request to change a rental or report status
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// CreatePaymentRequest represents the request to record a payment for a rental
type CreatePaymentRequest struct {
	PaymentMethod string          `json:"payment_method"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentStatus string          `json:"payment_status"`
}

// CreateRatingRequest represents the request to rate a finished rental
type CreateRatingRequest struct {
	RentalID   string  `json:"rental_id" binding:"required"`
	ClothingID string  `json:"clothing_id" binding:"required"`
	Score      int     `json:"score"`
	Comment    *string `json:"comment"`
}

// CreateReportRequest represents the request to file a report
type CreateReportRequest struct {
	ReportedID         string  `json:"reported_id"`
	ReportedClothingID string  `json:"reported_clothing_id"`
	RentalID           *string `json:"rental_id"`
	Type               string  `json:"type"`
	Reason             string  `json:"reason"`
	Description        *string `json:"description"`
}
