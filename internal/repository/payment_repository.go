package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/vesteevolta/backend/internal/models"
	"github.com/vesteevolta/backend/internal/repository/common"
)

type PaymentRepository struct {
	db *sqlx.DB
}

func NewPaymentRepository(db *sqlx.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	query := `
		INSERT INTO payments (rental_id, payment_method, amount, payment_status, payment_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRowxContext(ctx, query,
		payment.RentalID, payment.PaymentMethod, payment.Amount, payment.PaymentStatus, payment.PaymentDate,
	).Scan(&payment.ID)
	if err != nil {
		return fmt.Errorf("payment repository: create %w", err)
	}
	return nil
}

// GetByID returns common.ErrNotFound when absent.
func (r *PaymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	return common.GetByID[models.Payment](ctx, r.db, "payments", id)
}

// ListByRental returns an empty slice for a rental with no payments.
func (r *PaymentRepository) ListByRental(ctx context.Context, rentalID uuid.UUID) ([]models.Payment, error) {
	payments := []models.Payment{}
	err := r.db.SelectContext(ctx, &payments, `
		SELECT id, rental_id, payment_method, amount, payment_status, payment_date
		FROM payments WHERE rental_id = $1 ORDER BY payment_date
	`, rentalID)
	if err != nil {
		return nil, fmt.Errorf("payment repository: list by rental %w", err)
	}
	return payments, nil
}
