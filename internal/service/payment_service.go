package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vesteevolta/backend/internal/logger"
	"github.com/vesteevolta/backend/internal/models"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Payment, error)
	ListByRental(ctx context.Context, rentalID uuid.UUID) ([]models.Payment, error)
}

type RentalRepoForPayment interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Rental, error)
}

type PaymentService struct {
	repo    PaymentRepository
	rentals RentalRepoForPayment
	clock   Clock
}

func NewPaymentService(repo PaymentRepository, rentals RentalRepoForPayment, clock Clock) *PaymentService {
	return &PaymentService{repo: repo, rentals: rentals, clock: clockOrSystem(clock)}
}

// Create admits a payment for an existing rental. The status is matched
// case-insensitively and stored lower-case. The amount is not compared with
// the rental total.
func (s *PaymentService) Create(ctx context.Context, rentalID uuid.UUID, method string, amount decimal.Decimal, rawStatus string) (*models.Payment, error) {
	if _, err := s.rentals.GetByID(ctx, rentalID); err != nil {
		return nil, storageError(err, ErrRentalNotFound)
	}
	if !amount.IsPositive() {
		return nil, ErrInvalidPaymentAmount
	}
	status, ok := models.ParsePaymentStatus(rawStatus)
	if !ok {
		return nil, ErrInvalidPaymentStatus
	}

	payment := &models.Payment{
		RentalID:      rentalID,
		PaymentMethod: method,
		Amount:        amount,
		PaymentStatus: status,
		PaymentDate:   s.clock.Now(),
	}
	if err := s.repo.Create(ctx, payment); err != nil {
		return nil, storageError(err, nil)
	}

	logger.Log.WithField("rental_id", rentalID).WithField("status", status).Info("payment recorded")
	return payment, nil
}

func (s *PaymentService) GetByID(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	payment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storageError(err, ErrPaymentNotFound)
	}
	return payment, nil
}

// GetByRental lists a rental's payments; no payments is an empty list.
func (s *PaymentService) GetByRental(ctx context.Context, rentalID uuid.UUID) ([]models.Payment, error) {
	payments, err := s.repo.ListByRental(ctx, rentalID)
	if err != nil {
		return nil, storageError(err, nil)
	}
	return payments, nil
}
