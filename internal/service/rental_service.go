package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vesteevolta/backend/internal/logger"
	"github.com/vesteevolta/backend/internal/models"
)

// Websocket event names pushed to users.
const (
	EventRentalStatusChanged = "rental.status_changed"
	EventReportStatusChanged = "report.status_changed"
)

// Notifier pushes realtime events to a connected user. ws.Hub implements it.
type Notifier interface {
	BroadcastToUser(userID uuid.UUID, eventType string, data interface{})
}

type RentalRepository interface {
	Create(ctx context.Context, rental *models.Rental) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Rental, error)
	List(ctx context.Context) ([]models.Rental, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Rental, error)
	ListByClothing(ctx context.Context, clothingID uuid.UUID) ([]models.Rental, error)
	ListByStartDateRange(ctx context.Context, from, to time.Time) ([]models.RentalReportRow, error)
	Update(ctx context.Context, rental *models.Rental) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ClothingRepoForRental interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Clothing, error)
}

type RentalService struct {
	repo      RentalRepository
	clothings ClothingRepoForRental
	clock     Clock
	notifier  Notifier
}

// NewRentalService accepts a nil clock (system time) and a nil notifier.
func NewRentalService(repo RentalRepository, clothings ClothingRepoForRental, clock Clock, notifier Notifier) *RentalService {
	return &RentalService{
		repo:      repo,
		clothings: clothings,
		clock:     clockOrSystem(clock),
		notifier:  notifier,
	}
}

// Create books clothingID for renterID over [startDate, endDate]. The total
// is the number of calendar days between the dates times the rent price,
// so a same-day rental costs nothing.
func (s *RentalService) Create(ctx context.Context, renterID, clothingID uuid.UUID, startDate, endDate time.Time) (*models.Rental, error) {
	if renterID == uuid.Nil {
		return nil, ErrRenterRequired
	}
	start, end := models.CalendarDay(startDate), models.CalendarDay(endDate)
	if end.Before(start) {
		return nil, ErrInvalidRentalPeriod
	}

	clothing, err := s.clothings.GetByID(ctx, clothingID)
	if err != nil {
		return nil, storageError(err, ErrClothingNotFound)
	}

	days := models.DaySpan(start, end)
	rental := &models.Rental{
		UserID:     renterID,
		ClothingID: clothing.ID,
		StartDate:  start,
		EndDate:    end,
		Status:     models.RentalStatusActive,
		TotalValue: clothing.RentPrice.Mul(decimal.NewFromInt(days)),
		CreatedAt:  s.clock.Now(),
	}
	if err := s.repo.Create(ctx, rental); err != nil {
		return nil, storageError(err, nil)
	}

	logger.Log.WithFields(map[string]interface{}{
		"rental_id":   rental.ID,
		"clothing_id": rental.ClothingID,
		"days":        days,
		"total":       rental.TotalValue.StringFixed(2),
	}).Info("rental created")
	return rental, nil
}

// UpdateStatus overwrites the status with any valid value; there is no
// transition table.
func (s *RentalService) UpdateStatus(ctx context.Context, rentalID uuid.UUID, rawStatus string) (*models.Rental, error) {
	status, ok := models.ParseRentalStatus(rawStatus)
	if !ok {
		return nil, ErrInvalidRentalStatus
	}

	rental, err := s.repo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, storageError(err, ErrRentalNotFound)
	}

	previous := rental.Status
	rental.Status = status
	if err := s.repo.Update(ctx, rental); err != nil {
		return nil, storageError(err, ErrRentalNotFound)
	}

	logger.Log.WithFields(map[string]interface{}{
		"rental_id": rental.ID,
		"from":      previous,
		"to":        status,
	}).Info("rental status changed")

	if s.notifier != nil {
		s.notifier.BroadcastToUser(rental.UserID, EventRentalStatusChanged, map[string]interface{}{
			"rental_id": rental.ID,
			"status":    rental.Status,
		})
	}
	return rental, nil
}

// Delete removes the rental and returns what was deleted.
func (s *RentalService) Delete(ctx context.Context, rentalID uuid.UUID) (*models.Rental, error) {
	rental, err := s.repo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, storageError(err, ErrRentalNotFound)
	}
	if err := s.repo.Delete(ctx, rentalID); err != nil {
		return nil, storageError(err, ErrRentalNotFound)
	}
	return rental, nil
}

func (s *RentalService) Get(ctx context.Context, id uuid.UUID) (*models.Rental, error) {
	rental, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storageError(err, ErrRentalNotFound)
	}
	return rental, nil
}

func (s *RentalService) List(ctx context.Context) ([]models.Rental, error) {
	rentals, err := s.repo.List(ctx)
	if err != nil {
		return nil, storageError(err, nil)
	}
	return rentals, nil
}

func (s *RentalService) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Rental, error) {
	rentals, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, storageError(err, nil)
	}
	return rentals, nil
}

func (s *RentalService) ListByClothing(ctx context.Context, clothingID uuid.UUID) ([]models.Rental, error) {
	rentals, err := s.repo.ListByClothing(ctx, clothingID)
	if err != nil {
		return nil, storageError(err, nil)
	}
	return rentals, nil
}

// ListByStartDateRange returns rentals starting between from and to
// inclusive, for the owner export.
func (s *RentalService) ListByStartDateRange(ctx context.Context, from, to time.Time) ([]models.RentalReportRow, error) {
	from, to = models.CalendarDay(from), models.CalendarDay(to)
	if from.After(to) {
		return nil, ErrInvalidDateRange
	}
	rows, err := s.repo.ListByStartDateRange(ctx, from, to)
	if err != nil {
		return nil, storageError(err, nil)
	}
	return rows, nil
}
