package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/vesteevolta/backend/internal/logger"
	"github.com/vesteevolta/backend/internal/models"
	"github.com/vesteevolta/backend/internal/repository/common"
	"github.com/vesteevolta/backend/internal/validation"
)

type RatingRepository interface {
	Create(ctx context.Context, rating *models.Rating) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Rating, error)
	GetByRentalID(ctx context.Context, rentalID uuid.UUID) (*models.Rating, error)
	List(ctx context.Context) ([]models.Rating, error)
	ListByClothing(ctx context.Context, clothingID uuid.UUID) ([]models.Rating, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Rating, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type RentalRepoForRating interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Rental, error)
}

type RatingService struct {
	repo    RatingRepository
	rentals RentalRepoForRating
	clock   Clock
}

func NewRatingService(repo RatingRepository, rentals RentalRepoForRating, clock Clock) *RatingService {
	return &RatingService{repo: repo, rentals: rentals, clock: clockOrSystem(clock)}
}

type CreateRatingInput struct {
	RentalID   uuid.UUID
	RaterID    uuid.UUID
	ClothingID uuid.UUID
	Score      int
	Comment    *string
}

// Create admits at most one rating per finished rental, from its renter,
// for the rented clothing. Checks run in a fixed order and stop at the
// first failure.
func (s *RatingService) Create(ctx context.Context, in CreateRatingInput) (*models.Rating, error) {
	rental, err := s.rentals.GetByID(ctx, in.RentalID)
	if err != nil {
		return nil, storageError(err, ErrRentalNotFound)
	}
	if rental.UserID != in.RaterID {
		return nil, ErrNotRentalRenter
	}
	if !rental.Status.Is(models.RentalStatusFinished) {
		return nil, ErrRentalNotFinished
	}

	existing, err := s.repo.GetByRentalID(ctx, rental.ID)
	if err != nil {
		return nil, storageError(err, nil)
	}
	if existing != nil {
		return nil, ErrRentalAlreadyRated
	}

	if rental.ClothingID != in.ClothingID {
		return nil, ErrRatingClothingMismatch
	}
	if err := validation.ValidateComment(in.Comment); err != nil {
		return nil, invalid(err)
	}

	now := s.clock.Now()
	rating := &models.Rating{
		UserID:     in.RaterID,
		RentalID:   rental.ID,
		ClothingID: rental.ClothingID,
		Score:      in.Score,
		Comment:    in.Comment,
		Date:       models.CalendarDay(now),
		CreatedAt:  now,
	}
	if err := s.repo.Create(ctx, rating); err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, ErrRentalAlreadyRated
		}
		return nil, storageError(err, nil)
	}

	logger.Log.WithField("rental_id", rental.ID).WithField("score", rating.Score).Info("rating created")
	return rating, nil
}

// List returns every rating; it backs the ratings CSV export.
func (s *RatingService) List(ctx context.Context) ([]models.Rating, error) {
	ratings, err := s.repo.List(ctx)
	if err != nil {
		return nil, storageError(err, nil)
	}
	return ratings, nil
}

func (s *RatingService) GetByClothing(ctx context.Context, clothingID uuid.UUID) ([]models.Rating, error) {
	ratings, err := s.repo.ListByClothing(ctx, clothingID)
	if err != nil {
		return nil, storageError(err, nil)
	}
	return ratings, nil
}

func (s *RatingService) GetByUser(ctx context.Context, userID uuid.UUID) ([]models.Rating, error) {
	ratings, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, storageError(err, nil)
	}
	return ratings, nil
}

// Delete removes a rating on behalf of its author.
func (s *RatingService) Delete(ctx context.Context, ratingID, requesterID uuid.UUID) error {
	rating, err := s.repo.GetByID(ctx, ratingID)
	if err != nil {
		return storageError(err, ErrRatingNotFound)
	}
	if rating.UserID != requesterID {
		return ErrNotRatingAuthor
	}
	if err := s.repo.Delete(ctx, ratingID); err != nil {
		return storageError(err, ErrRatingNotFound)
	}
	return nil
}
