package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/vesteevolta/backend/internal/models"
	"github.com/vesteevolta/backend/internal/repository/common"
)

const ratingColumns = `id, user_id, rental_id, clothing_id, score, comment, date, created_at`

type RatingRepository struct {
	db *sqlx.DB
}

func NewRatingRepository(db *sqlx.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

// Create inserts a rating. ratings.rental_id is unique, so a concurrent
// second rating for the same rental yields common.ErrAlreadyExists.
func (r *RatingRepository) Create(ctx context.Context, rating *models.Rating) error {
	query := `
		INSERT INTO ratings (user_id, rental_id, clothing_id, score, comment, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.db.QueryRowxContext(ctx, query,
		rating.UserID, rating.RentalID, rating.ClothingID, rating.Score, rating.Comment, rating.Date, rating.CreatedAt,
	).Scan(&rating.ID)
	if err != nil {
		if common.IsUniqueViolation(err) {
			return common.ErrAlreadyExists
		}
		return fmt.Errorf("rating repository: create %w", err)
	}
	return nil
}

func (r *RatingRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.GetContext(ctx, &rating, `SELECT `+ratingColumns+` FROM ratings WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("rating repository: get by id %w", err)
	}
	return &rating, nil
}

// GetByRentalID reports whether a rental was already rated; nil, nil when not.
func (r *RatingRepository) GetByRentalID(ctx context.Context, rentalID uuid.UUID) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.GetContext(ctx, &rating, `SELECT `+ratingColumns+` FROM ratings WHERE rental_id = $1`, rentalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("rating repository: get by rental %w", err)
	}
	return &rating, nil
}

// List returns every rating, oldest first.
func (r *RatingRepository) List(ctx context.Context) ([]models.Rating, error) {
	ratings := []models.Rating{}
	err := r.db.SelectContext(ctx, &ratings, `SELECT `+ratingColumns+` FROM ratings ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("rating repository: list %w", err)
	}
	return ratings, nil
}

func (r *RatingRepository) ListByClothing(ctx context.Context, clothingID uuid.UUID) ([]models.Rating, error) {
	ratings := []models.Rating{}
	err := r.db.SelectContext(ctx, &ratings,
		`SELECT `+ratingColumns+` FROM ratings WHERE clothing_id = $1 ORDER BY created_at DESC`, clothingID)
	if err != nil {
		return nil, fmt.Errorf("rating repository: list by clothing %w", err)
	}
	return ratings, nil
}

func (r *RatingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Rating, error) {
	ratings := []models.Rating{}
	err := r.db.SelectContext(ctx, &ratings,
		`SELECT `+ratingColumns+` FROM ratings WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("rating repository: list by user %w", err)
	}
	return ratings, nil
}

func (r *RatingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return common.DeleteByID(ctx, r.db, "ratings", id)
}
