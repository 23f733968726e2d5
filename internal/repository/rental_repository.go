package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/vesteevolta/backend/internal/models"
	"github.com/vesteevolta/backend/internal/repository/common"
)

const rentalColumns = `id, user_id, clothing_id, start_date, end_date, status, total_value, created_at`

type RentalRepository struct {
	db *sqlx.DB
}

func NewRentalRepository(db *sqlx.DB) *RentalRepository {
	return &RentalRepository{db: db}
}

// Create stores the rental as computed by the service, including CreatedAt.
func (r *RentalRepository) Create(ctx context.Context, rental *models.Rental) error {
	query := `
		INSERT INTO rentals (user_id, clothing_id, start_date, end_date, status, total_value, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.db.QueryRowxContext(ctx, query,
		rental.UserID, rental.ClothingID, rental.StartDate, rental.EndDate,
		rental.Status, rental.TotalValue, rental.CreatedAt,
	).Scan(&rental.ID)
	if err != nil {
		return fmt.Errorf("rental repository: create %w", err)
	}
	return nil
}

func (r *RentalRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Rental, error) {
	var rental models.Rental
	err := r.db.GetContext(ctx, &rental, `SELECT `+rentalColumns+` FROM rentals WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("rental repository: get by id %w", err)
	}
	return &rental, nil
}

func (r *RentalRepository) List(ctx context.Context) ([]models.Rental, error) {
	return r.selectRentals(ctx, `SELECT `+rentalColumns+` FROM rentals ORDER BY created_at DESC`)
}

func (r *RentalRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Rental, error) {
	return r.selectRentals(ctx,
		`SELECT `+rentalColumns+` FROM rentals WHERE user_id = $1 ORDER BY start_date DESC`, userID)
}

func (r *RentalRepository) ListByClothing(ctx context.Context, clothingID uuid.UUID) ([]models.Rental, error) {
	return r.selectRentals(ctx,
		`SELECT `+rentalColumns+` FROM rentals WHERE clothing_id = $1 ORDER BY start_date DESC`, clothingID)
}

// ListByStartDateRange returns rentals starting within [from, to], joined
// with renter name and clothing description.
func (r *RentalRepository) ListByStartDateRange(ctx context.Context, from, to time.Time) ([]models.RentalReportRow, error) {
	rows := []models.RentalReportRow{}
	err := r.db.SelectContext(ctx, &rows, `
		SELECT r.id, r.user_id, r.clothing_id, r.start_date, r.end_date, r.status, r.total_value, r.created_at,
		       u.name AS user_name, c.description
		FROM rentals r
		JOIN users u ON u.id = r.user_id
		JOIN clothings c ON c.id = r.clothing_id
		WHERE r.start_date >= $1 AND r.start_date <= $2
		ORDER BY r.start_date
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("rental repository: list by start date %w", err)
	}
	return rows, nil
}

func (r *RentalRepository) Update(ctx context.Context, rental *models.Rental) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE rentals SET start_date = $2, end_date = $3, status = $4, total_value = $5 WHERE id = $1
	`, rental.ID, rental.StartDate, rental.EndDate, rental.Status, rental.TotalValue)
	return common.ExpectOneRow(res, err, "rentals")
}

func (r *RentalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return common.DeleteByID(ctx, r.db, "rentals", id)
}

func (r *RentalRepository) selectRentals(ctx context.Context, query string, args ...interface{}) ([]models.Rental, error) {
	rentals := []models.Rental{}
	if err := r.db.SelectContext(ctx, &rentals, query, args...); err != nil {
		return nil, fmt.Errorf("rental repository: list %w", err)
	}
	return rentals, nil
}
