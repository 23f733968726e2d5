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

const clothingColumnsPrefixed = `cl.id, cl.description, cl.rent_price, cl.availability_status, cl.owner_id, cl.created_at`

// ClothingRepository works with clothings and clothing_categories.
type ClothingRepository struct {
	db *sqlx.DB
}

func NewClothingRepository(db *sqlx.DB) *ClothingRepository {
	return &ClothingRepository{db: db}
}

// List applies the non-empty parts of filter and loads categories.
func (r *ClothingRepository) List(ctx context.Context, filter models.ClothingFilter) ([]models.Clothing, error) {
	var w whereBuilder
	if filter.Status != "" {
		w.add("cl.availability_status = $%d", filter.Status)
	}
	if filter.CategoryID != nil {
		w.add("EXISTS (SELECT 1 FROM clothing_categories f WHERE f.clothing_id = cl.id AND f.category_id = $%d)", *filter.CategoryID)
	}
	if filter.MinPrice != nil {
		w.add("cl.rent_price >= $%d", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		w.add("cl.rent_price <= $%d", *filter.MaxPrice)
	}

	clothings := []models.Clothing{}
	query := `SELECT ` + clothingColumnsPrefixed + ` FROM clothings cl` + w.String() + ` ORDER BY cl.created_at DESC`
	if err := r.db.SelectContext(ctx, &clothings, query, w.args...); err != nil {
		return nil, fmt.Errorf("clothing repository: list %w", err)
	}

	if err := r.attachCategories(ctx, clothings); err != nil {
		return nil, err
	}
	return clothings, nil
}

// GetByID returns the clothing with its categories.
func (r *ClothingRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Clothing, error) {
	var clothing models.Clothing
	err := r.db.GetContext(ctx, &clothing,
		`SELECT `+clothingColumnsPrefixed+` FROM clothings cl WHERE cl.id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("clothing repository: get by id %w", err)
	}

	one := []models.Clothing{clothing}
	if err := r.attachCategories(ctx, one); err != nil {
		return nil, err
	}
	return &one[0], nil
}

func (r *ClothingRepository) Create(ctx context.Context, clothing *models.Clothing) error {
	query := `
		INSERT INTO clothings (description, rent_price, availability_status, owner_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		clothing.Description, clothing.RentPrice, clothing.AvailabilityStatus, clothing.OwnerID,
	).Scan(&clothing.ID, &clothing.CreatedAt)
	if err != nil {
		return fmt.Errorf("clothing repository: create %w", err)
	}
	return nil
}

func (r *ClothingRepository) Update(ctx context.Context, clothing *models.Clothing) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE clothings SET description = $2, rent_price = $3, availability_status = $4 WHERE id = $1
	`, clothing.ID, clothing.Description, clothing.RentPrice, clothing.AvailabilityStatus)
	return common.ExpectOneRow(res, err, "clothings")
}

func (r *ClothingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return common.DeleteByID(ctx, r.db, "clothings", id)
}

// ListCategories returns the categories linked to one clothing item.
func (r *ClothingRepository) ListCategories(ctx context.Context, clothingID uuid.UUID) ([]models.Category, error) {
	categories := []models.Category{}
	err := r.db.SelectContext(ctx, &categories, `
		SELECT c.id, c.name
		FROM categories c
		JOIN clothing_categories cc ON cc.category_id = c.id
		WHERE cc.clothing_id = $1
		ORDER BY c.name
	`, clothingID)
	if err != nil {
		return nil, fmt.Errorf("clothing repository: list categories %w", err)
	}
	return categories, nil
}

// ReplaceCategories swaps the whole category set of a clothing item atomically.
func (r *ClothingRepository) ReplaceCategories(ctx context.Context, clothingID uuid.UUID, categoryIDs []uuid.UUID) error {
	return common.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM clothing_categories WHERE clothing_id = $1`, clothingID); err != nil {
			return fmt.Errorf("clothing repository: clear categories %w", err)
		}

		inserter := common.NewBatchInserter(tx, `INSERT INTO clothing_categories (clothing_id, category_id)`, 2, 100)
		for _, categoryID := range categoryIDs {
			if err := inserter.Add(ctx, clothingID, categoryID); err != nil {
				return err
			}
		}
		return inserter.Flush(ctx)
	})
}

type clothingCategoryRow struct {
	ClothingID uuid.UUID `db:"clothing_id"`
	ID         uuid.UUID `db:"id"`
	Name       string    `db:"name"`
}

func (r *ClothingRepository) attachCategories(ctx context.Context, clothings []models.Clothing) error {
	if len(clothings) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(clothings))
	for i := range clothings {
		ids[i] = clothings[i].ID
		clothings[i].Categories = []models.Category{}
	}

	var rows []clothingCategoryRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT cc.clothing_id, c.id, c.name
		FROM clothing_categories cc
		JOIN categories c ON c.id = cc.category_id
		WHERE cc.clothing_id = ANY($1::uuid[])
		ORDER BY c.name
	`, uuidArray(ids))
	if err != nil {
		return fmt.Errorf("clothing repository: load categories %w", err)
	}

	byClothing := make(map[uuid.UUID][]models.Category, len(clothings))
	for _, row := range rows {
		byClothing[row.ClothingID] = append(byClothing[row.ClothingID], models.Category{ID: row.ID, Name: row.Name})
	}
	for i := range clothings {
		if cats, ok := byClothing[clothings[i].ID]; ok {
			clothings[i].Categories = cats
		}
	}
	return nil
}
