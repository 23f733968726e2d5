package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/vesteevolta/backend/internal/models"
	"github.com/vesteevolta/backend/internal/repository/common"
)

// CategoryRepository works with categories and their clothing links.
type CategoryRepository struct {
	db *sqlx.DB
}

func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// List returns all categories ordered by name.
func (r *CategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	err := r.db.SelectContext(ctx, &categories, `SELECT id, name FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("category repository: list %w", err)
	}
	return categories, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	err := r.db.GetContext(ctx, &category, `SELECT id, name FROM categories WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("category repository: get by id %w", err)
	}
	return &category, nil
}

// GetByIDWithClothings also loads the clothing linked to the category.
func (r *CategoryRepository) GetByIDWithClothings(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	category, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	clothings := []models.Clothing{}
	err = r.db.SelectContext(ctx, &clothings, `
		SELECT `+clothingColumnsPrefixed+`
		FROM clothings cl
		JOIN clothing_categories cc ON cc.clothing_id = cl.id
		WHERE cc.category_id = $1
		ORDER BY cl.created_at
	`, id)
	if err != nil {
		return nil, fmt.Errorf("category repository: list clothings %w", err)
	}
	category.Clothings = clothings
	return category, nil
}

// FindByName compares trimmed names ignoring case; nil, nil when absent.
func (r *CategoryRepository) FindByName(ctx context.Context, name string) (*models.Category, error) {
	var category models.Category
	err := r.db.GetContext(ctx, &category,
		`SELECT id, name FROM categories WHERE lower(trim(name)) = lower(trim($1)) LIMIT 1`, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("category repository: find by name %w", err)
	}
	return &category, nil
}

// ListByIDs returns the categories that exist among ids.
func (r *CategoryRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Category, error) {
	categories := []models.Category{}
	if len(ids) == 0 {
		return categories, nil
	}
	err := r.db.SelectContext(ctx, &categories,
		`SELECT id, name FROM categories WHERE id = ANY($1::uuid[]) ORDER BY name`, uuidArray(ids))
	if err != nil {
		return nil, fmt.Errorf("category repository: list by ids %w", err)
	}
	return categories, nil
}

func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO categories (name) VALUES ($1) RETURNING id`, category.Name,
	).Scan(&category.ID)
	if err != nil {
		if common.IsUniqueViolation(err) {
			return common.ErrAlreadyExists
		}
		return fmt.Errorf("category repository: create %w", err)
	}
	return nil
}

func (r *CategoryRepository) Update(ctx context.Context, category *models.Category) error {
	res, err := r.db.ExecContext(ctx, `UPDATE categories SET name = $2 WHERE id = $1`, category.ID, category.Name)
	if common.IsUniqueViolation(err) {
		return common.ErrAlreadyExists
	}
	return common.ExpectOneRow(res, err, "categories")
}

func (r *CategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return common.DeleteByID(ctx, r.db, "categories", id)
}

// uuidArray encodes ids for a `$n::uuid[]` parameter.
func uuidArray(ids []uuid.UUID) pq.StringArray {
	out := make(pq.StringArray, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

// placeholder numbering for dynamically built WHERE clauses
type whereBuilder struct {
	conds []string
	args  []interface{}
}

func (w *whereBuilder) add(cond string, arg interface{}) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, fmt.Sprintf(cond, len(w.args)))
}

func (w *whereBuilder) String() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}
