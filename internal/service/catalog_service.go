package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/vesteevolta/backend/internal/logger"
	"github.com/vesteevolta/backend/internal/models"
	"github.com/vesteevolta/backend/internal/repository/common"
	"github.com/vesteevolta/backend/internal/validation"
)

// CategoryNameLookup is the part of the category store the guard needs.
type CategoryNameLookup interface {
	FindByName(ctx context.Context, name string) (*models.Category, error)
}

// CatalogGuard enforces catalog integrity rules.
type CatalogGuard struct {
	categories CategoryNameLookup
}

func NewCatalogGuard(categories CategoryNameLookup) *CatalogGuard {
	return &CatalogGuard{categories: categories}
}

// EnsureNameAvailable fails with ErrCategoryNameTaken when another category
// (ignoring excludingID) already uses name, compared trimmed and
// case-insensitively.
func (g *CatalogGuard) EnsureNameAvailable(ctx context.Context, name string, excludingID *uuid.UUID) error {
	existing, err := g.categories.FindByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return storageError(err, nil)
	}
	if existing == nil {
		return nil
	}
	if excludingID != nil && existing.ID == *excludingID {
		return nil
	}
	return ErrCategoryNameTaken
}

// EnsureCategoryDeletable refuses categories that still have clothing.
func EnsureCategoryDeletable(category *models.Category) error {
	if len(category.Clothings) > 0 {
		return ErrCategoryHasClothings
	}
	return nil
}

// EnsureClothingDeletable refuses clothing that is currently rented.
func EnsureClothingDeletable(clothing *models.Clothing) error {
	if models.NormalizeAvailability(clothing.AvailabilityStatus) == models.AvailabilityRented {
		return ErrClothingRented
	}
	return nil
}

type CategoryRepository interface {
	CategoryNameLookup
	List(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	GetByIDWithClothings(ctx context.Context, id uuid.UUID) (*models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CategoryService struct {
	repo  CategoryRepository
	guard *CatalogGuard
}

func NewCategoryService(repo CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo, guard: NewCatalogGuard(repo)}
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, storageError(err, nil)
	}
	return categories, nil
}

func (s *CategoryService) Get(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storageError(err, ErrCategoryNotFound)
	}
	return category, nil
}

// Create stores a category under its trimmed name.
func (s *CategoryService) Create(ctx context.Context, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if err := validateCategoryName(name); err != nil {
		return nil, err
	}
	if err := s.guard.EnsureNameAvailable(ctx, name, nil); err != nil {
		return nil, err
	}

	category := &models.Category{Name: name}
	if err := s.repo.Create(ctx, category); err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, ErrCategoryNameTaken
		}
		return nil, storageError(err, nil)
	}
	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if err := validateCategoryName(name); err != nil {
		return nil, err
	}

	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storageError(err, ErrCategoryNotFound)
	}
	if err := s.guard.EnsureNameAvailable(ctx, name, &id); err != nil {
		return nil, err
	}

	category.Name = name
	if err := s.repo.Update(ctx, category); err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, ErrCategoryNameTaken
		}
		return nil, storageError(err, ErrCategoryNotFound)
	}
	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	category, err := s.repo.GetByIDWithClothings(ctx, id)
	if err != nil {
		return storageError(err, ErrCategoryNotFound)
	}
	if err := EnsureCategoryDeletable(category); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return deleteError(err, ErrCategoryNotFound, ErrCategoryHasClothings)
	}

	logger.Log.WithField("category_id", id).Info("category deleted")
	return nil
}

func validateCategoryName(name string) error {
	if name == "" {
		return ErrCategoryNameRequired
	}
	if err := validation.ValidateCategoryName(name); err != nil {
		return invalid(err)
	}
	return nil
}
