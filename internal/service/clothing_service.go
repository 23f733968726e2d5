package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vesteevolta/backend/internal/logger"
	"github.com/vesteevolta/backend/internal/models"
	"github.com/vesteevolta/backend/internal/validation"
)

type ClothingRepository interface {
	List(ctx context.Context, filter models.ClothingFilter) ([]models.Clothing, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Clothing, error)
	Create(ctx context.Context, clothing *models.Clothing) error
	Update(ctx context.Context, clothing *models.Clothing) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListCategories(ctx context.Context, clothingID uuid.UUID) ([]models.Category, error)
	ReplaceCategories(ctx context.Context, clothingID uuid.UUID, categoryIDs []uuid.UUID) error
}

type CategoryRepoForClothing interface {
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Category, error)
}

type ClothingService struct {
	repo       ClothingRepository
	categories CategoryRepoForClothing
}

func NewClothingService(repo ClothingRepository, categories CategoryRepoForClothing) *ClothingService {
	return &ClothingService{repo: repo, categories: categories}
}

// ClothingInput carries the editable fields of a clothing item.
type ClothingInput struct {
	Description        string
	RentPrice          decimal.Decimal
	AvailabilityStatus string
}

func (s *ClothingService) List(ctx context.Context, filter models.ClothingFilter) ([]models.Clothing, error) {
	filter.Status = models.NormalizeAvailability(filter.Status)
	clothings, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, storageError(err, nil)
	}
	return clothings, nil
}

func (s *ClothingService) Get(ctx context.Context, id uuid.UUID) (*models.Clothing, error) {
	clothing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storageError(err, ErrClothingNotFound)
	}
	return clothing, nil
}

// Create lists a new item for the calling owner. New items are AVAILABLE.
func (s *ClothingService) Create(ctx context.Context, caller models.CallerIdentity, in ClothingInput) (*models.Clothing, error) {
	if err := validateClothingInput(in); err != nil {
		return nil, err
	}
	if !caller.HasRole(models.ProfileOwner) {
		return nil, ErrOwnerRoleRequired
	}

	clothing := &models.Clothing{
		Description:        strings.TrimSpace(in.Description),
		RentPrice:          in.RentPrice,
		AvailabilityStatus: models.AvailabilityAvailable,
		OwnerID:            caller.UserID,
		Categories:         []models.Category{},
	}
	if err := s.repo.Create(ctx, clothing); err != nil {
		return nil, storageError(err, nil)
	}

	logger.Log.WithFields(map[string]interface{}{
		"clothing_id": clothing.ID,
		"owner_id":    clothing.OwnerID,
	}).Info("clothing listed")
	return clothing, nil
}

// Update lets the owner edit an item. A blank status keeps the current one.
func (s *ClothingService) Update(ctx context.Context, caller models.CallerIdentity, id uuid.UUID, in ClothingInput) (*models.Clothing, error) {
	if err := validateClothingInput(in); err != nil {
		return nil, err
	}

	clothing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storageError(err, ErrClothingNotFound)
	}
	if clothing.OwnerID != caller.UserID {
		return nil, ErrNotClothingOwner
	}

	clothing.Description = strings.TrimSpace(in.Description)
	clothing.RentPrice = in.RentPrice
	if status := models.NormalizeAvailability(in.AvailabilityStatus); status != "" {
		clothing.AvailabilityStatus = status
	}

	if err := s.repo.Update(ctx, clothing); err != nil {
		return nil, storageError(err, ErrClothingNotFound)
	}
	return clothing, nil
}

func (s *ClothingService) Delete(ctx context.Context, caller models.CallerIdentity, id uuid.UUID) error {
	clothing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return storageError(err, ErrClothingNotFound)
	}
	if clothing.OwnerID != caller.UserID {
		return ErrNotClothingOwner
	}
	if err := EnsureClothingDeletable(clothing); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return deleteError(err, ErrClothingNotFound, ErrClothingHasHistory)
	}
	return nil
}

func (s *ClothingService) Categories(ctx context.Context, id uuid.UUID) ([]models.Category, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, storageError(err, ErrClothingNotFound)
	}
	categories, err := s.repo.ListCategories(ctx, id)
	if err != nil {
		return nil, storageError(err, nil)
	}
	return categories, nil
}

// ReplaceCategories sets the item's categories to exactly categoryIDs,
// ignoring duplicates.
func (s *ClothingService) ReplaceCategories(ctx context.Context, caller models.CallerIdentity, id uuid.UUID, categoryIDs []uuid.UUID) ([]models.Category, error) {
	unique := dedupeIDs(categoryIDs)
	if len(unique) == 0 {
		return nil, ErrCategoriesRequired
	}

	clothing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storageError(err, ErrClothingNotFound)
	}
	if clothing.OwnerID != caller.UserID {
		return nil, ErrNotClothingOwner
	}

	found, err := s.categories.ListByIDs(ctx, unique)
	if err != nil {
		return nil, storageError(err, nil)
	}
	if len(found) != len(unique) {
		return nil, ErrUnknownCategory
	}

	if err := s.repo.ReplaceCategories(ctx, id, unique); err != nil {
		return nil, storageError(err, nil)
	}
	return found, nil
}

func validateClothingInput(in ClothingInput) error {
	if strings.TrimSpace(in.Description) == "" {
		return ErrClothingDescriptionRequired
	}
	if err := validation.ValidateClothingDescription(in.Description); err != nil {
		return invalid(err)
	}
	if !in.RentPrice.IsPositive() {
		return ErrInvalidRentPrice
	}
	return nil
}

func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
