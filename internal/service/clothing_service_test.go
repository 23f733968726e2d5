package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vesteevolta/backend/internal/models"
	"github.com/vesteevolta/backend/internal/pkg/apperror"
	"github.com/vesteevolta/backend/internal/repository/common"
)

func ownerCaller() models.CallerIdentity {
	return models.CallerIdentity{UserID: uuid.New(), Role: models.ProfileOwner}
}

func TestClothingService_Create(t *testing.T) {
	repo := new(mockClothingRepo)
	svc := NewClothingService(repo, new(mockCategoryRepo))
	caller := ownerCaller()

	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Clothing")).Return(nil)

	clothing, err := svc.Create(context.Background(), caller, ClothingInput{
		Description: "Vestido de festa",
		RentPrice:   decimal.RequireFromString("150.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.AvailabilityAvailable, clothing.AvailabilityStatus)
	assert.Equal(t, caller.UserID, clothing.OwnerID)
	assert.NotEqual(t, uuid.Nil, clothing.ID)
}

func TestClothingService_Create_Rejections(t *testing.T) {
	repo := new(mockClothingRepo)
	svc := NewClothingService(repo, new(mockCategoryRepo))
	ctx := context.Background()

	_, err := svc.Create(ctx, ownerCaller(), ClothingInput{Description: " ", RentPrice: decimal.NewFromInt(10)})
	assert.ErrorIs(t, err, ErrClothingDescriptionRequired)

	_, err = svc.Create(ctx, ownerCaller(), ClothingInput{Description: "Terno", RentPrice: decimal.Zero})
	assert.ErrorIs(t, err, ErrInvalidRentPrice)

	_, err = svc.Create(ctx, ownerCaller(), ClothingInput{Description: "Terno", RentPrice: decimal.NewFromInt(-5)})
	assert.ErrorIs(t, err, ErrInvalidRentPrice)

	customer := models.CallerIdentity{UserID: uuid.New(), Role: models.ProfileCustomer}
	_, err = svc.Create(ctx, customer, ClothingInput{Description: "Terno", RentPrice: decimal.NewFromInt(5)})
	assert.ErrorIs(t, err, ErrOwnerRoleRequired)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestClothingService_Update(t *testing.T) {
	repo := new(mockClothingRepo)
	svc := NewClothingService(repo, new(mockCategoryRepo))
	caller := ownerCaller()
	id := uuid.New()
	existing := &models.Clothing{ID: id, OwnerID: caller.UserID, Description: "Old", RentPrice: decimal.NewFromInt(10), AvailabilityStatus: "AVAILABLE"}

	repo.On("GetByID", mock.Anything, id).Return(existing, nil)
	repo.On("Update", mock.Anything, existing).Return(nil)

	updated, err := svc.Update(context.Background(), caller, id, ClothingInput{
		Description:        "New",
		RentPrice:          decimal.NewFromInt(20),
		AvailabilityStatus: " rented ",
	})
	require.NoError(t, err)
	assert.Equal(t, "RENTED", updated.AvailabilityStatus)
	assert.True(t, decimal.NewFromInt(20).Equal(updated.RentPrice))
}

func TestClothingService_Update_NotOwner(t *testing.T) {
	repo := new(mockClothingRepo)
	svc := NewClothingService(repo, new(mockCategoryRepo))
	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(&models.Clothing{ID: id, OwnerID: uuid.New()}, nil)

	_, err := svc.Update(context.Background(), ownerCaller(), id, ClothingInput{Description: "x", RentPrice: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, ErrNotClothingOwner)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestClothingService_Delete_RentedIsConflict(t *testing.T) {
	for _, status := range []string{"RENTED", "rented", "Rented"} {
		repo := new(mockClothingRepo)
		svc := NewClothingService(repo, new(mockCategoryRepo))
		caller := ownerCaller()
		id := uuid.New()
		repo.On("GetByID", mock.Anything, id).Return(&models.Clothing{ID: id, OwnerID: caller.UserID, AvailabilityStatus: status}, nil)

		err := svc.Delete(context.Background(), caller, id)
		assert.ErrorIs(t, err, ErrClothingRented, status)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	}
}

func TestClothingService_Delete(t *testing.T) {
	repo := new(mockClothingRepo)
	svc := NewClothingService(repo, new(mockCategoryRepo))
	caller := ownerCaller()
	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(&models.Clothing{ID: id, OwnerID: caller.UserID, AvailabilityStatus: "AVAILABLE"}, nil)
	repo.On("Delete", mock.Anything, id).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), caller, id))
	repo.AssertExpectations(t)
}

func TestClothingService_Delete_WithRentalHistoryIsConflict(t *testing.T) {
	repo := new(mockClothingRepo)
	caller := ownerCaller()
	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(&models.Clothing{ID: id, OwnerID: caller.UserID, AvailabilityStatus: "AVAILABLE"}, nil)
	repo.On("Delete", mock.Anything, id).Return(common.ErrHasDependents)

	err := NewClothingService(repo, new(mockCategoryRepo)).Delete(context.Background(), caller, id)
	assert.ErrorIs(t, err, ErrClothingHasHistory)
	assert.True(t, apperror.IsConflict(err))
}

func TestClothingService_Delete_NotFound(t *testing.T) {
	repo := new(mockClothingRepo)
	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(nil, common.ErrNotFound)

	err := NewClothingService(repo, new(mockCategoryRepo)).Delete(context.Background(), ownerCaller(), id)
	assert.ErrorIs(t, err, ErrClothingNotFound)
}

func TestClothingService_ReplaceCategories(t *testing.T) {
	repo := new(mockClothingRepo)
	categories := new(mockCategoryRepo)
	svc := NewClothingService(repo, categories)
	caller := ownerCaller()
	id := uuid.New()
	a, b := uuid.New(), uuid.New()

	repo.On("GetByID", mock.Anything, id).Return(&models.Clothing{ID: id, OwnerID: caller.UserID}, nil)
	categories.On("ListByIDs", mock.Anything, []uuid.UUID{a, b}).
		Return([]models.Category{{ID: a, Name: "A"}, {ID: b, Name: "B"}}, nil)
	repo.On("ReplaceCategories", mock.Anything, id, []uuid.UUID{a, b}).Return(nil)

	got, err := svc.ReplaceCategories(context.Background(), caller, id, []uuid.UUID{a, b, a})
	require.NoError(t, err)
	assert.Len(t, got, 2)
	repo.AssertExpectations(t)
}

func TestClothingService_ReplaceCategories_Rejections(t *testing.T) {
	repo := new(mockClothingRepo)
	categories := new(mockCategoryRepo)
	svc := NewClothingService(repo, categories)
	caller := ownerCaller()
	ctx := context.Background()
	id := uuid.New()
	unknown := uuid.New()

	_, err := svc.ReplaceCategories(ctx, caller, id, nil)
	assert.ErrorIs(t, err, ErrCategoriesRequired)

	repo.On("GetByID", mock.Anything, id).Return(&models.Clothing{ID: id, OwnerID: caller.UserID}, nil)
	categories.On("ListByIDs", mock.Anything, []uuid.UUID{unknown}).Return([]models.Category{}, nil)

	_, err = svc.ReplaceCategories(ctx, caller, id, []uuid.UUID{unknown})
	assert.ErrorIs(t, err, ErrUnknownCategory)

	_, err = svc.ReplaceCategories(ctx, ownerCaller(), id, []uuid.UUID{unknown})
	assert.ErrorIs(t, err, ErrNotClothingOwner)

	repo.AssertNotCalled(t, "ReplaceCategories", mock.Anything, mock.Anything, mock.Anything)
}

func TestClothingService_List_NormalizesStatus(t *testing.T) {
	repo := new(mockClothingRepo)
	svc := NewClothingService(repo, new(mockCategoryRepo))
	repo.On("List", mock.Anything, models.ClothingFilter{Status: "AVAILABLE"}).Return([]models.Clothing{}, nil)

	_, err := svc.List(context.Background(), models.ClothingFilter{Status: " available"})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}
