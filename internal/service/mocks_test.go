package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/vesteevolta/backend/internal/logger"
	"github.com/vesteevolta/backend/internal/models"
)

func init() {
	logger.Silence()
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type mockCategoryRepo struct {
	mock.Mock
}

func (m *mockCategoryRepo) FindByName(ctx context.Context, name string) (*models.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *mockCategoryRepo) List(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *mockCategoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *mockCategoryRepo) GetByIDWithClothings(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *mockCategoryRepo) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Category, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *mockCategoryRepo) Create(ctx context.Context, category *models.Category) error {
	args := m.Called(ctx, category)
	if args.Error(0) == nil {
		category.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *mockCategoryRepo) Update(ctx context.Context, category *models.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *mockCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockClothingRepo struct {
	mock.Mock
}

func (m *mockClothingRepo) List(ctx context.Context, filter models.ClothingFilter) ([]models.Clothing, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.Clothing), args.Error(1)
}

func (m *mockClothingRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Clothing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Clothing), args.Error(1)
}

func (m *mockClothingRepo) Create(ctx context.Context, clothing *models.Clothing) error {
	args := m.Called(ctx, clothing)
	if args.Error(0) == nil {
		clothing.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *mockClothingRepo) Update(ctx context.Context, clothing *models.Clothing) error {
	return m.Called(ctx, clothing).Error(0)
}

func (m *mockClothingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockClothingRepo) ListCategories(ctx context.Context, clothingID uuid.UUID) ([]models.Category, error) {
	args := m.Called(ctx, clothingID)
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *mockClothingRepo) ReplaceCategories(ctx context.Context, clothingID uuid.UUID, categoryIDs []uuid.UUID) error {
	return m.Called(ctx, clothingID, categoryIDs).Error(0)
}

type mockRentalRepo struct {
	mock.Mock
}

func (m *mockRentalRepo) Create(ctx context.Context, rental *models.Rental) error {
	args := m.Called(ctx, rental)
	if args.Error(0) == nil {
		rental.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *mockRentalRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rental), args.Error(1)
}

func (m *mockRentalRepo) List(ctx context.Context) ([]models.Rental, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Rental), args.Error(1)
}

func (m *mockRentalRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Rental, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.Rental), args.Error(1)
}

func (m *mockRentalRepo) ListByClothing(ctx context.Context, clothingID uuid.UUID) ([]models.Rental, error) {
	args := m.Called(ctx, clothingID)
	return args.Get(0).([]models.Rental), args.Error(1)
}

func (m *mockRentalRepo) ListByStartDateRange(ctx context.Context, from, to time.Time) ([]models.RentalReportRow, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]models.RentalReportRow), args.Error(1)
}

func (m *mockRentalRepo) Update(ctx context.Context, rental *models.Rental) error {
	return m.Called(ctx, rental).Error(0)
}

func (m *mockRentalRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockPaymentRepo struct {
	mock.Mock
}

func (m *mockPaymentRepo) Create(ctx context.Context, payment *models.Payment) error {
	args := m.Called(ctx, payment)
	if args.Error(0) == nil {
		payment.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *mockPaymentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

func (m *mockPaymentRepo) ListByRental(ctx context.Context, rentalID uuid.UUID) ([]models.Payment, error) {
	args := m.Called(ctx, rentalID)
	return args.Get(0).([]models.Payment), args.Error(1)
}

type mockRatingRepo struct {
	mock.Mock
}

func (m *mockRatingRepo) Create(ctx context.Context, rating *models.Rating) error {
	args := m.Called(ctx, rating)
	if args.Error(0) == nil {
		rating.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *mockRatingRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Rating, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func (m *mockRatingRepo) GetByRentalID(ctx context.Context, rentalID uuid.UUID) (*models.Rating, error) {
	args := m.Called(ctx, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func (m *mockRatingRepo) List(ctx context.Context) ([]models.Rating, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Rating), args.Error(1)
}

func (m *mockRatingRepo) ListByClothing(ctx context.Context, clothingID uuid.UUID) ([]models.Rating, error) {
	args := m.Called(ctx, clothingID)
	return args.Get(0).([]models.Rating), args.Error(1)
}

func (m *mockRatingRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Rating, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.Rating), args.Error(1)
}

func (m *mockRatingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockReportRepo struct {
	mock.Mock
}

func (m *mockReportRepo) Create(ctx context.Context, report *models.Report) error {
	args := m.Called(ctx, report)
	if args.Error(0) == nil {
		report.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *mockReportRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Report, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Report), args.Error(1)
}

func (m *mockReportRepo) List(ctx context.Context) ([]models.Report, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Report), args.Error(1)
}

func (m *mockReportRepo) Update(ctx context.Context, report *models.Report) error {
	return m.Called(ctx, report).Error(0)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil {
		user.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepo) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) BroadcastToUser(userID uuid.UUID, eventType string, data interface{}) {
	m.Called(userID, eventType, data)
}
