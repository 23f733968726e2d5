package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vesteevolta/backend/internal/models"
	"github.com/vesteevolta/backend/internal/repository/common"
)

// memStore is an in-memory stand-in for the Postgres repositories. Each
// view type below exposes one repository port over the shared maps.
type memStore struct {
	clothings  map[uuid.UUID]models.Clothing
	categories map[uuid.UUID]models.Category
	links      map[uuid.UUID]map[uuid.UUID]struct{} // category id -> clothing ids
	rentals    map[uuid.UUID]models.Rental
	ratings    map[uuid.UUID]models.Rating
}

func newMemStore() *memStore {
	return &memStore{
		clothings:  make(map[uuid.UUID]models.Clothing),
		categories: make(map[uuid.UUID]models.Category),
		links:      make(map[uuid.UUID]map[uuid.UUID]struct{}),
		rentals:    make(map[uuid.UUID]models.Rental),
		ratings:    make(map[uuid.UUID]models.Rating),
	}
}

func (s *memStore) addClothing(c models.Clothing) models.Clothing {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	s.clothings[c.ID] = c
	return c
}

func (s *memStore) addCategory(name string, clothingIDs ...uuid.UUID) models.Category {
	c := models.Category{ID: uuid.New(), Name: name}
	s.categories[c.ID] = c
	s.links[c.ID] = make(map[uuid.UUID]struct{})
	for _, id := range clothingIDs {
		s.links[c.ID][id] = struct{}{}
	}
	return c
}

func (s *memStore) addRental(r models.Rental) models.Rental {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	s.rentals[r.ID] = r
	return r
}

type memClothings struct{ *memStore }

func (m memClothings) GetByID(_ context.Context, id uuid.UUID) (*models.Clothing, error) {
	c, ok := m.clothings[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &c, nil
}

type memCategories struct{ *memStore }

func (m memCategories) FindByName(_ context.Context, name string) (*models.Category, error) {
	for _, c := range m.categories {
		if strings.EqualFold(strings.TrimSpace(c.Name), strings.TrimSpace(name)) {
			found := c
			return &found, nil
		}
	}
	return nil, nil
}

func (m memCategories) List(_ context.Context) ([]models.Category, error) {
	out := make([]models.Category, 0, len(m.categories))
	for _, c := range m.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m memCategories) GetByID(_ context.Context, id uuid.UUID) (*models.Category, error) {
	c, ok := m.categories[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &c, nil
}

func (m memCategories) GetByIDWithClothings(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	c, err := m.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	for clothingID := range m.links[id] {
		c.Clothings = append(c.Clothings, m.clothings[clothingID])
	}
	return c, nil
}

func (m memCategories) Create(_ context.Context, category *models.Category) error {
	category.ID = uuid.New()
	m.categories[category.ID] = *category
	m.links[category.ID] = make(map[uuid.UUID]struct{})
	return nil
}

func (m memCategories) Update(_ context.Context, category *models.Category) error {
	if _, ok := m.categories[category.ID]; !ok {
		return common.ErrNotFound
	}
	m.categories[category.ID] = *category
	return nil
}

func (m memCategories) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.categories[id]; !ok {
		return common.ErrNotFound
	}
	delete(m.categories, id)
	delete(m.links, id)
	return nil
}

type memRentals struct{ *memStore }

func (m memRentals) Create(_ context.Context, rental *models.Rental) error {
	rental.ID = uuid.New()
	m.rentals[rental.ID] = *rental
	return nil
}

func (m memRentals) GetByID(_ context.Context, id uuid.UUID) (*models.Rental, error) {
	r, ok := m.rentals[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &r, nil
}

func (m memRentals) List(_ context.Context) ([]models.Rental, error) {
	return m.filter(func(models.Rental) bool { return true }), nil
}

func (m memRentals) ListByUser(_ context.Context, userID uuid.UUID) ([]models.Rental, error) {
	return m.filter(func(r models.Rental) bool { return r.UserID == userID }), nil
}

func (m memRentals) ListByClothing(_ context.Context, clothingID uuid.UUID) ([]models.Rental, error) {
	return m.filter(func(r models.Rental) bool { return r.ClothingID == clothingID }), nil
}

func (m memRentals) ListByStartDateRange(_ context.Context, from, to time.Time) ([]models.RentalReportRow, error) {
	rows := []models.RentalReportRow{}
	for _, r := range m.filter(func(r models.Rental) bool {
		return !r.StartDate.Before(from) && !r.StartDate.After(to)
	}) {
		rows = append(rows, models.RentalReportRow{Rental: r, Description: m.clothings[r.ClothingID].Description})
	}
	return rows, nil
}

func (m memRentals) Update(_ context.Context, rental *models.Rental) error {
	if _, ok := m.rentals[rental.ID]; !ok {
		return common.ErrNotFound
	}
	m.rentals[rental.ID] = *rental
	return nil
}

func (m memRentals) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.rentals[id]; !ok {
		return common.ErrNotFound
	}
	delete(m.rentals, id)
	return nil
}

func (m memRentals) filter(keep func(models.Rental) bool) []models.Rental {
	out := []models.Rental{}
	for _, r := range m.rentals {
		if keep(r) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })
	return out
}

type memRatings struct{ *memStore }

func (m memRatings) Create(_ context.Context, rating *models.Rating) error {
	for _, existing := range m.ratings {
		if existing.RentalID == rating.RentalID {
			return common.ErrAlreadyExists
		}
	}
	rating.ID = uuid.New()
	m.ratings[rating.ID] = *rating
	return nil
}

func (m memRatings) GetByID(_ context.Context, id uuid.UUID) (*models.Rating, error) {
	r, ok := m.ratings[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &r, nil
}

func (m memRatings) GetByRentalID(_ context.Context, rentalID uuid.UUID) (*models.Rating, error) {
	for _, r := range m.ratings {
		if r.RentalID == rentalID {
			found := r
			return &found, nil
		}
	}
	return nil, nil
}

func (m memRatings) List(_ context.Context) ([]models.Rating, error) {
	out := make([]models.Rating, 0, len(m.ratings))
	for _, r := range m.ratings {
		out = append(out, r)
	}
	return out, nil
}

func (m memRatings) ListByClothing(_ context.Context, clothingID uuid.UUID) ([]models.Rating, error) {
	out := []models.Rating{}
	for _, r := range m.ratings {
		if r.ClothingID == clothingID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m memRatings) ListByUser(_ context.Context, userID uuid.UUID) ([]models.Rating, error) {
	out := []models.Rating{}
	for _, r := range m.ratings {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m memRatings) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.ratings[id]; !ok {
		return common.ErrNotFound
	}
	delete(m.ratings, id)
	return nil
}
