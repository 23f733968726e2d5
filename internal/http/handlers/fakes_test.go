package handlers

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vesteevolta/backend/internal/http/middleware"
	"github.com/vesteevolta/backend/internal/logger"
	"github.com/vesteevolta/backend/internal/models"
	"github.com/vesteevolta/backend/internal/repository/common"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Silence()
}

var errStorageDown = errors.New("pq: connection refused")

// withIdentity stands in for AuthMiddleware.
func withIdentity(userID uuid.UUID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserIDKey, userID)
		c.Set(middleware.ContextRoleKey, role)
		c.Next()
	}
}

type fakeCategoryRepo struct {
	mu         sync.Mutex
	categories map[uuid.UUID]*models.Category
	failList   bool
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[uuid.UUID]*models.Category)}
}

func (r *fakeCategoryRepo) FindByName(_ context.Context, name string) (*models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.categories {
		if strings.EqualFold(strings.TrimSpace(c.Name), strings.TrimSpace(name)) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) List(context.Context) ([]models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failList {
		return nil, errStorageDown
	}
	out := make([]models.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.categories[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) GetByIDWithClothings(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	r.mu.Lock()
	c, ok := r.categories[id]
	r.mu.Unlock()
	if !ok {
		return nil, common.ErrNotFound
	}
	return c, nil
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	category.ID = uuid.New()
	cp := *category
	r.categories[category.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, category *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *category
	r.categories[category.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.categories, id)
	return nil
}

type fakeReportRepo struct {
	mu      sync.Mutex
	reports map[uuid.UUID]*models.Report
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{reports: make(map[uuid.UUID]*models.Report)}
}

func (r *fakeReportRepo) Create(_ context.Context, report *models.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	report.ID = uuid.New()
	cp := *report
	r.reports[report.ID] = &cp
	return nil
}

func (r *fakeReportRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	report, ok := r.reports[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *report
	return &cp, nil
}

func (r *fakeReportRepo) List(context.Context) ([]models.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Report, 0, len(r.reports))
	for _, report := range r.reports {
		out = append(out, *report)
	}
	return out, nil
}

func (r *fakeReportRepo) Update(_ context.Context, report *models.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *report
	r.reports[report.ID] = &cp
	return nil
}
