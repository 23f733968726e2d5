package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vesteevolta/backend/internal/config"
	"github.com/vesteevolta/backend/internal/http/handlers"
	"github.com/vesteevolta/backend/internal/logger"
	"github.com/vesteevolta/backend/internal/models"
	"github.com/vesteevolta/backend/internal/repository/common"
	"github.com/vesteevolta/backend/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Silence()
}

// rentalStore implements only the calls a rental delete makes.
type rentalStore struct {
	service.RentalRepository
	rentals map[uuid.UUID]*models.Rental
}

func (s *rentalStore) GetByID(_ context.Context, id uuid.UUID) (*models.Rental, error) {
	if r, ok := s.rentals[id]; ok {
		return r, nil
	}
	return nil, common.ErrNotFound
}

func (s *rentalStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.rentals[id]; !ok {
		return common.ErrNotFound
	}
	delete(s.rentals, id)
	return nil
}

// userStore implements only the calls a user delete makes.
type userStore struct {
	service.UserRepository
	users map[uuid.UUID]*models.User
}

func (s *userStore) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, common.ErrNotFound
}

func (s *userStore) Delete(_ context.Context, id uuid.UUID) error {
	delete(s.users, id)
	return nil
}

type routerFixture struct {
	engine  *gin.Engine
	cache   *service.CacheService
	token   string
	userID  uuid.UUID
	rentals *rentalStore
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()

	userID := uuid.New()
	user := &models.User{ID: userID, Email: "ana@example.com", ProfileType: models.ProfileCustomer}

	tokens := service.NewTokenManager("router-secret-router-secret-router", time.Hour)
	access, err := tokens.Generate(user)
	require.NoError(t, err)

	cache := service.NewCacheService(nil)
	t.Cleanup(cache.Close)

	rentals := &rentalStore{rentals: map[uuid.UUID]*models.Rental{}}
	users := &userStore{users: map[uuid.UUID]*models.User{userID: user}}

	cfg := &config.Config{
		Env:             "test",
		RateLimitLimit:  100,
		RateLimitPeriod: time.Minute,
		CacheTTL:        time.Minute,
	}
	engine := SetupRouter(cfg, Handlers{
		User:   handlers.NewUserHandler(service.NewUserService(users)),
		Rental: handlers.NewRentalHandler(service.NewRentalService(rentals, nil, nil, nil)),
	}, tokens, cache, nil)

	return &routerFixture{engine: engine, cache: cache, token: access.Token, userID: userID, rentals: rentals}
}

func (f *routerFixture) do(method, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+f.token)
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	return w
}

func (f *routerFixture) seedCatalogPage() {
	f.cache.Set(context.Background(), service.CatalogCachePrefix+"ratings-page", []byte(`[{"score":5}]`), time.Minute)
}

func (f *routerFixture) catalogPageCached() bool {
	_, ok := f.cache.Get(context.Background(), service.CatalogCachePrefix+"ratings-page")
	return ok
}

func TestRouter_RentalDeleteDropsCatalogCache(t *testing.T) {
	f := newRouterFixture(t)
	rentalID := uuid.New()
	f.rentals.rentals[rentalID] = &models.Rental{ID: rentalID, UserID: f.userID, Status: models.RentalStatusFinished}
	f.seedCatalogPage()

	w := f.do(http.MethodDelete, "/api/rentals/"+rentalID.String())

	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, f.catalogPageCached())
}

func TestRouter_FailedRentalDeleteKeepsCatalogCache(t *testing.T) {
	f := newRouterFixture(t)
	f.seedCatalogPage()

	w := f.do(http.MethodDelete, "/api/rentals/"+uuid.NewString())

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.True(t, f.catalogPageCached())
}

func TestRouter_UserDeleteDropsCatalogCache(t *testing.T) {
	f := newRouterFixture(t)
	f.seedCatalogPage()

	w := f.do(http.MethodDelete, "/api/users/"+f.userID.String())

	require.Less(t, w.Code, 300)
	assert.False(t, f.catalogPageCached())
}

func TestRouter_ReportStatusRequiresAdmin(t *testing.T) {
	f := newRouterFixture(t)

	w := f.do(http.MethodPut, "/api/reports/"+uuid.NewString()+"/status")

	assert.Equal(t, http.StatusForbidden, w.Code)
}
