package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/vesteevolta/backend/internal/models"
	"github.com/vesteevolta/backend/internal/pkg/apperror"
	"github.com/vesteevolta/backend/internal/repository/common"
)

const testSecret = "test-secret-test-secret-test-secret"

func newAuthFixture() (*mockUserRepo, *AuthService, *TokenManager) {
	repo := new(mockUserRepo)
	tokens := NewTokenManager(testSecret, time.Hour)
	return repo, NewAuthService(repo, tokens), tokens
}

func TestAuthService_Register(t *testing.T) {
	repo, svc, _ := newAuthFixture()
	repo.On("GetByEmail", mock.Anything, "ana@example.com").Return(nil, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil)

	user, err := svc.Register(context.Background(), RegisterInput{
		Name:        "Ana Souza",
		Email:       "Ana@Example.com",
		Password:    "Secret123",
		ProfileType: models.ProfileOwner,
	})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Secret123")))
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo, svc, _ := newAuthFixture()
	repo.On("GetByEmail", mock.Anything, "ana@example.com").Return(&models.User{ID: uuid.New()}, nil)

	_, err := svc.Register(context.Background(), RegisterInput{
		Name: "Ana", Email: "ana@example.com", Password: "Secret123", ProfileType: models.ProfileCustomer,
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Register_UniqueViolation(t *testing.T) {
	repo, svc, _ := newAuthFixture()
	repo.On("GetByEmail", mock.Anything, "ana@example.com").Return(nil, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(common.ErrAlreadyExists)

	_, err := svc.Register(context.Background(), RegisterInput{
		Name: "Ana", Email: "ana@example.com", Password: "Secret123", ProfileType: models.ProfileCustomer,
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthService_Register_Invalid(t *testing.T) {
	_, svc, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Name: "Ana", Email: "not-an-email", Password: "Secret123", ProfileType: "Owner"})
	assert.True(t, apperror.IsValidation(err))

	_, err = svc.Register(ctx, RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "weak", ProfileType: "Owner"})
	assert.True(t, apperror.IsValidation(err))

	_, err = svc.Register(ctx, RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "Secret123", ProfileType: "owner"})
	assert.ErrorIs(t, err, ErrInvalidProfileType)
}

func TestAuthService_Login(t *testing.T) {
	repo, svc, tokens := newAuthFixture()
	hash, err := bcrypt.GenerateFromPassword([]byte("Secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{ID: uuid.New(), Email: "ana@example.com", PasswordHash: string(hash), ProfileType: models.ProfileOwner}
	repo.On("GetByEmail", mock.Anything, "ana@example.com").Return(user, nil)

	result, err := svc.Login(context.Background(), "ana@example.com", "Secret123")
	require.NoError(t, err)

	id, role, err := tokens.ParseAccess(result.Token.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, id)
	assert.Equal(t, models.ProfileOwner, role)
}

func TestAuthService_Login_Failures(t *testing.T) {
	repo, svc, _ := newAuthFixture()
	hash, _ := bcrypt.GenerateFromPassword([]byte("Secret123"), bcrypt.MinCost)
	repo.On("GetByEmail", mock.Anything, "ana@example.com").Return(&models.User{ID: uuid.New(), PasswordHash: string(hash)}, nil)
	repo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

	_, err := svc.Login(context.Background(), "ana@example.com", "Wrong123")
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "ghost@example.com", "Secret123")
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func TestTokenManager_RejectsForeignSecret(t *testing.T) {
	user := &models.User{ID: uuid.New(), ProfileType: models.ProfileCustomer}
	token, err := NewTokenManager("another-secret-another-secret-123", time.Hour).Generate(user)
	require.NoError(t, err)

	_, _, err = NewTokenManager(testSecret, time.Hour).ParseAccess(token.Token)
	assert.Error(t, err)
}

func TestTokenManager_RejectsExpired(t *testing.T) {
	tokens := NewTokenManager(testSecret, -time.Minute)
	token, err := tokens.Generate(&models.User{ID: uuid.New()})
	require.NoError(t, err)

	_, _, err = tokens.ParseAccess(token.Token)
	assert.Error(t, err)
}
