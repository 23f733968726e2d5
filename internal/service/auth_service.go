package service

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/google/uuid"

	"github.com/vesteevolta/backend/internal/logger"
	"github.com/vesteevolta/backend/internal/models"
	"github.com/vesteevolta/backend/internal/pkg/apperror"
	"github.com/vesteevolta/backend/internal/repository/common"
	"github.com/vesteevolta/backend/internal/validation"
)

// UserRepository is shared by AuthService and UserService.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// AuthService handles registration and login.
type AuthService struct {
	repo         UserRepository
	tokenManager *TokenManager
}

type RegisterInput struct {
	Name        string
	Telephone   *string
	Email       string
	Password    string
	ProfileType string
}

type AuthResult struct {
	User  *models.User `json:"user"`
	Token *AccessToken `json:"token"`
}

func NewAuthService(repo UserRepository, tokenManager *TokenManager) *AuthService {
	return &AuthService{repo: repo, tokenManager: tokenManager}
}

// Register creates an account. E-mails are stored lower-case.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if err := validation.ValidateName(in.Name); err != nil {
		return nil, invalid(err)
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, invalid(err)
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, invalid(err)
	}
	if err := validation.ValidateTelephone(in.Telephone); err != nil {
		return nil, invalid(err)
	}
	if _, ok := models.ValidProfileTypes[in.ProfileType]; !ok {
		return nil, ErrInvalidProfileType
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, storageError(err, nil)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeInternal, "failed to hash password")
	}

	user := &models.User{
		Name:         strings.TrimSpace(in.Name),
		Telephone:    in.Telephone,
		Email:        email,
		PasswordHash: string(hash),
		ProfileType:  in.ProfileType,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, ErrEmailTaken
		}
		return nil, storageError(err, nil)
	}

	logger.Log.WithField("user_id", user.ID).WithField("profile_type", user.ProfileType).Info("user registered")
	return user, nil
}

// Login verifies credentials. Unknown e-mail and wrong password fail the
// same way.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, storageError(err, nil)
	}
	if user == nil {
		return nil, apperror.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	token, err := s.tokenManager.Generate(user)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeInternal, "failed to issue token")
	}
	return &AuthResult{User: user, Token: token}, nil
}
