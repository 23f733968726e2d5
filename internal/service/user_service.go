package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/vesteevolta/backend/internal/models"
	"github.com/vesteevolta/backend/internal/pkg/apperror"
	"github.com/vesteevolta/backend/internal/repository/common"
	"github.com/vesteevolta/backend/internal/validation"
)

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

type UpdateUserInput struct {
	Name      string
	Email     string
	Telephone *string
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, storageError(err, nil)
	}
	return users, nil
}

func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storageError(err, apperror.ErrUserNotFound)
	}
	return user, nil
}

// Update edits a profile; only the user or an admin may do so.
func (s *UserService) Update(ctx context.Context, caller models.CallerIdentity, id uuid.UUID, in UpdateUserInput) (*models.User, error) {
	if err := validation.ValidateName(in.Name); err != nil {
		return nil, invalid(err)
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, invalid(err)
	}
	if err := validation.ValidateTelephone(in.Telephone); err != nil {
		return nil, invalid(err)
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storageError(err, apperror.ErrUserNotFound)
	}
	if caller.UserID != id && !caller.HasRole(models.ProfileAdmin) {
		return nil, apperror.ErrForbidden
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	other, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, storageError(err, nil)
	}
	if other != nil && other.ID != id {
		return nil, ErrEmailTaken
	}

	user.Name = strings.TrimSpace(in.Name)
	user.Email = email
	user.Telephone = in.Telephone
	if err := s.repo.Update(ctx, user); err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, ErrEmailTaken
		}
		return nil, storageError(err, apperror.ErrUserNotFound)
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, caller models.CallerIdentity, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return storageError(err, apperror.ErrUserNotFound)
	}
	if caller.UserID != id && !caller.HasRole(models.ProfileAdmin) {
		return apperror.ErrForbidden
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return deleteError(err, apperror.ErrUserNotFound, ErrUserHasHistory)
	}
	return nil
}
