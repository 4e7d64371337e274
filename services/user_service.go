package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"travel-backend/models"
)

// ProfilePatch holds the profile fields a user may change. Nil means "leave as is".
type ProfilePatch struct {
	Name     *string
	Email    *string
	Password *string
}

type UserService struct {
	users      UserRepo
	bcryptCost int
	log        *zap.Logger
}

func NewUserService(users UserRepo, bcryptCost int, log *zap.Logger) *UserService {
	return &UserService{users: users, bcryptCost: bcryptCost, log: log}
}

func (s *UserService) Get(ctx context.Context, id uint) (*models.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.NotFoundf("User not found")
		}
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return u, nil
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	list, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return list, nil
}

// UpdateProfile applies the non-empty fields of the patch to the caller's own account.
func (s *UserService) UpdateProfile(ctx context.Context, id models.Identity, patch ProfilePatch) (*models.User, error) {
	u, err := s.Get(ctx, id.UserID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil && strings.TrimSpace(*patch.Name) != "" {
		u.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Email != nil && strings.TrimSpace(*patch.Email) != "" {
		email := NormalizeEmail(*patch.Email)
		if err := validateEmail(email); err != nil {
			return nil, err
		}
		if email != u.Email {
			if _, err := s.users.FindByEmail(ctx, email); err == nil {
				return nil, models.Validationf("Email already in use")
			} else if !errors.Is(err, models.ErrNotFound) {
				return nil, fmt.Errorf("check email: %w", err)
			}
		}
		u.Email = email
	}
	if patch.Password != nil && *patch.Password != "" {
		if len(*patch.Password) < MinPasswordLen {
			return nil, models.Validationf("Password must be at least %d characters", MinPasswordLen)
		}
		hash, err := HashPassword(*patch.Password, s.bcryptCost)
		if err != nil {
			return nil, err
		}
		u.Password = hash
	}

	if err := s.users.Save(ctx, u); err != nil {
		if errors.Is(err, models.ErrDuplicateKey) {
			return nil, models.Validationf("Email already in use")
		}
		return nil, fmt.Errorf("update user %d: %w", u.ID, err)
	}
	s.log.Info("profile updated", zap.Uint("user_id", u.ID))
	return u, nil
}
