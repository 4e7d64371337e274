package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"travel-backend/models"
)

const MinPasswordLen = 6

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// AuthResult is what register and login hand back to the client.
type AuthResult struct {
	Token string
	User  *models.User
}

type AuthService struct {
	users      UserRepo
	tokens     TokenIssuer
	bcryptCost int
	log        *zap.Logger
}

func NewAuthService(users UserRepo, tokens TokenIssuer, bcryptCost int, log *zap.Logger) *AuthService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{users: users, tokens: tokens, bcryptCost: bcryptCost, log: log}
}

// Register creates a regular user account. The admin role is only ever granted by seeding.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	name := strings.TrimSpace(in.Name)
	email := NormalizeEmail(in.Email)
	if name == "" {
		return nil, models.Validationf("Please provide a name")
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if len(in.Password) < MinPasswordLen {
		return nil, models.Validationf("Password must be at least %d characters", MinPasswordLen)
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, models.Validationf("Email already in use")
	} else if !errors.Is(err, models.ErrNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	hash, err := HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}
	u := &models.User{Name: name, Email: email, Password: hash, Role: models.RoleUser}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, models.ErrDuplicateKey) {
			return nil, models.Validationf("Email already in use")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("user registered", zap.Uint("user_id", u.ID), zap.String("email", u.Email))
	return s.issue(u)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, models.Validationf("Please provide an email and password")
	}

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.Unauthorizedf("Invalid credentials")
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		s.log.Info("login rejected", zap.String("email", email))
		return nil, models.Unauthorizedf("Invalid credentials")
	}
	return s.issue(u)
}

func (s *AuthService) issue(u *models.User) (*AuthResult, error) {
	token, err := s.tokens.Issue(u.ID, string(u.Role))
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &AuthResult{Token: token, User: u}, nil
}

func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(email string) error {
	if email == "" {
		return models.Validationf("Please provide an email")
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return models.Validationf("Please provide a valid email")
	}
	return nil
}
