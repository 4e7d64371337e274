package services

import (
	"context"

	"travel-backend/models"
)

// BookingRepo is the persistence port of the booking core. Lookups of a missing
// row return models.ErrNotFound; an order_id collision on Create returns
// models.ErrDuplicateKey.
type BookingRepo interface {
	OrderIDExists(ctx context.Context, orderID string) (bool, error)
	Create(ctx context.Context, b *models.Booking) error
	FindByID(ctx context.Context, id uint) (*models.Booking, error)
	FindSummary(ctx context.Context, id uint) (*models.Booking, error)
	FindDetail(ctx context.Context, id uint) (*models.Booking, error)
	List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error)
	Save(ctx context.Context, b *models.Booking) error
	UpdateStatus(ctx context.Context, id uint, status models.BookingStatus) error
	Delete(ctx context.Context, id uint) error
	CountByPackage(ctx context.Context, packageID uint) (int64, error)
}

type PackageRepo interface {
	Create(ctx context.Context, p *models.Package) error
	FindByID(ctx context.Context, id uint) (*models.Package, error)
	List(ctx context.Context, filter models.PackageFilter) ([]models.Package, error)
	Save(ctx context.Context, p *models.Package) error
	Delete(ctx context.Context, id uint) error
}

type UserRepo interface {
	Create(ctx context.Context, u *models.User) error
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Save(ctx context.Context, u *models.User) error
}

// OrderIDLookup is the slice of BookingRepo the allocator needs.
type OrderIDLookup interface {
	OrderIDExists(ctx context.Context, orderID string) (bool, error)
}

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID uint, role string) (string, error)
}
