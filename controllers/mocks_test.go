package controllers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"travel-backend/models"
	"travel-backend/services"
)

type mockBookingService struct{ mock.Mock }

func (m *mockBookingService) Create(ctx context.Context, id models.Identity, in services.CreateBookingInput) (*models.Booking, error) {
	args := m.Called(ctx, id, in)
	b, _ := args.Get(0).(*models.Booking)
	return b, args.Error(1)
}

func (m *mockBookingService) Update(ctx context.Context, id models.Identity, bookingID uint, patch services.BookingPatch) (*models.Booking, error) {
	args := m.Called(ctx, id, bookingID, patch)
	b, _ := args.Get(0).(*models.Booking)
	return b, args.Error(1)
}

func (m *mockBookingService) UpdateStatus(ctx context.Context, id models.Identity, bookingID uint, status models.BookingStatus) (*models.Booking, error) {
	args := m.Called(ctx, id, bookingID, status)
	b, _ := args.Get(0).(*models.Booking)
	return b, args.Error(1)
}

func (m *mockBookingService) Remove(ctx context.Context, id models.Identity, bookingID uint) error {
	return m.Called(ctx, id, bookingID).Error(0)
}

func (m *mockBookingService) List(ctx context.Context, id models.Identity) ([]models.Booking, error) {
	args := m.Called(ctx, id)
	list, _ := args.Get(0).([]models.Booking)
	return list, args.Error(1)
}

func (m *mockBookingService) Get(ctx context.Context, id models.Identity, bookingID uint) (*models.Booking, error) {
	args := m.Called(ctx, id, bookingID)
	b, _ := args.Get(0).(*models.Booking)
	return b, args.Error(1)
}

type mockPackageService struct{ mock.Mock }

func (m *mockPackageService) Create(ctx context.Context, p *models.Package) (*models.Package, error) {
	args := m.Called(ctx, p)
	out, _ := args.Get(0).(*models.Package)
	return out, args.Error(1)
}

func (m *mockPackageService) Get(ctx context.Context, id uint) (*models.Package, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*models.Package)
	return out, args.Error(1)
}

func (m *mockPackageService) List(ctx context.Context, filter models.PackageFilter) ([]models.Package, error) {
	args := m.Called(ctx, filter)
	list, _ := args.Get(0).([]models.Package)
	return list, args.Error(1)
}

func (m *mockPackageService) Update(ctx context.Context, id uint, patch services.PackagePatch) (*models.Package, error) {
	args := m.Called(ctx, id, patch)
	out, _ := args.Get(0).(*models.Package)
	return out, args.Error(1)
}

func (m *mockPackageService) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type mockAuthService struct{ mock.Mock }

func (m *mockAuthService) Register(ctx context.Context, in services.RegisterInput) (*services.AuthResult, error) {
	args := m.Called(ctx, in)
	res, _ := args.Get(0).(*services.AuthResult)
	return res, args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (*services.AuthResult, error) {
	args := m.Called(ctx, email, password)
	res, _ := args.Get(0).(*services.AuthResult)
	return res, args.Error(1)
}
