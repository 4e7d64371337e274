package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"travel-backend/models"
)

// CreateBookingInput is a booking request as submitted by a customer.
type CreateBookingInput struct {
	PackageID       uint
	Phone           string
	Adults          int
	Children        int
	SpecialRequests string
	StartDate       *time.Time
}

// BookingPatch holds the fields of a partial update. Nil means "leave as is".
// ClearStartDate removes the stored start date and wins over StartDate.
type BookingPatch struct {
	PackageID       *uint
	Phone           *string
	Adults          *int
	Children        *int
	SpecialRequests *string
	StartDate       *time.Time
	ClearStartDate  bool
}

func (p BookingPatch) touchesPrice() bool {
	return p.PackageID != nil || p.Adults != nil || p.Children != nil
}

// BookingService owns the booking lifecycle (create, update, status, remove)
// and the scoped queries over it.
type BookingService struct {
	bookings  BookingRepo
	packages  PackageRepo
	allocator *OrderIDAllocator
	log       *zap.Logger
	now       func() time.Time
}

func NewBookingService(bookings BookingRepo, packages PackageRepo, allocator *OrderIDAllocator, log *zap.Logger) *BookingService {
	return &BookingService{
		bookings:  bookings,
		packages:  packages,
		allocator: allocator,
		log:       log,
		now:       time.Now,
	}
}

func (s *BookingService) Create(ctx context.Context, id models.Identity, in CreateBookingInput) (*models.Booking, error) {
	pkg, err := s.loadPackage(ctx, in.PackageID)
	if err != nil {
		return nil, err
	}
	if !pkg.Available {
		return nil, models.Validationf("Package %q is not available for booking", pkg.Name)
	}

	b := &models.Booking{
		UserID:          id.UserID,
		PackageID:       pkg.ID,
		Phone:           strings.TrimSpace(in.Phone),
		BookingDate:     s.now().UTC(),
		StartDate:       in.StartDate,
		Adults:          in.Adults,
		Children:        in.Children,
		SpecialRequests: in.SpecialRequests,
		Status:          models.BookingPending,
		TotalPrice:      ComputeTotal(pkg.Price, in.Adults, in.Children),
	}
	if err := b.ValidateFor(pkg); err != nil {
		return nil, err
	}

	if err := s.insertWithOrderID(ctx, b); err != nil {
		return nil, err
	}
	bookingsCreated.Inc()

	s.log.Info("booking created",
		zap.Uint("booking_id", b.ID),
		zap.String("order_id", b.OrderID),
		zap.Uint("user_id", b.UserID),
		zap.Uint("package_id", b.PackageID),
		zap.Float64("total_price", b.TotalPrice),
	)
	return b, nil
}

// insertWithOrderID allocates an order id and inserts the booking. The unique index
// on order_id is the final arbiter: if a concurrent insert took the id between the
// allocator's check and our insert, a fresh id is drawn.
func (s *BookingService) insertWithOrderID(ctx context.Context, b *models.Booking) error {
	for attempt := 1; attempt <= s.allocator.MaxAttempts(); attempt++ {
		orderID, err := s.allocator.Allocate(ctx)
		if err != nil {
			return err
		}
		b.OrderID = orderID

		err = s.bookings.Create(ctx, b)
		if err == nil {
			return nil
		}
		if !errors.Is(err, models.ErrDuplicateKey) {
			return fmt.Errorf("create booking: %w", err)
		}

		orderIDCollisions.WithLabelValues("insert").Inc()
		s.log.Warn("order id taken at insert, retrying",
			zap.String("order_id", orderID),
			zap.Int("attempt", attempt),
		)
		b.ID = 0
	}
	return models.Conflictf("Could not allocate a unique order id, please try again later")
}

func (s *BookingService) Update(ctx context.Context, id models.Identity, bookingID uint, patch BookingPatch) (*models.Booking, error) {
	b, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !CanMutate(id, b) {
		return nil, models.Unauthorizedf("Not authorized to update this booking")
	}

	if patch.PackageID != nil {
		b.PackageID = *patch.PackageID
	}
	if patch.Phone != nil {
		b.Phone = strings.TrimSpace(*patch.Phone)
	}
	if patch.Adults != nil {
		b.Adults = *patch.Adults
	}
	if patch.Children != nil {
		b.Children = *patch.Children
	}
	if patch.SpecialRequests != nil {
		b.SpecialRequests = *patch.SpecialRequests
	}
	if patch.StartDate != nil {
		b.StartDate = patch.StartDate
	}
	if patch.ClearStartDate {
		b.StartDate = nil
	}

	pkg, err := s.loadPackage(ctx, b.PackageID)
	if err != nil {
		return nil, err
	}
	if patch.PackageID != nil && !pkg.Available {
		return nil, models.Validationf("Package %q is not available for booking", pkg.Name)
	}
	if patch.touchesPrice() {
		b.TotalPrice = ComputeTotal(pkg.Price, b.Adults, b.Children)
	}
	if err := b.ValidateFor(pkg); err != nil {
		return nil, err
	}

	if err := s.bookings.Save(ctx, b); err != nil {
		return nil, fmt.Errorf("update booking %d: %w", bookingID, err)
	}
	s.log.Info("booking updated",
		zap.Uint("booking_id", b.ID),
		zap.Uint("by_user", id.UserID),
		zap.Float64("total_price", b.TotalPrice),
	)
	return s.reloadSummary(ctx, bookingID)
}

// UpdateStatus sets the booking status. There is no transition table: any status may
// follow any other, and setting the current status again is a no-op success.
func (s *BookingService) UpdateStatus(ctx context.Context, id models.Identity, bookingID uint, status models.BookingStatus) (*models.Booking, error) {
	b, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !status.IsValid() {
		return nil, models.Validationf("`%s` is not a valid booking status", status)
	}
	if !CanSetStatus(id, b, status) {
		return nil, models.Unauthorizedf("Not authorized to change the status of this booking")
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, status); err != nil {
		return nil, fmt.Errorf("update booking %d status: %w", bookingID, err)
	}
	bookingStatusChanges.WithLabelValues(string(status)).Inc()

	s.log.Info("booking status changed",
		zap.Uint("booking_id", bookingID),
		zap.String("from", string(b.Status)),
		zap.String("to", string(status)),
		zap.Uint("by_user", id.UserID),
	)
	return s.reloadSummary(ctx, bookingID)
}

func (s *BookingService) Remove(ctx context.Context, id models.Identity, bookingID uint) error {
	b, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return err
	}
	if !CanMutate(id, b) {
		return models.Unauthorizedf("Not authorized to delete this booking")
	}

	if err := s.bookings.Delete(ctx, bookingID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return bookingNotFound(bookingID)
		}
		return fmt.Errorf("delete booking %d: %w", bookingID, err)
	}
	s.log.Info("booking deleted", zap.Uint("booking_id", bookingID), zap.Uint("by_user", id.UserID))
	return nil
}

// List returns every booking for admins and the caller's own bookings otherwise.
func (s *BookingService) List(ctx context.Context, id models.Identity) ([]models.Booking, error) {
	var filter models.BookingFilter
	if !id.IsAdmin() {
		owner := id.UserID
		filter.UserID = &owner
	}

	list, err := s.bookings.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return list, nil
}

func (s *BookingService) Get(ctx context.Context, id models.Identity, bookingID uint) (*models.Booking, error) {
	b, err := s.bookings.FindDetail(ctx, bookingID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, bookingNotFound(bookingID)
		}
		return nil, fmt.Errorf("get booking %d: %w", bookingID, err)
	}
	if !CanAccess(id, b) {
		return nil, models.Unauthorizedf("Not authorized to access this booking")
	}
	return b, nil
}

func (s *BookingService) loadBooking(ctx context.Context, bookingID uint) (*models.Booking, error) {
	b, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, bookingNotFound(bookingID)
		}
		return nil, fmt.Errorf("load booking %d: %w", bookingID, err)
	}
	return b, nil
}

func (s *BookingService) loadPackage(ctx context.Context, packageID uint) (*models.Package, error) {
	pkg, err := s.packages.FindByID(ctx, packageID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, packageNotFound(packageID)
		}
		return nil, fmt.Errorf("load package %d: %w", packageID, err)
	}
	return pkg, nil
}

func (s *BookingService) reloadSummary(ctx context.Context, bookingID uint) (*models.Booking, error) {
	b, err := s.bookings.FindSummary(ctx, bookingID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, bookingNotFound(bookingID)
		}
		return nil, fmt.Errorf("reload booking %d: %w", bookingID, err)
	}
	return b, nil
}

func bookingNotFound(id uint) error {
	return models.NotFoundf("Booking not found with id of %d", id)
}

func packageNotFound(id uint) error {
	return models.NotFoundf("Package not found with id of %d", id)
}
