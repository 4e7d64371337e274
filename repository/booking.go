package repository

import (
	"context"

	"gorm.io/gorm"

	"travel-backend/models"
)

type BookingRepository struct {
	DB *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{DB: db}
}

// package/user columns loaded for listings and for single-booking reads
var (
	packageSummaryCols = []string{"id", "name", "type", "price"}
	packageDetailCols  = []string{"id", "name", "type", "price", "location", "duration", "meals"}
	userSummaryCols    = []string{"id", "name", "email"}
)

func preloadCols(cols []string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB { return db.Select(cols) }
}

func (r *BookingRepository) OrderIDExists(ctx context.Context, orderID string) (bool, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&models.Booking{}).
		Where("order_id = ?", orderID).
		Count(&count).Error; err != nil {
		return false, translate(err, "count order id")
	}
	return count > 0, nil
}

// Create inserts the booking. A collision on the order_id unique index comes back
// as models.ErrDuplicateKey.
func (r *BookingRepository) Create(ctx context.Context, b *models.Booking) error {
	return translate(r.DB.WithContext(ctx).Omit("User", "Package").Create(b).Error, "create booking")
}

// FindByID loads the bare record, without relations.
func (r *BookingRepository) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	var b models.Booking
	if err := r.DB.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, translate(err, "find booking")
	}
	return &b, nil
}

// FindSummary loads the record with the package/user summaries used in listings.
func (r *BookingRepository) FindSummary(ctx context.Context, id uint) (*models.Booking, error) {
	var b models.Booking
	if err := r.DB.WithContext(ctx).
		Preload("Package", preloadCols(packageSummaryCols)).
		Preload("User", preloadCols(userSummaryCols)).
		First(&b, id).Error; err != nil {
		return nil, translate(err, "find booking")
	}
	return &b, nil
}

// FindDetail loads the record with the package detail and the user summary.
func (r *BookingRepository) FindDetail(ctx context.Context, id uint) (*models.Booking, error) {
	var b models.Booking
	if err := r.DB.WithContext(ctx).
		Preload("Package", preloadCols(packageDetailCols)).
		Preload("User", preloadCols(userSummaryCols)).
		First(&b, id).Error; err != nil {
		return nil, translate(err, "find booking")
	}
	return &b, nil
}

func (r *BookingRepository) List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error) {
	q := r.DB.WithContext(ctx).
		Preload("Package", preloadCols(packageSummaryCols)).
		Preload("User", preloadCols(userSummaryCols)).
		Order("created_at DESC")
	if filter.UserID != nil {
		q = q.Where("user_id = ?", *filter.UserID)
	}

	list := []models.Booking{}
	if err := q.Find(&list).Error; err != nil {
		return nil, translate(err, "list bookings")
	}
	return list, nil
}

// Save writes back the user-editable columns and the recomputed price.
func (r *BookingRepository) Save(ctx context.Context, b *models.Booking) error {
	err := r.DB.WithContext(ctx).Model(b).
		Select("package_id", "phone", "start_date", "adults", "children", "special_requests", "total_price").
		Updates(b).Error
	return translate(err, "update booking")
}

// UpdateStatus is a single-row write; concurrent callers are last-write-wins.
// MySQL reports zero affected rows when the status is unchanged, so existence is
// the caller's concern.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id uint, status models.BookingStatus) error {
	err := r.DB.WithContext(ctx).Model(&models.Booking{}).
		Where("id = ?", id).
		Update("status", status).Error
	return translate(err, "update booking status")
}

func (r *BookingRepository) Delete(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.Booking{}, id)
	if res.Error != nil {
		return translate(res.Error, "delete booking")
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *BookingRepository) CountByPackage(ctx context.Context, packageID uint) (int64, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&models.Booking{}).
		Where("package_id = ?", packageID).
		Count(&count).Error; err != nil {
		return 0, translate(err, "count bookings")
	}
	return count, nil
}
