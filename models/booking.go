package models

import (
	"time"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingPaid      BookingStatus = "paid"
	BookingCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingPaid, BookingCancelled:
		return true
	}
	return false
}

const MaxSpecialRequestsLen = 500

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID    uint   `gorm:"index;column:user_id;not null" json:"userId"`
	PackageID uint   `gorm:"index;column:package_id;not null" json:"packageId"`
	OrderID   string `gorm:"column:order_id;size:4;uniqueIndex;not null" json:"orderId"`

	Phone           string        `gorm:"column:phone;size:32;not null" json:"phone"`
	BookingDate     time.Time     `gorm:"column:booking_date" json:"bookingDate"`
	StartDate       *time.Time    `gorm:"column:start_date" json:"startDate,omitempty"`
	Adults          int           `gorm:"column:adults;not null;default:1" json:"adults"`
	Children        int           `gorm:"column:children;not null;default:0" json:"children"`
	SpecialRequests string        `gorm:"column:special_requests;size:500" json:"specialRequests,omitempty"`
	Status          BookingStatus `gorm:"column:status;size:16;not null;default:'pending';index" json:"status"`
	TotalPrice      float64       `gorm:"column:total_price;not null" json:"totalPrice"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	User    *User    `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Package *Package `gorm:"foreignKey:PackageID;references:ID;constraint:OnDelete:RESTRICT" json:"package,omitempty"`
}

// Validate checks the guest counts, the free-text limits and the status enum.
// The start-date rule depends on the referenced package and is checked by ValidateFor.
func (b *Booking) Validate() error {
	if b.Phone == "" {
		return Validationf("Phone number is required")
	}
	if b.Adults < 1 {
		return Validationf("Number of adults must be at least 1")
	}
	if b.Children < 0 {
		return Validationf("Number of children cannot be negative")
	}
	if len([]rune(b.SpecialRequests)) > MaxSpecialRequestsLen {
		return Validationf("Special requests cannot exceed %d characters", MaxSpecialRequestsLen)
	}
	if !b.Status.IsValid() {
		return Validationf("`%s` is not a valid booking status", b.Status)
	}
	return nil
}

// ValidateFor runs Validate plus the rules that depend on the booked package.
func (b *Booking) ValidateFor(pkg *Package) error {
	if err := b.Validate(); err != nil {
		return err
	}
	if pkg.Type.RequiresStartDate() && b.StartDate == nil {
		return Validationf("Start date is required for %s packages", pkg.Type)
	}
	return nil
}

// BookingFilter scopes a listing. A nil UserID means every booking.
type BookingFilter struct {
	UserID *uint
}
