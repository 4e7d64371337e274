package services

import "travel-backend/models"

// CanAccess reports whether the identity may read the booking.
func CanAccess(id models.Identity, b *models.Booking) bool {
	return id.IsAdmin() || b.UserID == id.UserID
}

// CanMutate reports whether the identity may edit or delete the booking.
func CanMutate(id models.Identity, b *models.Booking) bool {
	return CanAccess(id, b)
}

// CanSetStatus reports whether the identity may move the booking to status.
// Admins may set any status. Owners may only cancel their own booking while it
// is pending; cancelling an already cancelled booking is allowed again.
func CanSetStatus(id models.Identity, b *models.Booking, status models.BookingStatus) bool {
	if id.IsAdmin() {
		return true
	}
	if b.UserID != id.UserID || status != models.BookingCancelled {
		return false
	}
	return b.Status == models.BookingPending || b.Status == models.BookingCancelled
}
