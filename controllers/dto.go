package controllers

import (
	"time"

	"travel-backend/models"
)

type userResponse struct {
	ID        uint        `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role,omitempty"`
	CreatedAt *time.Time  `json:"createdAt,omitempty"`
}

// packageRef is the slice of a package embedded in a booking.
type packageRef struct {
	ID       uint               `json:"id"`
	Name     string             `json:"name"`
	Type     models.PackageType `json:"type"`
	Price    float64            `json:"price"`
	Location string             `json:"location,omitempty"`
	Duration string             `json:"duration,omitempty"`
	Meals    string             `json:"meals,omitempty"`
}

type bookingResponse struct {
	ID              uint                 `json:"id"`
	OrderID         string               `json:"orderId"`
	UserID          uint                 `json:"userId"`
	PackageID       uint                 `json:"packageId"`
	User            *userResponse        `json:"user,omitempty"`
	Package         *packageRef          `json:"package,omitempty"`
	Phone           string               `json:"phone"`
	BookingDate     time.Time            `json:"bookingDate"`
	StartDate       *time.Time           `json:"startDate,omitempty"`
	Adults          int                  `json:"adults"`
	Children        int                  `json:"children"`
	SpecialRequests string               `json:"specialRequests,omitempty"`
	Status          models.BookingStatus `json:"status"`
	TotalPrice      float64              `json:"totalPrice"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
}

func toUserResponse(u *models.User) *userResponse {
	if u == nil {
		return nil
	}
	out := &userResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
	if !u.CreatedAt.IsZero() {
		created := u.CreatedAt
		out.CreatedAt = &created
	}
	return out
}

func toUserResponses(list []models.User) []*userResponse {
	out := make([]*userResponse, 0, len(list))
	for i := range list {
		out = append(out, toUserResponse(&list[i]))
	}
	return out
}

func toPackageRef(p *models.Package) *packageRef {
	if p == nil {
		return nil
	}
	return &packageRef{
		ID:       p.ID,
		Name:     p.Name,
		Type:     p.Type,
		Price:    p.Price,
		Location: p.Location,
		Duration: p.Duration,
		Meals:    p.Meals,
	}
}

func toBookingResponse(b *models.Booking) *bookingResponse {
	out := &bookingResponse{
		ID:              b.ID,
		OrderID:         b.OrderID,
		UserID:          b.UserID,
		PackageID:       b.PackageID,
		Package:         toPackageRef(b.Package),
		Phone:           b.Phone,
		BookingDate:     b.BookingDate,
		StartDate:       b.StartDate,
		Adults:          b.Adults,
		Children:        b.Children,
		SpecialRequests: b.SpecialRequests,
		Status:          b.Status,
		TotalPrice:      b.TotalPrice,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
	if b.User != nil {
		out.User = &userResponse{ID: b.User.ID, Name: b.User.Name, Email: b.User.Email}
	}
	return out
}

func toBookingResponses(list []models.Booking) []*bookingResponse {
	out := make([]*bookingResponse, 0, len(list))
	for i := range list {
		out = append(out, toBookingResponse(&list[i]))
	}
	return out
}
