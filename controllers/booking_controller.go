package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"travel-backend/middleware"
	"travel-backend/models"
	"travel-backend/services"
	"travel-backend/utils"
)

// BookingService is the part of services.BookingService the handlers use.
type BookingService interface {
	Create(ctx context.Context, id models.Identity, in services.CreateBookingInput) (*models.Booking, error)
	Update(ctx context.Context, id models.Identity, bookingID uint, patch services.BookingPatch) (*models.Booking, error)
	UpdateStatus(ctx context.Context, id models.Identity, bookingID uint, status models.BookingStatus) (*models.Booking, error)
	Remove(ctx context.Context, id models.Identity, bookingID uint) error
	List(ctx context.Context, id models.Identity) ([]models.Booking, error)
	Get(ctx context.Context, id models.Identity, bookingID uint) (*models.Booking, error)
}

// createBookingRequest mirrors the booking form. Package ids arrive as numbers or strings.
type createBookingRequest struct {
	Package         any    `json:"package"`
	Phone           string `json:"phone"`
	Adults          *int   `json:"adults"`
	Children        *int   `json:"children"`
	SpecialRequests string `json:"specialRequests"`
	StartDate       string `json:"startDate"`
}

type updateBookingRequest struct {
	Package         any          `json:"package"`
	Phone           *string      `json:"phone"`
	Adults          *int         `json:"adults"`
	Children        *int         `json:"children"`
	SpecialRequests *string      `json:"specialRequests"`
	StartDate       optionalDate `json:"startDate"`
}

// optionalDate tells a missing key apart from an explicit null or blank value.
type optionalDate struct {
	Set   bool
	Value string
}

func (d *optionalDate) UnmarshalJSON(data []byte) error {
	d.Set = true
	if string(data) == "null" {
		d.Value = ""
		return nil
	}
	return json.Unmarshal(data, &d.Value)
}

type updateStatusRequest struct {
	Status models.BookingStatus `json:"status" binding:"required"`
}

type BookingController struct {
	svc BookingService
	log *zap.Logger
}

func NewBookingController(svc BookingService, log *zap.Logger) *BookingController {
	return &BookingController{svc: svc, log: log}
}

// GET /api/bookings
func (bc *BookingController) GetBookings(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	list, err := bc.svc.List(c.Request.Context(), id)
	if err != nil {
		respondError(c, bc.log, err)
		return
	}
	utils.JSONList(c, http.StatusOK, toBookingResponses(list), len(list))
}

// GET /api/bookings/:id
func (bc *BookingController) GetBooking(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	bookingID, ok := pathID(c)
	if !ok {
		return
	}
	b, err := bc.svc.Get(c.Request.Context(), id, bookingID)
	if err != nil {
		respondError(c, bc.log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, toBookingResponse(b))
}

// POST /api/bookings
func (bc *BookingController) CreateBooking(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	packageID, err := parsePackageRef(req.Package)
	if err != nil {
		respondBadRequest(c, "Please select a package")
		return
	}
	startDate, err := utils.ParseDate(req.StartDate)
	if err != nil {
		respondBadRequest(c, "Invalid start date")
		return
	}

	in := services.CreateBookingInput{
		PackageID:       packageID,
		Phone:           req.Phone,
		Adults:          1,
		SpecialRequests: req.SpecialRequests,
		StartDate:       startDate,
	}
	if req.Adults != nil {
		in.Adults = *req.Adults
	}
	if req.Children != nil {
		in.Children = *req.Children
	}

	b, err := bc.svc.Create(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, bc.log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, toBookingResponse(b))
}

// PUT /api/bookings/:id
func (bc *BookingController) UpdateBooking(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	bookingID, ok := pathID(c)
	if !ok {
		return
	}
	var req updateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	patch := services.BookingPatch{
		Phone:           req.Phone,
		Adults:          req.Adults,
		Children:        req.Children,
		SpecialRequests: req.SpecialRequests,
	}
	if req.Package != nil {
		packageID, err := parsePackageRef(req.Package)
		if err != nil {
			respondBadRequest(c, "Please select a package")
			return
		}
		patch.PackageID = &packageID
	}
	// "startDate": "" or null clears the date; an absent key leaves it alone
	if req.StartDate.Set {
		startDate, err := utils.ParseDate(req.StartDate.Value)
		if err != nil {
			respondBadRequest(c, "Invalid start date")
			return
		}
		patch.StartDate = startDate
		patch.ClearStartDate = startDate == nil
	}

	b, err := bc.svc.Update(c.Request.Context(), id, bookingID, patch)
	if err != nil {
		respondError(c, bc.log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, toBookingResponse(b))
}

// PUT /api/bookings/:id/status
func (bc *BookingController) UpdateBookingStatus(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	bookingID, ok := pathID(c)
	if !ok {
		return
	}
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Please provide a status")
		return
	}

	status := models.BookingStatus(strings.ToLower(strings.TrimSpace(string(req.Status))))
	b, err := bc.svc.UpdateStatus(c.Request.Context(), id, bookingID, status)
	if err != nil {
		respondError(c, bc.log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, toBookingResponse(b))
}

// DELETE /api/bookings/:id
func (bc *BookingController) DeleteBooking(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	bookingID, ok := pathID(c)
	if !ok {
		return
	}
	if err := bc.svc.Remove(c.Request.Context(), id, bookingID); err != nil {
		respondError(c, bc.log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{})
}

func identity(c *gin.Context) (models.Identity, bool) {
	id, ok := middleware.CurrentIdentity(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Not authorized to access this route")
	}
	return id, ok
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := cast.ToUintE(c.Param("id"))
	if err != nil || id == 0 {
		respondBadRequest(c, "Invalid id: "+c.Param("id"))
		return 0, false
	}
	return id, true
}

func parsePackageRef(v any) (uint, error) {
	id, err := cast.ToUintE(v)
	if err != nil {
		return 0, err
	}
	if id == 0 {
		return 0, models.Validationf("Please select a package")
	}
	return id, nil
}
