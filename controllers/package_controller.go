package controllers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"travel-backend/models"
	"travel-backend/services"
	"travel-backend/utils"
)

type PackageService interface {
	Create(ctx context.Context, p *models.Package) (*models.Package, error)
	Get(ctx context.Context, id uint) (*models.Package, error)
	List(ctx context.Context, filter models.PackageFilter) ([]models.Package, error)
	Update(ctx context.Context, id uint, patch services.PackagePatch) (*models.Package, error)
	Delete(ctx context.Context, id uint) error
}

type packageRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Type        *string          `json:"type"`
	Price       *float64         `json:"price"`
	Duration    *string          `json:"duration"`
	Location    *string          `json:"location"`
	Meals       *string          `json:"meals"`
	Images      *utils.ImageList `json:"images"`
	Available   *bool            `json:"available"`
}

func (r packageRequest) patch() services.PackagePatch {
	patch := services.PackagePatch{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Duration:    r.Duration,
		Location:    r.Location,
		Meals:       r.Meals,
		Available:   r.Available,
	}
	if r.Type != nil {
		t := models.PackageType(strings.ToLower(strings.TrimSpace(*r.Type)))
		patch.Type = &t
	}
	if r.Images != nil {
		images := []string(*r.Images)
		patch.Images = &images
	}
	return patch
}

func (r packageRequest) toModel() *models.Package {
	p := &models.Package{Available: true}
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Description != nil {
		p.Description = *r.Description
	}
	if r.Type != nil {
		p.Type = models.PackageType(strings.ToLower(strings.TrimSpace(*r.Type)))
	}
	if r.Price != nil {
		p.Price = *r.Price
	}
	if r.Duration != nil {
		p.Duration = *r.Duration
	}
	if r.Location != nil {
		p.Location = *r.Location
	}
	if r.Meals != nil {
		p.Meals = *r.Meals
	}
	if r.Images != nil {
		p.Images = []string(*r.Images)
	}
	if r.Available != nil {
		p.Available = *r.Available
	}
	return p
}

type PackageController struct {
	svc PackageService
	log *zap.Logger
}

func NewPackageController(svc PackageService, log *zap.Logger) *PackageController {
	return &PackageController{svc: svc, log: log}
}

// GET /api/packages?type=resort&available=true
func (pc *PackageController) GetPackages(c *gin.Context) {
	filter := models.PackageFilter{
		Type: models.PackageType(strings.ToLower(strings.TrimSpace(c.Query("type")))),
	}
	if raw, ok := c.GetQuery("available"); ok && raw != "" {
		available, err := cast.ToBoolE(raw)
		if err != nil {
			respondBadRequest(c, "available must be true or false")
			return
		}
		filter.Available = &available
	}

	list, err := pc.svc.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, pc.log, err)
		return
	}
	utils.JSONList(c, http.StatusOK, list, len(list))
}

// GET /api/packages/:id
func (pc *PackageController) GetPackage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	p, err := pc.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, pc.log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, p)
}

// POST /api/packages
func (pc *PackageController) CreatePackage(c *gin.Context) {
	var req packageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if req.Price == nil {
		respondBadRequest(c, "Please provide a price")
		return
	}

	p, err := pc.svc.Create(c.Request.Context(), req.toModel())
	if err != nil {
		respondError(c, pc.log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, p)
}

// PUT /api/packages/:id
func (pc *PackageController) UpdatePackage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req packageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	p, err := pc.svc.Update(c.Request.Context(), id, req.patch())
	if err != nil {
		respondError(c, pc.log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, p)
}

// DELETE /api/packages/:id
func (pc *PackageController) DeletePackage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := pc.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, pc.log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{})
}
