package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"travel-backend/models"
	"travel-backend/services"
	"travel-backend/utils"
)

type UserService interface {
	Get(ctx context.Context, id uint) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	UpdateProfile(ctx context.Context, id models.Identity, patch services.ProfilePatch) (*models.User, error)
}

type updateProfileRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type UserController struct {
	svc UserService
	log *zap.Logger
}

func NewUserController(svc UserService, log *zap.Logger) *UserController {
	return &UserController{svc: svc, log: log}
}

// GET /api/users/profile
func (uc *UserController) GetProfile(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	u, err := uc.svc.Get(c.Request.Context(), id.UserID)
	if err != nil {
		respondError(c, uc.log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, toUserResponse(u))
}

// PUT /api/users/profile
func (uc *UserController) UpdateProfile(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}
	u, err := uc.svc.UpdateProfile(c.Request.Context(), id, services.ProfilePatch(req))
	if err != nil {
		respondError(c, uc.log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, toUserResponse(u))
}

// GET /api/users (admin)
func (uc *UserController) GetUsers(c *gin.Context) {
	list, err := uc.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, uc.log, err)
		return
	}
	utils.JSONList(c, http.StatusOK, toUserResponses(list), len(list))
}
