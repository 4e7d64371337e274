package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"travel-backend/middleware"
	"travel-backend/services"
	"travel-backend/utils"
)

type AuthService interface {
	Register(ctx context.Context, in services.RegisterInput) (*services.AuthResult, error)
	Login(ctx context.Context, email, password string) (*services.AuthResult, error)
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Success bool          `json:"success"`
	Token   string        `json:"token"`
	User    *userResponse `json:"user"`
}

type AuthController struct {
	svc AuthService
	log *zap.Logger
}

func NewAuthController(svc AuthService, log *zap.Logger) *AuthController {
	return &AuthController{svc: svc, log: log}
}

// POST /api/auth/register
func (ac *AuthController) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}
	res, err := ac.svc.Register(c.Request.Context(), services.RegisterInput(req))
	if err != nil {
		respondError(c, ac.log, err)
		return
	}
	c.JSON(http.StatusCreated, authResponse{Success: true, Token: res.Token, User: toUserResponse(res.User)})
}

// POST /api/auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Please provide an email and password")
		return
	}
	res, err := ac.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, ac.log, err)
		return
	}
	c.JSON(http.StatusOK, authResponse{Success: true, Token: res.Token, User: toUserResponse(res.User)})
}

// GET /api/auth/me
func (ac *AuthController) Me(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Not authorized to access this route")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": toUserResponse(u)})
}

// POST /api/auth/logout. Tokens are stateless; the client drops its copy.
func (ac *AuthController) Logout(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, gin.H{})
}
