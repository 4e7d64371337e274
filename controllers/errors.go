package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"travel-backend/models"
	"travel-backend/utils"
)

const serverErrorMessage = "Server Error"

// statusFor maps an error kind onto its HTTP status. Zero means "unexpected".
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, models.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrConflict):
		return http.StatusConflict
	}
	return 0
}

func respondError(c *gin.Context, log *zap.Logger, err error) {
	code := statusFor(err)
	if code == 0 {
		log.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		utils.JSONError(c, http.StatusInternalServerError, serverErrorMessage)
		return
	}

	message := err.Error()
	var appErr *models.Error
	if errors.As(err, &appErr) {
		message = appErr.Message
	}
	utils.JSONError(c, code, message)
}

func respondBadRequest(c *gin.Context, message string) {
	utils.JSONError(c, http.StatusBadRequest, message)
}
