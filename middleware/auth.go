package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"travel-backend/models"
	"travel-backend/utils"
)

const (
	identityKey = "identity"
	userKey     = "user"

	notAuthorizedMessage = "Not authorized to access this route"
)

// TokenParser verifies a bearer token and returns its claims.
type TokenParser interface {
	Parse(raw string) (*utils.Claims, error)
}

// UserLookup loads the account a token was issued for.
type UserLookup interface {
	Get(ctx context.Context, id uint) (*models.User, error)
}

// Protect rejects requests without a valid bearer token for an existing user.
// On success the caller's identity and account are stored on the context.
func Protect(tokens TokenParser, users UserLookup, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c.GetHeader("Authorization"))
		if raw == "" {
			utils.AbortJSONError(c, http.StatusUnauthorized, notAuthorizedMessage)
			return
		}

		claims, err := tokens.Parse(raw)
		if err != nil {
			log.Debug("token rejected", zap.Error(err), zap.String("request_id", RequestIDFrom(c)))
			utils.AbortJSONError(c, http.StatusUnauthorized, notAuthorizedMessage)
			return
		}

		user, err := users.Get(c.Request.Context(), claims.UserID)
		if errors.Is(err, models.ErrNotFound) {
			log.Debug("token user not found", zap.Uint("user_id", claims.UserID))
			utils.AbortJSONError(c, http.StatusUnauthorized, notAuthorizedMessage)
			return
		}
		if err != nil {
			log.Error("token user lookup failed",
				zap.Uint("user_id", claims.UserID),
				zap.String("request_id", RequestIDFrom(c)),
				zap.Error(err),
			)
			utils.AbortJSONError(c, http.StatusInternalServerError, "Server Error")
			return
		}

		c.Set(userKey, user)
		SetIdentity(c, models.Identity{UserID: user.ID, Role: user.Role})
		c.Next()
	}
}

// Authorize admits only callers whose role is listed. It must run after Protect.
func Authorize(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := CurrentIdentity(c)
		if !ok {
			utils.AbortJSONError(c, http.StatusUnauthorized, notAuthorizedMessage)
			return
		}
		for _, role := range roles {
			if id.Role == role {
				c.Next()
				return
			}
		}
		utils.AbortJSONError(c, http.StatusForbidden,
			fmt.Sprintf("User role %s is not authorized to access this route", id.Role))
	}
}

func CurrentIdentity(c *gin.Context) (models.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return models.Identity{}, false
	}
	id, ok := v.(models.Identity)
	return id, ok
}

func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*models.User)
	return u, ok && u != nil
}

// SetIdentity attaches the caller's identity to the request context.
func SetIdentity(c *gin.Context, id models.Identity) {
	c.Set(identityKey, id)
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
