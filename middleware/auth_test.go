package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"travel-backend/models"
	"travel-backend/utils"
)

type userMap map[uint]*models.User

func (m userMap) Get(_ context.Context, id uint) (*models.User, error) {
	if u, ok := m[id]; ok {
		return u, nil
	}
	return nil, models.NotFoundf("User not found")
}

func setupRouter(tokens TokenParser, users UserLookup) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	protected := r.Group("/", Protect(tokens, users, zap.NewNop()))
	protected.GET("/me", func(c *gin.Context) {
		id, _ := CurrentIdentity(c)
		c.JSON(http.StatusOK, gin.H{"id": id.UserID, "role": id.Role})
	})
	protected.GET("/admin", Authorize(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func do(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestProtect(t *testing.T) {
	tokens := utils.NewTokenManager("secret", time.Hour)
	users := userMap{
		1: {ID: 1, Name: "alice", Role: models.RoleUser},
	}
	r := setupRouter(tokens, users)

	valid, err := tokens.Issue(1, "user")
	require.NoError(t, err)
	orphan, err := tokens.Issue(2, "user")
	require.NoError(t, err)

	w := do(r, "/me", valid)
	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(1), body["id"])
	assert.Equal(t, "user", body["role"])
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	for name, token := range map[string]string{
		"missing": "",
		"garbage": "not-a-jwt",
		"orphan":  orphan,
	} {
		t.Run(name, func(t *testing.T) {
			w := do(r, "/me", token)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.JSONEq(t, `{"success":false,"message":"Not authorized to access this route"}`, w.Body.String())
		})
	}
}

type brokenUsers struct{}

func (brokenUsers) Get(context.Context, uint) (*models.User, error) {
	return nil, errors.New("dial tcp 127.0.0.1:3306: connection refused")
}

func TestProtect_StorageFailureIsServerError(t *testing.T) {
	tokens := utils.NewTokenManager("secret", time.Hour)
	r := setupRouter(tokens, brokenUsers{})

	token, err := tokens.Issue(1, "user")
	require.NoError(t, err)

	w := do(r, "/me", token)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Server Error"}`, w.Body.String())
}

func TestAuthorize(t *testing.T) {
	tokens := utils.NewTokenManager("secret", time.Hour)
	users := userMap{
		1: {ID: 1, Role: models.RoleUser},
		2: {ID: 2, Role: models.RoleAdmin},
	}
	r := setupRouter(tokens, users)

	user, _ := tokens.Issue(1, "user")
	admin, _ := tokens.Issue(2, "admin")

	w := do(r, "/admin", user)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"User role user is not authorized to access this route"}`, w.Body.String())

	w = do(r, "/admin", admin)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestAuthorize_RoleComesFromStoredUser(t *testing.T) {
	tokens := utils.NewTokenManager("secret", time.Hour)
	users := userMap{1: {ID: 1, Role: models.RoleUser}}
	r := setupRouter(tokens, users)

	// a token claiming admin does not outrank the account's stored role
	forged, _ := tokens.Issue(1, "admin")
	w := do(r, "/admin", forged)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequestID_KeepsIncomingHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, RequestIDFrom(c)) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Body.String())
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery(zap.NewNop()))
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Server Error"}`, w.Body.String())
}
