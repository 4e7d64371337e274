package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"travel-backend/models"
	"travel-backend/services"
)

func setupPackageRouter(svc PackageService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	pc := NewPackageController(svc, zap.NewNop())
	r.GET("/packages", pc.GetPackages)
	r.GET("/packages/:id", pc.GetPackage)
	r.POST("/packages", pc.CreatePackage)
	r.PUT("/packages/:id", pc.UpdatePackage)
	r.DELETE("/packages/:id", pc.DeletePackage)
	return r
}

func TestPackageController_ListFilters(t *testing.T) {
	svc := new(mockPackageService)
	r := setupPackageRouter(svc)

	available := true
	svc.On("List", mock.Anything, models.PackageFilter{Type: models.PackageResort, Available: &available}).
		Return([]models.Package{{ID: 1, Name: "Lagoon"}}, nil)

	w := perform(r, http.MethodGet, "/packages?type=Resort&available=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode(t, w)["count"])

	w = perform(r, http.MethodGet, "/packages?available=maybe", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNumberOfCalls(t, "List", 1)
}

func TestPackageController_Create_NormalizesImages(t *testing.T) {
	svc := new(mockPackageService)
	r := setupPackageRouter(svc)

	svc.On("Create", mock.Anything, mock.MatchedBy(func(p *models.Package) bool {
		return p.Name == "Lagoon" && p.Type == models.PackageResort && p.Available &&
			assert.ObjectsAreEqual([]string{"a.jpg", "b.jpg"}, []string(p.Images))
	})).Return(&models.Package{ID: 9, Name: "Lagoon"}, nil)

	w := perform(r, http.MethodPost, "/packages", map[string]any{
		"name": "Lagoon", "description": "Villas", "type": "resort", "price": 1800,
		"duration": "5 nights", "location": "Maldives", "meals": "all inclusive",
		"images": " a.jpg, ,b.jpg",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	svc.AssertExpectations(t)
}

func TestPackageController_Create_RequiresPrice(t *testing.T) {
	svc := new(mockPackageService)
	r := setupPackageRouter(svc)

	w := perform(r, http.MethodPost, "/packages", map[string]any{"name": "Lagoon", "type": "food"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Please provide a price", decode(t, w)["message"])
}

func TestPackageController_Update(t *testing.T) {
	svc := new(mockPackageService)
	r := setupPackageRouter(svc)

	svc.On("Update", mock.Anything, uint(4), mock.MatchedBy(func(p services.PackagePatch) bool {
		return p.Available != nil && !*p.Available && p.Name == nil && p.Images == nil
	})).Return(&models.Package{ID: 4, Available: false}, nil)

	w := perform(r, http.MethodPut, "/packages/4", map[string]any{"available": false})
	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestPackageController_Delete_Conflict(t *testing.T) {
	svc := new(mockPackageService)
	r := setupPackageRouter(svc)

	svc.On("Delete", mock.Anything, uint(4)).Return(models.Conflictf("Package 4 still has 2 booking(s) and cannot be deleted"))

	w := perform(r, http.MethodDelete, "/packages/4", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}
