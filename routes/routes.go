package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"travel-backend/controllers"
	"travel-backend/middleware"
	"travel-backend/models"
	"travel-backend/utils"
)

// Handlers groups everything the router needs to mount the API.
type Handlers struct {
	Auth     *controllers.AuthController
	Packages *controllers.PackageController
	Bookings *controllers.BookingController
	Users    *controllers.UserController

	Tokens  middleware.TokenParser
	Lookup  middleware.UserLookup
	Origins []string
	Log     *zap.Logger
}

func corsConfig(origins []string) cors.Config {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}
}

func SetupRouter(h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Recovery(h.Log),
		middleware.Logger(h.Log),
		middleware.Metrics(),
		cors.New(corsConfig(h.Origins)),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	protect := middleware.Protect(h.Tokens, h.Lookup, h.Log)
	adminOnly := middleware.Authorize(models.RoleAdmin)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.GET("/me", protect, h.Auth.Me)
			auth.POST("/logout", protect, h.Auth.Logout)
		}

		packages := api.Group("/packages")
		{
			packages.GET("", h.Packages.GetPackages)
			packages.GET("/:id", h.Packages.GetPackage)
			packages.POST("", protect, adminOnly, h.Packages.CreatePackage)
			packages.PUT("/:id", protect, adminOnly, h.Packages.UpdatePackage)
			packages.DELETE("/:id", protect, adminOnly, h.Packages.DeletePackage)
		}

		bookings := api.Group("/bookings", protect)
		{
			bookings.GET("", h.Bookings.GetBookings)
			bookings.POST("", h.Bookings.CreateBooking)
			bookings.GET("/:id", h.Bookings.GetBooking)
			bookings.PUT("/:id", h.Bookings.UpdateBooking)
			bookings.PUT("/:id/status", h.Bookings.UpdateBookingStatus)
			bookings.DELETE("/:id", h.Bookings.DeleteBooking)
		}

		users := api.Group("/users", protect)
		{
			users.GET("/profile", h.Users.GetProfile)
			users.PUT("/profile", h.Users.UpdateProfile)
			users.GET("", adminOnly, h.Users.GetUsers)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		utils.JSONError(c, http.StatusNotFound, "Route not found")
	})

	return r
}
