package routes

import (
	"time"

	"github.com/teusdrz/firemoto/config"
	"github.com/teusdrz/firemoto/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterStatusRoutes registers status-check endpoints.
func RegisterStatusRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	api.GET("/status", hb.ListStatusChecksHandler)
	api.POST("/status", hb.CreateStatusCheckHandler)
}

// RegisterBookingRoutes registers booking endpoints.
func RegisterBookingRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	api.GET("/bookings", hb.ListBookingsHandler)
	api.POST("/bookings", hb.CreateBookingHandler)
}

// RegisterContactRoutes registers contact-form endpoints.
func RegisterContactRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	api.GET("/contact", hb.ListContactsHandler)
	api.POST("/contact", hb.CreateContactHandler)
}

// RegisterHealthRoute registers the health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	api.GET("/", hb.RootHandler)
	api.GET("/services", hb.ListServicesHandler)

	RegisterStatusRoutes(api, hb)
	RegisterBookingRoutes(api, hb)
	RegisterContactRoutes(api, hb)
	RegisterHealthRoute(r, hb)
}
