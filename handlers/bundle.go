package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates every handler needed to register routes.
type HandlerBundle struct {
	// Status check endpoints.
	CreateStatusCheckHandler gin.HandlerFunc
	ListStatusChecksHandler  gin.HandlerFunc

	// Booking endpoints.
	CreateBookingHandler gin.HandlerFunc
	ListBookingsHandler  gin.HandlerFunc

	// Contact endpoints.
	CreateContactHandler gin.HandlerFunc
	ListContactsHandler  gin.HandlerFunc

	// Catalog and liveness endpoints.
	ListServicesHandler gin.HandlerFunc
	RootHandler         gin.HandlerFunc
	HealthHandler       gin.HandlerFunc
}
