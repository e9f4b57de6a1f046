package handlers

import (
	"net/http"

	"github.com/teusdrz/firemoto/models"
	"github.com/teusdrz/firemoto/services/booking"
	"github.com/teusdrz/firemoto/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var in models.BookingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "invalid request body",
			"fields": utils.ValidationDetails(err),
		})
		return
	}

	created, err := h.Service.CreateBooking(c.Request.Context(), in)
	if err != nil {
		h.Logger.Error("CreateBooking: failed to store booking", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to create booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, created)
}

// ListBookingsHandler handles GET /api/bookings.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.ListBookings(c.Request.Context())
	if err != nil {
		h.Logger.Error("ListBookings: failed to fetch bookings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch bookings", err.Error())
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}
