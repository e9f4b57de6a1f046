package handlers

import (
	"net/http"

	"github.com/teusdrz/firemoto/models"
	"github.com/teusdrz/firemoto/services/status"
	"github.com/teusdrz/firemoto/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type StatusHandler struct {
	Service status.StatusService
	Logger  *zap.Logger
}

func NewStatusHandler(svc status.StatusService, logger *zap.Logger) *StatusHandler {
	return &StatusHandler{Service: svc, Logger: logger}
}

// CreateStatusCheckHandler handles POST /api/status.
func (h *StatusHandler) CreateStatusCheckHandler(c *gin.Context) {
	var in models.StatusCheckInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "invalid request body",
			"fields": utils.ValidationDetails(err),
		})
		return
	}

	created, err := h.Service.CreateStatusCheck(c.Request.Context(), in)
	if err != nil {
		h.Logger.Error("CreateStatusCheck: failed to store status check", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to create status check", err.Error())
		return
	}
	c.JSON(http.StatusOK, created)
}

// ListStatusChecksHandler handles GET /api/status.
func (h *StatusHandler) ListStatusChecksHandler(c *gin.Context) {
	checks, err := h.Service.ListStatusChecks(c.Request.Context())
	if err != nil {
		h.Logger.Error("ListStatusChecks: failed to fetch status checks", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch status checks", err.Error())
		return
	}
	if checks == nil {
		checks = []models.StatusCheck{}
	}
	c.JSON(http.StatusOK, checks)
}
