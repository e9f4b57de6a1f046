package handlers

import (
	"net/http"

	"github.com/teusdrz/firemoto/models"
	"github.com/teusdrz/firemoto/services/contact"
	"github.com/teusdrz/firemoto/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ContactHandler struct {
	Service contact.ContactService
	Logger  *zap.Logger
}

func NewContactHandler(svc contact.ContactService, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{Service: svc, Logger: logger}
}

// CreateContactHandler handles POST /api/contact.
func (h *ContactHandler) CreateContactHandler(c *gin.Context) {
	var in models.ContactInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "invalid request body",
			"fields": utils.ValidationDetails(err),
		})
		return
	}

	created, err := h.Service.CreateContact(c.Request.Context(), in)
	if err != nil {
		h.Logger.Error("CreateContact: failed to store contact", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to create contact", err.Error())
		return
	}
	c.JSON(http.StatusOK, created)
}

// ListContactsHandler handles GET /api/contact.
func (h *ContactHandler) ListContactsHandler(c *gin.Context) {
	contacts, err := h.Service.ListContacts(c.Request.Context())
	if err != nil {
		h.Logger.Error("ListContacts: failed to fetch contacts", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch contacts", err.Error())
		return
	}
	if contacts == nil {
		contacts = []models.Contact{}
	}
	c.JSON(http.StatusOK, contacts)
}
