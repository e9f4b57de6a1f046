package handlers

import (
	"net/http"

	"github.com/teusdrz/firemoto/services/catalog"
	"github.com/teusdrz/firemoto/utils"

	"github.com/gin-gonic/gin"
)

// ListServicesHandler handles GET /api/services. The catalog is fixed
// and needs no I/O, so this endpoint cannot fail.
func ListServicesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.ListServices())
}

// RootHandler handles GET /api/ with a liveness message.
func RootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Fire Moto API"})
}

// HealthHandler handles GET /health with the latest health snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
