package controllers

import (
	"net/http"
	"time"

	"github.com/franciscosanchezn/restaurant-pizzas-api/internal/database"
	"github.com/franciscosanchezn/restaurant-pizzas-api/internal/models"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const indexHTML = "<h1>Code challenge</h1>"

// HealthController reports whether the service and its database are up
type HealthController struct {
	db      *gorm.DB
	service string
}

// NewHealthController creates a health controller for the named service
func NewHealthController(db *gorm.DB, service string) *HealthController {
	return &HealthController{db: db, service: service}
}

// HealthCheck godoc
// @Summary Health check
// @Description Check if the service is running and the database answers
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *HealthController) HealthCheck(c *gin.Context) {
	status, code := "healthy", http.StatusOK
	body := gin.H{
		"service":   h.service,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	if err := database.Ping(h.db); err != nil {
		log.WithError(err).Error("Health check failed")
		status, code = "unhealthy", http.StatusServiceUnavailable
		body["error"] = models.MsgDatabaseUnreachable
	}

	body["status"] = status
	c.JSON(code, body)
}

// Index serves the static landing page
func Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
}
