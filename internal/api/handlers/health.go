package handlers

import (
	"net/http"

	"nnpredictor/internal/models"

	"github.com/gin-gonic/gin"
)

// HealthHandler answers liveness probes
type HealthHandler struct{}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Health godoc
// @Summary Health check
// @Description Liveness probe. Any 200 response means the process is up and serving requests.
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{Status: models.HealthStatusOK})
}
