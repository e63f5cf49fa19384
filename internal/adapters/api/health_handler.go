package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherblock.app/internal/ports"
)

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status     string                        `json:"status"`
	Components map[string]ports.HealthStatus `json:"components"`
}

func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	results := s.health.CheckAll(c.Request.Context())
	overall := ports.OverallStatus(results)

	status := http.StatusOK
	if overall == ports.StatusUnhealthy {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, HealthResponse{Status: overall, Components: results})
}
