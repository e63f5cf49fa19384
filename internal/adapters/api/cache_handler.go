package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// clearAllCache handles DELETE /cache
func (s *HTTPServerAdapter) clearAllCache(c *gin.Context) {
	removed, err := s.weatherUseCase.ClearAllCache(c.Request.Context())
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": removed})
}

// clearCache handles DELETE /cache/:location
func (s *HTTPServerAdapter) clearCache(c *gin.Context) {
	location, units, err := bindLocationAndUnits(c)
	if err != nil {
		s.handleError(c, err)
		return
	}

	existed, err := s.weatherUseCase.ClearCache(c.Request.Context(), location, units)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"existed": existed})
}
