package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// apiKeyRequest is the body of PUT /settings/api-key. An empty key clears
// the stored value.
type apiKeyRequest struct {
	APIKey *string `json:"apiKey" binding:"required"`
}

func (s *HTTPServerAdapter) getSettings(c *gin.Context) {
	c.JSON(http.StatusOK, s.settingsUseCase.Status(c.Request.Context()))
}

func (s *HTTPServerAdapter) saveAPIKey(c *gin.Context) {
	var req apiKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.handleError(c, newInvalidParamError(err))
		return
	}

	ctx := c.Request.Context()
	if err := s.settingsUseCase.SaveAPIKey(ctx, *req.APIKey); err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, s.settingsUseCase.Status(ctx))
}

func (s *HTTPServerAdapter) testAPIKey(c *gin.Context) {
	result, err := s.settingsUseCase.TestAPIKey(c.Request.Context())
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
