package api

import (
	"crypto/subtle"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"weatherblock.app/internal/ports"
)

const requestIDKey = "request_id"

// requestIDMiddleware tags each request with an ID. A well-formed UUID sent by
// the client is kept; anything else is replaced.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func (s *HTTPServerAdapter) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		s.logger.Info("HTTP request",
			ports.F("method", c.Request.Method),
			ports.F("path", c.Request.URL.Path),
			ports.F("status", c.Writer.Status()),
			ports.F("latency_ms", time.Since(start).Milliseconds()),
			ports.F("request_id", c.GetString(requestIDKey)))
	}
}

// requireAdmin admits requests bearing the configured admin token
func (s *HTTPServerAdapter) requireAdmin() gin.HandlerFunc {
	expected := []byte(s.config.AdminToken)

	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if len(expected) == 0 || !ok || subtle.ConstantTimeCompare([]byte(token), expected) != 1 {
			s.handleError(c, newForbiddenError())
			return
		}
		c.Next()
	}
}

// verifyNonce reports whether the request carries a valid lookup nonce
func (s *HTTPServerAdapter) verifyNonce(c *gin.Context) bool {
	if !s.config.RequireNonce {
		return true
	}
	return s.nonces.Verify(c.GetHeader(NonceHeader), NonceAction)
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
