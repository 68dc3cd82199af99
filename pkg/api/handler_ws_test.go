package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/interacai/flowcore/pkg/config"
)

func TestWSHandler_Unavailable(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := &Server{}

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/ws", nil)

	s.wsHandler(c)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "event stream not available")
}

func TestWSOriginPatterns(t *testing.T) {
	t.Run("bare server gets localhost only", func(t *testing.T) {
		s := &Server{}
		patterns := s.wsOriginPatterns()
		assert.Contains(t, patterns, "localhost:*")
		assert.Contains(t, patterns, "127.0.0.1:*")
	})

	t.Run("dashboard host and extra patterns included", func(t *testing.T) {
		s := &Server{cfg: &config.Config{
			DashboardURL:     "https://app.example.com",
			AllowedWSOrigins: []string{"*.example.org"},
		}}
		patterns := s.wsOriginPatterns()
		assert.Contains(t, patterns, "app.example.com")
		assert.Contains(t, patterns, "*.example.org")
		assert.Contains(t, patterns, "localhost:*")
	})
}
