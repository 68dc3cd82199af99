package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newMiddlewareTestEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	e := gin.New()
	e.Use(mw...)
	e.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return e
}

func TestSecurityHeaders(t *testing.T) {
	e := newMiddlewareTestEngine(securityHeaders())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", rec.Header().Get("Referrer-Policy"))
	assert.Equal(t, "camera=(), microphone=(), geolocation=()", rec.Header().Get("Permissions-Policy"))
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	e := gin.New()
	e.Use(recovery())
	e.GET("/boom", func(c *gin.Context) {
		panic("kaboom")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal server error")
}

func TestCORSMiddleware(t *testing.T) {
	tests := []struct {
		name        string
		origin      string
		wantAllowed bool
	}{
		{
			name:        "configured dashboard origin allowed",
			origin:      "https://app.example.com",
			wantAllowed: true,
		},
		{
			name:        "trailing slash in config still matches",
			origin:      "https://app2.example.com",
			wantAllowed: true,
		},
		{
			name:        "localhost allowed on any port",
			origin:      "http://localhost:5173",
			wantAllowed: true,
		},
		{
			name:        "loopback IP allowed",
			origin:      "http://127.0.0.1:3000",
			wantAllowed: true,
		},
		{
			name:        "unknown origin gets no CORS headers",
			origin:      "https://evil.example.com",
			wantAllowed: false,
		},
	}

	e := newMiddlewareTestEngine(corsMiddleware([]string{"https://app.example.com", "https://app2.example.com/"}))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			if tt.wantAllowed {
				assert.Equal(t, tt.origin, rec.Header().Get("Access-Control-Allow-Origin"))
				assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), tenantHeader)
			} else {
				assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}

	t.Run("preflight short-circuits with 204", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/test", nil)
		req.Header.Set("Origin", "https://app.example.com")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "600", rec.Header().Get("Access-Control-Max-Age"))
	})
}

func TestTenantRequired(t *testing.T) {
	gin.SetMode(gin.TestMode)
	e := gin.New()
	var got string
	e.GET("/scoped", tenantRequired(), func(c *gin.Context) {
		got = tenantID(c)
		c.String(http.StatusOK, "ok")
	})

	t.Run("missing header rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/scoped", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "X-Tenant-ID header is required")
	})

	t.Run("header threads through to the handler", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/scoped", nil)
		req.Header.Set(tenantHeader, "tenant-42")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "tenant-42", got)
	})
}
