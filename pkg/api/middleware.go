package api

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// tenantHeader is the tenant boundary for dashboard routes.
const tenantHeader = "X-Tenant-ID"

// ctxTenantID is the gin context key the tenant middleware fills.
const ctxTenantID = "tenant_id"

// requestLogger returns middleware that logs one line per request.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		// Webhook and WS traffic is chatty; keep successes at debug there.
		level := slog.LevelInfo
		if c.Writer.Status() < 400 && strings.HasPrefix(c.Request.URL.Path, "/api/v1/webhooks") {
			level = slog.LevelDebug
		}
		slog.Log(c.Request.Context(), level, "HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds())
	}
}

// recovery returns middleware that converts handler panics into 500
// responses instead of dropping the connection.
func recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("Handler panic recovered",
					"path", c.Request.URL.Path,
					"panic", r)
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					gin.H{"error": "internal server error"})
			}
		}()
		c.Next()
	}
}

// securityHeaders returns middleware that sets standard security response headers.
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
		c.Next()
	}
}

// corsMiddleware returns middleware that admits the dashboard origin and
// localhost variants. Anything else gets no CORS headers and the browser
// blocks it.
func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[strings.TrimSuffix(o, "/")] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && (allowed[origin] || isLocalOrigin(origin)) {
			h := c.Writer.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Add("Vary", "Origin")
			h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Content-Type, "+tenantHeader)
			h.Set("Access-Control-Max-Age", "600")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// isLocalOrigin reports whether origin points at localhost on any port.
func isLocalOrigin(origin string) bool {
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	host := u.Hostname()
	return host == "localhost" || host == "127.0.0.1" || host == "::1"
}

// tenantRequired returns middleware that extracts the tenant scope every
// dashboard route runs under. Requests without the header are rejected
// before any handler runs.
func tenantRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(tenantHeader)
		if id == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest,
				gin.H{"error": tenantHeader + " header is required"})
			return
		}
		c.Set(ctxTenantID, id)
		c.Next()
	}
}

// tenantID returns the tenant the middleware resolved for this request.
func tenantID(c *gin.Context) string {
	return c.GetString(ctxTenantID)
}
