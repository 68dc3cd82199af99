package api

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newDashboardTestServer creates a minimal Server with dummy API and
// health routes, mimicking the real registration order (API routes
// first, then dashboard routes via SetDashboardDir).
func newDashboardTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	e := gin.New()
	s := &Server{engine: e}

	e.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	e.GET("/api/v1/test", func(c *gin.Context) {
		c.String(http.StatusOK, "api-response")
	})
	return s
}

// writeDashboardFiles creates a temp directory with the given files and
// returns the directory path.
func writeDashboardFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	return dir
}

func TestSetupDashboardRoutes(t *testing.T) {
	t.Run("no dashboard dir means no SPA fallback", func(t *testing.T) {
		s := newDashboardTestServer(t)
		s.setupDashboardRoutes()

		rec := httptest.NewRecorder()
		s.engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEqual(t, http.StatusOK, rec.Code)
	})

	t.Run("dashboard dir without index.html skips registration", func(t *testing.T) {
		s := newDashboardTestServer(t)
		s.dashboardDir = t.TempDir()
		s.setupDashboardRoutes()

		rec := httptest.NewRecorder()
		s.engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEqual(t, http.StatusOK, rec.Code)
	})

	t.Run("SPA fallback serves index.html for unknown paths", func(t *testing.T) {
		dir := writeDashboardFiles(t, map[string]string{
			"index.html": "<html><body>dashboard</body></html>",
		})
		s := newDashboardTestServer(t)
		s.dashboardDir = dir
		s.setupDashboardRoutes()

		tests := []struct {
			name string
			path string
		}{
			{name: "root", path: "/"},
			{name: "nested SPA route", path: "/conversations/abc"},
			{name: "deep SPA route", path: "/workflows/abc/builder"},
			{name: "leads page", path: "/leads"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				rec := httptest.NewRecorder()
				s.engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Contains(t, rec.Body.String(), "dashboard")
				assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"),
					"SPA fallback should set no-cache so browsers pick up new asset hashes after deployments")
			})
		}
	})

	t.Run("serves exact file when it exists on disk", func(t *testing.T) {
		dir := writeDashboardFiles(t, map[string]string{
			"index.html": "<html>index</html>",
			"robots.txt": "User-agent: *",
		})
		s := newDashboardTestServer(t)
		s.dashboardDir = dir
		s.setupDashboardRoutes()

		rec := httptest.NewRecorder()
		s.engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/robots.txt", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "User-agent")
		assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"),
			"unhashed root files should use no-cache")
	})

	t.Run("serves Vite assets with immutable cache", func(t *testing.T) {
		dir := writeDashboardFiles(t, map[string]string{
			"index.html":        "<html>index</html>",
			"assets/app-abc.js": "console.log('app')",
		})
		s := newDashboardTestServer(t)
		s.dashboardDir = dir
		s.setupDashboardRoutes()

		rec := httptest.NewRecorder()
		s.engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/app-abc.js", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "console.log")
		assert.Equal(t, "public, max-age=31536000, immutable", rec.Header().Get("Cache-Control"),
			"hashed Vite assets should have aggressive cache headers")
	})

	t.Run("API routes take priority over SPA fallback", func(t *testing.T) {
		dir := writeDashboardFiles(t, map[string]string{
			"index.html": "<html>index</html>",
		})
		s := newDashboardTestServer(t)
		s.dashboardDir = dir
		s.setupDashboardRoutes()

		rec := httptest.NewRecorder()
		s.engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/test", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "api-response", rec.Body.String())
	})

	t.Run("unregistered API path returns 404 not index.html", func(t *testing.T) {
		dir := writeDashboardFiles(t, map[string]string{
			"index.html": "<html>index</html>",
		})
		s := newDashboardTestServer(t)
		s.dashboardDir = dir
		s.setupDashboardRoutes()

		rec := httptest.NewRecorder()
		s.engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/nonexistent", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.NotContains(t, rec.Body.String(), "index")
	})

	t.Run("non-GET methods are not served the SPA shell", func(t *testing.T) {
		dir := writeDashboardFiles(t, map[string]string{
			"index.html": "<html>index</html>",
		})
		s := newDashboardTestServer(t)
		s.dashboardDir = dir
		s.setupDashboardRoutes()

		rec := httptest.NewRecorder()
		s.engine.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/leads", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("health route is not intercepted by SPA fallback", func(t *testing.T) {
		dir := writeDashboardFiles(t, map[string]string{
			"index.html": "<html>index</html>",
		})
		s := newDashboardTestServer(t)
		s.dashboardDir = dir
		s.setupDashboardRoutes()

		rec := httptest.NewRecorder()
		s.engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ok", rec.Body.String())
	})
}

func TestSetDashboardDir(t *testing.T) {
	t.Run("registers routes when called with valid dir", func(t *testing.T) {
		dir := writeDashboardFiles(t, map[string]string{
			"index.html": "<html>spa</html>",
		})
		s := newDashboardTestServer(t)
		s.SetDashboardDir(dir)

		rec := httptest.NewRecorder()
		s.engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/some-page", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "spa")
	})

	t.Run("empty dir is a no-op", func(t *testing.T) {
		s := newDashboardTestServer(t)
		s.SetDashboardDir("")

		rec := httptest.NewRecorder()
		s.engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.NotEqual(t, http.StatusOK, rec.Code)
	})
}
