package api

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
)

// wsHandler upgrades GET /api/v1/ws to a WebSocket and hands the
// connection to the manager, which blocks until the socket closes.
// Tenancy comes from the channels the client subscribes to, not from a
// header, so the route sits outside the tenant middleware.
func (s *Server) wsHandler(c *gin.Context) {
	if s.connManager == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "event stream not available"})
		return
	}

	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		OriginPatterns: s.wsOriginPatterns(),
	})
	if err != nil {
		// Accept already wrote the handshake rejection.
		slog.Debug("WebSocket accept rejected", "error", err)
		return
	}

	s.connManager.HandleConnection(c.Request.Context(), conn)
}

// wsOriginPatterns builds the allowed Origin host patterns: localhost
// variants for development, the dashboard's host, and any extra patterns
// from config.
func (s *Server) wsOriginPatterns() []string {
	patterns := []string{"localhost", "localhost:*", "127.0.0.1", "127.0.0.1:*"}
	if s.cfg == nil {
		return patterns
	}
	if s.cfg.DashboardURL != "" {
		if u, err := url.Parse(s.cfg.DashboardURL); err == nil && u.Host != "" {
			patterns = append(patterns, u.Host)
		}
	}
	return append(patterns, s.cfg.AllowedWSOrigins...)
}
