// Package api exposes the HTTP surface: channel ingress (web chat and
// WhatsApp webhooks), the dashboard control plane for workflows,
// executions, conversations, leads, scheduling, knowledge and settings,
// the live WebSocket event stream, and health.
package api

import (
	"context"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/interacai/flowcore/pkg/arbiter"
	"github.com/interacai/flowcore/pkg/channels"
	"github.com/interacai/flowcore/pkg/config"
	"github.com/interacai/flowcore/pkg/database"
	"github.com/interacai/flowcore/pkg/events"
	"github.com/interacai/flowcore/pkg/llm"
	"github.com/interacai/flowcore/pkg/queue"
	"github.com/interacai/flowcore/pkg/scheduling"
	"github.com/interacai/flowcore/pkg/services"
)

// Services groups the domain services the handlers call.
type Services struct {
	Conversations *services.ConversationService
	Leads         *services.LeadService
	Workflows     *services.WorkflowService
	Executions    *services.ExecutionService
	Knowledge     *services.KnowledgeService
	Settings      *services.SettingsService
	Tickets       *services.TicketService
	Scheduler     *scheduling.Service
}

// Server is the HTTP server. Construct with NewServer, wire optional
// collaborators with the setters, then Start.
type Server struct {
	cfg    *config.Config
	db     *database.Client
	svcs   Services
	engine *gin.Engine
	srv    *http.Server

	resolver    *arbiter.Resolver
	gateway     *llm.Gateway
	workerPool  *queue.WorkerPool
	connManager *events.ConnectionManager

	publisher      *events.EventPublisher
	waSender       *channels.WhatsAppSender
	warningService *services.SystemWarningsService
	dashboardDir   string
}

// NewServer creates the API server and registers all routes.
func NewServer(cfg *config.Config, db *database.Client, svcs Services, resolver *arbiter.Resolver, gateway *llm.Gateway, workerPool *queue.WorkerPool, connManager *events.ConnectionManager) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(requestLogger(), recovery(), securityHeaders(), corsMiddleware(corsOrigins(cfg)))

	s := &Server{
		cfg:         cfg,
		db:          db,
		svcs:        svcs,
		engine:      engine,
		resolver:    resolver,
		gateway:     gateway,
		workerPool:  workerPool,
		connManager: connManager,
	}
	s.srv = &http.Server{
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.routes()
	return s
}

// SetEventPublisher wires the live event publisher. Without it, inbound
// messages still persist but dashboards only see them by polling.
func (s *Server) SetEventPublisher(publisher *events.EventPublisher) {
	s.publisher = publisher
}

// SetWhatsAppSender wires the typed WhatsApp sender the webhook needs for
// tenant resolution and journal-free delivery.
func (s *Server) SetWhatsAppSender(sender *channels.WhatsAppSender) {
	s.waSender = sender
}

// SetWarningsService wires the degradation warnings surfaced to operators.
func (s *Server) SetWarningsService(warnings *services.SystemWarningsService) {
	s.warningService = warnings
}

// SetDashboardDir enables serving the dashboard SPA build from dir.
// Must be called before Start.
func (s *Server) SetDashboardDir(dir string) {
	s.dashboardDir = dir
	s.setupDashboardRoutes()
}

func (s *Server) routes() {
	// Health stays outside /api/v1 for orchestrator probes; the alias
	// under the API prefix serves the dashboard.
	s.engine.GET("/health", s.healthHandler)

	v1 := s.engine.Group("/api/v1")
	v1.GET("/health", s.healthHandler)

	// Ingress routes resolve tenancy from the request itself: the chat
	// body for web, the phone number id for WhatsApp, the subscribed
	// channel names for WebSocket streams.
	v1.POST("/chat", s.chatHandler)
	v1.GET("/webhooks/whatsapp", s.whatsappVerifyHandler)
	v1.POST("/webhooks/whatsapp", s.whatsappWebhookHandler)
	v1.GET("/ws", s.wsHandler)

	// Platform-level operator surface, not tenant scoped.
	v1.GET("/system/warnings", s.systemWarningsHandler)

	// Dashboard routes are tenant scoped through the header middleware.
	t := v1.Group("", tenantRequired())

	t.POST("/workflows", s.createWorkflowHandler)
	t.GET("/workflows", s.listWorkflowsHandler)
	t.GET("/workflows/:id", s.getWorkflowHandler)
	t.PATCH("/workflows/:id", s.updateWorkflowHandler)
	t.DELETE("/workflows/:id", s.deleteWorkflowHandler)
	t.POST("/workflows/:id/trigger", s.triggerWorkflowHandler)

	t.GET("/executions", s.listExecutionsHandler)
	t.GET("/executions/:id", s.getExecutionHandler)

	t.GET("/conversations", s.listConversationsHandler)
	t.GET("/conversations/:id/messages", s.listMessagesHandler)
	t.POST("/conversations/:id/read", s.markReadHandler)

	t.GET("/leads", s.listLeadsHandler)
	t.POST("/leads", s.createLeadHandler)
	t.PATCH("/leads/:id", s.updateLeadHandler)
	t.GET("/leads/:id/activities", s.listLeadActivitiesHandler)

	t.GET("/appointments/slots", s.availableSlotsHandler)
	t.POST("/appointments", s.bookAppointmentHandler)
	t.GET("/appointments", s.listAppointmentsHandler)
	t.PATCH("/appointments/:id", s.updateAppointmentHandler)
	t.POST("/appointment-types", s.createAppointmentTypeHandler)
	t.GET("/appointment-types", s.listAppointmentTypesHandler)
	t.POST("/availability-rules", s.createAvailabilityRuleHandler)
	t.GET("/availability-rules", s.listAvailabilityRulesHandler)

	t.POST("/knowledge", s.createKnowledgeDocHandler)
	t.GET("/knowledge", s.listKnowledgeDocsHandler)
	t.DELETE("/knowledge/:id", s.deleteKnowledgeDocHandler)

	t.GET("/settings", s.getSettingsHandler)
	t.PUT("/settings", s.updateSettingsHandler)

	t.GET("/tickets", s.listTicketsHandler)
	t.POST("/tickets", s.createTicketHandler)
	t.PATCH("/tickets/:id", s.updateTicketHandler)
}

// setupDashboardRoutes serves the SPA build: real files directly, every
// unknown non-API GET falls back to index.html so client-side routing
// works on hard reloads. Skipped when no build is present.
func (s *Server) setupDashboardRoutes() {
	if s.dashboardDir == "" {
		return
	}
	index := filepath.Join(s.dashboardDir, "index.html")
	if _, err := os.Stat(index); err != nil {
		return
	}

	s.engine.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		// Unknown API paths stay 404s, never the SPA shell.
		if c.Request.Method != http.MethodGet || strings.HasPrefix(path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}

		p := filepath.Join(s.dashboardDir, filepath.Clean("/"+path))
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			// Hashed Vite bundles can cache forever; everything else
			// revalidates so deploys take effect.
			if strings.HasPrefix(path, "/assets/") {
				c.Header("Cache-Control", "public, max-age=31536000, immutable")
			} else {
				c.Header("Cache-Control", "no-cache")
			}
			c.File(p)
			return
		}

		c.Header("Cache-Control", "no-cache")
		c.File(index)
	})
}

// Start begins serving on addr and blocks until the server stops.
func (s *Server) Start(addr string) error {
	s.srv.Addr = addr
	return s.srv.ListenAndServe()
}

// StartWithListener serves on an existing listener. Tests use it to bind
// a random port before the server goroutine races the first request.
func (s *Server) StartWithListener(ln net.Listener) error {
	return s.srv.Serve(ln)
}

// Shutdown stops accepting connections and waits for in-flight requests
// up to the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// corsOrigins collects the exact browser origins the dashboard may call
// from. Localhost variants are always allowed by the middleware itself.
func corsOrigins(cfg *config.Config) []string {
	if cfg == nil || cfg.DashboardURL == "" {
		return nil
	}
	return []string{cfg.DashboardURL}
}
