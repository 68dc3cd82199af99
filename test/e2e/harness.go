// Package e2e runs whole-system scenarios against the real HTTP server,
// worker pool, event stream, and a real PostgreSQL database. The only
// fakes are at the outer edges: a scripted LLM provider, an in-process
// Slack API, and an in-process Graph API for WhatsApp sends.
package e2e

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/interacai/flowcore/pkg/api"
	"github.com/interacai/flowcore/pkg/arbiter"
	"github.com/interacai/flowcore/pkg/channels"
	"github.com/interacai/flowcore/pkg/config"
	"github.com/interacai/flowcore/pkg/database"
	"github.com/interacai/flowcore/pkg/engine"
	"github.com/interacai/flowcore/pkg/events"
	"github.com/interacai/flowcore/pkg/llm"
	"github.com/interacai/flowcore/pkg/queue"
	"github.com/interacai/flowcore/pkg/scheduling"
	"github.com/interacai/flowcore/pkg/secrets"
	"github.com/interacai/flowcore/pkg/services"
	testdb "github.com/interacai/flowcore/test/database"
	"github.com/interacai/flowcore/test/util"
)

// TestApp is a fully wired application instance listening on a random
// local port, with its collaborators exposed for assertions.
type TestApp struct {
	t *testing.T

	Config   *config.Config
	DB       *database.Client
	LLM      *ScriptedLLMClient
	Warnings *services.SystemWarningsService

	Publisher   *events.EventPublisher
	ConnManager *events.ConnectionManager
	WorkerPool  *queue.WorkerPool
	Resolver    *arbiter.Resolver
	Server      *api.Server

	// WASender is set only when the app was built WithWhatsApp.
	WASender *channels.WhatsAppSender

	BaseURL string
	WSURL   string
}

type testAppParams struct {
	cfg           *config.Config
	llm           *ScriptedLLMClient
	db            *database.Client
	podID         string
	notifier      services.HandoffNotifier
	encryptionKey string
	withWhatsApp  bool
}

// TestAppOption customizes NewTestApp.
type TestAppOption func(*testAppParams)

// WithConfig replaces the default test configuration.
func WithConfig(cfg *config.Config) TestAppOption {
	return func(p *testAppParams) { p.cfg = cfg }
}

// WithLLMClient installs a scripted provider. Without it the app runs in
// demo mode: generation returns the canned demo text and extraction falls
// back to heuristics.
func WithLLMClient(client *ScriptedLLMClient) TestAppOption {
	return func(p *testAppParams) { p.llm = client }
}

// WithDBClient shares an existing database client instead of creating a
// fresh schema. Multi-replica tests point two apps at one schema.
func WithDBClient(db *database.Client) TestAppOption {
	return func(p *testAppParams) { p.db = db }
}

// WithPodID fixes the worker pool's pod identity.
func WithPodID(podID string) TestAppOption {
	return func(p *testAppParams) { p.podID = podID }
}

// WithWorkerCount overrides the pool size.
func WithWorkerCount(n int) TestAppOption {
	return func(p *testAppParams) { p.cfg.Queue.WorkerCount = n }
}

// WithHandoffNotifier wires a ticket-creation notifier (the Slack
// service in production).
func WithHandoffNotifier(n services.HandoffNotifier) TestAppOption {
	return func(p *testAppParams) { p.notifier = n }
}

// WithWhatsApp enables the WhatsApp sender with the given encryption key
// material. Point Config.Channels.WhatsApp.GraphBaseURL at a mock Graph
// server before driving sends.
func WithWhatsApp(encryptionKey string) TestAppOption {
	return func(p *testAppParams) {
		p.withWhatsApp = true
		p.encryptionKey = encryptionKey
	}
}

// defaultTestConfig is the production default config with the queue
// tightened so suspend/resume round-trips finish in test time.
func defaultTestConfig() *config.Config {
	cfg := &config.Config{
		Slack:     &config.SlackConfig{},
		Retention: config.DefaultRetentionConfig(),
		Queue:     config.DefaultQueueConfig(),
		LLM:       config.DefaultLLMConfig(),
		Channels:  config.DefaultChannelsConfig(),
		Security:  config.DefaultSecurityConfig(),
	}
	cfg.Queue.WorkerCount = 2
	cfg.Queue.PollInterval = 100 * time.Millisecond
	cfg.Queue.PollIntervalJitter = 50 * time.Millisecond
	cfg.Queue.TaskTimeout = 30 * time.Second
	cfg.Queue.GracefulShutdownTimeout = 10 * time.Second
	cfg.Queue.HeartbeatInterval = 1 * time.Second
	cfg.Queue.OrphanDetectionInterval = 2 * time.Second
	cfg.Queue.OrphanThreshold = 5 * time.Second
	return cfg
}

// NewTestApp wires the whole application the way main does and starts it
// on a random port. Everything is torn down on test cleanup in reverse
// start order.
func NewTestApp(t *testing.T, opts ...TestAppOption) *TestApp {
	t.Helper()
	ctx := context.Background()

	params := &testAppParams{cfg: defaultTestConfig()}
	for _, opt := range opts {
		opt(params)
	}
	if params.podID == "" {
		params.podID = "e2e-" + uuid.New().String()[:8]
	}
	cfg := params.cfg

	dbClient := params.db
	if dbClient == nil {
		dbClient = testdb.NewTestClient(t)
	}

	// Event stream: publisher, catch-up querier, connection manager, and
	// the NOTIFY listener on the base connection string (LISTEN/NOTIFY is
	// database-level, not schema-level).
	eventService := services.NewEventService(dbClient.Client)
	publisher := events.NewEventPublisher(dbClient.DB())
	connManager := events.NewConnectionManager(events.NewEventServiceAdapter(eventService), 5*time.Second)
	listener := events.NewNotifyListener(util.GetBaseConnectionString(t), connManager)
	if err := listener.Start(ctx); err != nil {
		t.Fatalf("failed to start notify listener: %v", err)
	}
	connManager.SetListener(listener)
	t.Cleanup(func() { listener.Stop(context.Background()) })

	// Channels.
	conversationService := services.NewConversationService(dbClient.Client)
	webSender := channels.NewWebSender(conversationService, publisher)

	var waSender *channels.WhatsAppSender
	if params.withWhatsApp {
		cipher, err := secrets.NewCipher(params.encryptionKey)
		if err != nil {
			t.Fatalf("failed to build cipher: %v", err)
		}
		waSender = channels.NewWhatsAppSender(dbClient.Client, cipher, cfg.Channels.WhatsApp, conversationService, publisher)
	}
	var registry *channels.Registry
	if waSender != nil {
		registry = channels.NewRegistry(webSender, waSender)
	} else {
		registry = channels.NewRegistry(webSender, nil)
	}

	// Domain services and the trigger arbiter.
	subscriptionService := services.NewSubscriptionService(dbClient.Client)
	workflowService := services.NewWorkflowService(dbClient.Client)
	executionService := services.NewExecutionService(dbClient.Client, workflowService, queue.NewEnqueuer(dbClient.Client))
	leadService := services.NewLeadService(dbClient.Client, nil)
	leadService.SetPublisher(publisher)
	ticketService := services.NewTicketService(dbClient.Client, params.notifier)
	crmService := services.NewCRMService(leadService, ticketService)
	settingsService := services.NewSettingsService(dbClient.Client)
	knowledgeService := services.NewKnowledgeService(dbClient.Client)
	promptLogService := services.NewPromptLogService(dbClient.Client)
	schedulingService := scheduling.NewService(dbClient.Client)

	resolver := arbiter.NewResolver(dbClient.Client, subscriptionService, workflowService, executionService)
	leadService.SetEventSink(resolver)

	// LLM gateway. A nil interface (not a typed-nil pointer) keeps the
	// gateway's demo-mode check working when no script is installed.
	var llmClient llm.Client
	if params.llm != nil {
		llmClient = params.llm
	}
	gateway := llm.NewGateway(llmClient, promptLogService)
	extractor := llm.NewExtractor(llmClient)

	// Node executor, dispatcher, worker pool.
	executor := engine.NewExecutor(engine.Deps{
		LLM:       gateway,
		Intel:     extractor,
		Persona:   settingsService,
		Sender:    registry,
		CRM:       crmService,
		Scheduler: schedulingService,
	})
	dispatcher := queue.NewDispatcher(dbClient.Client, workflowService, executor, publisher)
	workerPool := queue.NewWorkerPool(params.podID, dbClient.Client, cfg.Queue, dispatcher)
	if err := workerPool.Start(ctx); err != nil {
		t.Fatalf("failed to start worker pool: %v", err)
	}
	t.Cleanup(workerPool.Stop)

	warnings := services.NewSystemWarningsService()
	if params.llm == nil {
		// Mirror main: a missing provider is a visible degradation.
		warnings.AddWarning(services.WarningCategoryLLM,
			"LLM provider not configured, assistant replies are canned",
			"no scripted client installed", "openai")
	}

	server := api.NewServer(cfg, dbClient, api.Services{
		Conversations: conversationService,
		Leads:         leadService,
		Workflows:     workflowService,
		Executions:    executionService,
		Knowledge:     knowledgeService,
		Settings:      settingsService,
		Tickets:       ticketService,
		Scheduler:     schedulingService,
	}, resolver, gateway, workerPool, connManager)
	server.SetEventPublisher(publisher)
	server.SetWarningsService(warnings)
	if waSender != nil {
		server.SetWhatsAppSender(waSender)
	}

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}
	go func() {
		if err := server.StartWithListener(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			t.Logf("server exited: %v", err)
		}
	}()
	t.Cleanup(func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	})

	addr := ln.Addr().String()
	return &TestApp{
		t:           t,
		Config:      cfg,
		DB:          dbClient,
		LLM:         params.llm,
		Warnings:    warnings,
		Publisher:   publisher,
		ConnManager: connManager,
		WorkerPool:  workerPool,
		Resolver:    resolver,
		Server:      server,
		WASender:    waSender,
		BaseURL:     fmt.Sprintf("http://%s", addr),
		WSURL:       fmt.Sprintf("ws://%s/api/v1/ws", addr),
	}
}
