// Flowcore server — provides the HTTP API, manages queue workers, and
// runs workflow executions.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/interacai/flowcore/pkg/api"
	"github.com/interacai/flowcore/pkg/arbiter"
	"github.com/interacai/flowcore/pkg/channels"
	"github.com/interacai/flowcore/pkg/config"
	"github.com/interacai/flowcore/pkg/database"
	"github.com/interacai/flowcore/pkg/engine"
	"github.com/interacai/flowcore/pkg/events"
	"github.com/interacai/flowcore/pkg/llm"
	"github.com/interacai/flowcore/pkg/queue"
	"github.com/interacai/flowcore/pkg/retention"
	"github.com/interacai/flowcore/pkg/scheduling"
	"github.com/interacai/flowcore/pkg/secrets"
	"github.com/interacai/flowcore/pkg/services"
	"github.com/interacai/flowcore/pkg/slack"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseLogLevel maps a LOG_LEVEL value to a slog level, defaulting to
// Info on anything unrecognized.
func parseLogLevel(value string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	// Parse command-line flags
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	// Structured JSON logs; LOG_LEVEL may come from the .env just loaded.
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(getEnv("LOG_LEVEL", "info")),
	})))

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting flowcore",
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database (runs migrations)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. One-time startup orphan cleanup
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal — continue
	}

	// 4. Streaming infrastructure. Built early because nearly every
	// service publishes through it.
	eventService := services.NewEventService(dbClient.Client)
	eventPublisher := events.NewEventPublisher(dbClient.DB())
	catchupQuerier := events.NewEventServiceAdapter(eventService)
	connManager := events.NewConnectionManager(catchupQuerier, 10*time.Second)

	notifyListener := events.NewNotifyListener(dbConfig.DSN(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)

	connManager.SetListener(notifyListener)
	slog.Info("Streaming infrastructure initialized")

	// 5. Credential cipher and outbound channels. Without an encryption
	// key the WhatsApp channel stays off: stored tokens could never be
	// decrypted, and web delivery needs no credentials.
	warningsService := services.NewSystemWarningsService()
	conversationService := services.NewConversationService(dbClient.Client)
	webSender := channels.NewWebSender(conversationService, eventPublisher)

	var waSender *channels.WhatsAppSender
	if key := os.Getenv(cfg.Security.EncryptionKeyEnv); key != "" {
		cipher, cipherErr := secrets.NewCipher(key)
		if cipherErr != nil {
			slog.Error("Failed to initialize credential cipher", "error", cipherErr)
			os.Exit(1)
		}
		waSender = channels.NewWhatsAppSender(dbClient.Client, cipher, cfg.Channels.WhatsApp, conversationService, eventPublisher)
		slog.Info("WhatsApp channel enabled")
	} else {
		slog.Warn("WhatsApp channel disabled, encryption key not set",
			"env", cfg.Security.EncryptionKeyEnv)
		warningsService.AddWarning(services.WarningCategoryChannel,
			"WhatsApp channel disabled",
			cfg.Security.EncryptionKeyEnv+" is not set, stored credentials cannot be decrypted",
			"whatsapp")
	}

	var registry *channels.Registry
	if waSender != nil {
		registry = channels.NewRegistry(webSender, waSender)
	} else {
		registry = channels.NewRegistry(webSender, nil)
	}

	// 6. Domain services
	subscriptionService := services.NewSubscriptionService(dbClient.Client)
	workflowService := services.NewWorkflowService(dbClient.Client)
	enqueuer := queue.NewEnqueuer(dbClient.Client)
	executionService := services.NewExecutionService(dbClient.Client, workflowService, enqueuer)

	var handoffNotifier services.HandoffNotifier
	if cfg.Slack != nil && cfg.Slack.Enabled {
		slackSvc := slack.NewService(slack.ServiceConfig{
			Token:        os.Getenv(cfg.Slack.TokenEnv),
			Channel:      cfg.Slack.Channel,
			DashboardURL: cfg.DashboardURL,
		})
		if slackSvc != nil {
			handoffNotifier = slackSvc
			slog.Info("Slack handoff notifications enabled", "channel", cfg.Slack.Channel)
		} else {
			slog.Warn("Slack enabled in config but token or channel missing")
			warningsService.AddWarning(services.WarningCategoryHandoff,
				"Slack handoff notifications disabled",
				"slack is enabled in config but the bot token or channel is missing",
				"slack")
		}
	}

	leadService := services.NewLeadService(dbClient.Client, nil)
	leadService.SetPublisher(eventPublisher)
	ticketService := services.NewTicketService(dbClient.Client, handoffNotifier)
	crmService := services.NewCRMService(leadService, ticketService)
	settingsService := services.NewSettingsService(dbClient.Client)
	knowledgeService := services.NewKnowledgeService(dbClient.Client)
	promptLogService := services.NewPromptLogService(dbClient.Client)
	schedulingService := scheduling.NewService(dbClient.Client)

	// The resolver consumes lead status changes as trigger events, and
	// the lead service it depends on must exist first, hence the setter.
	resolver := arbiter.NewResolver(dbClient.Client, subscriptionService, workflowService, executionService)
	leadService.SetEventSink(resolver)
	slog.Info("Services initialized")

	// 7. LLM gateway. A missing API key degrades to demo replies rather
	// than failing startup, so the platform runs without a provider.
	var llmClient llm.Client
	openAIClient, err := llm.NewOpenAIClient(*cfg.LLM)
	if err != nil {
		slog.Warn("LLM provider not configured, running in demo mode", "error", err)
		warningsService.AddWarning(services.WarningCategoryLLM,
			"LLM provider not configured, assistant replies are canned",
			err.Error(),
			"openai")
	} else {
		llmClient = openAIClient
	}
	gateway := llm.NewGateway(llmClient, promptLogService)
	extractor := llm.NewExtractor(llmClient)

	// 8. Node executor, dispatcher, worker pool
	executor := engine.NewExecutor(engine.Deps{
		LLM:       gateway,
		Intel:     extractor,
		Persona:   settingsService,
		Sender:    registry,
		CRM:       crmService,
		Scheduler: schedulingService,
	})
	dispatcher := queue.NewDispatcher(dbClient.Client, workflowService, executor, eventPublisher)

	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, dispatcher)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 9. Retention sweep loop
	retentionService := retention.NewService(cfg.Retention, subscriptionService, eventService)
	retentionService.Start(ctx)

	// 10. HTTP server
	httpServer := api.NewServer(cfg, dbClient, api.Services{
		Conversations: conversationService,
		Leads:         leadService,
		Workflows:     workflowService,
		Executions:    executionService,
		Knowledge:     knowledgeService,
		Settings:      settingsService,
		Tickets:       ticketService,
		Scheduler:     schedulingService,
	}, resolver, gateway, workerPool, connManager)
	httpServer.SetEventPublisher(eventPublisher)
	httpServer.SetWarningsService(warningsService)
	if waSender != nil {
		httpServer.SetWhatsAppSender(waSender)
	}
	if dashboardDir := getEnv("DASHBOARD_DIST_DIR", ""); dashboardDir != "" {
		httpServer.SetDashboardDir(dashboardDir)
	}

	// 11. Start HTTP server (non-blocking)
	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Flowcore started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 12. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 13. Graceful shutdown: retention sweeper first (quick), then the
	// worker pool drains in-flight step tasks, then the HTTP listener.
	retentionService.Stop()

	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — incomplete tasks will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
