package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interacai/flowcore/ent"
	"github.com/interacai/flowcore/ent/execution"
	"github.com/interacai/flowcore/ent/lead"
	"github.com/interacai/flowcore/ent/message"
	"github.com/interacai/flowcore/ent/tenant"
	"github.com/interacai/flowcore/pkg/database"
	"github.com/interacai/flowcore/pkg/services"
	testdb "github.com/interacai/flowcore/test/database"
	"github.com/interacai/flowcore/test/util"
)

// streamingTestEnv holds all wired-up components for an integration test.
type streamingTestEnv struct {
	dbClient      *database.Client
	publisher     *EventPublisher
	eventService  *services.EventService
	conversations *services.ConversationService
	manager       *ConnectionManager
	listener      *NotifyListener
	server        *httptest.Server
	tenantID      string
	participant   string
	channel       string // conversation:<tenant>:<participant>
}

// setupStreamingTest wires all real components together against a real
// PostgreSQL database (testcontainers locally, service container in CI).
func setupStreamingTest(t *testing.T) *streamingTestEnv {
	t.Helper()

	dbClient := testdb.NewTestClient(t)
	ctx := context.Background()

	// Conversations carry an FK to their tenant
	tenantID := uuid.New().String()
	_, err := dbClient.Tenant.Create().
		SetID(tenantID).
		SetName("Streaming Test Co").
		SetSubscriptionStatus(tenant.SubscriptionStatusActive).
		Save(ctx)
	require.NoError(t, err)

	participant := "+15550001111"
	channel := ConversationChannel(services.ConversationID(tenantID, participant))

	// Real components
	publisher := NewEventPublisher(dbClient.DB())
	eventService := services.NewEventService(dbClient.Client)
	catchupQuerier := NewEventServiceAdapter(eventService)
	manager := NewConnectionManager(catchupQuerier, 5*time.Second)

	// NotifyListener needs the base connection string (no schema search_path)
	// because NOTIFY/LISTEN is database-level, not schema-level.
	baseConnStr := util.GetBaseConnectionString(t)
	listener := NewNotifyListener(baseConnStr, manager)
	require.NoError(t, listener.Start(ctx))
	manager.SetListener(listener)

	t.Cleanup(func() { listener.Stop(context.Background()) })

	// httptest server with WebSocket upgrade
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		manager.HandleConnection(r.Context(), conn)
	}))
	t.Cleanup(func() { server.Close() })

	return &streamingTestEnv{
		dbClient:      dbClient,
		publisher:     publisher,
		eventService:  eventService,
		conversations: services.NewConversationService(dbClient.Client),
		manager:       manager,
		listener:      listener,
		server:        server,
		tenantID:      tenantID,
		participant:   participant,
		channel:       channel,
	}
}

// storeMessage journals a message on the env's conversation through the
// real ConversationService, creating the thread on first contact.
func (env *streamingTestEnv) storeMessage(t *testing.T, sender, body string) *ent.Message {
	t.Helper()
	msg, err := env.conversations.StoreMessage(context.Background(), services.StoreMessageInput{
		TenantID:    env.tenantID,
		Participant: env.participant,
		Channel:     string(message.ChannelWhatsapp),
		Sender:      sender,
		Body:        body,
	})
	require.NoError(t, err)
	return msg
}

// connectWS opens a WebSocket to the test server and returns the
// connection. The connection is automatically closed on test cleanup.
func (env *streamingTestEnv) connectWS(t *testing.T) *websocket.Conn {
	t.Helper()
	url := "ws" + env.server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

// readJSONTimeout reads a JSON message from the WebSocket with a timeout.
func readJSONTimeout(t *testing.T, conn *websocket.Conn, timeout time.Duration) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

// subscribeAndWait connects a WebSocket, reads connection.established,
// subscribes to the given channel, reads subscription.confirmed, and
// waits for the LISTEN to propagate on the dedicated PG connection.
func (env *streamingTestEnv) subscribeAndWait(t *testing.T, channel string) *websocket.Conn {
	t.Helper()
	conn := env.connectWS(t)

	// Read connection.established
	msg := readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "connection.established", msg["type"])

	// Subscribe
	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: channel})
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(writeCtx, websocket.MessageText, subMsg))

	// Read subscription.confirmed
	msg = readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "subscription.confirmed", msg["type"])

	require.Eventually(t, func() bool {
		return env.listener.isListening(channel)
	}, 2*time.Second, 10*time.Millisecond, "LISTEN did not propagate for channel %s", channel)

	return conn
}

// --- Tests ---

func TestIntegration_PublisherPersistsAndNotifies(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Journal a user message and the assistant reply, publishing each
	msg1 := env.storeMessage(t, "user", "do you deliver on sundays?")
	require.NoError(t, env.publisher.PublishMessageCreated(ctx, msg1))

	msg2 := env.storeMessage(t, "assistant", "Yes, between 10am and 4pm.")
	require.NoError(t, env.publisher.PublishMessageCreated(ctx, msg2))

	// Query persisted events via EventService
	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Verify order and content
	assert.Equal(t, env.channel, events[0].Channel)
	assert.Equal(t, EventTypeMessageCreated, events[0].Payload["type"])
	assert.Equal(t, "do you deliver on sundays?", events[0].Payload["body"])
	assert.Equal(t, "user", events[0].Payload["sender"])

	assert.Equal(t, EventTypeMessageCreated, events[1].Payload["type"])
	assert.Equal(t, "Yes, between 10am and 4pm.", events[1].Payload["body"])
	assert.Equal(t, "assistant", events[1].Payload["sender"])

	// IDs should be incrementing
	assert.Greater(t, events[1].ID, events[0].ID)
}

func TestIntegration_TenantCopiesNotPersisted(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Publishing a message persists on the conversation channel; the
	// tenant channel only gets a transient copy for list refreshes.
	msg := env.storeMessage(t, "user", "hello")
	require.NoError(t, env.publisher.PublishMessageCreated(ctx, msg))

	convEvents, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	assert.Len(t, convEvents, 1)

	tenantEvents, err := env.eventService.GetEventsSince(ctx, TenantChannel(env.tenantID), 0, 100)
	require.NoError(t, err)
	assert.Empty(t, tenantEvents, "tenant channel copies should not be persisted")
}

func TestIntegration_ExecutionStatusPersistence(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	t.Run("conversation-triggered run persists on its thread", func(t *testing.T) {
		exec := &ent.Execution{
			ID:         uuid.New().String(),
			WorkflowID: "wf-1",
			TenantID:   env.tenantID,
			Context: map[string]interface{}{
				"trigger": map[string]any{"participant": env.participant},
			},
		}
		require.NoError(t, env.publisher.PublishExecutionStatus(ctx, exec, execution.StatusRunning))

		events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeExecutionStatus, events[0].Payload["type"])
		assert.Equal(t, "running", events[0].Payload["status"])
		assert.Equal(t, exec.ID, events[0].Payload["execution_id"])
	})

	t.Run("manual run has no thread to persist on", func(t *testing.T) {
		exec := &ent.Execution{
			ID:         uuid.New().String(),
			WorkflowID: "wf-1",
			TenantID:   env.tenantID,
			Context: map[string]interface{}{
				"trigger": map[string]any{"type": "manual"},
			},
		}
		require.NoError(t, env.publisher.PublishExecutionStatus(ctx, exec, execution.StatusCompleted))

		// Still only the earlier conversation-triggered event on the thread,
		// and nothing persisted for the tenant channel's transient copy.
		events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
		require.NoError(t, err)
		assert.Len(t, events, 1)

		tenantEvents, err := env.eventService.GetEventsSince(ctx, TenantChannel(env.tenantID), 0, 100)
		require.NoError(t, err)
		assert.Empty(t, tenantEvents)
	})
}

func TestIntegration_EndToEnd_PublishToWebSocket(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Connect, subscribe, and wait for LISTEN to propagate
	conn := env.subscribeAndWait(t, env.channel)

	// Journal and publish a message
	msg := env.storeMessage(t, "user", "hello from publisher")
	require.NoError(t, env.publisher.PublishMessageCreated(ctx, msg))

	// Read from WebSocket — the event should arrive via pg_notify → listener → manager
	wsMsg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeMessageCreated, wsMsg["type"])
	assert.Equal(t, "hello from publisher", wsMsg["body"])
	assert.Equal(t, services.ConversationID(env.tenantID, env.participant), wsMsg["conversation_id"])
	// db_event_id should be present (added by persistAndNotify after INSERT)
	assert.NotNil(t, wsMsg["db_event_id"])
}

func TestIntegration_TenantChannelDelivery(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// A dashboard list page subscribes to the tenant channel only
	conn := env.subscribeAndWait(t, TenantChannel(env.tenantID))

	// The transient message copy arrives without a db_event_id
	msg := env.storeMessage(t, "user", "new inbox activity")
	require.NoError(t, env.publisher.PublishMessageCreated(ctx, msg))

	wsMsg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeMessageCreated, wsMsg["type"])
	assert.Equal(t, "new inbox activity", wsMsg["body"])
	assert.Nil(t, wsMsg["db_event_id"], "tenant copy is transient")

	// Lead events persist on the tenant channel and carry a db_event_id
	ld := &ent.Lead{
		ID:       uuid.New().String(),
		TenantID: env.tenantID,
		Name:     "Ana Souza",
		Status:   lead.StatusNew,
	}
	require.NoError(t, env.publisher.PublishLeadCaptured(ctx, ld))

	wsMsg = readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeLeadCaptured, wsMsg["type"])
	assert.Equal(t, "Ana Souza", wsMsg["name"])
	assert.NotNil(t, wsMsg["db_event_id"])

	tenantEvents, err := env.eventService.GetEventsSince(ctx, TenantChannel(env.tenantID), 0, 100)
	require.NoError(t, err)
	require.Len(t, tenantEvents, 1)
	assert.Equal(t, EventTypeLeadCaptured, tenantEvents[0].Payload["type"])
}

func TestIntegration_CatchupFromRealDB(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Pre-populate the thread with 3 persisted events
	bodies := []string{"first", "second", "third"}
	for _, body := range bodies {
		msg := env.storeMessage(t, "user", body)
		require.NoError(t, env.publisher.PublishMessageCreated(ctx, msg))
	}

	// Verify events exist in DB
	allEvents, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, allEvents, 3)
	firstEventID := allEvents[0].ID

	// Connect a NEW WebSocket client (simulates reconnection)
	conn := env.connectWS(t)
	msg := readJSONTimeout(t, conn, 5*time.Second) // connection.established
	require.Equal(t, "connection.established", msg["type"])

	// Subscribe — auto-catchup delivers all 3 prior events immediately
	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: env.channel})
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(writeCtx, websocket.MessageText, subMsg))
	msg = readJSONTimeout(t, conn, 5*time.Second) // subscription.confirmed
	require.Equal(t, "subscription.confirmed", msg["type"])

	// Read all 3 auto-catchup events in order
	for _, body := range bodies {
		msg = readJSONTimeout(t, conn, 5*time.Second)
		assert.Equal(t, EventTypeMessageCreated, msg["type"])
		assert.Equal(t, body, msg["body"])
		assert.NotNil(t, msg["db_event_id"])
	}

	// Explicit catchup from the first event's ID — should return only events 2 and 3
	catchupFrom := firstEventID
	catchupMsg, _ := json.Marshal(ClientMessage{
		Action:      "catchup",
		Channel:     env.channel,
		LastEventID: &catchupFrom,
	})
	writeCtx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	require.NoError(t, conn.Write(writeCtx2, websocket.MessageText, catchupMsg))

	for _, body := range bodies[1:] {
		msg = readJSONTimeout(t, conn, 5*time.Second)
		assert.Equal(t, body, msg["body"])
	}

	// No more messages — verify with short timeout
	readCtx, readCancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer readCancel()
	_, _, err = conn.Read(readCtx)
	assert.Error(t, err, "should not receive more messages after catchup")
}
