package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/interacai/flowcore/ent"
	"github.com/interacai/flowcore/ent/appointment"
	entexec "github.com/interacai/flowcore/ent/execution"
	"github.com/interacai/flowcore/ent/executionstep"
	"github.com/interacai/flowcore/ent/lead"
	"github.com/interacai/flowcore/ent/message"
	"github.com/interacai/flowcore/ent/tenant"
	"github.com/interacai/flowcore/ent/ticket"
	"github.com/interacai/flowcore/pkg/models"
	"github.com/interacai/flowcore/pkg/services"
)

// Async scenarios poll the database rather than sleeping; these bounds
// cover a slow CI box without stretching the happy path.
const (
	waitTimeout  = 30 * time.Second
	waitInterval = 100 * time.Millisecond
)

// ────────────────────────────────────────────────────────────
// HTTP plumbing
// ────────────────────────────────────────────────────────────

// doJSON performs one API request and decodes the JSON response body.
// tenantID is sent as the tenancy header when non-empty; ingress routes
// resolve tenancy from the body instead and pass "".
func (app *TestApp) doJSON(t *testing.T, method, path, tenantID string, body any, expectedStatus int) map[string]any {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, app.BaseURL+path, reqBody)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tenantID != "" {
		req.Header.Set("X-Tenant-ID", tenantID)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, expectedStatus, resp.StatusCode,
		"%s %s returned %d, body: %s", method, path, resp.StatusCode, raw)

	if len(raw) == 0 {
		return nil
	}
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded), "response body: %s", raw)
	return decoded
}

func (app *TestApp) postJSON(t *testing.T, path, tenantID string, body any, expectedStatus int) map[string]any {
	t.Helper()
	return app.doJSON(t, http.MethodPost, path, tenantID, body, expectedStatus)
}

func (app *TestApp) getJSON(t *testing.T, path, tenantID string, expectedStatus int) map[string]any {
	t.Helper()
	return app.doJSON(t, http.MethodGet, path, tenantID, nil, expectedStatus)
}

func (app *TestApp) patchJSON(t *testing.T, path, tenantID string, body any, expectedStatus int) map[string]any {
	t.Helper()
	return app.doJSON(t, http.MethodPatch, path, tenantID, body, expectedStatus)
}

// ────────────────────────────────────────────────────────────
// Seeding
// ────────────────────────────────────────────────────────────

// CreateTenant inserts an active tenant and returns its id.
func (app *TestApp) CreateTenant(t *testing.T, name string) string {
	t.Helper()
	return app.CreateTenantWithStatus(t, name, tenant.SubscriptionStatusActive)
}

// CreateTenantWithStatus inserts a tenant in the given subscription state.
func (app *TestApp) CreateTenantWithStatus(t *testing.T, name string, status tenant.SubscriptionStatus) string {
	t.Helper()
	id := uuid.New().String()
	_, err := app.DB.Tenant.Create().
		SetID(id).
		SetName(name).
		SetSubscriptionStatus(status).
		Save(context.Background())
	require.NoError(t, err)
	return id
}

// CreateWorkflow creates a workflow through the API and returns its id.
func (app *TestApp) CreateWorkflow(t *testing.T, tenantID string, req models.CreateWorkflowRequest) string {
	t.Helper()
	resp := app.postJSON(t, "/api/v1/workflows", tenantID, req, http.StatusCreated)
	id, _ := resp["id"].(string)
	require.NotEmpty(t, id, "workflow create response: %v", resp)
	return id
}

// ────────────────────────────────────────────────────────────
// Scenario actions
// ────────────────────────────────────────────────────────────

// SendChat posts one web chat message and returns the decoded response.
func (app *TestApp) SendChat(t *testing.T, tenantID, userID, text string) map[string]any {
	t.Helper()
	return app.postJSON(t, "/api/v1/chat", "", models.ChatRequest{
		TenantID: tenantID,
		UserID:   userID,
		Message:  text,
	}, http.StatusOK)
}

// TriggerWorkflow starts one execution through the manual trigger route
// and returns the execution id.
func (app *TestApp) TriggerWorkflow(t *testing.T, tenantID, workflowID string, data map[string]any) string {
	t.Helper()
	var body any
	if data != nil {
		body = map[string]any{"data": data}
	}
	resp := app.postJSON(t, "/api/v1/workflows/"+workflowID+"/trigger", tenantID, body, http.StatusAccepted)
	id, _ := resp["execution_id"].(string)
	require.NotEmpty(t, id, "trigger response: %v", resp)
	return id
}

// executionIDs pulls the claiming execution ids out of a chat response.
func executionIDs(t *testing.T, chatResp map[string]any) []string {
	t.Helper()
	raw, ok := chatResp["execution_ids"].([]any)
	require.True(t, ok, "chat response has no execution_ids: %v", chatResp)
	ids := make([]string, 0, len(raw))
	for _, v := range raw {
		ids = append(ids, v.(string))
	}
	return ids
}

// ────────────────────────────────────────────────────────────
// Database polling and queries
// ────────────────────────────────────────────────────────────

// WaitForExecutionStatus polls until the execution reaches the given
// status. Settling in a different terminal status stops the wait early so
// a failed run surfaces immediately instead of timing out.
func (app *TestApp) WaitForExecutionStatus(t *testing.T, executionID string, status entexec.Status) {
	t.Helper()
	ctx := context.Background()
	var last entexec.Status
	var lastErr string
	require.Eventually(t, func() bool {
		exec, err := app.DB.Execution.Get(ctx, executionID)
		if err != nil {
			return false
		}
		last = exec.Status
		if exec.ErrorMessage != nil {
			lastErr = *exec.ErrorMessage
		}
		return last == status || last == entexec.StatusCompleted || last == entexec.StatusFailed
	}, waitTimeout, waitInterval, "execution %s never reached %q", executionID, status)
	require.Equalf(t, status, last, "execution %s settled in %q (error: %s)", executionID, last, lastErr)
}

// GetExecution loads an execution row.
func (app *TestApp) GetExecution(t *testing.T, executionID string) *ent.Execution {
	t.Helper()
	exec, err := app.DB.Execution.Get(context.Background(), executionID)
	require.NoError(t, err)
	return exec
}

// CountExecutions returns how many executions a tenant has.
func (app *TestApp) CountExecutions(t *testing.T, tenantID string) int {
	t.Helper()
	n, err := app.DB.Execution.Query().
		Where(entexec.TenantID(tenantID)).
		Count(context.Background())
	require.NoError(t, err)
	return n
}

// Steps returns an execution's journal in start order.
func (app *TestApp) Steps(t *testing.T, executionID string) []*ent.ExecutionStep {
	t.Helper()
	steps, err := app.DB.ExecutionStep.Query().
		Where(executionstep.ExecutionID(executionID)).
		Order(ent.Asc(executionstep.FieldStartedAt)).
		All(context.Background())
	require.NoError(t, err)
	return steps
}

// Messages returns a conversation's journal in chronological order.
func (app *TestApp) Messages(t *testing.T, tenantID, participant string) []*ent.Message {
	t.Helper()
	msgs, err := app.DB.Message.Query().
		Where(message.ConversationID(services.ConversationID(tenantID, participant))).
		Order(ent.Asc(message.FieldCreatedAt)).
		All(context.Background())
	require.NoError(t, err)
	return msgs
}

// WaitForAssistantMessage polls until an assistant message containing the
// given substring lands on the conversation, and returns it.
func (app *TestApp) WaitForAssistantMessage(t *testing.T, tenantID, participant, contains string) *ent.Message {
	t.Helper()
	ctx := context.Background()
	convID := services.ConversationID(tenantID, participant)
	var found *ent.Message
	require.Eventually(t, func() bool {
		msgs, err := app.DB.Message.Query().
			Where(message.ConversationID(convID)).
			Order(ent.Asc(message.FieldCreatedAt)).
			All(ctx)
		if err != nil {
			return false
		}
		for _, msg := range msgs {
			if msg.Sender == message.SenderAssistant && strings.Contains(msg.Body, contains) {
				found = msg
				return true
			}
		}
		return false
	}, waitTimeout, waitInterval, "no assistant message containing %q for %s", contains, participant)
	return found
}

// Leads returns a tenant's leads, newest first.
func (app *TestApp) Leads(t *testing.T, tenantID string) []*ent.Lead {
	t.Helper()
	leads, err := app.DB.Lead.Query().
		Where(lead.TenantID(tenantID)).
		Order(ent.Desc(lead.FieldCreatedAt)).
		All(context.Background())
	require.NoError(t, err)
	return leads
}

// Tickets returns a tenant's tickets, newest first.
func (app *TestApp) Tickets(t *testing.T, tenantID string) []*ent.Ticket {
	t.Helper()
	tickets, err := app.DB.Ticket.Query().
		Where(ticket.TenantID(tenantID)).
		Order(ent.Desc(ticket.FieldCreatedAt)).
		All(context.Background())
	require.NoError(t, err)
	return tickets
}

// Appointments returns a tenant's appointments, earliest first.
func (app *TestApp) Appointments(t *testing.T, tenantID string) []*ent.Appointment {
	t.Helper()
	appts, err := app.DB.Appointment.Query().
		Where(appointment.TenantID(tenantID)).
		Order(ent.Asc(appointment.FieldStartAt)).
		All(context.Background())
	require.NoError(t, err)
	return appts
}

// ────────────────────────────────────────────────────────────
// Platform surface
// ────────────────────────────────────────────────────────────

// GetHealth fetches the liveness document.
func (app *TestApp) GetHealth(t *testing.T) map[string]any {
	t.Helper()
	return app.getJSON(t, "/health", "", http.StatusOK)
}

// GetSystemWarnings fetches the operator degradation warnings.
func (app *TestApp) GetSystemWarnings(t *testing.T) []any {
	t.Helper()
	resp := app.getJSON(t, "/api/v1/system/warnings", "", http.StatusOK)
	warnings, _ := resp["warnings"].([]any)
	return warnings
}

// ────────────────────────────────────────────────────────────
// Workflow fixtures
// ────────────────────────────────────────────────────────────

// linearKeywordWorkflow is the simplest real definition: keyword trigger,
// one templated send, done.
func linearKeywordWorkflow(name, keyword, template string) models.CreateWorkflowRequest {
	return models.CreateWorkflowRequest{
		Name:        name,
		TriggerType: "keyword",
		TriggerConfig: map[string]any{
			"keyword": keyword,
		},
		Nodes: []models.WorkflowNodePayload{
			{ID: "n-start", Type: "start"},
			{ID: "n-send", Type: "action", Config: map[string]any{
				"action_type": "send_message",
				"template":    template,
			}},
			{ID: "n-end", Type: "end"},
		},
		Edges: []models.WorkflowEdgePayload{
			{Source: "n-start", Target: "n-send"},
			{Source: "n-send", Target: "n-end"},
		},
	}
}

// uniqueParticipant returns a fresh participant id so scenarios never
// share a conversation.
func uniqueParticipant(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.New().String()[:8])
}
