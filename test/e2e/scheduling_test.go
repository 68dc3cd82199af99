package e2e

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interacai/flowcore/ent"
	"github.com/interacai/flowcore/ent/appointment"
	entexec "github.com/interacai/flowcore/ent/execution"
	"github.com/interacai/flowcore/ent/executionstep"
	"github.com/interacai/flowcore/pkg/models"
	"github.com/interacai/flowcore/pkg/services"
)

// seedSchedulingFixtures creates a 30-minute appointment type with
// round-the-clock availability on every weekday, so slot proposals never
// depend on when the test runs. Returns the appointment type id.
func seedSchedulingFixtures(t *testing.T, app *TestApp, tenantID, typeName string) string {
	t.Helper()

	resp := app.postJSON(t, "/api/v1/appointment-types", tenantID, models.CreateAppointmentTypeRequest{
		Name:            typeName,
		DurationMinutes: 30,
	}, http.StatusCreated)
	typeID, _ := resp["id"].(string)
	require.NotEmpty(t, typeID, "appointment type response: %v", resp)

	for day := 0; day < 7; day++ {
		app.postJSON(t, "/api/v1/availability-rules", tenantID, models.CreateAvailabilityRuleRequest{
			DayOfWeek: day,
			StartTime: "00:00",
			EndTime:   "23:59",
		}, http.StatusCreated)
	}
	return typeID
}

// bookingWorkflow is a keyword-triggered flow with a single two-phase
// appointment node.
func bookingWorkflow(appointmentTypeID string) models.CreateWorkflowRequest {
	return models.CreateWorkflowRequest{
		Name:        "Book a consult",
		TriggerType: "keyword",
		TriggerConfig: map[string]any{
			"keyword": "book",
		},
		Nodes: []models.WorkflowNodePayload{
			{ID: "n-start", Type: "start"},
			{ID: "n-book", Type: "appointment_booking", Config: map[string]any{
				"appointment_type_id": appointmentTypeID,
			}},
			{ID: "n-end", Type: "end"},
		},
		Edges: []models.WorkflowEdgePayload{
			{Source: "n-start", Target: "n-book"},
			{Source: "n-book", Target: "n-end"},
		},
	}
}

// bookingSteps filters an execution's journal down to the appointment
// node's visits, in start order.
func bookingSteps(t *testing.T, app *TestApp, execID string) []*ent.ExecutionStep {
	t.Helper()
	var steps []*ent.ExecutionStep
	for _, step := range app.Steps(t, execID) {
		if step.NodeKind == "appointment_booking" {
			steps = append(steps, step)
		}
	}
	return steps
}

// ────────────────────────────────────────────────────────────
// Conversational booking: propose, pick, confirm
// ────────────────────────────────────────────────────────────

func TestE2E_BookingConversation(t *testing.T) {
	llm := NewScriptedLLMClient()
	llm.AddRouted(LLMKindGenerate, LLMScriptEntry{
		Text: "We have a few openings — does option 1, 2 or 3 work for you?",
	})
	llm.AddRouted(LLMKindSelectSlot, LLMScriptEntry{Text: "1"})

	app := NewTestApp(t, WithLLMClient(llm))
	tenantID := app.CreateTenant(t, "Booking Co")
	typeID := seedSchedulingFixtures(t, app, tenantID, "Intro Call")
	app.CreateWorkflow(t, tenantID, bookingWorkflow(typeID))

	user := uniqueParticipant("visitor")

	// Turn 1: the node proposes slots and suspends awaiting a pick.
	resp := app.SendChat(t, tenantID, user, "I'd like to book a call")
	assert.Equal(t, models.ChatStatusWorkflowProcessing, resp["status"])
	execID := executionIDs(t, resp)[0]

	app.WaitForAssistantMessage(t, tenantID, user, "does option 1, 2 or 3 work")
	app.WaitForExecutionStatus(t, execID, entexec.StatusSuspended)

	exec := app.GetExecution(t, execID)
	pending, _ := exec.Context["pending_slots"].([]any)
	require.Len(t, pending, 3, "three proposed slots survive the suspend")
	assert.Equal(t, typeID, exec.Context["pending_appointment_type_id"])

	// Turn 2: the reply picks the first slot and the node books it.
	resp = app.SendChat(t, tenantID, user, "the first one please")
	assert.Equal(t, []string{execID}, executionIDs(t, resp))

	app.WaitForExecutionStatus(t, execID, entexec.StatusCompleted)
	app.WaitForAssistantMessage(t, tenantID, user, "You're all set! Your Intro Call is booked for")

	appts := app.Appointments(t, tenantID)
	require.Len(t, appts, 1)
	assert.Equal(t, typeID, appts[0].AppointmentTypeID)
	assert.Equal(t, appointment.StatusScheduled, appts[0].Status)
	assert.Equal(t, appts[0].StartAt.Add(30*time.Minute), appts[0].EndAt)
	assert.Equal(t, "Booked via workflow", appts[0].Notes)
	require.NotNil(t, appts[0].ConversationID)
	assert.Equal(t, services.ConversationID(tenantID, user), *appts[0].ConversationID)

	// The booking outcome landed in the run context; the pending slots
	// were cleared on success.
	exec = app.GetExecution(t, execID)
	assert.Equal(t, "success", exec.Context["booking_result"])
	assert.Equal(t, appts[0].ID, exec.Context["appointment_id"])
	assert.Nil(t, exec.Context["pending_slots"])

	// Two node visits: the propose visit stays suspended as the record of
	// the offer, the confirm visit completes.
	steps := bookingSteps(t, app, execID)
	require.Len(t, steps, 2)
	assert.Equal(t, executionstep.StatusSuspended, steps[0].Status)
	assert.Equal(t, executionstep.StatusCompleted, steps[1].Status)

	// Exactly two provider calls: the offer text and the slot pick.
	assert.Equal(t, 2, llm.CallCount())
}

// ────────────────────────────────────────────────────────────
// Conversational booking: an unclear pick gets a nudge
// ────────────────────────────────────────────────────────────

func TestE2E_BookingRetriesUnclearPick(t *testing.T) {
	llm := NewScriptedLLMClient()
	llm.AddRouted(LLMKindGenerate, LLMScriptEntry{Text: "Here are the times we can offer."})
	llm.AddRouted(LLMKindSelectSlot,
		LLMScriptEntry{Text: "none"},
		LLMScriptEntry{Text: "2"},
	)

	app := NewTestApp(t, WithLLMClient(llm))
	tenantID := app.CreateTenant(t, "Nudge Co")
	typeID := seedSchedulingFixtures(t, app, tenantID, "Demo")
	app.CreateWorkflow(t, tenantID, bookingWorkflow(typeID))

	user := uniqueParticipant("visitor")

	resp := app.SendChat(t, tenantID, user, "can I book a demo?")
	execID := executionIDs(t, resp)[0]
	app.WaitForExecutionStatus(t, execID, entexec.StatusSuspended)

	// An unclear reply re-suspends the run with a nudge instead of
	// booking anything.
	app.SendChat(t, tenantID, user, "whenever works honestly")
	app.WaitForAssistantMessage(t, tenantID, user, "Please reply with a number between 1 and 3")
	app.WaitForExecutionStatus(t, execID, entexec.StatusSuspended)
	assert.Empty(t, app.Appointments(t, tenantID))

	// A clear pick books the second slot.
	app.SendChat(t, tenantID, user, "let's do the second time")
	app.WaitForExecutionStatus(t, execID, entexec.StatusCompleted)
	app.WaitForAssistantMessage(t, tenantID, user, "You're all set! Your Demo is booked for")

	appts := app.Appointments(t, tenantID)
	require.Len(t, appts, 1)
	assert.Equal(t, typeID, appts[0].AppointmentTypeID)

	// Three node visits: propose, nudge, confirm.
	steps := bookingSteps(t, app, execID)
	require.Len(t, steps, 3)
	assert.Equal(t, executionstep.StatusSuspended, steps[0].Status)
	assert.Equal(t, executionstep.StatusSuspended, steps[1].Status)
	assert.Equal(t, executionstep.StatusCompleted, steps[2].Status)

	assert.Equal(t, 3, llm.CallCount())
}

// ────────────────────────────────────────────────────────────
// Scheduling REST surface: list slots, book, conflict
// ────────────────────────────────────────────────────────────

func TestE2E_SchedulingAPI_DirectBooking(t *testing.T) {
	app := NewTestApp(t)
	tenantID := app.CreateTenant(t, "Clinic Co")
	typeID := seedSchedulingFixtures(t, app, tenantID, "Checkup")

	// Tomorrow always carries a full day of open slots.
	date := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")
	listPath := "/api/v1/appointments/slots?appointment_type_id=" + typeID + "&date=" + date

	resp := app.getJSON(t, listPath, tenantID, http.StatusOK)
	assert.Equal(t, date, resp["date"])
	slots, _ := resp["slots"].([]any)
	require.NotEmpty(t, slots)

	first, _ := slots[0].(map[string]any)
	startRaw, _ := first["start_at"].(string)
	startAt, err := time.Parse(time.RFC3339, startRaw)
	require.NoError(t, err)

	booked := app.postJSON(t, "/api/v1/appointments", tenantID, models.BookAppointmentRequest{
		AppointmentTypeID: typeID,
		StartAt:           startAt,
	}, http.StatusCreated)
	assert.Equal(t, "booked", booked["status"])
	assert.NotEmpty(t, booked["appointment_id"])

	// The same slot cannot be booked twice.
	app.postJSON(t, "/api/v1/appointments", tenantID, models.BookAppointmentRequest{
		AppointmentTypeID: typeID,
		StartAt:           startAt,
	}, http.StatusConflict)

	// The booked slot dropped out of the listing.
	resp = app.getJSON(t, listPath, tenantID, http.StatusOK)
	for _, raw := range resp["slots"].([]any) {
		slot, _ := raw.(map[string]any)
		assert.NotEqual(t, startRaw, slot["start_at"], "booked slot still offered")
	}

	appts := app.Appointments(t, tenantID)
	require.Len(t, appts, 1)
	assert.Nil(t, appts[0].ConversationID)
	assert.Nil(t, appts[0].LeadID)
}
