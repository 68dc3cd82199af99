package engine

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func consultationProposal() *SlotProposal {
	day := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	return &SlotProposal{
		AppointmentTypeID:   "apt-type-1",
		AppointmentTypeName: "Consultation",
		DurationMinutes:     30,
		Slots: []ProposedSlot{
			{Index: 1, StartAt: day, EndAt: day.Add(30 * time.Minute), Display: "Tuesday, September 1 at 10:00 AM"},
			{Index: 2, StartAt: day.Add(time.Hour), EndAt: day.Add(90 * time.Minute), Display: "Tuesday, September 1 at 11:00 AM"},
		},
	}
}

// persistedContext simulates the suspend boundary: the context document is
// stored as JSON and reloaded before the wait node resumes.
func persistedContext(t *testing.T, execCtx Context) Context {
	t.Helper()
	raw, err := json.Marshal(execCtx.Doc())
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	return FromStored(doc)
}

func TestBookingProposePhase(t *testing.T) {
	f := newExecutorFixture()
	f.scheduler.proposal = consultationProposal()
	f.llm.response = "We have Tuesday at 10:00 AM or 11:00 AM. Which works for you?"

	node := Node{ID: "n-book", Kind: KindAppointmentBooking, Config: map[string]any{}}
	out, err := f.executor.Execute(context.Background(), node, whatsappContext())
	require.NoError(t, err)

	signal, ok := SignalFromOutput(out)
	require.True(t, ok)
	assert.Equal(t, SignalSuspend, signal.Kind)
	assert.Equal(t, "n-book", signal.ResumeNodeID)

	assert.Equal(t, f.llm.response, out[KeyAIOutput])
	assert.Equal(t, "apt-type-1", out[KeyPendingBookingType])

	slots, ok := out[KeyPendingSlots].([]any)
	require.True(t, ok)
	assert.Len(t, slots, 2)

	assert.Contains(t, f.llm.lastSystem, "Consultation")
	assert.Contains(t, f.llm.lastSystem, "1. Tuesday, September 1 at 10:00 AM")

	require.Len(t, f.sender.sent, 1)
	assert.Equal(t, f.llm.response, f.sender.sent[0].text)
}

func TestBookingProposeNoSlots(t *testing.T) {
	f := newExecutorFixture()
	f.scheduler.proposal = &SlotProposal{
		AppointmentTypeID:   "apt-type-1",
		AppointmentTypeName: "Consultation",
		DurationMinutes:     30,
	}

	node := Node{ID: "n-book", Kind: KindAppointmentBooking, Config: map[string]any{}}
	out, err := f.executor.Execute(context.Background(), node, whatsappContext())
	require.NoError(t, err)

	_, hasSignal := SignalFromOutput(out)
	assert.False(t, hasSignal)
	assert.Equal(t, "no_slots", out["booking_result"])
	require.Len(t, f.sender.sent, 1)
	assert.Contains(t, f.sender.sent[0].text, "Consultation")
}

func TestBookingProposeSchedulerFailure(t *testing.T) {
	f := newExecutorFixture()
	f.scheduler.upcomingErr = errors.New("no appointment types configured")

	node := Node{ID: "n-book", Kind: KindAppointmentBooking, Config: map[string]any{}}
	out, err := f.executor.Execute(context.Background(), node, whatsappContext())
	require.NoError(t, err)

	assert.Equal(t, "failed", out["booking_result"])
	assert.Equal(t, "no appointment types configured", out["error"])
}

func TestBookingConfirmSuccess(t *testing.T) {
	f := newExecutorFixture()
	f.intel.slotIndex = 2
	f.intel.slotOK = true

	proposal := consultationProposal()
	execCtx := whatsappContext()
	execCtx[KeyPendingSlots] = encodeSlots(proposal.Slots)
	execCtx[KeyPendingBookingType] = proposal.AppointmentTypeID
	execCtx[KeyPendingBookingTypeName] = proposal.AppointmentTypeName
	execCtx[KeyLatestReply] = "the 11am one please"
	execCtx[KeyLeadID] = "lead-7"
	execCtx = persistedContext(t, execCtx)

	node := Node{ID: "n-book", Kind: KindAppointmentBooking, Config: map[string]any{}}
	out, err := f.executor.Execute(context.Background(), node, execCtx)
	require.NoError(t, err)

	assert.Equal(t, "success", out["booking_result"])
	assert.Equal(t, "apt-1", out["appointment_id"])
	assert.Equal(t, "Tuesday, September 1 at 11:00 AM", out["booked_slot"])

	require.Contains(t, out, KeyPendingSlots)
	assert.Nil(t, out[KeyPendingSlots])

	assert.Equal(t, "apt-type-1", f.scheduler.lastBooking.AppointmentTypeID)
	assert.Equal(t, "lead-7", f.scheduler.lastBooking.LeadID)
	assert.Equal(t, "+15551234567", f.scheduler.lastBooking.Participant)
	assert.True(t, f.scheduler.lastBooking.StartAt.Equal(proposal.Slots[1].StartAt))

	assert.Equal(t, "the 11am one please", f.intel.lastReply)
	require.Len(t, f.sender.sent, 1)
	assert.Contains(t, f.sender.sent[0].text, "Consultation")
	assert.Contains(t, f.sender.sent[0].text, "11:00 AM")
}

func TestBookingConfirmNoMatch(t *testing.T) {
	f := newExecutorFixture()
	f.intel.slotOK = false

	execCtx := whatsappContext()
	execCtx[KeyPendingSlots] = encodeSlots(consultationProposal().Slots)
	execCtx[KeyLatestReply] = "maybe later"
	execCtx = persistedContext(t, execCtx)

	node := Node{ID: "n-book", Kind: KindAppointmentBooking, Config: map[string]any{}}
	out, err := f.executor.Execute(context.Background(), node, execCtx)
	require.NoError(t, err)

	signal, ok := SignalFromOutput(out)
	require.True(t, ok)
	assert.Equal(t, SignalSuspend, signal.Kind)
	assert.Equal(t, "n-book", signal.ResumeNodeID)
	require.Len(t, f.sender.sent, 1)
	assert.Contains(t, f.sender.sent[0].text, "between 1 and 2")
}

func TestBookingConfirmSlotTaken(t *testing.T) {
	f := newExecutorFixture()
	f.intel.slotIndex = 1
	f.intel.slotOK = true
	f.scheduler.bookErr = errors.New("slot already booked")

	execCtx := whatsappContext()
	execCtx[KeyPendingSlots] = encodeSlots(consultationProposal().Slots)
	execCtx[KeyLatestReply] = "number 1"
	execCtx = persistedContext(t, execCtx)

	node := Node{ID: "n-book", Kind: KindAppointmentBooking, Config: map[string]any{}}
	out, err := f.executor.Execute(context.Background(), node, execCtx)
	require.NoError(t, err)

	signal, ok := SignalFromOutput(out)
	require.True(t, ok)
	assert.Equal(t, SignalSuspend, signal.Kind)
	require.Len(t, f.sender.sent, 1)
	assert.Contains(t, f.sender.sent[0].text, "no longer available")
}

func TestPendingSlotsRoundTrip(t *testing.T) {
	slots := consultationProposal().Slots

	encoded := encodeSlots(slots)
	raw, err := json.Marshal(encoded)
	require.NoError(t, err)
	var stored any
	require.NoError(t, json.Unmarshal(raw, &stored))

	decoded := decodePendingSlots(stored)
	require.Len(t, decoded, 2)
	assert.Equal(t, slots[0].Index, decoded[0].Index)
	assert.Equal(t, slots[0].Display, decoded[0].Display)
	assert.True(t, decoded[0].StartAt.Equal(slots[0].StartAt))
	assert.True(t, decoded[1].EndAt.Equal(slots[1].EndAt))
}

func TestDecodePendingSlotsGarbage(t *testing.T) {
	assert.Nil(t, decodePendingSlots(nil))
	assert.Nil(t, decodePendingSlots("not a list"))
	assert.Nil(t, decodePendingSlots(map[string]any{"index": 1}))
}
