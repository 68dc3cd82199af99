package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
)

const (
	bookingWindowDays = 3
	bookingSlotLimit  = 3

	// KeyPendingBookingType carries the resolved appointment type across
	// the suspend boundary so the confirm phase books against it.
	KeyPendingBookingType     = "pending_appointment_type_id"
	KeyPendingBookingTypeName = "pending_appointment_type_name"
)

// executeBooking runs the two-phase appointment node. The first visit
// proposes up to three open slots and suspends; the visit after the
// participant replies maps the reply to a slot and books it.
func (e *Executor) executeBooking(ctx context.Context, cfg BookingConfig, node Node, execCtx Context) map[string]any {
	pending := decodePendingSlots(execCtx[KeyPendingSlots])
	if execCtx.LatestReply() != "" && len(pending) > 0 {
		return e.confirmBooking(ctx, cfg, node, execCtx, pending)
	}
	return e.proposeSlots(ctx, cfg, node, execCtx)
}

func (e *Executor) proposeSlots(ctx context.Context, cfg BookingConfig, node Node, execCtx Context) map[string]any {
	tenantID := execCtx.TenantID()

	proposal, err := e.scheduler.UpcomingSlots(ctx, tenantID, cfg.AppointmentTypeID, bookingWindowDays, bookingSlotLimit)
	if err != nil {
		return map[string]any{"booking_result": "failed", "error": err.Error()}
	}

	if len(proposal.Slots) == 0 {
		text := fmt.Sprintf("I'm sorry, we don't have any open %s slots in the next few days. Please check back soon or contact us directly.", proposal.AppointmentTypeName)
		e.sendToParticipant(ctx, execCtx, text)
		return map[string]any{"booking_result": "no_slots", KeyAIOutput: text}
	}

	var list strings.Builder
	for _, slot := range proposal.Slots {
		fmt.Fprintf(&list, "%d. %s\n", slot.Index, slot.Display)
	}

	systemInstruction := fmt.Sprintf(`You are a scheduling assistant. Offer the customer these available times for a %s (%d minutes):
%s
Present the numbered options exactly as listed and ask which one works for them. Keep it short and friendly.`,
		proposal.AppointmentTypeName, proposal.DurationMinutes, list.String())

	text := e.llm.Generate(ctx, tenantID, systemInstruction, "Offer the available appointment times.")
	e.sendToParticipant(ctx, execCtx, text)

	return map[string]any{
		KeySignal:                 SignalSuspend,
		KeyResumeNodeID:           node.ID,
		KeyPendingSlots:           encodeSlots(proposal.Slots),
		KeyPendingBookingType:     proposal.AppointmentTypeID,
		KeyPendingBookingTypeName: proposal.AppointmentTypeName,
		KeyAIOutput:               text,
	}
}

func (e *Executor) confirmBooking(ctx context.Context, cfg BookingConfig, node Node, execCtx Context, pending []ProposedSlot) map[string]any {
	tenantID := execCtx.TenantID()
	reply := execCtx.LatestReply()

	index, ok := e.intel.SelectSlot(ctx, tenantID, reply, len(pending))
	if !ok || index < 1 || index > len(pending) {
		text := fmt.Sprintf("Sorry, I didn't catch which time you'd like. Please reply with a number between 1 and %d.", len(pending))
		e.sendToParticipant(ctx, execCtx, text)
		return map[string]any{
			KeySignal:       SignalSuspend,
			KeyResumeNodeID: node.ID,
			KeyAIOutput:     text,
		}
	}

	chosen := pending[index-1]

	typeID, _ := execCtx[KeyPendingBookingType].(string)
	if typeID == "" {
		typeID = cfg.AppointmentTypeID
	}
	typeName, _ := execCtx[KeyPendingBookingTypeName].(string)

	leadID, _ := execCtx.ResolveString(KeyLeadID)
	participant, _ := execCtx.Trigger()["participant"].(string)

	appointmentID, err := e.scheduler.Book(ctx, tenantID, BookingInput{
		AppointmentTypeID: typeID,
		StartAt:           chosen.StartAt,
		LeadID:            leadID,
		Participant:       participant,
		Notes:             "Booked via workflow",
	})
	if err != nil {
		// The slot was likely taken between propose and confirm. Keep the
		// execution suspended so the participant can pick again.
		slog.Warn("Appointment booking failed on confirm",
			"tenant_id", tenantID, "slot", chosen.Display, "error", err)
		text := fmt.Sprintf("It looks like %s is no longer available. Could you pick another of the listed times?", chosen.Display)
		e.sendToParticipant(ctx, execCtx, text)
		return map[string]any{
			KeySignal:       SignalSuspend,
			KeyResumeNodeID: node.ID,
			KeyAIOutput:     text,
		}
	}

	label := typeName
	if label == "" {
		label = "appointment"
	}
	text := fmt.Sprintf("You're all set! Your %s is booked for %s.", label, chosen.Display)
	e.sendToParticipant(ctx, execCtx, text)

	return map[string]any{
		"booking_result": "success",
		"appointment_id": appointmentID,
		"booked_slot":    chosen.Display,
		KeyAIOutput:      text,
		KeyPendingSlots:  nil,
	}
}

func (e *Executor) sendToParticipant(ctx context.Context, execCtx Context, text string) {
	channel, recipient, ok := resolveRecipient(execCtx)
	if !ok {
		return
	}
	if err := e.sender.Send(ctx, execCtx.TenantID(), channel, recipient, text); err != nil {
		slog.Warn("Booking message send failed",
			"tenant_id", execCtx.TenantID(), "channel", channel, "error", err)
	}
}

// encodeSlots converts slots to plain documents so they survive the JSON
// round trip through the persisted execution context.
func encodeSlots(slots []ProposedSlot) []any {
	raw, err := json.Marshal(slots)
	if err != nil {
		return nil
	}
	var out []any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

// decodePendingSlots reverses encodeSlots after the context has been
// persisted and reloaded. Anything unrecognizable decodes to nil.
func decodePendingSlots(v any) []ProposedSlot {
	if v == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var slots []ProposedSlot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil
	}
	return slots
}
