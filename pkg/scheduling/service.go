// Package scheduling computes bookable slots from availability rules and
// records appointments with a transactional double-booking check.
package scheduling

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/interacai/flowcore/ent"
	"github.com/interacai/flowcore/ent/appointment"
	"github.com/interacai/flowcore/ent/appointmenttype"
	"github.com/interacai/flowcore/ent/availabilityrule"
	"github.com/interacai/flowcore/ent/conversation"
	"github.com/interacai/flowcore/ent/lead"
	"github.com/interacai/flowcore/ent/tenant"
	"github.com/interacai/flowcore/pkg/engine"
	"github.com/interacai/flowcore/pkg/models"
)

var (
	// ErrAppointmentTypeNotFound covers both an unknown type id and a
	// tenant with no active types at all.
	ErrAppointmentTypeNotFound = errors.New("appointment type not found")

	// ErrSlotTaken is returned when the transactional overlap re-check
	// finds a conflicting appointment.
	ErrSlotTaken = errors.New("slot is no longer available")
)

const slotDisplayFormat = "Monday, January 2 at 3:04 PM"

// Service implements slot computation and booking over the store.
type Service struct {
	client *ent.Client

	// now is swappable so slot tests can pin the clock.
	now func() time.Time
}

// NewService creates a scheduling service.
func NewService(client *ent.Client) *Service {
	if client == nil {
		panic("NewService: client must not be nil")
	}
	return &Service{client: client, now: time.Now}
}

// mondayIndex maps Go's Sunday-first weekday to the stored Monday-first
// day_of_week (0=Monday .. 6=Sunday).
func mondayIndex(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

func parseClock(day time.Time, clock string) (time.Time, error) {
	parsed, err := time.Parse("15:04", strings.TrimSpace(clock))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid clock value %q: %w", clock, err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), parsed.Hour(), parsed.Minute(), 0, 0, day.Location()), nil
}

// AvailableSlots returns the open slots for one appointment type on one
// calendar day. A day without active availability rules has no slots.
// Slots that overlap a scheduled or confirmed appointment, or that start
// in the past, are excluded.
func (s *Service) AvailableSlots(ctx context.Context, tenantID, appointmentTypeID string, day time.Time) ([]models.Slot, error) {
	aptType, err := s.client.AppointmentType.Query().
		Where(appointmenttype.ID(appointmentTypeID), appointmenttype.TenantID(tenantID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrAppointmentTypeNotFound, appointmentTypeID)
		}
		return nil, fmt.Errorf("loading appointment type: %w", err)
	}
	duration := time.Duration(aptType.DurationMinutes) * time.Minute

	rules, err := s.client.AvailabilityRule.Query().
		Where(
			availabilityrule.TenantID(tenantID),
			availabilityrule.DayOfWeek(mondayIndex(day.Weekday())),
			availabilityrule.IsActive(true),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading availability rules: %w", err)
	}
	if len(rules) == 0 {
		return nil, nil
	}

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	existing, err := s.client.Appointment.Query().
		Where(
			appointment.TenantID(tenantID),
			appointment.StatusIn(appointment.StatusScheduled, appointment.StatusConfirmed),
			appointment.StartAtLT(dayEnd),
			appointment.EndAtGT(dayStart),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading appointments: %w", err)
	}

	return slotsForDay(day, duration, rules, existing, s.now()), nil
}

// slotsForDay walks each availability window in steps of the slot
// duration, keeping candidates that start after now and clear every
// scheduled or confirmed appointment. Rules with malformed clock values
// are skipped. Overlapping rules yield each start time once.
func slotsForDay(day time.Time, duration time.Duration, rules []*ent.AvailabilityRule, existing []*ent.Appointment, now time.Time) []models.Slot {
	seen := make(map[int64]bool)
	var slots []models.Slot

	for _, rule := range rules {
		windowStart, err := parseClock(day, rule.StartTime)
		if err != nil {
			slog.Warn("Skipping availability rule with bad start_time",
				"rule_id", rule.ID, "error", err)
			continue
		}
		windowEnd, err := parseClock(day, rule.EndTime)
		if err != nil {
			slog.Warn("Skipping availability rule with bad end_time",
				"rule_id", rule.ID, "error", err)
			continue
		}

		for cand := windowStart; !cand.Add(duration).After(windowEnd); cand = cand.Add(duration) {
			if !cand.After(now) {
				continue
			}
			if seen[cand.Unix()] {
				continue
			}
			candEnd := cand.Add(duration)
			if overlapsAny(cand, candEnd, existing) {
				continue
			}
			seen[cand.Unix()] = true
			slots = append(slots, models.Slot{StartAt: cand, EndAt: candEnd})
		}
	}

	sort.Slice(slots, func(i, j int) bool { return slots[i].StartAt.Before(slots[j].StartAt) })
	return slots
}

func overlapsAny(start, end time.Time, existing []*ent.Appointment) bool {
	for _, apt := range existing {
		if start.Before(apt.EndAt) && apt.StartAt.Before(end) {
			return true
		}
	}
	return false
}

// UpcomingSlots resolves the appointment type (explicit id, or the
// tenant's first active type) and walks forward day by day until it has
// collected `limit` open slots or exhausted the window.
func (s *Service) UpcomingSlots(ctx context.Context, tenantID, appointmentTypeID string, days, limit int) (*engine.SlotProposal, error) {
	var (
		aptType *ent.AppointmentType
		err     error
	)
	if appointmentTypeID != "" {
		aptType, err = s.client.AppointmentType.Query().
			Where(appointmenttype.ID(appointmentTypeID), appointmenttype.TenantID(tenantID)).
			Only(ctx)
	} else {
		aptType, err = s.client.AppointmentType.Query().
			Where(appointmenttype.TenantID(tenantID), appointmenttype.IsActive(true)).
			Order(ent.Asc(appointmenttype.FieldID)).
			First(ctx)
	}
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: tenant has no active appointment types", ErrAppointmentTypeNotFound)
		}
		return nil, fmt.Errorf("resolving appointment type: %w", err)
	}

	proposal := &engine.SlotProposal{
		AppointmentTypeID:   aptType.ID,
		AppointmentTypeName: aptType.Name,
		DurationMinutes:     aptType.DurationMinutes,
	}

	start := s.now()
	for i := 0; i < days && len(proposal.Slots) < limit; i++ {
		daySlots, err := s.AvailableSlots(ctx, tenantID, aptType.ID, start.AddDate(0, 0, i))
		if err != nil {
			return nil, err
		}
		for _, slot := range daySlots {
			if len(proposal.Slots) >= limit {
				break
			}
			proposal.Slots = append(proposal.Slots, engine.ProposedSlot{
				Index:   len(proposal.Slots) + 1,
				StartAt: slot.StartAt,
				EndAt:   slot.EndAt,
				Display: slot.StartAt.Format(slotDisplayFormat),
			})
		}
	}

	return proposal, nil
}

// Book records an appointment. Bookings serialize on the tenant row
// inside the transaction, so of two concurrent confirmations of the same
// slot the second waits for the first and then fails the overlap
// re-check with ErrSlotTaken.
func (s *Service) Book(ctx context.Context, tenantID string, in engine.BookingInput) (string, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return "", fmt.Errorf("starting booking transaction: %w", err)
	}

	id, err := s.bookInTx(ctx, tx, tenantID, in)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			slog.Error("Booking rollback failed", "tenant_id", tenantID, "error", rbErr)
		}
		return "", err
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing booking: %w", err)
	}
	return id, nil
}

func (s *Service) bookInTx(ctx context.Context, tx *ent.Tx, tenantID string, in engine.BookingInput) (string, error) {
	// The overlap check below is a plain read, and the schema carries no
	// interval exclusion constraint, so under READ COMMITTED two
	// transactions could each see a free slot and both insert. Locking
	// the tenant row first serializes the check-then-insert per tenant.
	if _, err := tx.Tenant.Query().
		Where(tenant.ID(tenantID)).
		ForUpdate().
		Only(ctx); err != nil {
		if ent.IsNotFound(err) {
			return "", fmt.Errorf("unknown tenant %s", tenantID)
		}
		return "", fmt.Errorf("locking tenant for booking: %w", err)
	}

	aptType, err := tx.AppointmentType.Query().
		Where(appointmenttype.ID(in.AppointmentTypeID), appointmenttype.TenantID(tenantID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", fmt.Errorf("%w: %s", ErrAppointmentTypeNotFound, in.AppointmentTypeID)
		}
		return "", fmt.Errorf("loading appointment type: %w", err)
	}

	endAt := in.StartAt.Add(time.Duration(aptType.DurationMinutes) * time.Minute)

	conflict, err := tx.Appointment.Query().
		Where(
			appointment.TenantID(tenantID),
			appointment.StatusIn(appointment.StatusScheduled, appointment.StatusConfirmed),
			appointment.StartAtLT(endAt),
			appointment.EndAtGT(in.StartAt),
		).
		Exist(ctx)
	if err != nil {
		return "", fmt.Errorf("checking slot availability: %w", err)
	}
	if conflict {
		return "", ErrSlotTaken
	}

	create := tx.Appointment.Create().
		SetID(uuid.NewString()).
		SetTenantID(tenantID).
		SetAppointmentTypeID(aptType.ID).
		SetStartAt(in.StartAt).
		SetEndAt(endAt)
	if in.Notes != "" {
		create.SetNotes(in.Notes)
	}

	leadID := in.LeadID
	if leadID != "" {
		// A stale lead id from workflow context must not sink the booking.
		exists, err := tx.Lead.Query().
			Where(lead.ID(leadID), lead.TenantID(tenantID)).
			Exist(ctx)
		if err != nil {
			return "", fmt.Errorf("checking lead: %w", err)
		}
		if !exists {
			slog.Warn("Booking references unknown lead, skipping link",
				"tenant_id", tenantID, "lead_id", leadID)
			leadID = ""
		}
	}
	if leadID != "" {
		create.SetLeadID(leadID)
	}

	switch {
	case in.ConversationID != "":
		exists, err := tx.Conversation.Query().
			Where(conversation.ID(in.ConversationID), conversation.TenantID(tenantID)).
			Exist(ctx)
		if err != nil {
			return "", fmt.Errorf("resolving conversation: %w", err)
		}
		if exists {
			create.SetConversationID(in.ConversationID)
		} else {
			slog.Warn("Booking references unknown conversation, skipping link",
				"tenant_id", tenantID, "conversation_id", in.ConversationID)
		}
	case in.Participant != "":
		conv, err := tx.Conversation.Query().
			Where(conversation.TenantID(tenantID), conversation.Participant(in.Participant)).
			Only(ctx)
		if err == nil {
			create.SetConversationID(conv.ID)
		} else if !ent.IsNotFound(err) {
			return "", fmt.Errorf("resolving conversation: %w", err)
		}
	}

	apt, err := create.Save(ctx)
	if err != nil {
		return "", fmt.Errorf("creating appointment: %w", err)
	}

	if leadID != "" {
		_, err = tx.LeadActivity.Create().
			SetID(uuid.NewString()).
			SetLeadID(leadID).
			SetType("appointment_booked").
			SetContent(map[string]interface{}{
				"appointment_id": apt.ID,
				"type_name":      aptType.Name,
				"start_at":       in.StartAt.Format(time.RFC3339),
			}).
			SetCreatedBy("system").
			Save(ctx)
		if err != nil {
			return "", fmt.Errorf("recording lead activity: %w", err)
		}
	}

	return apt.ID, nil
}
