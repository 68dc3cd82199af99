package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/interacai/flowcore/ent"
	"github.com/interacai/flowcore/ent/appointment"
	"github.com/interacai/flowcore/ent/appointmenttype"
	"github.com/interacai/flowcore/ent/availabilityrule"
	"github.com/interacai/flowcore/pkg/models"
	"github.com/interacai/flowcore/pkg/services"
)

// CreateAppointmentType registers a bookable service for the tenant.
func (s *Service) CreateAppointmentType(ctx context.Context, tenantID string, req models.CreateAppointmentTypeRequest) (*ent.AppointmentType, error) {
	if req.Name == "" {
		return nil, services.NewValidationError("name", "name is required")
	}
	if req.DurationMinutes <= 0 {
		return nil, services.NewValidationError("duration_minutes", "duration must be positive")
	}

	create := s.client.AppointmentType.Create().
		SetID(uuid.NewString()).
		SetTenantID(tenantID).
		SetName(req.Name).
		SetDurationMinutes(req.DurationMinutes)
	if req.ColorCode != "" {
		create.SetColorCode(req.ColorCode)
	}

	aptType, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating appointment type: %w", err)
	}
	return aptType, nil
}

// ListAppointmentTypes returns the tenant's appointment types, active
// ones first.
func (s *Service) ListAppointmentTypes(ctx context.Context, tenantID string) ([]*ent.AppointmentType, error) {
	types, err := s.client.AppointmentType.Query().
		Where(appointmenttype.TenantID(tenantID)).
		Order(ent.Desc(appointmenttype.FieldIsActive), ent.Asc(appointmenttype.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing appointment types: %w", err)
	}
	return types, nil
}

// CreateAvailabilityRule adds a weekly availability window.
func (s *Service) CreateAvailabilityRule(ctx context.Context, tenantID string, req models.CreateAvailabilityRuleRequest) (*ent.AvailabilityRule, error) {
	if req.DayOfWeek < 0 || req.DayOfWeek > 6 {
		return nil, services.NewValidationError("day_of_week", "must be between 0 (Monday) and 6 (Sunday)")
	}
	start, err := parseClock(time.Now(), req.StartTime)
	if err != nil {
		return nil, services.NewValidationError("start_time", "must be HH:MM in 24-hour form")
	}
	end, err := parseClock(time.Now(), req.EndTime)
	if err != nil {
		return nil, services.NewValidationError("end_time", "must be HH:MM in 24-hour form")
	}
	if !start.Before(end) {
		return nil, services.NewValidationError("end_time", "must be after start_time")
	}

	rule, err := s.client.AvailabilityRule.Create().
		SetID(uuid.NewString()).
		SetTenantID(tenantID).
		SetDayOfWeek(req.DayOfWeek).
		SetStartTime(req.StartTime).
		SetEndTime(req.EndTime).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating availability rule: %w", err)
	}
	return rule, nil
}

// ListAvailabilityRules returns the tenant's weekly windows ordered by
// day then start time.
func (s *Service) ListAvailabilityRules(ctx context.Context, tenantID string) ([]*ent.AvailabilityRule, error) {
	rules, err := s.client.AvailabilityRule.Query().
		Where(availabilityrule.TenantID(tenantID)).
		Order(ent.Asc(availabilityrule.FieldDayOfWeek), ent.Asc(availabilityrule.FieldStartTime)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing availability rules: %w", err)
	}
	return rules, nil
}

// ListAppointments returns the tenant's appointments that overlap the
// given span, soonest first.
func (s *Service) ListAppointments(ctx context.Context, tenantID string, from, to time.Time) ([]*ent.Appointment, error) {
	q := s.client.Appointment.Query().
		Where(appointment.TenantID(tenantID)).
		Order(ent.Asc(appointment.FieldStartAt))
	if !from.IsZero() {
		q = q.Where(appointment.EndAtGT(from))
	}
	if !to.IsZero() {
		q = q.Where(appointment.StartAtLT(to))
	}

	appointments, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing appointments: %w", err)
	}
	return appointments, nil
}

// UpdateAppointmentStatus moves an appointment to a new status, e.g.
// confirming or cancelling it.
func (s *Service) UpdateAppointmentStatus(ctx context.Context, tenantID, appointmentID string, status appointment.Status) (*ent.Appointment, error) {
	if err := appointment.StatusValidator(status); err != nil {
		return nil, services.NewValidationError("status", err.Error())
	}

	apt, err := s.client.Appointment.Query().
		Where(appointment.ID(appointmentID), appointment.TenantID(tenantID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: appointment %s", services.ErrNotFound, appointmentID)
		}
		return nil, fmt.Errorf("loading appointment: %w", err)
	}

	apt, err = apt.Update().SetStatus(status).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("updating appointment: %w", err)
	}
	return apt, nil
}
