package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/interacai/flowcore/ent"
	"github.com/interacai/flowcore/ent/lead"
	"github.com/interacai/flowcore/ent/leadactivity"
	"github.com/interacai/flowcore/pkg/models"
)

// LeadEventSink receives internal lead_status_update events. The arbiter
// implements it; a nil sink drops the events, which keeps lead updates
// usable before the workflow tier is wired up.
type LeadEventSink interface {
	HandleLeadEvent(ctx context.Context, event *models.InboundEvent)
}

// LeadPublisher announces new leads to live dashboard streams. Publishing
// is best effort; lead writes never fail over it.
type LeadPublisher interface {
	PublishLeadCaptured(ctx context.Context, lead *ent.Lead) error
}

// LeadService manages leads and their activity journal.
type LeadService struct {
	client    *ent.Client
	sink      LeadEventSink
	publisher LeadPublisher
}

// NewLeadService creates a new LeadService. sink may be nil.
func NewLeadService(client *ent.Client, sink LeadEventSink) *LeadService {
	return &LeadService{client: client, sink: sink}
}

// SetEventSink wires the status-event consumer after construction. The
// arbiter is built later in startup because it depends on this service's
// siblings.
func (s *LeadService) SetEventSink(sink LeadEventSink) {
	s.sink = sink
}

// SetPublisher wires the dashboard event publisher. May stay nil in tests.
func (s *LeadService) SetPublisher(publisher LeadPublisher) {
	s.publisher = publisher
}

// SaveLead creates a lead. Creation itself writes no activity row; the
// journal starts with the first change.
func (s *LeadService) SaveLead(httpCtx context.Context, tenantID string, req models.CreateLeadRequest) (*ent.Lead, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.Status != "" {
		if err := lead.StatusValidator(lead.Status(req.Status)); err != nil {
			return nil, NewValidationError("status", err.Error())
		}
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	create := s.client.Lead.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenantID).
		SetName(req.Name)
	if req.Email != "" {
		create.SetEmail(req.Email)
	}
	if req.Phone != "" {
		create.SetPhone(req.Phone)
	}
	if req.Source != "" {
		create.SetSource(req.Source)
	}
	if req.Status != "" {
		create.SetStatus(lead.Status(req.Status))
	}
	if req.Value != 0 {
		create.SetValue(req.Value)
	}
	if req.Tags != "" {
		create.SetTags(req.Tags)
	}
	if req.Notes != "" {
		create.SetNotes(req.Notes)
	}

	ld, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to save lead: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.PublishLeadCaptured(ctx, ld); err != nil {
			slog.Warn("Failed to publish lead.captured event",
				"tenant_id", tenantID,
				"lead_id", ld.ID,
				"error", err)
		}
	}
	return ld, nil
}

// UpdateLead applies the changed fields. Each change to status, value or
// tags appends a `<field>_change` activity recording old and new; a
// status change additionally flows back through the arbiter so
// lead_event workflows can fire.
func (s *LeadService) UpdateLead(httpCtx context.Context, tenantID, leadID string, req models.UpdateLeadRequest, updatedBy string) (*ent.Lead, error) {
	if req.Status != nil {
		if err := lead.StatusValidator(lead.Status(*req.Status)); err != nil {
			return nil, NewValidationError("status", err.Error())
		}
	}
	if updatedBy == "" {
		updatedBy = "system"
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	current, err := tx.Lead.Query().
		Where(lead.ID(leadID), lead.TenantID(tenantID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load lead: %w", err)
	}

	update := tx.Lead.UpdateOneID(leadID)
	type fieldChange struct {
		field    string
		old, new any
	}
	var changes []fieldChange
	var statusChange *fieldChange

	if req.Name != nil && *req.Name != current.Name {
		update.SetName(*req.Name)
	}
	if req.Email != nil {
		update.SetEmail(*req.Email)
	}
	if req.Phone != nil {
		update.SetPhone(*req.Phone)
	}
	if req.Notes != nil {
		update.SetNotes(*req.Notes)
	}
	if req.Status != nil && string(current.Status) != *req.Status {
		update.SetStatus(lead.Status(*req.Status))
		sc := fieldChange{field: "status", old: string(current.Status), new: *req.Status}
		changes = append(changes, sc)
		statusChange = &sc
	}
	if req.Value != nil && current.Value != *req.Value {
		update.SetValue(*req.Value)
		changes = append(changes, fieldChange{field: "value", old: current.Value, new: *req.Value})
	}
	if req.Tags != nil && current.Tags != *req.Tags {
		update.SetTags(*req.Tags)
		changes = append(changes, fieldChange{field: "tags", old: current.Tags, new: *req.Tags})
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update lead: %w", err)
	}

	for _, ch := range changes {
		_, err := tx.LeadActivity.Create().
			SetID(uuid.New().String()).
			SetLeadID(leadID).
			SetType(ch.field + "_change").
			SetContent(map[string]interface{}{"old": ch.old, "new": ch.new}).
			SetCreatedBy(updatedBy).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to record %s change: %w", ch.field, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit lead update: %w", err)
	}

	// Emitted outside the tx: the event starts workflow executions and
	// must observe the committed row.
	if statusChange != nil && s.sink != nil {
		event := models.NewLeadStatusEvent(tenantID, leadID,
			statusChange.old.(string), statusChange.new.(string))
		s.sink.HandleLeadEvent(httpCtx, event)
	}

	return updated, nil
}

// LogActivity appends an arbitrary activity to a lead's journal.
func (s *LeadService) LogActivity(ctx context.Context, tenantID, leadID, activityType string, content map[string]any, createdBy string) (*ent.LeadActivity, error) {
	if activityType == "" {
		return nil, NewValidationError("type", "required")
	}
	if createdBy == "" {
		createdBy = "system"
	}

	exists, err := s.client.Lead.Query().
		Where(lead.ID(leadID), lead.TenantID(tenantID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check lead: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	activity, err := s.client.LeadActivity.Create().
		SetID(uuid.New().String()).
		SetLeadID(leadID).
		SetType(activityType).
		SetContent(content).
		SetCreatedBy(createdBy).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to log activity: %w", err)
	}
	return activity, nil
}

// GetLead returns one lead scoped to the tenant.
func (s *LeadService) GetLead(ctx context.Context, tenantID, leadID string) (*ent.Lead, error) {
	ld, err := s.client.Lead.Query().
		Where(lead.ID(leadID), lead.TenantID(tenantID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}
	return ld, nil
}

// ListLeads lists leads with filtering and pagination.
func (s *LeadService) ListLeads(ctx context.Context, tenantID string, filters models.LeadFilters) (*models.LeadListResponse, error) {
	query := s.client.Lead.Query().Where(lead.TenantID(tenantID))

	if filters.Status != "" {
		query = query.Where(lead.StatusEQ(lead.Status(filters.Status)))
	}
	if filters.Search != "" {
		query = query.Where(lead.Or(
			lead.NameContainsFold(filters.Search),
			lead.EmailContainsFold(filters.Search),
			lead.PhoneContainsFold(filters.Search),
		))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count leads: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	leads, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(lead.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}

	return &models.LeadListResponse{
		Leads:      leads,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// Activities returns a lead's journal, newest first.
func (s *LeadService) Activities(ctx context.Context, tenantID, leadID string) ([]*ent.LeadActivity, error) {
	exists, err := s.client.Lead.Query().
		Where(lead.ID(leadID), lead.TenantID(tenantID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check lead: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	activities, err := s.client.LeadActivity.Query().
		Where(leadactivity.LeadID(leadID)).
		Order(ent.Desc(leadactivity.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return activities, nil
}
