package models

import "github.com/interacai/flowcore/ent"

// CreateWorkflowRequest contains fields for creating a workflow definition.
// Node and edge ids are builder-local keys; the service translates them to
// storage ids on create.
type CreateWorkflowRequest struct {
	Name          string                `json:"name"`
	Description   string                `json:"description,omitempty"`
	TriggerType   string                `json:"trigger_type"`
	TriggerConfig map[string]any        `json:"trigger_config,omitempty"`
	Nodes         []WorkflowNodePayload `json:"nodes"`
	Edges         []WorkflowEdgePayload `json:"edges"`
	Active        *bool                 `json:"active,omitempty"`
}

// WorkflowNodePayload is one node of a workflow definition as submitted by
// the builder UI.
type WorkflowNodePayload struct {
	ID       string         `json:"id"`
	Type     string         `json:"type"`
	Label    string         `json:"label,omitempty"`
	Config   map[string]any `json:"config,omitempty"`
	Position map[string]any `json:"position,omitempty"`
}

// WorkflowEdgePayload is one directed edge of a workflow definition.
// Condition carries the optional guard label matched against a source
// node's branch output.
type WorkflowEdgePayload struct {
	Source    string `json:"source"`
	Target    string `json:"target"`
	Condition string `json:"condition,omitempty"`
}

// WorkflowListResponse contains a tenant's workflow definitions.
type WorkflowListResponse struct {
	Workflows []*ent.Workflow `json:"workflows"`
}

// ExecutionFilters contains filtering options for listing executions.
type ExecutionFilters struct {
	WorkflowID string `json:"workflow_id,omitempty"`
	Status     string `json:"status,omitempty"`
	Limit      int    `json:"limit,omitempty"`
	Offset     int    `json:"offset,omitempty"`
}

// ExecutionListResponse contains a paginated execution list.
type ExecutionListResponse struct {
	Executions []*ent.Execution `json:"executions"`
	TotalCount int              `json:"total_count"`
	Limit      int              `json:"limit"`
	Offset     int              `json:"offset"`
}
