package models

import "github.com/interacai/flowcore/ent"

// CreateLeadRequest contains fields for creating a lead.
type CreateLeadRequest struct {
	Name   string  `json:"name"`
	Email  string  `json:"email,omitempty"`
	Phone  string  `json:"phone,omitempty"`
	Source string  `json:"source,omitempty"`
	Status string  `json:"status,omitempty"`
	Value  float64 `json:"value,omitempty"`
	Tags   string  `json:"tags,omitempty"`
	Notes  string  `json:"notes,omitempty"`
}

// UpdateLeadRequest contains the mutable lead fields. Pointer fields
// distinguish "leave unchanged" from "set to zero value".
type UpdateLeadRequest struct {
	Name   *string  `json:"name,omitempty"`
	Email  *string  `json:"email,omitempty"`
	Phone  *string  `json:"phone,omitempty"`
	Status *string  `json:"status,omitempty"`
	Value  *float64 `json:"value,omitempty"`
	Tags   *string  `json:"tags,omitempty"`
	Notes  *string  `json:"notes,omitempty"`
}

// LeadFilters contains filtering options for listing leads.
type LeadFilters struct {
	Status string `json:"status,omitempty"`
	Search string `json:"search,omitempty"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

// LeadListResponse contains a paginated lead list.
type LeadListResponse struct {
	Leads      []*ent.Lead `json:"leads"`
	TotalCount int         `json:"total_count"`
	Limit      int         `json:"limit"`
	Offset     int         `json:"offset"`
}

// CreateTicketRequest contains fields for creating a support ticket.
type CreateTicketRequest struct {
	ConversationID string `json:"conversation_id,omitempty"`
	Subject        string `json:"subject"`
	Description    string `json:"description,omitempty"`
	Priority       string `json:"priority,omitempty"`
	AssignedTo     string `json:"assigned_to,omitempty"`
}
