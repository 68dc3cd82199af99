package models

import "time"

// Slot is one bookable interval computed from availability rules.
type Slot struct {
	StartAt time.Time `json:"start_at"`
	EndAt   time.Time `json:"end_at"`
}

// BookAppointmentRequest contains fields for booking a slot.
type BookAppointmentRequest struct {
	AppointmentTypeID string    `json:"appointment_type_id"`
	LeadID            string    `json:"lead_id,omitempty"`
	ConversationID    string    `json:"conversation_id,omitempty"`
	StartAt           time.Time `json:"start_at"`
	Notes             string    `json:"notes,omitempty"`
}

// AvailabilityResponse lists the open slots of one appointment type on
// one day.
type AvailabilityResponse struct {
	Date  string `json:"date"`
	Slots []Slot `json:"slots"`
}

// CreateAppointmentTypeRequest contains fields for a new appointment type.
type CreateAppointmentTypeRequest struct {
	Name            string `json:"name"`
	DurationMinutes int    `json:"duration_minutes"`
	ColorCode       string `json:"color_code,omitempty"`
}

// CreateAvailabilityRuleRequest contains fields for a new weekly
// availability window. DayOfWeek is Monday-first (0=Monday .. 6=Sunday)
// and the clock values use 24-hour "HH:MM" form.
type CreateAvailabilityRuleRequest struct {
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}
