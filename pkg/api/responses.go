package api

// TriggerResponse is returned by POST /api/v1/workflows/:id/trigger.
type TriggerResponse struct {
	ExecutionID string `json:"execution_id"`
	Status      string `json:"status"`
}

// DeleteResponse acknowledges a deletion.
type DeleteResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// BookingResponse is returned by POST /api/v1/appointments.
type BookingResponse struct {
	AppointmentID string `json:"appointment_id"`
	Status        string `json:"status"`
}

// HealthCheck is one component's verdict inside HealthResponse.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}
