package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/interacai/flowcore/ent/appointment"
	"github.com/interacai/flowcore/pkg/engine"
	"github.com/interacai/flowcore/pkg/models"
)

// availableSlotsHandler handles GET /api/v1/appointments/slots with
// required appointment_type_id and date (YYYY-MM-DD) query parameters.
func (s *Server) availableSlotsHandler(c *gin.Context) {
	appointmentTypeID := c.Query("appointment_type_id")
	if appointmentTypeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "appointment_type_id is required"})
		return
	}
	dateStr := c.Query("date")
	if dateStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
		return
	}
	day, err := time.ParseInLocation("2006-01-02", dateStr, time.UTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	slots, err := s.svcs.Scheduler.AvailableSlots(c.Request.Context(), tenantID(c), appointmentTypeID, day)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, &models.AvailabilityResponse{Date: dateStr, Slots: slots})
}

// bookAppointmentHandler handles POST /api/v1/appointments. The overlap
// check runs transactionally in the service, so a taken slot surfaces
// as a conflict rather than a double booking.
func (s *Server) bookAppointmentHandler(c *gin.Context) {
	var req models.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.AppointmentTypeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "appointment_type_id is required"})
		return
	}
	if req.StartAt.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_at is required"})
		return
	}

	appointmentID, err := s.svcs.Scheduler.Book(c.Request.Context(), tenantID(c), engine.BookingInput{
		AppointmentTypeID: req.AppointmentTypeID,
		StartAt:           req.StartAt,
		LeadID:            req.LeadID,
		ConversationID:    req.ConversationID,
		Notes:             req.Notes,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, &BookingResponse{AppointmentID: appointmentID, Status: "booked"})
}

// listAppointmentsHandler handles GET /api/v1/appointments with optional
// from and to RFC 3339 query parameters bounding the span.
func (s *Server) listAppointmentsHandler(c *gin.Context) {
	from, ok := timeQuery(c, "from")
	if !ok {
		return
	}
	to, ok := timeQuery(c, "to")
	if !ok {
		return
	}

	appointments, err := s.svcs.Scheduler.ListAppointments(c.Request.Context(), tenantID(c), from, to)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appointments})
}

// UpdateAppointmentRequest is the body for PATCH /api/v1/appointments/:id.
type UpdateAppointmentRequest struct {
	Status string `json:"status"`
}

// updateAppointmentHandler handles PATCH /api/v1/appointments/:id,
// moving the appointment between scheduled, confirmed, cancelled and
// completed.
func (s *Server) updateAppointmentHandler(c *gin.Context) {
	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	apt, err := s.svcs.Scheduler.UpdateAppointmentStatus(c.Request.Context(), tenantID(c), c.Param("id"), appointment.Status(req.Status))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, apt)
}

// createAppointmentTypeHandler handles POST /api/v1/appointment-types.
func (s *Server) createAppointmentTypeHandler(c *gin.Context) {
	var req models.CreateAppointmentTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	aptType, err := s.svcs.Scheduler.CreateAppointmentType(c.Request.Context(), tenantID(c), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, aptType)
}

// listAppointmentTypesHandler handles GET /api/v1/appointment-types.
func (s *Server) listAppointmentTypesHandler(c *gin.Context) {
	types, err := s.svcs.Scheduler.ListAppointmentTypes(c.Request.Context(), tenantID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment_types": types})
}

// createAvailabilityRuleHandler handles POST /api/v1/availability-rules.
func (s *Server) createAvailabilityRuleHandler(c *gin.Context) {
	var req models.CreateAvailabilityRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rule, err := s.svcs.Scheduler.CreateAvailabilityRule(c.Request.Context(), tenantID(c), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rule)
}

// listAvailabilityRulesHandler handles GET /api/v1/availability-rules.
func (s *Server) listAvailabilityRulesHandler(c *gin.Context) {
	rules, err := s.svcs.Scheduler.ListAvailabilityRules(c.Request.Context(), tenantID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability_rules": rules})
}

// timeQuery parses an optional RFC 3339 query parameter, writing a 400
// and returning ok=false when the value is present but malformed.
func timeQuery(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, true
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be RFC 3339"})
		return time.Time{}, false
	}
	return t, true
}
