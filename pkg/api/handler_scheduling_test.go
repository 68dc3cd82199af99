package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestAvailableSlotsHandler_Validation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := &Server{}

	tests := []struct {
		name   string
		query  string
		errMsg string
	}{
		{
			name:   "missing appointment_type_id",
			query:  "date=2026-09-01",
			errMsg: "appointment_type_id is required",
		},
		{
			name:   "missing date",
			query:  "appointment_type_id=apt-1",
			errMsg: "date is required",
		},
		{
			name:   "malformed date",
			query:  "appointment_type_id=apt-1&date=09/01/2026",
			errMsg: "date must be YYYY-MM-DD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/appointments/slots?"+tt.query, nil)

			s.availableSlotsHandler(c)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.errMsg)
		})
	}
}

func TestBookAppointmentHandler_Validation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := &Server{}

	tests := []struct {
		name   string
		body   string
		errMsg string
	}{
		{
			name:   "missing appointment_type_id",
			body:   `{"start_at":"2026-09-01T10:00:00Z"}`,
			errMsg: "appointment_type_id is required",
		},
		{
			name:   "missing start_at",
			body:   `{"appointment_type_id":"apt-1"}`,
			errMsg: "start_at is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/appointments", newJSONBody(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			s.bookAppointmentHandler(c)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.errMsg)
		})
	}
}

func TestListAppointmentsHandler_Validation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := &Server{}

	t.Run("malformed from bound", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/appointments?from=2026-09-01", nil)

		s.listAppointmentsHandler(c)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "from must be RFC 3339")
	})
}

func TestUpdateAppointmentHandler_Validation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := &Server{}

	t.Run("missing status", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		c.Params = gin.Params{{Key: "id", Value: "apt-1"}}
		c.Request = httptest.NewRequest(http.MethodPatch, "/api/v1/appointments/apt-1", newJSONBody(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")

		s.updateAppointmentHandler(c)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "status is required")
	})
}
