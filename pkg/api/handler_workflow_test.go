package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestUpdateWorkflowHandler_Validation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := &Server{}

	tests := []struct {
		name   string
		body   string
		errMsg string
	}{
		{
			name:   "empty body",
			body:   `{}`,
			errMsg: "active is required",
		},
		{
			name:   "wrong type for active",
			body:   `{"active":"yes"}`,
			errMsg: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Params = gin.Params{{Key: "id", Value: "wf-1"}}
			c.Request = httptest.NewRequest(http.MethodPatch, "/api/v1/workflows/wf-1", newJSONBody(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			s.updateWorkflowHandler(c)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			if tt.errMsg != "" {
				assert.Contains(t, rec.Body.String(), tt.errMsg)
			}
		})
	}
}

func TestUpdateTicketHandler_Validation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := &Server{}

	t.Run("neither status nor assigned_to", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		c.Params = gin.Params{{Key: "id", Value: "tic-1"}}
		c.Request = httptest.NewRequest(http.MethodPatch, "/api/v1/tickets/tic-1", newJSONBody(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")

		s.updateTicketHandler(c)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "status or assigned_to is required")
	})
}

func TestIntQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{name: "absent", query: "", want: 0},
		{name: "valid", query: "limit=25", want: 25},
		{name: "malformed", query: "limit=abc", want: 0},
		{name: "negative clamped", query: "limit=-5", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)

			assert.Equal(t, tt.want, intQuery(c, "limit"))
		})
	}
}
