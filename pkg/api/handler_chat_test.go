package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// newJSONBody wraps a raw JSON string for request construction.
func newJSONBody(s string) io.Reader {
	return strings.NewReader(s)
}

func TestChatHandler_Validation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	// Only request validation runs here (400 before any service call);
	// happy-path is covered by the e2e suite with a real stack.
	s := &Server{}

	tests := []struct {
		name   string
		body   string
		errMsg string
	}{
		{
			name:   "malformed JSON",
			body:   `{"tenant_id": `,
			errMsg: "",
		},
		{
			name:   "missing tenant_id",
			body:   `{"user_id":"visitor-1","message":"hello"}`,
			errMsg: "tenant_id is required",
		},
		{
			name:   "missing user_id",
			body:   `{"tenant_id":"t1","message":"hello"}`,
			errMsg: "user_id is required",
		},
		{
			name:   "missing message",
			body:   `{"tenant_id":"t1","user_id":"visitor-1"}`,
			errMsg: "message is required",
		},
		{
			name:   "message too long",
			body:   `{"tenant_id":"t1","user_id":"visitor-1","message":"` + strings.Repeat("x", maxChatMessageLen+1) + `"}`,
			errMsg: "maximum length",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/chat", newJSONBody(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			s.chatHandler(c)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			if tt.errMsg != "" {
				assert.Contains(t, rec.Body.String(), tt.errMsg)
			}
		})
	}
}
