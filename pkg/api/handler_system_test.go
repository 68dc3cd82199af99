package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interacai/flowcore/pkg/services"
)

func TestSystemWarningsHandler(t *testing.T) {
	t.Run("empty list without a warnings service", func(t *testing.T) {
		s := &Server{}
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/system/warnings", nil)

		s.systemWarningsHandler(c)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp SystemWarningsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Empty(t, resp.Warnings)
	})

	t.Run("returns active warnings", func(t *testing.T) {
		warnings := services.NewSystemWarningsService()
		warnings.AddWarning(services.WarningCategoryChannel, "WhatsApp channel disabled", "encryption key not set", "whatsapp")

		s := &Server{warningService: warnings}
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/system/warnings", nil)

		s.systemWarningsHandler(c)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp SystemWarningsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Warnings, 1)
		assert.Equal(t, services.WarningCategoryChannel, resp.Warnings[0].Category)
		assert.Equal(t, "whatsapp", resp.Warnings[0].Source)
		assert.NotEmpty(t, resp.Warnings[0].CreatedAt)
	})
}
