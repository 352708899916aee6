package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler_Health(t *testing.T) {
	t.Run("no checks", func(t *testing.T) {
		h := NewHealthHandler("pricing-engine", "1.0.0")
		c, w := newTestContext()

		h.Health(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "healthy", resp.Status)
		assert.Empty(t, resp.Components)
	})

	t.Run("failing component", func(t *testing.T) {
		h := NewHealthHandler("pricing-engine", "1.0.0").
			AddCheck("cache", func(context.Context) error { return errors.New("connection refused") }).
			AddCheck("catalog", func(context.Context) error { return nil })
		c, w := newTestContext()

		h.Health(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		var resp HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "unhealthy", resp.Status)
		assert.Equal(t, map[string]string{"cache": "error", "catalog": "ok"}, resp.Components)
	})
}

func TestHealthHandler_Info(t *testing.T) {
	h := NewHealthHandler("pricing-engine", "1.2.3")
	c, w := newTestContext()

	h.Info(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeData[SystemInfoResponse](t, w)
	assert.Equal(t, "pricing-engine", resp.Data.Name)
	assert.Equal(t, "1.2.3", resp.Data.Version)
	assert.NotEmpty(t, resp.Data.GoVersion)
}
