package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/apikit/core/handler"
	"github.com/dmitrymomot/apikit/core/response"
)

func execute(t *testing.T, resp handler.Response) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	require.NotNil(t, resp)
	w := httptest.NewRecorder()
	require.NoError(t, resp(w, httptest.NewRequest(http.MethodGet, "/", nil)))

	var body map[string]any
	if w.Body.Len() > 0 && strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	}
	return w, body
}

func TestEnvelope(t *testing.T) {
	t.Parallel()

	t.Run("standard_keys", func(t *testing.T) {
		t.Parallel()

		w, body := execute(t, response.Envelope(http.StatusOK, nil, 0.0211))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, float64(200), body["code"])
		assert.Equal(t, 0.02, body["response_time_seconds"])
	})

	t.Run("zero_code_defaults_to_200", func(t *testing.T) {
		t.Parallel()

		w, body := execute(t, response.Envelope(0, nil, 0))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, float64(200), body["code"])
	})

	t.Run("elapsed_rounds_to_two_decimals", func(t *testing.T) {
		t.Parallel()

		_, body := execute(t, response.Envelope(http.StatusOK, nil, 1.005))
		assert.Equal(t, 1.0, body["response_time_seconds"])

		_, body = execute(t, response.Envelope(http.StatusOK, nil, 1.256))
		assert.Equal(t, 1.26, body["response_time_seconds"])
	})

	t.Run("negative_elapsed_clamps_to_zero", func(t *testing.T) {
		t.Parallel()

		_, body := execute(t, response.Envelope(http.StatusOK, nil, -3.5))
		assert.Equal(t, 0.0, body["response_time_seconds"])
	})

	t.Run("map_payload_merges", func(t *testing.T) {
		t.Parallel()

		_, body := execute(t, response.Envelope(http.StatusCreated, map[string]any{
			"id":   "u1",
			"name": "bob",
		}, 0))
		assert.Equal(t, float64(201), body["code"])
		assert.Equal(t, "u1", body["id"])
		assert.Equal(t, "bob", body["name"])
		_, ok := body["message"]
		assert.False(t, ok)
	})

	t.Run("string_map_payload_merges", func(t *testing.T) {
		t.Parallel()

		_, body := execute(t, response.Envelope(http.StatusOK, map[string]string{
			"status": "active",
		}, 0))
		assert.Equal(t, "active", body["status"])
		_, ok := body["message"]
		assert.False(t, ok)
	})

	t.Run("scalar_payload_becomes_message", func(t *testing.T) {
		t.Parallel()

		_, body := execute(t, response.Envelope(http.StatusForbidden, "unauthorized", 0))
		assert.Equal(t, "unauthorized", body["message"])
	})

	t.Run("slice_payload_becomes_message", func(t *testing.T) {
		t.Parallel()

		_, body := execute(t, response.Envelope(http.StatusOK, []string{"a", "b"}, 0))
		assert.Equal(t, []any{"a", "b"}, body["message"])
	})
}
