package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHome(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	Home(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var body HomeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, "Smart Study Assistant API is running", body.Message)
	assert.Equal(t, "/study?topic=<topic>&mode=<normal|math>", body.Endpoints["study"])
}

func TestHealth(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestNotFound(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	NotFound(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Not Found", body["error"])
	assert.Equal(t, "The requested endpoint does not exist", body["message"])
	assert.Equal(t, map[string]interface{}{
		"root":  "/",
		"study": "/study?topic=<topic>&mode=<normal|math>",
	}, body["availableEndpoints"])
}

func TestMethodNotAllowed(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	MethodNotAllowed(w, httptest.NewRequest(http.MethodDelete, "/study", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Contains(t, w.Body.String(), "Method DELETE is not supported for /study")
}
