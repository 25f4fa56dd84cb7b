package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/study-api/internal/api/shared"
	"github.com/phrazzld/study-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testOrigins = []string{"https://smartstudying.netlify.app", "http://localhost:5173"}

func TestAllowOrigin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		origin string
		want   bool
	}{
		{"https://smartstudying.netlify.app", true},
		{"http://localhost:5173", true},
		{"http://localhost:3001", true},
		{"http://127.0.0.1:8080", true},
		{"https://evil.example.com", false},
		{"https://smartstudying.netlify.app.evil.com", false},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, AllowOrigin(testOrigins, tc.origin), tc.origin)
	}
}

func TestCORS(t *testing.T) {
	t.Parallel()

	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := NewCORS(testOrigins)(ok)

	t.Run("allowed origin gets credentials headers", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/study?topic=Gravity", nil)
		req.Header.Set("Origin", "https://smartstudying.netlify.app")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "https://smartstudying.netlify.app", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("disallowed origin is served without cors headers", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight returns 204", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodOptions, "/study", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("options without origin returns 204", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/", nil))
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestTraceMiddleware(t *testing.T) {
	t.Parallel()

	log, buf := logger.NewTestLogger(t)

	var seenTraceID string
	handler := NewTraceMiddleware(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenTraceID = shared.GetTraceID(r.Context())
		logger.FromContext(r.Context()).InfoContext(r.Context(), "inside handler")
		w.WriteHeader(http.StatusOK)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Len(t, seenTraceID, 32)
	assert.Equal(t, seenTraceID, w.Header().Get(shared.TraceIDHeader))

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	for _, e := range entries {
		assert.Equal(t, seenTraceID, e["trace_id"], "every request log line carries the trace ID")
	}
}

func TestRecoverer(t *testing.T) {
	t.Parallel()

	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("kaboom")
	})

	tests := []struct {
		name        string
		exposeStack bool
		wantMessage string
	}{
		{name: "production hides details", exposeStack: false, wantMessage: "Something went wrong"},
		{name: "development exposes stack", exposeStack: true, wantMessage: "kaboom"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			log, _ := logger.NewTestLogger(t)
			w := httptest.NewRecorder()
			NewRecoverer(log, tc.exposeStack)(panicking).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, http.StatusInternalServerError, w.Code)

			var body shared.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "Internal Server Error", body.Error)
			assert.Equal(t, tc.wantMessage, body.Message)
			assert.Equal(t, tc.exposeStack, body.Stack != "")
		})
	}
}

func TestRequestLogger(t *testing.T) {
	t.Parallel()

	log, buf := logger.NewTestLogger(t)
	handler := NewRequestLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/study?topic=Tea", nil))

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "request completed", entries[0]["msg"])
	assert.Equal(t, "/study?topic=Tea", entries[0]["url"])
	assert.Equal(t, float64(http.StatusTeapot), entries[0]["status"])
	assert.Equal(t, float64(len("short and stout")), entries[0]["bytes"])
}
