package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Init — route registration
// ─────────────────────────────────────────────

func TestInit_RegistersAllRoutes(t *testing.T) {
	h, _, _ := newTestAPI(t)
	router := h.Init()

	want := map[string]string{
		"/api/version":           http.MethodGet,
		"/api/sync/updates":      http.MethodGet,
		"/api/sync/entries/{id}": http.MethodGet,
		"/api/sync/commit":       http.MethodPost,
	}

	got := map[string]string{}
	err := chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		got[route] = method
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, want, got)
}

func TestInit_UnknownRoutes_Return404(t *testing.T) {
	h, _, _ := newTestAPI(t)
	router := h.Init()

	for _, path := range []string{"/", "/api", "/api/sync", "/api/sync/unknown", "/api/user/login"} {
		t.Run(path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))

			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

func TestInit_WrongMethod_Returns404NotMethodNotAllowed(t *testing.T) {
	h, _, _ := newTestAPI(t)
	router := h.Init()

	tests := []struct {
		method string
		path   string
	}{
		{method: http.MethodPost, path: "/api/sync/updates"},
		{method: http.MethodGet, path: "/api/sync/commit"},
		{method: http.MethodDelete, path: "/api/version"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

func TestInit_TraceIDHeader(t *testing.T) {
	h, _, _ := newTestAPI(t)
	router := h.Init()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader), "trace id is always set")

	req := httptest.NewRequest(http.MethodGet, "/nowhere", nil)
	req.Header.Set(traceIDHeader, "client-trace")
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, "client-trace", rr.Header().Get(traceIDHeader))
}
