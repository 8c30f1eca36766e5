package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sync-resolver/internal/logger"
	"github.com/MKhiriev/go-sync-resolver/internal/utils"
)

func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

// executeWithTraceID runs withTraceID and returns the recorder together with
// the request seen by the next handler.
func executeWithTraceID(h *Handler, incoming string) (*httptest.ResponseRecorder, *http.Request) {
	var captured *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/sync/updates", nil)
	if incoming != "" {
		req.Header.Set(traceIDHeader, incoming)
	}

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)
	return rr, captured
}

// ---- Table test ----

func TestWithTraceID_TableTest(t *testing.T) {
	tests := []struct {
		name          string
		incoming      string
		wantSame      bool
		wantValidUUID bool
	}{
		{name: "incoming trace ID is reused", incoming: "client-cycle-7", wantSame: true},
		{name: "UUID from the client is reused", incoming: "550e8400-e29b-41d4-a716-446655440000", wantSame: true},
		{name: "missing trace ID is generated", incoming: "", wantValidUUID: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, captured := executeWithTraceID(newTestHandler(), tt.incoming)
			require.NotNil(t, captured, "next handler must be called")

			header := rr.Header().Get(traceIDHeader)
			require.NotEmpty(t, header)

			fromCtx, ok := utils.GetTraceIDFromContext(captured.Context())
			require.True(t, ok, "trace ID must be stored in the request context")
			assert.Equal(t, header, fromCtx)

			if tt.wantSame {
				assert.Equal(t, tt.incoming, header)
			}
			if tt.wantValidUUID {
				_, err := uuid.Parse(header)
				assert.NoError(t, err, "generated trace ID should be a UUID, got %s", header)
			}
		})
	}
}

// ---- Uniqueness ----

func TestWithTraceID_GeneratesUniqueIDs(t *testing.T) {
	h := newTestHandler()
	seen := make(map[string]struct{})

	for range 100 {
		rr, _ := executeWithTraceID(h, "")
		id := rr.Header().Get(traceIDHeader)

		_, duplicate := seen[id]
		require.False(t, duplicate, "duplicate trace ID generated: %s", id)
		seen[id] = struct{}{}
	}
}

func TestWithTraceID_ConcurrentRequests(t *testing.T) {
	h := newTestHandler()

	const n = 50
	done := make(chan string, n)
	for range n {
		go func() {
			rr, _ := executeWithTraceID(h, "")
			done <- rr.Header().Get(traceIDHeader)
		}()
	}

	seen := make(map[string]struct{})
	for range n {
		seen[<-done] = struct{}{}
	}

	assert.Len(t, seen, n)
}

// ---- Context ----

func TestWithTraceID_LoggerInContext(t *testing.T) {
	_, captured := executeWithTraceID(newTestHandler(), "abc")

	assert.NotNil(t, logger.FromRequest(captured))
}

func TestWithTraceID_OriginalRequestNotMutated(t *testing.T) {
	h := newTestHandler()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	originalCtx := req.Context()
	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	_, ok := utils.GetTraceIDFromContext(req.Context())
	assert.False(t, ok)
	assert.Equal(t, originalCtx, req.Context())
}
