package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeWithTraceID(h *Handler, traceIDHeader string) *httptest.ResponseRecorder {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	middleware := h.withTraceID(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if traceIDHeader != "" {
		req.Header.Set("X-Trace-ID", traceIDHeader)
	}

	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

func TestWithTraceID_PropagatesIncomingID(t *testing.T) {
	h := newTestHandler(nil, nil, nil)

	rr := executeWithTraceID(h, "incoming-trace-id")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "incoming-trace-id", rr.Header().Get("X-Trace-ID"))
}

func TestWithTraceID_GeneratesUUIDWhenAbsent(t *testing.T) {
	h := newTestHandler(nil, nil, nil)

	rr := executeWithTraceID(h, "")

	assert.Equal(t, http.StatusOK, rr.Code)

	traceID := rr.Header().Get("X-Trace-ID")
	require.NotEmpty(t, traceID)

	_, err := uuid.Parse(traceID)
	assert.NoError(t, err, "generated trace id must be a valid UUID")
}
