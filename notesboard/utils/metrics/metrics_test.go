package metrics

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_CountsByRoutePattern(t *testing.T) {
	m := NewMetrics("test")
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Delete("/api/notes/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	for _, id := range []string{"a", "b"} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/api/notes/"+id, nil))
		require.Equal(t, http.StatusNoContent, rr.Code)
	}

	got := testutil.ToFloat64(m.RequestCounter.WithLabelValues(http.MethodDelete, "/api/notes/{id}", "204"))
	assert.Equal(t, float64(2), got)
	assert.Equal(t, float64(0), testutil.ToFloat64(m.RequestsInFlight))
}

func TestHandler_ExposesRegistry(t *testing.T) {
	m := NewMetrics("test")
	m.RecordDBPoolStats(sql.DBStats{OpenConnections: 3, InUse: 1, Idle: 2})

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `notesboard_test_db_connection_pool{stat="open"} 3`)
}
