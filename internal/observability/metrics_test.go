package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_PassesThroughResponse(t *testing.T) {
	handler := Middleware("/render", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte("rejected"))
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/render", nil))

	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	assert.Equal(t, "rejected", recorder.Body.String())
}

func TestMetricsHandler_ServesScrapeEndpoint(t *testing.T) {
	ObserveRender(5*time.Millisecond, "ok")
	ObserveOptimize(7*time.Millisecond, "ok")
	SetCacheStats(0.75, 12)

	recorder := httptest.NewRecorder()
	MetricsHandler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	assert.Contains(t, body, "resume_engine_render_requests_total")
	assert.Contains(t, body, "resume_engine_cache_hit_rate")
}
