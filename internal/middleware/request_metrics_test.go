package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/2beens/volumeplanner/internal/telemetry/metrics"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRequestMetrics(t *testing.T) {
	metricsManager := metrics.NewTestManager()

	r := mux.NewRouter()
	r.HandleFunc("/plans/intensity/{status}", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid training status", http.StatusBadRequest)
	}).Methods("GET").Name("plans-intensity")
	r.Use(RequestMetrics(metricsManager))

	for range 2 {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/plans/intensity/9", nil))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	}

	assert.Equal(t, float64(2), testutil.ToFloat64(metricsManager.CounterRequests.WithLabelValues("GET", "400")))
	assert.Equal(t, 1, testutil.CollectAndCount(metricsManager.HistogramRequestDuration))
}

func TestResponseWriter_KeepsFirstStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusCreated, w.statusCode)
	assert.Equal(t, http.StatusCreated, rr.Code)
}
