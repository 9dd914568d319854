package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/2beens/volumeplanner/internal/telemetry/metrics"

	"github.com/go-redis/redis_rate/v9"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRateLimiter struct {
	allowed   int
	err       error
	keys      []string
	lastLimit redis_rate.Limit
}

func (f *fakeRateLimiter) Allow(_ context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error) {
	f.keys = append(f.keys, key)
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	if f.allowed <= 0 {
		return &redis_rate.Result{Limit: limit, Allowed: 0, RetryAfter: 1500 * time.Millisecond}, nil
	}
	f.allowed--
	return &redis_rate.Result{Limit: limit, Allowed: 1, Remaining: f.allowed}, nil
}

func TestRateLimit(t *testing.T) {
	metricsManager := metrics.NewTestManager()
	limiter := &fakeRateLimiter{allowed: 2}

	nextCalls := 0
	handler := RateLimit(limiter, "plans-generate", 2, metricsManager)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nextCalls++
		}),
	)

	statuses := make([]int, 0, 3)
	for range 3 {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/plans/generate", nil)
		req.RemoteAddr = "10.0.0.7:51234"
		handler.ServeHTTP(rr, req)
		statuses = append(statuses, rr.Code)
		if rr.Code == http.StatusTooManyRequests {
			assert.Equal(t, "2", rr.Header().Get("Retry-After"))
		}
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, statuses)
	assert.Equal(t, 2, nextCalls)
	require.Len(t, limiter.keys, 3)
	assert.Equal(t, "plans-generate::10.0.0.7", limiter.keys[0])
	assert.Equal(t, redis_rate.PerMinute(2), limiter.lastLimit)
	assert.Equal(t, float64(1), testutil.ToFloat64(metricsManager.CounterRateLimitedRequests))
}

func TestRateLimit_LimiterErrorFailsOpen(t *testing.T) {
	limiter := &fakeRateLimiter{err: errors.New("redis down")}

	nextCalled := false
	handler := RateLimit(limiter, "plans-generate", 10, nil)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nextCalled = true
		}),
	)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/plans/generate", nil))

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusOK, rr.Code)
}
