package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutorial-api/pkg/log"
)

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.GET("/things/:id", func(c *gin.Context) {
		c.String(http.StatusOK, log.RequestIDFrom(c.Request.Context()))
	})
	r.GET("/invalid", func(c *gin.Context) {
		c.Status(http.StatusUnprocessableEntity)
	})
	return r
}

func get(r http.Handler, target string, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	mw := New(log.NewNop(), Config{}, nil)
	r := newEngine(mw.RequestID())

	t.Run("generated", func(t *testing.T) {
		w := get(r, "/things/1")
		id := w.Header().Get(HeaderRequestID)
		require.NotEmpty(t, id)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("propagated", func(t *testing.T) {
		w := get(r, "/things/1", HeaderRequestID, "abc-123")
		assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))
		assert.Equal(t, "abc-123", w.Body.String())
	})

	t.Run("oversized replaced", func(t *testing.T) {
		long := strings.Repeat("x", maxRequestIDLen+1)
		w := get(r, "/things/1", HeaderRequestID, long)
		assert.NotEqual(t, long, w.Header().Get(HeaderRequestID))
	})
}

func TestRateLimit(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		mw := New(log.NewNop(), Config{}, nil)
		r := newEngine(mw.RateLimit())
		for i := 0; i < 20; i++ {
			assert.Equal(t, http.StatusOK, get(r, "/things/1").Code)
		}
	})

	t.Run("burst exhausted", func(t *testing.T) {
		mw := New(log.NewNop(), Config{
			RateLimitEnabled: true,
			RateLimitPerMin:  1,
			RateLimitBurst:   2,
		}, nil)
		r := newEngine(mw.RateLimit())

		assert.Equal(t, http.StatusOK, get(r, "/things/1").Code)
		assert.Equal(t, http.StatusOK, get(r, "/things/1").Code)

		w := get(r, "/things/1")
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Contains(t, w.Body.String(), `"error_code":429`)
	})
}

func TestNewRateLimiterDefaults(t *testing.T) {
	rl := newRateLimiter(120, 0, 0, 0)
	assert.Equal(t, 12, rl.burst)
	assert.InDelta(t, 2.0, float64(rl.rate), 1e-9)

	rl = newRateLimiter(5, 0, 0, 0)
	assert.Equal(t, 1, rl.burst)
}

func TestMetrics(t *testing.T) {
	metrics := NewMetrics()
	mw := New(log.NewNop(), Config{}, metrics)
	r := newEngine(mw.Metrics())

	get(r, "/things/1")
	get(r, "/things/2")
	get(r, "/invalid")
	get(r, "/nowhere")

	w := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, `http_requests_total{method="GET",route="/things/:id",status="200"} 2`)
	assert.Contains(t, body, `http_requests_total{method="GET",route="unmatched",status="404"} 1`)
	assert.Contains(t, body, `http_validation_errors_total{route="/invalid"} 1`)
	assert.Contains(t, body, "http_request_duration_seconds_bucket")
}

func TestMetricsDisabled(t *testing.T) {
	mw := New(log.NewNop(), Config{}, nil)
	r := newEngine(mw.Metrics(), mw.AccessLog())
	assert.Equal(t, http.StatusOK, get(r, "/things/1").Code)
}
