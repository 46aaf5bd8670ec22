package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/liftstats/internal/telemetry/metrics"
)

// RequestMetrics counts requests per method and status and records the
// total handling duration.
func RequestMetrics(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(recorder, r)

			metricsManager.HistRequestDuration.Observe(time.Since(start).Seconds())
			metricsManager.CounterRequests.
				WithLabelValues(r.Method, strconv.Itoa(recorder.status)).
				Inc()
		})
	}
}

// statusRecorder remembers the written status code, the stdlib response
// writer gives no way to read it back.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(status int) {
	sr.status = status
	sr.ResponseWriter.WriteHeader(status)
}
