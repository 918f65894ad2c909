package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	// LeaderboardDuration tracks the full-scan ranking computation, the
	// one operation here that grows with student count.
	LeaderboardDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "leaderboard_computation_seconds",
			Help:    "Duration of student ranking computations",
			Buckets: []float64{0.05, 0.1, 0.5, 1, 2, 5, 10},
		},
	)

	AutoGradedSubmissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "autograded_submissions_total",
			Help: "Submissions processed by the auto-grader",
		},
		[]string{"outcome"}, // graded, skipped_unparseable, skipped_manual, skipped_no_questions
	)
)

func Init() {
	prometheus.MustRegister(RequestCounter)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(LeaderboardDuration)
	prometheus.MustRegister(AutoGradedSubmissions)
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
