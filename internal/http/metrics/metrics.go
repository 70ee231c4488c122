package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"artistly/internal/domain/application"
)

const namespace = "artistly"

// Collector owns a private registry so tests can build as many as they need.
type Collector struct {
	registry      *prometheus.Registry
	requests      *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	errors        prometheus.Counter
	filterResults *prometheus.HistogramVec
	submissions   *prometheus.CounterVec
	reviews       *prometheus.CounterVec
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		errors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_errors_total",
			Help:      "Total number of 5xx HTTP responses.",
		}),
		filterResults: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "catalog_filter_matches",
			Help:      "Number of artists matched per filter evaluation.",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
		}, []string{"facets"}),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Finished application submissions by final state.",
		}, []string{"state"}),
		reviews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "review_decisions_total",
			Help:      "Review decisions by resulting status.",
		}, []string{"status"}),
	}
	c.registry.MustRegister(
		c.requests,
		c.duration,
		c.errors,
		c.filterResults,
		c.submissions,
		c.reviews,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

func (c *Collector) ObserveRequest(method, path string, status int, elapsed time.Duration) {
	route := Route(path)
	c.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.duration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (c *Collector) IncErrors() {
	c.errors.Inc()
}

func (c *Collector) FilterApplied(facets string, matches int) {
	c.filterResults.WithLabelValues(facets).Observe(float64(matches))
}

func (c *Collector) SubmissionFinished(state application.State) {
	c.submissions.WithLabelValues(string(state)).Inc()
}

func (c *Collector) ReviewDecided(status application.ReviewStatus) {
	c.reviews.WithLabelValues(string(status)).Inc()
}

// Route collapses identifiers in a path so the route label stays bounded.
func Route(path string) string {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	for i, segment := range segments {
		if i == 0 {
			continue
		}
		if _, err := uuid.Parse(segment); err == nil {
			segments[i] = ":id"
			continue
		}
		switch segments[i-1] {
		case "artists", "categories":
			segments[i] = ":id"
		}
	}
	return "/" + strings.Join(segments, "/")
}
