package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewGeocoderRetriesTotal returns a Prometheus counter for the number of retry attempts performed by the geocoder
func NewGeocoderRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "geocoder_retries_total",
		Help: "Total number of retry attempts performed by the geocoding gateway",
	})
}

// NewGeocodeCacheTotal counts geocode cache lookups by result (hit, miss, error).
func NewGeocodeCacheTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "geocode_cache_lookups_total",
		Help: "Geocode cache lookups by result",
	}, []string{"result"})
}

// NewAssignmentOutcomesTotal counts orchestrator results by operation and result.
func NewAssignmentOutcomesTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "assignment_outcomes_total",
		Help: "Assignment attempts by operation and result",
	}, []string{"operation", "result"})
}

// NewHTTPRequestsTotal counts HTTP requests by method, route pattern and status.
func NewHTTPRequestsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
}

// NewHTTPRequestDuration observes HTTP latency by method, route pattern and status.
func NewHTTPRequestDuration() *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})
}

// Set holds every collector the service exports.
type Set struct {
	HTTPRequests       *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec
	RateLimitExceeded  prometheus.Counter
	GeocoderRetries    prometheus.Counter
	GeocodeCache       *prometheus.CounterVec
	AssignmentOutcomes *prometheus.CounterVec
}

// NewSet creates the collectors and registers them on reg. A nil reg skips registration.
func NewSet(reg prometheus.Registerer) (*Set, error) {
	s := &Set{
		HTTPRequests:       NewHTTPRequestsTotal(),
		HTTPDuration:       NewHTTPRequestDuration(),
		RateLimitExceeded:  NewRateLimitExceededTotal(),
		GeocoderRetries:    NewGeocoderRetriesTotal(),
		GeocodeCache:       NewGeocodeCacheTotal(),
		AssignmentOutcomes: NewAssignmentOutcomesTotal(),
	}
	if reg == nil {
		return s, nil
	}
	for _, c := range []prometheus.Collector{
		s.HTTPRequests, s.HTTPDuration, s.RateLimitExceeded,
		s.GeocoderRetries, s.GeocodeCache, s.AssignmentOutcomes,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return s, nil
}
