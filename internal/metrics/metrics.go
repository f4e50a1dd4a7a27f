package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "restnotes_http_requests_total",
		Help: "HTTP requests by method, route pattern and status code.",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "restnotes_http_request_duration_seconds",
		Help:    "Time from request receipt to response, by route pattern.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"route"})

	NotesCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "restnotes_notes_created_total",
		Help: "Notes successfully created.",
	})

	TagsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "restnotes_tags_created_total",
		Help: "Tags successfully created.",
	})

	UnresolvedReferencesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "restnotes_unresolved_references_total",
		Help: "Create or patch requests rejected because a tag reference did not resolve.",
	})

	ValidationFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "restnotes_validation_failures_total",
		Help: "Requests rejected by input validation, by resource.",
	}, []string{"resource"})
)
