// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry is separate from the global default so tests can build many routers.
var Registry = prometheus.NewRegistry()

var (
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pollroster_http_requests_total",
		Help: "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "code"})

	RequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pollroster_http_request_duration_seconds",
		Help:    "HTTP request latency by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	VotesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pollroster_votes_total",
		Help: "Vote attempts by outcome.",
	}, []string{"outcome"})

	ImportsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pollroster_imports_total",
		Help: "Share-link imports by outcome.",
	}, []string{"outcome"})

	ExportRows = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pollroster_export_rows_total",
		Help: "Roster rows written to CSV exports.",
	})
)

func init() {
	Registry.MustRegister(
		RequestsTotal,
		RequestDuration,
		VotesTotal,
		ImportsTotal,
		ExportRows,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// Handler serves the registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
