// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package metrics counts pages, records, and exports for a harvest run.
// The counters live on a private registry so a run can be written out as
// a node_exporter textfile when it finishes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "paper_harvester"

// Metrics holds the harvest counters. A nil *Metrics is valid and records
// nothing.
type Metrics struct {
	Registry *prometheus.Registry

	// Pages counts fetched pages by domain and outcome (records, malformed, empty).
	Pages *prometheus.CounterVec

	// Records counts records collected by domain.
	Records *prometheus.CounterVec

	// Exports counts CSV files written by domain.
	Exports *prometheus.CounterVec
}

// New creates the counters on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Metrics{
		Registry: reg,
		Pages: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pages_total",
			Help:      "Feed pages fetched, by domain and outcome.",
		}, []string{"domain", "outcome"}),
		Records: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_total",
			Help:      "Paper records collected, by domain.",
		}, []string{"domain"}),
		Exports: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exports_total",
			Help:      "CSV files written, by domain.",
		}, []string{"domain"}),
	}
}

// ObservePage counts one page with the given outcome.
func (m *Metrics) ObservePage(domain, outcome string) {
	if m == nil {
		return
	}
	m.Pages.WithLabelValues(domain, outcome).Inc()
}

// AddRecords adds n collected records for domain.
func (m *Metrics) AddRecords(domain string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.Records.WithLabelValues(domain).Add(float64(n))
}

// ObserveExport counts one written file for domain.
func (m *Metrics) ObserveExport(domain string) {
	if m == nil {
		return
	}
	m.Exports.WithLabelValues(domain).Inc()
}

// WriteTextfile writes the registry in the Prometheus text format to path.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.Registry)
}
