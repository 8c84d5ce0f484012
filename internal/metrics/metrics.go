// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics exposes Prometheus collectors of the delta sync cache.
//
// Every method is safe on a nil *Metrics, so components can run without
// instrumentation in tests.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "stock_keeper"

// Local write outcomes.
const (
	OutcomeApplied    = "applied"
	OutcomeReconciled = "reconciled"
	OutcomeFailed     = "failed"
)

// Delta fetch results.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Metrics bundles the collectors registered on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	localWrites        *prometheus.CounterVec
	deltaFetches       *prometheus.CounterVec
	pagesFetched       *prometheus.CounterVec
	reconcilesInFlight *prometheus.GaugeVec
	deletes            *prometheus.CounterVec
	deleteDrift        *prometheus.CounterVec
}

// New creates the collectors and registers them together with the Go
// runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		localWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "local_writes_total",
			Help:      "Local writes applied to the cache by outcome.",
		}, []string{"collection", "outcome"}),
		deltaFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "delta_fetches_total",
			Help:      "Paginated fetches (full and delta) by result.",
		}, []string{"collection", "result"}),
		pagesFetched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pages_fetched_total",
			Help:      "Pages received from the remote API.",
		}, []string{"collection"}),
		reconcilesInFlight: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "reconciles_in_flight",
			Help:      "Delta fetches currently running.",
		}, []string{"collection"}),
		deletes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deletes_total",
			Help:      "Local deletes applied to the cache.",
		}, []string{"collection"}),
		deleteDrift: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "delete_drift_total",
			Help:      "Deletes whose previous delete activity did not match the local one.",
		}, []string{"collection"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.localWrites,
		m.deltaFetches,
		m.pagesFetched,
		m.reconcilesInFlight,
		m.deletes,
		m.deleteDrift,
	)

	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.HandlerFor(prometheus.NewRegistry(), promhttp.HandlerOpts{})
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) LocalWrite(collection, outcome string) {
	if m == nil {
		return
	}
	m.localWrites.WithLabelValues(collection, outcome).Inc()
}

func (m *Metrics) DeltaFetch(collection, result string) {
	if m == nil {
		return
	}
	m.deltaFetches.WithLabelValues(collection, result).Inc()
}

func (m *Metrics) PageFetched(collection string) {
	if m == nil {
		return
	}
	m.pagesFetched.WithLabelValues(collection).Inc()
}

// ReconcileStarted increments the in-flight gauge and returns the matching
// decrement.
func (m *Metrics) ReconcileStarted(collection string) func() {
	if m == nil {
		return func() {}
	}
	g := m.reconcilesInFlight.WithLabelValues(collection)
	g.Inc()
	return g.Dec
}

func (m *Metrics) Delete(collection string, drift bool) {
	if m == nil {
		return
	}
	m.deletes.WithLabelValues(collection).Inc()
	if drift {
		m.deleteDrift.WithLabelValues(collection).Inc()
	}
}
