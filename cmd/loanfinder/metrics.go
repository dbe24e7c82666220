// SPDX-License-Identifier: MIT
// Package: lvloan/cmd/loanfinder
//
// metrics.go — per-run Prometheus collectors, dumped in the text exposition
// format when --metrics is set.

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Phase labels.
const (
	phaseBuild      = "build"
	phasePreprocess = "preprocess"
	phaseCached     = "cached_query"
	phaseSearch     = "search_query"
)

type metrics struct {
	reg      *prometheus.Registry
	phase    *prometheus.HistogramVec
	achieved *prometheus.GaugeVec
	lenders  *prometheus.GaugeVec
	graph    *prometheus.GaugeVec
}

func newMetrics() *metrics {
	m := &metrics{
		reg: prometheus.NewRegistry(),
		phase: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "loanfinder_phase_duration_seconds",
			Help:    "Wall time of each driver phase",
			Buckets: prometheus.ExponentialBuckets(1e-5, 4, 12),
		}, []string{"phase"}),
		achieved: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "loanfinder_achieved_amount",
			Help: "Amount collected by the last query",
		}, []string{"finder"}),
		lenders: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "loanfinder_lenders",
			Help: "Number of lenders drawn by the last query",
		}, []string{"finder"}),
		graph: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "loanfinder_graph_size",
			Help: "Actors and arcs of the generated graph",
		}, []string{"kind"}),
	}
	m.reg.MustRegister(m.phase, m.achieved, m.lenders, m.graph)

	return m
}

// time runs fn and records its duration under phase.
func (m *metrics) time(phase string, fn func() error) (time.Duration, error) {
	start := time.Now()
	err := fn()
	d := time.Since(start)
	m.phase.WithLabelValues(phase).Observe(d.Seconds())

	return d, err
}

func (m *metrics) observeGraph(actors, arcs int) {
	m.graph.WithLabelValues("actors").Set(float64(actors))
	m.graph.WithLabelValues("arcs").Set(float64(arcs))
}

func (m *metrics) observeResult(finder string, achieved float64, lenders int) {
	m.achieved.WithLabelValues(finder).Set(achieved)
	m.lenders.WithLabelValues(finder).Set(float64(lenders))
}

// write dumps every collected family to w.
func (m *metrics) write(w io.Writer) error {
	families, err := m.reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err = enc.Encode(mf); err != nil {
			return fmt.Errorf("encode %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
