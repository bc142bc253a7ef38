// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resample

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts resampling work.
type Metrics struct {
	// Draws counts individual values drawn from parent
	// distributions.
	Draws prometheus.Counter

	// Samples counts samples reduced to a statistic.
	Samples prometheus.Counter

	// Batches counts Session batches by statistic.
	Batches *prometheus.CounterVec
}

// NewMetrics returns a new set of metrics registered with reg. If reg
// is nil, the metrics are not registered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Draws: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "samplingdist",
			Name:      "draws_total",
			Help:      "Values drawn from parent distributions.",
		}),
		Samples: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "samplingdist",
			Name:      "samples_total",
			Help:      "Samples reduced to a statistic.",
		}),
		Batches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "samplingdist",
			Name:      "batches_total",
			Help:      "Resampling batches folded into a sampling distribution.",
		}, []string{"statistic"}),
	}
	if reg != nil {
		reg.MustRegister(m.Draws, m.Samples, m.Batches)
	}
	return m
}
