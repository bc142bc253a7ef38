// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resample

import (
	"math"

	"github.com/VividCortex/gohistogram"
)

// drawLogBins is the resolution of the streaming summary kept by a
// DrawLog.
const drawLogBins = 80

// A DrawLog records every raw value drawn by an Engine, in order,
// along with a streaming histogram for approximate quantiles.
//
// The zero value is an empty log.
type DrawLog struct {
	xs   []float64
	hist *gohistogram.NumericHistogram
}

func (l *DrawLog) add(xs []float64) {
	if l.hist == nil {
		l.hist = gohistogram.NewHistogram(drawLogBins)
	}
	l.xs = append(l.xs, xs...)
	for _, x := range xs {
		l.hist.Add(x)
	}
}

// Len returns the number of values in the log.
func (l *DrawLog) Len() int {
	return len(l.xs)
}

// Values returns every value in the log in the order drawn. The
// caller must not modify the result.
func (l *DrawLog) Values() []float64 {
	return l.xs
}

// Quantile returns an approximation of the q'th quantile of the
// logged values, or NaN if the log is empty.
func (l *DrawLog) Quantile(q float64) float64 {
	if len(l.xs) == 0 {
		return math.NaN()
	}
	return l.hist.Quantile(q)
}

// CDF returns an approximation of the fraction of logged values at
// or below x, or NaN if the log is empty.
func (l *DrawLog) CDF(x float64) float64 {
	if len(l.xs) == 0 {
		return math.NaN()
	}
	return l.hist.CDF(x)
}

// Reset empties the log.
func (l *DrawLog) Reset() {
	l.xs = nil
	l.hist = nil
}
