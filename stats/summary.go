// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// A Func reduces a sample of observations to a single statistic.
type Func func(xs []float64) float64

// Mean returns the arithmetic mean of xs. It returns NaN if xs is
// empty.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return nan
	}
	return floats.Sum(xs) / float64(len(xs))
}

// Median returns the median of xs. For an even number of
// observations this is the average of the two middle values. xs is
// not modified. It returns NaN if xs is empty.
func Median(xs []float64) float64 {
	n := len(xs)
	if n == 0 {
		return nan
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// Range returns max(xs) - min(xs), or 0 if xs has fewer than two
// observations.
func Range(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	lo, hi := xs[0], xs[1]
	if lo > hi {
		lo, hi = hi, lo
	}
	for _, x := range xs[2:] {
		if x < lo {
			lo = x
		} else if x > hi {
			hi = x
		}
	}
	return hi - lo
}

// Variance returns the population variance of xs, computed in a
// single pass as (Σx² - (Σx)²/n) / n. It returns NaN if xs is empty.
func Variance(xs []float64) float64 {
	if len(xs) == 0 {
		return nan
	}
	n := float64(len(xs))
	sum := floats.Sum(xs)
	sumSq := floats.Dot(xs, xs)
	// Cancellation can leave identical observations with a
	// tiny negative variance.
	return math.Max(0, (sumSq-sum*sum/n)/n)
}

// StdDev returns the population standard deviation of xs.
func StdDev(xs []float64) float64 {
	return math.Sqrt(Variance(xs))
}

// VarianceUnbiased returns the Bessel-corrected sample variance of
// xs. It returns NaN if xs has fewer than two observations.
func VarianceUnbiased(xs []float64) float64 {
	n := float64(len(xs))
	if n <= 1 {
		return nan
	}
	return Variance(xs) * n / (n - 1)
}

// MeanAbsDev returns the mean absolute deviation of xs from its
// mean.
func MeanAbsDev(xs []float64) float64 {
	m := Mean(xs)
	total := 0.0
	for _, x := range xs {
		total += math.Abs(x - m)
	}
	return total / float64(len(xs))
}

var funcs = map[string]Func{
	"mean":                  Mean,
	"median":                Median,
	"standardDeviation":     StdDev,
	"variance":              Variance,
	"varianceUnbiased":      VarianceUnbiased,
	"meanAbsoluteDeviation": MeanAbsDev,
	"range":                 Range,
}

// names is the order in which Names reports the statistics.
var names = []string{
	"mean",
	"median",
	"standardDeviation",
	"variance",
	"varianceUnbiased",
	"meanAbsoluteDeviation",
	"range",
}

// FuncByName returns the statistic with the given identifier, or nil
// if name is not one of the identifiers returned by Names.
func FuncByName(name string) Func {
	return funcs[name]
}

// Names returns the identifiers accepted by FuncByName.
func Names() []string {
	return append([]string(nil), names...)
}

// MinSampleSize returns the smallest sample size for which the named
// statistic is finite, or 0 if name is unknown.
func MinSampleSize(name string) int {
	switch {
	case funcs[name] == nil:
		return 0
	case name == "varianceUnbiased":
		return 2
	}
	return 1
}
