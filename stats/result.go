// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/perf/benchunit"
	"gonum.org/v1/gonum/stat"
)

// A Result is a snapshot of the summary statistics of a set of
// observations.
type Result struct {
	// N is the number of observations. For binned data this is
	// the total frequency, which need not be an integer.
	N float64

	Mean, Median float64

	// StdDev is the population standard deviation.
	StdDev float64

	Range float64

	// Skew and Kurtosis are the population skewness and excess
	// kurtosis. Both are 0 if there are fewer than two
	// observations or StdDev is 0.
	Skew, Kurtosis float64

	// MeanAbsDev and VarianceUnbiased are only meaningful for
	// raw observations. They are NaN for results computed from
	// binned data.
	MeanAbsDev       float64
	VarianceUnbiased float64
}

// Describe returns the summary statistics of the raw observations
// xs.
func Describe(xs []float64) Result {
	r := Result{
		N:                float64(len(xs)),
		Mean:             Mean(xs),
		Median:           Median(xs),
		StdDev:           StdDev(xs),
		Range:            Range(xs),
		MeanAbsDev:       MeanAbsDev(xs),
		VarianceUnbiased: VarianceUnbiased(xs),
	}
	r.Skew, r.Kurtosis = Moments(xs, nil, r.Mean, r.StdDev)
	return r
}

// Moments returns the population skewness and excess kurtosis of xs
// about the given mean and standard deviation. If weights is non-nil,
// xs[i] is counted weights[i] times. Both results are 0 if the total
// weight is less than 2 or sd is 0.
func Moments(xs, weights []float64, mean, sd float64) (skew, kurtosis float64) {
	n := float64(len(xs))
	if weights != nil {
		n = 0
		for _, w := range weights {
			n += w
		}
	}
	if n < 2 || sd == 0 || math.IsNaN(sd) {
		return 0, 0
	}
	m3 := stat.MomentAbout(3, xs, mean, weights)
	m4 := stat.MomentAbout(4, xs, mean, weights)
	sd2 := sd * sd
	return m3 / (sd2 * sd), m4/(sd2*sd2) - 3
}

// String formats r for display. Location and spread share a single
// scale, chosen so every one of them shows at least three
// significant digits.
func (r Result) String() string {
	spread := []float64{r.Mean, r.Median, r.StdDev, r.Range}
	raw := !math.IsNaN(r.MeanAbsDev)
	if raw {
		spread = append(spread, r.MeanAbsDev)
	}
	sc := benchunit.CommonScale(finite(spread), benchunit.Decimal)

	var b strings.Builder
	fmt.Fprintf(&b, "N %s  mean %s  median %s  std dev %s  range %s\n",
		strconv.FormatFloat(r.N, 'g', -1, 64),
		sc.Format(r.Mean), sc.Format(r.Median), sc.Format(r.StdDev), sc.Format(r.Range))
	fmt.Fprintf(&b, "skew %.3f  kurtosis %.3f", r.Skew, r.Kurtosis)
	if raw {
		fmt.Fprintf(&b, "  mean abs dev %s", sc.Format(r.MeanAbsDev))
	}
	if !math.IsNaN(r.VarianceUnbiased) {
		fmt.Fprintf(&b, "  unbiased variance %s", benchunit.Scale(r.VarianceUnbiased, benchunit.Decimal))
	}
	b.WriteByte('\n')
	return b.String()
}

// finite returns the finite elements of xs.
func finite(xs []float64) []float64 {
	out := xs[:0:0]
	for _, x := range xs {
		if !math.IsNaN(x) && !math.IsInf(x, 0) {
			out = append(out, x)
		}
	}
	return out
}
