// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package freq implements empirical distributions represented as
// frequency tables over equal-width bins.
package freq // import "github.com/aclements/go-samplingdist/freq"

import (
	"errors"
	"fmt"
	"math"

	"github.com/aclements/go-samplingdist/stats"
	"gonum.org/v1/gonum/floats"
)

// ErrFreqs is returned when frequencies do not match their bins or
// are negative.
var ErrFreqs = errors.New("invalid frequencies")

// A Dist is an empirical distribution: a set of equally spaced bin
// centers and the number of observations (or total weight) at each.
//
// A Dist caches Σ v·f and Σ v²·f over its bins. The mean, standard
// deviation, skew and kurtosis are computed from these cached sums,
// so after changing frequencies with SetFreq the caller must call
// Recompute before reading any of them.
//
// A Dist is never resized. It is not safe for concurrent use while
// it is being modified.
type Dist struct {
	values []float64
	freqs  []float64

	sum, sumSq float64

	// lo and hi are the smallest and largest observations: the
	// raw points for FromPoints, otherwise the centers of the
	// outermost occupied bins. An empty Dist has lo > hi.
	lo, hi float64

	// stale is set by SetFreq and cleared by Recompute.
	stale bool
}

// FromPoints returns the distribution of points over the bins
// centered at values. Each point is counted in its nearest bin (see
// BinIndex).
//
// The cached sums are accumulated from the points themselves rather
// than from the bin centers, so the mean and standard deviation of
// the result are exact regardless of the bin width.
func FromPoints(points, values []float64) (*Dist, error) {
	d, err := Empty(values)
	if err != nil {
		return nil, err
	}
	for _, x := range points {
		d.freqs[BinIndex(x, d.values)]++
		d.sum += x
		d.sumSq += x * x
		d.lo = math.Min(d.lo, x)
		d.hi = math.Max(d.hi, x)
	}
	return d, nil
}

// Empty returns a distribution with no observations over the bins
// centered at values.
func Empty(values []float64) (*Dist, error) {
	if err := checkBins(values); err != nil {
		return nil, err
	}
	return &Dist{
		values: append([]float64(nil), values...),
		freqs:  make([]float64, len(values)),
		lo:     math.Inf(1),
		hi:     math.Inf(-1),
	}, nil
}

// New returns the distribution with frequency freqs[i] at the bin
// centered at values[i].
func New(values, freqs []float64) (*Dist, error) {
	d, err := newDist(values, freqs)
	if err != nil {
		return nil, err
	}
	d.Recompute()
	return d, nil
}

// NewWithAggregates is like New, but uses the given Σ v·f and
// Σ v²·f rather than computing them from the bins. This is how a
// distribution built from raw observations is restored without
// losing the precision of its sums.
//
// The observations are assumed to span the occupied bins, so if only
// one bin is occupied the standard deviation is 0.
func NewWithAggregates(values, freqs []float64, sum, sumSq float64) (*Dist, error) {
	d, err := newDist(values, freqs)
	if err != nil {
		return nil, err
	}
	d.sum, d.sumSq = sum, sumSq
	d.lo, d.hi = d.extent()
	return d, nil
}

func newDist(values, freqs []float64) (*Dist, error) {
	if err := checkBins(values); err != nil {
		return nil, err
	}
	if len(freqs) != len(values) {
		return nil, fmt.Errorf("%w: %d frequencies for %d bins", ErrFreqs, len(freqs), len(values))
	}
	for i, f := range freqs {
		if !(f >= 0) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%w: frequency %v at bin %d", ErrFreqs, f, i)
		}
	}
	return &Dist{
		values: append([]float64(nil), values...),
		freqs:  append([]float64(nil), freqs...),
	}, nil
}

// Values returns the bin centers of d. The caller must not modify
// the result.
func (d *Dist) Values() []float64 {
	return d.values
}

// Freqs returns the frequencies of d. The caller must not modify the
// result; use SetFreq.
func (d *Dist) Freqs() []float64 {
	return d.freqs
}

// Freq returns the frequency of bin i.
func (d *Dist) Freq(i int) float64 {
	return d.freqs[i]
}

// SetFreq sets the frequency of bin i to f. The cached sums are not
// updated until Recompute is called.
func (d *Dist) SetFreq(i int, f float64) {
	if !(f >= 0) {
		panic(fmt.Sprintf("negative frequency %v", f))
	}
	d.freqs[i] = f
	d.stale = true
}

// Recompute recomputes Σ v·f and Σ v²·f from the bins.
func (d *Dist) Recompute() {
	d.sum = floats.Dot(d.values, d.freqs)
	d.sumSq = 0
	for i, v := range d.values {
		d.sumSq += v * v * d.freqs[i]
	}
	d.lo, d.hi = d.extent()
	d.stale = false
}

// extent returns the centers of the lowest and highest occupied bins,
// or +Inf, -Inf if d is empty.
func (d *Dist) extent() (lo, hi float64) {
	if d.N() == 0 {
		return math.Inf(1), math.Inf(-1)
	}
	return d.Min(), d.Max()
}

// Sums returns the cached Σ v·f and Σ v²·f.
func (d *Dist) Sums() (sum, sumSq float64) {
	d.checkFresh()
	return d.sum, d.sumSq
}

func (d *Dist) checkFresh() {
	if d.stale {
		panic("freq: frequencies changed without Recompute")
	}
}

// NumBins returns the number of bins in d.
func (d *Dist) NumBins() int {
	return len(d.values)
}

// N returns the number of observations in d, that is, the sum of its
// frequencies.
func (d *Dist) N() float64 {
	return floats.Sum(d.freqs)
}

// Step returns the distance between adjacent bin centers.
func (d *Dist) Step() float64 {
	return d.values[1] - d.values[0]
}

// Mean returns the mean of d. It returns NaN if d is empty.
func (d *Dist) Mean() float64 {
	d.checkFresh()
	n := d.N()
	if n == 0 {
		return math.NaN()
	}
	return d.sum / n
}

// Median returns the median of d.
//
// This uses the rank R = (n+1)/2. If the cumulative frequency reaches
// floor(R) exactly at some bin, the median is interpolated from that
// bin toward the next by the fractional part of R (so an even number
// of observations splits the difference between the two middle
// bins); at the last bin there is nothing to interpolate toward.
// Otherwise it is the center of the first bin whose cumulative
// frequency exceeds floor(R). It returns NaN if d is empty.
func (d *Dist) Median() float64 {
	n := d.N()
	if n == 0 {
		return math.NaN()
	}
	r := 0.5 * (n + 1)
	ir := math.Floor(r)
	last := len(d.values) - 1
	nc := 0.0
	for i, f := range d.freqs {
		nc += f
		if nc == ir {
			if i == last {
				return d.values[i]
			}
			return d.values[i] + (r-ir)*(d.values[i+1]-d.values[i])
		} else if nc > ir {
			return d.values[i]
		}
	}
	// Fractional total weight below 1.
	return d.values[last]
}

// StdDev returns the population standard deviation of d,
// sqrt((Σv²f - (Σvf)²/n) / n). It returns NaN if d is empty and 0 if
// d has at most one observation or all of its observations are
// equal.
func (d *Dist) StdDev() float64 {
	d.checkFresh()
	n := d.N()
	if n == 0 {
		return math.NaN()
	} else if n <= 1 || d.lo == d.hi {
		return 0
	}
	v := (d.sumSq - d.sum*d.sum/n) / n
	if v <= 0 {
		// Cancellation in the sums.
		return 0
	}
	return math.Sqrt(v)
}

// Skew returns the population skewness of d given its mean and
// standard deviation. It returns 0 if sd is 0 or d has fewer than
// two observations.
func (d *Dist) Skew(mean, sd float64) float64 {
	d.checkFresh()
	skew, _ := stats.Moments(d.values, d.freqs, mean, sd)
	return skew
}

// Kurtosis returns the population excess kurtosis of d given its
// mean and standard deviation. It returns 0 if sd is 0 or d has fewer
// than two observations.
func (d *Dist) Kurtosis(mean, sd float64) float64 {
	d.checkFresh()
	_, kurt := stats.Moments(d.values, d.freqs, mean, sd)
	return kurt
}

// Min returns the center of the lowest bin with a non-zero
// frequency, or 0 if d is empty.
func (d *Dist) Min() float64 {
	for i, f := range d.freqs {
		if f > 0 {
			return d.values[i]
		}
	}
	return 0
}

// Max returns the center of the highest bin with a non-zero
// frequency, or 0 if d is empty.
func (d *Dist) Max() float64 {
	for i := len(d.freqs) - 1; i >= 0; i-- {
		if d.freqs[i] > 0 {
			return d.values[i]
		}
	}
	return 0
}

// Range returns Max() - Min(), or 0 if d has fewer than two
// observations.
func (d *Dist) Range() float64 {
	if d.N() < 2 {
		return 0
	}
	return d.Max() - d.Min()
}

// Statistics returns a snapshot of the summary statistics of d.
// Statistics that are only defined for raw observations are NaN.
func (d *Dist) Statistics() stats.Result {
	mean, sd := d.Mean(), d.StdDev()
	skew, kurt := stats.Moments(d.values, d.freqs, mean, sd)
	return stats.Result{
		N:                d.N(),
		Mean:             mean,
		Median:           d.Median(),
		StdDev:           sd,
		Range:            d.Range(),
		Skew:             skew,
		Kurtosis:         kurt,
		MeanAbsDev:       math.NaN(),
		VarianceUnbiased: math.NaN(),
	}
}

// String returns a short description of d.
func (d *Dist) String() string {
	return fmt.Sprintf("%d bins [%v, %v] N=%v", len(d.values), d.values[0], d.values[len(d.values)-1], d.N())
}
