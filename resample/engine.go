// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package resample builds empirical sampling distributions by
// repeatedly drawing samples from a parent distribution and reducing
// each sample to a statistic.
package resample // import "github.com/aclements/go-samplingdist/resample"

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/aclements/go-samplingdist/freq"
	"github.com/aclements/go-samplingdist/stats"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
)

var (
	// ErrSampleSize is returned for a negative sample size or
	// number of samples.
	ErrSampleSize = errors.New("sample size must not be negative")

	// ErrEmptyDistribution is returned when sampling from a
	// distribution with no observations.
	ErrEmptyDistribution = errors.New("distribution has no observations")

	// ErrUnknownStatistic is returned for a statistic name not
	// known to stats.FuncByName.
	ErrUnknownStatistic = errors.New("unknown statistic")

	// ErrDegenerateInput is returned when samples would be too
	// small for the statistic to be defined.
	ErrDegenerateInput = errors.New("sample too small for statistic")
)

// An Engine draws random samples from frequency-table distributions.
//
// An Engine is not safe for concurrent use. Independent Engines
// share no state.
type Engine struct {
	// Continuous indicates that sampled distributions are
	// discretized continuous distributions. If set, SampleMany
	// perturbs each drawn value uniformly within half a bin
	// width around its bin center.
	Continuous bool

	// Metrics, if non-nil, counts draws and samples.
	Metrics *Metrics

	rng *rand.Rand
	log DrawLog
}

// NewEngine returns an Engine that draws from rng. If rng is nil,
// the Engine uses a generator seeded from the current time.
func NewEngine(rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return &Engine{rng: rng}
}

// Log returns the log of every value drawn by e.
func (e *Engine) Log() *DrawLog {
	return &e.log
}

// sampler draws from a distribution by inverting its cumulative
// frequency table.
type sampler struct {
	values []float64
	totals []float64
	total  float64
	step   float64
}

func newSampler(d *freq.Dist) (*sampler, error) {
	values := d.Values()
	totals := floats.CumSum(make([]float64, len(values)), d.Freqs())
	total := totals[len(totals)-1]
	if !(total > 0) {
		return nil, ErrEmptyDistribution
	}
	return &sampler{values, totals, total, d.Step()}, nil
}

// draw returns the center of a random bin.
//
// This picks r = round(U·total) for U uniform on [0, 1) and returns
// the first bin whose cumulative frequency is at least r. Because r
// is rounded, it ranges over [0, total] inclusive rather than
// [0, total), so the first bin is chosen for r = 0 even if it is
// empty.
func (s *sampler) draw(rng *rand.Rand) float64 {
	r := math.Round(rng.Float64() * s.total)
	j := sort.SearchFloat64s(s.totals, r)
	if j == len(s.totals) {
		// Only reachable with a fractional total.
		j--
	}
	return s.values[j]
}

// Sample returns n values drawn with replacement from d, each with
// probability proportional to its bin's frequency. Every returned
// value is one of d.Values().
func (e *Engine) Sample(d *freq.Dist, n int) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrSampleSize, n)
	}
	s, err := newSampler(d)
	if err != nil {
		return nil, err
	}
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = s.draw(e.rng)
	}
	e.log.add(xs)
	if e.Metrics != nil {
		e.Metrics.Draws.Add(float64(n))
	}
	return xs, nil
}

// SampleMany draws numberOfSamples samples of sampleSize values each
// from d and returns the named statistic (see stats.FuncByName) of
// each sample.
func (e *Engine) SampleMany(d *freq.Dist, sampleSize, numberOfSamples int, statistic string) ([]float64, error) {
	f := stats.FuncByName(statistic)
	if f == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatistic, statistic)
	}
	if need := stats.MinSampleSize(statistic); sampleSize < need {
		return nil, fmt.Errorf("%w: %s needs samples of at least %d, have %d", ErrDegenerateInput, statistic, need, sampleSize)
	}
	return e.SampleManyFunc(d, sampleSize, numberOfSamples, f)
}

// SampleManyFunc is like SampleMany, but reduces each sample with f.
// f must not retain its argument.
func (e *Engine) SampleManyFunc(d *freq.Dist, sampleSize, numberOfSamples int, f stats.Func) ([]float64, error) {
	if sampleSize < 1 {
		return nil, fmt.Errorf("%w: samples of %d", ErrDegenerateInput, sampleSize)
	}
	if numberOfSamples < 0 {
		return nil, fmt.Errorf("%w: %d samples", ErrSampleSize, numberOfSamples)
	}
	s, err := newSampler(d)
	if err != nil {
		return nil, err
	}

	buf := make([]float64, sampleSize)
	out := make([]float64, numberOfSamples)
	for i := range out {
		for j := range buf {
			x := s.draw(e.rng)
			if e.Continuous {
				x += (e.rng.Float64() - 0.5) * s.step / 2
			}
			buf[j] = x
		}
		e.log.add(buf)
		out[i] = f(buf)
	}
	if e.Metrics != nil {
		e.Metrics.Draws.Add(float64(sampleSize * numberOfSamples))
		e.Metrics.Samples.Add(float64(numberOfSamples))
	}
	return out, nil
}
