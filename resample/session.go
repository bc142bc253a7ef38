// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resample

import (
	"fmt"

	"github.com/aclements/go-samplingdist/freq"
	"github.com/aclements/go-samplingdist/stats"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

// Config configures a Session.
type Config struct {
	// Statistic is the name of the statistic whose sampling
	// distribution is built. See stats.Names.
	Statistic string

	// SampleSize is the number of values in each sample.
	SampleSize int

	// Bins are the bin centers of the sampling distribution. If
	// nil, DefaultBins is used.
	Bins []float64

	// Continuous indicates that the parent distribution is a
	// discretized continuous distribution. See Engine.Continuous.
	Continuous bool
}

// An Option customizes a Session.
type Option func(*Session)

// WithRand makes the Session draw from rng.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) { s.engine = NewEngine(rng) }
}

// WithLogger makes the Session log to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithMetrics makes the Session record its work in m.
func WithMetrics(m *Metrics) Option {
	return func(s *Session) { s.metrics = m }
}

// A Session accumulates the sampling distribution of one statistic
// of a parent distribution across any number of batches of samples.
//
// A Session owns all of its state, including its random number
// generator, so independent Sessions may run concurrently.
type Session struct {
	// ID identifies this Session in logs.
	ID uuid.UUID

	parent     *freq.Dist
	statistic  string
	sampleSize int
	bins       []float64

	engine  *Engine
	logger  *zap.Logger
	metrics *Metrics

	// result is the sampling distribution so far.
	result *freq.Dist
}

// NewSession returns a Session that samples parent.
func NewSession(parent *freq.Dist, cfg Config, opts ...Option) (*Session, error) {
	if stats.FuncByName(cfg.Statistic) == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatistic, cfg.Statistic)
	}
	if parent.N() <= 0 {
		return nil, ErrEmptyDistribution
	}
	s := &Session{
		ID:        uuid.New(),
		parent:    parent,
		statistic: cfg.Statistic,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.engine == nil {
		s.engine = NewEngine(nil)
	}
	s.engine.Continuous = cfg.Continuous
	s.engine.Metrics = s.metrics
	s.logger = s.logger.With(zap.Stringer("session", s.ID), zap.String("statistic", s.statistic))

	bins := cfg.Bins
	if bins == nil {
		var err error
		if bins, err = DefaultBins(cfg.Statistic, parent); err != nil {
			return nil, err
		}
	}
	result, err := freq.Empty(bins)
	if err != nil {
		return nil, err
	}
	s.bins, s.result = result.Values(), result
	if err := s.SetSampleSize(cfg.SampleSize); err != nil {
		return nil, err
	}
	return s, nil
}

// Parent returns the distribution being sampled.
func (s *Session) Parent() *freq.Dist { return s.parent }

// Statistic returns the name of the statistic being sampled.
func (s *Session) Statistic() string { return s.statistic }

// SampleSize returns the number of values in each sample.
func (s *Session) SampleSize() int { return s.sampleSize }

// Engine returns the Engine used by s.
func (s *Session) Engine() *Engine { return s.engine }

// Result returns the sampling distribution accumulated so far. The
// returned distribution is replaced, not modified, by later batches.
func (s *Session) Result() *freq.Dist { return s.result }

// SetSampleSize changes the sample size. Since this changes the
// sampling distribution, it discards the accumulated result.
func (s *Session) SetSampleSize(n int) error {
	if need := stats.MinSampleSize(s.statistic); n < need {
		return fmt.Errorf("%w: %s needs samples of at least %d, have %d", ErrDegenerateInput, s.statistic, need, n)
	}
	s.sampleSize = n
	s.Reset()
	return nil
}

// Batch draws numberOfSamples more samples, folds their statistics
// into the sampling distribution, and returns the statistics.
func (s *Session) Batch(numberOfSamples int) ([]float64, error) {
	xs, err := s.engine.SampleMany(s.parent, s.sampleSize, numberOfSamples, s.statistic)
	if err != nil {
		return nil, err
	}
	batch, err := freq.FromPoints(xs, s.bins)
	if err != nil {
		return nil, err
	}
	result, err := freq.Combine(s.result, batch)
	if err != nil {
		return nil, err
	}
	s.result = result
	if s.metrics != nil {
		s.metrics.Batches.WithLabelValues(s.statistic).Inc()
	}
	s.logger.Debug("batch complete",
		zap.Int("samples", numberOfSamples),
		zap.Float64("observations", result.N()))
	return xs, nil
}

// Step draws a single sample and folds its statistic into the
// sampling distribution. This is one increment of an animated run.
func (s *Session) Step() (float64, error) {
	xs, err := s.Batch(1)
	if err != nil {
		return 0, err
	}
	return xs[0], nil
}

// Reset discards the accumulated sampling distribution and the
// engine's draw log.
func (s *Session) Reset() {
	// NewSession validated s.bins, so this cannot fail.
	s.result, _ = freq.Empty(s.bins)
	s.engine.Log().Reset()
}
