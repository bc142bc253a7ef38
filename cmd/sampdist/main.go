// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// sampdist builds the sampling distributions of one or more
// statistics of a synthetic population and describes them.
//
// Usage:
//
//	sampdist [-config file.yaml] [flags]
//
// The configuration file sets any of
//
//	shape: normal
//	bins: {lo: 0, hi: 20, n: 21}
//	population: 1000
//	sample_size: 10
//	samples: 1000
//	batches: 1
//	statistics: [mean, median]
//	continuous: false
//	seed: 1
//
// and flags given on the command line override it.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	mstats "github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-samplingdist/freq"
	"github.com/aclements/go-samplingdist/resample"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := defaultConfig()
	fs := flag.CommandLine
	configPath := fs.String("config", "", "read configuration from YAML `file`")
	verbose := fs.Bool("v", false, "log each batch")
	showMetrics := fs.Bool("metrics", false, "print resampling counters when done")
	bindFlags(fs, &cfg)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [-config file.yaml] [flags]\n", os.Args[0])
		fs.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(2)
	}

	logger, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *configPath != "" {
		cfg = defaultConfig()
		if err := loadConfig(*configPath, &cfg); err != nil {
			logger.Fatal("loading configuration", zap.Error(err))
		}
		if err := override(fs, &cfg); err != nil {
			logger.Fatal("applying flags", zap.Error(err))
		}
	}
	if err := cfg.validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	reg := prometheus.NewRegistry()
	if err := run(ctx, cfg, logger, reg, os.Stdout); err != nil {
		logger.Fatal("resampling failed", zap.Error(err))
	}
	if *showMetrics {
		if err := printMetrics(os.Stdout, reg); err != nil {
			logger.Fatal("gathering metrics", zap.Error(err))
		}
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

type sessionResult struct {
	session *resample.Session
	xs      []float64
}

// run builds the population described by cfg, builds the sampling
// distribution of each statistic concurrently, and writes a
// description of each to w. cfg must be valid.
func run(ctx context.Context, cfg config, logger *zap.Logger, reg prometheus.Registerer, w io.Writer) error {
	values, err := freq.Bins(cfg.Bins.Lo, cfg.Bins.Hi, cfg.Bins.N)
	if err != nil {
		return err
	}
	parent, err := freq.FromShape(freq.Shape(cfg.Shape), values, cfg.Population)
	if err != nil {
		return err
	}
	metrics := resample.NewMetrics(reg)

	results := make([]sessionResult, len(cfg.Statistics))
	g, ctx := errgroup.WithContext(ctx)
	for i, name := range cfg.Statistics {
		i, name := i, name
		g.Go(func() error {
			s, err := resample.NewSession(parent,
				resample.Config{
					Statistic:  name,
					SampleSize: cfg.SampleSize,
					Continuous: cfg.Continuous,
				},
				resample.WithRand(rand.New(rand.NewSource(cfg.Seed+uint64(i)))),
				resample.WithLogger(logger),
				resample.WithMetrics(metrics))
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			logger.Info("session started", zap.Stringer("session", s.ID), zap.String("statistic", name))
			var xs []float64
			for b := 0; b < cfg.Batches; b++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				batch, err := s.Batch(cfg.Samples)
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				xs = append(xs, batch...)
			}
			results[i] = sessionResult{s, xs}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Fprintf(w, "population: %s over [%v, %v] in %d bins\n", cfg.Shape, cfg.Bins.Lo, cfg.Bins.Hi, cfg.Bins.N)
	fmt.Fprint(w, parent.Statistics())
	for _, r := range results {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%s of %d samples of size %d:\n", r.session.Statistic(), len(r.xs), r.session.SampleSize())
		fmt.Fprint(w, r.session.Result().Statistics())
		describe(w, r.xs)
	}
	return nil
}

// describe writes the mean, with its confidence interval, and the
// quantiles of the unbinned statistics xs.
func describe(w io.Writer, xs []float64) {
	s := mstats.Sample{Xs: xs}
	s.Sort()
	if len(xs) > 1 {
		mean, lo, hi := s.MeanCI(0.95)
		fmt.Fprintf(w, "unbinned mean %.6g  95%% CI [%.6g, %.6g]\n", mean, lo, hi)
	}
	labels := map[int]string{0: "min", 50: "median", 100: "max"}
	for _, p := range []int{0, 5, 25, 50, 75, 95, 100} {
		label, ok := labels[p]
		if !ok {
			label = fmt.Sprintf("%d%%ile", p)
		}
		fmt.Fprintf(w, "%8s %.6g\n", label, s.Quantile(float64(p)/100))
	}
}

// printMetrics writes the value of every counter in g.
func printMetrics(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			name := mf.GetName()
			for _, l := range m.GetLabel() {
				name += fmt.Sprintf("{%s=%q}", l.GetName(), l.GetValue())
			}
			fmt.Fprintf(w, "%s %g\n", name, m.GetCounter().GetValue())
		}
	}
	return nil
}
