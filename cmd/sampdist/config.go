// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"strings"

	"github.com/aclements/go-samplingdist/freq"
	"github.com/aclements/go-samplingdist/stats"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

type binsConfig struct {
	Lo float64 `yaml:"lo"`
	Hi float64 `yaml:"hi"`
	N  int     `yaml:"n"`
}

// config describes one run: a parent population and the statistics
// whose sampling distributions to build from it.
type config struct {
	Shape      string     `yaml:"shape"`
	Bins       binsConfig `yaml:"bins"`
	Population float64    `yaml:"population"`

	SampleSize int      `yaml:"sample_size"`
	Samples    int      `yaml:"samples"`
	Batches    int      `yaml:"batches"`
	Statistics []string `yaml:"statistics"`
	Continuous bool     `yaml:"continuous"`
	Seed       uint64   `yaml:"seed"`
}

func defaultConfig() config {
	return config{
		Shape:      string(freq.Normal),
		Bins:       binsConfig{Lo: 0, Hi: 20, N: 21},
		Population: 1000,
		SampleSize: 10,
		Samples:    1000,
		Batches:    1,
		Statistics: []string{"mean"},
		Seed:       1,
	}
}

// loadConfig decodes the YAML file at path over cfg. Fields missing
// from the file keep their current values.
func loadConfig(path string, cfg *config) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// listFlag is a comma-separated list flag.
type listFlag struct{ p *[]string }

func (l listFlag) String() string {
	if l.p == nil {
		return ""
	}
	return strings.Join(*l.p, ",")
}

func (l listFlag) Set(s string) error {
	*l.p = strings.Split(s, ",")
	return nil
}

// bindFlags registers a flag for each field of cfg on fs.
func bindFlags(fs *flag.FlagSet, cfg *config) {
	fs.StringVar(&cfg.Shape, "shape", cfg.Shape, "population `shape`: "+shapeNames())
	fs.Float64Var(&cfg.Bins.Lo, "lo", cfg.Bins.Lo, "center of the first population bin")
	fs.Float64Var(&cfg.Bins.Hi, "hi", cfg.Bins.Hi, "center of the last population bin")
	fs.IntVar(&cfg.Bins.N, "bins", cfg.Bins.N, "number of population bins")
	fs.Float64Var(&cfg.Population, "population", cfg.Population, "population size")
	fs.IntVar(&cfg.SampleSize, "n", cfg.SampleSize, "values in each sample")
	fs.IntVar(&cfg.Samples, "samples", cfg.Samples, "samples in each batch")
	fs.IntVar(&cfg.Batches, "batches", cfg.Batches, "number of batches")
	fs.Var(listFlag{&cfg.Statistics}, "stat", "comma-separated `statistics`: "+strings.Join(stats.Names(), ", "))
	fs.BoolVar(&cfg.Continuous, "continuous", cfg.Continuous, "treat the population as a discretized continuous distribution")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random `seed`; statistic i uses seed+i")
}

// override copies the flags that were set on the command line in fs
// onto cfg.
func override(fs *flag.FlagSet, cfg *config) error {
	dst := flag.NewFlagSet("", flag.ContinueOnError)
	bindFlags(dst, cfg)
	var err error
	fs.Visit(func(f *flag.Flag) {
		if dst.Lookup(f.Name) != nil {
			err = multierr.Append(err, dst.Set(f.Name, f.Value.String()))
		}
	})
	return err
}

func shapeNames() string {
	var names []string
	for _, s := range freq.Shapes() {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}

// validate returns every problem with cfg.
func (cfg *config) validate() error {
	var err error
	if !slices.Contains(freq.Shapes(), freq.Shape(cfg.Shape)) {
		err = multierr.Append(err, fmt.Errorf("%w %q", freq.ErrUnknownShape, cfg.Shape))
	}
	if _, berr := freq.Bins(cfg.Bins.Lo, cfg.Bins.Hi, cfg.Bins.N); berr != nil {
		err = multierr.Append(err, berr)
	}
	if !(cfg.Population > 0) || math.IsInf(cfg.Population, 0) {
		err = multierr.Append(err, fmt.Errorf("population must be positive, have %v", cfg.Population))
	}
	if cfg.Samples < 1 {
		err = multierr.Append(err, fmt.Errorf("samples must be positive, have %d", cfg.Samples))
	}
	if cfg.Batches < 1 {
		err = multierr.Append(err, fmt.Errorf("batches must be positive, have %d", cfg.Batches))
	}
	if len(cfg.Statistics) == 0 {
		err = multierr.Append(err, errors.New("no statistics"))
	}
	for _, name := range cfg.Statistics {
		if stats.FuncByName(name) == nil {
			err = multierr.Append(err, fmt.Errorf("unknown statistic %q", name))
		} else if need := stats.MinSampleSize(name); cfg.SampleSize < need {
			err = multierr.Append(err, fmt.Errorf("%s needs sample_size of at least %d, have %d", name, need, cfg.SampleSize))
		}
	}
	return err
}
