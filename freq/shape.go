// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package freq

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// ErrUnknownShape is returned by FromShape for an unrecognized shape.
var ErrUnknownShape = errors.New("unknown distribution shape")

// A Shape names a family of parent distributions.
type Shape string

const (
	// Normal is a bell curve centered on the middle bin with
	// standard deviation one sixth of the bin span.
	Normal Shape = "normal"

	// Binomial is the number of successes in NumBins-1 fair
	// Bernoulli trials, one trial per bin step.
	Binomial Shape = "binomial"

	// Poisson has mean one quarter of the way across the bins.
	Poisson Shape = "poisson"

	// Skewed is a right-skewed gamma distribution with shape 2
	// and mean one quarter of the way across the bins.
	Skewed Shape = "skewed"

	// Uniform puts the same weight in every bin.
	Uniform Shape = "uniform"
)

// Shapes returns all known shapes.
func Shapes() []Shape {
	return []Shape{Normal, Binomial, Poisson, Skewed, Uniform}
}

// weights returns the relative weight of shape s at each of n bins.
// Discrete shapes are evaluated at the bin index; continuous shapes
// at the bin center in index units.
func (s Shape) weights(n int) ([]float64, error) {
	last := float64(n - 1)
	var prob func(k float64) float64
	switch s {
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, string(s))
	case Normal:
		prob = distuv.Normal{Mu: last / 2, Sigma: last / 6}.Prob
	case Binomial:
		prob = distuv.Binomial{N: last, P: 0.5}.Prob
	case Poisson:
		prob = distuv.Poisson{Lambda: last / 4}.Prob
	case Skewed:
		// Mean α/β = last/4. The density is 0 at the origin,
		// so evaluate at the middle of each unit interval.
		g := distuv.Gamma{Alpha: 2, Beta: 8 / last}
		prob = func(k float64) float64 { return g.Prob(k + 0.5) }
	case Uniform:
		prob = func(float64) float64 { return 1 }
	}
	ws := make([]float64, n)
	for i := range ws {
		ws[i] = prob(float64(i))
	}
	return ws, nil
}

// FromShape returns a distribution of the given shape over the bins
// centered at values, with approximately total observations. Each
// bin's frequency is rounded to a whole number of observations.
func FromShape(s Shape, values []float64, total float64) (*Dist, error) {
	if err := checkBins(values); err != nil {
		return nil, err
	}
	if !(total >= 0) || math.IsInf(total, 0) {
		return nil, fmt.Errorf("%w: total %v", ErrFreqs, total)
	}
	ws, err := s.weights(len(values))
	if err != nil {
		return nil, err
	}
	wsum := 0.0
	for _, w := range ws {
		wsum += w
	}
	for i, w := range ws {
		ws[i] = math.Round(total * w / wsum)
	}
	return New(values, ws)
}
