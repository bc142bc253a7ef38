// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package freq

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrBins is returned when a set of bin centers is not at least two
// strictly increasing, equally spaced values.
var ErrBins = errors.New("bins must be at least two equally spaced increasing values")

// stepTolerance is the relative tolerance on the spacing of bins.
// Bin sets computed with floating point arithmetic are rarely
// exactly equally spaced.
const stepTolerance = 1e-9

// Bins returns n equally spaced bin centers from lo to hi,
// inclusive.
func Bins(lo, hi float64, n int) ([]float64, error) {
	if n < 2 || !(lo < hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil, fmt.Errorf("%w: %d bins over [%v, %v]", ErrBins, n, lo, hi)
	}
	return floats.Span(make([]float64, n), lo, hi), nil
}

// checkBins returns an error if values is not a valid bin set.
func checkBins(values []float64) error {
	if len(values) < 2 {
		return fmt.Errorf("%w: have %d", ErrBins, len(values))
	}
	step := values[1] - values[0]
	if !(step > 0) || math.IsInf(step, 0) {
		return fmt.Errorf("%w: step %v", ErrBins, step)
	}
	for i := 1; i < len(values)-1; i++ {
		s := values[i+1] - values[i]
		if math.Abs(s-step) > stepTolerance*step {
			return fmt.Errorf("%w: step %v at bin %d differs from %v", ErrBins, s, i, step)
		}
	}
	return nil
}

// BinIndex returns the index of the bin in values whose center is
// closest to x. Values beyond either end are clamped to the first or
// last bin, as is NaN to the first. values must be a valid bin set.
func BinIndex(x float64, values []float64) int {
	step := values[1] - values[0]
	i := math.Round((x - values[0]) / step)
	if !(i > 0) {
		return 0
	} else if last := len(values) - 1; i >= float64(last) {
		return last
	}
	return int(i)
}
