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

// ErrShapeMismatch matches every error returned by Combine for
// distributions with different bins.
var ErrShapeMismatch = errors.New("distributions have different bins")

// A ShapeReason says how the bins of two distributions differ.
type ShapeReason int

const (
	// BinCountDiffers means the distributions have different
	// numbers of bins.
	BinCountDiffers ShapeReason = iota

	// BinValuesDiffer means the distributions have the same
	// number of bins but some bin centers differ.
	BinValuesDiffer
)

// A ShapeError reports that two distributions cannot be combined.
type ShapeError struct {
	Reason ShapeReason

	// NumBins are the bin counts of the two distributions.
	NumBins [2]int

	// Index is the first bin whose centers differ, and Values
	// are the two centers. Only set for BinValuesDiffer.
	Index  int
	Values [2]float64
}

func (e *ShapeError) Error() string {
	if e.Reason == BinCountDiffers {
		return fmt.Sprintf("%v: %d bins vs %d bins", ErrShapeMismatch, e.NumBins[0], e.NumBins[1])
	}
	return fmt.Sprintf("%v: bin %d is %v vs %v", ErrShapeMismatch, e.Index, e.Values[0], e.Values[1])
}

func (e *ShapeError) Is(target error) bool {
	return target == ErrShapeMismatch
}

// Combine returns the distribution of the observations of a and b
// together. a and b must have identical bins; otherwise Combine
// returns a *ShapeError.
//
// Combine does not modify a or b, and the number of observations in
// the result is always a.N() + b.N().
func Combine(a, b *Dist) (*Dist, error) {
	if len(a.values) != len(b.values) {
		return nil, &ShapeError{
			Reason:  BinCountDiffers,
			NumBins: [2]int{len(a.values), len(b.values)},
		}
	}
	for i, v := range a.values {
		if v != b.values[i] {
			return nil, &ShapeError{
				Reason:  BinValuesDiffer,
				NumBins: [2]int{len(a.values), len(b.values)},
				Index:   i,
				Values:  [2]float64{v, b.values[i]},
			}
		}
	}
	a.checkFresh()
	b.checkFresh()

	out := &Dist{
		values: append([]float64(nil), a.values...),
		freqs:  make([]float64, len(a.freqs)),
		sum:    a.sum + b.sum,
		sumSq:  a.sumSq + b.sumSq,
		lo:     math.Min(a.lo, b.lo),
		hi:     math.Max(a.hi, b.hi),
	}
	floats.AddTo(out.freqs, a.freqs, b.freqs)
	return out, nil
}
