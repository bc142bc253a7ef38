// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// zprobTerms is the number of terms of the series used by Zprob.
// Normal-curve overlays are calibrated against exactly this series,
// so changing it changes their output.
const zprobTerms = 12

// Zprob approximates the cumulative distribution function of the
// standard normal distribution at z.
//
// For |z| > 7 the result is exactly 0 or 1. Otherwise the lower tail
// Φ(-|z|) is computed from a fixed 12-term trigonometric series,
// which is accurate to better than 1e-9 over the whole domain, and
// reflected for non-negative z.
func Zprob(z float64) float64 {
	if z < -7 {
		return 0
	} else if z > 7 {
		return 1
	}

	s := math.Sqrt2 / 3 * math.Abs(z)
	sum := 0.0
	h := 0.5
	for i := 0; i < zprobTerms; i++ {
		sum += math.Exp(-h*h/9) * math.Sin(h*s) / h
		h++
	}
	p := 0.5 - sum/math.Pi
	if z >= 0 {
		p = 1 - p
	}
	return p
}
