// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package freq

import "github.com/aclements/go-samplingdist/stats"

// NormalFit returns the expected frequency of each bin of d under a
// normal distribution with d's mean and standard deviation and d's
// number of observations. This is the curve drawn over a histogram
// to compare it with a normal distribution.
//
// If d has zero spread, all observations are expected in the bin
// containing the mean. If d is empty, every bin is 0.
func (d *Dist) NormalFit() []float64 {
	fit := make([]float64, len(d.values))
	n := d.N()
	if n == 0 {
		return fit
	}
	mean, sd := d.Mean(), d.StdDev()
	if sd == 0 {
		fit[BinIndex(mean, d.values)] = n
		return fit
	}
	half := d.Step() / 2
	lo := stats.Zprob((d.values[0] - half - mean) / sd)
	for i, v := range d.values {
		hi := stats.Zprob((v + half - mean) / sd)
		fit[i] = n * (hi - lo)
		lo = hi
	}
	return fit
}
