// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resample

import (
	"fmt"

	"github.com/aclements/go-samplingdist/freq"
)

// DefaultBins returns bins suitable for the sampling distribution of
// the named statistic of parent. All have as many bins as parent.
//
// Location statistics use the parent's own bins. Spread statistics
// use [0, span] and variances [0, span²/4] (the largest population
// variance over the span), where span is the distance between the
// parent's outermost bin centers. The unbiased variance can be up to
// twice that, so it uses [0, span²/2].
func DefaultBins(statistic string, parent *freq.Dist) ([]float64, error) {
	values := parent.Values()
	span := values[len(values)-1] - values[0]
	var hi float64
	switch statistic {
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatistic, statistic)
	case "mean", "median":
		return append([]float64(nil), values...), nil
	case "standardDeviation", "meanAbsoluteDeviation", "range":
		hi = span
	case "variance":
		hi = span * span / 4
	case "varianceUnbiased":
		hi = span * span / 2
	}
	return freq.Bins(0, hi, len(values))
}
