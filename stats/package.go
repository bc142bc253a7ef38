// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats computes summary statistics over raw samples of
// observations.
//
// These are the reduce functions used to build sampling
// distributions: each takes a sample and returns one scalar.
// Statistics that are undefined for a too-small sample (the mean of
// an empty sample, the unbiased variance of a single observation)
// return NaN rather than failing, so they can be applied uniformly
// inside a resampling loop. Callers that need to reject such
// samples up front can consult MinSampleSize.
package stats // import "github.com/aclements/go-samplingdist/stats"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
