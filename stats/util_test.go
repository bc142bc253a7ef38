// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"
	"testing"
)

func aeq(expect, got float64) bool {
	if math.IsNaN(expect) {
		return math.IsNaN(got)
	}
	return math.Abs(expect-got) < 0.00001
}

// testFunc checks f against a table of inputs and expected outputs,
// in increasing order of input.
func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	xs := make([]float64, 0, len(vals))
	for x := range vals {
		xs = append(xs, x)
	}
	sort.Float64s(xs)

	for _, x := range xs {
		want, got := vals[x], f(x)
		if !aeq(want, got) {
			t.Errorf("want %s(%v)=%v, got %v", name, x, want, got)
		}
	}
}

// testSampleFunc checks a reduce function against a table of
// samples and expected statistics.
func testSampleFunc(t *testing.T, name string, f Func, cases [][]float64, want []float64) {
	t.Helper()
	for i, xs := range cases {
		if got := f(xs); !aeq(want[i], got) {
			t.Errorf("want %s(%v)=%v, got %v", name, xs, want[i], got)
		}
	}
}
