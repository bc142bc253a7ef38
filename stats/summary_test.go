// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"reflect"
	"testing"
)

func TestMean(t *testing.T) {
	testSampleFunc(t, "Mean", Mean,
		[][]float64{nil, {7}, {1, 2, 3, 4}, {2, 4, 4, 4, 5, 5, 7, 9}, {-1, 1}},
		[]float64{nan, 7, 2.5, 5, 0})
}

func TestMedian(t *testing.T) {
	testSampleFunc(t, "Median", Median,
		[][]float64{nil, {5}, {1, 2, 3}, {1, 2, 3, 4}, {3, 1, 4, 1, 5, 9, 2, 6}, {-2, -8}},
		[]float64{nan, 5, 2, 2.5, 3.5, -5})

	// Median sorts a copy.
	xs := []float64{3, 1, 2}
	Median(xs)
	if want := []float64{3, 1, 2}; !reflect.DeepEqual(xs, want) {
		t.Errorf("Median modified its input: want %v, got %v", want, xs)
	}
}

func TestRange(t *testing.T) {
	testSampleFunc(t, "Range", Range,
		[][]float64{nil, {5}, {3, 1, 4, 1, 5}, {1, 3}, {3, 1}, {2, 2, 2}, {-4, 10, 0}},
		[]float64{0, 0, 4, 2, 2, 0, 14})
}

func TestVariance(t *testing.T) {
	testSampleFunc(t, "Variance", Variance,
		[][]float64{nil, {5}, {2, 4, 4, 4, 5, 5, 7, 9}, {3, 1, 4, 1, 5, 9, 2, 6}},
		[]float64{nan, 0, 4, 6.609375})
	testSampleFunc(t, "StdDev", StdDev,
		[][]float64{nil, {5}, {2, 4, 4, 4, 5, 5, 7, 9}, {3, 1, 4, 1, 5, 9, 2, 6}},
		[]float64{nan, 0, 2, 2.5708704751503917})
}

func TestStdDevIdentical(t *testing.T) {
	for _, v := range []float64{0.1, 0.3, 0.7, 2.3} {
		for n := 2; n <= 9; n++ {
			xs := make([]float64, n)
			for i := range xs {
				xs[i] = v
			}
			if sd := StdDev(xs); !(sd >= 0 && sd < 1e-7) {
				t.Errorf("StdDev(%d×%v) = %v, want ~0", n, v, sd)
			}
		}
	}
}

func TestVarianceUnbiased(t *testing.T) {
	testSampleFunc(t, "VarianceUnbiased", VarianceUnbiased,
		[][]float64{nil, {5}, {2, 4, 4, 4, 5, 5, 7, 9}, {3, 1, 4, 1, 5, 9, 2, 6}},
		[]float64{nan, nan, 4.571428571428571, 7.553571428571429})

	for _, xs := range [][]float64{{1, 2}, {0, 0, 1}, {-3, 8, 2.5, 11, 0.25}} {
		n := float64(len(xs))
		if want, got := Variance(xs)*n/(n-1), VarianceUnbiased(xs); !aeq(want, got) {
			t.Errorf("VarianceUnbiased(%v): want %v, got %v", xs, want, got)
		}
	}
}

func TestMeanAbsDev(t *testing.T) {
	testSampleFunc(t, "MeanAbsDev", MeanAbsDev,
		[][]float64{{5}, {2, 4, 4, 4, 5, 5, 7, 9}, {3, 1, 4, 1, 5, 9, 2, 6}, {-1, 1}},
		[]float64{0, 1.5, 2.125, 1})
	if got := MeanAbsDev(nil); !math.IsNaN(got) {
		t.Errorf("MeanAbsDev(nil): want NaN, got %v", got)
	}
}

func TestFuncByName(t *testing.T) {
	xs := []float64{3, 1, 4, 1, 5, 9, 2, 6}
	for _, name := range Names() {
		f := FuncByName(name)
		if f == nil {
			t.Errorf("FuncByName(%q) = nil", name)
			continue
		}
		if got := f(xs); math.IsNaN(got) {
			t.Errorf("%s(%v) = NaN", name, xs)
		}
	}
	if got := FuncByName("mean")(xs); got != Mean(xs) {
		t.Errorf("FuncByName(mean): want %v, got %v", Mean(xs), got)
	}
	if got := FuncByName("range")(xs); got != 8 {
		t.Errorf("FuncByName(range): want 8, got %v", got)
	}
	for _, name := range []string{"", "Mean", "mode", "stdDev"} {
		if FuncByName(name) != nil {
			t.Errorf("FuncByName(%q) should be nil", name)
		}
	}
	if len(Names()) != len(funcs) {
		t.Errorf("Names has %d entries, want %d", len(Names()), len(funcs))
	}
}

func TestMinSampleSize(t *testing.T) {
	for name, want := range map[string]int{
		"mean":             1,
		"range":            1,
		"varianceUnbiased": 2,
		"bogus":            0,
	} {
		if got := MinSampleSize(name); got != want {
			t.Errorf("MinSampleSize(%q): want %d, got %d", name, want, got)
		}
	}
}
