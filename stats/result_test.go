// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"strings"
	"testing"
)

func TestDescribe(t *testing.T) {
	r := Describe([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	for _, c := range []struct {
		name      string
		want, got float64
	}{
		{"N", 8, r.N},
		{"Mean", 5, r.Mean},
		{"Median", 4.5, r.Median},
		{"StdDev", 2, r.StdDev},
		{"Range", 7, r.Range},
		{"Skew", 0.65625, r.Skew},
		{"Kurtosis", -0.21875, r.Kurtosis},
		{"MeanAbsDev", 1.5, r.MeanAbsDev},
		{"VarianceUnbiased", 4.571428571428571, r.VarianceUnbiased},
	} {
		if !aeq(c.want, c.got) {
			t.Errorf("%s: want %v, got %v", c.name, c.want, c.got)
		}
	}
}

func TestDescribeDegenerate(t *testing.T) {
	r := Describe([]float64{3})
	if r.Range != 0 || r.Skew != 0 || r.Kurtosis != 0 || r.StdDev != 0 {
		t.Errorf("single observation: want zero spread and moments, got %+v", r)
	}
	if !aeq(nan, r.VarianceUnbiased) {
		t.Errorf("single observation: want NaN unbiased variance, got %v", r.VarianceUnbiased)
	}

	r = Describe([]float64{4, 4, 4, 4})
	if r.Skew != 0 || r.Kurtosis != 0 {
		t.Errorf("constant sample: want zero moments, got skew %v kurtosis %v", r.Skew, r.Kurtosis)
	}
}

func TestMoments(t *testing.T) {
	// Weighted moments must match the expanded sample.
	xs := []float64{2, 4, 5, 7, 9}
	ws := []float64{1, 3, 2, 1, 1}
	expanded := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	skew, kurt := Moments(xs, ws, 5, 2)
	wskew, wkurt := Moments(expanded, nil, 5, 2)
	if !aeq(wskew, skew) || !aeq(wkurt, kurt) {
		t.Errorf("weighted moments: want %v, %v, got %v, %v", wskew, wkurt, skew, kurt)
	}

	if skew, kurt := Moments(xs, []float64{0, 1, 0, 0, 0}, 4, 0); skew != 0 || kurt != 0 {
		t.Errorf("total weight 1: want 0, 0, got %v, %v", skew, kurt)
	}
}

func TestResultString(t *testing.T) {
	got := Describe([]float64{2, 4, 4, 4, 5, 5, 7, 9}).String()
	want := "N 8  mean 5.000  median 4.500  std dev 2.000  range 7.000\n" +
		"skew 0.656  kurtosis -0.219  mean abs dev 1.500  unbiased variance 4.571\n"
	if got != want {
		t.Errorf("want:\n%s\ngot:\n%s", want, got)
	}

	// Absent slots are omitted and a shared prefix is applied.
	r := Result{N: 1200, Mean: 1500, Median: 1400, StdDev: 2500, Range: 9000,
		MeanAbsDev: nan, VarianceUnbiased: nan}
	got = r.String()
	if strings.Contains(got, "mean abs dev") || strings.Contains(got, "unbiased") {
		t.Errorf("binned result should omit raw-only statistics:\n%s", got)
	}
	if !strings.Contains(got, "mean 1.500k") || !strings.Contains(got, "range 9.000k") {
		t.Errorf("want values scaled to k:\n%s", got)
	}
}
