// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/aclements/go-samplingdist/resample"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testConfig() config {
	cfg := defaultConfig()
	cfg.Samples = 200
	cfg.Batches = 3
	cfg.Statistics = []string{"mean", "median", "varianceUnbiased"}
	return cfg
}

func runString(t *testing.T, ctx context.Context, cfg config, reg *prometheus.Registry) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	err := run(ctx, cfg, zap.NewNop(), reg, &buf)
	return buf.String(), err
}

func TestRun(t *testing.T) {
	reg := prometheus.NewRegistry()
	out, err := runString(t, context.Background(), testConfig(), reg)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "population: normal over [0, 20] in 21 bins\nN "), out)
	// Sessions report in configuration order.
	i := strings.Index(out, "mean of 600 samples of size 10:")
	j := strings.Index(out, "median of 600 samples of size 10:")
	k := strings.Index(out, "varianceUnbiased of 600 samples of size 10:")
	assert.True(t, 0 < i && i < j && j < k, out)
	assert.Equal(t, 3, strings.Count(out, "95% CI ["), out)
	assert.Contains(t, out, "  median ")

	var metrics bytes.Buffer
	require.NoError(t, printMetrics(&metrics, reg))
	assert.Contains(t, metrics.String(), `samplingdist_batches_total{statistic="median"} 3`)
	assert.Contains(t, metrics.String(), "samplingdist_samples_total 1800\n")
	assert.Contains(t, metrics.String(), "samplingdist_draws_total 18000\n")
}

func TestRunDeterministic(t *testing.T) {
	a, err := runString(t, context.Background(), testConfig(), prometheus.NewRegistry())
	require.NoError(t, err)
	b, err := runString(t, context.Background(), testConfig(), prometheus.NewRegistry())
	require.NoError(t, err)
	assert.Equal(t, a, b)

	cfg := testConfig()
	cfg.Seed++
	c, err := runString(t, context.Background(), cfg, prometheus.NewRegistry())
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestRunErrors(t *testing.T) {
	cfg := testConfig()
	cfg.Statistics = []string{"mean", "mode"}
	_, err := runString(t, context.Background(), cfg, prometheus.NewRegistry())
	assert.ErrorIs(t, err, resample.ErrUnknownStatistic)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = runString(t, ctx, testConfig(), prometheus.NewRegistry())
	assert.ErrorIs(t, err, context.Canceled)
}
