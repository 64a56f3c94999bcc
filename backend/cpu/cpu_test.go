// Copyright 2025 The Salp Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu_test

import (
	"testing"

	"github.com/salp-ml/salp/backend/cpu"
	"github.com/salp-ml/salp/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	backend := cpu.New[float32]()
	assert.Equal(t, "CPU", backend.Name())
	assert.Equal(t, tensor.CPU, backend.Device())
	assert.Equal(t, cpu.MinLengthForParallelism, backend.Config().Threshold)
}

func TestSequentialMatchesDefault(t *testing.T) {
	n := 2*cpu.MinLengthForParallelism + 1
	x, err := tensor.Arange[float64](0, float64(n))
	require.NoError(t, err)

	seq := cpu.NewWithConfig[float64](cpu.SequentialConfig())
	par := cpu.New[float64]()
	f := func(v float64) float64 { return v*0.5 - 1 }

	assert.True(t, seq.Equal(seq.Map(x, f), par.Map(x, f)))
	assert.False(t, seq.Config().Parallel(n))
}
