// Copyright 2025 The Salp Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/salp-ml/salp/internal/tensor"

// Backend defines the operation set that every compute device implements for
// element type T.
//
// Implementations:
//   - backend/cpu: Pure Go, parallel above 10,000 elements
//   - CUDA, Vulkan, Metal, WebGPU: reserved
//
// Example:
//
//	import (
//	    "github.com/salp-ml/salp/backend/cpu"
//	    "github.com/salp-ml/salp/tensor"
//	)
//
//	var backend tensor.Backend[float32] = cpu.New[float32]()
//	x, _ := backend.CreateTensor(tensor.Shape{2, 3})
//	y := backend.Map(x, func(v float32) float32 { return v + 1 })
type Backend[T Numeric] = tensor.Backend[T]

// Device represents the device where tensor memory resides.
type Device = tensor.Device

// Device constants.
const (
	CPU    Device = tensor.CPU
	CUDA   Device = tensor.CUDA
	Vulkan Device = tensor.Vulkan
	Metal  Device = tensor.Metal
	WebGPU Device = tensor.WebGPU
)
