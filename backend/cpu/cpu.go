// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the CPU compute backend.
package cpu

import (
	internalcpu "github.com/born-ml/gpucheck/internal/backend/cpu"
	"github.com/born-ml/gpucheck/tensor"
)

// Backend represents the CPU backend implementation.
//
// The CPU backend runs the smoke-test operations through gonum and serves as
// the reference implementation for GPU results.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	backend := cpu.New()
//	x, _ := tensor.Randn(tensor.Shape{2, 3}, tensor.CPU)
//	y := backend.ReLU(x)
func New() *Backend {
	return internalcpu.New()
}
