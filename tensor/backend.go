// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/gpucheck/internal/tensor"

// Backend defines the interface that all compute backends must implement.
//
// Implementations:
//   - backend/cpu: gonum-based reference implementation
//   - backend/webgpu: GPU compute via WebGPU
//
// Example:
//
//	backend := cpu.New()
//	x, _ := tensor.Randn(tensor.Shape{2, 3}, tensor.CPU)
//	y, _ := tensor.Randn(tensor.Shape{2, 3}, tensor.CPU)
//	z := backend.Add(x, y)
type Backend interface {
	// Element-wise binary operations.
	Add(a, b *RawTensor) *RawTensor // Element-wise addition.

	// Matrix operations.
	MatMul(a, b *RawTensor) *RawTensor // Matrix multiplication.

	// Activation functions.
	ReLU(x *RawTensor) *RawTensor // Rectified-linear activation.

	// Metadata.
	Name() string   // Backend name (e.g., "CPU", "WebGPU").
	Device() Device // Device type.
}

// Compile-time check that internal Backend matches the public Backend.
var _ Backend = tensor.Backend(nil)
