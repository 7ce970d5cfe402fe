// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public tensor API for gpucheck.
//
// The package defines the types the diagnostic smoke tests operate on:
//   - RawTensor: a flat, typed, device-tagged numeric buffer
//   - Backend: interface for device-specific compute implementations
//   - Shape, DataType, Device: core type definitions
//
// Example:
//
//	backend := cpu.New()
//	x, _ := tensor.Randn(tensor.Shape{100, 100}, tensor.CPU)
//	y, _ := tensor.Randn(tensor.Shape{100, 100}, tensor.CPU)
//	z := backend.Add(x, y)
package tensor

import (
	"github.com/born-ml/gpucheck/internal/tensor"
)

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float16 DataType = tensor.Float16
	Int32   DataType = tensor.Int32
)

// Device represents the device where tensor data resides.
type Device = tensor.Device

// Device constants.
const (
	CPU    Device = tensor.CPU
	WebGPU Device = tensor.WebGPU
)

// Shape represents the dimensions of a tensor.
// Example: Shape{100, 100} represents a 100×100 matrix.
type Shape = tensor.Shape

// RawTensor is the low-level tensor representation.
type RawTensor = tensor.RawTensor

// NewRaw creates a new zero-initialized raw tensor.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.Zeros(shape, dtype, device)
}

// Randn creates a float32 tensor filled with random values from the standard
// normal distribution N(0, 1).
func Randn(shape Shape, device Device) (*RawTensor, error) {
	return tensor.Randn(shape, device)
}

// FromSlice creates a float32 tensor from a Go slice.
func FromSlice(data []float32, shape Shape, device Device) (*RawTensor, error) {
	return tensor.FromSlice(data, shape, device)
}
