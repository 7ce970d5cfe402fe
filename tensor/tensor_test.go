// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/born-ml/gpucheck/backend/cpu"
	"github.com/born-ml/gpucheck/tensor"
)

// TestBackendInterface verifies that the CPU backend implements tensor.Backend.
func TestBackendInterface(_ *testing.T) {
	var _ tensor.Backend = (*cpu.Backend)(nil)
}

// TestBackendSmoke runs the smoke-test operation sequence through the public API.
func TestBackendSmoke(t *testing.T) {
	backend := cpu.New()

	a, err := tensor.Randn(tensor.Shape{8, 8}, tensor.CPU)
	if err != nil {
		t.Fatalf("Randn failed: %v", err)
	}
	b, err := tensor.Randn(tensor.Shape{8, 8}, tensor.CPU)
	if err != nil {
		t.Fatalf("Randn failed: %v", err)
	}

	sum := backend.Add(a, b)
	activated := backend.ReLU(sum)
	for _, v := range activated.AsFloat32() {
		if v < 0 {
			t.Fatalf("ReLU produced negative value %v", v)
		}
	}

	product := backend.MatMul(a, b)
	if !product.Shape().Equal(tensor.Shape{8, 8}) {
		t.Errorf("MatMul shape = %v, want [8 8]", product.Shape())
	}
}

// TestRawTensorAPI verifies the RawTensor type alias exposes the expected API.
func TestRawTensorAPI(t *testing.T) {
	raw, err := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, tensor.CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}

	if !raw.Shape().Equal(tensor.Shape{2, 3}) {
		t.Errorf("Shape() = %v, want [2 3]", raw.Shape())
	}
	if raw.DType() != tensor.Float32 {
		t.Errorf("DType() = %v, want Float32", raw.DType())
	}
	if raw.Device() != tensor.CPU {
		t.Errorf("Device() = %v, want CPU", raw.Device())
	}
	if raw.NumElements() != 6 {
		t.Errorf("NumElements() = %d, want 6", raw.NumElements())
	}
	if raw.ByteSize() != 24 {
		t.Errorf("ByteSize() = %d, want 24", raw.ByteSize())
	}
}

// TestCreationFunctions verifies the public creation helpers.
func TestCreationFunctions(t *testing.T) {
	z, err := tensor.Zeros(tensor.Shape{100, 100}, tensor.Float16, tensor.CPU)
	if err != nil {
		t.Fatalf("Zeros failed: %v", err)
	}
	if z.ByteSize() != 100*100*2 {
		t.Errorf("float16 ByteSize = %d, want %d", z.ByteSize(), 100*100*2)
	}

	r, err := tensor.Randn(tensor.Shape{10, 10}, tensor.CPU)
	if err != nil {
		t.Fatalf("Randn failed: %v", err)
	}
	allZero := true
	for _, v := range r.AsFloat32() {
		if v != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		t.Error("Randn produced all zeros")
	}
}
