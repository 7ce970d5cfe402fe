package tensor

import (
	"math"
	"testing"
)

func TestNewRaw(t *testing.T) {
	raw, err := NewRaw(Shape{2, 3}, Float32, CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}

	if !raw.Shape().Equal(Shape{2, 3}) {
		t.Errorf("Shape() = %v, want [2 3]", raw.Shape())
	}
	if raw.DType() != Float32 {
		t.Errorf("DType() = %v, want Float32", raw.DType())
	}
	if raw.Device() != CPU {
		t.Errorf("Device() = %v, want CPU", raw.Device())
	}
	if raw.NumElements() != 6 {
		t.Errorf("NumElements() = %d, want 6", raw.NumElements())
	}
	if raw.ByteSize() != 24 {
		t.Errorf("ByteSize() = %d, want 24", raw.ByteSize())
	}
}

func TestNewRawInvalidShape(t *testing.T) {
	if _, err := NewRaw(Shape{2, 0}, Float32, CPU); err == nil {
		t.Error("NewRaw with zero dimension should fail")
	}
	if _, err := NewRaw(Shape{-1, 3}, Float32, CPU); err == nil {
		t.Error("NewRaw with negative dimension should fail")
	}
}

func TestDataTypeSize(t *testing.T) {
	tests := []struct {
		dtype DataType
		size  int
		name  string
	}{
		{Float32, 4, "float32"},
		{Float16, 2, "float16"},
		{Int32, 4, "int32"},
	}

	for _, tt := range tests {
		if got := tt.dtype.Size(); got != tt.size {
			t.Errorf("%s.Size() = %d, want %d", tt.name, got, tt.size)
		}
		if got := tt.dtype.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
	}
}

func TestZerosIsZeroFilled(t *testing.T) {
	for _, dtype := range []DataType{Float32, Float16, Int32} {
		raw, err := Zeros(Shape{100, 100}, dtype, CPU)
		if err != nil {
			t.Fatalf("Zeros(%s) failed: %v", dtype, err)
		}
		if raw.ByteSize() != 100*100*dtype.Size() {
			t.Errorf("Zeros(%s) ByteSize = %d, want %d", dtype, raw.ByteSize(), 100*100*dtype.Size())
		}
		for i, b := range raw.Data() {
			if b != 0 {
				t.Fatalf("Zeros(%s) has non-zero byte at %d", dtype, i)
			}
		}
	}
}

func TestRandnDistribution(t *testing.T) {
	raw, err := Randn(Shape{1000, 1000}, CPU)
	if err != nil {
		t.Fatalf("Randn failed: %v", err)
	}

	data := raw.AsFloat32()
	var sum, sumSq float64
	for _, v := range data {
		sum += float64(v)
		sumSq += float64(v) * float64(v)
	}
	n := float64(len(data))
	mean := sum / n
	variance := sumSq/n - mean*mean

	// Loose bounds for 1e6 samples from N(0, 1).
	if math.Abs(mean) > 0.01 {
		t.Errorf("Randn mean = %v, want ~0", mean)
	}
	if math.Abs(variance-1) > 0.05 {
		t.Errorf("Randn variance = %v, want ~1", variance)
	}
}

func TestFromSlice(t *testing.T) {
	data := []float32{1, 2, 3, 4, 5, 6}
	raw, err := FromSlice(data, Shape{2, 3}, CPU)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	got := raw.AsFloat32()
	for i, v := range data {
		if got[i] != v {
			t.Errorf("element %d = %v, want %v", i, got[i], v)
		}
	}

	if _, err := FromSlice(data, Shape{2, 2}, CPU); err == nil {
		t.Error("FromSlice with mismatched length should fail")
	}
}

func TestClone(t *testing.T) {
	raw, _ := FromSlice([]float32{1, 2, 3, 4}, Shape{2, 2}, CPU)
	clone := raw.Clone()

	clone.AsFloat32()[0] = 99
	if raw.AsFloat32()[0] != 1 {
		t.Error("Clone() shares memory with the original")
	}
	if !clone.Shape().Equal(raw.Shape()) {
		t.Errorf("Clone() shape = %v, want %v", clone.Shape(), raw.Shape())
	}
}

func TestAsFloat32WrongDType(t *testing.T) {
	raw, _ := NewRaw(Shape{2}, Int32, CPU)
	defer func() {
		if recover() == nil {
			t.Error("AsFloat32 on int32 tensor should panic")
		}
	}()
	_ = raw.AsFloat32()
}
