package tensor

import (
	"fmt"
	"math"
	"math/rand"
)

// Zeros creates a zero-filled tensor with the given shape and dtype.
func Zeros(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	// NewRaw buffers are already zero-initialized by make().
	return NewRaw(shape, dtype, device)
}

// Randn creates a float32 tensor with values drawn from the standard normal
// distribution N(0, 1), using the Box-Muller transform.
// Note: uses math/rand (not crypto/rand), which is appropriate for numeric
// smoke tests.
func Randn(shape Shape, device Device) (*RawTensor, error) {
	raw, err := NewRaw(shape, Float32, device)
	if err != nil {
		return nil, err
	}

	data := raw.AsFloat32()
	for i := 0; i < len(data); i += 2 {
		u1 := rand.Float64()
		u2 := rand.Float64()
		// Avoid log(0).
		for u1 == 0 {
			u1 = rand.Float64()
		}
		r := math.Sqrt(-2 * math.Log(u1))
		data[i] = float32(r * math.Cos(2*math.Pi*u2))
		if i+1 < len(data) {
			data[i+1] = float32(r * math.Sin(2*math.Pi*u2))
		}
	}
	return raw, nil
}

// FromSlice creates a float32 tensor from a Go slice.
// The slice length must match the shape's element count.
func FromSlice(data []float32, shape Shape, device Device) (*RawTensor, error) {
	raw, err := NewRaw(shape, Float32, device)
	if err != nil {
		return nil, err
	}
	if len(data) != raw.NumElements() {
		return nil, fmt.Errorf("slice length %d does not match shape %v (%d elements)",
			len(data), shape, raw.NumElements())
	}
	copy(raw.AsFloat32(), data)
	return raw, nil
}
