// Package cpu implements the CPU backend on top of gonum.
package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/gpucheck/internal/tensor"
)

// CPUBackend implements tensor operations on CPU. MatMul and element-wise
// arithmetic run in float64 through gonum and are converted back to the
// tensor's float32 storage.
type CPUBackend struct {
	device tensor.Device
}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// Add performs element-wise addition. Both operands must be float32 tensors
// of the same shape.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	checkFloat32("add", a)
	checkFloat32("add", b)
	if !a.Shape().Equal(b.Shape()) {
		panic(fmt.Sprintf("add: shape mismatch: %v vs %v", a.Shape(), b.Shape()))
	}

	result, err := tensor.NewRaw(a.Shape(), tensor.Float32, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("add: %v", err))
	}

	sum := toFloat64(a.AsFloat32())
	floats.Add(sum, toFloat64(b.AsFloat32()))
	fromFloat64(result.AsFloat32(), sum)
	return result
}

// MatMul performs 2D matrix multiplication C = A @ B using gonum's mat.Dense.
func (cpu *CPUBackend) MatMul(a, b *tensor.RawTensor) *tensor.RawTensor {
	checkFloat32("matmul", a)
	checkFloat32("matmul", b)
	if len(a.Shape()) != 2 || len(b.Shape()) != 2 {
		panic(fmt.Sprintf("matmul: requires 2D tensors, got %v and %v", a.Shape(), b.Shape()))
	}

	m, k := a.Shape()[0], a.Shape()[1]
	kb, n := b.Shape()[0], b.Shape()[1]
	if k != kb {
		panic(fmt.Sprintf("matmul: shape mismatch: [%d,%d] @ [%d,%d]", m, k, kb, n))
	}

	var c mat.Dense
	c.Mul(
		mat.NewDense(m, k, toFloat64(a.AsFloat32())),
		mat.NewDense(kb, n, toFloat64(b.AsFloat32())),
	)

	result, err := tensor.NewRaw(tensor.Shape{m, n}, tensor.Float32, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("matmul: %v", err))
	}
	fromFloat64(result.AsFloat32(), c.RawMatrix().Data)
	return result
}

// ReLU applies the rectified-linear activation element-wise.
func (cpu *CPUBackend) ReLU(x *tensor.RawTensor) *tensor.RawTensor {
	checkFloat32("relu", x)

	result, err := tensor.NewRaw(x.Shape(), tensor.Float32, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("relu: %v", err))
	}

	src := x.AsFloat32()
	dst := result.AsFloat32()
	for i, v := range src {
		if v > 0 {
			dst[i] = v
		}
	}
	return result
}

func checkFloat32(op string, t *tensor.RawTensor) {
	if t.DType() != tensor.Float32 {
		panic(fmt.Sprintf("%s: only float32 is supported, got %s", op, t.DType()))
	}
}

func toFloat64(src []float32) []float64 {
	dst := make([]float64, len(src))
	for i, v := range src {
		dst[i] = float64(v)
	}
	return dst
}

func fromFloat64(dst []float32, src []float64) {
	for i, v := range src {
		dst[i] = float32(v)
	}
}
