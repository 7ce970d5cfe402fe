//go:build windows

package webgpu

import (
	"fmt"

	"github.com/born-ml/gpucheck/internal/tensor"
)

// Add performs element-wise addition on GPU.
func (b *Backend) Add(a, c *tensor.RawTensor) *tensor.RawTensor {
	result, err := b.runAdd(a, c)
	if err != nil {
		panic(fmt.Sprintf("webgpu: add: %v", err))
	}
	return result
}

// MatMul performs matrix multiplication on GPU.
func (b *Backend) MatMul(a, c *tensor.RawTensor) *tensor.RawTensor {
	result, err := b.runMatMul(a, c)
	if err != nil {
		panic(fmt.Sprintf("webgpu: matmul: %v", err))
	}
	return result
}

// ReLU applies the rectified-linear activation on GPU.
func (b *Backend) ReLU(x *tensor.RawTensor) *tensor.RawTensor {
	result, err := b.runReLU(x)
	if err != nil {
		panic(fmt.Sprintf("webgpu: relu: %v", err))
	}
	return result
}

// Zeros allocates a zero-filled device tensor.
//
// Tensor data lives host-side until an operation uploads it, so allocation is
// tracked against the device only when kernels run.
func (b *Backend) Zeros(shape tensor.Shape, dtype tensor.DataType) (*tensor.RawTensor, error) {
	return tensor.Zeros(shape, dtype, tensor.WebGPU)
}

// Randn allocates a device tensor filled from the standard normal distribution.
func (b *Backend) Randn(shape tensor.Shape) (*tensor.RawTensor, error) {
	return tensor.Randn(shape, tensor.WebGPU)
}
