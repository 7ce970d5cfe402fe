//go:build !windows

package verify

import (
	"github.com/born-ml/gpucheck/internal/tensor"
)

// NewAccelerator returns the accelerator for platforms where the WebGPU
// binding is not built: the library reports no GPU support and no devices.
func NewAccelerator() Accelerator {
	return &unsupportedAccelerator{}
}

type unsupportedAccelerator struct{}

func (*unsupportedAccelerator) LibraryVersion() string { return LibraryVersion }
func (*unsupportedAccelerator) GPUBuilt() bool { return false }
func (*unsupportedAccelerator) RuntimeVersion() (string, bool) { return detectRuntimeVersion() }
func (*unsupportedAccelerator) Devices() []Device { return nil }
func (*unsupportedAccelerator) MemoryUsage() MemoryUsage { return MemoryUsage{} }
func (*unsupportedAccelerator) Release() {}

func (*unsupportedAccelerator) Zeros(tensor.Shape, tensor.DataType) (*tensor.RawTensor, error) {
	return nil, errNoDevice
}

func (*unsupportedAccelerator) Randn(tensor.Shape) (*tensor.RawTensor, error) {
	return nil, errNoDevice
}

func (*unsupportedAccelerator) Add(_, _ *tensor.RawTensor) (*tensor.RawTensor, error) {
	return nil, errNoDevice
}

func (*unsupportedAccelerator) ReLU(*tensor.RawTensor) (*tensor.RawTensor, error) {
	return nil, errNoDevice
}

func (*unsupportedAccelerator) MatMul(_, _ *tensor.RawTensor) (*tensor.RawTensor, error) {
	return nil, errNoDevice
}
