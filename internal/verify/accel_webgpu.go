//go:build windows

package verify

import (
	"fmt"

	"github.com/born-ml/gpucheck/internal/backend/webgpu"
	"github.com/born-ml/gpucheck/internal/tensor"
)

// NewAccelerator returns the production accelerator backed by the WebGPU
// compute backend. When the native library or adapter is missing, the
// returned accelerator reports GPU support as built but exposes no devices.
func NewAccelerator() Accelerator {
	backend, err := webgpu.New()
	if err != nil {
		return &noDeviceAccelerator{}
	}
	return &webgpuAccelerator{backend: backend}
}

// webgpuAccelerator adapts the WebGPU backend to the Accelerator surface.
// Backend panics are converted into errors at this boundary.
type webgpuAccelerator struct {
	backend *webgpu.Backend
}

func (a *webgpuAccelerator) LibraryVersion() string { return LibraryVersion }

func (a *webgpuAccelerator) GPUBuilt() bool { return true }

func (a *webgpuAccelerator) RuntimeVersion() (string, bool) {
	return detectRuntimeVersion()
}

func (a *webgpuAccelerator) Devices() []Device {
	name := "Unknown GPU"
	if info := a.backend.AdapterInfo(); info != nil {
		name = fmt.Sprintf("%s (%s)", info.Name, info.VendorName)
	}

	capability := Capability{}
	if version, ok := detectRuntimeVersion(); ok {
		capability = capabilityFromVersion(version)
	}

	// WebGPU exposes a single requested adapter; there is no enumeration of
	// further devices.
	return []Device{{Index: 0, Name: name, Capability: capability}}
}

func (a *webgpuAccelerator) Zeros(shape tensor.Shape, dtype tensor.DataType) (res *tensor.RawTensor, err error) {
	defer catch(&err)
	return a.backend.Zeros(shape, dtype)
}

func (a *webgpuAccelerator) Randn(shape tensor.Shape) (res *tensor.RawTensor, err error) {
	defer catch(&err)
	return a.backend.Randn(shape)
}

func (a *webgpuAccelerator) Add(x, y *tensor.RawTensor) (res *tensor.RawTensor, err error) {
	defer catch(&err)
	return a.backend.Add(x, y), nil
}

func (a *webgpuAccelerator) ReLU(x *tensor.RawTensor) (res *tensor.RawTensor, err error) {
	defer catch(&err)
	return a.backend.ReLU(x), nil
}

func (a *webgpuAccelerator) MatMul(x, y *tensor.RawTensor) (res *tensor.RawTensor, err error) {
	defer catch(&err)
	return a.backend.MatMul(x, y), nil
}

func (a *webgpuAccelerator) MemoryUsage() MemoryUsage {
	stats := a.backend.MemoryStats()
	return MemoryUsage{
		AllocatedBytes: stats.CurrentBytes,
		ReservedBytes:  stats.CurrentBytes + stats.PooledBytes,
	}
}

func (a *webgpuAccelerator) Release() {
	a.backend.Release()
}

// noDeviceAccelerator is returned when the WebGPU backend cannot be
// initialized: the library carries GPU support but no device is usable.
type noDeviceAccelerator struct{}

func (*noDeviceAccelerator) LibraryVersion() string { return LibraryVersion }
func (*noDeviceAccelerator) GPUBuilt() bool { return true }
func (*noDeviceAccelerator) RuntimeVersion() (string, bool) { return detectRuntimeVersion() }
func (*noDeviceAccelerator) Devices() []Device { return nil }
func (*noDeviceAccelerator) MemoryUsage() MemoryUsage { return MemoryUsage{} }
func (*noDeviceAccelerator) Release() {}

func (*noDeviceAccelerator) Zeros(tensor.Shape, tensor.DataType) (*tensor.RawTensor, error) {
	return nil, errNoDevice
}

func (*noDeviceAccelerator) Randn(tensor.Shape) (*tensor.RawTensor, error) {
	return nil, errNoDevice
}

func (*noDeviceAccelerator) Add(_, _ *tensor.RawTensor) (*tensor.RawTensor, error) {
	return nil, errNoDevice
}

func (*noDeviceAccelerator) ReLU(*tensor.RawTensor) (*tensor.RawTensor, error) {
	return nil, errNoDevice
}

func (*noDeviceAccelerator) MatMul(_, _ *tensor.RawTensor) (*tensor.RawTensor, error) {
	return nil, errNoDevice
}
