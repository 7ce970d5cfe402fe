// Package verify implements the GPU installation test: it reports the host
// environment, probes for an accelerator device, runs a fixed set of tensor
// smoke-test operations, and reduces the outcome to a single boolean.
package verify

import (
	"errors"
	"fmt"

	"github.com/born-ml/gpucheck/internal/tensor"
)

// errNoDevice is returned by tensor operations when no accelerator device is
// usable. The runner fails before reaching these operations, so seeing this
// error means the caller skipped device enumeration.
var errNoDevice = errors.New("no accelerator device available")

// LibraryVersion is the version of the embedded tensor stack.
const LibraryVersion = "0.1.0"

// Capability is a backend-reported version tuple describing the device
// feature level.
type Capability struct {
	Major int
	Minor int
}

// Device describes one accelerator device.
type Device struct {
	Index      int
	Name       string
	Capability Capability
}

// MemoryUsage reports accelerator memory consumption in bytes.
type MemoryUsage struct {
	AllocatedBytes uint64
	ReservedBytes  uint64
}

// Accelerator is the capability surface the installation test exercises.
// The runner treats it as an opaque provider: it sequences these calls and
// interprets errors as failures.
type Accelerator interface {
	// Environment metadata.
	LibraryVersion() string
	GPUBuilt() bool
	RuntimeVersion() (string, bool)

	// Device enumeration.
	Devices() []Device

	// Tensor operations on device 0.
	Zeros(shape tensor.Shape, dtype tensor.DataType) (*tensor.RawTensor, error)
	Randn(shape tensor.Shape) (*tensor.RawTensor, error)
	Add(a, b *tensor.RawTensor) (*tensor.RawTensor, error)
	ReLU(x *tensor.RawTensor) (*tensor.RawTensor, error)
	MatMul(a, b *tensor.RawTensor) (*tensor.RawTensor, error)

	// Memory accounting.
	MemoryUsage() MemoryUsage

	// Release frees device resources. Safe to call once after Run.
	Release()
}

// catch converts a panic from the backend layer into an error.
// Backend operations panic on device failures; the accelerator boundary turns
// those into values the runner can report.
func catch(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%v", r)
	}
}
