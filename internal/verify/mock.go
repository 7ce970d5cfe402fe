package verify

import (
	"errors"

	"github.com/born-ml/gpucheck/internal/backend/cpu"
	"github.com/born-ml/gpucheck/internal/tensor"
)

// mockAccelerator is a scriptable Accelerator used by the runner tests.
// Tensor operations delegate to the CPU backend so results are numerically
// real; individual operations can be made to fail or panic.
type mockAccelerator struct {
	devices        []Device
	built          bool
	runtimeVersion string
	memory         MemoryUsage

	failMatMul  bool
	panicMatMul bool
	failZeros   map[tensor.DataType]bool
	failAdd     bool
	failReLU    bool

	// Call accounting, checked by ordering assertions.
	zerosCalls  []tensor.DataType
	randnCalls  int
	addCalls    int
	reluCalls   int
	matmulCalls int
	released    bool

	backend *cpu.CPUBackend
}

// newMockAccelerator returns a mock reporting the given devices.
// With no devices it mimics a library built without GPU support.
func newMockAccelerator(devices ...Device) *mockAccelerator {
	return &mockAccelerator{
		devices:        devices,
		built:          len(devices) > 0,
		runtimeVersion: "0.1.0",
		memory: MemoryUsage{
			AllocatedBytes: 8 << 20,
			ReservedBytes:  16 << 20,
		},
		failZeros: make(map[tensor.DataType]bool),
		backend:   cpu.New(),
	}
}

func (m *mockAccelerator) LibraryVersion() string { return LibraryVersion }

func (m *mockAccelerator) GPUBuilt() bool { return m.built }

func (m *mockAccelerator) RuntimeVersion() (string, bool) {
	return m.runtimeVersion, m.runtimeVersion != ""
}

func (m *mockAccelerator) Devices() []Device { return m.devices }

func (m *mockAccelerator) Zeros(shape tensor.Shape, dtype tensor.DataType) (*tensor.RawTensor, error) {
	m.zerosCalls = append(m.zerosCalls, dtype)
	if m.failZeros[dtype] {
		return nil, errors.New("injected zeros failure")
	}
	return tensor.Zeros(shape, dtype, tensor.CPU)
}

func (m *mockAccelerator) Randn(shape tensor.Shape) (*tensor.RawTensor, error) {
	m.randnCalls++
	return tensor.Randn(shape, tensor.CPU)
}

func (m *mockAccelerator) Add(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	m.addCalls++
	if m.failAdd {
		return nil, errors.New("injected add failure")
	}
	return m.backend.Add(a, b), nil
}

func (m *mockAccelerator) ReLU(x *tensor.RawTensor) (*tensor.RawTensor, error) {
	m.reluCalls++
	if m.failReLU {
		return nil, errors.New("injected relu failure")
	}
	return m.backend.ReLU(x), nil
}

func (m *mockAccelerator) MatMul(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	m.matmulCalls++
	if m.panicMatMul {
		panic("device lost during matmul")
	}
	if m.failMatMul {
		return nil, errors.New("injected matmul failure")
	}
	return m.backend.MatMul(a, b), nil
}

func (m *mockAccelerator) MemoryUsage() MemoryUsage { return m.memory }

func (m *mockAccelerator) Release() { m.released = true }
