package tensor

// Backend defines the interface that compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// Implementations:
//   - CPU: gonum-based reference implementation
//   - WebGPU: GPU compute via WGSL kernels
//
// Operations panic on invalid inputs or device failures; callers that need to
// treat failures as recoverable results must recover at the call site.
type Backend interface {
	// Element-wise binary operations
	Add(a, b *RawTensor) *RawTensor

	// Matrix operations
	MatMul(a, b *RawTensor) *RawTensor

	// Activation functions
	ReLU(x *RawTensor) *RawTensor

	// Metadata
	Name() string
	Device() Device
}
