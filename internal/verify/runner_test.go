package verify

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/gpucheck/internal/tensor"
)

func deviceA() Device {
	return Device{Index: 0, Name: "Device-A", Capability: Capability{Major: 11, Minor: 0}}
}

func TestRunHappyPath(t *testing.T) {
	mock := newMockAccelerator(deviceA())
	var out bytes.Buffer

	ok := Run(&out, mock)
	require.True(t, ok)

	report := out.String()
	assert.Contains(t, report, "GPU device count: 1")
	assert.Contains(t, report, "GPU 0: Device-A")
	assert.Contains(t, report, "GPU 0 capability: (11, 0)")
	assert.Contains(t, report, "Matrix multiplication on GPU successful")
	assert.Contains(t, report, "Created float32 tensor on GPU")
	assert.Contains(t, report, "Created float16 tensor on GPU")
	assert.Contains(t, report, "Created int32 tensor on GPU")
	assert.Contains(t, report, "Basic operations (add, relu) successful")

	// The report ends with exactly the four fixed confirmation lines.
	wantTail := "=== Test Results ===\n" +
		"✓ Tensor library installation successful\n" +
		"✓ GPU acceleration enabled\n" +
		"✓ GPU operations working\n" +
		"✓ Ready for deep learning workloads!\n"
	assert.True(t, strings.HasSuffix(report, wantTail), "report tail:\n%s", report)

	assert.Equal(t, 1, mock.matmulCalls)
	assert.Equal(t, []tensor.DataType{tensor.Float32, tensor.Float16, tensor.Int32}, mock.zerosCalls)
	assert.Equal(t, 1, mock.addCalls)
	assert.Equal(t, 1, mock.reluCalls)
}

func TestRunNoDevices(t *testing.T) {
	mock := newMockAccelerator()
	var out bytes.Buffer

	ok := Run(&out, mock)
	assert.False(t, ok)
	assert.Contains(t, out.String(), "No GPU devices available")

	// No tensor allocations happen on the early-exit path.
	assert.Zero(t, mock.randnCalls)
	assert.Empty(t, mock.zerosCalls)
	assert.Zero(t, mock.matmulCalls)
}

func TestRunMatMulFailure(t *testing.T) {
	mock := newMockAccelerator(deviceA())
	mock.failMatMul = true
	var out bytes.Buffer

	ok := Run(&out, mock)
	assert.False(t, ok)
	assert.Contains(t, out.String(), "✗ GPU tensor operations failed: injected matmul failure")

	// The type/operation block never runs after the matmul failure.
	assert.Empty(t, mock.zerosCalls)
	assert.Zero(t, mock.addCalls)
	assert.NotContains(t, out.String(), "Test Results")
}

func TestRunMatMulPanicIsRecovered(t *testing.T) {
	mock := newMockAccelerator(deviceA())
	mock.panicMatMul = true
	var out bytes.Buffer

	ok := Run(&out, mock)
	assert.False(t, ok)
	assert.Contains(t, out.String(), "✗ GPU tensor operations failed: device lost during matmul")
	assert.Empty(t, mock.zerosCalls)
}

func TestRunZerosFailureStopsTypeBlock(t *testing.T) {
	mock := newMockAccelerator(deviceA())
	mock.failZeros[tensor.Float16] = true
	var out bytes.Buffer

	ok := Run(&out, mock)
	assert.False(t, ok)
	assert.Contains(t, out.String(), "✗ Data type operations failed: injected zeros failure")

	// Add/relu are never attempted after a zero-tensor failure.
	assert.Zero(t, mock.addCalls)
	assert.Zero(t, mock.reluCalls)
	// float32 succeeded before float16 failed; int32 was never tried.
	assert.Equal(t, []tensor.DataType{tensor.Float32, tensor.Float16}, mock.zerosCalls)
}

func TestRunAddFailureSkipsReLU(t *testing.T) {
	mock := newMockAccelerator(deviceA())
	mock.failAdd = true
	var out bytes.Buffer

	ok := Run(&out, mock)
	assert.False(t, ok)
	assert.Zero(t, mock.reluCalls)
}

func TestMemoryReportFormat(t *testing.T) {
	mock := newMockAccelerator(deviceA())
	mock.memory = MemoryUsage{
		AllocatedBytes: 2684354560, // 2.5 GiB
		ReservedBytes:  3221225472, // 3 GiB
	}
	var out bytes.Buffer

	require.True(t, Run(&out, mock))

	report := out.String()
	assert.Contains(t, report, "GPU memory allocated: 2.50 GB")
	assert.Contains(t, report, "GPU memory reserved: 3.00 GB")

	// Both values are non-negative with two decimal places.
	re := regexp.MustCompile(`GPU memory (allocated|reserved): \d+\.\d{2} GB`)
	assert.Len(t, re.FindAllString(report, -1), 2)
}

func TestRunEnvironmentReport(t *testing.T) {
	mock := newMockAccelerator(deviceA())
	var out bytes.Buffer

	Run(&out, mock)

	report := out.String()
	assert.Contains(t, report, "=== GPU Installation Test ===")
	assert.Contains(t, report, "Go version: go")
	assert.Contains(t, report, "Tensor library version: "+LibraryVersion)
	assert.Contains(t, report, "GPU support built: true")
	assert.Contains(t, report, "GPU runtime detected: true")
	assert.Contains(t, report, "Runtime version: 0.1.0")
}

func TestRunNoRuntimeVersion(t *testing.T) {
	mock := newMockAccelerator(deviceA())
	mock.runtimeVersion = ""
	var out bytes.Buffer

	Run(&out, mock)

	report := out.String()
	assert.Contains(t, report, "GPU runtime detected: false")
	assert.NotContains(t, report, "Runtime version:")
}
