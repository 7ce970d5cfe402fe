package verify

import (
	"fmt"
	"io"
	"runtime"

	"github.com/born-ml/gpucheck/internal/tensor"
)

// Shapes used by the smoke tests.
var (
	matmulShape = tensor.Shape{1000, 1000}
	dtypeShape  = tensor.Shape{100, 100}
)

// dtypes exercised by the type smoke test, in report order.
var smokeTestDTypes = []tensor.DataType{tensor.Float32, tensor.Float16, tensor.Int32}

// Run executes the installation test against the given accelerator, writing
// the report to w. It returns true only when every step succeeds; any failure
// prints a marker line and stops the remaining steps.
func Run(w io.Writer, acc Accelerator) bool {
	fmt.Fprintln(w, "=== GPU Installation Test ===")
	fmt.Fprintf(w, "Go version: %s\n", runtime.Version())
	fmt.Fprintf(w, "Tensor library version: %s\n", acc.LibraryVersion())
	if cpu := hostCPU(); cpu != "" {
		fmt.Fprintf(w, "Host CPU: %s\n", cpu)
	}

	fmt.Fprintf(w, "\n--- GPU Support ---\n")
	runtimeVersion, hasRuntime := acc.RuntimeVersion()
	fmt.Fprintf(w, "GPU support built: %v\n", acc.GPUBuilt())
	fmt.Fprintf(w, "GPU runtime detected: %v\n", acc.GPUBuilt() && hasRuntime)
	if hasRuntime {
		fmt.Fprintf(w, "Runtime version: %s\n", runtimeVersion)
		if warn := runtimeWarning(runtimeVersion); warn != "" {
			fmt.Fprintln(w, warn)
		}
	}

	devices := acc.Devices()
	if len(devices) == 0 {
		fmt.Fprintln(w, "✗ No GPU devices available")
		return false
	}
	fmt.Fprintf(w, "GPU device count: %d\n", len(devices))
	for _, d := range devices {
		fmt.Fprintf(w, "GPU %d: %s\n", d.Index, d.Name)
		fmt.Fprintf(w, "GPU %d capability: (%d, %d)\n", d.Index, d.Capability.Major, d.Capability.Minor)
	}

	fmt.Fprintf(w, "\n--- GPU Tensor Operations Test ---\n")
	if err := runMatMulTest(w, acc); err != nil {
		fmt.Fprintf(w, "✗ GPU tensor operations failed: %v\n", err)
		return false
	}

	fmt.Fprintf(w, "\n--- Data Type and Operation Test ---\n")
	if err := runDTypeTest(w, acc); err != nil {
		fmt.Fprintf(w, "✗ Data type operations failed: %v\n", err)
		return false
	}

	fmt.Fprintf(w, "\n=== Test Results ===\n")
	fmt.Fprintln(w, "✓ Tensor library installation successful")
	fmt.Fprintln(w, "✓ GPU acceleration enabled")
	fmt.Fprintln(w, "✓ GPU operations working")
	fmt.Fprintln(w, "✓ Ready for deep learning workloads!")
	return true
}

// runMatMulTest multiplies two random 1000x1000 matrices on device 0 and
// reports accelerator memory usage.
func runMatMulTest(w io.Writer, acc Accelerator) (err error) {
	defer catch(&err)

	x, err := acc.Randn(matmulShape)
	if err != nil {
		return err
	}
	y, err := acc.Randn(matmulShape)
	if err != nil {
		return err
	}
	if _, err := acc.MatMul(x, y); err != nil {
		return err
	}
	fmt.Fprintln(w, "✓ Matrix multiplication on GPU successful")

	mem := acc.MemoryUsage()
	fmt.Fprintf(w, "GPU memory allocated: %.2f GB\n", toGB(mem.AllocatedBytes))
	fmt.Fprintf(w, "GPU memory reserved: %.2f GB\n", toGB(mem.ReservedBytes))
	return nil
}

// runDTypeTest creates a 100x100 zero tensor for each supported element type,
// then runs elementwise add followed by relu on random inputs.
func runDTypeTest(w io.Writer, acc Accelerator) (err error) {
	defer catch(&err)

	for _, dtype := range smokeTestDTypes {
		if _, err := acc.Zeros(dtypeShape, dtype); err != nil {
			return err
		}
		fmt.Fprintf(w, "✓ Created %s tensor on GPU\n", dtype)
	}

	a, err := acc.Randn(dtypeShape)
	if err != nil {
		return err
	}
	b, err := acc.Randn(dtypeShape)
	if err != nil {
		return err
	}
	c, err := acc.Add(a, b)
	if err != nil {
		return err
	}
	if _, err := acc.ReLU(c); err != nil {
		return err
	}
	fmt.Fprintln(w, "✓ Basic operations (add, relu) successful")
	return nil
}

func toGB(bytes uint64) float64 {
	return float64(bytes) / (1 << 30)
}
