//go:build windows

package webgpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/gpucheck/internal/backend/cpu"
	"github.com/born-ml/gpucheck/internal/tensor"
)

// newTestBackend creates a backend or skips the test when no GPU is present.
func newTestBackend(t *testing.T) *Backend {
	t.Helper()
	if !IsAvailable() {
		t.Skip("WebGPU not available on this system")
	}
	backend, err := New()
	require.NoError(t, err)
	t.Cleanup(backend.Release)
	return backend
}

func TestAddMatchesCPU(t *testing.T) {
	gpu := newTestBackend(t)
	ref := cpu.New()

	a, err := tensor.Randn(tensor.Shape{100, 100}, tensor.WebGPU)
	require.NoError(t, err)
	b, err := tensor.Randn(tensor.Shape{100, 100}, tensor.WebGPU)
	require.NoError(t, err)

	got := gpu.Add(a, b)
	want := ref.Add(a.Clone(), b.Clone())

	gotData := got.AsFloat32()
	wantData := want.AsFloat32()
	for i := range wantData {
		assert.InDelta(t, wantData[i], gotData[i], 1e-5)
	}
}

func TestMatMulMatchesCPU(t *testing.T) {
	gpu := newTestBackend(t)
	ref := cpu.New()

	a, err := tensor.Randn(tensor.Shape{64, 32}, tensor.WebGPU)
	require.NoError(t, err)
	b, err := tensor.Randn(tensor.Shape{32, 48}, tensor.WebGPU)
	require.NoError(t, err)

	got := gpu.MatMul(a, b)
	want := ref.MatMul(a.Clone(), b.Clone())

	require.True(t, got.Shape().Equal(tensor.Shape{64, 48}))

	gotData := got.AsFloat32()
	wantData := want.AsFloat32()
	for i := range wantData {
		assert.InDelta(t, wantData[i], gotData[i], 1e-3)
	}
}

func TestReLU(t *testing.T) {
	gpu := newTestBackend(t)

	x, err := tensor.FromSlice([]float32{-1, 0, 1, -2.5, 2.5, 0.25}, tensor.Shape{2, 3}, tensor.WebGPU)
	require.NoError(t, err)

	y := gpu.ReLU(x)
	assert.Equal(t, []float32{0, 0, 1, 0, 2.5, 0.25}, y.AsFloat32())
}

func TestMatMulShapeMismatchPanics(t *testing.T) {
	gpu := newTestBackend(t)

	a, _ := tensor.Zeros(tensor.Shape{4, 3}, tensor.Float32, tensor.WebGPU)
	b, _ := tensor.Zeros(tensor.Shape{5, 4}, tensor.Float32, tensor.WebGPU)

	assert.Panics(t, func() { gpu.MatMul(a, b) })
}

func TestMemoryStats(t *testing.T) {
	gpu := newTestBackend(t)

	a, _ := tensor.Randn(tensor.Shape{128, 128}, tensor.WebGPU)
	b, _ := tensor.Randn(tensor.Shape{128, 128}, tensor.WebGPU)
	_ = gpu.MatMul(a, b)

	stats := gpu.MemoryStats()
	assert.Greater(t, stats.TotalAllocatedBytes, uint64(0))
	assert.Greater(t, stats.PeakBytes, uint64(0))
	// Result buffers go back to the pool after read-back.
	assert.Greater(t, stats.PooledBytes, uint64(0))

	// A second run should hit the pool.
	_ = gpu.MatMul(a, b)
	stats = gpu.MemoryStats()
	assert.Greater(t, stats.PoolHits, uint64(0))
}

func TestName(t *testing.T) {
	gpu := newTestBackend(t)
	assert.Contains(t, gpu.Name(), "WebGPU")
}
