//go:build windows

package webgpu

import (
	"sync"

	"github.com/go-webgpu/webgpu/wgpu"
)

// maxPooledBuffers caps how many buffers the pool retains.
const maxPooledBuffers = 32

// pooledBuffer wraps a GPU buffer with the metadata needed for reuse.
type pooledBuffer struct {
	buffer *wgpu.Buffer
	size   uint64
	usage  wgpu.BufferUsage
}

// BufferPool reuses GPU storage buffers to reduce allocation overhead.
// Bytes held by idle pooled buffers count as reserved memory.
type BufferPool struct {
	device *wgpu.Device

	buffers []*pooledBuffer
	mu      sync.Mutex

	// Statistics
	pooledBytes uint64
	hits        uint64
	misses      uint64
}

// NewBufferPool creates a buffer pool for the given device.
func NewBufferPool(device *wgpu.Device) *BufferPool {
	return &BufferPool{
		device:  device,
		buffers: make([]*pooledBuffer, 0, maxPooledBuffers),
	}
}

// Acquire returns a buffer of at least size bytes with the requested usage,
// reusing a pooled buffer when one fits. The returned size is the actual
// buffer size, which may exceed the request.
func (p *BufferPool) Acquire(size uint64, usage wgpu.BufferUsage) (*wgpu.Buffer, uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, pb := range p.buffers {
		if pb.size >= size && pb.usage&usage == usage {
			p.buffers = append(p.buffers[:i], p.buffers[i+1:]...)
			p.pooledBytes -= pb.size
			p.hits++
			return pb.buffer, pb.size
		}
	}

	p.misses++
	buffer := p.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: usage,
		Size:  size,
	})
	return buffer, size
}

// Release returns a buffer to the pool. If the pool is full the buffer is
// released to the GPU instead.
func (p *BufferPool) Release(buffer *wgpu.Buffer, size uint64, usage wgpu.BufferUsage) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.buffers) >= maxPooledBuffers {
		buffer.Release()
		return
	}

	p.buffers = append(p.buffers, &pooledBuffer{buffer: buffer, size: size, usage: usage})
	p.pooledBytes += size
}

// PooledBytes returns the total bytes currently held by idle pooled buffers.
func (p *BufferPool) PooledBytes() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pooledBytes
}

// Stats returns pool hit/miss counters and the pooled buffer count.
func (p *BufferPool) Stats() (hits, misses uint64, pooled int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hits, p.misses, len(p.buffers)
}

// Clear releases all pooled buffers.
func (p *BufferPool) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, pb := range p.buffers {
		pb.buffer.Release()
	}
	p.buffers = p.buffers[:0]
	p.pooledBytes = 0
}
