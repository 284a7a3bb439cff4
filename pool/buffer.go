package pool

import (
	"sync"

	"github.com/go-i2p/go-envelope/internal"
)

// BufferPool recycles scratch byte buffers for performance optimization.
// Envelope decoding copies every input buffer before mutating it; the pool
// amortizes those allocations across calls. A BufferPool is safe for
// concurrent use.
type BufferPool struct {
	pool    sync.Pool
	maxSize int
}

// NewBufferPool creates a new buffer pool with the given configuration
func NewBufferPool(config *PoolConfig) *BufferPool {
	if config == nil {
		config = &PoolConfig{
			MaxBufferSize: DefaultMaxBufferSize,
		}
	}

	return &BufferPool{
		maxSize: config.MaxBufferSize,
	}
}

// Get returns a buffer of length n. Contents are unspecified; callers must
// overwrite the full length before reading it.
func (p *BufferPool) Get(n int) []byte {
	if v := p.pool.Get(); v != nil {
		buf := v.([]byte)
		if cap(buf) >= n {
			return buf[:n]
		}
	}
	return make([]byte, n)
}

// Put returns a buffer to the pool for reuse. The buffer is zeroed before
// pooling so decoded plaintext never lingers in recycled memory. Buffers
// larger than the configured maximum are dropped so a single oversized
// decode does not pin memory.
func (p *BufferPool) Put(buf []byte) {
	if cap(buf) == 0 || cap(buf) > p.maxSize {
		return
	}
	internal.SecureZero(buf[:cap(buf)])
	p.pool.Put(buf[:0]) //nolint:staticcheck // slice header allocation is acceptable here
}

// MaxBufferSize returns the largest buffer length the pool will retain.
func (p *BufferPool) MaxBufferSize() int {
	return p.maxSize
}
