package pool

// DefaultMaxBufferSize bounds retained buffers at 1 MiB.
const DefaultMaxBufferSize = 1 << 20

// PoolConfig configures a buffer pool
type PoolConfig struct {
	MaxBufferSize int // Largest buffer the pool will retain for reuse
}
