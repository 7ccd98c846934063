package buffer

import "sync"

// Pool provides sync.Pool-based Complex reuse.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return &Complex{}
			},
		},
	}
}

// Get returns a zeroed buffer with the requested length.
// Callers must return it via Put when done.
func (p *Pool) Get(length int) *Complex {
	b := p.pool.Get().(*Complex)
	b.Resize(length)
	b.Zero()
	return b
}

// Put returns a buffer to the pool. The caller must not use it afterwards.
func (p *Pool) Put(b *Complex) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}
