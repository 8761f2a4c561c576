package model

import "sync"

// MatrixToPool returns a matrix to the pool for reuse
func MatrixToPool(m [][]bool, pool *MatrixPool) {
	if pool == nil || m == nil {
		return
	}

	pool.Put(m)
}

// MatrixPool recycles next-generation buffers between steps
type MatrixPool struct {
	pool sync.Pool
}

func NewMatrixPool() *MatrixPool {
	return &MatrixPool{
		pool: sync.Pool{
			New: func() interface{} {
				return new([][]bool)
			},
		},
	}
}

// Get retrieves a dead size x size matrix, reallocating if the pooled one has the wrong shape
func (p *MatrixPool) Get(size int) [][]bool {
	ptr := p.pool.Get().(*[][]bool)
	m := *ptr
	if len(m) != size {
		return NewMatrix(size)
	}
	for i := range m {
		if len(m[i]) != size {
			m[i] = make([]bool, size)
			continue
		}
		clear(m[i])
	}
	return m
}

// Put returns a matrix to the pool
func (p *MatrixPool) Put(m [][]bool) {
	p.pool.Put(&m)
}
