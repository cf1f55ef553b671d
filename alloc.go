package ono

import "sync"

// errorArena allocates onoError values in slabs to keep per-wrap
// allocation cost low on hot error paths. Slabs are handed out through a
// sync.Pool; a slab is recycled until its slots are exhausted, then
// dropped for the garbage collector. Taken errors are never reused.
type errorArena struct {
	slabSize int
	pool     sync.Pool
}

func newErrorArena(slabSize int) *errorArena {
	return &errorArena{slabSize: slabSize}
}

// take returns a pointer to a zeroed onoError.
func (a *errorArena) take() *onoError {
	for {
		slab, ok := a.pool.Get().(*errorSlab)
		if !ok {
			slab = &errorSlab{buf: make([]onoError, a.slabSize)}
		}

		if e, ok := slab.take(); ok {
			a.pool.Put(slab)
			return e
		}
	}
}

// errorSlab is a fixed-size batch of onoError values,
// handed out in order.
type errorSlab struct {
	buf  []onoError
	next int
}

func (s *errorSlab) take() (*onoError, bool) {
	if s.next >= len(s.buf) {
		return nil, false
	}
	e := &s.buf[s.next]
	s.next++
	return e, true
}
