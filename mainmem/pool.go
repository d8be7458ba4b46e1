package mainmem

import "unsafe"

// chunks handed to the policy layer must be at least pointer aligned.
const chunkalignment = uintptr(8)

// mempool manages a memory block sliced up into equal sized chunks.
// The base slice keeps the block alive for the pool's lifetime, chunks
// never move.
type mempool struct {
	capacity  int64 // slabsize * number of chunks
	slabsize  int64
	allocated int64
	base      []byte
	freelist  []uint16
}

// slab size of each chunk and number of chunks in the pool.
func newmempool(slabsize, n int64) *mempool {
	pool := &mempool{
		capacity: slabsize * n,
		slabsize: slabsize,
		base:     make([]byte, slabsize*n),
		freelist: make([]uint16, 0, n),
	}
	for i := n - 1; i >= 0; i-- {
		pool.freelist = append(pool.freelist, uint16(i))
	}
	return pool
}

func (pool *mempool) allocchunk() (unsafe.Pointer, bool) {
	if len(pool.freelist) == 0 {
		return nil, false
	}
	nthchunk := pool.freelist[len(pool.freelist)-1]
	pool.freelist = pool.freelist[:len(pool.freelist)-1]
	ptr := unsafe.Pointer(&pool.base[int64(nthchunk)*pool.slabsize])
	if (uintptr(ptr) & (chunkalignment - 1)) != 0 {
		panicerr("chunk pointer is not %v byte aligned", chunkalignment)
	}
	initblock(ptr, pool.slabsize)
	pool.allocated += pool.slabsize
	return ptr, true
}

func (pool *mempool) free(ptr unsafe.Pointer) {
	if ptr == nil {
		panicerr("mempool.free(): nil pointer")
	}
	diffptr := uint64(uintptr(ptr) - uintptr(unsafe.Pointer(&pool.base[0])))
	if (diffptr % uint64(pool.slabsize)) != 0 {
		panicerr("mempool.free(): unaligned pointer: %x,%v", diffptr, pool.slabsize)
	}
	pool.freelist = append(pool.freelist, uint16(diffptr/uint64(pool.slabsize)))
	pool.allocated -= pool.slabsize
}

func (pool *mempool) release() {
	pool.base, pool.freelist = nil, nil
	pool.capacity, pool.allocated = 0, 0
}

// info return pool capacity, allocated bytes and management overhead.
func (pool *mempool) info() (capacity, allocated, overhead int64) {
	self := int64(unsafe.Sizeof(*pool))
	slicesz := int64(cap(pool.freelist)) * int64(unsafe.Sizeof(uint16(0)))
	return pool.capacity, pool.allocated, self + slicesz
}
