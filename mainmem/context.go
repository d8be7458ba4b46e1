package mainmem

import "sort"
import "unsafe"

import s "github.com/bnclabs/gosettings"
import humanize "github.com/dustin/go-humanize"

import "github.com/garyfub/madlibport/lib"

// Context is a host allocation scope with a maximum capacity, empty to
// begin with, filling up as allocations are requested. Chunks are
// served from slab-sized pools, requests above the maxblock setting
// get a dedicated buffer. Memory is given back to the runtime only
// when the context is Released. Not thread safe.
type Context struct {
	name     string
	slabs    []int64                // sorted list of slab sizes
	mpools   map[int64][]*mempool   // slab size -> pools
	registry map[uintptr]*mempool   // chunk address -> owning pool
	huge     map[uintptr][]byte     // oversized chunks
	heap     int64                  // bytes obtained from the runtime
	alloced  int64                  // bytes handed out to callers
	h_allocs *lib.AverageInt64      // requested-size accounting

	// settings
	capacity  int64
	minblock  int64
	maxblock  int64
	maxchunks int64
}

// NewContext create a memory context of `capacity` bytes. Settings
// documented under Defaultsettings.
func NewContext(name string, capacity int64, setts s.Settings) *Context {
	minblock, maxblock := setts.Int64("minblock"), setts.Int64("maxblock")
	maxchunks := setts.Int64("maxchunks")
	ctxt := &Context{
		name:     name,
		slabs:    Blocksizes(minblock, maxblock),
		mpools:   make(map[int64][]*mempool),
		registry: make(map[uintptr]*mempool),
		huge:     make(map[uintptr][]byte),
		h_allocs: &lib.AverageInt64{},
		// settings
		capacity:  capacity,
		minblock:  minblock,
		maxblock:  maxblock,
		maxchunks: maxchunks,
	}
	if int64(len(ctxt.slabs)) > Maxpools {
		panicerr("mainmem.%v: %v slabs exceeds %v", name, len(ctxt.slabs), Maxpools)
	} else if capacity <= 0 || capacity > Maxcontextsize {
		panicerr("mainmem.%v: capacity %v beyond %v", name, capacity, Maxcontextsize)
	} else if maxchunks <= 0 || maxchunks > Maxchunks {
		panicerr("mainmem.%v: maxchunks %v beyond %v", name, maxchunks, Maxchunks)
	}
	infof("mainmem.%v created, capacity %v\n",
		name, humanize.Bytes(uint64(capacity)))
	return ctxt
}

//---- operations

func (ctxt *Context) alloc(n int64) (unsafe.Pointer, error) {
	if ctxt.mpools == nil {
		panicerr("mainmem.%v: context released", ctxt.name)
	} else if n < 0 {
		panicerr("mainmem.%v: invalid size %v", ctxt.name, n)
	}
	if n > ctxt.maxblock {
		return ctxt.allochuge(n)
	}

	size := SuitableSize(ctxt.slabs, n)
	for _, pool := range ctxt.mpools[size] {
		if ptr, ok := pool.allocchunk(); ok {
			ctxt.account(ptr, pool, n)
			return ptr, nil
		}
	}
	// pools for this slab exhausted, figure the dimensions of a new
	// pool within what is left of the capacity.
	numchunks := (ctxt.capacity / int64(len(ctxt.slabs))) / size
	if numchunks > ctxt.maxchunks {
		numchunks = ctxt.maxchunks
	}
	if numchunks > 8 && (numchunks&0x7) > 0 {
		numchunks = (numchunks >> 3) << 3
	}
	if numchunks < 1 {
		numchunks = 1
	}
	if free := (ctxt.capacity - ctxt.heap) / size; numchunks > free {
		numchunks = free
	}
	if numchunks < 1 {
		return nil, ErrorOutofMemory
	}
	pool := newmempool(size, numchunks)
	ctxt.heap += size * numchunks
	pools := append(ctxt.mpools[size], nil)
	copy(pools[1:], pools)
	pools[0] = pool
	ctxt.mpools[size] = pools

	ptr, _ := pool.allocchunk()
	ctxt.account(ptr, pool, n)
	return ptr, nil
}

func (ctxt *Context) allochuge(n int64) (unsafe.Pointer, error) {
	if n > ctxt.capacity-ctxt.heap {
		return nil, ErrorOutofMemory
	}
	buf := make([]byte, n)
	ptr := unsafe.Pointer(&buf[0])
	ctxt.huge[uintptr(ptr)] = buf
	ctxt.heap += n
	ctxt.alloced += n
	ctxt.h_allocs.Add(n)
	debugf("mainmem.%v serving %v byte dedicated buffer\n", ctxt.name, n)
	return ptr, nil
}

func (ctxt *Context) realloc(ptr unsafe.Pointer, n int64) (unsafe.Pointer, error) {
	if ctxt.mpools == nil {
		panicerr("mainmem.%v: context released", ctxt.name)
	}
	if ptr == nil {
		return ctxt.alloc(n)
	}
	cur := ctxt.chunklen(ptr)
	if n <= cur {
		return ptr, nil
	}
	nptr, err := ctxt.alloc(n)
	if err != nil {
		return nil, err
	}
	copy(unsafe.Slice((*byte)(nptr), cur), unsafe.Slice((*byte)(ptr), cur))
	ctxt.free(ptr)
	return nptr, nil
}

func (ctxt *Context) free(ptr unsafe.Pointer) {
	if ptr == nil {
		return
	} else if ctxt.mpools == nil {
		panicerr("mainmem.%v: context released", ctxt.name)
	}
	if pool, ok := ctxt.registry[uintptr(ptr)]; ok {
		delete(ctxt.registry, uintptr(ptr))
		pool.free(ptr)
		ctxt.alloced -= pool.slabsize
		return
	}
	if buf, ok := ctxt.huge[uintptr(ptr)]; ok {
		delete(ctxt.huge, uintptr(ptr))
		ctxt.heap -= int64(len(buf))
		ctxt.alloced -= int64(len(buf))
		debugf("mainmem.%v released %v byte dedicated buffer\n", ctxt.name, len(buf))
		return
	}
	panicerr("mainmem.%v: free of foreign pointer", ctxt.name)
}

// chunklen usable bytes of the chunk at `ptr`.
func (ctxt *Context) chunklen(ptr unsafe.Pointer) int64 {
	if pool, ok := ctxt.registry[uintptr(ptr)]; ok {
		return pool.slabsize
	}
	if buf, ok := ctxt.huge[uintptr(ptr)]; ok {
		return int64(len(buf))
	}
	panicerr("mainmem.%v: foreign pointer", ctxt.name)
	return 0
}

func (ctxt *Context) account(ptr unsafe.Pointer, pool *mempool, n int64) {
	ctxt.registry[uintptr(ptr)] = pool
	ctxt.alloced += pool.slabsize
	ctxt.h_allocs.Add(n)
}

// Release the context, all its pools and resources. Logs accounting
// when mainmem logging is enabled. Allocating from a released context
// panics.
func (ctxt *Context) Release() {
	if ctxt.mpools == nil {
		return
	}
	_, heap, alloced, overhead := ctxt.Info()
	fmsg := "mainmem.%v released, heap:%v alloc:%v overhead:%v chunks:%v mean:%v sd:%v\n"
	infof(fmsg, ctxt.name,
		humanize.Bytes(uint64(heap)), humanize.Bytes(uint64(alloced)),
		humanize.Bytes(uint64(overhead)), ctxt.h_allocs.Samples(),
		humanize.Bytes(uint64(ctxt.h_allocs.Mean())),
		humanize.Bytes(uint64(ctxt.h_allocs.SD())))
	for _, pools := range ctxt.mpools {
		for _, pool := range pools {
			pool.release()
		}
	}
	ctxt.slabs, ctxt.mpools = nil, nil
	ctxt.registry, ctxt.huge = nil, nil
	ctxt.heap, ctxt.alloced = 0, 0
}

//---- statistics

// Name of this context.
func (ctxt *Context) Name() string {
	return ctxt.name
}

// Slabs allocatable slab sizes.
func (ctxt *Context) Slabs() []int64 {
	return ctxt.slabs
}

// Allocated bytes handed out to callers.
func (ctxt *Context) Allocated() int64 {
	return ctxt.alloced
}

// Available bytes within capacity.
func (ctxt *Context) Available() int64 {
	return ctxt.capacity - ctxt.alloced
}

// Info of memory accounting for this context.
func (ctxt *Context) Info() (capacity, heap, alloced, overhead int64) {
	capacity = ctxt.capacity
	self := int64(unsafe.Sizeof(*ctxt))
	slicesz := int64(cap(ctxt.slabs)) * int64(unsafe.Sizeof(int64(1)))
	overhead += self + slicesz
	for _, pools := range ctxt.mpools {
		for _, pool := range pools {
			c, a, o := pool.info()
			heap += c
			alloced += a
			overhead += o
		}
	}
	for _, buf := range ctxt.huge {
		heap += int64(len(buf))
		alloced += int64(len(buf))
	}
	return
}

// Utilization per-slab, allocated over pooled as a percentage.
func (ctxt *Context) Utilization() ([]int, []float64) {
	var sizes []int
	for _, size := range ctxt.slabs {
		sizes = append(sizes, int(size))
	}
	sort.Ints(sizes)

	ss, zs := make([]int, 0), make([]float64, 0)
	for _, size := range sizes {
		capacity, alloced := float64(0), float64(0)
		for _, pool := range ctxt.mpools[int64(size)] {
			capacity += float64(pool.capacity)
			alloced += float64(pool.allocated)
		}
		if capacity > 0 {
			ss = append(ss, size)
			zs = append(zs, (alloced/capacity)*100)
		}
	}
	return ss, zs
}
