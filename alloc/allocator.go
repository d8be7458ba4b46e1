package alloc

import "fmt"
import "math"
import "unsafe"

import "github.com/garyfub/madlibport/api"

// Alignment of every pointer returned by Allocate and Reallocate.
const Alignment = uint64(16)

// largest request size that still leaves room for the alignment pad.
const maxsize = math.MaxUint64 - Alignment

const ptrsize = int(unsafe.Sizeof(unsafe.Pointer(nil)))

// Allocator wraps the host primitive with policy semantics. One host
// context is bound per MemoryContext value at construction time, the
// allocator never creates or destroys host contexts.
type Allocator struct {
	mm     api.MemoryManager
	fnctx  api.Context
	aggctx api.Context
}

// New create an allocator over the host memory manager `mm`. `fnctx`
// serves FunctionContext allocations and is mandatory, `aggctx` serves
// AggregateContext allocations and falls back to `fnctx` when nil.
func New(mm api.MemoryManager, fnctx, aggctx api.Context) *Allocator {
	if mm == nil {
		panic(fmt.Errorf("alloc.New(): nil memory manager"))
	} else if fnctx == nil {
		panic(fmt.Errorf("alloc.New(): nil function context"))
	}
	return &Allocator{mm: mm, fnctx: fnctx, aggctx: aggctx}
}

//---- operations

// Allocate a chunk of `size` bytes under `policy`. The returned pointer
// is 16-byte aligned. Under DoZero every byte of the chunk reads as
// zero. On host failure: ReturnError surfaces ErrorAllocation,
// ReturnNil yields (nil, nil) with the host failure fully absorbed.
// A size too large to represent fails with ErrorSizeOverflow for
// either failure policy.
func (al *Allocator) Allocate(size uint64, policy Policy) (ptr unsafe.Pointer, err error) {
	if size > maxsize {
		return nil, ErrorSizeOverflow
	}
	defer func() {
		if r := recover(); r != nil {
			ptr, err = nil, al.failure(policy, r)
		}
	}()

	raw, herr := al.mm.Alloc(al.hostcontext(policy.Context), size+Alignment)
	if herr != nil || raw == nil {
		return nil, al.failure(policy, herr)
	}
	ptr = makeAligned(raw)
	if policy.Zero == DoZero {
		zerofill(ptr, size)
	}
	return ptr, nil
}

// Reallocate resize a chunk previously obtained from Allocate or
// Reallocate to at least `newsize` bytes. The overlapping prefix of the
// content is preserved byte-for-byte, bytes beyond it are unspecified.
// The input pointer is invalid after a successful call and must not be
// freed. A nil input behaves as Allocate. Failure contract same as
// Allocate; on failure the input chunk is left untouched and valid.
func (al *Allocator) Reallocate(ptr unsafe.Pointer, newsize uint64, policy Policy) (nptr unsafe.Pointer, err error) {
	if ptr == nil {
		return al.Allocate(newsize, policy)
	}
	if newsize > maxsize {
		return nil, ErrorSizeOverflow
	}
	defer func() {
		if r := recover(); r != nil {
			nptr, err = nil, al.failure(policy, r)
		}
	}()

	raw := unaligned(ptr)
	oldoff := uintptr(ptr) - uintptr(raw)
	newraw, herr := al.mm.Realloc(
		al.hostcontext(policy.Context), raw, newsize+Alignment)
	if herr != nil || newraw == nil {
		return nil, al.failure(policy, herr)
	}
	// host preserves content relative to the chunk base. If the new
	// base lands on a different alignment offset, slide the payload
	// to where makeAligned will point.
	newoff := uintptr(Alignment) - (uintptr(newraw) & uintptr(Alignment-1))
	if newoff != oldoff && newsize > 0 {
		block := unsafe.Slice((*byte)(newraw), newsize+Alignment)
		copy(block[newoff:newoff+uintptr(newsize)], block[oldoff:oldoff+uintptr(newsize)])
	}
	return makeAligned(newraw), nil
}

// Free a chunk previously obtained from Allocate or Reallocate under
// the same MemoryContext. A nil pointer is accepted and is a no-op.
// Free never fails, regardless of FailurePolicy: release routinely
// happens during unwind and cleanup where a second failure would
// corrupt program state, so any host-side failure is swallowed.
func (al *Allocator) Free(ptr unsafe.Pointer, mc MemoryContext) {
	if ptr == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			debugf("alloc.Free() swallowed host failure: %v\n", r)
		}
	}()
	al.mm.Free(al.hostcontext(mc), unaligned(ptr))
}

//---- local functions

func (al *Allocator) hostcontext(mc MemoryContext) api.Context {
	if mc == AggregateContext && al.aggctx != nil {
		return al.aggctx
	}
	return al.fnctx
}

func (al *Allocator) failure(policy Policy, cause interface{}) error {
	if policy.OnFailure == ReturnNil {
		debugf("alloc: absorbed host failure: %v\n", cause)
		return nil
	}
	errorf("alloc: host failure: %v\n", cause)
	return ErrorAllocation
}

// makeAligned return the first 16-byte boundary strictly after `raw`
// and remember `raw` in the word immediately before it, so that
// unaligned() can recover the host pointer for Free and Reallocate.
func makeAligned(raw unsafe.Pointer) unsafe.Pointer {
	if uintptr(raw)&uintptr(ptrsize-1) != 0 {
		fmsg := "host pointer %p is not %v byte aligned"
		panic(fmt.Errorf(fmsg, raw, ptrsize))
	}
	off := uintptr(Alignment) - (uintptr(raw) & uintptr(Alignment-1))
	aligned := unsafe.Add(raw, off)
	*(*unsafe.Pointer)(unsafe.Add(aligned, -ptrsize)) = raw
	return aligned
}

// unaligned recover the host pointer remembered by makeAligned.
func unaligned(ptr unsafe.Pointer) unsafe.Pointer {
	return *(*unsafe.Pointer)(unsafe.Add(ptr, -ptrsize))
}

func zerofill(ptr unsafe.Pointer, size uint64) {
	if size == 0 {
		return
	}
	block := unsafe.Slice((*byte)(ptr), size)
	for i := range block {
		block[i] = 0
	}
}
