package handle

import "fmt"
import "unsafe"

import "github.com/garyfub/madlibport/alloc"

// Builder constructs typed handles over chunks served by a policy
// allocator. Builder adds no failure modes of its own, failures
// surface exactly as the allocator's Allocate does for the chosen
// policy; shape and overflow errors are detected before any host call.
type Builder struct {
	al *alloc.Allocator
}

// NewBuilder create a builder over `al`.
func NewBuilder(al *alloc.Allocator) *Builder {
	if al == nil {
		panic(fmt.Errorf("handle.NewBuilder(): nil allocator"))
	}
	return &Builder{al: al}
}

// AllocateArray an N-dimensional array of T under the default policy
// {FunctionContext, DoZero, ReturnError}, one extent per dimension.
func AllocateArray[T Element](bl *Builder, extents ...int) (MutableArrayHandle[T], error) {
	return AllocateArrayWith[T](bl, alloc.DefaultPolicy(), extents...)
}

// AllocateArrayWith an N-dimensional array of T under an explicit
// policy. Arrays are always presented zero-initialized, downstream
// consumers rely on it, so the policy's ZeroPolicy is ignored and
// DoZero applies. Under ReturnNil a failed allocation yields the nil
// handle with a nil error.
func AllocateArrayWith[T Element](bl *Builder, policy alloc.Policy, extents ...int) (MutableArrayHandle[T], error) {
	var nilh MutableArrayHandle[T]
	var zero T
	size, count, err := ArraySize(uint64(unsafe.Sizeof(zero)), extents)
	if err != nil {
		return nilh, err
	}
	policy.Zero = alloc.DoZero
	block, err := bl.al.Allocate(size, policy)
	if err != nil {
		return nilh, err
	} else if block == nil {
		return nilh, nil
	}
	writeArrayHeader(block, count, extents)
	return MutableArrayHandle[T]{ArrayHandle[T]{block: block}}, nil
}

// AllocateByteString a byte string of `size` payload bytes under the
// default policy.
func (bl *Builder) AllocateByteString(size uint64) (MutableByteStringHandle, error) {
	return bl.AllocateByteStringWith(alloc.DefaultPolicy(), size)
}

// AllocateByteStringWith a byte string under an explicit policy. As
// with arrays the payload is always zero-initialized.
func (bl *Builder) AllocateByteStringWith(policy alloc.Policy, size uint64) (MutableByteStringHandle, error) {
	var nilh MutableByteStringHandle
	total, err := ByteStringSize(size)
	if err != nil {
		return nilh, err
	}
	policy.Zero = alloc.DoZero
	block, err := bl.al.Allocate(total, policy)
	if err != nil {
		return nilh, err
	} else if block == nil {
		return nilh, nil
	}
	*(*uint64)(block) = size
	return MutableByteStringHandle{ByteStringHandle{block: block}}, nil
}

// ReallocateByteString resize a byte string to `newsize` payload
// bytes and update its header. The overlapping payload prefix is
// preserved; bytes past it are unspecified. The input handle is
// invalid after a successful call and must not be freed.
func (bl *Builder) ReallocateByteString(h MutableByteStringHandle, newsize uint64, policy alloc.Policy) (MutableByteStringHandle, error) {
	var nilh MutableByteStringHandle
	total, err := ByteStringSize(newsize)
	if err != nil {
		return nilh, err
	}
	block, err := bl.al.Reallocate(h.block, total, policy)
	if err != nil {
		return nilh, err
	} else if block == nil {
		return nilh, nil
	}
	*(*uint64)(block) = newsize
	return MutableByteStringHandle{ByteStringHandle{block: block}}, nil
}

// FreeArray release an array allocated in the function context. Nil
// handles are accepted, release never fails.
func FreeArray[T Element](bl *Builder, h ArrayHandle[T]) {
	FreeArrayIn(bl, alloc.FunctionContext, h)
}

// FreeArrayIn release an array allocated in the given memory context.
func FreeArrayIn[T Element](bl *Builder, mc alloc.MemoryContext, h ArrayHandle[T]) {
	bl.al.Free(h.block, mc)
}

// FreeByteString release a byte string allocated in the function
// context. Nil handles are accepted, release never fails.
func (bl *Builder) FreeByteString(h ByteStringHandle) {
	bl.FreeByteStringIn(alloc.FunctionContext, h)
}

// FreeByteStringIn release a byte string allocated in the given
// memory context.
func (bl *Builder) FreeByteStringIn(mc alloc.MemoryContext, h ByteStringHandle) {
	bl.al.Free(h.block, mc)
}
