package handle

import "fmt"
import "unsafe"

// Element types storable in an array handle.
type Element interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~bool
}

// ArrayHandle read-only view over an allocated N-dimensional array. A
// zero value (or the result of a failed ReturnNil allocation) is the
// nil handle, check IsNil before use. Extents are fixed for the
// handle's lifetime, there is no in-place reshape.
type ArrayHandle[T Element] struct {
	block unsafe.Pointer
}

// ArrayFromBlock attach a read-only handle over a transmitted array
// chunk laid out per this package's binary format. The handle does not
// own the chunk.
func ArrayFromBlock[T Element](block unsafe.Pointer) ArrayHandle[T] {
	return ArrayHandle[T]{block: block}
}

// IsNil true for a handle with no backing chunk.
func (h ArrayHandle[T]) IsNil() bool {
	return h.block == nil
}

// Size total number of elements, product of all extents.
func (h ArrayHandle[T]) Size() uint64 {
	return *(*uint64)(h.block)
}

// Rank number of dimensions.
func (h ArrayHandle[T]) Rank() int {
	return int(*(*uint32)(unsafe.Add(h.block, 8)))
}

// Extent of the nth dimension.
func (h ArrayHandle[T]) Extent(n int) int {
	if n < 0 || n >= h.Rank() {
		panic(fmt.Errorf("handle.Extent(): dimension %v of rank %v array", n, h.Rank()))
	}
	off := arrayFixedOverhead + extentSize*uint64(n)
	return int(*(*uint64)(unsafe.Add(h.block, off)))
}

// Extents of all dimensions.
func (h ArrayHandle[T]) Extents() []int {
	extents := make([]int, h.Rank())
	for i := range extents {
		off := arrayFixedOverhead + extentSize*uint64(i)
		extents[i] = int(*(*uint64)(unsafe.Add(h.block, off)))
	}
	return extents
}

// Data pointer to the payload, immediately past the header inside the
// same chunk.
func (h ArrayHandle[T]) Data() unsafe.Pointer {
	return unsafe.Add(h.block, ArrayOverhead(h.Rank()))
}

// At the ith element in row-major order.
func (h ArrayHandle[T]) At(i uint64) T {
	if i >= h.Size() {
		panic(fmt.Errorf("handle.At(): index %v of %v elements", i, h.Size()))
	}
	var zero T
	return *(*T)(unsafe.Add(h.Data(), uintptr(i)*unsafe.Sizeof(zero)))
}

// Block base pointer of the backing chunk, for interop and release.
func (h ArrayHandle[T]) Block() unsafe.Pointer {
	return h.block
}

// MutableArrayHandle array handle that allows writing through the
// data pointer.
type MutableArrayHandle[T Element] struct {
	ArrayHandle[T]
}

// Values payload as a writable slice in row-major order.
func (h MutableArrayHandle[T]) Values() []T {
	n := h.Size()
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*T)(h.Data()), n)
}

func writeArrayHeader(block unsafe.Pointer, count uint64, extents []int) {
	*(*uint64)(block) = count
	*(*uint32)(unsafe.Add(block, 8)) = uint32(len(extents))
	*(*uint32)(unsafe.Add(block, 12)) = 0
	for i, extent := range extents {
		off := arrayFixedOverhead + extentSize*uint64(i)
		*(*uint64)(unsafe.Add(block, off)) = uint64(extent)
	}
}
