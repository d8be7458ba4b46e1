package handle

import "fmt"
import "unsafe"

// ByteStringHandle read-only view over an allocated length-prefixed
// byte string. Same ownership and lifecycle contract as ArrayHandle.
type ByteStringHandle struct {
	block unsafe.Pointer
}

// ByteStringFromBlock attach a read-only handle over a transmitted
// byte-string chunk. The handle does not own the chunk.
func ByteStringFromBlock(block unsafe.Pointer) ByteStringHandle {
	return ByteStringHandle{block: block}
}

// IsNil true for a handle with no backing chunk.
func (h ByteStringHandle) IsNil() bool {
	return h.block == nil
}

// Length of the payload in bytes.
func (h ByteStringHandle) Length() uint64 {
	return *(*uint64)(h.block)
}

// Data pointer to the payload, immediately past the length word.
func (h ByteStringHandle) Data() unsafe.Pointer {
	return unsafe.Add(h.block, byteStringOverhead)
}

// At the ith payload byte.
func (h ByteStringHandle) At(i uint64) byte {
	if i >= h.Length() {
		panic(fmt.Errorf("handle.At(): index %v of %v bytes", i, h.Length()))
	}
	return *(*byte)(unsafe.Add(h.Data(), i))
}

// Block base pointer of the backing chunk, for interop and release.
func (h ByteStringHandle) Block() unsafe.Pointer {
	return h.block
}

// MutableByteStringHandle byte-string handle that allows writing
// through the data pointer.
type MutableByteStringHandle struct {
	ByteStringHandle
}

// Bytes payload as a writable slice.
func (h MutableByteStringHandle) Bytes() []byte {
	n := h.Length()
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(h.Data()), n)
}
