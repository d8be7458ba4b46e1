// Package api specifies the contract between the allocation layer and
// the host memory manager. The host side owns context lifetimes; the
// allocation layer only allocates within a context it is handed.
package api

import "unsafe"

// Context identifies a host allocation scope. Its lifetime is managed
// entirely by the host runtime, the allocation layer never creates or
// destroys one. Context values are not safe for concurrent allocation,
// callers needing concurrency shall use distinct contexts.
type Context interface{}

// MemoryManager is the raw allocate/reallocate/free primitive supplied
// by the host. Pointers returned by Alloc and Realloc shall be at least
// 8-byte aligned.
type MemoryManager interface {
	// Alloc a chunk of `size` bytes within `ctx`. On failure return
	// a nil pointer with an error describing the failure, or panic;
	// the policy layer absorbs either signal.
	Alloc(ctx Context, size uint64) (unsafe.Pointer, error)

	// Realloc resize a chunk previously obtained from Alloc or
	// Realloc under the same `ctx`. The returned pointer may differ
	// from `ptr`; the overlapping prefix of the chunk's content is
	// preserved byte-for-byte. After a successful call `ptr` is
	// invalid and must not be freed.
	Realloc(ctx Context, ptr unsafe.Pointer, size uint64) (unsafe.Pointer, error)

	// Free a chunk previously obtained from Alloc or Realloc under
	// the same `ctx`. A nil pointer is a no-op. Free shall not fail.
	Free(ctx Context, ptr unsafe.Pointer)
}
