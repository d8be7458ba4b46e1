// Package alloc supplies policy-parameterized allocation on top of a
// host memory manager, with a limited scope:
//
//   - Types and Functions exported by this package are not thread safe.
//   - Allocation behaviour at a call site is fixed by an immutable
//     Policy triple {MemoryContext, ZeroPolicy, FailurePolicy}, never
//     by allocator state.
//   - Pointers returned by Allocate and Reallocate are always 16-byte
//     aligned, enough for any scalar or SIMD-sized payload. If the host
//     returns weaker alignment this package over-allocates and adjusts
//     the address, remembering the original for Free and Reallocate.
//   - Free never fails. It can be called from unwind and cleanup paths,
//     any host-side failure during release is swallowed.
//
// The package never retains a reference to a chunk it returns, the
// caller owns it until explicitly freed or handed onward.
package alloc
