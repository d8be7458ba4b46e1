// Package dbal implement a policy-parameterized allocation layer
// between application code and a host memory manager, producing
// self-describing allocated objects, and necessary tools and
// libraries.
//
// api:
//
// Interface specification for the host memory manager primitive.
// Contexts are created and destroyed by the host runtime, the
// allocation layer only allocates within them.
//
// alloc:
//
// Policy allocator. An immutable {MemoryContext, ZeroPolicy,
// FailurePolicy} triple selected per call site fixes memory-context
// routing, zero-fill and failure behaviour. Pointers are 16-byte
// aligned, Free never fails.
//
// handle:
//
// Size calculation and typed handles over allocated chunks,
// N-dimensional arrays and length-prefixed byte strings with their
// shape metadata stored in-block.
//
// mainmem:
//
// Main-memory port of the host memory manager contract, slab-pooled
// capacity-bounded contexts.
//
// lib:
//
// Convenience types that can be used by other packages. Package shall
// not import packages other than golang's standard packages.
package dbal
