// Package mainmem supplies the main-memory port of the host memory
// manager contract, with a limited scope:
//
//   - Types and Functions exported by this package are not thread
//     safe. A Context must not be allocated into concurrently from
//     multiple threads, callers needing concurrency shall use distinct
//     contexts or external synchronization.
//   - Works best when allocation behaviour is known apriori.
//   - Memory is served from pools, where each pool manages several
//     chunks of the same slab size. Requests above the configured
//     maximum slab size get a dedicated buffer.
//   - Once a pool is created its memory is not given back to the
//     runtime on chunk free. Pools are dropped only when the entire
//     context is Released.
//   - There is no pointer re-write, chunks stay put for the lifetime
//     of their context.
//
// A Context is a bucket space of memory with a maximum capacity, empty
// to begin with, filling up as allocations are requested. Applications
// allocate chunks whose size falls between a pre-configured minimum
// and maximum slab size, supplied while instantiating the context.
package mainmem
