package mainmem

import "math"
import "unsafe"

import "github.com/garyfub/madlibport/api"

// Manager implements api.MemoryManager over mainmem contexts. The
// manager itself is stateless, all accounting lives in the Context.
type Manager struct{}

// NewManager create a manager.
func NewManager() Manager {
	return Manager{}
}

// Alloc implement api.MemoryManager{} interface.
func (m Manager) Alloc(ctx api.Context, size uint64) (unsafe.Pointer, error) {
	if size > math.MaxInt64 {
		return nil, ErrorOutofMemory
	}
	return cntxt(ctx).alloc(int64(size))
}

// Realloc implement api.MemoryManager{} interface.
func (m Manager) Realloc(ctx api.Context, ptr unsafe.Pointer, size uint64) (unsafe.Pointer, error) {
	if size > math.MaxInt64 {
		return nil, ErrorOutofMemory
	}
	return cntxt(ctx).realloc(ptr, int64(size))
}

// Free implement api.MemoryManager{} interface.
func (m Manager) Free(ctx api.Context, ptr unsafe.Pointer) {
	cntxt(ctx).free(ptr)
}

func cntxt(ctx api.Context) *Context {
	ctxt, ok := ctx.(*Context)
	if !ok {
		panicerr("mainmem: foreign context %T", ctx)
	}
	return ctxt
}
