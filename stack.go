package dbal

import s "github.com/bnclabs/gosettings"

import "github.com/garyfub/madlibport/alloc"
import "github.com/garyfub/madlibport/handle"
import "github.com/garyfub/madlibport/mainmem"

// Stack wires a complete allocation stack together: a mainmem manager,
// a function context, an aggregate context, the policy allocator and
// the handle builder. There is no hidden process-wide instance;
// applications wanting a convenience default create one Stack at
// startup and Release it at shutdown.
type Stack struct {
	Manager mainmem.Manager
	Fnctx   *mainmem.Context
	Aggctx  *mainmem.Context
	Alloc   *alloc.Allocator
	Builder *handle.Builder
}

// NewStack create an allocation stack. A nil setts falls back to
// Defaultsettings.
func NewStack(setts s.Settings) *Stack {
	if setts == nil {
		setts = Defaultsettings()
	}
	msetts := setts.Section("mainmem.").Trim("mainmem.")
	mgr := mainmem.NewManager()
	fnctx := mainmem.NewContext(
		"function", setts.Int64("capacity.function"), msetts)
	aggctx := mainmem.NewContext(
		"aggregate", setts.Int64("capacity.aggregate"), msetts)
	al := alloc.New(mgr, fnctx, aggctx)
	return &Stack{
		Manager: mgr,
		Fnctx:   fnctx,
		Aggctx:  aggctx,
		Alloc:   al,
		Builder: handle.NewBuilder(al),
	}
}

// Release both contexts. Outstanding handles become invalid.
func (st *Stack) Release() {
	st.Fnctx.Release()
	st.Aggctx.Release()
}
