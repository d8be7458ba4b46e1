package alloc

// MemoryContext selects which of the allocator's bound host contexts
// an allocation shall be served from.
type MemoryContext byte

const (
	// FunctionContext scope of a single function invocation.
	FunctionContext MemoryContext = iota

	// AggregateContext scope of an aggregate computation, outlives
	// individual function invocations.
	AggregateContext
)

// ZeroPolicy whether a freshly allocated chunk must read as all-zero.
type ZeroPolicy byte

const (
	// DoZero every byte of the returned chunk is zero, either because
	// the host zero-fills or because this layer fills explicitly.
	DoZero ZeroPolicy = iota

	// NoZero chunk content is unspecified.
	NoZero
)

// FailurePolicy what an allocation failure turns into at the caller.
type FailurePolicy byte

const (
	// ReturnError allocation failure surfaces as ErrorAllocation.
	ReturnError FailurePolicy = iota

	// ReturnNil allocation failure yields a nil pointer with no
	// pending error state, host failure is fully absorbed. Callers
	// must check the returned pointer before use.
	ReturnNil
)

// Policy immutable triple fixing allocator behaviour for a call site.
// Selected when the call is made, never mutated afterwards.
type Policy struct {
	Context   MemoryContext
	Zero      ZeroPolicy
	OnFailure FailurePolicy
}

// DefaultPolicy function context, zero-filled, failure as error.
func DefaultPolicy() Policy {
	return Policy{Context: FunctionContext, Zero: DoZero, OnFailure: ReturnError}
}
