package dbal

import "testing"

import s "github.com/bnclabs/gosettings"

import "github.com/garyfub/madlibport/alloc"
import "github.com/garyfub/madlibport/handle"

func testsettings() s.Settings {
	setts := Defaultsettings()
	setts["capacity.function"] = int64(10 * 1024 * 1024)
	setts["capacity.aggregate"] = int64(10 * 1024 * 1024)
	return setts
}

func TestDefaultsettings(t *testing.T) {
	setts := Defaultsettings()
	if x := setts.Int64("capacity.function"); x <= 0 {
		t.Errorf("unexpected capacity.function %v", x)
	}
	if x := setts.Int64("capacity.aggregate"); x <= 0 {
		t.Errorf("unexpected capacity.aggregate %v", x)
	}
	if x := setts.Int64("mainmem.minblock"); x != 32 {
		t.Errorf("expected %v, got %v", 32, x)
	}
	if x := setts.Int64("mainmem.maxblock"); x != 1024*1024 {
		t.Errorf("expected %v, got %v", 1024*1024, x)
	}
}

func TestStack(t *testing.T) {
	st := NewStack(testsettings())
	defer st.Release()

	h, err := handle.AllocateArray[int32](st.Builder, 3, 4)
	if err != nil {
		t.Fatal(err)
	}
	if x := h.Rank(); x != 2 {
		t.Errorf("expected %v, got %v", 2, x)
	}
	for i := uint64(0); i < h.Size(); i++ {
		if x := h.At(i); x != 0 {
			t.Errorf("element %v is %v, expected zero", i, x)
		}
	}
	handle.FreeArray(st.Builder, h.ArrayHandle)
	if x := st.Fnctx.Allocated(); x != 0 {
		t.Errorf("expected %v, got %v", 0, x)
	}
}

func TestStackAggregate(t *testing.T) {
	st := NewStack(testsettings())
	defer st.Release()

	policy := alloc.DefaultPolicy()
	policy.Context = alloc.AggregateContext
	h, err := handle.AllocateArrayWith[float64](st.Builder, policy, 8)
	if err != nil {
		t.Fatal(err)
	}
	if x := st.Aggctx.Allocated(); x == 0 {
		t.Errorf("expected aggregate context accounting")
	}
	if x := st.Fnctx.Allocated(); x != 0 {
		t.Errorf("expected %v, got %v", 0, x)
	}
	handle.FreeArrayIn(st.Builder, alloc.AggregateContext, h.ArrayHandle)
	if x := st.Aggctx.Allocated(); x != 0 {
		t.Errorf("expected %v, got %v", 0, x)
	}
}
