package mainmem

import "testing"
import "unsafe"

func TestNewContext(t *testing.T) {
	ctxt := NewContext("test", 10*1024*1024, Defaultsettings())
	if x, y := len(ctxt.Slabs()), len(ctxt.mpools); x < 2 || y != 0 {
		t.Errorf("unexpected slabs %v, pools %v", x, y)
	}
	if ctxt.Allocated() != 0 {
		t.Errorf("expected %v, got %v", 0, ctxt.Allocated())
	}
	if ctxt.Available() != 10*1024*1024 {
		t.Errorf("expected %v, got %v", 10*1024*1024, ctxt.Available())
	}
	if ctxt.Name() != "test" {
		t.Errorf("expected %q, got %q", "test", ctxt.Name())
	}
	ctxt.Release()

	// panic cases
	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("expected panic")
			}
		}()
		NewContext("test", Maxcontextsize+1, Defaultsettings())
	}()
	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("expected panic")
			}
		}()
		setts := Defaultsettings()
		setts["maxchunks"] = Maxchunks + 1
		NewContext("test", 1024, setts)
	}()
}

func TestContextAlloc(t *testing.T) {
	ctxt := NewContext("test", 10*1024*1024, Defaultsettings())
	defer ctxt.Release()

	ptrs := make([]unsafe.Pointer, 0)
	for _, n := range []int64{1, 16, 32, 100, 1000, 4096, 100000} {
		ptr, err := ctxt.alloc(n)
		if err != nil {
			t.Fatalf("alloc(%v): %v", n, err)
		}
		if x := ctxt.chunklen(ptr); x < n {
			t.Errorf("alloc(%v): chunklen %v", n, x)
		}
		ptrs = append(ptrs, ptr)
	}
	if ctxt.Allocated() == 0 {
		t.Errorf("expected allocation accounting")
	}
	if _, heap, _, _ := ctxt.Info(); heap < ctxt.Allocated() {
		t.Errorf("heap %v below allocated %v", heap, ctxt.Allocated())
	}
	ss, zs := ctxt.Utilization()
	if len(ss) == 0 || len(ss) != len(zs) {
		t.Errorf("unexpected utilization %v %v", ss, zs)
	}
	for _, ptr := range ptrs {
		ctxt.free(ptr)
	}
	if x := ctxt.Allocated(); x != 0 {
		t.Errorf("expected %v, got %v", 0, x)
	}
}

func TestContextAllocHuge(t *testing.T) {
	ctxt := NewContext("test", 100*1024*1024, Defaultsettings())
	defer ctxt.Release()

	// above maxblock, served from a dedicated buffer.
	n := int64(16 * 1024 * 1024)
	ptr, err := ctxt.alloc(n)
	if err != nil {
		t.Fatal(err)
	}
	if x := ctxt.chunklen(ptr); x != n {
		t.Errorf("expected %v, got %v", n, x)
	}
	if x := ctxt.Allocated(); x != n {
		t.Errorf("expected %v, got %v", n, x)
	}
	ctxt.free(ptr)
	if x := ctxt.Allocated(); x != 0 {
		t.Errorf("expected %v, got %v", 0, x)
	}
}

func TestContextOutofMemory(t *testing.T) {
	ctxt := NewContext("test", 8192, Defaultsettings())
	defer ctxt.Release()

	// exhaust the capacity with slab allocations.
	var err error
	for i := 0; i < 10000; i++ {
		if _, err = ctxt.alloc(4096); err != nil {
			break
		}
	}
	if err != ErrorOutofMemory {
		t.Errorf("expected %v, got %v", ErrorOutofMemory, err)
	}
	// huge requests beyond capacity fail as well.
	if _, err := ctxt.alloc(64 * 1024 * 1024); err != ErrorOutofMemory {
		t.Errorf("expected %v, got %v", ErrorOutofMemory, err)
	}
}

func TestContextRealloc(t *testing.T) {
	ctxt := NewContext("test", 10*1024*1024, Defaultsettings())
	defer ctxt.Release()

	ptr, err := ctxt.alloc(100)
	if err != nil {
		t.Fatal(err)
	}
	block := unsafe.Slice((*byte)(ptr), 100)
	for i := range block {
		block[i] = byte(i)
	}
	// fits in the current slab, pointer unchanged.
	nptr, err := ctxt.realloc(ptr, 100)
	if err != nil || nptr != ptr {
		t.Errorf("expected same pointer, got (%p, %v)", nptr, err)
	}
	// grow beyond the slab, content preserved.
	nptr, err = ctxt.realloc(ptr, 100000)
	if err != nil {
		t.Fatal(err)
	}
	nblock := unsafe.Slice((*byte)(nptr), 100)
	for i := range nblock {
		if nblock[i] != byte(i) {
			t.Fatalf("byte %v not preserved across realloc", i)
		}
	}
	// old chunk was freed, only the new one is accounted.
	if x := ctxt.chunklen(nptr); x < 100000 {
		t.Errorf("chunklen %v below %v", x, 100000)
	}
	ctxt.free(nptr)
	if x := ctxt.Allocated(); x != 0 {
		t.Errorf("expected %v, got %v", 0, x)
	}
	// realloc with nil pointer behaves as alloc.
	nptr, err = ctxt.realloc(nil, 64)
	if err != nil || nptr == nil {
		t.Errorf("expected allocation, got (%p, %v)", nptr, err)
	}
}

func TestContextReleased(t *testing.T) {
	ctxt := NewContext("test", 1024*1024, Defaultsettings())
	ptr, err := ctxt.alloc(64)
	if err != nil {
		t.Fatal(err)
	}
	ctxt.Release()
	ctxt.Release() // second release is a no-op

	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("expected panic")
			}
		}()
		ctxt.alloc(64)
	}()
	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("expected panic")
			}
		}()
		ctxt.free(ptr)
	}()
}

func TestContextForeignFree(t *testing.T) {
	ctxt := NewContext("test", 1024*1024, Defaultsettings())
	defer ctxt.Release()

	var x int64
	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("expected panic")
			}
		}()
		ctxt.free(unsafe.Pointer(&x))
	}()
}
