package mainmem

import "testing"
import "unsafe"

func TestMempool(t *testing.T) {
	pool := newmempool(64, 8)
	if pool.capacity != 512 {
		t.Errorf("expected %v, got %v", 512, pool.capacity)
	}
	ptrs := make([]unsafe.Pointer, 0, 8)
	for i := 0; i < 8; i++ {
		ptr, ok := pool.allocchunk()
		if !ok {
			t.Fatalf("chunk %v not served", i)
		}
		if (uintptr(ptr) & (chunkalignment - 1)) != 0 {
			t.Errorf("chunk %v not %v byte aligned", i, chunkalignment)
		}
		ptrs = append(ptrs, ptr)
	}
	if _, ok := pool.allocchunk(); ok {
		t.Errorf("expected exhausted pool")
	}
	if pool.allocated != 512 {
		t.Errorf("expected %v, got %v", 512, pool.allocated)
	}

	pool.free(ptrs[3])
	if pool.allocated != 448 {
		t.Errorf("expected %v, got %v", 448, pool.allocated)
	}
	ptr, ok := pool.allocchunk()
	if !ok || ptr != ptrs[3] {
		t.Errorf("expected recycled chunk %p, got %p", ptrs[3], ptr)
	}

	// panic cases
	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("expected panic")
			}
		}()
		pool.free(nil)
	}()
	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("expected panic")
			}
		}()
		pool.free(unsafe.Add(ptrs[0], 1))
	}()

	for _, ptr := range ptrs {
		pool.free(ptr)
	}
	if pool.allocated != 0 {
		t.Errorf("expected %v, got %v", 0, pool.allocated)
	}
	pool.release()
	if pool.base != nil || pool.freelist != nil {
		t.Errorf("expected released pool")
	}
}
