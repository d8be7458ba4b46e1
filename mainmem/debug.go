//go:build debug

package mainmem

import "unsafe"

var poisonblk = make([]byte, 1024)

func init() {
	for i := 0; i < len(poisonblk); i++ {
		poisonblk[i] = 0xff
	}
}

// poison-fill chunks on allocation to expose callers that skip
// zero-fill and read uninitialized memory.
func initblock(block unsafe.Pointer, size int64) {
	dst := unsafe.Slice((*byte)(block), size)
	for len(dst) > 0 {
		n := copy(dst, poisonblk)
		dst = dst[n:]
	}
}
