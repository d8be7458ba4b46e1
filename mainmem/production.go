//go:build !debug

package mainmem

import "unsafe"

// chunks are handed out as-is, the policy layer owns zero-fill.
func initblock(block unsafe.Pointer, size int64) {
}
