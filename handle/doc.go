// Package handle builds self-describing allocated objects on top of
// the alloc package: N-dimensional arrays and length-prefixed byte
// strings. Shape metadata lives in a header inside the same chunk as
// the payload, the data pointer points immediately past the header.
// Exactly one chunk backs exactly one handle; a handle never outlives
// its backing host context.
//
// Binary layouts, for downstream interop:
//
//	array       {elemcount uint64, dimcount uint32, pad [4]byte,
//	             extents [dimcount]uint64} ++ payload
//	byte-string {length uint64} ++ payload
package handle
