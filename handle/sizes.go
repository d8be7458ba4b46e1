package handle

import "math"

import "github.com/garyfub/madlibport/alloc"

// header layout bytes. Array header holds element-count and
// dimension-count in the first 16 bytes, one extent word per
// dimension after that. Byte-string header is the length word alone.
const (
	arrayFixedOverhead = uint64(16)
	extentSize         = uint64(8)
	byteStringOverhead = uint64(8)
)

// ArrayOverhead header bytes stored alongside an array payload of the
// given rank.
func ArrayOverhead(rank int) uint64 {
	return arrayFixedOverhead + extentSize*uint64(rank)
}

// ByteStringOverhead header bytes stored alongside a byte string
// payload.
func ByteStringOverhead() uint64 {
	return byteStringOverhead
}

// ArraySize total bytes needed for an array of `elemsize`-byte
// elements with the given extents, elemsize*Π(extents)+overhead, and
// the element count. Pure computation, performs no allocation. Fails
// with ErrorInvalidShape for rank zero or a negative extent, with
// alloc.ErrorSizeOverflow when the element count or the total byte
// size is not representable. An extent of zero is a valid zero-length
// array, total size is the header overhead alone.
func ArraySize(elemsize uint64, extents []int) (size, count uint64, err error) {
	if len(extents) == 0 {
		return 0, 0, ErrorInvalidShape
	}
	count = 1
	for _, extent := range extents {
		if extent < 0 {
			return 0, 0, ErrorInvalidShape
		}
		if extent > 0 && count > math.MaxUint64/uint64(extent) {
			return 0, 0, alloc.ErrorSizeOverflow
		}
		count *= uint64(extent)
	}
	overhead := ArrayOverhead(len(extents))
	if elemsize > 0 && count > (math.MaxUint64-overhead)/elemsize {
		return 0, 0, alloc.ErrorSizeOverflow
	}
	return elemsize*count + overhead, count, nil
}

// ByteStringSize total bytes needed for a byte string of `payload`
// bytes. Fails with alloc.ErrorSizeOverflow when not representable.
func ByteStringSize(payload uint64) (uint64, error) {
	if payload > math.MaxUint64-byteStringOverhead {
		return 0, alloc.ErrorSizeOverflow
	}
	return payload + byteStringOverhead, nil
}
