package alloc

import "errors"

// ErrorSizeOverflow request size not representable within the host's
// addressable range.
var ErrorSizeOverflow = errors.New("dbal.sizeoverflow")

// ErrorAllocation host memory manager could not satisfy the request,
// surfaced only under the ReturnError failure policy.
var ErrorAllocation = errors.New("dbal.allocfailure")
