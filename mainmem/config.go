package mainmem

import s "github.com/bnclabs/gosettings"

// Sizeinterval minblock and maxblock should be multiples of
// Sizeinterval.
const Sizeinterval = int64(16)

// MEMUtilization is the ratio between memory allocated to the
// application and useful memory obtained from the runtime, used while
// generating the slab ladder.
const MEMUtilization = float64(0.95)

// Maxcontextsize maximum capacity of a single memory context.
const Maxcontextsize = int64(1024 * 1024 * 1024 * 1024)

// Maxpools maximum number of slab sizes allowed in a context.
const Maxpools = int64(512)

// Maxchunks maximum number of chunks allowed in a pool.
const Maxchunks = int64(65536)

// Defaultsettings for mainmem contexts.
//
// "minblock" (int64, default: 32)
//      Smallest slab size served from pools.
//
// "maxblock" (int64, default: 1048576)
//      Largest slab size served from pools. Requests above it get a
//      dedicated buffer.
//
// "maxchunks" (int64, default: 2048)
//      Maximum number of chunks in a single pool.
func Defaultsettings() s.Settings {
	return s.Settings{
		"minblock":  int64(32),
		"maxblock":  int64(1024 * 1024),
		"maxchunks": int64(2048),
	}
}
