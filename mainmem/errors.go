package mainmem

import "errors"

// ErrorOutofMemory context capacity exhausted.
var ErrorOutofMemory = errors.New("mainmem.outofmemory")
