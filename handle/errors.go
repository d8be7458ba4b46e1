package handle

import "errors"

// ErrorInvalidShape zero-rank array or negative extent. Indicates a
// logic error upstream, surfaced before any host allocation is made.
var ErrorInvalidShape = errors.New("dbal.invalidshape")
