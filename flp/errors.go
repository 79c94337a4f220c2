package flp

import "errors"

// ErrAbort is returned by Query when the query randomness for a gadget
// collides with one of that gadget's wire-polynomial interpolation points,
// a condition a verifier must treat as an abort rather than a proof
// failure.
var ErrAbort = errors.New("flp: query randomness collides with an interpolation point")
