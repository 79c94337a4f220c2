package circuits

import "errors"

// ErrEncode is returned by Encode when a measurement lies outside the
// circuit's domain.
var ErrEncode = errors.New("circuits: measurement out of range")
