package prio3

import "errors"

var (
	// ErrVerify is returned when a prep message fails to verify: the FLP
	// decision was false, or the joint-randomness check seed mismatched.
	ErrVerify = errors.New("prio3: verify failed")
	// ErrInvalidState is returned when a prep state is stepped out of
	// order (e.g. PrepNext called twice, or before PrepInit).
	ErrInvalidState = errors.New("prio3: prep state machine stepped out of order")
	// ErrInvalidInput is returned on a SHARES mismatch or a vector-length
	// mismatch in a derived operation.
	ErrInvalidInput = errors.New("prio3: invalid input")
	// ErrDecode is returned when a wire-format byte string is malformed.
	ErrDecode = errors.New("prio3: malformed encoding")
)
