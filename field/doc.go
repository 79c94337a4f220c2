// Package field implements the prime-field arithmetic the VDAF core is built
// on: modular addition, subtraction, multiplication, inversion, and the
// fixed-width little-endian encoding every other component (poly, prg, flp,
// circuits, prio3) relies on.
//
// Two fields are normative: Field64 (a 64-bit prime with a 2^32 multiplicative
// subgroup) and Field128 (a 128-bit prime with a 2^66 subgroup). Both are
// package-level *Prime values rather than types, since the set of fields this
// library supports is small and closed — there is no reason to make Prime an
// interface or to let callers construct arbitrary ones.
//
// Field elements are value types (Elem wraps a *big.Int and a reference to
// the Prime that defines its modulus); none of the arithmetic here is
// constant-time. That is a deliberate scope decision, not an oversight: the
// VDAF core treats constant-time field arithmetic as desirable, not
// contractual.
package field
