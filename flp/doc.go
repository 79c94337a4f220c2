// Package flp implements FlpGeneric, the fully linear proof system the
// Prio3 VDAF verifies client inputs with, plus its two normative gadgets
// (Mul and Range2).
//
// A validity circuit (the Circuit interface) never calls a gadget directly;
// it calls back into a Caller supplied by the engine. During proving, the
// caller records each call's wire inputs and returns the gadget's real
// value. During verification, the caller still records wire inputs but
// returns a value read out of the proof instead of evaluating the gadget —
// the verifier never runs the non-affine part of the circuit itself. This
// callback indirection is what lets Count, Sum, and Histogram be written
// once, in circuits, and reused unchanged by both Prove and Query.
package flp
