// Package circuits implements the three normative Prio3 validity circuits:
// Count, Sum, and Histogram. Each is a flp.Circuit built from Mul or Range2
// gadget calls only; none introduces a new gadget type.
package circuits
