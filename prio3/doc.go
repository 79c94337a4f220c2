// Package prio3 implements the Prio3 VDAF: client-side sharding of a
// measurement into per-aggregator input shares, a one-round aggregator
// preparation state machine that verifies an FLP proof against additive
// shares, and collector-side combination of aggregate shares into a result.
//
// Prio3 is parameterized by an flp.Circuit (via flp.Flp) and by prg.Prg; it
// adds no cryptography of its own beyond seed bookkeeping and XOR/sum
// combination.
package prio3
