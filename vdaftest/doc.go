// Package vdaftest provides a deterministic randomness source and fixed
// nonce/seed fixtures shared by the core's test suites. It holds no
// round-trip or end-to-end checks itself; those live in each package's tests.
package vdaftest
