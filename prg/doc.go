// Package prg implements PrgAes128, the VDAF core's seed-expanding
// pseudorandom generator: an info-keyed AES-128-CMAC derives a key, and
// AES-128-CTR over a zero IV turns that key into an arbitrarily long
// deterministic keystream.
//
// There is no third-party CMAC implementation anywhere in the example
// corpus this module was built from, so CMAC is hand-rolled here directly
// on top of crypto/aes, in the same low-level, manual-block-cipher style the
// teacher repo uses for its own AES-based blinding-vector derivation
// (rather than reaching for a higher-level MAC abstraction that does not
// exist in the ecosystem for this primitive).
package prg
