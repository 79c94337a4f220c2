package vdaftest

import "github.com/tallyproto/vdaf/prg"

// NonceOf returns a SeedSize-byte nonce of repeated byte b.
func NonceOf(b byte) []byte {
	n := make([]byte, prg.SeedSize)
	for i := range n {
		n[i] = b
	}
	return n
}

// SeedOf returns a prg.Seed of repeated byte b.
func SeedOf(b byte) prg.Seed {
	var s prg.Seed
	for i := range s {
		s[i] = b
	}
	return s
}
