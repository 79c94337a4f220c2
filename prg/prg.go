package prg

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	"github.com/tallyproto/vdaf/field"
)

// SeedSize is the fixed size, in bytes, of a PrgAes128 seed.
const SeedSize = 16

// Seed is an opaque, fixed-size byte string used to key a Prg instance.
type Seed [SeedSize]byte

// NewRandomSeed draws a uniformly random seed from crypto/rand.
func NewRandomSeed() (Seed, error) {
	var s Seed
	if _, err := rand.Read(s[:]); err != nil {
		return Seed{}, fmt.Errorf("prg: drawing random seed: %w", err)
	}
	return s, nil
}

// Xor returns the byte-wise XOR of a and b.
func (a Seed) Xor(b Seed) Seed {
	var out Seed
	for i := range out {
		out[i] = a[i] ^ b[i]
	}
	return out
}

// Bytes returns a copy of the seed's raw bytes.
func (s Seed) Bytes() []byte {
	out := make([]byte, SeedSize)
	copy(out, s[:])
	return out
}

// Prg is a PrgAes128 instance: the deterministic keystream derived from a
// (seed, info) pair. Sequential Next calls consume a single continuous
// stream, so Next(a) followed by Next(b) returns the same bytes as a single
// Next(a+b) call.
type Prg struct {
	stream cipher.Stream
}

// New constructs a Prg from a seed and an application-chosen domain
// separation string.
func New(seed Seed, info []byte) (*Prg, error) {
	key, err := cmacAES128(seed[:], info)
	if err != nil {
		return nil, err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		// key is always exactly 16 bytes (the CMAC output size), so this
		// can only fail on a programmer error, not on caller input.
		panic(fmt.Sprintf("prg: aes.NewCipher over CMAC output: %v", err))
	}
	iv := make([]byte, aes.BlockSize)
	return &Prg{stream: cipher.NewCTR(block, iv)}, nil
}

// Next returns the next n bytes of the keystream.
func (p *Prg) Next(n int) []byte {
	dst := make([]byte, n)
	p.stream.XORKeyStream(dst, dst)
	return dst
}

// DeriveSeed deterministically derives a new seed from seed and info.
func DeriveSeed(seed Seed, info []byte) (Seed, error) {
	p, err := New(seed, info)
	if err != nil {
		return Seed{}, err
	}
	var out Seed
	copy(out[:], p.Next(SeedSize))
	return out, nil
}

// ExpandIntoVec deterministically expands (seed, info) into length field
// elements of prime, via rejection sampling over the PRG's keystream: each
// ENCODED_SIZE-byte chunk is decoded as a little-endian integer, masked to
// the bit length of the modulus, and accepted if it is strictly less than
// the modulus.
func ExpandIntoVec(prime *field.Prime, seed Seed, info []byte, length int) ([]field.Elem, error) {
	p, err := New(seed, info)
	if err != nil {
		return nil, err
	}

	size := prime.EncodedSize()
	mask := make([]byte, size)
	bitLen := prime.Modulus().BitLen()
	for i := 0; i < size; i++ {
		bitsInByte := bitLen - 8*i
		switch {
		case bitsInByte >= 8:
			mask[i] = 0xff
		case bitsInByte > 0:
			mask[i] = byte(1<<uint(bitsInByte) - 1)
		default:
			mask[i] = 0
		}
	}

	out := make([]field.Elem, 0, length)
	for len(out) < length {
		chunk := p.Next(size)
		for i := range chunk {
			chunk[i] &= mask[i]
		}
		elems, err := field.DecodeVec(prime, chunk)
		if err != nil {
			// masked-but-still-out-of-range: reject and redraw.
			continue
		}
		out = append(out, elems[0])
	}
	return out, nil
}
