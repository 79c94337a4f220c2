package circuits

import (
	"fmt"

	"github.com/tallyproto/vdaf/field"
	"github.com/tallyproto/vdaf/flp"
)

// Sum is the validity circuit for a bounded unsigned integer measurement in
// [0, 2^Bits), encoded bit by bit and checked bit-by-bit for being in {0,1}.
type Sum struct {
	Bits int
}

// NewSum returns the Sum circuit for measurements in [0, 2^bits).
func NewSum(bits int) Sum {
	return Sum{Bits: bits}
}

func (s Sum) Gadgets() []flp.Gadget {
	return []flp.Gadget{flp.Range2{}}
}

func (s Sum) GadgetCalls() []int    { return []int{s.Bits} }
func (Sum) Prime() *field.Prime     { return field.Field128 }
func (s Sum) InputLen() int         { return s.Bits }
func (Sum) OutputLen() int          { return 1 }
func (Sum) JointRandLen() int       { return 1 }

// Encode maps an unsigned integer measurement to its little-endian bit
// vector. It fails with ErrEncode if the measurement does not fit in Bits
// bits.
func (s Sum) Encode(measurement any) ([]field.Elem, error) {
	m, err := toUint64(measurement)
	if err != nil {
		return nil, fmt.Errorf("circuits: sum: %w", err)
	}
	if s.Bits < 64 && m>>uint(s.Bits) != 0 {
		return nil, fmt.Errorf("circuits: sum: %w: %d does not fit in %d bits", ErrEncode, m, s.Bits)
	}
	out := make([]field.Elem, s.Bits)
	for l := 0; l < s.Bits; l++ {
		out[l] = field.FromUint64(s.Prime(), (m>>uint(l))&1)
	}
	return out, nil
}

// Truncate reconstructs Σ 2^l·b_l from the bit vector, share-compatible since
// it is an affine (in fact linear) function of the input.
func (s Sum) Truncate(input []field.Elem) ([]field.Elem, error) {
	if len(input) != s.Bits {
		return nil, fmt.Errorf("circuits: sum: truncate: want %d input elements, got %d", s.Bits, len(input))
	}
	prime := s.Prime()
	sum := field.Zero(prime)
	weight := field.One(prime)
	two := field.FromUint64(prime, 2)
	for l := 0; l < s.Bits; l++ {
		sum = sum.Add(input[l].Mul(weight))
		weight = weight.Mul(two)
	}
	return []field.Elem{sum}, nil
}

func (s Sum) Eval(input []field.Elem, jointRand []field.Elem, numShares int, call flp.Caller) (field.Elem, error) {
	if len(input) != s.Bits {
		return field.Elem{}, fmt.Errorf("circuits: sum: eval: want %d input elements, got %d", s.Bits, len(input))
	}
	if len(jointRand) != 1 {
		return field.Elem{}, fmt.Errorf("circuits: sum: eval: want 1 joint-randomness element, got %d", len(jointRand))
	}
	prime := s.Prime()
	r := jointRand[0]
	acc := field.Zero(prime)
	power := r
	for l := 0; l < s.Bits; l++ {
		v, err := call(0, []field.Elem{input[l]})
		if err != nil {
			return field.Elem{}, err
		}
		acc = acc.Add(power.Mul(v))
		power = power.Mul(r)
	}
	return acc, nil
}

func toUint64(measurement any) (uint64, error) {
	switch m := measurement.(type) {
	case int:
		if m < 0 {
			return 0, fmt.Errorf("%w: negative measurement %d", ErrEncode, m)
		}
		return uint64(m), nil
	case uint64:
		return m, nil
	case uint:
		return uint64(m), nil
	default:
		return 0, fmt.Errorf("%w: unsupported measurement type %T", ErrEncode, measurement)
	}
}
