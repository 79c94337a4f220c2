package circuits

import (
	"fmt"

	"github.com/tallyproto/vdaf/field"
	"github.com/tallyproto/vdaf/flp"
)

// Count is the validity circuit for a single 0/1 measurement: it checks
// Mul(x,x) - x == 0, which holds exactly when x is 0 or 1.
type Count struct{}

func (Count) Gadgets() []flp.Gadget   { return []flp.Gadget{flp.Mul{}} }
func (Count) GadgetCalls() []int      { return []int{1} }
func (Count) Prime() *field.Prime     { return field.Field64 }
func (Count) InputLen() int           { return 1 }
func (Count) OutputLen() int          { return 1 }
func (Count) JointRandLen() int       { return 0 }

// Encode maps a bool or an integer 0/1 measurement to its single-element
// input vector.
func (c Count) Encode(measurement any) ([]field.Elem, error) {
	var bit uint64
	switch m := measurement.(type) {
	case bool:
		if m {
			bit = 1
		}
	case int:
		if m != 0 && m != 1 {
			return nil, fmt.Errorf("circuits: count: %w: %d", ErrEncode, m)
		}
		bit = uint64(m)
	case uint64:
		if m != 0 && m != 1 {
			return nil, fmt.Errorf("circuits: count: %w: %d", ErrEncode, m)
		}
		bit = m
	default:
		return nil, fmt.Errorf("circuits: count: %w: unsupported measurement type %T", ErrEncode, measurement)
	}
	return []field.Elem{field.FromUint64(c.Prime(), bit)}, nil
}

func (Count) Truncate(input []field.Elem) ([]field.Elem, error) {
	if len(input) != 1 {
		return nil, fmt.Errorf("circuits: count: truncate: want 1 input element, got %d", len(input))
	}
	return []field.Elem{input[0]}, nil
}

func (Count) Eval(input []field.Elem, jointRand []field.Elem, numShares int, call flp.Caller) (field.Elem, error) {
	if len(input) != 1 {
		return field.Elem{}, fmt.Errorf("circuits: count: eval: want 1 input element, got %d", len(input))
	}
	x := input[0]
	xx, err := call(0, []field.Elem{x, x})
	if err != nil {
		return field.Elem{}, err
	}
	return xx.Sub(x), nil
}
