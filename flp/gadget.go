package flp

import (
	"fmt"

	"github.com/tallyproto/vdaf/field"
	"github.com/tallyproto/vdaf/poly"
)

// Gadget is a distinguished non-affine sub-circuit the FLP isolates so the
// engine need only prove its correct evaluation once per wire, rather than
// once per call site.
type Gadget interface {
	// Arity is the number of input wires the gadget takes.
	Arity() int
	// Degree is the gadget's polynomial degree.
	Degree() int
	// EvalField evaluates the gadget identity over field elements.
	EvalField(args []field.Elem) (field.Elem, error)
	// EvalPoly applies the same identity to wire polynomials.
	EvalPoly(args []poly.Poly) (poly.Poly, error)
}

// Mul is the gadget (x, y) -> x*y. Arity 2, degree 2.
type Mul struct{}

func (Mul) Arity() int  { return 2 }
func (Mul) Degree() int { return 2 }

func (Mul) EvalField(args []field.Elem) (field.Elem, error) {
	if len(args) != 2 {
		return field.Elem{}, fmt.Errorf("flp: Mul: want 2 args, got %d", len(args))
	}
	return args[0].Mul(args[1]), nil
}

func (Mul) EvalPoly(args []poly.Poly) (poly.Poly, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("flp: Mul: want 2 args, got %d", len(args))
	}
	return poly.Mul(args[0], args[1]), nil
}

// Range2 is the gadget x -> x^2 - x, which is zero exactly when x in {0, 1}.
// Arity 1, degree 2.
type Range2 struct{}

func (Range2) Arity() int  { return 1 }
func (Range2) Degree() int { return 2 }

func (Range2) EvalField(args []field.Elem) (field.Elem, error) {
	if len(args) != 1 {
		return field.Elem{}, fmt.Errorf("flp: Range2: want 1 arg, got %d", len(args))
	}
	x := args[0]
	return x.Mul(x).Sub(x), nil
}

func (Range2) EvalPoly(args []poly.Poly) (poly.Poly, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("flp: Range2: want 1 arg, got %d", len(args))
	}
	x := args[0]
	return poly.Sub(poly.Mul(x, x), x), nil
}
