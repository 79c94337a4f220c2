package poly

import (
	"fmt"

	"github.com/tallyproto/vdaf/field"
)

// Poly is an ordered, low-degree-first coefficient vector. The empty Poly
// represents the zero polynomial.
type Poly []field.Elem

// Strip removes trailing zero coefficients, so the empty polynomial is the
// unique representation of 0.
func Strip(p Poly) Poly {
	n := len(p)
	for n > 0 && p[n-1].IsZero() {
		n--
	}
	return p[:n]
}

// Mul returns the schoolbook product of a and b, stripped of trailing zeros.
// len(Mul(a,b)) == len(a)+len(b)-1 whenever both are non-empty and already
// stripped; otherwise the result is shorter.
func Mul(a, b Poly) Poly {
	if len(a) == 0 || len(b) == 0 {
		return Poly{}
	}
	p := a[0].Prime()
	out := make(Poly, len(a)+len(b)-1)
	for i := range out {
		out[i] = field.Zero(p)
	}
	for i, ai := range a {
		for j, bj := range b {
			out[i+j] = out[i+j].Add(ai.Mul(bj))
		}
	}
	return Strip(out)
}

// Add returns a + b, padding the shorter operand with zeros.
func Add(a, b Poly) Poly {
	return combine(a, b, field.Elem.Add)
}

// Sub returns a - b, padding the shorter operand with zeros.
func Sub(a, b Poly) Poly {
	return combine(a, b, field.Elem.Sub)
}

func combine(a, b Poly, op func(field.Elem, field.Elem) field.Elem) Poly {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	if n == 0 {
		return Poly{}
	}
	var p *field.Prime
	if len(a) > 0 {
		p = a[0].Prime()
	} else {
		p = b[0].Prime()
	}
	out := make(Poly, n)
	for i := 0; i < n; i++ {
		av, bv := field.Zero(p), field.Zero(p)
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		out[i] = op(av, bv)
	}
	return Strip(out)
}

// Scale returns c*p.
func Scale(p Poly, c field.Elem) Poly {
	out := make(Poly, len(p))
	for i, coeff := range p {
		out[i] = coeff.Mul(c)
	}
	return Strip(out)
}

// Eval evaluates p at x via Horner's method from the high coefficient down.
// Eval of the empty polynomial at any point is the additive identity of prime.
func Eval(p Poly, x field.Elem, prime *field.Prime) field.Elem {
	acc := field.Zero(prime)
	for i := len(p) - 1; i >= 0; i-- {
		acc = acc.Mul(x).Add(p[i])
	}
	return acc
}

// Interp returns the unique polynomial of degree < len(xs) that evaluates to
// ys[i] at xs[i] for every i. xs must be pairwise distinct.
func Interp(xs, ys []field.Elem) (Poly, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("poly: interp: len(xs)=%d != len(ys)=%d", len(xs), len(ys))
	}
	if len(xs) == 0 {
		return Poly{}, nil
	}
	prime := xs[0].Prime()
	result := make(Poly, len(xs))
	for i := range result {
		result[i] = field.Zero(prime)
	}

	for i := range xs {
		numer := Poly{field.One(prime)}
		denom := field.One(prime)
		for j := range xs {
			if j == i {
				continue
			}
			numer = Mul(numer, Poly{xs[j].Neg(), field.One(prime)})
			diff := xs[i].Sub(xs[j])
			if diff.IsZero() {
				return nil, fmt.Errorf("poly: interp: xs[%d] and xs[%d] are not distinct", i, j)
			}
			denom = denom.Mul(diff)
		}
		denomInv, err := denom.Inv()
		if err != nil {
			return nil, fmt.Errorf("poly: interp: %w", err)
		}
		scale := ys[i].Mul(denomInv)
		for k, c := range numer {
			result[k] = result[k].Add(c.Mul(scale))
		}
	}
	return Strip(result), nil
}

// InterpPow2 returns the unique polynomial of degree < size that evaluates
// to ys[k] at omega^k for k in [0, size). len(ys) must equal size.
func InterpPow2(ys []field.Elem, omega field.Elem, size int) (Poly, error) {
	if len(ys) != size {
		return nil, fmt.Errorf("poly: interp_pow2: len(ys)=%d != size=%d", len(ys), size)
	}
	xs := make([]field.Elem, size)
	point := field.One(omega.Prime())
	for k := 0; k < size; k++ {
		xs[k] = point
		point = point.Mul(omega)
	}
	return Interp(xs, ys)
}
