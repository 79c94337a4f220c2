package field

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// Prime describes one of the VDAF core's normative prime fields: its
// modulus, the fixed width of its element encoding, and the order of its
// FFT-friendly multiplicative subgroup.
//
// Prime values are never constructed outside this package; Field64 and
// Field128 are the only two that exist, which is why Prime is a concrete
// struct rather than an interface — the set of fields is small and closed.
type Prime struct {
	modulus     *big.Int
	encodedSize int
	genOrder    *big.Int
	generator   *big.Int
}

// newPrime builds a Prime from its modulus (decimal), encoded element width,
// subgroup order, and a generator expressed as base^exponent mod modulus.
func newPrime(modulusDecimal string, encodedSize int, genOrderDecimal string, genBase int64, genExponentDecimal string) *Prime {
	modulus, ok := new(big.Int).SetString(modulusDecimal, 10)
	if !ok {
		panic("field: invalid modulus literal")
	}
	genOrder, ok := new(big.Int).SetString(genOrderDecimal, 10)
	if !ok {
		panic("field: invalid subgroup order literal")
	}
	exponent, ok := new(big.Int).SetString(genExponentDecimal, 10)
	if !ok {
		panic("field: invalid generator exponent literal")
	}
	generator := new(big.Int).Exp(big.NewInt(genBase), exponent, modulus)
	return &Prime{
		modulus:     modulus,
		encodedSize: encodedSize,
		genOrder:    genOrder,
		generator:   generator,
	}
}

// EncodedSize is the exact byte width of every element encoding in this
// field.
func (p *Prime) EncodedSize() int { return p.encodedSize }

// GenOrder is the order of the multiplicative subgroup generated by Gen().
// It is always a power of two. The returned value must not be mutated by
// callers.
func (p *Prime) GenOrder() *big.Int { return p.genOrder }

// Modulus returns the field's prime modulus. The returned value must not be
// mutated by callers.
func (p *Prime) Modulus() *big.Int { return p.modulus }

// Gen returns the declared generator of the field's 2^k-order multiplicative
// subgroup.
func (p *Prime) Gen() Elem {
	return Elem{p: p, v: new(big.Int).Set(p.generator)}
}

// NthRoot returns gen()^(GenOrder/n), a primitive n-th root of unity, for n a
// power of two dividing GenOrder.
func (p *Prime) NthRoot(n uint64) (Elem, error) {
	nBig := new(big.Int).SetUint64(n)
	if n == 0 {
		return Elem{}, fmt.Errorf("field: %d does not divide subgroup order %s", n, p.genOrder)
	}
	exp, rem := new(big.Int).QuoRem(p.genOrder, nBig, new(big.Int))
	if rem.Sign() != 0 {
		return Elem{}, fmt.Errorf("field: %d does not divide subgroup order %s", n, p.genOrder)
	}
	return p.Gen().Pow(exp), nil
}

// Elem is an element of a Prime field, represented in [0, p).
type Elem struct {
	p *Prime
	v *big.Int
}

// Zero returns the additive identity of p.
func Zero(p *Prime) Elem {
	return Elem{p: p, v: big.NewInt(0)}
}

// One returns the multiplicative identity of p.
func One(p *Prime) Elem {
	return Elem{p: p, v: big.NewInt(1)}
}

// FromUint64 reduces v modulo p and returns the resulting element.
func FromUint64(p *Prime, v uint64) Elem {
	return Elem{p: p, v: new(big.Int).Mod(new(big.Int).SetUint64(v), p.modulus)}
}

// FromBigInt reduces v modulo p and returns the resulting element. v is not
// mutated.
func FromBigInt(p *Prime, v *big.Int) Elem {
	return Elem{p: p, v: new(big.Int).Mod(v, p.modulus)}
}

// Prime returns the field this element belongs to.
func (e Elem) Prime() *Prime { return e.p }

// IsZero reports whether e is the additive identity.
func (e Elem) IsZero() bool { return e.v.Sign() == 0 }

// AsUnsigned returns the element's canonical representative in [0, p), as
// required when mapping an aggregate result back to an unsigned integer.
func (e Elem) AsUnsigned() *big.Int {
	return new(big.Int).Set(e.v)
}

// Add returns e + o.
func (e Elem) Add(o Elem) Elem {
	r := new(big.Int).Add(e.v, o.v)
	r.Mod(r, e.p.modulus)
	return Elem{p: e.p, v: r}
}

// Sub returns e - o.
func (e Elem) Sub(o Elem) Elem {
	r := new(big.Int).Sub(e.v, o.v)
	r.Mod(r, e.p.modulus)
	return Elem{p: e.p, v: r}
}

// Neg returns -e.
func (e Elem) Neg() Elem {
	r := new(big.Int).Neg(e.v)
	r.Mod(r, e.p.modulus)
	return Elem{p: e.p, v: r}
}

// Mul returns e * o.
func (e Elem) Mul(o Elem) Elem {
	r := new(big.Int).Mul(e.v, o.v)
	r.Mod(r, e.p.modulus)
	return Elem{p: e.p, v: r}
}

// Inv returns the multiplicative inverse of e. It fails if e is zero.
func (e Elem) Inv() (Elem, error) {
	if e.IsZero() {
		return Elem{}, fmt.Errorf("field: cannot invert zero")
	}
	r := new(big.Int).ModInverse(e.v, e.p.modulus)
	if r == nil {
		return Elem{}, fmt.Errorf("field: no inverse exists")
	}
	return Elem{p: e.p, v: r}, nil
}

// Pow returns e^n. Pow neither mutates nor retains n.
func (e Elem) Pow(n *big.Int) Elem {
	r := new(big.Int).Exp(e.v, n, e.p.modulus)
	return Elem{p: e.p, v: r}
}

// PowUint64 returns e^n for a small, non-negative exponent.
func (e Elem) PowUint64(n uint64) Elem {
	return e.Pow(new(big.Int).SetUint64(n))
}

// Equal reports whether e and o represent the same element of the same
// field.
func (e Elem) Equal(o Elem) bool {
	return e.p == o.p && e.v.Cmp(o.v) == 0
}

// Random draws a uniformly random element of p using rnd as its entropy
// source.
func Random(p *Prime, rnd io.Reader) (Elem, error) {
	if rnd == nil {
		rnd = rand.Reader
	}
	v, err := rand.Int(rnd, p.modulus)
	if err != nil {
		return Elem{}, fmt.Errorf("field: drawing random element: %w", err)
	}
	return Elem{p: p, v: v}, nil
}

// NextPow2 returns the smallest power of two greater than or equal to n.
// n must be positive.
func NextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
