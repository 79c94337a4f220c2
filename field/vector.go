package field

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrDecode is returned when a byte string cannot be decoded into a vector
// of field elements: its length is not a multiple of the field's encoded
// element size, or a decoded integer is not a valid field element.
var ErrDecode = errors.New("field: malformed encoding")

// Zeros returns a vector of n zero elements of p.
func Zeros(p *Prime, n int) []Elem {
	v := make([]Elem, n)
	for i := range v {
		v[i] = Zero(p)
	}
	return v
}

// VectorAdd returns the componentwise sum of a and b. It fails if the
// operands have different lengths.
func VectorAdd(a, b []Elem) ([]Elem, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("field: vector length mismatch: %d != %d", len(a), len(b))
	}
	r := make([]Elem, len(a))
	for i := range a {
		r[i] = a[i].Add(b[i])
	}
	return r, nil
}

// VectorSub returns the componentwise difference a - b. It fails if the
// operands have different lengths.
func VectorSub(a, b []Elem) ([]Elem, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("field: vector length mismatch: %d != %d", len(a), len(b))
	}
	r := make([]Elem, len(a))
	for i := range a {
		r[i] = a[i].Sub(b[i])
	}
	return r, nil
}

// InnerProduct returns sum_i a[i]*b[i]. It fails if the operands have
// different lengths.
func InnerProduct(a, b []Elem) (Elem, error) {
	if len(a) != len(b) {
		return Elem{}, fmt.Errorf("field: vector length mismatch: %d != %d", len(a), len(b))
	}
	if len(a) == 0 {
		return Elem{}, fmt.Errorf("field: inner product of empty vectors has no field")
	}
	acc := Zero(a[0].p)
	for i := range a {
		acc = acc.Add(a[i].Mul(b[i]))
	}
	return acc, nil
}

// EncodeVec concatenates the little-endian, fixed-width encoding of every
// element of v.
func EncodeVec(v []Elem) []byte {
	if len(v) == 0 {
		return []byte{}
	}
	size := v[0].p.encodedSize
	out := make([]byte, 0, size*len(v))
	for _, e := range v {
		out = append(out, encodeElem(e, size)...)
	}
	return out
}

func encodeElem(e Elem, size int) []byte {
	buf := make([]byte, size)
	bs := e.v.Bytes() // big-endian, no leading zeros
	for i := 0; i < len(bs) && i < size; i++ {
		buf[i] = bs[len(bs)-1-i]
	}
	return buf
}

// DecodeVec splits data into ENCODED_SIZE-byte chunks and decodes each as a
// little-endian field element. It fails with ErrDecode if len(data) is not a
// multiple of p's encoded size, or if a chunk decodes to an integer outside
// [0, p).
func DecodeVec(p *Prime, data []byte) ([]Elem, error) {
	size := p.encodedSize
	if len(data)%size != 0 {
		return nil, fmt.Errorf("%w: length %d is not a multiple of %d", ErrDecode, len(data), size)
	}
	n := len(data) / size
	out := make([]Elem, n)
	for i := 0; i < n; i++ {
		chunk := data[i*size : (i+1)*size]
		v := leBytesToBigInt(chunk)
		if v.Cmp(p.modulus) >= 0 {
			return nil, fmt.Errorf("%w: element %d out of range", ErrDecode, i)
		}
		out[i] = Elem{p: p, v: v}
	}
	return out, nil
}

// leBytesToBigInt interprets b as a little-endian unsigned integer.
func leBytesToBigInt(b []byte) *big.Int {
	rev := make([]byte, len(b))
	for i, c := range b {
		rev[len(b)-1-i] = c
	}
	return new(big.Int).SetBytes(rev)
}
