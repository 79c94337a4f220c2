package circuits

import (
	"fmt"

	"github.com/tallyproto/vdaf/field"
	"github.com/tallyproto/vdaf/flp"
)

// Histogram is the validity circuit for a one-hot bucket-membership vector:
// exactly one entry is 1, the rest 0, indicating which bucket boundary the
// measurement falls into. The final, unbounded bucket catches every
// measurement above the largest boundary.
type Histogram struct {
	Buckets []uint64 // ascending boundaries; len(Buckets)+1 is the vector length
}

// NewHistogram returns the Histogram circuit for the given ascending bucket
// boundaries.
func NewHistogram(buckets []uint64) Histogram {
	b := make([]uint64, len(buckets))
	copy(b, buckets)
	return Histogram{Buckets: b}
}

func (h Histogram) numBuckets() int { return len(h.Buckets) + 1 }

func (h Histogram) Gadgets() []flp.Gadget {
	return []flp.Gadget{flp.Range2{}}
}

func (h Histogram) GadgetCalls() []int  { return []int{h.numBuckets()} }
func (Histogram) Prime() *field.Prime   { return field.Field128 }
func (h Histogram) InputLen() int       { return h.numBuckets() }
func (h Histogram) OutputLen() int      { return h.numBuckets() }
func (Histogram) JointRandLen() int     { return 2 }

// Encode maps an unsigned integer measurement to a one-hot vector: index i
// is 1 for the first i with m <= Buckets[i] (so m exceeds every earlier
// boundary), and the final, unbounded bucket is 1 if m exceeds every
// boundary.
func (h Histogram) Encode(measurement any) ([]field.Elem, error) {
	m, err := toUint64(measurement)
	if err != nil {
		return nil, fmt.Errorf("circuits: histogram: %w", err)
	}
	prime := h.Prime()
	out := make([]field.Elem, h.numBuckets())
	bucket := len(h.Buckets) // default: the unbounded top bucket
	for i, boundary := range h.Buckets {
		if m <= boundary {
			bucket = i
			break
		}
	}
	for i := range out {
		if i == bucket {
			out[i] = field.One(prime)
		} else {
			out[i] = field.Zero(prime)
		}
	}
	return out, nil
}

func (h Histogram) Truncate(input []field.Elem) ([]field.Elem, error) {
	if len(input) != h.numBuckets() {
		return nil, fmt.Errorf("circuits: histogram: truncate: want %d input elements, got %d", h.numBuckets(), len(input))
	}
	out := make([]field.Elem, len(input))
	copy(out, input)
	return out, nil
}

func (h Histogram) Eval(input []field.Elem, jointRand []field.Elem, numShares int, call flp.Caller) (field.Elem, error) {
	n := h.numBuckets()
	if len(input) != n {
		return field.Elem{}, fmt.Errorf("circuits: histogram: eval: want %d input elements, got %d", n, len(input))
	}
	if len(jointRand) != 2 {
		return field.Elem{}, fmt.Errorf("circuits: histogram: eval: want 2 joint-randomness elements, got %d", len(jointRand))
	}
	prime := h.Prime()
	r1, r2 := jointRand[0], jointRand[1]

	rangeCheck := field.Zero(prime)
	sum := field.Zero(prime)
	power := r1
	for i := 0; i < n; i++ {
		v, err := call(0, []field.Elem{input[i]})
		if err != nil {
			return field.Elem{}, err
		}
		rangeCheck = rangeCheck.Add(power.Mul(v))
		power = power.Mul(r1)
		sum = sum.Add(input[i])
	}

	numSharesInv, err := field.FromUint64(prime, uint64(numShares)).Inv()
	if err != nil {
		return field.Elem{}, fmt.Errorf("circuits: histogram: eval: %w", err)
	}
	sumCheck := sum.Sub(numSharesInv)

	return r2.Mul(rangeCheck).Add(r2.Mul(r2).Mul(sumCheck)), nil
}
