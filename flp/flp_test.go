package flp

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tallyproto/vdaf/field"
)

// bitCircuit checks that its single input is in {0, 1} using one call to
// Range2. It models the simplest possible validity circuit.
type bitCircuit struct{}

func (bitCircuit) Gadgets() []Gadget     { return []Gadget{Range2{}} }
func (bitCircuit) GadgetCalls() []int    { return []int{1} }
func (bitCircuit) Prime() *field.Prime   { return field.Field64 }
func (bitCircuit) InputLen() int         { return 1 }
func (bitCircuit) OutputLen() int        { return 1 }
func (bitCircuit) JointRandLen() int     { return 0 }

func (bitCircuit) Encode(measurement any) ([]field.Elem, error) {
	b := measurement.(uint64)
	return []field.Elem{field.FromUint64(field.Field64, b)}, nil
}

func (bitCircuit) Truncate(input []field.Elem) ([]field.Elem, error) {
	return input, nil
}

func (bitCircuit) Eval(input []field.Elem, jointRand []field.Elem, numShares int, call Caller) (field.Elem, error) {
	return call(0, []field.Elem{input[0]})
}

// productCircuit checks that input[2] == input[0]*input[1], calling Mul
// twice (once for real, once against a constant) so tests exercise a gadget
// with more than one call.
type productCircuit struct{}

func (productCircuit) Gadgets() []Gadget   { return []Gadget{Mul{}} }
func (productCircuit) GadgetCalls() []int  { return []int{2} }
func (productCircuit) Prime() *field.Prime { return field.Field64 }
func (productCircuit) InputLen() int       { return 3 }
func (productCircuit) OutputLen() int      { return 3 }
func (productCircuit) JointRandLen() int   { return 0 }

func (productCircuit) Encode(measurement any) ([]field.Elem, error) {
	vals := measurement.([3]uint64)
	out := make([]field.Elem, 3)
	for i, v := range vals {
		out[i] = field.FromUint64(field.Field64, v)
	}
	return out, nil
}

func (productCircuit) Truncate(input []field.Elem) ([]field.Elem, error) {
	return input, nil
}

func (productCircuit) Eval(input []field.Elem, jointRand []field.Elem, numShares int, call Caller) (field.Elem, error) {
	prime := field.Field64
	xy, err := call(0, []field.Elem{input[0], input[1]})
	if err != nil {
		return field.Elem{}, err
	}
	// A second, unrelated call to the same gadget so M_0 == 2.
	one := field.One(prime)
	oneSq, err := call(0, []field.Elem{one, one})
	if err != nil {
		return field.Elem{}, err
	}
	diff := xy.Sub(input[2])
	return diff.Add(oneSq.Sub(one)), nil
}

func allOnes(prime *field.Prime, n int) []field.Elem {
	out := make([]field.Elem, n)
	for i := range out {
		out[i] = field.One(prime)
	}
	return out
}

func TestBitCircuitCompleteness(t *testing.T) {
	f := New(bitCircuit{})
	prime := field.Field64

	for _, bit := range []uint64{0, 1} {
		inp, err := bitCircuit{}.Encode(bit)
		require.NoError(t, err)

		proveRand := allOnes(prime, f.ProveRandLen())
		proof, err := f.Prove(inp, proveRand, nil)
		require.NoError(t, err)
		require.Len(t, proof, f.ProofLen())

		queryRand := []field.Elem{field.FromUint64(prime, 7)}
		verifier, err := f.Query(inp, proof, queryRand, nil, 1)
		require.NoError(t, err)

		ok, err := f.Decide(verifier)
		require.NoError(t, err)
		require.True(t, ok, "bit=%d should be valid", bit)
	}
}

func TestBitCircuitSoundness(t *testing.T) {
	f := New(bitCircuit{})
	prime := field.Field64

	inp := []field.Elem{field.FromUint64(prime, 2)} // not a bit
	proveRand := allOnes(prime, f.ProveRandLen())
	proof, err := f.Prove(inp, proveRand, nil)
	require.NoError(t, err)

	queryRand := []field.Elem{field.FromUint64(prime, 7)}
	verifier, err := f.Query(inp, proof, queryRand, nil, 1)
	require.NoError(t, err)

	ok, err := f.Decide(verifier)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestProductCircuitCompleteness(t *testing.T) {
	f := New(productCircuit{})
	prime := field.Field64

	inp, err := productCircuit{}.Encode([3]uint64{3, 4, 12})
	require.NoError(t, err)

	proveRand := allOnes(prime, f.ProveRandLen())
	proof, err := f.Prove(inp, proveRand, nil)
	require.NoError(t, err)
	require.Len(t, proof, f.ProofLen())

	queryRand := []field.Elem{field.FromUint64(prime, 11)}
	verifier, err := f.Query(inp, proof, queryRand, nil, 1)
	require.NoError(t, err)
	require.Len(t, verifier, f.VerifierLen())

	ok, err := f.Decide(verifier)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestProductCircuitSoundness(t *testing.T) {
	f := New(productCircuit{})
	prime := field.Field64

	inp, err := productCircuit{}.Encode([3]uint64{3, 4, 13}) // 3*4 != 13
	require.NoError(t, err)

	proveRand := allOnes(prime, f.ProveRandLen())
	proof, err := f.Prove(inp, proveRand, nil)
	require.NoError(t, err)

	queryRand := []field.Elem{field.FromUint64(prime, 11)}
	verifier, err := f.Query(inp, proof, queryRand, nil, 1)
	require.NoError(t, err)

	ok, err := f.Decide(verifier)
	require.NoError(t, err)
	require.False(t, ok)
}

// TestLinearity checks that splitting an input and proof additively across
// shares, querying each share independently, and summing the verifier
// messages produces the same decision as querying the unshared input.
func TestLinearity(t *testing.T) {
	prime := field.Field64
	f := New(bitCircuit{})

	inp, err := bitCircuit{}.Encode(uint64(1))
	require.NoError(t, err)
	proveRand := allOnes(prime, f.ProveRandLen())
	proof, err := f.Prove(inp, proveRand, nil)
	require.NoError(t, err)

	share0In := make([]field.Elem, len(inp))
	share0Proof := make([]field.Elem, len(proof))
	for i := range share0In {
		r, err := field.Random(prime, nil)
		require.NoError(t, err)
		share0In[i] = r
	}
	for i := range share0Proof {
		r, err := field.Random(prime, nil)
		require.NoError(t, err)
		share0Proof[i] = r
	}
	share1In := make([]field.Elem, len(inp))
	share1Proof := make([]field.Elem, len(proof))
	for i := range inp {
		share1In[i] = inp[i].Sub(share0In[i])
	}
	for i := range proof {
		share1Proof[i] = proof[i].Sub(share0Proof[i])
	}

	queryRand := []field.Elem{field.FromUint64(prime, 7)}
	v0, err := f.Query(share0In, share0Proof, queryRand, nil, 2)
	require.NoError(t, err)
	v1, err := f.Query(share1In, share1Proof, queryRand, nil, 2)
	require.NoError(t, err)

	require.Len(t, v0, len(v1))
	combined := make([]field.Elem, len(v0))
	for i := range combined {
		combined[i] = v0[i].Add(v1[i])
	}

	ok, err := f.Decide(combined)
	require.NoError(t, err)
	require.True(t, ok)
}
