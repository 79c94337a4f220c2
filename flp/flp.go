package flp

import (
	"fmt"

	"github.com/tallyproto/vdaf/field"
	"github.com/tallyproto/vdaf/poly"
)

// Flp wraps a Circuit with the proof/query/decide machinery of FlpGeneric.
type Flp struct {
	circuit Circuit
	gadgets []Gadget
	calls   []int
}

// New builds an Flp engine for circuit.
func New(circuit Circuit) *Flp {
	return &Flp{
		circuit: circuit,
		gadgets: circuit.Gadgets(),
		calls:   circuit.GadgetCalls(),
	}
}

// gadgetPow2 returns NextPow2(M_i + 1), the size of gadget i's interpolation
// grid: one point for its blinding seed plus one per call.
func (f *Flp) gadgetPow2(i int) int {
	return field.NextPow2(f.calls[i] + 1)
}

// ProveRandLen is the number of field elements Prove consumes as proving
// randomness: one blinding seed per wire of every gadget.
func (f *Flp) ProveRandLen() int {
	n := 0
	for _, g := range f.gadgets {
		n += g.Arity()
	}
	return n
}

// QueryRandLen is the number of field elements Query consumes as query
// randomness: one evaluation point per gadget.
func (f *Flp) QueryRandLen() int {
	return len(f.gadgets)
}

// ProofLen is the length, in field elements, of the proof Prove produces.
func (f *Flp) ProofLen() int {
	n := 0
	for i, g := range f.gadgets {
		p := f.gadgetPow2(i)
		n += g.Arity() + g.Degree()*(p-1) + 1
	}
	return n
}

// VerifierLen is the length, in field elements, of the verifier message
// Query produces.
func (f *Flp) VerifierLen() int {
	n := 1
	for _, g := range f.gadgets {
		n += g.Arity() + 1
	}
	return n
}

// wireTable accumulates, for one gadget, the arguments of every call made to
// it during one circuit evaluation.
type wireTable struct {
	arity int
	rows  [][]field.Elem // rows[k] is the arity-length argument vector of call k
}

// Prove evaluates the circuit on inp and jointRand and produces a proof of
// its validity, consuming proveRand as blinding randomness.
func (f *Flp) Prove(inp []field.Elem, proveRand, jointRand []field.Elem) ([]field.Elem, error) {
	if len(proveRand) != f.ProveRandLen() {
		return nil, fmt.Errorf("flp: prove: want %d elements of prove randomness, got %d", f.ProveRandLen(), len(proveRand))
	}

	wires := make([]*wireTable, len(f.gadgets))
	for i, g := range f.gadgets {
		wires[i] = &wireTable{arity: g.Arity()}
	}

	caller := func(gadgetIndex int, args []field.Elem) (field.Elem, error) {
		if gadgetIndex < 0 || gadgetIndex >= len(f.gadgets) {
			return field.Elem{}, fmt.Errorf("flp: prove: gadget index %d out of range", gadgetIndex)
		}
		w := wires[gadgetIndex]
		row := make([]field.Elem, len(args))
		copy(row, args)
		w.rows = append(w.rows, row)
		return f.gadgets[gadgetIndex].EvalField(args)
	}

	if _, err := f.circuit.Eval(inp, jointRand, 1, caller); err != nil {
		return nil, fmt.Errorf("flp: prove: evaluating circuit: %w", err)
	}

	prime := f.circuit.Prime()
	proof := make([]field.Elem, 0, f.ProofLen())
	seedOffset := 0
	for i, g := range f.gadgets {
		p := f.gadgetPow2(i)
		seeds := proveRand[seedOffset : seedOffset+g.Arity()]
		seedOffset += g.Arity()

		omega, err := prime.NthRoot(uint64(p))
		if err != nil {
			return nil, fmt.Errorf("flp: prove: gadget %d: %w", i, err)
		}

		wirePolys := make([]poly.Poly, g.Arity())
		for j := 0; j < g.Arity(); j++ {
			ys := make([]field.Elem, p)
			ys[0] = seeds[j]
			for k := 0; k < len(wires[i].rows); k++ {
				ys[k+1] = wires[i].rows[k][j]
			}
			for k := len(wires[i].rows) + 1; k < p; k++ {
				ys[k] = field.Zero(prime)
			}
			wp, err := poly.InterpPow2(ys, omega, p)
			if err != nil {
				return nil, fmt.Errorf("flp: prove: gadget %d wire %d: %w", i, j, err)
			}
			wirePolys[j] = wp
		}

		gadgetPoly, err := g.EvalPoly(wirePolys)
		if err != nil {
			return nil, fmt.Errorf("flp: prove: gadget %d: evaluating gadget polynomial: %w", i, err)
		}

		proof = append(proof, seeds...)
		chunkLen := g.Degree()*(p-1) + 1
		for k := 0; k < chunkLen; k++ {
			if k < len(gadgetPoly) {
				proof = append(proof, gadgetPoly[k])
			} else {
				proof = append(proof, field.Zero(prime))
			}
		}
	}
	return proof, nil
}

// parsedGadgetProof is one gadget's chunk of a parsed proof.
type parsedGadgetProof struct {
	seeds      []field.Elem
	gadgetPoly poly.Poly
}

func (f *Flp) parseProof(proof []field.Elem) ([]parsedGadgetProof, error) {
	if len(proof) != f.ProofLen() {
		return nil, fmt.Errorf("flp: query: proof has %d elements, want %d", len(proof), f.ProofLen())
	}
	out := make([]parsedGadgetProof, len(f.gadgets))
	off := 0
	for i, g := range f.gadgets {
		p := f.gadgetPow2(i)
		seeds := proof[off : off+g.Arity()]
		off += g.Arity()
		chunkLen := g.Degree()*(p-1) + 1
		coeffs := make(poly.Poly, chunkLen)
		copy(coeffs, proof[off:off+chunkLen])
		off += chunkLen
		out[i] = parsedGadgetProof{seeds: seeds, gadgetPoly: poly.Strip(coeffs)}
	}
	return out, nil
}

// Query re-evaluates the circuit on inp and jointRand, substituting every
// gadget call with a lookup into proof, and produces a verifier message.
// numShares is the total number of shares the measurement was split into.
func (f *Flp) Query(inp []field.Elem, proof []field.Elem, queryRand, jointRand []field.Elem, numShares int) ([]field.Elem, error) {
	if len(queryRand) != f.QueryRandLen() {
		return nil, fmt.Errorf("flp: query: want %d elements of query randomness, got %d", f.QueryRandLen(), len(queryRand))
	}
	chunks, err := f.parseProof(proof)
	if err != nil {
		return nil, err
	}

	prime := f.circuit.Prime()
	wires := make([]*wireTable, len(f.gadgets))
	for i, g := range f.gadgets {
		wires[i] = &wireTable{arity: g.Arity()}
	}

	caller := func(gadgetIndex int, args []field.Elem) (field.Elem, error) {
		if gadgetIndex < 0 || gadgetIndex >= len(f.gadgets) {
			return field.Elem{}, fmt.Errorf("flp: query: gadget index %d out of range", gadgetIndex)
		}
		w := wires[gadgetIndex]
		row := make([]field.Elem, len(args))
		copy(row, args)
		k := len(w.rows)
		w.rows = append(w.rows, row)

		p := f.gadgetPow2(gadgetIndex)
		omega, err := prime.NthRoot(uint64(p))
		if err != nil {
			return field.Elem{}, fmt.Errorf("flp: query: gadget %d: %w", gadgetIndex, err)
		}
		point := omega.PowUint64(uint64(k + 1))
		return poly.Eval(chunks[gadgetIndex].gadgetPoly, point, prime), nil
	}

	v, err := f.circuit.Eval(inp, jointRand, numShares, caller)
	if err != nil {
		return nil, fmt.Errorf("flp: query: evaluating circuit: %w", err)
	}

	verifier := make([]field.Elem, 0, f.VerifierLen())
	verifier = append(verifier, v)

	for i, g := range f.gadgets {
		p := f.gadgetPow2(i)
		t := queryRand[i]
		if t.PowUint64(uint64(p)).Equal(field.One(prime)) {
			return nil, ErrAbort
		}

		omega, err := prime.NthRoot(uint64(p))
		if err != nil {
			return nil, fmt.Errorf("flp: query: gadget %d: %w", i, err)
		}

		for j := 0; j < g.Arity(); j++ {
			ys := make([]field.Elem, p)
			ys[0] = chunks[i].seeds[j]
			for k := 0; k < len(wires[i].rows); k++ {
				ys[k+1] = wires[i].rows[k][j]
			}
			for k := len(wires[i].rows) + 1; k < p; k++ {
				ys[k] = field.Zero(prime)
			}
			wp, err := poly.InterpPow2(ys, omega, p)
			if err != nil {
				return nil, fmt.Errorf("flp: query: gadget %d wire %d: %w", i, j, err)
			}
			verifier = append(verifier, poly.Eval(wp, t, prime))
		}
		verifier = append(verifier, poly.Eval(chunks[i].gadgetPoly, t, prime))
	}
	return verifier, nil
}

// Decide reports whether verifier, as produced by Query (and combined across
// shares), attests to a valid input.
func (f *Flp) Decide(verifier []field.Elem) (bool, error) {
	if len(verifier) != f.VerifierLen() {
		return false, fmt.Errorf("flp: decide: verifier has %d elements, want %d", len(verifier), f.VerifierLen())
	}
	v := verifier[0]
	off := 1
	for _, g := range f.gadgets {
		x := verifier[off : off+g.Arity()]
		y := verifier[off+g.Arity()]
		off += g.Arity() + 1

		got, err := g.EvalField(x)
		if err != nil {
			return false, fmt.Errorf("flp: decide: %w", err)
		}
		if !got.Equal(y) {
			return false, nil
		}
	}
	return v.IsZero(), nil
}
