package prio3

import (
	"fmt"
	"io"

	"github.com/tallyproto/vdaf/field"
	"github.com/tallyproto/vdaf/flp"
	"github.com/tallyproto/vdaf/prg"
)

// dst is the domain-separation tag Prio3 uses as (or as the prefix of) the
// info string of every ExpandIntoVec call. The DeriveSeed calls for the
// query-randomness seed and the joint-randomness hints use concatInfo instead
// and carry no tag.
var dst = []byte("vdaf-00 prio3")

// Prio3 is a VDAF instance parameterized by a validity circuit and a number
// of shares. Aggregation parameters are not used by Prio3.
type Prio3 struct {
	circuit flp.Circuit
	flp     *flp.Flp
	shares  int
}

// New builds a Prio3 instance over circuit, splitting every measurement into
// shares input/proof shares. shares must be in [2, 255).
func New(circuit flp.Circuit, shares int) (*Prio3, error) {
	if shares < 2 || shares >= 255 {
		return nil, fmt.Errorf("prio3: %w: shares %d outside [2, 255)", ErrInvalidInput, shares)
	}
	return &Prio3{circuit: circuit, flp: flp.New(circuit), shares: shares}, nil
}

// Shares returns the number of aggregators this instance splits measurements
// across.
func (p *Prio3) Shares() int { return p.shares }

// Circuit returns the validity circuit this instance verifies against.
func (p *Prio3) Circuit() flp.Circuit { return p.circuit }

// VerifyParam is the per-aggregator verification parameter Setup produces:
// the aggregator's index and the query-initialization seed shared across all
// aggregators. It must be kept secret from clients and the collector.
type VerifyParam struct {
	AggregatorID int
	KQueryInit   prg.Seed
}

// Setup draws a fresh query-initialization seed from rnd (crypto/rand if
// nil) and returns the verification parameter for every aggregator.
func (p *Prio3) Setup(rnd io.Reader) ([]VerifyParam, error) {
	kQueryInit, err := randomSeed(rnd)
	if err != nil {
		return nil, fmt.Errorf("prio3: setup: %w", err)
	}
	params := make([]VerifyParam, p.shares)
	for j := range params {
		params[j] = VerifyParam{AggregatorID: j, KQueryInit: kQueryInit}
	}
	return params, nil
}

func randomSeed(rnd io.Reader) (prg.Seed, error) {
	if rnd == nil {
		return prg.NewRandomSeed()
	}
	var s prg.Seed
	if _, err := io.ReadFull(rnd, s[:]); err != nil {
		return prg.Seed{}, fmt.Errorf("drawing seed: %w", err)
	}
	return s, nil
}

func infoFor(tail ...[]byte) []byte {
	info := make([]byte, len(dst))
	copy(info, dst)
	for _, t := range tail {
		info = append(info, t...)
	}
	return info
}

// concatInfo builds a derive_seed info string with no domain-separation
// prefix, for the query-randomness and joint-randomness derivations that the
// wire format pins to exactly byte(j)||tail with no DST.
func concatInfo(tail ...[]byte) []byte {
	var info []byte
	for _, t := range tail {
		info = append(info, t...)
	}
	return info
}

// InputShare is one aggregator's share of a client's sharded measurement.
// For the leader (AggregatorID 0) Input and Proof hold the share vectors
// directly; for helpers, InputSeed and ProofSeed expand into them. Blind and
// Hint are populated iff the circuit's JointRandLen is nonzero.
type InputShare struct {
	AggregatorID int

	Input []field.Elem
	Proof []field.Elem

	InputSeed prg.Seed
	ProofSeed prg.Seed

	HasJointRand bool
	Blind        prg.Seed
	Hint         prg.Seed
}

// Shard splits measurement into p.Shares() input shares. rnd supplies
// randomness (crypto/rand if nil).
func (p *Prio3) Shard(rnd io.Reader, measurement any) ([]InputShare, error) {
	inp, err := p.circuit.Encode(measurement)
	if err != nil {
		return nil, fmt.Errorf("prio3: shard: %w", err)
	}
	prime := p.circuit.Prime()
	inputLen := p.circuit.InputLen()
	proofLen := p.flp.ProofLen()

	kShare := make([]prg.Seed, p.shares)
	shareInp := make([][]field.Elem, p.shares)
	leaderInp := append([]field.Elem{}, inp...)
	for j := 1; j < p.shares; j++ {
		k, err := randomSeed(rnd)
		if err != nil {
			return nil, fmt.Errorf("prio3: shard: %w", err)
		}
		kShare[j] = k
		helperInp, err := prg.ExpandIntoVec(prime, k, infoFor([]byte{byte(j)}), inputLen)
		if err != nil {
			return nil, fmt.Errorf("prio3: shard: expanding input share %d: %w", j, err)
		}
		shareInp[j] = helperInp
		leaderInp, err = field.VectorSub(leaderInp, helperInp)
		if err != nil {
			return nil, fmt.Errorf("prio3: shard: %w", err)
		}
	}
	shareInp[0] = leaderInp

	jointRandLen := p.circuit.JointRandLen()
	hasJointRand := jointRandLen > 0
	kBlind := make([]prg.Seed, p.shares)
	storedHint := make([]prg.Seed, p.shares)
	var jointRand []field.Elem
	if hasJointRand {
		hint := make([]prg.Seed, p.shares)
		var kJointRand prg.Seed
		for j := 0; j < p.shares; j++ {
			kb, err := randomSeed(rnd)
			if err != nil {
				return nil, fmt.Errorf("prio3: shard: %w", err)
			}
			kBlind[j] = kb
			h, err := prg.DeriveSeed(kb, concatInfo([]byte{byte(j)}, field.EncodeVec(shareInp[j])))
			if err != nil {
				return nil, fmt.Errorf("prio3: shard: deriving joint-rand hint %d: %w", j, err)
			}
			hint[j] = h
			kJointRand = kJointRand.Xor(h)
		}
		for j := 0; j < p.shares; j++ {
			storedHint[j] = hint[j].Xor(kJointRand)
		}
		jointRand, err = prg.ExpandIntoVec(prime, kJointRand, dst, jointRandLen)
		if err != nil {
			return nil, fmt.Errorf("prio3: shard: expanding joint randomness: %w", err)
		}
	}

	proveSeed, err := randomSeed(rnd)
	if err != nil {
		return nil, fmt.Errorf("prio3: shard: %w", err)
	}
	proveRand, err := prg.ExpandIntoVec(prime, proveSeed, dst, p.flp.ProveRandLen())
	if err != nil {
		return nil, fmt.Errorf("prio3: shard: expanding prove randomness: %w", err)
	}
	proof, err := p.flp.Prove(inp, proveRand, jointRand)
	if err != nil {
		return nil, fmt.Errorf("prio3: shard: %w", err)
	}

	kProof := make([]prg.Seed, p.shares)
	shareProof := make([][]field.Elem, p.shares)
	leaderProof := append([]field.Elem{}, proof...)
	for j := 1; j < p.shares; j++ {
		k, err := randomSeed(rnd)
		if err != nil {
			return nil, fmt.Errorf("prio3: shard: %w", err)
		}
		kProof[j] = k
		helperProof, err := prg.ExpandIntoVec(prime, k, infoFor([]byte{byte(j)}), proofLen)
		if err != nil {
			return nil, fmt.Errorf("prio3: shard: expanding proof share %d: %w", j, err)
		}
		shareProof[j] = helperProof
		leaderProof, err = field.VectorSub(leaderProof, helperProof)
		if err != nil {
			return nil, fmt.Errorf("prio3: shard: %w", err)
		}
	}
	shareProof[0] = leaderProof

	shares := make([]InputShare, p.shares)
	shares[0] = InputShare{
		AggregatorID: 0,
		Input:        shareInp[0],
		Proof:        shareProof[0],
		HasJointRand: hasJointRand,
		Blind:        kBlind[0],
		Hint:         storedHint[0],
	}
	for j := 1; j < p.shares; j++ {
		shares[j] = InputShare{
			AggregatorID: j,
			InputSeed:    kShare[j],
			ProofSeed:    kProof[j],
			HasJointRand: hasJointRand,
			Blind:        kBlind[j],
			Hint:         storedHint[j],
		}
	}
	return shares, nil
}
