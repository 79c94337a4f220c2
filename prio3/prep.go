package prio3

import (
	"fmt"

	"github.com/tallyproto/vdaf/field"
	"github.com/tallyproto/vdaf/prg"
)

// PrepShare is the message an aggregator broadcasts after PrepInit: its
// share of the verifier vector, plus its joint-randomness check seed when
// the circuit uses joint randomness.
type PrepShare struct {
	Verifier        []field.Elem
	HasJointRand    bool
	KJointRandShare prg.Seed
}

// PrepMessage is the combination of every aggregator's PrepShare, produced
// by PrepSharesToPrep and broadcast back to every aggregator.
type PrepMessage struct {
	Verifier         []field.Elem
	HasJointRand     bool
	KJointRandCheck  prg.Seed
}

// PrepState is the state an aggregator keeps between PrepInit and PrepNext
// for one measurement.
type PrepState struct {
	outShare     []field.Elem
	hasJointRand bool
	kJointRand   prg.Seed
	done         bool
}

func (p *Prio3) resolveShare(share InputShare) (inputShare, proofShare []field.Elem, err error) {
	if share.AggregatorID == 0 {
		return share.Input, share.Proof, nil
	}
	prime := p.circuit.Prime()
	j := byte(share.AggregatorID)
	inputShare, err = prg.ExpandIntoVec(prime, share.InputSeed, infoFor([]byte{j}), p.circuit.InputLen())
	if err != nil {
		return nil, nil, fmt.Errorf("expanding input share: %w", err)
	}
	proofShare, err = prg.ExpandIntoVec(prime, share.ProofSeed, infoFor([]byte{j}), p.flp.ProofLen())
	if err != nil {
		return nil, nil, fmt.Errorf("expanding proof share: %w", err)
	}
	return inputShare, proofShare, nil
}

// PrepInit begins preparation of one measurement at one aggregator. It
// returns the aggregator's prep state and its outbound PrepShare.
func (p *Prio3) PrepInit(verifyParam VerifyParam, nonce []byte, share InputShare) (*PrepState, PrepShare, error) {
	if share.AggregatorID != verifyParam.AggregatorID {
		return nil, PrepShare{}, fmt.Errorf("prio3: prep_init: %w: share is for aggregator %d, verify param is for %d", ErrInvalidInput, share.AggregatorID, verifyParam.AggregatorID)
	}
	inputShare, proofShare, err := p.resolveShare(share)
	if err != nil {
		return nil, PrepShare{}, fmt.Errorf("prio3: prep_init: %w", err)
	}

	outShare, err := p.circuit.Truncate(inputShare)
	if err != nil {
		return nil, PrepShare{}, fmt.Errorf("prio3: prep_init: %w", err)
	}

	kQueryRand, err := prg.DeriveSeed(verifyParam.KQueryInit, concatInfo([]byte{255}, nonce))
	if err != nil {
		return nil, PrepShare{}, fmt.Errorf("prio3: prep_init: deriving query randomness seed: %w", err)
	}
	prime := p.circuit.Prime()
	queryRand, err := prg.ExpandIntoVec(prime, kQueryRand, dst, p.flp.QueryRandLen())
	if err != nil {
		return nil, PrepShare{}, fmt.Errorf("prio3: prep_init: expanding query randomness: %w", err)
	}

	var jointRand []field.Elem
	var kJointRandShare, kJointRand prg.Seed
	if share.HasJointRand {
		j := byte(share.AggregatorID)
		kJointRandShare, err = prg.DeriveSeed(share.Blind, concatInfo([]byte{j}, field.EncodeVec(inputShare)))
		if err != nil {
			return nil, PrepShare{}, fmt.Errorf("prio3: prep_init: deriving joint-rand share: %w", err)
		}
		kJointRand = kJointRandShare.Xor(share.Hint)
		jointRand, err = prg.ExpandIntoVec(prime, kJointRand, dst, p.circuit.JointRandLen())
		if err != nil {
			return nil, PrepShare{}, fmt.Errorf("prio3: prep_init: expanding joint randomness: %w", err)
		}
	}

	verifierShare, err := p.flp.Query(inputShare, proofShare, queryRand, jointRand, p.shares)
	if err != nil {
		return nil, PrepShare{}, fmt.Errorf("prio3: prep_init: %w", err)
	}

	state := &PrepState{
		outShare:     outShare,
		hasJointRand: share.HasJointRand,
		kJointRand:   kJointRand,
	}
	outbound := PrepShare{
		Verifier:        verifierShare,
		HasJointRand:    share.HasJointRand,
		KJointRandShare: kJointRandShare,
	}
	return state, outbound, nil
}

// PrepSharesToPrep combines every aggregator's PrepShare into the single
// PrepMessage broadcast back to all of them.
func (p *Prio3) PrepSharesToPrep(shares []PrepShare) (PrepMessage, error) {
	if len(shares) != p.shares {
		return PrepMessage{}, fmt.Errorf("prio3: prep_shares_to_prep: %w: got %d prep shares, want %d", ErrInvalidInput, len(shares), p.shares)
	}
	verifier := shares[0].Verifier
	for _, s := range shares[1:] {
		var err error
		verifier, err = field.VectorAdd(verifier, s.Verifier)
		if err != nil {
			return PrepMessage{}, fmt.Errorf("prio3: prep_shares_to_prep: %w", err)
		}
	}
	msg := PrepMessage{Verifier: verifier, HasJointRand: shares[0].HasJointRand}
	if msg.HasJointRand {
		for _, s := range shares {
			msg.KJointRandCheck = msg.KJointRandCheck.Xor(s.KJointRandShare)
		}
	}
	return msg, nil
}

// PrepNext consumes the combined PrepMessage and either returns the
// aggregator's output share, or fails with ErrVerify.
func (p *Prio3) PrepNext(state *PrepState, msg PrepMessage) ([]field.Elem, error) {
	if state == nil || state.done {
		return nil, fmt.Errorf("prio3: prep_next: %w", ErrInvalidState)
	}
	state.done = true

	if state.hasJointRand != msg.HasJointRand {
		return nil, fmt.Errorf("prio3: prep_next: %w: joint-randomness usage mismatch", ErrInvalidInput)
	}
	if state.hasJointRand && state.kJointRand != msg.KJointRandCheck {
		return nil, fmt.Errorf("prio3: prep_next: %w: joint-randomness check mismatch", ErrVerify)
	}

	ok, err := p.flp.Decide(msg.Verifier)
	if err != nil {
		return nil, fmt.Errorf("prio3: prep_next: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("prio3: prep_next: %w: flp decide rejected the proof", ErrVerify)
	}
	return state.outShare, nil
}
