package prio3

import (
	"fmt"

	"github.com/tallyproto/vdaf/field"
	"github.com/tallyproto/vdaf/prg"
)

// EncodeInputShare serializes share per the wire layout: leader shares carry
// explicit input/proof vectors, helper shares carry seeds; both optionally
// trail a blind and a joint-randomness hint.
func (p *Prio3) EncodeInputShare(share InputShare) []byte {
	var out []byte
	if share.AggregatorID == 0 {
		out = append(out, field.EncodeVec(share.Input)...)
		out = append(out, field.EncodeVec(share.Proof)...)
	} else {
		out = append(out, share.InputSeed.Bytes()...)
		out = append(out, share.ProofSeed.Bytes()...)
	}
	if share.HasJointRand {
		out = append(out, share.Blind.Bytes()...)
		out = append(out, share.Hint.Bytes()...)
	}
	return out
}

// DecodeInputShare parses data as the wire form of aggregatorID's input
// share.
func (p *Prio3) DecodeInputShare(aggregatorID int, data []byte) (InputShare, error) {
	share := InputShare{AggregatorID: aggregatorID, HasJointRand: p.circuit.JointRandLen() > 0}
	if aggregatorID == 0 {
		inputBytes := p.circuit.InputLen() * p.circuit.Prime().EncodedSize()
		proofBytes := p.flp.ProofLen() * p.circuit.Prime().EncodedSize()
		want := inputBytes + proofBytes
		if share.HasJointRand {
			want += 2 * prg.SeedSize
		}
		if len(data) != want {
			return InputShare{}, fmt.Errorf("%w: leader input share has %d bytes, want %d", ErrDecode, len(data), want)
		}
		inp, err := field.DecodeVec(p.circuit.Prime(), data[:inputBytes])
		if err != nil {
			return InputShare{}, fmt.Errorf("%w: %v", ErrDecode, err)
		}
		proof, err := field.DecodeVec(p.circuit.Prime(), data[inputBytes:inputBytes+proofBytes])
		if err != nil {
			return InputShare{}, fmt.Errorf("%w: %v", ErrDecode, err)
		}
		share.Input = inp
		share.Proof = proof
		data = data[inputBytes+proofBytes:]
	} else {
		want := 2 * prg.SeedSize
		if share.HasJointRand {
			want += 2 * prg.SeedSize
		}
		if len(data) != want {
			return InputShare{}, fmt.Errorf("%w: helper input share has %d bytes, want %d", ErrDecode, len(data), want)
		}
		copy(share.InputSeed[:], data[:prg.SeedSize])
		copy(share.ProofSeed[:], data[prg.SeedSize:2*prg.SeedSize])
		data = data[2*prg.SeedSize:]
	}
	if share.HasJointRand {
		copy(share.Blind[:], data[:prg.SeedSize])
		copy(share.Hint[:], data[prg.SeedSize:2*prg.SeedSize])
	}
	return share, nil
}

// EncodePrepShare serializes s per the wire layout: encode_vec(verifier)
// optionally followed by the joint-randomness check seed.
func (p *Prio3) EncodePrepShare(s PrepShare) []byte {
	out := field.EncodeVec(s.Verifier)
	if s.HasJointRand {
		out = append(out, s.KJointRandShare.Bytes()...)
	}
	return out
}

// DecodePrepShare parses data as a PrepShare.
func (p *Prio3) DecodePrepShare(data []byte) (PrepShare, error) {
	hasJointRand := p.circuit.JointRandLen() > 0
	verifierBytes := p.flp.VerifierLen() * p.circuit.Prime().EncodedSize()
	want := verifierBytes
	if hasJointRand {
		want += prg.SeedSize
	}
	if len(data) != want {
		return PrepShare{}, fmt.Errorf("%w: prep share has %d bytes, want %d", ErrDecode, len(data), want)
	}
	verifier, err := field.DecodeVec(p.circuit.Prime(), data[:verifierBytes])
	if err != nil {
		return PrepShare{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	s := PrepShare{Verifier: verifier, HasJointRand: hasJointRand}
	if hasJointRand {
		copy(s.KJointRandShare[:], data[verifierBytes:])
	}
	return s, nil
}

// EncodePrepMessage serializes msg; its wire shape matches PrepShare's.
func (p *Prio3) EncodePrepMessage(msg PrepMessage) []byte {
	out := field.EncodeVec(msg.Verifier)
	if msg.HasJointRand {
		out = append(out, msg.KJointRandCheck.Bytes()...)
	}
	return out
}

// DecodePrepMessage parses data as a PrepMessage.
func (p *Prio3) DecodePrepMessage(data []byte) (PrepMessage, error) {
	s, err := p.DecodePrepShare(data)
	if err != nil {
		return PrepMessage{}, err
	}
	return PrepMessage{Verifier: s.Verifier, HasJointRand: s.HasJointRand, KJointRandCheck: s.KJointRandShare}, nil
}

// EncodeAggregateShare serializes an aggregate share vector.
func (p *Prio3) EncodeAggregateShare(v []field.Elem) []byte {
	return field.EncodeVec(v)
}

// DecodeAggregateShare parses data as an aggregate share vector of
// OutputLen elements.
func (p *Prio3) DecodeAggregateShare(data []byte) ([]field.Elem, error) {
	v, err := field.DecodeVec(p.circuit.Prime(), data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if len(v) != p.circuit.OutputLen() {
		return nil, fmt.Errorf("%w: aggregate share has %d elements, want %d", ErrDecode, len(v), p.circuit.OutputLen())
	}
	return v, nil
}
