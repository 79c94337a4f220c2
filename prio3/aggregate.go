package prio3

import (
	"fmt"
	"math/big"

	"github.com/tallyproto/vdaf/field"
)

// Aggregate sums output shares componentwise into an aggregate share. It is
// the identity on an empty slice of length p.Circuit().OutputLen().
func (p *Prio3) Aggregate(outShares [][]field.Elem) ([]field.Elem, error) {
	agg := field.Zeros(p.circuit.Prime(), p.circuit.OutputLen())
	for i, out := range outShares {
		var err error
		agg, err = field.VectorAdd(agg, out)
		if err != nil {
			return nil, fmt.Errorf("prio3: aggregate: output share %d: %w", i, err)
		}
	}
	return agg, nil
}

// Unshard sums every aggregator's aggregate share componentwise and maps the
// result to unsigned integers.
func (p *Prio3) Unshard(aggShares [][]field.Elem) ([]*big.Int, error) {
	if len(aggShares) != p.shares {
		return nil, fmt.Errorf("prio3: unshard: %w: got %d aggregate shares, want %d", ErrInvalidInput, len(aggShares), p.shares)
	}
	total := field.Zeros(p.circuit.Prime(), p.circuit.OutputLen())
	for i, share := range aggShares {
		var err error
		total, err = field.VectorAdd(total, share)
		if err != nil {
			return nil, fmt.Errorf("prio3: unshard: aggregate share %d: %w", i, err)
		}
	}
	result := make([]*big.Int, len(total))
	for i, e := range total {
		result[i] = e.AsUnsigned()
	}
	return result, nil
}
