package main

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/tallyproto/vdaf/field"
	"github.com/tallyproto/vdaf/prio3"
)

// RunBatch shards, prepares, and aggregates every measurement in cfg against
// a fresh Prio3 instance, and returns the collector's aggregate result.
func RunBatch(log *slog.Logger, cfg *Config) ([]*big.Int, error) {
	circuit, err := cfg.Circuit.Build()
	if err != nil {
		return nil, err
	}
	p, err := prio3.New(circuit, cfg.Shares)
	if err != nil {
		return nil, fmt.Errorf("vdafdemo: %w", err)
	}

	verifyParams, err := p.Setup(nil)
	if err != nil {
		return nil, fmt.Errorf("vdafdemo: %w", err)
	}

	aggShares := make([][]field.Elem, cfg.Shares)
	for j := range aggShares {
		aggShares[j] = field.Zeros(circuit.Prime(), circuit.OutputLen())
	}

	for i, m := range cfg.Measurements {
		nonce, err := hex.DecodeString(m.Nonce)
		if err != nil {
			return nil, fmt.Errorf("vdafdemo: measurement %d: decoding nonce: %w", i, err)
		}

		shares, err := p.Shard(nil, m.Value)
		if err != nil {
			return nil, fmt.Errorf("vdafdemo: measurement %d: %w", i, err)
		}

		states := make([]*prio3.PrepState, cfg.Shares)
		prepShares := make([]prio3.PrepShare, cfg.Shares)
		for j, share := range shares {
			st, ps, err := p.PrepInit(verifyParams[j], nonce, share)
			if err != nil {
				return nil, fmt.Errorf("vdafdemo: measurement %d: prep_init aggregator %d: %w", i, j, err)
			}
			states[j] = st
			prepShares[j] = ps
		}

		msg, err := p.PrepSharesToPrep(prepShares)
		if err != nil {
			return nil, fmt.Errorf("vdafdemo: measurement %d: %w", i, err)
		}

		for j := range states {
			out, err := p.PrepNext(states[j], msg)
			if err != nil {
				log.Warn("measurement dropped", "measurement", i, "aggregator", j, "err", err)
				continue
			}
			summed, err := field.VectorAdd(aggShares[j], out)
			if err != nil {
				return nil, fmt.Errorf("vdafdemo: measurement %d: %w", i, err)
			}
			aggShares[j] = summed
		}
	}

	result, err := p.Unshard(aggShares)
	if err != nil {
		return nil, fmt.Errorf("vdafdemo: %w", err)
	}
	return result, nil
}
