package store

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInMemoryStoreSaveLoadRoundTrip(t *testing.T) {
	s := NewInMemoryStore()
	rec := AggregateRecord{
		BatchID:       "batch-1",
		CircuitName:   "Prio3Count",
		MeasurementCt: 2,
		Result:        []*big.Int{big.NewInt(2)},
	}
	require.NoError(t, s.SaveResult(rec))

	got, err := s.LoadResult("batch-1")
	require.NoError(t, err)
	require.Equal(t, rec.BatchID, got.BatchID)
	require.Equal(t, rec.Result[0].String(), got.Result[0].String())
}

func TestInMemoryStoreLoadMissing(t *testing.T) {
	s := NewInMemoryStore()
	_, err := s.LoadResult("missing")
	require.Error(t, err)
}

func TestResultVectorRoundTrip(t *testing.T) {
	v := []*big.Int{big.NewInt(0), big.NewInt(100), big.NewInt(-5)}
	encoded := encodeResultVector(v)
	decoded, err := decodeResultVector(encoded)
	require.NoError(t, err)
	require.Len(t, decoded, len(v))
	for i := range v {
		require.Equal(t, v[i].String(), decoded[i].String())
	}
}
