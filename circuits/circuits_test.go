package circuits

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tallyproto/vdaf/field"
	"github.com/tallyproto/vdaf/flp"
)

func runFlp(t *testing.T, c flp.Circuit, measurement any, jointRand []field.Elem) bool {
	t.Helper()
	inp, err := c.Encode(measurement)
	require.NoError(t, err)

	f := flp.New(c)
	proveRand := make([]field.Elem, f.ProveRandLen())
	for i := range proveRand {
		r, err := field.Random(c.Prime(), nil)
		require.NoError(t, err)
		proveRand[i] = r
	}
	proof, err := f.Prove(inp, proveRand, jointRand)
	require.NoError(t, err)

	queryRand := make([]field.Elem, f.QueryRandLen())
	for i := range queryRand {
		r, err := field.Random(c.Prime(), nil)
		require.NoError(t, err)
		queryRand[i] = r
	}
	verifier, err := f.Query(inp, proof, queryRand, jointRand, 1)
	require.NoError(t, err)

	ok, err := f.Decide(verifier)
	require.NoError(t, err)
	return ok
}

func TestCountAcceptsBits(t *testing.T) {
	for _, m := range []int{0, 1} {
		require.True(t, runFlp(t, Count{}, m, nil), "m=%d", m)
	}
}

func TestCountRejectsOutOfRange(t *testing.T) {
	_, err := Count{}.Encode(2)
	require.ErrorIs(t, err, ErrEncode)
}

func TestCountTruncateIsIdentity(t *testing.T) {
	inp, err := Count{}.Encode(1)
	require.NoError(t, err)
	out, err := Count{}.Truncate(inp)
	require.NoError(t, err)
	require.Equal(t, inp, out)
}

func TestSumAcceptsInRangeMeasurements(t *testing.T) {
	s := NewSum(8)
	r, err := field.Random(s.Prime(), nil)
	require.NoError(t, err)
	jointRand := []field.Elem{r}

	for _, m := range []int{0, 1, 100, 255} {
		require.True(t, runFlp(t, s, m, jointRand), "m=%d", m)
	}
}

func TestSumRejectsOutOfRange(t *testing.T) {
	s := NewSum(8)
	_, err := s.Encode(256)
	require.ErrorIs(t, err, ErrEncode)
}

func TestSumTruncateReconstructsValue(t *testing.T) {
	s := NewSum(8)
	inp, err := s.Encode(100)
	require.NoError(t, err)
	out, err := s.Truncate(inp)
	require.NoError(t, err)
	require.Equal(t, uint64(100), out[0].AsUnsigned().Uint64())
}

func TestHistogramOneHotAndTruncate(t *testing.T) {
	h := NewHistogram([]uint64{1, 10, 100})
	cases := map[uint64]int{
		0:   0,
		1:   0,
		5:   1,
		10:  1,
		50:  2,
		100: 2,
		101: 3,
	}
	for m, wantBucket := range cases {
		inp, err := h.Encode(m)
		require.NoError(t, err)
		require.Len(t, inp, 4)
		for i, e := range inp {
			if i == wantBucket {
				require.True(t, e.Equal(field.One(h.Prime())), "m=%d bucket=%d", m, i)
			} else {
				require.True(t, e.IsZero(), "m=%d bucket=%d", m, i)
			}
		}
		out, err := h.Truncate(inp)
		require.NoError(t, err)
		require.Equal(t, inp, out)
	}
}

func TestHistogramAcceptsValidOneHot(t *testing.T) {
	h := NewHistogram([]uint64{1, 10, 100})
	r1, err := field.Random(h.Prime(), nil)
	require.NoError(t, err)
	r2, err := field.Random(h.Prime(), nil)
	require.NoError(t, err)
	jointRand := []field.Elem{r1, r2}

	for _, m := range []uint64{0, 5, 50, 1000} {
		require.True(t, runFlp(t, h, m, jointRand), "m=%d", m)
	}
}
