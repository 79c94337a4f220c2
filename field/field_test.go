package field

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFieldLaws(t *testing.T) {
	for _, p := range []*Prime{Field64, Field128} {
		a := FromUint64(p, 7)
		b := FromUint64(p, 11)
		c := FromUint64(p, 13)

		require.True(t, a.Add(b).Equal(b.Add(a)), "commutativity of +")
		require.True(t, a.Mul(b).Equal(b.Mul(a)), "commutativity of *")
		require.True(t, a.Add(b).Add(c).Equal(a.Add(b.Add(c))), "associativity of +")
		require.True(t, a.Mul(b).Mul(c).Equal(a.Mul(b.Mul(c))), "associativity of *")
		require.True(t, a.Mul(b.Add(c)).Equal(a.Mul(b).Add(a.Mul(c))), "distributivity")
		require.True(t, a.Add(Zero(p)).Equal(a), "additive identity")
		require.True(t, a.Mul(One(p)).Equal(a), "multiplicative identity")
		require.True(t, a.Add(a.Neg()).Equal(Zero(p)), "additive inverse")

		inv, err := a.Inv()
		require.NoError(t, err)
		require.True(t, a.Mul(inv).Equal(One(p)), "multiplicative inverse")

		_, err = Zero(p).Inv()
		require.Error(t, err, "zero has no inverse")
	}
}

func TestGenOrder(t *testing.T) {
	for _, p := range []*Prime{Field64, Field128} {
		gen := p.Gen()
		half := new(big.Int).Rsh(p.GenOrder(), 1)
		require.True(t, gen.Pow(p.GenOrder()).Equal(One(p)), "gen()^GEN_ORDER == 1")
		require.False(t, gen.Pow(half).Equal(One(p)), "gen()^(GEN_ORDER/2) != 1")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, p := range []*Prime{Field64, Field128} {
		v := []Elem{FromUint64(p, 0), FromUint64(p, 1), FromUint64(p, 12345)}
		enc := EncodeVec(v)
		require.Len(t, enc, len(v)*p.EncodedSize())

		dec, err := DecodeVec(p, enc)
		require.NoError(t, err)
		require.Len(t, dec, len(v))
		for i := range v {
			require.True(t, v[i].Equal(dec[i]))
		}
	}
}

func TestDecodeVecRejectsBadLength(t *testing.T) {
	_, err := DecodeVec(Field64, make([]byte, Field64.EncodedSize()+1))
	require.ErrorIs(t, err, ErrDecode)
}

func TestVectorOpsLengthMismatch(t *testing.T) {
	a := Zeros(Field64, 2)
	b := Zeros(Field64, 3)

	_, err := VectorAdd(a, b)
	require.Error(t, err)

	_, err = VectorSub(a, b)
	require.Error(t, err)

	_, err = InnerProduct(a, b)
	require.Error(t, err)
}

func FuzzFieldAddSubRoundTrip(f *testing.F) {
	f.Add(uint64(0), uint64(0))
	f.Add(uint64(1), uint64(1))
	f.Add(uint64(42), uint64(17))

	f.Fuzz(func(t *testing.T, av, bv uint64) {
		a := FromUint64(Field128, av)
		b := FromUint64(Field128, bv)

		sum := a.Add(b)
		back := sum.Sub(b)
		if !back.Equal(a) {
			t.Errorf("round trip failed: (%d + %d) - %d != %d", av, bv, bv, av)
		}

		if !sum.Equal(b.Add(a)) {
			t.Errorf("commutativity failed")
		}
	})
}

func FuzzEncodeDecodeVec(f *testing.F) {
	f.Add(uint64(0))
	f.Add(uint64(1))
	f.Add(uint64(1<<63 - 1))

	f.Fuzz(func(t *testing.T, v uint64) {
		e := FromUint64(Field64, v)
		enc := EncodeVec([]Elem{e})
		dec, err := DecodeVec(Field64, enc)
		if err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		if !dec[0].Equal(e) {
			t.Errorf("round trip failed for %d", v)
		}
	})
}
