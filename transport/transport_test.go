package transport

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeriveQueryInitSeedAgrees(t *testing.T) {
	pubA, privA, err := GenerateKemKeyPair()
	require.NoError(t, err)
	pubB, privB, err := GenerateKemKeyPair()
	require.NoError(t, err)

	info := []byte("test batch")
	seedA, err := DeriveQueryInitSeed(privA, pubB, info)
	require.NoError(t, err)
	seedB, err := DeriveQueryInitSeed(privB, pubA, info)
	require.NoError(t, err)

	require.Equal(t, seedA, seedB)
}

func TestSignedRoundTrip(t *testing.T) {
	pub, priv, err := GenerateSigningKeyPair()
	require.NoError(t, err)

	env := &PrepShareEnvelope{Nonce: []byte("nonce-0123456789"), AggregatorID: 1, Payload: []byte{1, 2, 3}}
	signed, err := NewSigned(priv, env)
	require.NoError(t, err)

	got, signer, err := signed.Recover()
	require.NoError(t, err)
	require.Equal(t, env, got)
	require.Equal(t, pub, signer)
}

func TestSignedRejectsTamperedObject(t *testing.T) {
	_, priv, err := GenerateSigningKeyPair()
	require.NoError(t, err)

	env := &PrepShareEnvelope{Nonce: []byte("nonce-0123456789"), AggregatorID: 1, Payload: []byte{1, 2, 3}}
	signed, err := NewSigned(priv, env)
	require.NoError(t, err)

	signed.Object.Payload[0] ^= 0xff

	_, _, err = signed.Recover()
	require.ErrorIs(t, err, ErrSignature)
}
