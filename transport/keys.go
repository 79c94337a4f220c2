package transport

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/curve25519"
	"golang.org/x/crypto/hkdf"

	"github.com/tallyproto/vdaf/prg"
)

// KemPublicKey and KemPrivateKey are X25519 key-agreement keys two
// aggregators use to bootstrap a shared k_query_init out of band, before
// any measurement is sharded.
type KemPublicKey [32]byte
type KemPrivateKey [32]byte

// GenerateKemKeyPair draws a fresh X25519 key pair.
func GenerateKemKeyPair() (KemPublicKey, KemPrivateKey, error) {
	var pub KemPublicKey
	var priv KemPrivateKey
	if _, err := rand.Read(priv[:]); err != nil {
		return pub, priv, fmt.Errorf("transport: generating kem key pair: %w", err)
	}
	curve25519.ScalarBaseMult((*[32]byte)(&pub), (*[32]byte)(&priv))
	return pub, priv, nil
}

// DeriveQueryInitSeed runs X25519 key agreement between priv and peer, then
// HKDF-SHA256 over the resulting point to derive a Prio3 k_query_init seed.
// Both aggregators bootstrapping the same verify parameter must pass the
// same info string.
func DeriveQueryInitSeed(priv KemPrivateKey, peer KemPublicKey, info []byte) (prg.Seed, error) {
	var sharedPoint [32]byte
	curve25519.ScalarMult(&sharedPoint, (*[32]byte)(&priv), (*[32]byte)(&peer))

	kdf := hkdf.New(sha256.New, sharedPoint[:], nil, info)
	var seed prg.Seed
	if _, err := kdf.Read(seed[:]); err != nil {
		return prg.Seed{}, fmt.Errorf("transport: deriving k_query_init: %w", err)
	}
	return seed, nil
}
