package transport

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrSignature is returned by Recover when a signature fails to verify.
var ErrSignature = errors.New("transport: signature verification failed")

// Signed authenticates an arbitrary protocol message with an Ed25519
// signature over its JSON encoding plus the signer's public key, so a
// signature cannot be replayed under a different signer's identity.
type Signed[T any] struct {
	PublicKey ed25519.PublicKey `json:"public_key"`
	Signature []byte            `json:"signature"`
	Object    *T                `json:"object"`
}

// NewSigned signs obj with priv.
func NewSigned[T any](priv ed25519.PrivateKey, obj *T) (*Signed[T], error) {
	pub, ok := priv.Public().(ed25519.PublicKey)
	if !ok {
		return nil, fmt.Errorf("transport: unexpected public key type from ed25519 private key")
	}
	data, err := json.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("transport: serializing signed object: %w", err)
	}
	sig := ed25519.Sign(priv, append(data, pub...))
	return &Signed[T]{PublicKey: pub, Signature: sig, Object: obj}, nil
}

// UnsafeObject returns the wrapped object without verifying its signature.
func (s *Signed[T]) UnsafeObject() *T {
	return s.Object
}

// Recover verifies s's signature and returns the object and signer's public
// key on success.
func (s *Signed[T]) Recover() (*T, ed25519.PublicKey, error) {
	data, err := json.Marshal(s.Object)
	if err != nil {
		return nil, nil, fmt.Errorf("transport: serializing signed object: %w", err)
	}
	if !ed25519.Verify(s.PublicKey, append(data, s.PublicKey...), s.Signature) {
		return nil, nil, ErrSignature
	}
	return s.Object, s.PublicKey, nil
}

// GenerateSigningKeyPair draws a fresh Ed25519 key pair for signing
// prep-shares, prep-messages, and published aggregate results.
func GenerateSigningKeyPair() (ed25519.PublicKey, ed25519.PrivateKey, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("transport: generating signing key pair: %w", err)
	}
	return pub, priv, nil
}
