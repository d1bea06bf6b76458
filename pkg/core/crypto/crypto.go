/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package crypto manages the ed25519 keys used to sign transactions.
// Keys are accepted raw, DER encoded (PKCS#8 for private keys, SubjectPublicKeyInfo
// for public keys) or as the hex encoding of either form.
package crypto

import (
	"bytes"
	"crypto/rand"
	"encoding/asn1"
	"encoding/hex"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/crypto/ed25519"

	"github.com/hashgraph/hedera-sdk-go/pkg/common/errors/status"
	"github.com/hashgraph/hedera-sdk-go/pkg/common/providers/hedera"
)

var (
	oidEd25519 = asn1.ObjectIdentifier{1, 3, 101, 112}

	// DER headers of the fixed size encodings
	privateKeyPrefix = []byte{0x30, 0x2e, 0x02, 0x01, 0x00, 0x30, 0x05, 0x06, 0x03, 0x2b, 0x65, 0x70, 0x04, 0x22, 0x04, 0x20}
	publicKeyPrefix  = []byte{0x30, 0x2a, 0x30, 0x05, 0x06, 0x03, 0x2b, 0x65, 0x70, 0x03, 0x21, 0x00}
)

type algorithmIdentifier struct {
	Algorithm asn1.ObjectIdentifier
}

type pkcs8 struct {
	Version    int
	Algorithm  algorithmIdentifier
	PrivateKey []byte
}

type subjectPublicKeyInfo struct {
	Algorithm algorithmIdentifier
	PublicKey asn1.BitString
}

// PrivateKey is an ed25519 signing key
type PrivateKey struct {
	key ed25519.PrivateKey
}

// PublicKey is an ed25519 verification key
type PublicKey struct {
	key ed25519.PublicKey
}

// GeneratePrivateKey creates a new random key
func GeneratePrivateKey() (*PrivateKey, error) {
	return GeneratePrivateKeyFrom(rand.Reader)
}

// GeneratePrivateKeyFrom creates a key from the entropy in r
func GeneratePrivateKeyFrom(r io.Reader) (*PrivateKey, error) {
	_, key, err := ed25519.GenerateKey(r)
	if err != nil {
		return nil, errors.Wrap(err, "generating ed25519 key failed")
	}
	return &PrivateKey{key: key}, nil
}

// ParsePrivateKey parses a hex encoded private key, raw or DER
func ParsePrivateKey(s string) (*PrivateKey, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, status.NewParseError(s, err)
	}
	key, err := PrivateKeyFromBytes(raw)
	if err != nil {
		return nil, status.NewParseError(s, err)
	}
	return key, nil
}

// PrivateKeyFromBytes decodes a raw seed, a raw 64 byte key or a PKCS#8 DER key.
// For the raw forms the first 32 bytes are the seed.
func PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	switch {
	case len(b) == ed25519.SeedSize || len(b) == ed25519.PrivateKeySize:
		return &PrivateKey{key: ed25519.NewKeyFromSeed(b[:ed25519.SeedSize])}, nil
	case len(b) == len(privateKeyPrefix)+ed25519.SeedSize && bytes.HasPrefix(b, privateKeyPrefix):
		return &PrivateKey{key: ed25519.NewKeyFromSeed(b[len(privateKeyPrefix):])}, nil
	}

	var der pkcs8
	if rest, err := asn1.Unmarshal(b, &der); err != nil || len(rest) != 0 {
		return nil, errors.New("invalid private key encoding")
	}
	if !der.Algorithm.Algorithm.Equal(oidEd25519) {
		return nil, errors.Errorf("unsupported private key algorithm %s", der.Algorithm.Algorithm)
	}
	var seed []byte
	if _, err := asn1.Unmarshal(der.PrivateKey, &seed); err != nil || len(seed) != ed25519.SeedSize {
		return nil, errors.New("invalid ed25519 private key")
	}
	return &PrivateKey{key: ed25519.NewKeyFromSeed(seed)}, nil
}

// Sign signs message
func (k *PrivateKey) Sign(message []byte) ([]byte, error) {
	return ed25519.Sign(k.key, message), nil
}

// PublicKey returns the verification key
func (k *PrivateKey) PublicKey() hedera.PublicKey {
	return k.Public()
}

// Public returns the verification key
func (k *PrivateKey) Public() *PublicKey {
	return &PublicKey{key: k.key.Public().(ed25519.PublicKey)}
}

// Bytes returns the 32 byte seed
func (k *PrivateKey) Bytes() []byte {
	return k.key.Seed()
}

// DER returns the PKCS#8 encoding
func (k *PrivateKey) DER() []byte {
	return append(append([]byte{}, privateKeyPrefix...), k.key.Seed()...)
}

// String returns the hex encoded DER form
func (k *PrivateKey) String() string {
	return hex.EncodeToString(k.DER())
}

// ParsePublicKey parses a hex encoded public key, raw or DER
func ParsePublicKey(s string) (*PublicKey, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, status.NewParseError(s, err)
	}
	key, err := PublicKeyFromBytes(raw)
	if err != nil {
		return nil, status.NewParseError(s, err)
	}
	return key, nil
}

// PublicKeyFromBytes decodes a raw 32 byte key or a SubjectPublicKeyInfo DER key
func PublicKeyFromBytes(b []byte) (*PublicKey, error) {
	switch {
	case len(b) == ed25519.PublicKeySize:
		return &PublicKey{key: ed25519.PublicKey(append([]byte{}, b...))}, nil
	case len(b) == len(publicKeyPrefix)+ed25519.PublicKeySize && bytes.HasPrefix(b, publicKeyPrefix):
		return &PublicKey{key: ed25519.PublicKey(append([]byte{}, b[len(publicKeyPrefix):]...))}, nil
	}

	var der subjectPublicKeyInfo
	if rest, err := asn1.Unmarshal(b, &der); err != nil || len(rest) != 0 {
		return nil, errors.New("invalid public key encoding")
	}
	if !der.Algorithm.Algorithm.Equal(oidEd25519) {
		return nil, errors.Errorf("unsupported public key algorithm %s", der.Algorithm.Algorithm)
	}
	if len(der.PublicKey.Bytes) != ed25519.PublicKeySize {
		return nil, errors.New("invalid ed25519 public key")
	}
	return &PublicKey{key: ed25519.PublicKey(der.PublicKey.Bytes)}, nil
}

// Bytes returns the raw 32 byte key
func (k *PublicKey) Bytes() []byte {
	return append([]byte{}, k.key...)
}

// Verify checks signature over message
func (k *PublicKey) Verify(message, signature []byte) bool {
	if len(signature) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(k.key, message, signature)
}

// DER returns the SubjectPublicKeyInfo encoding
func (k *PublicKey) DER() []byte {
	return append(append([]byte{}, publicKeyPrefix...), k.key...)
}

// String returns the hex encoded DER form
func (k *PublicKey) String() string {
	return hex.EncodeToString(k.DER())
}

// Equal returns true if both keys are the same
func (k *PublicKey) Equal(o hedera.PublicKey) bool {
	return o != nil && bytes.Equal(k.key, o.Bytes())
}
