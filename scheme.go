package xwing

import (
	"bytes"
	"crypto/subtle"

	"github.com/cloudflare/circl/kem"
)

// This file connects X-Wing to the generic circl KEM API so it can be used
// anywhere a kem.Scheme is accepted.

// Scheme returns the generic KEM interface for the X-Wing hybrid KEM.
func Scheme() kem.Scheme { return scheme{} }

type scheme struct{}

func (scheme) Name() string               { return "X-Wing" }
func (scheme) PublicKeySize() int         { return PublicKeySize }
func (scheme) PrivateKeySize() int        { return PrivateKeySize }
func (scheme) SeedSize() int              { return SeedSize }
func (scheme) EncapsulationSeedSize() int { return EncapsulationSeedSize }
func (scheme) SharedKeySize() int         { return SharedSecretSize }
func (scheme) CiphertextSize() int        { return CiphertextSize }

type schemePublicKey struct {
	raw []byte
}

type schemePrivateKey struct {
	sk *PrivateKey
}

func (schemePublicKey) Scheme() kem.Scheme  { return scheme{} }
func (schemePrivateKey) Scheme() kem.Scheme { return scheme{} }

func (pk schemePublicKey) MarshalBinary() ([]byte, error) {
	return append([]byte(nil), pk.raw...), nil
}

func (pk schemePublicKey) Equal(other kem.PublicKey) bool {
	oth, ok := other.(schemePublicKey)
	if !ok {
		return false
	}
	return bytes.Equal(pk.raw, oth.raw)
}

func (sk schemePrivateKey) MarshalBinary() ([]byte, error) {
	return sk.sk.Bytes(), nil
}

func (sk schemePrivateKey) Equal(other kem.PrivateKey) bool {
	oth, ok := other.(schemePrivateKey)
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare(sk.sk.seed[:], oth.sk.seed[:]) == 1
}

func (sk schemePrivateKey) Public() kem.PublicKey {
	// Derivation only fails for wrongly sized buffers, which cannot happen
	// here.
	pub, _ := sk.sk.PublicKey()
	return schemePublicKey{raw: pub}
}

func (scheme) GenerateKeyPair() (kem.PublicKey, kem.PrivateKey, error) {
	pub, sk, err := GenerateKey()
	if err != nil {
		return nil, nil, err
	}
	return schemePublicKey{raw: pub}, schemePrivateKey{sk: sk}, nil
}

func (scheme) DeriveKeyPair(seed []byte) (kem.PublicKey, kem.PrivateKey) {
	pub, sk, err := NewKeyFromSeed(seed)
	if err != nil {
		panic(err)
	}
	return schemePublicKey{raw: pub}, schemePrivateKey{sk: sk}
}

func (sch scheme) Encapsulate(pk kem.PublicKey) (ct, ss []byte, err error) {
	pub, ok := pk.(schemePublicKey)
	if !ok {
		return nil, nil, kem.ErrTypeMismatch
	}
	return Encapsulate(pub.raw)
}

func (sch scheme) EncapsulateDeterministically(pk kem.PublicKey, seed []byte) (ct, ss []byte, err error) {
	if len(seed) != EncapsulationSeedSize {
		return nil, nil, kem.ErrSeedSize
	}
	pub, ok := pk.(schemePublicKey)
	if !ok {
		return nil, nil, kem.ErrTypeMismatch
	}
	return EncapsulateDeterministic(pub.raw, seed)
}

func (scheme) Decapsulate(sk kem.PrivateKey, ct []byte) ([]byte, error) {
	priv, ok := sk.(schemePrivateKey)
	if !ok {
		return nil, kem.ErrTypeMismatch
	}
	if len(ct) != CiphertextSize {
		return nil, kem.ErrCiphertextSize
	}
	return Decapsulate(priv.sk, ct)
}

func (scheme) UnmarshalBinaryPublicKey(buf []byte) (kem.PublicKey, error) {
	if len(buf) != PublicKeySize {
		return nil, kem.ErrPubKeySize
	}
	if _, err := parseMLKEMPublicKey(buf[:PublicKeySize-curveKeySize]); err != nil {
		return nil, ErrInvalidPublicKey
	}
	return schemePublicKey{raw: append([]byte(nil), buf...)}, nil
}

func (scheme) UnmarshalBinaryPrivateKey(buf []byte) (kem.PrivateKey, error) {
	if len(buf) != PrivateKeySize {
		return nil, kem.ErrPrivKeySize
	}
	sk, err := ParsePrivateKey(buf)
	if err != nil {
		return nil, err
	}
	return schemePrivateKey{sk: sk}, nil
}
