package xwing

import (
	"errors"

	"github.com/cloudflare/circl/kem/mlkem/mlkem768"
	"golang.org/x/crypto/curve25519"
	"golang.org/x/crypto/sha3"

	"github.com/pqforge/xwing-go/utils"
)

const (
	// SeedSize is the byte length of the private key seed, which is also the
	// only serialized form of a private key.
	SeedSize = 32

	// PrivateKeySize equals SeedSize: private keys serialize as their seed.
	PrivateKeySize = SeedSize

	// EncapsulationSeedSize is the byte length of the entropy consumed by a
	// single encapsulation. Bytes [0:32) feed ML-KEM-768, bytes [32:64) are
	// the X25519 ephemeral scalar.
	EncapsulationSeedSize = 64

	// PublicKeySize is the byte length of an encoded public key:
	// ML-KEM-768 public key followed by the X25519 public key.
	PublicKeySize = mlkem768.PublicKeySize + curveKeySize

	// CiphertextSize is the byte length of an encoded ciphertext:
	// ML-KEM-768 ciphertext followed by the X25519 ephemeral public key.
	CiphertextSize = mlkem768.CiphertextSize + curveKeySize

	// SharedSecretSize is the byte length of the combined shared secret.
	SharedSecretSize = 32

	curveKeySize     = 32
	expandedSeedSize = mlkem768.KeySeedSize + curveKeySize
)

// combinerLabel is absorbed last by the shared-secret combiner. It binds the
// output to the X-Wing protocol instance; changing it changes every secret.
const combinerLabel = `\.//^\`

// PrivateKey holds the secrets expanded from a seed. It is never serialized
// in expanded form; Bytes returns the seed, from which the whole structure is
// reproducible. The zero value is unusable; obtain keys from GenerateKey,
// NewKeyFromSeed, or ParsePrivateKey.
type PrivateKey struct {
	seed     [SeedSize]byte
	mlkem    *mlkem768.PrivateKey
	mlkemPub *mlkem768.PublicKey
	curve    [curveKeySize]byte
}

// expandSeed derives the ML-KEM-768 key pair and the X25519 private scalar
// from the seed. The two secrets are disjoint slices of one continuous
// SHAKE256 stream: bytes [0:64) seed the lattice KEM, bytes [64:96) are the
// curve scalar. The squeeze order is part of the key derivation.
func expandSeed(sk *PrivateKey, seed []byte) {
	copy(sk.seed[:], seed)
	expanded := utils.Shake256(seed, expandedSeedSize)
	sk.mlkemPub, sk.mlkem = mlkem768.NewKeyFromSeed(expanded[:mlkem768.KeySeedSize])
	copy(sk.curve[:], expanded[mlkem768.KeySeedSize:])
	utils.Zeroize(expanded)
}

// GenerateKey draws a fresh seed from the secure random source and returns
// the encoded public key together with the expanded private key.
func GenerateKey() ([]byte, *PrivateKey, error) {
	seed, err := utils.SecureRandomBytes(SeedSize)
	if err != nil {
		return nil, nil, err
	}
	pub, sk, err := NewKeyFromSeed(seed)
	utils.Zeroize(seed)
	return pub, sk, err
}

// NewKeyFromSeed deterministically derives a key pair from a SeedSize-byte
// seed and returns the encoded public key together with the private key.
func NewKeyFromSeed(seed []byte) ([]byte, *PrivateKey, error) {
	sk, err := ParsePrivateKey(seed)
	if err != nil {
		return nil, nil, err
	}
	pub, err := sk.PublicKey()
	if err != nil {
		return nil, nil, err
	}
	return pub, sk, nil
}

// ParsePrivateKey expands a serialized private key. The input must be
// exactly SeedSize bytes; anything else fails with ErrMalformedPrivateKey.
func ParsePrivateKey(data []byte) (*PrivateKey, error) {
	if len(data) != SeedSize {
		return nil, ErrMalformedPrivateKey
	}
	sk := new(PrivateKey)
	expandSeed(sk, data)
	return sk, nil
}

// Bytes returns the canonical serialized form of the private key: the seed.
// The expanded secrets are never serialized.
func (sk *PrivateKey) Bytes() []byte {
	out := make([]byte, SeedSize)
	copy(out, sk.seed[:])
	return out
}

// PublicKey derives and encodes the public key for sk.
func (sk *PrivateKey) PublicKey() ([]byte, error) {
	out := make([]byte, PublicKeySize)
	if err := sk.PublicKeyTo(out); err != nil {
		return nil, err
	}
	return out, nil
}

// PublicKeyTo writes the encoded public key into dst, which must be exactly
// PublicKeySize bytes; otherwise it fails with ErrEncoding.
func (sk *PrivateKey) PublicKeyTo(dst []byte) error {
	if len(dst) != PublicKeySize {
		return ErrEncoding
	}
	sk.mlkemPub.Pack(dst[:mlkem768.PublicKeySize])
	curvePub, err := curve25519.X25519(sk.curve[:], curve25519.Basepoint)
	if err != nil {
		return err
	}
	copy(dst[mlkem768.PublicKeySize:], curvePub)
	return nil
}

// Zeroize wipes the private key material. The key is unusable afterwards.
func (sk *PrivateKey) Zeroize() {
	utils.Zeroize(sk.seed[:])
	utils.Zeroize(sk.curve[:])
	sk.mlkem = nil
	sk.mlkemPub = nil
}

// Encapsulate draws EncapsulationSeedSize bytes from the secure random
// source and produces a ciphertext and shared secret for the encoded
// public key.
func Encapsulate(publicKey []byte) (ciphertext, sharedSecret []byte, err error) {
	eseed, err := utils.SecureRandomBytes(EncapsulationSeedSize)
	if err != nil {
		return nil, nil, err
	}
	ciphertext, sharedSecret, err = EncapsulateDeterministic(publicKey, eseed)
	utils.Zeroize(eseed)
	return ciphertext, sharedSecret, err
}

// EncapsulateDeterministic produces a ciphertext and shared secret for the
// encoded public key from externally supplied entropy. The same public key
// and entropy always produce byte-identical outputs; entropy must never be
// reused outside of tests.
func EncapsulateDeterministic(publicKey, eseed []byte) (ciphertext, sharedSecret []byte, err error) {
	if len(eseed) != EncapsulationSeedSize {
		return nil, nil, errors.New("xwing: encapsulation seed must be 64 bytes")
	}
	if len(publicKey) != PublicKeySize {
		return nil, nil, ErrInvalidPublicKey
	}

	mlkemPub, err := parseMLKEMPublicKey(publicKey[:mlkem768.PublicKeySize])
	if err != nil {
		return nil, nil, ErrInvalidPublicKey
	}
	peerCurve := publicKey[mlkem768.PublicKeySize:]

	ct := make([]byte, CiphertextSize)

	// Entropy split: the trailing half is the X25519 ephemeral scalar, the
	// leading half feeds ML-KEM encapsulation.
	ephemeral := eseed[mlkem768.EncapsulationSeedSize:]
	curveCT, err := curve25519.X25519(ephemeral, curve25519.Basepoint)
	if err != nil {
		return nil, nil, ErrInvalidPublicKey
	}
	copy(ct[mlkem768.CiphertextSize:], curveCT)

	curveShared, err := curve25519.X25519(ephemeral, peerCurve)
	if err != nil {
		return nil, nil, ErrInvalidPublicKey
	}

	mlkemShared := make([]byte, mlkem768.SharedKeySize)
	mlkemPub.EncapsulateTo(ct[:mlkem768.CiphertextSize], mlkemShared, eseed[:mlkem768.EncapsulationSeedSize])

	ss := combine(mlkemShared, curveShared, curveCT, peerCurve)
	utils.Zeroize(mlkemShared)
	utils.Zeroize(curveShared)
	return ct, ss, nil
}

// Decapsulate recovers the shared secret from a ciphertext. On any failure
// the returned slice is filled with fresh random bytes and the error is
// ErrDecapsulation, without distinguishing which step rejected: callers that
// forget to check the error still end up with an unusable, unpredictable key
// rather than attacker-influenced material.
func Decapsulate(sk *PrivateKey, ciphertext []byte) ([]byte, error) {
	ss, err := decapsulate(sk, ciphertext)
	if err == nil {
		return ss, nil
	}
	fill, randErr := utils.SecureRandomBytes(SharedSecretSize)
	if randErr != nil {
		return nil, randErr
	}
	return fill, ErrDecapsulation
}

func decapsulate(sk *PrivateKey, ciphertext []byte) ([]byte, error) {
	if sk == nil || sk.mlkem == nil {
		return nil, ErrDecapsulation
	}
	if len(ciphertext) != CiphertextSize {
		return nil, ErrDecapsulation
	}
	curveCT := ciphertext[mlkem768.CiphertextSize:]

	mlkemShared := make([]byte, mlkem768.SharedKeySize)
	sk.mlkem.DecapsulateTo(mlkemShared, ciphertext[:mlkem768.CiphertextSize])
	defer utils.Zeroize(mlkemShared)

	// The local curve public key is part of the combiner transcript.
	curvePub, err := curve25519.X25519(sk.curve[:], curve25519.Basepoint)
	if err != nil {
		return nil, err
	}
	curveShared, err := curve25519.X25519(sk.curve[:], curveCT)
	if err != nil {
		return nil, err
	}
	defer utils.Zeroize(curveShared)

	return combine(mlkemShared, curveShared, curveCT, curvePub), nil
}

// combine mixes both sub-scheme secrets and the X25519 transcript into the
// final shared secret. SHA3-256 carries a different Keccak domain tag than
// the SHAKE256 seed expander. The absorb order and the trailing label are
// part of the construction and must not change.
func combine(mlkemShared, curveShared, curveCiphertext, curvePublicKey []byte) []byte {
	h := sha3.New256()
	h.Write(mlkemShared)
	h.Write(curveShared)
	h.Write(curveCiphertext)
	h.Write(curvePublicKey)
	h.Write([]byte(combinerLabel))
	return h.Sum(nil)
}

func parseMLKEMPublicKey(data []byte) (*mlkem768.PublicKey, error) {
	pk, err := mlkem768.Scheme().UnmarshalBinaryPublicKey(data)
	if err != nil {
		return nil, err
	}
	return pk.(*mlkem768.PublicKey), nil
}
