// Package seal provides hybrid public-key encryption on top of the X-Wing
// KEM: the shared secret keys an AES-256-GCM data encapsulation mechanism
// through HKDF-SHA-256.
//
// An envelope is the fixed-size KEM ciphertext, followed by the GCM nonce,
// followed by the AEAD ciphertext with its tag.
package seal

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"

	xwing "github.com/pqforge/xwing-go"
	"github.com/pqforge/xwing-go/utils"
)

const (
	// NonceSize is the byte length of the AES-GCM nonce in an envelope.
	NonceSize = 12

	// Overhead is the number of envelope bytes added to a plaintext.
	Overhead = xwing.CiphertextSize + NonceSize + tagSize

	keySize = 32
	tagSize = 16

	// kdfLabel separates the DEM key derivation from any other use of the
	// X-Wing shared secret.
	kdfLabel = "xwing-seal-key-v1"
)

var (
	// ErrTruncated indicates an envelope shorter than the minimum layout.
	ErrTruncated = errors.New("seal: envelope too short")

	// ErrAuthentication indicates an envelope that failed decryption, either
	// because the KEM ciphertext was rejected or the AEAD tag did not verify.
	ErrAuthentication = errors.New("seal: authentication failed")
)

// Seal encapsulates to the encoded public key and encrypts plaintext under
// the resulting shared secret. additionalData is authenticated but not
// encrypted and may be nil.
func Seal(publicKey, plaintext, additionalData []byte) ([]byte, error) {
	kemCT, sharedSecret, err := xwing.Encapsulate(publicKey)
	if err != nil {
		return nil, err
	}
	defer utils.Zeroize(sharedSecret)

	aead, err := newAEAD(sharedSecret, kemCT)
	if err != nil {
		return nil, err
	}

	nonce, err := utils.SecureRandomBytes(NonceSize)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(kemCT)+NonceSize+len(plaintext)+tagSize)
	out = append(out, kemCT...)
	out = append(out, nonce...)
	return aead.Seal(out, nonce, plaintext, additionalData), nil
}

// Open decrypts an envelope produced by Seal. It fails with ErrTruncated for
// envelopes shorter than the fixed layout and ErrAuthentication when the KEM
// or the AEAD rejects.
func Open(sk *xwing.PrivateKey, envelope, additionalData []byte) ([]byte, error) {
	if len(envelope) < Overhead {
		return nil, ErrTruncated
	}
	kemCT := envelope[:xwing.CiphertextSize]
	nonce := envelope[xwing.CiphertextSize : xwing.CiphertextSize+NonceSize]
	sealed := envelope[xwing.CiphertextSize+NonceSize:]

	sharedSecret, err := xwing.Decapsulate(sk, kemCT)
	if err != nil {
		return nil, ErrAuthentication
	}
	defer utils.Zeroize(sharedSecret)

	aead, err := newAEAD(sharedSecret, kemCT)
	if err != nil {
		return nil, err
	}

	plaintext, err := aead.Open(nil, nonce, sealed, additionalData)
	if err != nil {
		return nil, ErrAuthentication
	}
	return plaintext, nil
}

// newAEAD derives the DEM key from the shared secret, salted with the KEM
// ciphertext to bind the envelope to this encapsulation.
func newAEAD(sharedSecret, kemCiphertext []byte) (cipher.AEAD, error) {
	kdf := hkdf.New(sha256.New, sharedSecret, kemCiphertext, []byte(kdfLabel))
	key := make([]byte, keySize)
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, err
	}
	defer utils.Zeroize(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
