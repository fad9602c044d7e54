package xwing

import "errors"

var (
	// ErrMalformedPrivateKey indicates a serialized private key whose length
	// is not exactly SeedSize. Trailing bytes are an error, not ignored.
	ErrMalformedPrivateKey = errors.New("xwing: malformed private key")

	// ErrInvalidPublicKey indicates an encoded public key of the wrong
	// length, an ML-KEM-768 prefix that fails to parse, or an X25519 key
	// that yields a degenerate shared secret.
	ErrInvalidPublicKey = errors.New("xwing: invalid public key")

	// ErrDecapsulation indicates that decapsulation rejected the ciphertext.
	// The returned shared secret is still populated with fresh random bytes
	// so that callers ignoring the error never end up with predictable key
	// material.
	ErrDecapsulation = errors.New("xwing: decapsulation failed")

	// ErrEncoding indicates a destination buffer whose length does not match
	// the encoded form being written.
	ErrEncoding = errors.New("xwing: destination buffer has wrong length")
)
