// Package xwing implements the X-Wing hybrid post-quantum key encapsulation
// mechanism, combining ML-KEM-768 with X25519 so that breaking either
// primitive alone does not break the combined shared secret.
//
// A private key is a 32-byte seed; everything else is derived from it with
// SHAKE256. Public keys and ciphertexts are fixed-size concatenations of the
// ML-KEM-768 part followed by the 32-byte X25519 part. The 32-byte shared
// secret is a SHA3-256 combiner over both sub-scheme secrets and the X25519
// transcript.
//
// API summary:
//
// Key Encapsulation (KEM):
//   - GenerateKey() - Generate a key pair from fresh randomness
//   - NewKeyFromSeed(seed) - Derive a key pair deterministically
//   - Encapsulate(pub) - Generate shared secret and ciphertext
//   - Decapsulate(sk, ct) - Recover shared secret from ciphertext
//   - Scheme() - Generic circl kem.Scheme adapter
//
// Hybrid public-key encryption (KEM-DEM):
//   - seal.Seal(pub, plaintext, aad) - Encrypt a message
//   - seal.Open(sk, envelope, aad) - Decrypt a message
package xwing

// Version of the X-Wing Go implementation.
const Version = "1.0.0"
