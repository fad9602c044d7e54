// Package commands defines the xwing-cli command tree.
//
// Commands
//
//   - keygen   Generate a key pair and write seed and public key files
//   - pubkey   Re-derive the public key from a seed file
//   - encap    Encapsulate to a public key, print the shared secret
//   - decap    Decapsulate a ciphertext with a seed file
//   - seal     Encrypt a file to a public key
//   - open     Decrypt a sealed file with a seed file
//
// Keys and ciphertexts are stored hex-encoded; sealed envelopes are written
// as raw bytes. Shared secrets are printed to stdout in hex.
package commands
