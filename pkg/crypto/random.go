// Package crypto provides the cryptographic primitives the zorn identity,
// key-exchange, and AEAD packages are built on: secure randomness,
// constant-time comparison, buffer zeroization, and the BLAKE3 key
// derivation used throughout the rest of this module.
package crypto

import (
	"io"

	qerrors "github.com/vkleen/zorn/internal/errors"
)

// SecureRandom reads len(b) cryptographically secure random bytes from rng
// into b. Callers pass crypto/rand.Reader in production and a deterministic
// reader in tests; this package never reads a package-global default so that
// every caller's entropy source is explicit and auditable.
func SecureRandom(rng io.Reader, b []byte) error {
	if _, err := io.ReadFull(rng, b); err != nil {
		return qerrors.NewCryptoError("SecureRandom", err)
	}
	return nil
}

// SecureRandomBytes returns n cryptographically secure random bytes read
// from rng.
func SecureRandomBytes(rng io.Reader, n int) ([]byte, error) {
	b := make([]byte, n)
	if err := SecureRandom(rng, b); err != nil {
		return nil, err
	}
	return b, nil
}

// MustSecureRandom reads len(b) random bytes from rng into b. It panics if
// rng fails, which for the OS CSPRNG indicates a critical system failure.
// Use this only in contexts where that failure should be unrecoverable.
func MustSecureRandom(rng io.Reader, b []byte) {
	if err := SecureRandom(rng, b); err != nil {
		panic("crypto: failed to read from rng: " + err.Error())
	}
}

// MustSecureRandomBytes returns n random bytes read from rng. It panics if
// rng fails.
func MustSecureRandomBytes(rng io.Reader, n int) []byte {
	b := make([]byte, n)
	MustSecureRandom(rng, b)
	return b
}

// ConstantTimeCompare compares two byte slices in constant time with
// respect to their contents. Returns false immediately on length mismatch,
// since the lengths of tags and keys in this module are always known to
// the attacker anyway.
func ConstantTimeCompare(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	var result byte
	for i := range a {
		result |= a[i] ^ b[i]
	}
	return result == 0
}

// Zeroize overwrites b with zeros. Call this on every exit path of any
// function that handles a secret scalar, shared secret, or derived key.
func Zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// ZeroizeMultiple zeroizes several buffers in one call.
func ZeroizeMultiple(slices ...[]byte) {
	for _, s := range slices {
		Zeroize(s)
	}
}
