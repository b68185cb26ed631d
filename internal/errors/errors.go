// Package errors defines the error kinds surfaced by the zorn cryptographic
// core. Error values carry enough detail for debugging without leaking
// secret material, and decryption failures never distinguish *why*
// authentication failed.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for identity textual decoding.
var (
	// ErrIncorrectHRP indicates the Bech32(m) human-readable prefix is not
	// "zornv1-".
	ErrIncorrectHRP = errors.New("identity: incorrect human-readable prefix")

	// ErrIncorrectBech32Variant indicates the HRP matched but the checksum
	// was computed as legacy Bech32 rather than Bech32m.
	ErrIncorrectBech32Variant = errors.New("identity: expected bech32m encoding, got bech32")
)

// Sentinel errors for AEAD operations.
var (
	// ErrAuthenticationFailure indicates the MAC tag did not match the
	// ciphertext. It never distinguishes a tag mismatch from a wrong
	// key, nonce, or associated data: all of those must be
	// indistinguishable to the caller.
	ErrAuthenticationFailure = errors.New("aead: authentication failure")

	// ErrKeystreamFailure indicates the XChaCha20 keystream could not be
	// applied, e.g. the internal block counter would overflow for a
	// buffer of this size.
	ErrKeystreamFailure = errors.New("aead: keystream failure")
)

// CryptoError wraps a cryptographic error with the operation that produced
// it, so callers and logs can tell sender_exchange apart from
// recipient_exchange without parsing message strings.
type CryptoError struct {
	Op  string
	Err error
}

func (e *CryptoError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *CryptoError) Unwrap() error {
	return e.Err
}

// NewCryptoError creates a new CryptoError.
func NewCryptoError(op string, err error) *CryptoError {
	return &CryptoError{Op: op, Err: err}
}

// IncorrectPubKeyLengthError indicates the Bech32m payload decoded to a
// length other than 32 bytes. It carries the observed length so callers
// and logs don't need to re-derive it.
type IncorrectPubKeyLengthError struct {
	Length int
}

func (e *IncorrectPubKeyLengthError) Error() string {
	return fmt.Sprintf("identity: incorrect public key length: %d", e.Length)
}

// NewIncorrectPubKeyLengthError creates an IncorrectPubKeyLengthError.
func NewIncorrectPubKeyLengthError(length int) *IncorrectPubKeyLengthError {
	return &IncorrectPubKeyLengthError{Length: length}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
