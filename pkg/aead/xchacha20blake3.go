// Package aead implements zorn's custom XChaCha20-BLAKE3 authenticated
// encryption construction: an XChaCha20 keystream paired with a BLAKE3
// keyed-hash MAC, with domain-separated subkey derivation and a detached
// 32-byte tag. This is NOT standard ChaCha20-Poly1305 and does not
// interoperate with it.
package aead

import (
	"encoding/binary"
	"io"

	"golang.org/x/crypto/chacha20"
	"lukechampine.com/blake3"

	"github.com/vkleen/zorn/internal/constants"
	qerrors "github.com/vkleen/zorn/internal/errors"
	qcrypto "github.com/vkleen/zorn/pkg/crypto"
)

// State is a keyed cipher context derived once from a 32-byte input key.
// A single State is reused across many encrypt/decrypt calls: each
// operation clones the pre-keyed MAC hasher rather than mutating it, so a
// State is safe to share across concurrent callers as long as Clone is
// thread-safe, which lukechampine.com/blake3's Hasher guarantees.
type State struct {
	cipherKey [32]byte
	macSeed   *blake3.Hasher
}

// NewState derives a State from a 32-byte input key K. It derives the
// cipher subkey and the MAC subkey under their respective domain
// separators, keys a BLAKE3 hasher with the MAC subkey, and feeds it K
// itself as a first update. This pre-keying binds every subsequent MAC
// computation to K even though the MAC key is itself derived from K.
func NewState(key [32]byte) *State {
	s := &State{}
	qcrypto.DeriveKey(s.cipherKey[:], constants.CipherKeyContext, key[:])

	var macKey [32]byte
	qcrypto.DeriveKey(macKey[:], constants.MACKeyContext, key[:])
	defer qcrypto.Zeroize(macKey[:])

	s.macSeed = qcrypto.NewKeyedHasher(macKey[:])
	s.macSeed.Write(key[:])

	return s
}

// Zeroize overwrites the cipher subkey with zeros. The MAC hasher's
// internal state is dropped for garbage collection along with it; BLAKE3
// hasher internals are not independently zeroizable through this
// package's dependency.
func (s *State) Zeroize() {
	qcrypto.Zeroize(s.cipherKey[:])
}

// EncryptInPlace applies the XChaCha20 keystream to buffer under nonce,
// then computes a detached 32-byte tag over (nonce, associatedData,
// ciphertext, len(associatedData), len(buffer)) in that exact order, with
// both lengths encoded as little-endian 64-bit integers and appended
// after the data. It fails only if the keystream cannot be applied, e.g.
// on stream-counter overflow for an extremely large buffer.
func (s *State) EncryptInPlace(nonce [24]byte, associatedData []byte, buffer []byte) (tag [32]byte, err error) {
	cipher, err := chacha20.NewUnauthenticatedCipher(s.cipherKey[:], nonce[:])
	if err != nil {
		return tag, qerrors.NewCryptoError("encrypt_in_place", qerrors.ErrKeystreamFailure)
	}
	if err := applyKeystream(cipher, buffer); err != nil {
		return tag, qerrors.NewCryptoError("encrypt_in_place", qerrors.ErrKeystreamFailure)
	}

	mac := s.macSeed.Clone()
	writeMACInput(mac, nonce, associatedData, buffer)
	sum := mac.Sum(nil)
	copy(tag[:], sum)
	return tag, nil
}

// DecryptInPlace recomputes the tag over the ciphertext in buffer and
// compares it to tag in constant time. On mismatch it returns
// ErrAuthenticationFailure and leaves buffer untouched; the error kind
// never distinguishes a tag mismatch from a wrong key, nonce, or
// associated data. Only once the tag verifies does it apply the
// keystream to recover the plaintext in place.
func (s *State) DecryptInPlace(nonce [24]byte, associatedData []byte, buffer []byte, tag [32]byte) error {
	mac := s.macSeed.Clone()
	writeMACInput(mac, nonce, associatedData, buffer)
	computed := mac.Sum(nil)

	if !qcrypto.ConstantTimeCompare(computed, tag[:]) {
		return qerrors.ErrAuthenticationFailure
	}

	cipher, err := chacha20.NewUnauthenticatedCipher(s.cipherKey[:], nonce[:])
	if err != nil {
		return qerrors.NewCryptoError("decrypt_in_place", qerrors.ErrKeystreamFailure)
	}
	if err := applyKeystream(cipher, buffer); err != nil {
		return qerrors.NewCryptoError("decrypt_in_place", qerrors.ErrKeystreamFailure)
	}
	return nil
}

func writeMACInput(mac *blake3.Hasher, nonce [24]byte, associatedData, buffer []byte) {
	mac.Write(nonce[:])
	mac.Write(associatedData)
	mac.Write(buffer)

	var lenAD, lenBuf [8]byte
	binary.LittleEndian.PutUint64(lenAD[:], uint64(len(associatedData)))
	binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(buffer)))
	mac.Write(lenAD[:])
	mac.Write(lenBuf[:])
}

// applyKeystream XORs cipher's keystream into buffer in place. The
// underlying chacha20 implementation panics, before touching buffer, if
// its internal 32-bit block counter would overflow, which requires a
// buffer far larger than this module ever expects to handle in one call;
// applyKeystream recovers that panic and reports it as an error.
func applyKeystream(cipher *chacha20.Cipher, buffer []byte) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = qerrors.ErrKeystreamFailure
		}
	}()
	cipher.XORKeyStream(buffer, buffer)
	return nil
}

// GenerateNonce draws a fresh 24-byte XChaCha20 nonce from rng. The core
// does not prescribe how nonces are chosen across multiple messages under
// one key; callers that need uniqueness guarantees beyond "drawn fresh
// from a CSPRNG" must arrange that themselves.
func GenerateNonce(rng io.Reader) (nonce [24]byte, err error) {
	if genErr := qcrypto.SecureRandom(rng, nonce[:]); genErr != nil {
		return nonce, qerrors.NewCryptoError("generate_nonce", genErr)
	}
	return nonce, nil
}
