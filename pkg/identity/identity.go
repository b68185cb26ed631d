// Package identity implements the long-term X25519 keypairs zorn uses to
// name senders and recipients, along with their Bech32m textual encoding.
package identity

import (
	"fmt"
	"io"

	"golang.org/x/crypto/curve25519"

	"github.com/vkleen/zorn/internal/bech32"
	"github.com/vkleen/zorn/internal/constants"
	qerrors "github.com/vkleen/zorn/internal/errors"
	qcrypto "github.com/vkleen/zorn/pkg/crypto"
)

// Secret wraps a 32-byte X25519 static secret scalar. It is exclusively
// owned by one holder; duplicating it requires an explicit round trip
// through Bytes and FromBytes so every duplication site is visible in a
// code review.
type Secret struct {
	scalar [32]byte
}

// Generate draws 32 bytes from rng and wraps them as a new Secret. It
// fails only if rng fails.
func Generate(rng io.Reader) (*Secret, error) {
	var scalar [32]byte
	defer qcrypto.Zeroize(scalar[:])
	if err := qcrypto.SecureRandom(rng, scalar[:]); err != nil {
		return nil, qerrors.NewCryptoError("identity.Generate", err)
	}
	return &Secret{scalar: scalar}, nil
}

// FromBytes wraps a caller-supplied 32-byte buffer as a Secret, for
// recovery or deterministic testing. It copies b; the caller retains
// ownership of and responsibility for zeroizing the original.
func FromBytes(b [32]byte) *Secret {
	return &Secret{scalar: b}
}

// Bytes returns a copy of the raw secret scalar. Callers that take this
// copy inherit the obligation to zeroize it when done.
func (s *Secret) Bytes() [32]byte {
	return s.scalar
}

// Zeroize overwrites the secret scalar with zeros. Call this on every
// exit path once the Secret is no longer needed.
func (s *Secret) Zeroize() {
	qcrypto.Zeroize(s.scalar[:])
}

// DiffieHellman computes the X25519 shared point between s and peer.
func (s *Secret) DiffieHellman(peer *Identity) ([32]byte, error) {
	var out [32]byte
	shared, err := curve25519.X25519(s.scalar[:], peer.point[:])
	if err != nil {
		return out, qerrors.NewCryptoError("identity.DiffieHellman", err)
	}
	copy(out[:], shared)
	qcrypto.Zeroize(shared)
	return out, nil
}

// String elides the secret scalar. Debug-printing or logging a Secret
// must never reveal its contents.
func (s *Secret) String() string {
	return "identity.Secret(REDACTED)"
}

// Identity wraps a 32-byte X25519 public key. It is a plain, comparable
// value that may be freely copied; it carries no secret material.
type Identity struct {
	point [32]byte
}

// From derives the public Identity corresponding to s.
func From(s *Secret) (*Identity, error) {
	pub, err := curve25519.X25519(s.scalar[:], curve25519.Basepoint)
	if err != nil {
		return nil, qerrors.NewCryptoError("identity.From", err)
	}
	id := &Identity{}
	copy(id.point[:], pub)
	return id, nil
}

// Bytes returns a copy of the raw public key.
func (id *Identity) Bytes() [32]byte {
	return id.point
}

// Equal reports whether id and other encode the same public key.
func (id *Identity) Equal(other *Identity) bool {
	return id.point == other.point
}

// String returns the textual encoding: the 32-byte public key Bech32m-
// encoded under the fixed human-readable prefix. The prefix is fixed and
// valid, so this never fails.
func (id *Identity) String() string {
	s, err := bech32.Encode(constants.IdentityHRP, id.point[:])
	if err != nil {
		// The HRP and payload length are both fixed and valid; a failure
		// here means this package's invariants are broken, not that the
		// caller did anything wrong.
		panic("identity: Bech32m encoding of a valid public key failed: " + err.Error())
	}
	return s
}

// Parse decodes the textual encoding of an Identity produced by String.
// Error checks happen in this exact order: Bech32(m) decode first, then
// the human-readable prefix, then the checksum variant, then the decoded
// payload length. Fuzzing the decoder on arbitrary input relies on this
// ordering to converge on stable error kinds.
func Parse(s string) (*Identity, error) {
	hrp, data, variant, err := bech32.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("identity: invalid bech32 encoding: %w", err)
	}
	if hrp != constants.IdentityHRP {
		return nil, qerrors.ErrIncorrectHRP
	}
	if variant != bech32.Bech32m {
		return nil, qerrors.ErrIncorrectBech32Variant
	}
	if len(data) != 32 {
		return nil, qerrors.NewIncorrectPubKeyLengthError(len(data))
	}
	id := &Identity{}
	copy(id.point[:], data)
	return id, nil
}
