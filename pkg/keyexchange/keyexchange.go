// Package keyexchange implements zorn's one-shot, non-interactive,
// unidirectional authenticated key agreement: a long-term identity DH
// combined with a fresh ephemeral DH, bound together by a domain-separated
// BLAKE3 hash.
package keyexchange

import (
	"io"

	"github.com/vkleen/zorn/internal/constants"
	qerrors "github.com/vkleen/zorn/internal/errors"
	qcrypto "github.com/vkleen/zorn/pkg/crypto"
	"github.com/vkleen/zorn/pkg/identity"
)

// SharedSecret is the 32-byte output of a key exchange, used as the AEAD
// input key. It is exclusively owned; zeroize it once the AEAD state
// derived from it is no longer needed.
type SharedSecret struct {
	bytes [32]byte
}

// Bytes returns a copy of the shared secret.
func (s *SharedSecret) Bytes() [32]byte {
	return s.bytes
}

// Zeroize overwrites the shared secret with zeros.
func (s *SharedSecret) Zeroize() {
	qcrypto.Zeroize(s.bytes[:])
}

func (s *SharedSecret) String() string {
	return "keyexchange.SharedSecret(REDACTED)"
}

// SenderExchange runs the sender side of the exchange. It generates a
// fresh ephemeral X25519 secret from rng, computes both Diffie-Hellman
// outputs against recipientIdentity, and folds them with the ephemeral
// public value and both identities into a shared secret. It returns the
// ephemeral public value (to be sent to the recipient) and the shared
// secret.
func SenderExchange(rng io.Reader, senderSecret *identity.Secret, recipientIdentity *identity.Identity) (*identity.Identity, *SharedSecret, error) {
	ephemeralSecret, err := identity.Generate(rng)
	if err != nil {
		return nil, nil, qerrors.NewCryptoError("sender_exchange", err)
	}
	defer ephemeralSecret.Zeroize()

	ephemeralIdentity, err := identity.From(ephemeralSecret)
	if err != nil {
		return nil, nil, qerrors.NewCryptoError("sender_exchange", err)
	}

	senderIdentity, err := identity.From(senderSecret)
	if err != nil {
		return nil, nil, qerrors.NewCryptoError("sender_exchange", err)
	}

	dh1, err := senderSecret.DiffieHellman(recipientIdentity)
	if err != nil {
		return nil, nil, qerrors.NewCryptoError("sender_exchange", err)
	}
	defer qcrypto.Zeroize(dh1[:])

	dh2, err := ephemeralSecret.DiffieHellman(recipientIdentity)
	if err != nil {
		return nil, nil, qerrors.NewCryptoError("sender_exchange", err)
	}
	defer qcrypto.Zeroize(dh2[:])

	ephemeralPub := ephemeralIdentity.Bytes()
	senderPub := senderIdentity.Bytes()
	recipientPub := recipientIdentity.Bytes()

	secret := deriveSharedSecret(dh1[:], dh2[:], ephemeralPub[:], senderPub[:], recipientPub[:])
	return ephemeralIdentity, secret, nil
}

// RecipientExchange runs the recipient side of the exchange. It computes
// the same two Diffie-Hellman outputs from the recipient's point of view
// and folds them into the same byte sequence the sender used, yielding an
// identical shared secret.
func RecipientExchange(recipientSecret *identity.Secret, senderIdentity *identity.Identity, ephemeralPublic *identity.Identity) (*SharedSecret, error) {
	recipientIdentity, err := identity.From(recipientSecret)
	if err != nil {
		return nil, qerrors.NewCryptoError("recipient_exchange", err)
	}

	dh1, err := recipientSecret.DiffieHellman(senderIdentity)
	if err != nil {
		return nil, qerrors.NewCryptoError("recipient_exchange", err)
	}
	defer qcrypto.Zeroize(dh1[:])

	dh2, err := recipientSecret.DiffieHellman(ephemeralPublic)
	if err != nil {
		return nil, qerrors.NewCryptoError("recipient_exchange", err)
	}
	defer qcrypto.Zeroize(dh2[:])

	ephemeralPub := ephemeralPublic.Bytes()
	senderPub := senderIdentity.Bytes()
	recipientPub := recipientIdentity.Bytes()

	return deriveSharedSecret(dh1[:], dh2[:], ephemeralPub[:], senderPub[:], recipientPub[:]), nil
}

// deriveSharedSecret feeds the five inputs into a BLAKE3 derive-key
// hasher in the exact, normative order: dh1, dh2, ephemeral public,
// sender identity, recipient identity. Any permutation of this order
// produces an incompatible shared secret, so the order must never change
// independently on the sender and recipient sides.
func deriveSharedSecret(dh1, dh2, ephemeralPub, senderPub, recipientPub []byte) *SharedSecret {
	hasher := qcrypto.NewDeriveKeyHasher(constants.KeyExchangeContext)
	hasher.Write(dh1)
	hasher.Write(dh2)
	hasher.Write(ephemeralPub)
	hasher.Write(senderPub)
	hasher.Write(recipientPub)

	secret := &SharedSecret{}
	sum := hasher.Sum(nil)
	copy(secret.bytes[:], sum)
	qcrypto.Zeroize(sum)
	return secret
}
