// Package constants defines the fixed sizes and domain-separation strings
// that the zorn cryptographic core is built on.
//
// Every value here is part of the wire contract: the three context strings
// and the identity prefix MUST NOT drift, or this implementation silently
// stops interoperating with itself across versions.
package constants

// Protocol identification.
const (
	// ProtocolVersion identifies the wire format this module implements.
	ProtocolVersion uint16 = 0x0001

	// ProtocolName is used for human-readable diagnostics; it is not fed
	// into any cryptographic derivation.
	ProtocolName = "zorn-encryption.org/v1"
)

// X25519 parameters (RFC 7748).
const (
	// X25519ScalarSize is the size of an X25519 secret scalar in bytes.
	X25519ScalarSize = 32

	// X25519PointSize is the size of an X25519 public point in bytes.
	X25519PointSize = 32
)

// Identity textual encoding.
const (
	// IdentityHRP is the Bech32m human-readable prefix for a zorn public
	// identity, including the trailing hyphen separator.
	IdentityHRP = "zornv1-"
)

// Key-exchange domain separation.
const (
	// KeyExchangeContext seeds the BLAKE3 derive-key hasher used to fold
	// the two DH outputs and both identities into a shared secret.
	KeyExchangeContext = "zorn-encryption.org/v1 shared secret"
)

// XChaCha20-BLAKE3 AEAD parameters and domain separation.
const (
	// AEADKeySize is the size of the AEAD input key in bytes.
	AEADKeySize = 32

	// AEADNonceSize is the size of the XChaCha20 nonce in bytes.
	AEADNonceSize = 24

	// AEADTagSize is the size of the detached BLAKE3 authentication tag
	// in bytes.
	AEADTagSize = 32

	// CipherKeyContext derives the XChaCha20 stream-cipher subkey from the
	// AEAD input key.
	CipherKeyContext = "zorn-encryption.org/v1 XChaCha20-BLAKE3 encryption key"

	// MACKeyContext derives the BLAKE3 keyed-hash subkey from the AEAD
	// input key.
	MACKeyContext = "zorn-encryption.org/v1 XChaCha20-BLAKE3 MAC key"
)
