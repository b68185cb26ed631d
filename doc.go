// Package zorn provides the cryptographic core of a message-encryption
// tool: long-term X25519 identities with a Bech32m textual encoding, an
// authenticated one-shot sender-to-recipient key exchange, and a custom
// XChaCha20-BLAKE3 authenticated cipher.
//
// # Quick Start
//
// Generate an identity and encode it:
//
//	import "github.com/vkleen/zorn/pkg/identity"
//
//	secret, _ := identity.Generate(rand.Reader)
//	id, _ := identity.From(secret)
//	fmt.Println(id.String()) // zornv1-...
//
// Run a key exchange and use the shared secret to key the AEAD:
//
//	import (
//		"github.com/vkleen/zorn/pkg/keyexchange"
//		"github.com/vkleen/zorn/pkg/aead"
//	)
//
//	ephemeral, shared, _ := keyexchange.SenderExchange(rand.Reader, senderSecret, recipientIdentity)
//	state := aead.NewState(shared.Bytes())
//	tag, _ := state.EncryptInPlace(nonce, associatedData, buffer)
//
// # Package Structure
//
//   - pkg/identity: long-term X25519 keypairs and their textual encoding
//   - pkg/keyexchange: the authenticated sender/recipient key agreement
//   - pkg/aead: the XChaCha20-BLAKE3 authenticated cipher
//   - pkg/crypto: shared primitives (secure randomness, zeroization, BLAKE3 derive-key/keyed-hash)
//   - internal/bech32: the Bech32/Bech32m textual codec
//   - internal/constants: fixed sizes and domain-separation strings
//   - internal/errors: the error kinds this module surfaces
//   - internal/telemetry: OpenTelemetry tracer/meter wiring for the CLI
//   - cmd/zorn: a debugging and interoperability CLI over the core
//
// # Security Properties
//
//   - Authenticated key agreement: binds sender identity, recipient
//     identity, and a fresh ephemeral so only the intended recipient can
//     recover the shared secret.
//   - Detached-tag AEAD: no ciphertext expansion; ciphertext and the
//     32-byte authentication tag are returned separately.
//   - Constant-time tag comparison and disciplined zeroization of every
//     secret-bearing buffer.
//   - RNG injection: every operation that needs randomness takes an
//     io.Reader explicitly; nothing in this module reaches for a global
//     default.
//
// This module does not define a message envelope, key storage format, or
// network transport: see the Non-goals in its design notes.
//
// # Testing
//
//	go test ./...                         # all tests
//	go test -fuzz=FuzzParse ./pkg/identity # identity decoder fuzzing
//
// # References
//
//   - RFC 7748: Elliptic Curves for Security (X25519)
//   - BIP-173 / BIP-350: Bech32 and Bech32m encodings
package zorn
