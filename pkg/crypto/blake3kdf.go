package crypto

import (
	"lukechampine.com/blake3"
)

// DeriveKey fills out with BLAKE3's derive-key mode output for the given
// context string and input key material. context must be a fixed,
// byte-exact string shared by both ends of a derivation; material is the
// secret (or public) bytes being expanded.
//
// This is a thin wrapper so callers never call blake3.DeriveKey directly
// and risk passing context and material in the wrong order.
func DeriveKey(out []byte, context string, material []byte) {
	blake3.DeriveKey(out, context, material)
}

// NewDeriveKeyHasher returns a streaming BLAKE3 hasher in derive-key mode,
// seeded with context. Callers Write the key material in one or more
// calls and Sum the result; this is equivalent to DeriveKey but lets the
// material be assembled incrementally, which the key exchange needs since
// its material is five separately-computed fields.
func NewDeriveKeyHasher(context string) *blake3.Hasher {
	return blake3.NewDeriveKey(context)
}

// NewKeyedHasher returns a BLAKE3 hasher keyed with a 32-byte subkey,
// ready to accept Write calls. Two hashers keyed with the same key and fed
// the same bytes in the same order always produce the same Sum.
func NewKeyedHasher(key []byte) *blake3.Hasher {
	return blake3.New(32, key)
}
