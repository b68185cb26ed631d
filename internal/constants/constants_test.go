package constants

import "testing"

func TestSizesAgreeWithKeyMaterial(t *testing.T) {
	if X25519ScalarSize != 32 {
		t.Errorf("X25519ScalarSize = %d, want 32", X25519ScalarSize)
	}
	if X25519PointSize != 32 {
		t.Errorf("X25519PointSize = %d, want 32", X25519PointSize)
	}
	if AEADKeySize != 32 {
		t.Errorf("AEADKeySize = %d, want 32", AEADKeySize)
	}
	if AEADNonceSize != 24 {
		t.Errorf("AEADNonceSize = %d, want 24", AEADNonceSize)
	}
	if AEADTagSize != 32 {
		t.Errorf("AEADTagSize = %d, want 32", AEADTagSize)
	}
}

func TestIdentityHRP(t *testing.T) {
	if IdentityHRP != "zornv1-" {
		t.Errorf("IdentityHRP = %q, want %q", IdentityHRP, "zornv1-")
	}
}

// TestDomainSeparatorsAreDistinct guards against accidental aliasing
// between the three byte-exact context strings; if any two collided the
// key exchange and the AEAD subkey derivations would no longer be
// cryptographically independent.
func TestDomainSeparatorsAreDistinct(t *testing.T) {
	contexts := []string{KeyExchangeContext, CipherKeyContext, MACKeyContext}
	for i := range contexts {
		for j := range contexts {
			if i == j {
				continue
			}
			if contexts[i] == contexts[j] {
				t.Errorf("domain separators %d and %d are identical: %q", i, j, contexts[i])
			}
		}
	}
}

// TestDomainSeparatorExactBytes pins the literal context strings: both
// sides of an exchange must derive from byte-identical separators or
// shared secrets silently diverge.
func TestDomainSeparatorExactBytes(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"KeyExchangeContext", KeyExchangeContext, "zorn-encryption.org/v1 shared secret"},
		{"CipherKeyContext", CipherKeyContext, "zorn-encryption.org/v1 XChaCha20-BLAKE3 encryption key"},
		{"MACKeyContext", MACKeyContext, "zorn-encryption.org/v1 XChaCha20-BLAKE3 MAC key"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}
