package keyexchange_test

import (
	"crypto/rand"
	"encoding/hex"
	"testing"

	"github.com/vkleen/zorn/pkg/identity"
	"github.com/vkleen/zorn/pkg/keyexchange"
)

// zeroReader is a deterministic stub RNG that returns all-zero bytes for
// every draw, used to reproduce the fixed key-exchange test vector.
type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

func mustIdentityFromZeroBytes(t *testing.T) *identity.Secret {
	t.Helper()
	var zero [32]byte
	return identity.FromBytes(zero)
}

func TestKeyExchangeAgreement(t *testing.T) {
	senderSecret, err := identity.Generate(rand.Reader)
	if err != nil {
		t.Fatalf("Generate(sender) failed: %v", err)
	}
	recipientSecret, err := identity.Generate(rand.Reader)
	if err != nil {
		t.Fatalf("Generate(recipient) failed: %v", err)
	}

	senderIdentity, err := identity.From(senderSecret)
	if err != nil {
		t.Fatalf("From(sender) failed: %v", err)
	}
	recipientIdentity, err := identity.From(recipientSecret)
	if err != nil {
		t.Fatalf("From(recipient) failed: %v", err)
	}

	ephemeral, senderShared, err := keyexchange.SenderExchange(rand.Reader, senderSecret, recipientIdentity)
	if err != nil {
		t.Fatalf("SenderExchange failed: %v", err)
	}
	recipientShared, err := keyexchange.RecipientExchange(recipientSecret, senderIdentity, ephemeral)
	if err != nil {
		t.Fatalf("RecipientExchange failed: %v", err)
	}

	if senderShared.Bytes() != recipientShared.Bytes() {
		t.Error("sender and recipient derived different shared secrets")
	}
}

// TestKeyExchangeVector reproduces the fixed test vector: a deterministic
// RNG returning all-zero bytes for every draw, used to construct the
// sender secret, ephemeral secret, and recipient identity, must yield a
// specific 32-byte shared secret.
func TestKeyExchangeVector(t *testing.T) {
	const want = "66e20c24acbc3a8bb4d803c5bf17d8f9840a2f917cda8c5c7a5878494ddb6b93"

	senderSecret := mustIdentityFromZeroBytes(t)
	recipientSecret := mustIdentityFromZeroBytes(t)
	recipientIdentity, err := identity.From(recipientSecret)
	if err != nil {
		t.Fatalf("From(recipient) failed: %v", err)
	}

	_, shared, err := keyexchange.SenderExchange(zeroReader{}, senderSecret, recipientIdentity)
	if err != nil {
		t.Fatalf("SenderExchange failed: %v", err)
	}

	got := shared.Bytes()
	wantBytes, err := hex.DecodeString(want)
	if err != nil {
		t.Fatalf("invalid hex test vector: %v", err)
	}
	if hex.EncodeToString(got[:]) != hex.EncodeToString(wantBytes) {
		t.Errorf("shared secret = %x, want %s", got, want)
	}
}

func TestSharedSecretStringElidesContents(t *testing.T) {
	senderSecret, err := identity.Generate(rand.Reader)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	recipientSecret, err := identity.Generate(rand.Reader)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	recipientIdentity, err := identity.From(recipientSecret)
	if err != nil {
		t.Fatalf("From failed: %v", err)
	}

	_, shared, err := keyexchange.SenderExchange(rand.Reader, senderSecret, recipientIdentity)
	if err != nil {
		t.Fatalf("SenderExchange failed: %v", err)
	}
	raw := shared.Bytes()
	if shared.String() == hex.EncodeToString(raw[:]) {
		t.Error("SharedSecret.String() must not reveal the raw secret")
	}
}
