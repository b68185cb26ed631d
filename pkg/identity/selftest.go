package identity

import (
	"bytes"
	"errors"
	"io"

	qcrypto "github.com/vkleen/zorn/pkg/crypto"
)

// SelfTest runs an RNG health check followed by a pairwise-consistency
// check: it generates two fresh, throwaway secrets from rng, derives
// their public identities, runs the Diffie-Hellman exchange in both
// directions, and confirms the two results agree and are not an all-zero
// shared value (a known failure mode of a malformed X25519
// implementation). It is trimmed from the Conditional/Power-On Self-Test
// pattern down to what's relevant once ML-KEM and FIPS posture are out
// of scope: plain RNG health plus X25519 pairwise consistency.
//
// This is opt-in diagnostics for a CLI invocation; Generate does not run
// it on every call, since that would add two extra key generations and
// two DH operations to every key generation for no benefit outside a
// paranoid invocation.
func SelfTest(rng io.Reader) error {
	if err := qcrypto.RNGHealthCheck(rng); err != nil {
		return err
	}

	self, err := Generate(rng)
	if err != nil {
		return err
	}
	defer self.Zeroize()

	peer, err := Generate(rng)
	if err != nil {
		return err
	}
	defer peer.Zeroize()

	peerIdentity, err := From(peer)
	if err != nil {
		return err
	}

	shared, err := self.DiffieHellman(peerIdentity)
	if err != nil {
		return err
	}
	defer qcrypto.Zeroize(shared[:])

	if bytes.Equal(shared[:], make([]byte, len(shared))) {
		return qcrypto.ErrRNGUnhealthy
	}

	selfIdentity, err := From(self)
	if err != nil {
		return err
	}
	reverse, err := peer.DiffieHellman(selfIdentity)
	if err != nil {
		return err
	}
	defer qcrypto.Zeroize(reverse[:])

	if !qcrypto.ConstantTimeCompare(shared[:], reverse[:]) {
		return errors.New("identity: pairwise consistency check failed")
	}
	return nil
}
