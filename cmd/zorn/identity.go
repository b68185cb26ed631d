package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vkleen/zorn/pkg/identity"
)

var identitySelfTest bool

var identityCmd = &cobra.Command{
	Use:   "identity",
	Short: "Generate and inspect zorn identities",
}

var identityGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new identity and print its secret and public encoding",
	RunE:  runIdentityGenerate,
}

var identityShowCmd = &cobra.Command{
	Use:   "show <secret-hex>",
	Short: "Derive and print the public identity for a given hex-encoded secret",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentityShow,
}

func init() {
	identityGenerateCmd.Flags().BoolVar(&identitySelfTest, "self-test", false, "run an RNG health check and pairwise-consistency check before generating")

	identityCmd.AddCommand(identityGenerateCmd)
	identityCmd.AddCommand(identityShowCmd)
}

func runIdentityGenerate(cmd *cobra.Command, args []string) error {
	ctx, end := telemetryP.StartSpan(cmd.Context(), "zorn.identity.generate")
	var err error
	defer func() { end(err) }()

	if identitySelfTest {
		if err = identity.SelfTest(rand.Reader); err != nil {
			return fmt.Errorf("self-test failed: %w", err)
		}
		log.Debug().Msg("self-test passed")
	}

	secret, err := identity.Generate(rand.Reader)
	if err != nil {
		return fmt.Errorf("generating identity: %w", err)
	}
	defer secret.Zeroize()

	id, err := identity.From(secret)
	if err != nil {
		return fmt.Errorf("deriving public identity: %w", err)
	}

	telemetryP.IdentitiesGenerated.Add(ctx, 1)

	raw := secret.Bytes()
	fmt.Printf("secret: %s\n", hex.EncodeToString(raw[:]))
	fmt.Printf("identity: %s\n", id.String())
	return nil
}

func runIdentityShow(cmd *cobra.Command, args []string) error {
	_, end := telemetryP.StartSpan(cmd.Context(), "zorn.identity.show")
	var err error
	defer func() { end(err) }()

	raw, err := hex.DecodeString(args[0])
	if err != nil {
		return fmt.Errorf("invalid hex secret: %w", err)
	}
	if len(raw) != 32 {
		return fmt.Errorf("secret must be exactly 32 bytes, got %d", len(raw))
	}
	var buf [32]byte
	copy(buf[:], raw)
	secret := identity.FromBytes(buf)
	defer secret.Zeroize()

	id, err := identity.From(secret)
	if err != nil {
		return fmt.Errorf("deriving public identity: %w", err)
	}

	fmt.Println(id.String())
	return nil
}
