package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vkleen/zorn/pkg/identity"
	"github.com/vkleen/zorn/pkg/keyexchange"
)

var exchangeSenderSecretHex string
var exchangeRecipientSecretHex string

var exchangeCmd = &cobra.Command{
	Use:   "exchange",
	Short: "Run a sender or recipient half of a key exchange",
}

var exchangeSendCmd = &cobra.Command{
	Use:   "send <recipient-identity>",
	Short: "Run the sender side of a key exchange against a recipient identity",
	Args:  cobra.ExactArgs(1),
	RunE:  runExchangeSend,
}

var exchangeRecvCmd = &cobra.Command{
	Use:   "recv <sender-identity> <ephemeral-identity>",
	Short: "Run the recipient side of a key exchange given the sender's identity and the ephemeral public value",
	Args:  cobra.ExactArgs(2),
	RunE:  runExchangeRecv,
}

func init() {
	exchangeSendCmd.Flags().StringVar(&exchangeSenderSecretHex, "sender-secret", "", "hex-encoded sender secret (required)")
	exchangeSendCmd.MarkFlagRequired("sender-secret")

	exchangeRecvCmd.Flags().StringVar(&exchangeRecipientSecretHex, "recipient-secret", "", "hex-encoded recipient secret (required)")
	exchangeRecvCmd.MarkFlagRequired("recipient-secret")

	exchangeCmd.AddCommand(exchangeSendCmd)
	exchangeCmd.AddCommand(exchangeRecvCmd)
}

func secretFromHexFlag(h string) (*identity.Secret, error) {
	raw, err := hex.DecodeString(h)
	if err != nil {
		return nil, fmt.Errorf("invalid hex secret: %w", err)
	}
	if len(raw) != 32 {
		return nil, fmt.Errorf("secret must be exactly 32 bytes, got %d", len(raw))
	}
	var buf [32]byte
	copy(buf[:], raw)
	return identity.FromBytes(buf), nil
}

func runExchangeSend(cmd *cobra.Command, args []string) error {
	ctx, end := telemetryP.StartSpan(cmd.Context(), "zorn.exchange.send")
	var err error
	defer func() { end(err) }()

	senderSecret, err := secretFromHexFlag(exchangeSenderSecretHex)
	if err != nil {
		return err
	}
	defer senderSecret.Zeroize()

	recipientIdentity, err := identity.Parse(args[0])
	if err != nil {
		return fmt.Errorf("parsing recipient identity: %w", err)
	}

	ephemeral, shared, err := keyexchange.SenderExchange(rand.Reader, senderSecret, recipientIdentity)
	if err != nil {
		return fmt.Errorf("sender exchange: %w", err)
	}
	defer shared.Zeroize()

	telemetryP.ExchangesPerformed.Add(ctx, 1)

	sharedBytes := shared.Bytes()
	fmt.Printf("ephemeral: %s\n", ephemeral.String())
	fmt.Printf("shared secret: %s\n", hex.EncodeToString(sharedBytes[:]))
	return nil
}

func runExchangeRecv(cmd *cobra.Command, args []string) error {
	ctx, end := telemetryP.StartSpan(cmd.Context(), "zorn.exchange.recv")
	var err error
	defer func() { end(err) }()

	recipientSecret, err := secretFromHexFlag(exchangeRecipientSecretHex)
	if err != nil {
		return err
	}
	defer recipientSecret.Zeroize()

	senderIdentity, err := identity.Parse(args[0])
	if err != nil {
		return fmt.Errorf("parsing sender identity: %w", err)
	}
	ephemeralIdentity, err := identity.Parse(args[1])
	if err != nil {
		return fmt.Errorf("parsing ephemeral identity: %w", err)
	}

	shared, err := keyexchange.RecipientExchange(recipientSecret, senderIdentity, ephemeralIdentity)
	if err != nil {
		return fmt.Errorf("recipient exchange: %w", err)
	}
	defer shared.Zeroize()

	telemetryP.ExchangesPerformed.Add(ctx, 1)

	sharedBytes := shared.Bytes()
	fmt.Printf("shared secret: %s\n", hex.EncodeToString(sharedBytes[:]))
	return nil
}
