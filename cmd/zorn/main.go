package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vkleen/zorn/internal/telemetry"
	"github.com/vkleen/zorn/pkg/version"
)

var (
	logLevel string
	logJSON  bool

	log        zerolog.Logger
	telemetryP *telemetry.Provider
)

var rootCmd = &cobra.Command{
	Use:     "zorn",
	Short:   "zorn message-encryption cryptographic core",
	Version: version.String(),
	Long: `zorn exposes the identity, key-exchange, and AEAD primitives that
underpin a message-encryption tool: X25519 long-term identities with a
Bech32m textual encoding, an authenticated one-shot sender-to-recipient
key exchange, and a custom XChaCha20-BLAKE3 authenticated cipher.

This CLI is a debugging and interoperability aid over the core, not a
complete encryption tool: there is no message envelope, key storage
format, or network transport here.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := zerolog.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", logLevel, err)
		}
		zerolog.SetGlobalLevel(level)

		var writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
		if logJSON {
			log = zerolog.New(os.Stderr).With().Timestamp().Logger()
		} else {
			log = zerolog.New(writer).With().Timestamp().Logger()
		}

		p, err := telemetry.New(os.Stderr)
		if err != nil {
			return fmt.Errorf("starting telemetry: %w", err)
		}
		telemetryP = p
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if telemetryP == nil {
			return nil
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return telemetryP.Shutdown(ctx)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "emit structured JSON logs instead of a human-readable console format")

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(identityCmd)
	rootCmd.AddCommand(exchangeCmd)
	rootCmd.AddCommand(encryptCmd)
	rootCmd.AddCommand(completionCmd)
}
