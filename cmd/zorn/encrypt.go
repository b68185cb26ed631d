package main

import "github.com/spf13/cobra"

var encryptCmd = &cobra.Command{
	Use:   "encrypt",
	Short: "Encrypt a message",
	Long: `Encrypt a message.

This command is a placeholder. The message envelope that glues the key
exchange and the AEAD cipher together — nonce source, framing, recipient
stanzas — is not designed yet, so there is no compatible on-disk or
on-wire format for this command to produce.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, end := telemetryP.StartSpan(cmd.Context(), "zorn.encrypt")
		defer end(nil)

		log.Debug().Msg("encryption placeholder")
		return nil
	},
}
