package main

import (
	"fmt"
	"os"

	"github.com/danielvallance/xorcrack/internal/aesecb"
	"github.com/danielvallance/xorcrack/internal/codec"
	"github.com/spf13/cobra"
)

// NewECBCmd creates the ecb command.
func NewECBCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ecb <base64-file>",
		Short: "Decrypt a base64 file encrypted with AES-128-ECB",
		Long: `Ecb decrypts a base64-encoded file under AES-128 in ECB mode with the
given 16-byte key and prints the plaintext. PKCS#7 padding is stripped.

Examples:
  xorcrack ecb --key "YELLOW SUBMARINE" ciphertext.b64`,
		Args: cobra.ExactArgs(1),
		RunE: runECBCmd,
	}

	cmd.Flags().StringP("key", "k", "", "16-byte AES key (required)")
	_ = cmd.MarkFlagRequired("key") //nolint:errcheck // Flag is registered above

	return cmd
}

// runECBCmd executes the ecb command.
func runECBCmd(cmd *cobra.Command, args []string) error {
	key, err := cmd.Flags().GetString("key")
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0]) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		return fmt.Errorf("failed to read ciphertext file: %w", err)
	}

	ciphertext, err := codec.DecodeBase64(string(data))
	if err != nil {
		return fmt.Errorf("invalid base64 ciphertext: %w", err)
	}

	plaintext, err := aesecb.Decrypt(ciphertext, []byte(key))
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), string(plaintext))
	return nil
}
