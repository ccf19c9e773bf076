package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/danielvallance/xorcrack/internal/codec"
	"github.com/danielvallance/xorcrack/internal/xor"
	"github.com/spf13/cobra"
)

// NewEncodeCmd creates the encode command.
func NewEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode [text]",
		Short: "Encrypt text under a repeating XOR key",
		Long: `Encode applies repeating-key XOR to the given text (or stdin when no
argument is provided) and prints the result as hex. Running the output
back through the same key recovers the original text.

Examples:
  # Encrypt an argument under the key "ICE"
  xorcrack encode --key ICE "Burning 'em, if you ain't quick and nimble"

  # Encrypt stdin
  cat message.txt | xorcrack encode --key ICE`,
		Args: cobra.MaximumNArgs(1),
		RunE: runEncodeCmd,
	}

	cmd.Flags().StringP("key", "k", "", "Repeating XOR key (required)")
	_ = cmd.MarkFlagRequired("key") //nolint:errcheck // Flag is registered above

	return cmd
}

// runEncodeCmd executes the encode command.
func runEncodeCmd(cmd *cobra.Command, args []string) error {
	key, err := cmd.Flags().GetString("key")
	if err != nil {
		return err
	}
	if key == "" {
		return errors.New("key must not be empty")
	}

	var message []byte
	if len(args) > 0 {
		message = []byte(args[0])
	} else {
		message, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	encoded := xor.RepeatingKey(message, []byte(key))
	fmt.Fprintln(cmd.OutOrStdout(), codec.EncodeHex(encoded))

	return nil
}
