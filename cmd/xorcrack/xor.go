package main

import (
	"fmt"

	"github.com/danielvallance/xorcrack/internal/codec"
	"github.com/danielvallance/xorcrack/internal/xor"
	"github.com/spf13/cobra"
)

// NewXORCmd creates the xor command.
func NewXORCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "xor <hex1> <hex2>",
		Short: "XOR two equal-length hex buffers",
		Long: `Xor combines two hex-encoded buffers of equal length with bitwise XOR
and prints the result as hex.

Examples:
  xorcrack xor 1c0111001f010100061a024b53535009181c 686974207468652062756c6c277320657965`,
		Args: cobra.ExactArgs(2),
		RunE: runXORCmd,
	}
}

// runXORCmd executes the xor command.
func runXORCmd(cmd *cobra.Command, args []string) error {
	a, err := codec.DecodeHex(args[0])
	if err != nil {
		return fmt.Errorf("invalid first hex buffer: %w", err)
	}

	b, err := codec.DecodeHex(args[1])
	if err != nil {
		return fmt.Errorf("invalid second hex buffer: %w", err)
	}

	result, err := xor.Fixed(a, b)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), codec.EncodeHex(result))
	return nil
}
