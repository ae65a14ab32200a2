package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/caveman99/CustomCrypto/internal/crypto"
)

func signCmd() *cobra.Command {
	var in string
	cmd := &cobra.Command{
		Use:   "sign [message]",
		Short: "Sign a message with the identity key and print the base64 signature",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := readMessage(cmd, args, in)
			if err != nil {
				return err
			}
			pass, err := requirePassphrase(cmd)
			if err != nil {
				return err
			}
			sig, err := appCtx.Signing.Sign(pass, msg)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), crypto.B64(sig.Slice()))
			return nil
		},
	}
	cmd.Flags().StringVar(&in, "in", "", `read the message from a file ("-" for stdin)`)
	return cmd
}
