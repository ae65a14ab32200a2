package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/caveman99/CustomCrypto/internal/crypto"
)

func pubkeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pubkey",
		Short: "Print the identity's X25519 and Edwards public keys",
		Long: "Print the identity's X25519 public key and the Edwards public key its\n" +
			"signatures verify under. The Edwards key depends on --derivation.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, err := requirePassphrase(cmd)
			if err != nil {
				return err
			}
			curvePub, edPub, err := appCtx.Signing.PublicKeys(pass)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "x25519:  %s\n", crypto.B64(curvePub.Slice()))
			fmt.Fprintf(out, "ed25519: %s\n", crypto.B64(edPub.Slice()))
			return nil
		},
	}
}
