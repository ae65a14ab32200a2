package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/caveman99/CustomCrypto/internal/domain"
)

var errInvalidSignature = errors.New("signature is INVALID")

func verifyCmd() *cobra.Command {
	var in, edPub, curvePub, sig string
	cmd := &cobra.Command{
		Use:   "verify [message]",
		Short: "Verify a signature against an Edwards or X25519 public key",
		Long: "Verify a signature. --pub takes the Edwards key printed by pubkey;\n" +
			"--curve-pub takes an X25519 key and only accepts direct-derivation signatures.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (edPub == "") == (curvePub == "") {
				return fmt.Errorf("exactly one of --pub or --curve-pub is required")
			}
			msg, err := readMessage(cmd, args, in)
			if err != nil {
				return err
			}
			sb, err := decodeFixed("sig", sig, len(domain.Signature{}))
			if err != nil {
				return err
			}
			signature := domain.MustSignature(sb)

			var ok bool
			if edPub != "" {
				pb, err := decodeFixed("pub", edPub, len(domain.Ed25519Public{}))
				if err != nil {
					return err
				}
				ok = appCtx.Signing.Verify(domain.MustEd25519Public(pb), msg, signature)
			} else {
				pb, err := decodeFixed("curve-pub", curvePub, len(domain.X25519Public{}))
				if err != nil {
					return err
				}
				ok = appCtx.Signing.VerifyCurve(domain.MustX25519Public(pb), msg, signature)
			}
			if !ok {
				return errInvalidSignature
			}
			fmt.Fprintln(cmd.OutOrStdout(), "signature OK")
			return nil
		},
	}
	cmd.Flags().StringVar(&in, "in", "", `read the message from a file ("-" for stdin)`)
	cmd.Flags().StringVar(&edPub, "pub", "", "Edwards public key (base64)")
	cmd.Flags().StringVar(&curvePub, "curve-pub", "", "X25519 public key (base64)")
	cmd.Flags().StringVar(&sig, "sig", "", "signature (base64)")
	return cmd
}
