package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/caveman99/CustomCrypto/internal/crypto"
	"github.com/caveman99/CustomCrypto/internal/domain"
)

func prekeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prekey",
		Short: "Manage signed pre-keys",
	}
	cmd.AddCommand(prekeyGenerateCmd(), prekeyShowCmd(), prekeyVerifyCmd())
	return cmd
}

func printSignedPreKey(w io.Writer, spk domain.SignedPreKey) {
	fmt.Fprintf(w, "id:        %s\n", spk.ID)
	fmt.Fprintf(w, "created:   %s\n", time.Unix(spk.CreatedUTC, 0).UTC().Format(time.RFC3339))
	fmt.Fprintf(w, "pub:       %s\n", crypto.B64(spk.Pub.Slice()))
	fmt.Fprintf(w, "signature: %s\n", crypto.B64(spk.Signature.Slice()))
}

func prekeyGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Create, sign and store a new signed pre-key and make it current",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, err := requirePassphrase(cmd)
			if err != nil {
				return err
			}
			spk, err := appCtx.PreKeys.GenerateSignedPreKey(pass)
			if err != nil {
				return err
			}
			printSignedPreKey(cmd.OutOrStdout(), spk)
			return nil
		},
	}
}

func prekeyShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the current signed pre-key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			spk, err := appCtx.PreKeys.CurrentSignedPreKey()
			if err != nil {
				return err
			}
			printSignedPreKey(cmd.OutOrStdout(), spk)
			return nil
		},
	}
}

func prekeyVerifyCmd() *cobra.Command {
	var identity, pub, sig string
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check a peer's signed pre-key against their X25519 identity key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ib, err := decodeFixed("identity", identity, len(domain.X25519Public{}))
			if err != nil {
				return err
			}
			pb, err := decodeFixed("pub", pub, len(domain.X25519Public{}))
			if err != nil {
				return err
			}
			sb, err := decodeFixed("sig", sig, len(domain.Signature{}))
			if err != nil {
				return err
			}
			spk := domain.SignedPreKey{Pub: domain.MustX25519Public(pb), Signature: domain.MustSignature(sb)}
			if err := appCtx.PreKeys.VerifySignedPreKey(domain.MustX25519Public(ib), spk); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "signed pre-key OK")
			return nil
		},
	}
	cmd.Flags().StringVar(&identity, "identity", "", "peer's X25519 identity key (base64)")
	cmd.Flags().StringVar(&pub, "pub", "", "signed pre-key public key (base64)")
	cmd.Flags().StringVar(&sig, "sig", "", "signed pre-key signature (base64)")
	return cmd
}
