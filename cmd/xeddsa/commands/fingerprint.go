package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint",
		Short: "Print identity fingerprint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, err := requirePassphrase(cmd)
			if err != nil {
				return err
			}
			fp, err := appCtx.Identity.FingerprintIdentity(pass)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", fp)
			return nil
		},
	}
}
