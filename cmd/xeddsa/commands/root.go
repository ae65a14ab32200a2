package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/cloudflare/cfssl/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/caveman99/CustomCrypto/internal/app"
	"github.com/caveman99/CustomCrypto/internal/crypto/xeddsa"
)

const (
	envHome       = "XEDDSA_HOME"
	envPassphrase = "XEDDSA_PASSPHRASE"
)

var (
	home        string
	passphrase  string
	derivation  string
	metricsFile string
	logLevel    int
	appCtx      *app.Wire
)

// Execute runs the CLI with os.Args.
func Execute() error {
	return execute(newRootCmd())
}

// execute runs root and flushes metrics whether or not the subcommand failed.
func execute(root *cobra.Command) error {
	appCtx = nil
	err := root.Execute()
	if appCtx != nil {
		if cerr := appCtx.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}
	return err
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "xeddsa",
		Short:         "Sign and verify with X25519 keys using XEdDSA",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.Level = logLevel

			if home == "" {
				home = os.Getenv(envHome)
			}
			if home == "" {
				dir, err := app.DefaultHome()
				if err != nil {
					return err
				}
				home = dir
			}
			if passphrase == "" {
				passphrase = os.Getenv(envPassphrase)
			}

			d, err := xeddsa.ParseDerivation(derivation)
			if err != nil {
				return err
			}
			w, err := app.NewWire(app.Config{Home: home, Derivation: d, MetricsFile: metricsFile})
			if err != nil {
				return err
			}
			appCtx = w
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "key dir (default $"+envHome+" or ~/.xeddsa)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the keys (default $"+envPassphrase+")")
	root.PersistentFlags().StringVar(&derivation, "derivation", xeddsa.DeriveHashed.String(),
		"signing key derivation: hashed (Ed25519 seed) or direct (verifiable from the X25519 key)")
	root.PersistentFlags().StringVar(&metricsFile, "metrics-file", "", "write Prometheus counters to this file on exit")
	root.PersistentFlags().IntVar(&logLevel, "loglevel", log.LevelError, "log level (0 = DEBUG, 5 = FATAL)")

	root.AddCommand(initCmd(), fingerprintCmd(), pubkeyCmd(), signCmd(), verifyCmd(), prekeyCmd())
	return root
}

// requirePassphrase returns the configured passphrase, prompting on a terminal
// when none was given.
func requirePassphrase(cmd *cobra.Command) (string, error) {
	if passphrase != "" {
		return passphrase, nil
	}
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("passphrase required (-p or $%s)", envPassphrase)
	}
	fmt.Fprint(cmd.ErrOrStderr(), "Passphrase: ")
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", fmt.Errorf("read passphrase: %w", err)
	}
	passphrase = strings.TrimRight(string(b), "\r\n")
	if passphrase == "" {
		return "", fmt.Errorf("empty passphrase")
	}
	return passphrase, nil
}
