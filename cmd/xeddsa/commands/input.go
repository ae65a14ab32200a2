package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/caveman99/CustomCrypto/internal/crypto"
)

// readMessage returns args[0] when given, otherwise the contents of inPath
// ("-" for stdin).
func readMessage(cmd *cobra.Command, args []string, inPath string) ([]byte, error) {
	switch {
	case len(args) > 0 && inPath != "":
		return nil, fmt.Errorf("give the message as an argument or with --in, not both")
	case len(args) > 0:
		return []byte(args[0]), nil
	case inPath == "-":
		return io.ReadAll(cmd.InOrStdin())
	case inPath != "":
		return os.ReadFile(inPath)
	}
	return nil, fmt.Errorf("no message: pass it as an argument or with --in")
}

// decodeFixed decodes a base64 flag value of exactly n bytes.
func decodeFixed(flag, value string, n int) ([]byte, error) {
	if value == "" {
		return nil, fmt.Errorf("--%s is required", flag)
	}
	b, err := crypto.DecodeB64(value, n)
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", flag, err)
	}
	return b, nil
}
