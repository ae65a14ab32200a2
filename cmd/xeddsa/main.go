package main

import (
	"fmt"
	"os"

	"github.com/caveman99/CustomCrypto/cmd/xeddsa/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
