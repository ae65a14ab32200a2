// Package commands defines the xeddsa CLI and wires dependencies for subcommands.
//
// Commands
//
//   - init              Create the local X25519 identity
//   - fingerprint       Print the identity fingerprint
//   - pubkey            Print the identity's X25519 and Edwards public keys
//   - sign              Sign a message with the identity key
//   - verify            Verify a signature against an Edwards or X25519 key
//   - prekey generate   Create, sign and store a new signed pre-key
//   - prekey show       Print the current signed pre-key
//   - prekey verify     Check a peer's signed pre-key
//
// # Implementation
//
// The root command resolves the home directory, passphrase and log level from
// flags or XEDDSA_* environment variables and builds the dependency graph
// (stores, signer, services) before any subcommand runs. Metrics are flushed
// after the subcommand returns when --metrics-file is set.
//
// Keys and signatures are printed and accepted as standard base64.
package commands
