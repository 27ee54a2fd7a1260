// Package commands defines the fecstream CLI and wires dependencies for subcommands.
//
// Commands
//
//   - info    Print the header and cover of a filing without decoding the body
//   - decode  Stream a filing into one CSV file per record type
//
// # Implementation
//
// The root command loads configuration from the environment (and a .env file
// when present) and sets up logging before any subcommand runs, so handlers
// share one validated config and one slog setup. Flags override environment
// values per invocation.
package commands
