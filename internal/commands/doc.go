// Package commands provides the command-line interface for the packcrypt tool.
//
// It implements commands for:
//   - encryption
//   - decryption
//   - key generation
//   - inspection
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands
