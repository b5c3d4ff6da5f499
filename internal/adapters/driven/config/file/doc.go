// Package file provides file-based implementations of driven port interfaces.
// These adapters read configuration from the local filesystem and the
// process environment.
//
// Adapters:
//   - ConfigStore: TOML-based configuration with environment overrides
package file
