// Package config loads pathmend settings.
//
// Settings resolve in layers, later layers overriding earlier ones:
//
//  1. Built-in defaults (embedded defaults.toml)
//  2. A config file: an explicit path, or pathmend.toml / pathmend.yaml
//     discovered in the config directory
//  3. PATHMEND_* environment variables
//  4. Caller-supplied overrides, typically command-line flags
//
// The file format is chosen by extension: .yaml and .yml parse as YAML,
// everything else as TOML.
package config
