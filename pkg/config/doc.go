// Package config loads gcroots configuration.
//
// Configuration is layered with koanf, later layers overriding earlier ones:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user file: --config, or $XDG_CONFIG_HOME/gcroots/config.toml if present
//  3. GCROOTS_* environment variables
//
// Lists replace rather than merge, so a user file setting listing.args
// replaces the default arguments entirely.
package config
