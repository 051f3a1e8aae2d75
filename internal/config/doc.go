// Package config loads and validates the TOML configuration for journeylens.
//
// Configuration resolution order: an explicit --config path, a
// journeylens.toml in the working directory, then
// ~/.config/journeylens/config.toml. Missing files fall back to defaults.
// All path values are tilde-expanded and absolute after Load returns.
package config
