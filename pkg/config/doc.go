// Package config handles configuration management for specedit.
// It layers embedded TOML defaults, the user's XDG config file, a
// project file next to the spec, environment variables and command-line
// flags, in that order.
package config
