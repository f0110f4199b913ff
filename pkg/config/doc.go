// Package config loads tagtint settings.
//
// Sources are layered, later ones winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user file, $XDG_CONFIG_HOME/tagtint/config.toml or an explicit path
//  3. TAGTINT_* environment variables, e.g. TAGTINT_OUTPUT_FORMAT=irc
//
// The resulting Config also knows how to build the markup.ColorTable the
// formatter reads from: standard colors, then builtin palettes, palette
// files, and finally the [colors] table.
package config
