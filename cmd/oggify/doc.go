// Package main hosts the oggify CLI entrypoint and command graph.
//
// The root command converts a single audio file, or every WAV/MP3 file in a
// directory, to Ogg. Subcommands scaffold and validate the configuration
// file and run toolchain preflight checks. Configuration resolution, flag
// overrides, and logger construction live here; conversion itself is
// delegated to internal/batch.
package main
