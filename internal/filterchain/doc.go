// Package filterchain composes ffmpeg audio filter graphs from the enable or
// disable filter settings supplied by the user.
//
// Stages are always emitted in a fixed canonical order regardless of how the
// settings map was built, so identical configurations produce identical
// expressions. Parameter strings are never validated here; ffmpeg rejects
// malformed values at conversion time.
package filterchain
