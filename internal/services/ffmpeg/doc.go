// Package ffmpeg wraps the ffmpeg command-line tool for single-file audio
// conversions.
//
// A conversion either applies a filter graph and re-encodes the audio with the
// configured codec, or stream copies the input when no processing expression
// applies. ffmpeg's own logging is limited to errors; stderr is captured and
// attached to the returned error when the process exits non-zero.
package ffmpeg
