// Package audioprobe inspects audio files in-process.
//
// Inputs (WAV and MP3) are opened with pure-Go decoders to report sample
// rate, channel count, and duration for logging and summaries. Finished OGG
// outputs can be verified by decoding the Vorbis stream headers and the first
// block of samples, which catches truncated or mislabelled files without
// shelling out to another tool.
package audioprobe
