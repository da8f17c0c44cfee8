// Package config loads, normalizes, and validates oggify configuration data.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, and honours environment fallbacks such as OGGIFY_FFMPEG. The
// Config type centralizes every knob the CLI and the batch scheduler need so
// conversion settings and the default filter chain are resolved in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
