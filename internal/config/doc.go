// Package config loads, normalizes, and validates lbrytools configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// LBRYNET_SERVER. The Config type centralizes every knob the probe, launcher,
// printer, and sanitizer need so the CLI can resolve them in one pass.
//
// Always obtain settings through this package so downstream code receives
// trimmed values, canonical strategy names, and clear validation errors.
package config
