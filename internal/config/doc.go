// Package config loads, normalizes, and validates obsid configuration
// data.
//
// It supplies repository defaults, expands user paths, reads TOML files,
// and converts the [packer] section into the codec Configuration consumed
// by internal/dimpack. Always obtain settings through this package so
// downstream code receives canonical formats and clear validation errors.
package config
