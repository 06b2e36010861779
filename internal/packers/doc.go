// Package packers keeps a registry of named observation-key packing
// strategies so the host catalog can select one by short name at
// registration time.
//
// Registration is idempotent for the identical driver: importing the same
// strategy twice is a no-op, and only a genuine name collision with a
// different driver is an error. The built-in "rubin" strategy, backed by
// internal/dimpack, registers itself when this package loads.
package packers
