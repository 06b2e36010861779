// Package exposure composes and decomposes Rubin exposure identifiers.
//
// An exposure ID is a 13-digit decimal integer of the form YYYYMMDDnnnnn:
// eight digits of observation day, five digits of zero-padded sequence
// number. Controllers other than the primary on-sky control system shift
// the day component by a fixed increment per controller, so the controller
// code is recoverable from the ID alone.
//
// The package also owns the visit-ID convention: a visit that reinterprets
// the first snap of a multi-snap sequence as a standalone pointing carries
// a leading decimal 9 in front of the exposure ID. Keeping that convention
// here, at the boundary, means the core packing algorithm in
// internal/dimpack never needs to know about it.
package exposure
