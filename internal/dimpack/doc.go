// Package dimpack reversibly packs compound observation keys into single
// integers.
//
// A key is the 5-tuple (day of observation, sequence number, detector,
// controller code, reinterpretation flag). Packing composes the fields as
// mixed-radix digits under a Config that fixes each field's capacity; the
// result is a compact, collision-free integer suitable as a primary key
// for per-detector observation records. Unpacking recovers the original
// tuple exactly.
//
// The field order inside the packed value (reinterpretation flag most
// significant, then controller index, day ordinal, sequence number, and
// detector least significant) is a stable external contract. Catalog
// consumers reimplement it bit-for-bit in SQL expressions, so neither the
// order nor the per-field radices may change once IDs have been persisted
// under a given Config.
//
// Everything here is a pure function over immutable values: no I/O, no
// shared state, safe for concurrent use without locking.
package dimpack
