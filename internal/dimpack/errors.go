package dimpack

import "errors"

// Every failure in this package is a local validation failure: either the
// caller passed a configuration that cannot describe its inputs, or the
// input itself is malformed. Nothing is retryable and nothing is clamped;
// a silently coerced identifier would look plausible and be wrong.
var (
	// ErrInvalidConfiguration marks a Config that fails its own
	// construction-time invariants.
	ErrInvalidConfiguration = errors.New("invalid packer configuration")

	// ErrCapacityOverflow marks a Config whose capacity product does not
	// fit the 64-bit accumulator.
	ErrCapacityOverflow = errors.New("packer capacity product overflows uint64")

	// ErrUnknownController marks a controller code absent from the
	// Config's mapping.
	ErrUnknownController = errors.New("unknown controller code")

	// ErrUnknownControllerIndex marks a packed controller index that no
	// configured code maps to.
	ErrUnknownControllerIndex = errors.New("unknown controller index")

	// ErrInvalidDate marks a YYYYMMDD value that is not a real calendar
	// date.
	ErrInvalidDate = errors.New("invalid calendar date")

	// ErrDateOutOfRange marks a day_obs outside [DayObsBegin,
	// DayObsBegin + NDays days).
	ErrDateOutOfRange = errors.New("day_obs out of configured range")

	// ErrSeqNumOutOfRange marks a sequence number outside [0, NSeqNums).
	ErrSeqNumOutOfRange = errors.New("seq_num out of configured range")

	// ErrDetectorOutOfRange marks a detector outside [0, NDetectors).
	ErrDetectorOutOfRange = errors.New("detector out of configured range")

	// ErrPackedValueOverflow marks a packed integer that encodes more
	// information than the Config permits, which means it was produced
	// under a different Config or corrupted in storage.
	ErrPackedValueOverflow = errors.New("packed value overflows configuration")
)
