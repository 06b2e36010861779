package dimpack

import (
	"fmt"

	"obsid/internal/exposure"
)

// Key is the compound observation key the codec packs. It is a value type
// with no identity; two Keys with equal fields are the same observation.
type Key struct {
	// DayObs is the YYYYMMDD calendar date the observation is filed under.
	DayObs int

	// SeqNum is the ordinal position of the observation within its day.
	SeqNum int

	// Detector identifies one physical sensor within the camera.
	Detector int

	// Controller is the one-character code of the control subsystem that
	// produced the observation.
	Controller rune

	// Reinterpreted distinguishes the visit view of a multi-snap
	// sequence's first exposure from its plain exposure view.
	Reinterpreted bool
}

// Pack composes a Key into a single integer under cfg.
//
// The fields are accumulated as mixed-radix digits, most significant
// first: reinterpretation flag, controller index, day ordinal, sequence
// number, detector. The order and radices are a stable external contract;
// see the package documentation. cfg must have passed Validate.
func Pack(cfg Config, key Key) (uint64, error) {
	index, ok := cfg.Controllers[key.Controller]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownController, key.Controller)
	}
	beginOrdinal, err := DayObsToOrdinal(cfg.DayObsBegin)
	if err != nil {
		return 0, fmt.Errorf("day_obs_begin: %w", err)
	}
	ordinal, err := DayObsToOrdinal(key.DayObs)
	if err != nil {
		return 0, err
	}
	dayOrdinal := ordinal - beginOrdinal
	if dayOrdinal < 0 || dayOrdinal >= cfg.NDays {
		return 0, fmt.Errorf("%w: day_obs %d must be in [%d, %d)",
			ErrDateOutOfRange, key.DayObs, cfg.DayObsBegin, OrdinalToDayObs(beginOrdinal+cfg.NDays))
	}
	if key.SeqNum < 0 || key.SeqNum >= cfg.NSeqNums {
		return 0, fmt.Errorf("%w: seq_num %d must be in [0, %d)", ErrSeqNumOutOfRange, key.SeqNum, cfg.NSeqNums)
	}
	if key.Detector < 0 || key.Detector >= cfg.NDetectors {
		return 0, fmt.Errorf("%w: detector %d must be in [0, %d)", ErrDetectorOutOfRange, key.Detector, cfg.NDetectors)
	}
	var packed uint64
	if key.Reinterpreted {
		packed = 1
	}
	packed = packed*uint64(cfg.NControllers) + uint64(index)
	packed = packed*uint64(cfg.NDays) + uint64(dayOrdinal)
	packed = packed*uint64(cfg.NSeqNums) + uint64(key.SeqNum)
	packed = packed*uint64(cfg.NDetectors) + uint64(key.Detector)
	return packed, nil
}

// Unpack recovers the Key a packed integer encodes under cfg. It is the
// exact inverse of Pack: successive divmod operations peel the fields off
// least significant first. cfg must have passed Validate.
func Unpack(cfg Config, packed uint64) (Key, error) {
	rest := packed
	detector := rest % uint64(cfg.NDetectors)
	rest /= uint64(cfg.NDetectors)
	seqNum := rest % uint64(cfg.NSeqNums)
	rest /= uint64(cfg.NSeqNums)
	dayOrdinal := rest % uint64(cfg.NDays)
	rest /= uint64(cfg.NDays)
	controllerIndex := rest % uint64(cfg.NControllers)
	rest /= uint64(cfg.NControllers)
	reinterpreted := rest % uint64(cfg.NVisitDefinitions)
	rest /= uint64(cfg.NVisitDefinitions)
	if rest != 0 {
		return Key{}, fmt.Errorf("%w: leftover factor %d in %d", ErrPackedValueOverflow, rest, packed)
	}
	code, ok := cfg.controllerCode(int(controllerIndex))
	if !ok {
		return Key{}, fmt.Errorf("%w: index %d in %d", ErrUnknownControllerIndex, controllerIndex, packed)
	}
	beginOrdinal, err := DayObsToOrdinal(cfg.DayObsBegin)
	if err != nil {
		return Key{}, fmt.Errorf("day_obs_begin: %w", err)
	}
	return Key{
		DayObs:        OrdinalToDayObs(beginOrdinal + int(dayOrdinal)),
		SeqNum:        int(seqNum),
		Detector:      int(detector),
		Controller:    code,
		Reinterpreted: reinterpreted != 0,
	}, nil
}

// PackIDPair packs an (exposure ID, detector) pair by decomposing the
// exposure ID into its day, sequence number, and controller first. With
// reinterpreted set, the result identifies the standalone-visit view of
// the exposure instead of the exposure itself.
func PackIDPair(cfg Config, exposureID int64, detector int, reinterpreted bool) (uint64, error) {
	dayObs, seqNum, controller, err := exposure.DecomposeID(exposureID)
	if err != nil {
		return 0, err
	}
	return Pack(cfg, Key{
		DayObs:        dayObs,
		SeqNum:        seqNum,
		Detector:      detector,
		Controller:    controller,
		Reinterpreted: reinterpreted,
	})
}

// UnpackIDPair is the inverse of PackIDPair: it unpacks the integer and
// recomposes the exposure ID from the recovered fields.
func UnpackIDPair(cfg Config, packed uint64) (exposureID int64, detector int, reinterpreted bool, err error) {
	key, err := Unpack(cfg, packed)
	if err != nil {
		return 0, 0, false, err
	}
	exposureID, err = exposure.ComposeID(key.DayObs, key.SeqNum, key.Controller)
	if err != nil {
		return 0, 0, false, err
	}
	return exposureID, key.Detector, key.Reinterpreted, nil
}

// PackVisitID packs a (visit ID, detector) pair. The visit ID may carry
// the leading-9 reinterpretation marker; it is stripped here and encoded
// in the reinterpretation field.
func PackVisitID(cfg Config, visitID int64, detector int) (uint64, error) {
	exposureID, reinterpreted, err := exposure.SplitVisitID(visitID)
	if err != nil {
		return 0, err
	}
	return PackIDPair(cfg, exposureID, detector, reinterpreted)
}

// UnpackVisitID recovers the (visit ID, detector) pair a packed integer
// encodes, reapplying the reinterpretation marker when present.
func UnpackVisitID(cfg Config, packed uint64) (visitID int64, detector int, err error) {
	exposureID, detector, reinterpreted, err := UnpackIDPair(cfg, packed)
	if err != nil {
		return 0, 0, err
	}
	return exposure.VisitID(exposureID, reinterpreted), detector, nil
}

// UnpackExposureID recovers the (exposure ID, detector) pair a packed
// integer encodes. A packed value carrying the reinterpretation flag may
// be a valid visit identifier but is not a valid exposure identifier, so
// it is rejected.
func UnpackExposureID(cfg Config, packed uint64) (exposureID int64, detector int, err error) {
	exposureID, detector, reinterpreted, err := UnpackIDPair(cfg, packed)
	if err != nil {
		return 0, 0, err
	}
	if reinterpreted {
		return 0, 0, fmt.Errorf("%w: %d encodes a reinterpreted visit, not an exposure", exposure.ErrMalformedID, packed)
	}
	return exposureID, detector, nil
}
