package exposure

import (
	"errors"
	"fmt"
	"strings"
)

// Controllers lists every known controller code. The position of a code in
// this string feeds directly into the exposure ID calculation, so the order
// is a stable contract: never reorder, only append. "O" is the observatory
// control system, "C" the camera control system, and "HPQS" are the
// simulation harnesses.
const Controllers = "OCHPQS"

const (
	// SeqNumDigits is the number of decimal digits reserved for the
	// sequence number in an exposure ID.
	SeqNumDigits = 5

	// DayObsDigits is the number of decimal digits reserved for the day of
	// observation (and controller shift) in an exposure ID.
	DayObsDigits = 8

	// IDDigits is the total number of decimal digits in an exposure ID.
	IDDigits = SeqNumDigits + DayObsDigits
)

const (
	seqNumLimit = 100_000

	// Shift applied to the day component once per controller index.
	controllerIncrement = 1000_00_00

	// Exposure IDs are strictly below this; a visit ID may carry one extra
	// leading digit.
	idLimit = int64(10_000_000_000_000)
)

var (
	ErrUnknownController = errors.New("unknown controller code")
	ErrMalformedDayObs   = errors.New("malformed day_obs")
	ErrSeqNumTooLarge    = errors.New("seq_num exceeds digit budget")
	ErrMalformedID       = errors.New("malformed exposure id")
	ErrMalformedVisitID  = errors.New("malformed visit id")
)

// ComposeID builds the canonical exposure ID for a day of observation,
// sequence number, and controller code.
//
// The day component of the ID is dayObs plus controllerIncrement per
// controller index, so decomposition only works when the year is in
// [2000, 2999]. That comfortably covers the observatory's operating range
// and is the same assumption the catalog's existing IDs bake in.
func ComposeID(dayObs, seqNum int, controller rune) (int64, error) {
	if dayObs/controllerIncrement != 2 || dayObs%100 == 0 || (dayObs/100)%100 == 0 {
		return 0, fmt.Errorf("%w: %d", ErrMalformedDayObs, dayObs)
	}
	if seqNum < 0 || seqNum >= seqNumLimit {
		return 0, fmt.Errorf("%w: %d (limit %d)", ErrSeqNumTooLarge, seqNum, seqNumLimit)
	}
	index := strings.IndexRune(Controllers, controller)
	if index < 0 {
		return 0, fmt.Errorf("%w: %q (supported: %s)", ErrUnknownController, controller, Controllers)
	}
	dayComponent := int64(dayObs) + int64(index)*controllerIncrement
	return dayComponent*seqNumLimit + int64(seqNum), nil
}

// DecomposeID splits an exposure ID back into its day of observation,
// sequence number, and controller code. It is the exact inverse of
// ComposeID for every ID ComposeID can produce.
func DecomposeID(id int64) (dayObs, seqNum int, controller rune, err error) {
	if id < 0 || id >= idLimit {
		return 0, 0, 0, fmt.Errorf("%w: %d is outside the %d-digit envelope", ErrMalformedID, id, IDDigits)
	}
	dayComponent := id / seqNumLimit
	seqNum = int(id % seqNumLimit)
	index := int(dayComponent/controllerIncrement) - 2
	if index < 0 || index >= len(Controllers) {
		return 0, 0, 0, fmt.Errorf("%w: day component %d in id %d", ErrMalformedID, dayComponent, id)
	}
	dayObs = int(dayComponent - int64(index)*controllerIncrement)
	return dayObs, seqNum, rune(Controllers[index]), nil
}

// VisitID returns the visit identifier for an exposure. A plain visit
// shares the exposure's ID; the reinterpreted first snap of a multi-snap
// sequence gets a leading 9.
func VisitID(exposureID int64, reinterpreted bool) int64 {
	if reinterpreted {
		return 9*idLimit + exposureID
	}
	return exposureID
}

// SplitVisitID strips the reinterpretation marker from a visit ID,
// returning the underlying exposure ID and whether the marker was present.
// Any leading digit other than 9 (or none at all) is malformed.
func SplitVisitID(visitID int64) (exposureID int64, reinterpreted bool, err error) {
	if visitID < 0 {
		return 0, false, fmt.Errorf("%w: %d is negative", ErrMalformedVisitID, visitID)
	}
	lead, rest := visitID/idLimit, visitID%idLimit
	switch lead {
	case 0:
		return rest, false, nil
	case 9:
		return rest, true, nil
	default:
		return 0, false, fmt.Errorf("%w: unexpected leading digit %d in %d", ErrMalformedVisitID, lead, visitID)
	}
}
