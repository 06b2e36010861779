package dimpack

import (
	"fmt"
	"time"
)

const secondsPerDay = 86_400

// DayObsToOrdinal converts a YYYYMMDD decimal-digit date to a contiguous
// day count. The absolute offset is unspecified but consistent with
// OrdinalToDayObs, which is all the packing algorithm needs: it only ever
// uses differences between ordinals.
func DayObsToOrdinal(dayObs int) (int, error) {
	yearMonth, day := dayObs/100, dayObs%100
	year, month := yearMonth/100, yearMonth%100
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidDate, dayObs)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range components (Feb 30 becomes Mar 2),
	// so a changed component means the input was not a real date.
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return 0, fmt.Errorf("%w: %d", ErrInvalidDate, dayObs)
	}
	// Midnight UTC is always an exact multiple of secondsPerDay, so the
	// division is exact for dates before 1970 as well.
	return int(t.Unix() / secondsPerDay), nil
}

// OrdinalToDayObs is the exact inverse of DayObsToOrdinal.
func OrdinalToDayObs(ordinal int) int {
	t := time.Unix(int64(ordinal)*secondsPerDay, 0).UTC()
	return (t.Year()*100+int(t.Month()))*100 + t.Day()
}
