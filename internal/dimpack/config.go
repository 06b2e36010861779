package dimpack

import (
	"fmt"
	"math/bits"

	"obsid/internal/exposure"
)

// Config fixes the capacity of every packed field and the controller-code
// mapping. It is a plain value: copy it freely, but never change a Config
// after any identifier packed with it has been persisted, because the
// previously packed integers silently stop round-tripping. The codec
// cannot detect that; it is caller discipline.
type Config struct {
	// Controllers maps a single-character controller code to its packed
	// index. Every index must be unique and below NControllers.
	Controllers map[rune]int

	// NControllers is the reserved number of controller indices. It may
	// exceed len(Controllers).
	NControllers int

	// NVisitDefinitions is the reserved number of interpretations a single
	// exposure may have. Two covers the exposure view and the
	// reinterpreted-first-snap visit view.
	NVisitDefinitions int

	// NDays is the reserved number of observation days counted from
	// DayObsBegin.
	NDays int

	// NSeqNums is the reserved number of per-day sequence numbers,
	// starting from 0.
	NSeqNums int

	// NDetectors is the reserved number of detectors, starting from 0.
	NDetectors int

	// DayObsBegin is the inclusive YYYYMMDD lower bound on day_obs and the
	// epoch the packed day ordinal counts from.
	DayObsBegin int
}

// Default returns the catalog's standard configuration: a 38-bit space
// covering roughly 45 years of observing at one exposure every 2.6 seconds
// across 256 detectors, with every controller collapsed into a single slot
// to save bits.
func Default() Config {
	return Config{
		Controllers:       map[rune]int{'O': 0},
		NControllers:      1,
		NVisitDefinitions: 2,
		NDays:             16384,
		NSeqNums:          32768,
		NDetectors:        256,
		DayObsBegin:       20100101,
	}
}

// UseControllers returns a copy of the Config that maps every known
// controller code and reserves the smallest power of two that holds them.
// The default configuration deliberately collapses all controllers to one
// slot; callers that need controller codes to round-trip must opt in with
// this, before packing anything.
func (c Config) UseControllers() Config {
	controllers := make(map[rune]int, len(exposure.Controllers))
	for i, code := range exposure.Controllers {
		controllers[code] = i
	}
	c.Controllers = controllers
	c.NControllers = 8
	return c
}

// Validate checks the construction-time invariants: positive capacities, a
// controller mapping whose indices are unique and in bounds, and a
// capacity product that fits the 64-bit accumulator.
func (c Config) Validate() error {
	for _, capacity := range []struct {
		name string
		n    int
	}{
		{"n_controllers", c.NControllers},
		{"n_visit_definitions", c.NVisitDefinitions},
		{"n_days", c.NDays},
		{"n_seq_nums", c.NSeqNums},
		{"n_detectors", c.NDetectors},
	} {
		if capacity.n <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfiguration, capacity.name, capacity.n)
		}
	}
	seen := make(map[int]rune, len(c.Controllers))
	for code, index := range c.Controllers {
		if index < 0 || index >= c.NControllers {
			return fmt.Errorf("%w: controller %q has index %d, out of bounds for n_controllers=%d",
				ErrInvalidConfiguration, code, index, c.NControllers)
		}
		if other, dup := seen[index]; dup {
			return fmt.Errorf("%w: controllers %q and %q share index %d",
				ErrInvalidConfiguration, other, code, index)
		}
		seen[index] = code
	}
	if _, ok := c.capacityProduct(); !ok {
		return fmt.Errorf("%w: n_visit_definitions=%d n_controllers=%d n_days=%d n_seq_nums=%d n_detectors=%d",
			ErrCapacityOverflow, c.NVisitDefinitions, c.NControllers, c.NDays, c.NSeqNums, c.NDetectors)
	}
	return nil
}

// MaxBits returns the number of bits needed to hold any identifier this
// Config can produce. It is a pure function of the five capacities and
// assumes the Config has passed Validate.
func (c Config) MaxBits() int {
	product, _ := c.capacityProduct()
	return bits.Len64(product - 1)
}

// capacityProduct multiplies the five capacities with overflow detection.
func (c Config) capacityProduct() (uint64, bool) {
	product := uint64(1)
	for _, n := range []int{c.NVisitDefinitions, c.NControllers, c.NDays, c.NSeqNums, c.NDetectors} {
		if n <= 0 {
			return 0, false
		}
		hi, lo := bits.Mul64(product, uint64(n))
		if hi != 0 {
			return 0, false
		}
		product = lo
	}
	return product, true
}

// controllerCode is the reverse lookup of Controllers.
func (c Config) controllerCode(index int) (rune, bool) {
	for code, i := range c.Controllers {
		if i == index {
			return code, true
		}
	}
	return 0, false
}
