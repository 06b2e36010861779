package config

const (
	defaultStrategy          = "rubin"
	defaultNControllers      = 1
	defaultNVisitDefinitions = 2
	defaultNDays             = 16384
	defaultNSeqNums          = 32768
	defaultNDetectors        = 256
	defaultDayObsBegin       = 20100101
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
	defaultOutputFormat      = "table"
)

// Default returns a Config populated with repository defaults, matching
// the catalog's standard 38-bit packing space.
func Default() Config {
	return Config{
		Packer: Packer{
			Strategy:          defaultStrategy,
			Controllers:       map[string]int{"O": 0},
			NControllers:      defaultNControllers,
			NVisitDefinitions: defaultNVisitDefinitions,
			NDays:             defaultNDays,
			NSeqNums:          defaultNSeqNums,
			NDetectors:        defaultNDetectors,
			DayObsBegin:       defaultDayObsBegin,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Output: Output{
			Format: defaultOutputFormat,
		},
	}
}
