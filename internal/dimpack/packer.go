package dimpack

// Packer binds a validated Config so the codec can be handed around as a
// single value. It precomputes the epoch ordinal and bit width once; the
// methods are otherwise thin wrappers over the package-level functions.
type Packer struct {
	cfg     Config
	maxBits int
}

// NewPacker validates cfg and returns a Packer bound to it.
func NewPacker(cfg Config) (*Packer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if _, err := DayObsToOrdinal(cfg.DayObsBegin); err != nil {
		return nil, err
	}
	return &Packer{cfg: cfg, maxBits: cfg.MaxBits()}, nil
}

// Config returns a copy of the bound configuration with its own
// controller map, so callers cannot mutate the Packer's view.
func (p *Packer) Config() Config {
	cfg := p.cfg
	controllers := make(map[rune]int, len(cfg.Controllers))
	for code, index := range cfg.Controllers {
		controllers[code] = index
	}
	cfg.Controllers = controllers
	return cfg
}

// MaxBits reports how many bits the largest identifier this Packer can
// produce occupies.
func (p *Packer) MaxBits() int { return p.maxBits }

// Pack composes key into a packed identifier.
func (p *Packer) Pack(key Key) (uint64, error) { return Pack(p.cfg, key) }

// Unpack recovers the Key behind a packed identifier.
func (p *Packer) Unpack(packed uint64) (Key, error) { return Unpack(p.cfg, packed) }
