package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"obsid/internal/dimpack"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePacker(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePacker() error {
	if c.Packer.Strategy == "" {
		return errors.New("packer.strategy must be set")
	}
	for code := range c.Packer.Controllers {
		if utf8.RuneCountInString(code) != 1 {
			return fmt.Errorf("packer.controllers key %q must be a single character", code)
		}
	}
	cfg, err := c.PackerConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("packer: %w", err)
	}
	if _, err := dimpack.DayObsToOrdinal(cfg.DayObsBegin); err != nil {
		return fmt.Errorf("packer.day_obs_begin: %w", err)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateOutput() error {
	switch c.Output.Format {
	case "table", "json":
		return nil
	default:
		return fmt.Errorf("output.format must be table or json, got %q", c.Output.Format)
	}
}

// PackerConfig converts the [packer] section into the codec Configuration.
// With use_controllers set, the full controller alphabet replaces the
// configured mapping, mirroring the codec's opt-in convenience mode.
func (c *Config) PackerConfig() (dimpack.Config, error) {
	cfg := dimpack.Config{
		Controllers:       make(map[rune]int, len(c.Packer.Controllers)),
		NControllers:      c.Packer.NControllers,
		NVisitDefinitions: c.Packer.NVisitDefinitions,
		NDays:             c.Packer.NDays,
		NSeqNums:          c.Packer.NSeqNums,
		NDetectors:        c.Packer.NDetectors,
		DayObsBegin:       c.Packer.DayObsBegin,
	}
	for code, index := range c.Packer.Controllers {
		if utf8.RuneCountInString(code) != 1 {
			return dimpack.Config{}, fmt.Errorf("packer.controllers key %q must be a single character", code)
		}
		for _, r := range code {
			cfg.Controllers[r] = index
		}
	}
	if c.Packer.UseControllers {
		cfg = cfg.UseControllers()
	}
	return cfg, nil
}
