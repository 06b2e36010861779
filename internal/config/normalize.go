package config

import "strings"

// normalize canonicalizes string fields and fills empty values with
// defaults so Validate and downstream consumers see one spelling.
func (c *Config) normalize() {
	c.Packer.Strategy = strings.TrimSpace(c.Packer.Strategy)
	if c.Packer.Strategy == "" {
		c.Packer.Strategy = defaultStrategy
	}
	if c.Packer.Controllers == nil {
		c.Packer.Controllers = map[string]int{"O": 0}
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}

	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = defaultOutputFormat
	}
}
