package main

import (
	"log/slog"
	"strings"
	"sync"

	"obsid/internal/config"
	"obsid/internal/dimpack"
	"obsid/internal/logging"
	"obsid/internal/packers"
)

type commandContext struct {
	configFlag      *string
	jsonFlag        *bool
	controllersFlag *bool

	configOnce sync.Once
	config     *config.Config
	logger     *slog.Logger
	configErr  error
}

func newCommandContext(configFlag *string, jsonFlag, controllersFlag *bool) *commandContext {
	return &commandContext{
		configFlag:      configFlag,
		jsonFlag:        jsonFlag,
		controllersFlag: controllersFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		logger, err := logging.New(logging.Options{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
		})
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.logger = logger
	})
	return c.config, c.configErr
}

// packerConfig resolves the codec configuration, honoring the
// --controllers override.
func (c *commandContext) packerConfig() (dimpack.Config, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return dimpack.Config{}, err
	}
	packerCfg, err := cfg.PackerConfig()
	if err != nil {
		return dimpack.Config{}, err
	}
	if c.controllersFlag != nil && *c.controllersFlag {
		packerCfg = packerCfg.UseControllers()
	}
	return packerCfg, nil
}

// packer opens the configured strategy from the registry with the resolved
// codec configuration.
func (c *commandContext) packer() (packers.Packer, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	packerCfg, err := c.packerConfig()
	if err != nil {
		return nil, err
	}
	return packers.Open(cfg.Packer.Strategy, packerCfg)
}

func (c *commandContext) componentLogger(component string) *slog.Logger {
	if c.logger == nil {
		return logging.NewNop()
	}
	return logging.NewComponentLogger(c.logger, component)
}

func (c *commandContext) jsonOutput() bool {
	if c.jsonFlag != nil && *c.jsonFlag {
		return true
	}
	return c.config != nil && c.config.Output.Format == "json"
}
