package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"obsid/internal/config"
	"obsid/internal/dimpack"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore chdir: %v", err)
		}
	})
}

func TestLoadDefaultsWhenNoFileExists(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.EnvConfigPath, "")
	chdir(t, t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if cfg.Packer.Strategy != "rubin" {
		t.Fatalf("unexpected strategy: %q", cfg.Packer.Strategy)
	}
	if cfg.Packer.NDays != 16384 || cfg.Packer.NSeqNums != 32768 || cfg.Packer.NDetectors != 256 {
		t.Fatalf("unexpected capacities: %+v", cfg.Packer)
	}
	if cfg.Packer.DayObsBegin != 20100101 {
		t.Fatalf("unexpected day_obs_begin: %d", cfg.Packer.DayObsBegin)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.Output.Format != "table" {
		t.Fatalf("unexpected output default: %+v", cfg.Output)
	}

	packerCfg, err := cfg.PackerConfig()
	if err != nil {
		t.Fatalf("PackerConfig: %v", err)
	}
	if got := packerCfg.MaxBits(); got != 38 {
		t.Fatalf("MaxBits = %d, want 38", got)
	}
	if packerCfg.Controllers['O'] != 0 || len(packerCfg.Controllers) != 1 {
		t.Fatalf("unexpected controllers: %v", packerCfg.Controllers)
	}
}

func TestLoadAppliesOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := strings.Join([]string{
		"[packer]",
		"n_detectors = 512",
		"use_controllers = true",
		"",
		"[logging]",
		"level = \"debug\"",
		"format = \"json\"",
		"",
		"[output]",
		"format = \"json\"",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("resolved=%q exists=%t", resolved, exists)
	}
	if cfg.Packer.NDetectors != 512 {
		t.Fatalf("n_detectors = %d, want 512", cfg.Packer.NDetectors)
	}
	// Untouched fields keep their defaults.
	if cfg.Packer.NDays != 16384 {
		t.Fatalf("n_days = %d, want default 16384", cfg.Packer.NDays)
	}
	if cfg.Logging.Level != "debug" || cfg.Output.Format != "json" {
		t.Fatalf("unexpected overrides: %+v %+v", cfg.Logging, cfg.Output)
	}

	packerCfg, err := cfg.PackerConfig()
	if err != nil {
		t.Fatalf("PackerConfig: %v", err)
	}
	if packerCfg.NControllers != 8 {
		t.Fatalf("use_controllers should reserve 8 slots, got %d", packerCfg.NControllers)
	}
	if _, ok := packerCfg.Controllers['S']; !ok {
		t.Fatalf("use_controllers should map the full alphabet, got %v", packerCfg.Controllers)
	}
	if err := packerCfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestLoadRejectsInvalidConfigs(t *testing.T) {
	cases := []struct {
		name    string
		content string
		wantIn  string
	}{
		{
			name:    "multi-character controller",
			content: "[packer]\ncontrollers = { OC = 0 }\n",
			wantIn:  "single character",
		},
		{
			name:    "controller index out of bounds",
			content: "[packer]\ncontrollers = { O = 0, C = 1 }\n",
			wantIn:  "n_controllers",
		},
		{
			name:    "zero capacity",
			content: "[packer]\nn_days = 0\n",
			wantIn:  "n_days",
		},
		{
			name:    "bad day_obs_begin",
			content: "[packer]\nday_obs_begin = 20100230\n",
			wantIn:  "day_obs_begin",
		},
		{
			name:    "bad log format",
			content: "[logging]\nformat = \"xml\"\n",
			wantIn:  "logging.format",
		},
		{
			name:    "bad output format",
			content: "[output]\nformat = \"csv\"\n",
			wantIn:  "output.format",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(path)
			if err == nil {
				t.Fatal("Load should fail")
			}
			if !strings.Contains(err.Error(), tc.wantIn) {
				t.Fatalf("error %q does not mention %q", err, tc.wantIn)
			}
		})
	}
}

func TestLoadHonorsEnvConfigPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	path := filepath.Join(t.TempDir(), "env.toml")
	if err := os.WriteFile(path, []byte("[packer]\nn_detectors = 512\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(config.EnvConfigPath, path)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("resolved=%q exists=%t, want env path", resolved, exists)
	}
	if cfg.Packer.NDetectors != 512 {
		t.Fatalf("n_detectors = %d, want 512", cfg.Packer.NDetectors)
	}
}

func TestCreateSampleProducesLoadableConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load(sample): %v", err)
	}
	if !exists {
		t.Fatal("sample config should exist")
	}

	// The sample documents the defaults; it must not drift from them.
	packerCfg, err := cfg.PackerConfig()
	if err != nil {
		t.Fatalf("PackerConfig: %v", err)
	}
	defaults := config.Default()
	defaultCfg, err := defaults.PackerConfig()
	if err != nil {
		t.Fatalf("PackerConfig(default): %v", err)
	}
	if packerCfg.MaxBits() != defaultCfg.MaxBits() {
		t.Fatalf("sample MaxBits %d != default %d", packerCfg.MaxBits(), defaultCfg.MaxBits())
	}
}

func TestPackerConfigIsIndependentPerCall(t *testing.T) {
	cfg := config.Default()
	first, err := cfg.PackerConfig()
	if err != nil {
		t.Fatalf("PackerConfig: %v", err)
	}
	first.Controllers['Z'] = 9

	second, err := cfg.PackerConfig()
	if err != nil {
		t.Fatalf("PackerConfig: %v", err)
	}
	if _, ok := second.Controllers['Z']; ok {
		t.Fatal("PackerConfig results share controller maps")
	}
	var zero dimpack.Config
	if second.NControllers == zero.NControllers {
		t.Fatal("unexpected zero configuration")
	}
}
