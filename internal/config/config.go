package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/avg-cs-student/jcblocks/internal/constants"
	"github.com/avg-cs-student/jcblocks/internal/engine"

	"gopkg.in/yaml.v3"
)

const (
	defaultIdleTimeout  = 30 * time.Minute
	defaultScanInterval = time.Minute
)

type rawConfig struct {
	Server *struct {
		Address string `json:"address" yaml:"address"`
	} `json:"server" yaml:"server"`
	Database *struct {
		Path string `json:"path" yaml:"path"`
	} `json:"database" yaml:"database"`
	// Rules override the classic 8x8 board; omitted fields keep their
	// defaults.
	Rules *engine.Rules `json:"rules" yaml:"rules"`
	// Games idle for longer than idle_timeout are abandoned by the
	// background scanner, which runs every scan_interval. Both use Go
	// duration syntax ("45m", "1h").
	IdleTimeout  string `json:"idle_timeout" yaml:"idle_timeout"`
	ScanInterval string `json:"scan_interval" yaml:"scan_interval"`
}

// LoadedConfig contains the validated server settings.
type LoadedConfig struct {
	ServerAddress string
	DBPath        string
	Rules         engine.Rules
	IdleTimeout   time.Duration
	ScanInterval  time.Duration
}

// Default returns the configuration used when no file is present.
func Default() *LoadedConfig {
	return &LoadedConfig{
		ServerAddress: constants.DefaultServerAddress,
		DBPath:        constants.DefaultDBPath,
		Rules:         engine.DefaultRules(),
		IdleTimeout:   defaultIdleTimeout,
		ScanInterval:  defaultScanInterval,
	}
}

// LoadConfig reads the configuration file at path. Files ending in .yaml or
// .yml are parsed as YAML, anything else as JSON. Environment overrides are
// applied last.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &rc)
	default:
		err = json.Unmarshal(b, &rc)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg := Default()
	if rc.Server != nil && rc.Server.Address != "" {
		cfg.ServerAddress = rc.Server.Address
	}
	if rc.Database != nil && rc.Database.Path != "" {
		cfg.DBPath = rc.Database.Path
	}
	if rc.Rules != nil {
		cfg.Rules = rc.Rules.WithDefaults()
	}
	if err := cfg.Rules.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	if cfg.IdleTimeout, err = parseDuration(rc.IdleTimeout, defaultIdleTimeout); err != nil {
		return nil, fmt.Errorf("config file %s: idle_timeout: %w", path, err)
	}
	if cfg.ScanInterval, err = parseDuration(rc.ScanInterval, defaultScanInterval); err != nil {
		return nil, fmt.Errorf("config file %s: scan_interval: %w", path, err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// LoadOrDefault behaves like LoadConfig but falls back to Default when the
// file does not exist.
func LoadOrDefault(path string) (*LoadedConfig, error) {
	cfg, err := LoadConfig(path)
	if errors.Is(err, os.ErrNotExist) {
		cfg = Default()
		cfg.applyEnvOverrides()
		return cfg, nil
	}
	return cfg, err
}

// PathFromEnv returns the config path from JCBLOCKS_CONFIG or the default.
func PathFromEnv() string {
	if p := os.Getenv(constants.EnvConfigPath); p != "" {
		return p
	}
	return constants.DefaultConfigPath
}

func (c *LoadedConfig) applyEnvOverrides() {
	if v := os.Getenv(constants.EnvDBPath); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv(constants.EnvAddress); v != "" {
		c.ServerAddress = v
	}
}

func parseDuration(s string, def time.Duration) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration must be positive, got %s", s)
	}
	return d, nil
}
