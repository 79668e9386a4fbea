// Package config loads the service configuration from a YAML or JSON file
// with optional FC_ environment overrides.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/autolytix/fleetcare/core/metrics"
	"github.com/autolytix/fleetcare/core/recommend"
	"github.com/autolytix/fleetcare/infra/mqtt"
)

type Config struct {
	HTTP      HTTPConfig           `json:"http"`
	Storage   StorageConfig        `json:"storage"`
	Metrics   metrics.Config       `json:"metrics"`
	MQTT      mqtt.Config          `json:"mqtt"`
	Recommend recommend.Thresholds `json:"recommend"`
}

// HTTPConfig defines the API server settings.
type HTTPConfig struct {
	Addr string `json:"addr"`
}

// SetDefaults applies sane defaults.
func (c *HTTPConfig) SetDefaults() {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
}

// StorageConfig locates the snapshot data directory.
type StorageConfig struct {
	Dir string `json:"dir"`
}

// SetDefaults applies sane defaults.
func (c *StorageConfig) SetDefaults() {
	if c.Dir == "" {
		c.Dir = "data"
	}
}

// Load reads and validates the configuration at path.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("FC_", ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "fc_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.HTTP.SetDefaults()
	cfg.Storage.SetDefaults()
	cfg.Metrics.SetDefaults()
	cfg.MQTT.SetDefaults()
	cfg.Recommend.SetDefaults()
	if err := cfg.MQTT.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Recommend.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
