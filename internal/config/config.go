package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xxxsen/common/logger"
	"gopkg.in/yaml.v3"
)

const (
	ModeAho  = "aho"
	ModeFind = "find"
	ModeAll  = "all"
	ModeScan = "scan"
)

// Config is the root runtime configuration.
type Config struct {
	Mode        string           `json:"mode" yaml:"mode"`
	Patterns    string           `json:"patterns" yaml:"patterns"`
	Words       string           `json:"words" yaml:"words"`
	NumPatterns int              `json:"num_patterns" yaml:"num_patterns"`
	NumWords    int              `json:"num_words" yaml:"num_words"`
	Seed        uint64           `json:"seed" yaml:"seed"`
	Print       bool             `json:"print" yaml:"print"`
	Dump        bool             `json:"dump" yaml:"dump"`
	Documents   []string         `json:"documents" yaml:"documents"`
	Concurrent  int              `json:"concurrent" yaml:"concurrent"`
	Searcher    []SearcherConfig `json:"searcher" yaml:"searcher"`
	Log         logger.LogConfig `json:"log" yaml:"log"`
	Cache       CacheConfig      `json:"cache" yaml:"cache"`
	Pprof       PprofConfig      `json:"pprof" yaml:"pprof"`
}

type CacheConfig struct {
	Size int `json:"size" yaml:"size"`
}

// SearcherConfig carries per type arguments handed to the searcher factory.
type SearcherConfig struct {
	Type string      `json:"type" yaml:"type"`
	Data interface{} `json:"data" yaml:"data"`
}

type PprofConfig struct {
	Enable bool   `json:"enable" yaml:"enable"`
	Bind   string `json:"bind" yaml:"bind"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Mode:        ModeAho,
		NumPatterns: 100,
		NumWords:    10000,
		Seed:        1,
		Concurrent:  4,
		Log: logger.LogConfig{
			Level:   "info",
			Console: true,
		},
		Cache: CacheConfig{Size: 16},
	}
}

// Load reads the configuration file from disk on top of Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Validate checks the fields needed by the configured mode.
func (c *Config) Validate() error {
	c.Mode = strings.ToLower(strings.TrimSpace(c.Mode))
	switch c.Mode {
	case ModeAho, ModeFind, ModeAll:
		if c.Words == "" {
			return fmt.Errorf("mode %s requires a word bank", c.Mode)
		}
		if c.NumWords < 0 {
			return fmt.Errorf("num_words %d is not valid", c.NumWords)
		}
	case ModeScan:
		if len(c.Documents) == 0 {
			return fmt.Errorf("mode scan requires documents")
		}
	default:
		return fmt.Errorf("unknown mode:%s, must be one of aho|find|all|scan", c.Mode)
	}
	if c.Patterns == "" {
		return fmt.Errorf("pattern bank is required")
	}
	if c.NumPatterns < 0 {
		return fmt.Errorf("num_patterns %d is not valid", c.NumPatterns)
	}
	if c.Concurrent <= 0 {
		c.Concurrent = 1
	}
	return nil
}

// SearcherArgs returns the configured arguments for a searcher type.
func (c *Config) SearcherArgs(typ string) interface{} {
	for _, s := range c.Searcher {
		if s.Type == typ {
			return s.Data
		}
	}
	return nil
}
