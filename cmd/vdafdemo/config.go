package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tallyproto/vdaf/circuits"
	"github.com/tallyproto/vdaf/flp"
)

// CircuitConfig selects and parameterizes one of the three normative Prio3
// validity circuits.
type CircuitConfig struct {
	Type    string   `yaml:"type"` // "count", "sum", or "histogram"
	Bits    int      `yaml:"bits,omitempty"`
	Buckets []uint64 `yaml:"buckets,omitempty"`
}

// Build constructs the flp.Circuit this configuration describes.
func (c CircuitConfig) Build() (flp.Circuit, error) {
	switch c.Type {
	case "count":
		return circuits.Count{}, nil
	case "sum":
		if c.Bits <= 0 {
			return nil, fmt.Errorf("vdafdemo: sum circuit requires a positive bits field")
		}
		return circuits.NewSum(c.Bits), nil
	case "histogram":
		if len(c.Buckets) == 0 {
			return nil, fmt.Errorf("vdafdemo: histogram circuit requires a non-empty buckets field")
		}
		return circuits.NewHistogram(c.Buckets), nil
	default:
		return nil, fmt.Errorf("vdafdemo: unknown circuit type %q", c.Type)
	}
}

// MeasurementConfig is one client measurement and the nonce its prep round
// uses.
type MeasurementConfig struct {
	Value uint64 `yaml:"value"`
	Nonce string `yaml:"nonce"` // hex, must decode to prg.SeedSize bytes
}

// Config is the static YAML description of one demo batch run.
type Config struct {
	Shares       int                  `yaml:"shares"`
	Circuit      CircuitConfig        `yaml:"circuit"`
	Measurements []MeasurementConfig  `yaml:"measurements"`
	ListenAddr   string               `yaml:"listen_addr"`
}

// LoadConfig reads and parses a YAML config file at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("vdafdemo: reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("vdafdemo: parsing config: %w", err)
	}
	if cfg.Shares == 0 {
		cfg.Shares = 2
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8090"
	}
	return &cfg, nil
}
