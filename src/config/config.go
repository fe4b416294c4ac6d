package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Shaft limits. The decision core is defined over this inclusive floor range;
// every floor-valued event outside it is rejected.
const (
	MinFloor = 1
	MaxFloor = 5
)

const (
	DefaultDoorOpenDuration = 10 * time.Second
	DefaultTravelDuration   = 2 * time.Second
)

type Config struct {
	DoorOpenDuration time.Duration
	TravelDuration   time.Duration
	LogLevel         string
}

// fileConfig carries the raw YAML fields. Durations are strings so the file
// can say "10s" instead of nanosecond counts.
type fileConfig struct {
	DoorOpenDuration string `yaml:"doorOpenDuration"`
	TravelDuration   string `yaml:"travelDuration"`
	LogLevel         string `yaml:"logLevel"`
}

func Default() Config {
	return Config{
		DoorOpenDuration: DefaultDoorOpenDuration,
		TravelDuration:   DefaultTravelDuration,
		LogLevel:         "info",
	}
}

// Load returns the defaults overridden by the YAML file at path. An empty
// path means no override file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if fc.DoorOpenDuration != "" {
		d, err := time.ParseDuration(fc.DoorOpenDuration)
		if err != nil {
			return cfg, fmt.Errorf("doorOpenDuration: %w", err)
		}
		cfg.DoorOpenDuration = d
	}
	if fc.TravelDuration != "" {
		d, err := time.ParseDuration(fc.TravelDuration)
		if err != nil {
			return cfg, fmt.Errorf("travelDuration: %w", err)
		}
		cfg.TravelDuration = d
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	return cfg, nil
}
