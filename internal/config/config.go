package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Simulation controls the synthetic dataset build.
type Simulation struct {
	Calls                 int   `yaml:"calls"`
	Agents                int   `yaml:"agents"`
	Seed                  int64 `yaml:"seed"`
	SimulateInterruptions bool  `yaml:"simulate_interruptions"`
}

type Config struct {
	Port       string     `yaml:"port"`
	WebhookURL string     `yaml:"webhook_url"`
	Simulation Simulation `yaml:"simulation"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		Port: "8080",
		Simulation: Simulation{
			Calls:  200,
			Agents: 12,
			Seed:   42,
		},
	}
}

// Load reads a YAML config file and validates it.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", filename, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// FromEnv builds a config from environment variables only. CONFIG_PATH, when
// set, takes precedence and routes through Load.
func FromEnv() (*Config, error) {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return Load(path)
	}

	cfg := Default()
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("WEBHOOK_URL"); v != "" {
		cfg.WebhookURL = v
	}
	if v := os.Getenv("SIM_CALLS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("SIM_CALLS: %w", err)
		}
		cfg.Simulation.Calls = n
	}
	if v := os.Getenv("SIM_AGENTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("SIM_AGENTS: %w", err)
		}
		cfg.Simulation.Agents = n
	}
	if v := os.Getenv("SIM_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("SIM_SEED: %w", err)
		}
		cfg.Simulation.Seed = n
	}
	if v := os.Getenv("SIM_INTERRUPTIONS"); v == "true" || v == "1" {
		cfg.Simulation.SimulateInterruptions = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Simulation.Calls <= 0 {
		return fmt.Errorf("simulation.calls must be greater than 0")
	}
	if c.Simulation.Agents <= 0 {
		return fmt.Errorf("simulation.agents must be greater than 0")
	}
	if c.Port == "" {
		return fmt.Errorf("port must not be empty")
	}
	return nil
}
