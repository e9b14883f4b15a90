// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Environment EnvironmentConfig `yaml:"environment"`
	Population  PopulationConfig  `yaml:"population"`
	Simulation  SimulationConfig  `yaml:"simulation"`
	Genetics    GeneticsConfig    `yaml:"genetics"`
	Herbivore   TraitConfig       `yaml:"herbivore"`
	Carnivore   TraitConfig       `yaml:"carnivore"`
	Telemetry   TelemetryConfig   `yaml:"telemetry"`
}

// EnvironmentConfig holds world dimensions, weather, and terrain settings.
type EnvironmentConfig struct {
	Width                 float64 `yaml:"width"`
	Height                float64 `yaml:"height"`
	InitialWeather        string  `yaml:"initial_weather"`
	WeatherChangeInterval float64 `yaml:"weather_change_interval"`
	TerrainScale          float64 `yaml:"terrain_scale"` // noise frequency for terrain generation
}

// PopulationConfig holds initial population and resource counts.
type PopulationConfig struct {
	InitialHerbivores   int `yaml:"initial_herbivores"`
	InitialCarnivores   int `yaml:"initial_carnivores"`
	InitialPlants       int `yaml:"initial_plants"`
	InitialWaterSources int `yaml:"initial_water_sources"`
}

// SimulationConfig holds tick and time-scale settings.
type SimulationConfig struct {
	TimeScale             float64 `yaml:"time_scale"`
	ResourceSpawnInterval float64 `yaml:"resource_spawn_interval"` // sim-time units between plant spawn waves
}

// GeneticsConfig holds trait inheritance parameters.
type GeneticsConfig struct {
	MutationFactor float64 `yaml:"mutation_factor"`
	TraitJitter    float64 `yaml:"trait_jitter"` // relative spread applied to founder traits
}

// TraitConfig holds the founder trait baseline for one species.
type TraitConfig struct {
	Speed            float64 `yaml:"speed"`
	Strength         float64 `yaml:"strength"`
	Perception       float64 `yaml:"perception"`
	Metabolism       float64 `yaml:"metabolism"`
	ReproductiveUrge float64 `yaml:"reproductive_urge"`
	Lifespan         float64 `yaml:"lifespan"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // sim-time units per stats window
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	return cfg, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
