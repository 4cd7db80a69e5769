package config

import (
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/lorenzsim/internal/dynamo"
	"github.com/san-kum/lorenzsim/internal/sim"
)

const (
	DefaultSteps = 5000
	DefaultRange = 20
	DefaultFPS   = 60
)

type Config struct {
	Sigma   float64       `yaml:"sigma"`
	Rho     float64       `yaml:"rho"`
	Beta    float64       `yaml:"beta"`
	Dt      float64       `yaml:"dt"`
	Steps   int           `yaml:"steps"`
	FPS     int           `yaml:"fps"`
	Initial InitialConfig `yaml:"initial"`
}

// InitialConfig picks the starting point: a fixed position, or three
// random integers in [1, Range] drawn from Seed. A nil Seed means the
// file did not pin one; the CLI then fills in its --seed value.
type InitialConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Z      float64 `yaml:"z"`
	Random bool    `yaml:"random"`
	Range  int     `yaml:"range"`
	Seed   *int64  `yaml:"seed,omitempty"`
}

func DefaultConfig() *Config {
	p := sim.InitialPosition
	return &Config{
		Sigma: dynamo.DefaultSigma,
		Rho:   dynamo.DefaultRho,
		Beta:  dynamo.DefaultBeta,
		Dt:    dynamo.DefaultDt,
		Steps: DefaultSteps,
		FPS:   DefaultFPS,
		Initial: InitialConfig{
			X:     p.X,
			Y:     p.Y,
			Z:     p.Z,
			Range: DefaultRange,
		},
	}
}

// Load reads a YAML file over the defaults; keys missing from the file
// keep their default values.
func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads a YAML file over base, which is modified in place.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, base); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return base, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Dynamo returns the fixed run parameters.
func (c *Config) Dynamo() dynamo.Config {
	return dynamo.Config{Sigma: c.Sigma, Rho: c.Rho, Beta: c.Beta, Dt: c.Dt}
}

// Validate checks the run parameters and the seed range.
func (c *Config) Validate() error {
	if err := c.Dynamo().Validate(); err != nil {
		return err
	}
	if c.Initial.Random && c.Initial.Range < 1 {
		return fmt.Errorf("initial range must be at least 1, got %d", c.Initial.Range)
	}
	if c.Steps < 0 {
		return fmt.Errorf("steps must not be negative, got %d", c.Steps)
	}
	return nil
}

// InitialPosition resolves the starting point for the run.
func (c *Config) InitialPosition() dynamo.Vector3 {
	if c.Initial.Random {
		var seed int64
		if c.Initial.Seed != nil {
			seed = *c.Initial.Seed
		}
		return sim.Seed(rand.New(rand.NewSource(seed)), c.Initial.Range)
	}
	return dynamo.V(c.Initial.X, c.Initial.Y, c.Initial.Z)
}
