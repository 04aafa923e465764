package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/san-kum/topgun/internal/ballistics"
	"gopkg.in/yaml.v3"
)

const (
	DefaultMode        = "select"
	DefaultFree        = "weight"
	DefaultTheme       = "longrange"
	DefaultDataDir     = ".topgun"
	DefaultChartWidth  = 80
	DefaultChartHeight = 16

	// EnvPrefix is prepended to every environment override,
	// e.g. TOPGUN_INPUTS_VELOCITY.
	EnvPrefix = "TOPGUN_"
)

type Config struct {
	Mode    string       `yaml:"mode" env:"MODE"`
	Free    string       `yaml:"free" env:"FREE"`
	Enabled []string     `yaml:"enabled" env:"ENABLED" envSeparator:","`
	Theme   string       `yaml:"theme" env:"THEME"`
	DataDir string       `yaml:"data_dir" env:"DATA_DIR"`
	Inputs  InputsConfig `yaml:"inputs" envPrefix:"INPUTS_"`
	Chart   ChartConfig  `yaml:"chart" envPrefix:"CHART_"`
}

type InputsConfig struct {
	Projectile  float64 `yaml:"projectile" env:"PROJECTILE"`
	Velocity    float64 `yaml:"velocity" env:"VELOCITY"`
	RifleWeight float64 `yaml:"rifle_weight" env:"RIFLE_WEIGHT"`
}

type ChartConfig struct {
	Width  int `yaml:"width" env:"WIDTH"`
	Height int `yaml:"height" env:"HEIGHT"`
}

func DefaultConfig() *Config {
	return &Config{
		Mode:    DefaultMode,
		Free:    DefaultFree,
		Enabled: []string{"projectile", "velocity"},
		Theme:   DefaultTheme,
		DataDir: DefaultDataDir,
		Inputs: InputsConfig{
			Projectile:  ballistics.DefaultProjectile,
			Velocity:    ballistics.DefaultVelocity,
			RifleWeight: ballistics.DefaultRifle,
		},
		Chart: ChartConfig{
			Width:  DefaultChartWidth,
			Height: DefaultChartHeight,
		},
	}
}

// LoadInto overlays the file at path onto cfg. Keys absent from the file
// keep their current values, so a preset survives a partial config.
func LoadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// Encode writes cfg as YAML in the same shape LoadInto reads.
func Encode(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}

// ApplyEnv overlays TOPGUN_* environment variables. Unset variables leave
// the current values alone.
func (c *Config) ApplyEnv() error {
	return c.applyEnv(nil)
}

func (c *Config) applyEnv(environ map[string]string) error {
	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(c, opts); err != nil {
		return fmt.Errorf("environment: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	switch strings.ToLower(c.Mode) {
	case "select", "graph":
	default:
		return fmt.Errorf("config: unknown mode %q (want select or graph)", c.Mode)
	}
	if _, err := ballistics.ParseVariable(c.Free); err != nil {
		return fmt.Errorf("config: free: %w", err)
	}
	if _, err := c.EnabledVariables(); err != nil {
		return err
	}
	if err := c.GetInputs().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		return fmt.Errorf("config: chart size must be positive, got %dx%d", c.Chart.Width, c.Chart.Height)
	}
	return nil
}

func (c *Config) GetInputs() ballistics.Inputs {
	return ballistics.Inputs{
		ProjectileGrains: c.Inputs.Projectile,
		VelocityFPS:      c.Inputs.Velocity,
		RifleLbs:         c.Inputs.RifleWeight,
	}
}

func (c *Config) SetInputs(in ballistics.Inputs) {
	c.Inputs = InputsConfig{
		Projectile:  in.ProjectileGrains,
		Velocity:    in.VelocityFPS,
		RifleWeight: in.RifleLbs,
	}
}

func (c *Config) FreeVariable() (ballistics.Variable, error) {
	return ballistics.ParseVariable(c.Free)
}

func (c *Config) EnabledVariables() ([]ballistics.Variable, error) {
	vars := make([]ballistics.Variable, 0, len(c.Enabled))
	for _, name := range c.Enabled {
		v, err := ballistics.ParseVariable(name)
		if err != nil {
			return nil, fmt.Errorf("config: enabled: %w", err)
		}
		vars = append(vars, v)
	}
	return vars, nil
}
